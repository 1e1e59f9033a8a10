package identity

import (
	"context"
	"log/slog"

	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// StoreSMS は未送信SMSを保存する
func (m *Manager) StoreSMS(ctx context.Context, sms *model.SMS) (int64, error) {
	id, err := m.sms.StoreSMS(ctx, sms)
	if err != nil {
		slog.Error("SMS保存失敗",
			"event_id", "SMS_STORE",
			"error", err,
		)
		return 0, err
	}
	slog.Info("SMS保存",
		"event_id", "SMS_STORE",
		"sms_id", id,
		"sender_id", sms.SenderID,
		"receiver_id", sms.ReceiverID,
	)
	return id, nil
}

// MarkSMSSent はSMSを送信済みにする
func (m *Manager) MarkSMSSent(ctx context.Context, id int64) error {
	if err := m.sms.MarkSMSSent(ctx, id); err != nil {
		return err
	}
	slog.Info("SMS送信済み",
		"event_id", "SMS_SENT",
		"sms_id", id,
	)
	return nil
}

// FetchUnsentSMS はID minID 以上の未送信SMSをID昇順で返す
func (m *Manager) FetchUnsentSMS(ctx context.Context, minID int64, limit int) ([]*model.SMS, error) {
	return m.sms.FetchUnsentSMS(ctx, minID, limit)
}
