// Package identity は加入者識別子（TMSI、IMEI観測）の管理とSMS永続化の入口を提供する。
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/store"
	"github.com/oyaguma3/msc-ss-poc/pkg/logging"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// maxTMSI はTMSI候補の上限。上位2ビットが11の値はP-TMSI空間のため使わない。
const maxTMSI = 0xBFFFFFFF

// Manager は加入者識別子の割当と端末観測を行う。
// 一意性の判定はすべてストア側で行い、プロセス内に状態を持たない。
type Manager struct {
	subscribers store.SubscriberStore
	equipment   store.EquipmentStore
	sms         store.SMSStore
	maxAttempts int
	fields      *logging.CommonFields
	randTMSI    func() uint32
}

// NewManager は新しいManagerを生成する
func NewManager(
	subs store.SubscriberStore,
	equip store.EquipmentStore,
	sms store.SMSStore,
	maxAttempts int,
	fields *logging.CommonFields,
) *Manager {
	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}
	return &Manager{
		subscribers: subs,
		equipment:   equip,
		sms:         sms,
		maxAttempts: maxAttempts,
		fields:      fields,
		randTMSI:    randomTMSI,
	}
}

// randomTMSI は[1, maxTMSI]の一様乱数を返す
func randomTMSI() uint32 {
	return rand.Uint32N(maxTMSI) + 1
}

// AllocateTMSI は加入者に未使用のTMSIを割り当てる。
// 候補が使用中、または割当の競合に負けた場合は次の候補を試す。
func (m *Manager) AllocateTMSI(ctx context.Context, sub *model.Subscriber) error {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		candidate := strconv.FormatUint(uint64(m.randTMSI()), 10)

		owner, err := m.subscribers.Get(ctx, store.FieldTMSI, candidate)
		switch {
		case err == nil:
			if owner.IMSI != sub.IMSI {
				m.logCollision(sub, candidate, attempt, "in_use")
				continue
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := m.subscribers.ClaimTMSI(ctx, sub, candidate); err != nil {
			if errors.Is(err, store.ErrTMSIConflict) {
				m.logCollision(sub, candidate, attempt, "claim_lost")
				continue
			}
			return err
		}

		slog.Info("TMSI割当",
			"event_id", "TMSI_ALLOC",
			m.fields.WithIMSI(sub.IMSI),
			logging.WithTMSI(candidate),
			logging.WithAttempt(attempt),
		)
		return nil
	}

	slog.Warn("TMSI割当試行上限到達",
		"event_id", "TMSI_EXHAUSTED",
		m.fields.WithIMSI(sub.IMSI),
		logging.WithAttempt(m.maxAttempts),
	)
	return fmt.Errorf("%w: %d attempts", ErrIdentityAllocationExhausted, m.maxAttempts)
}

func (m *Manager) logCollision(sub *model.Subscriber, candidate string, attempt int, reason string) {
	slog.Debug("TMSI衝突",
		"event_id", "TMSI_COLLISION",
		m.fields.WithIMSI(sub.IMSI),
		logging.WithTMSI(candidate),
		logging.WithAttempt(attempt),
		"reason", reason,
	)
}

// AssociateEquipment は加入者が使用したIMEIを記録する
func (m *Manager) AssociateEquipment(ctx context.Context, sub *model.Subscriber, imei string) (*store.Association, error) {
	a, err := m.equipment.AssociateEquipment(ctx, sub, imei)
	if err != nil {
		return nil, err
	}
	if a.NewEquipment {
		slog.Info("端末新規登録",
			"event_id", "EQUIP_NEW",
			m.fields.WithIMEI(imei),
			"equipment_id", a.EquipmentID,
		)
	}
	slog.Info("端末観測",
		"event_id", "EQUIP_WATCH",
		m.fields.WithIMSI(sub.IMSI),
		m.fields.WithIMEI(imei),
		"new_watch", a.NewWatch,
	)
	return a, nil
}

// LocationUpdate は位置登録時の識別子処理を行う。
// 加入者の作成または更新、LACの記録、TMSIの割当、IMEIの観測（指定時のみ）を順に実施する。
func (m *Manager) LocationUpdate(ctx context.Context, imsi string, lac int, imei string) (*model.Subscriber, error) {
	sub, err := m.subscribers.CreateOrTouch(ctx, imsi)
	if err != nil {
		return nil, err
	}
	sub.LAC = lac

	// TMSIの確保時にLACも合わせて書き戻される
	if err := m.AllocateTMSI(ctx, sub); err != nil {
		return nil, err
	}

	if imei != "" {
		if _, err := m.AssociateEquipment(ctx, sub, imei); err != nil {
			return nil, err
		}
	}
	return sub, nil
}
