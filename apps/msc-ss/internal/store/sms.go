package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oyaguma3/msc-ss-poc/pkg/model"
	"github.com/redis/go-redis/v9"
)

// smsStore はSMSStoreインターフェースの実装。
type smsStore struct {
	vc  *ValkeyClient
	now func() time.Time
}

// NewSMSStore は新しいSMSStoreを生成する。
func NewSMSStore(vc *ValkeyClient) SMSStore {
	return &smsStore{vc: vc, now: time.Now}
}

// StoreSMS は未送信SMSを保存し、採番したIDと作成日時をsmsに設定する。
func (s *smsStore) StoreSMS(ctx context.Context, sms *model.SMS) (int64, error) {
	if sms == nil {
		return 0, fmt.Errorf("%w: nil sms", ErrPersistence)
	}
	now := s.now().Unix()
	id, err := storeSMSScript.Run(ctx, s.vc.Client(),
		[]string{KeySeqSMS, KeySMSUnsent},
		KeyPrefixSMS, sms.SenderID, sms.ReceiverID, sms.Header, sms.Text, now,
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, valkeyErr("EVALSHA", KeySeqSMS, err))
	}
	sms.ID = id
	sms.Created = now
	sms.Sent = 0
	return id, nil
}

// MarkSMSSent はSMSを送信済みにする。送信済みのSMSに対しては何もしない。
func (s *smsStore) MarkSMSSent(ctx context.Context, id int64) error {
	key := smsKey(id)
	code, err := markSMSSentScript.Run(ctx, s.vc.Client(),
		[]string{key, KeySMSUnsent},
		id, s.now().Unix(),
	).Int64()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, valkeyErr("EVALSHA", key, err))
	}
	if code == scriptNotFound {
		return fmt.Errorf("%w: sms %d", ErrNotFound, id)
	}
	return nil
}

// FetchUnsentSMS はID minID 以上の未送信SMSをID昇順で最大limit件返す。
// limitが0以下の場合は件数を制限しない。
func (s *smsStore) FetchUnsentSMS(ctx context.Context, minID int64, limit int) ([]*model.SMS, error) {
	rangeBy := &redis.ZRangeBy{
		Min: formatID(minID),
		Max: "+inf",
	}
	if limit > 0 {
		rangeBy.Count = int64(limit)
	}
	ids, err := s.vc.Client().ZRangeByScore(ctx, KeySMSUnsent, rangeBy).Result()
	if err != nil {
		return nil, valkeyErr("ZRANGEBYSCORE", KeySMSUnsent, err)
	}
	if len(ids) == 0 {
		return []*model.SMS{}, nil
	}

	pipe := s.vc.Client().Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, KeyPrefixSMS+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, valkeyErr("HGETALL", KeyPrefixSMS+"*", err)
	}

	result := make([]*model.SMS, 0, len(ids))
	for i, cmd := range cmds {
		m, err := cmd.Result()
		if err != nil {
			return nil, valkeyErr("HGETALL", KeyPrefixSMS+ids[i], err)
		}
		// インデックスだけ残った不整合エントリは読み飛ばす
		if len(m) == 0 {
			continue
		}
		var sms model.SMS
		if err := cmd.Scan(&sms); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyPrefixSMS+ids[i], err)
		}
		result = append(result, &sms)
	}
	return result, nil
}
