package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
	"github.com/oyaguma3/msc-ss-poc/pkg/valkey"
)

// subscriberStore はSubscriberStoreインターフェースの実装。
type subscriberStore struct {
	vc  *ValkeyClient
	now func() time.Time
}

// NewSubscriberStore は新しいSubscriberStoreを生成する。
func NewSubscriberStore(vc *ValkeyClient) SubscriberStore {
	return &subscriberStore{vc: vc, now: time.Now}
}

// CreateOrTouch はIMSIの加入者を取得し更新日時を更新する。未登録なら作成する。
func (s *subscriberStore) CreateOrTouch(ctx context.Context, imsi string) (*model.Subscriber, error) {
	key := subscriberKey(imsi)
	now := s.now().Unix()
	err := createOrTouchScript.Run(ctx, s.vc.Client(), []string{key, KeySeqSubscriber}, imsi, now).Err()
	if err != nil {
		return nil, valkeyErr("EVALSHA", key, err)
	}
	return s.load(ctx, key)
}

// Get は指定属性で加入者を検索する。
func (s *subscriberStore) Get(ctx context.Context, field LookupField, value string) (*model.Subscriber, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrNotFound, field)
	}
	switch field {
	case FieldIMSI:
		return s.load(ctx, subscriberKey(value))
	case FieldTMSI:
		return s.lookupIndex(ctx, tmsiIndexKey(value))
	case FieldExtension:
		return s.lookupIndex(ctx, extIndexKey(value))
	default:
		return nil, fmt.Errorf("unknown lookup field: %q", field)
	}
}

// Sync は加入者の可変属性を書き戻す。
func (s *subscriberStore) Sync(ctx context.Context, sub *model.Subscriber) error {
	key := subscriberKey(sub.IMSI)
	now := s.now().Unix()
	authorized := "0"
	if sub.Authorized {
		authorized = "1"
	}
	code, err := syncScript.Run(ctx, s.vc.Client(), []string{key},
		sub.IMSI, sub.TMSI, sub.Extension, sub.Name, authorized, sub.LAC, now,
		KeyPrefixTMSIIndex, KeyPrefixExtIndex,
	).Int64()
	if err != nil {
		return valkeyErr("EVALSHA", key, err)
	}

	switch code {
	case scriptOK:
		sub.Updated = now
		return nil
	case scriptNotFound:
		return fmt.Errorf("%w: subscriber %s", ErrNotFound, sub.IMSI)
	case scriptTMSIConflict:
		return apperr.NewConflictError("tmsi", sub.TMSI, ErrTMSIConflict)
	case scriptExtensionConflict:
		return apperr.NewConflictError("extension", sub.Extension, ErrExtensionConflict)
	default:
		return fmt.Errorf("unexpected sync result: %d", code)
	}
}

// ClaimTMSI はTMSIを加入者に割り当て、LACと合わせて書き戻す。
// 内線番号などの他の属性は保存値を維持するため、古いsubを渡しても上書きしない。
// 失敗した場合sub.TMSIは変更しない。
func (s *subscriberStore) ClaimTMSI(ctx context.Context, sub *model.Subscriber, tmsi string) error {
	if tmsi == "" {
		return fmt.Errorf("tmsi is empty")
	}
	key := subscriberKey(sub.IMSI)
	now := s.now().Unix()
	code, err := claimTMSIScript.Run(ctx, s.vc.Client(), []string{key},
		sub.IMSI, tmsi, sub.LAC, now, KeyPrefixTMSIIndex,
	).Int64()
	if err != nil {
		return valkeyErr("EVALSHA", key, err)
	}

	switch code {
	case scriptOK:
		sub.TMSI = tmsi
		sub.Updated = now
		return nil
	case scriptNotFound:
		return fmt.Errorf("%w: subscriber %s", ErrNotFound, sub.IMSI)
	case scriptTMSIConflict:
		return apperr.NewConflictError("tmsi", tmsi, ErrTMSIConflict)
	default:
		return fmt.Errorf("unexpected claim result: %d", code)
	}
}

// lookupIndex は一意インデックスからIMSIを引き、加入者を読み込む。
func (s *subscriberStore) lookupIndex(ctx context.Context, indexKey string) (*model.Subscriber, error) {
	imsi, err := s.vc.Client().Get(ctx, indexKey).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, indexKey)
		}
		return nil, valkeyErr("GET", indexKey, err)
	}
	return s.load(ctx, subscriberKey(imsi))
}

// load は加入者ハッシュを読み込む。
func (s *subscriberStore) load(ctx context.Context, key string) (*model.Subscriber, error) {
	cmd := s.vc.Client().HGetAll(ctx, key)
	m, err := cmd.Result()
	if err != nil {
		return nil, valkeyErr("HGETALL", key, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	var sub model.Subscriber
	if err := cmd.Scan(&sub); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &sub, nil
}

// valkeyErr はコマンド失敗をErrValkeyUnavailableでラップする。
func valkeyErr(op, key string, err error) error {
	if valkey.IsConnectionError(err) {
		slog.Error("Valkey接続エラー",
			"event_id", "VALKEY_CONN_ERR",
			"operation", op,
			"key", key,
			"error", err,
		)
	}
	return fmt.Errorf("%w: %w", ErrValkeyUnavailable, apperr.NewValkeyError(op, key, err))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
