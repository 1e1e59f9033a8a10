package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// equipmentStore はEquipmentStoreインターフェースの実装。
type equipmentStore struct {
	vc  *ValkeyClient
	now func() time.Time
}

// NewEquipmentStore は新しいEquipmentStoreを生成する。
func NewEquipmentStore(vc *ValkeyClient) EquipmentStore {
	return &equipmentStore{vc: vc, now: time.Now}
}

// AssociateEquipment はIMEIの端末を登録し、加入者との観測記録を作成または更新する。
// 何度呼んでも端末・観測記録はそれぞれ1件のままで、初回観測日時は保持される。
func (s *equipmentStore) AssociateEquipment(ctx context.Context, sub *model.Subscriber, imei string) (*Association, error) {
	key := equipmentKey(imei)
	vals, err := associateEquipmentScript.Run(ctx, s.vc.Client(),
		[]string{key, KeySeqEquipment},
		imei, s.now().Unix(), sub.ID, KeyPrefixEquipWatch,
	).Int64Slice()
	if err != nil {
		return nil, valkeyErr("EVALSHA", key, err)
	}
	if len(vals) != 3 {
		return nil, fmt.Errorf("unexpected associate result: %v", vals)
	}
	return &Association{
		EquipmentID:  vals[0],
		NewEquipment: vals[1] == 1,
		NewWatch:     vals[2] == 1,
	}, nil
}

// GetWatch は加入者×端末の観測記録を取得する。
func (s *equipmentStore) GetWatch(ctx context.Context, subscriberID, equipmentID int64) (*model.EquipmentWatch, error) {
	key := equipWatchKey(subscriberID, equipmentID)
	cmd := s.vc.Client().HGetAll(ctx, key)
	m, err := cmd.Result()
	if err != nil {
		return nil, valkeyErr("HGETALL", key, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	var w model.EquipmentWatch
	if err := cmd.Scan(&w); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &w, nil
}
