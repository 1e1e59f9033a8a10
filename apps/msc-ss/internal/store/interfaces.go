package store

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_store.go -package=mocks

import (
	"context"

	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// LookupField は加入者検索に使う属性を表す
type LookupField string

// 加入者検索属性
const (
	FieldIMSI      LookupField = "imsi"
	FieldTMSI      LookupField = "tmsi"
	FieldExtension LookupField = "extension"
)

// SubscriberStore は加入者データへのアクセスを定義する
type SubscriberStore interface {
	// CreateOrTouch はIMSIの加入者を取得し更新日時を更新する。未登録なら作成する
	CreateOrTouch(ctx context.Context, imsi string) (*model.Subscriber, error)
	// Get は指定属性で加入者を検索する。未登録の場合はErrNotFoundを返す
	Get(ctx context.Context, field LookupField, value string) (*model.Subscriber, error)
	// Sync は加入者の可変属性（TMSI、内線番号、名前、許可、LAC）を書き戻す
	Sync(ctx context.Context, sub *model.Subscriber) error
	// ClaimTMSI はTMSIを加入者に割り当てる。他加入者が保持していればErrTMSIConflictを返す
	ClaimTMSI(ctx context.Context, sub *model.Subscriber, tmsi string) error
}

// EquipmentStore は端末観測データへのアクセスを定義する
type EquipmentStore interface {
	// AssociateEquipment はIMEIの端末を登録し、加入者との観測記録を更新する
	AssociateEquipment(ctx context.Context, sub *model.Subscriber, imei string) (*Association, error)
	// GetWatch は加入者×端末の観測記録を取得する。未登録の場合はErrNotFoundを返す
	GetWatch(ctx context.Context, subscriberID, equipmentID int64) (*model.EquipmentWatch, error)
}

// SMSStore は蓄積SMSへのアクセスを定義する
type SMSStore interface {
	// StoreSMS は未送信SMSを保存し採番したIDを返す
	StoreSMS(ctx context.Context, sms *model.SMS) (int64, error)
	// MarkSMSSent はSMSを送信済みにする。未登録の場合はErrNotFoundを返す
	MarkSMSSent(ctx context.Context, id int64) error
	// FetchUnsentSMS はID minID 以上の未送信SMSをID昇順で返す
	FetchUnsentSMS(ctx context.Context, minID int64, limit int) ([]*model.SMS, error)
}

// Association はAssociateEquipmentの結果を表す
type Association struct {
	EquipmentID  int64 // 端末ID
	NewEquipment bool  // 端末を新規登録した
	NewWatch     bool  // 加入者×端末の組み合わせを初めて観測した
}
