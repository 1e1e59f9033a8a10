package dto

import "github.com/oyaguma3/msc-ss-poc/pkg/model"

// SSResponse はSS/USSDメッセージ処理結果を表す。
// Facility は送信すべきL3メッセージを送信順に並べたもの。
type SSResponse struct {
	TraceID  string   `json:"trace_id"`
	Outcome  string   `json:"outcome"`
	Handler  string   `json:"handler,omitempty"`
	Facility []string `json:"facility"`
	Released bool     `json:"released"`
	Error    string   `json:"error,omitempty"`
}

// EquipmentResponse は端末観測結果を表す。
type EquipmentResponse struct {
	EquipmentID  int64 `json:"equipment_id"`
	NewEquipment bool  `json:"new_equipment"`
	NewWatch     bool  `json:"new_watch"`
}

// SMSCreatedResponse はSMS蓄積結果を表す。
type SMSCreatedResponse struct {
	ID int64 `json:"id"`
}

// SMSListResponse は未送信SMSの一覧を表す。
type SMSListResponse struct {
	Messages []*model.SMS `json:"messages"`
}

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
}
