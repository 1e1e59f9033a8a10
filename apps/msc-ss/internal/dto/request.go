// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

// SSRequest はSS/USSDメッセージ処理リクエストを表す。
type SSRequest struct {
	IMSI string `json:"imsi" binding:"required"`
	L3   string `json:"l3" binding:"required"` // Layer 3メッセージ（16進文字列）
}

// LocationUpdateRequest は位置登録リクエストを表す。
type LocationUpdateRequest struct {
	LAC  int    `json:"lac" binding:"required"`
	IMEI string `json:"imei,omitempty"`
}

// SubscriberUpdateRequest は加入者属性の更新リクエストを表す。
// 省略された属性は変更しない。
type SubscriberUpdateRequest struct {
	Extension  *string `json:"extension,omitempty"`
	Name       *string `json:"name,omitempty"`
	Authorized *bool   `json:"authorized,omitempty"`
}

// EquipmentRequest は端末観測リクエストを表す。
type EquipmentRequest struct {
	IMEI string `json:"imei" binding:"required"`
}

// SMSRequest はSMS蓄積リクエストを表す。
type SMSRequest struct {
	SenderID   int64  `json:"sender_id" binding:"required"`
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Header     string `json:"header,omitempty"` // UDH（16進文字列）
	Text       string `json:"text" binding:"required"`
}
