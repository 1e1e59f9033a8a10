package model

// SMS は蓄積型ショートメッセージを表す。
// Valkeyキー: sms:{ID}
// 未送信のものは idx:sms:unsent（スコア=ID）にも登録される。
type SMS struct {
	ID         int64  `json:"id" redis:"id"`
	SenderID   int64  `json:"sender_id" redis:"sender_id"`
	ReceiverID int64  `json:"receiver_id" redis:"receiver_id"`
	Header     string `json:"header,omitempty" redis:"header"` // UDH（16進文字列）
	Text       string `json:"text" redis:"text"`
	Created    int64  `json:"created" redis:"created"`     // 作成日時（Unix秒）
	Sent       int64  `json:"sent,omitempty" redis:"sent"` // 送信完了日時（Unix秒、0は未送信）
}

// NewSMS は未送信状態のSMSを生成する。IDと作成日時はストアが設定する。
func NewSMS(senderID, receiverID int64, header, text string) *SMS {
	return &SMS{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Header:     header,
		Text:       text,
	}
}

// IsSent は送信済みかどうかを返す。
func (m *SMS) IsSent() bool {
	return m.Sent != 0
}
