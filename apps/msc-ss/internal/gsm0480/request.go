// Package gsm0480 は移動機発のSS/USSDメッセージ（24.080）の復号と応答の符号化を提供する。
package gsm0480

// ReleaseCompleteText はRELEASE COMPLETE受信を表すUSSDテキストの番兵値。
const ReleaseCompleteText = "\xff"

// SSRequest は復号済みのSS要求を表す。
// リクエスト単位で生成され、永続化されない。
type SSRequest struct {
	TransactionID uint8  // TI値（0〜7）
	MessageType   uint8  // N(SD)除去後のメッセージタイプ
	InvokeID      int    // Invokeコンポーネントの InvokeID
	Opcode        int    // オペレーションコード
	SSCode        uint8  // SSコード（0は指定なし）
	DCS           uint8  // USSD-StringのDCS
	USSDText      string // 復号済みUSSD文字列（空、または番兵値）
}

// IsReleaseComplete は番兵値を持つかどうかを返す。
func (r *SSRequest) IsReleaseComplete() bool {
	return r.USSDText == ReleaseCompleteText
}

// HasText は有効なUSSDテキストを持つかどうかを返す。
func (r *SSRequest) HasText() bool {
	return r.USSDText != "" && !r.IsReleaseComplete()
}
