package gateway

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// EnvelopeTypeUSSD はエンベロープの種別タグ
const EnvelopeTypeUSSD = "ussd"

// Envelope はゲートウェイへ送るリクエスト。
// フィールド順はそのままJSONのキー順になる。
type Envelope struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Opcode string `json:"opcode"` // テキスト先頭バイトの10進値
	IMSI   string `json:"imsi"`
}

// NewEnvelope はUSSDテキストと加入者IMSIからエンベロープを生成する。
func NewEnvelope(text, imsi string) *Envelope {
	opcode := "0"
	if len(text) > 0 {
		opcode = strconv.Itoa(int(text[0]))
	}
	return &Envelope{
		Type:   EnvelopeTypeUSSD,
		Text:   text,
		Opcode: opcode,
		IMSI:   imsi,
	}
}

// Marshal は改行なしのコンパクトなJSONを返す。
func (e *Envelope) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
