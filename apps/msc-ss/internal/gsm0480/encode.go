package gsm0480

import (
	"encoding/asn1"
	"fmt"
)

// BERタグ（単一オクテット）
const (
	tagInteger      = 0x02
	tagOctetString  = 0x04
	tagNull         = 0x05
	tagSequence     = 0x30
	tagReturnResult = 0xa2
	tagReject       = 0xa4
)

// tiFlagNetwork は網側から送るメッセージのTIフラグ
const tiFlagNetwork = 0x80

// maxFacilityLen はFacility IEの長さオクテットで表せる上限
const maxFacilityLen = 0xff

// EncodeUSSDResponse はprocessUnstructuredSS-Requestへの応答を符号化する。
// Facility IE内のReturnResultにInvokeIDとUSSD文字列を格納したRELEASE COMPLETEを返す。
func EncodeUSSDResponse(req *SSRequest, text string) ([]byte, error) {
	dcs, str, err := EncodeUSSDString(text)
	if err != nil {
		return nil, err
	}
	invokeID, err := asn1.Marshal(req.InvokeID)
	if err != nil {
		return nil, fmt.Errorf("invoke id: %w", err)
	}

	arg := appendTLV(nil, tagSequence,
		concat(
			appendTLV(nil, tagOctetString, []byte{dcs}),
			appendTLV(nil, tagOctetString, str),
		))
	result := appendTLV(nil, tagSequence,
		concat(appendTLV(nil, tagInteger, []byte{OpProcessUSSDReq}), arg))
	component := appendTLV(nil, tagReturnResult, concat(invokeID, result))

	if len(component) > maxFacilityLen {
		return nil, fmt.Errorf("facility too long: %d octets", len(component))
	}
	return releaseComplete(req.TransactionID, component), nil
}

// EncodeReject はRejectコンポーネントを持つRELEASE COMPLETEを符号化する。
// invokeID が不明な場合は NULL を設定する。
func EncodeReject(transactionID uint8, invokeID *int, problem Problem) []byte {
	var id []byte
	if invokeID != nil {
		// 範囲外の値は復号時点で弾かれているため Marshal は失敗しない
		id, _ = asn1.Marshal(*invokeID)
	}
	if id == nil {
		id = []byte{tagNull, 0x00}
	}
	problemTag := byte(0x80 | problem.Tag)
	component := appendTLV(nil, tagReject,
		concat(id, appendTLV(nil, problemTag, []byte{problem.Code})))
	return releaseComplete(transactionID, component)
}

// releaseComplete はL3ヘッダとFacility IEを付与する。
func releaseComplete(transactionID uint8, component []byte) []byte {
	out := make([]byte, 0, l3HeaderLen+2+len(component))
	out = append(out,
		tiFlagNetwork|(transactionID&0x07)<<4|PDNonCallSS,
		MsgTypeReleaseComplete,
		IEIFacility,
		byte(len(component)),
	)
	return append(out, component...)
}

// appendTLV は単一オクテットのタグでBER TLVを追加する。
func appendTLV(dst []byte, tag byte, value []byte) []byte {
	dst = append(dst, tag)
	switch n := len(value); {
	case n < 0x80:
		dst = append(dst, byte(n))
	case n <= 0xff:
		dst = append(dst, 0x81, byte(n))
	default:
		dst = append(dst, 0x82, byte(n>>8), byte(n))
	}
	return append(dst, value...)
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
