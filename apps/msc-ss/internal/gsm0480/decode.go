package gsm0480

import (
	"encoding/asn1"
	"fmt"
)

// l3HeaderLen はPD/TIオクテットとメッセージタイプの長さ
const l3HeaderLen = 2

// DecodeSSRequest は移動機発のSSメッセージを復号する。
// 失敗時は部分的に埋まった要求を返さず、ErrDecodeFailed をラップしたエラーを返す。
func DecodeSSRequest(payload []byte) (*SSRequest, error) {
	if len(payload) < l3HeaderLen {
		return nil, decodeErr("message too short: %d octets", len(payload))
	}
	if payload[0]&0x0f != PDNonCallSS {
		return nil, decodeErr("unexpected protocol discriminator 0x%x", payload[0]&0x0f)
	}

	req := &SSRequest{
		TransactionID: (payload[0] >> 4) & 0x07,
		MessageType:   payload[1] & msgTypeMask,
	}
	body := payload[l3HeaderLen:]

	var facility []byte
	switch req.MessageType {
	case MsgTypeReleaseComplete:
		// 任意のCause/Facilityは解釈しない
		req.USSDText = ReleaseCompleteText
		return req, nil
	case MsgTypeRegister:
		ie, err := findFacilityIE(body)
		if err != nil {
			return nil, err
		}
		facility = ie
	case MsgTypeFacility:
		// FACILITYメッセージのFacility IEはLV形式
		if len(body) < 1 || int(body[0]) > len(body)-1 {
			return nil, decodeErr("facility LV exceeds message length")
		}
		facility = body[1 : 1+int(body[0])]
	default:
		return nil, decodeErr("unsupported message type 0x%02x", req.MessageType)
	}

	if err := parseFacility(facility, req); err != nil {
		return nil, err
	}
	return req, nil
}

// PeekTransactionID は復号できないメッセージのRejectに使うTIを取り出す。
func PeekTransactionID(payload []byte) (uint8, bool) {
	if len(payload) < 1 || payload[0]&0x0f != PDNonCallSS {
		return 0, false
	}
	return (payload[0] >> 4) & 0x07, true
}

// findFacilityIE はREGISTERメッセージのTLV列からFacility IEの値を探す。
// 未知のIEがあっても拒否しない。
func findFacilityIE(ies []byte) ([]byte, error) {
	for len(ies) > 0 {
		if len(ies) < 2 {
			return nil, decodeErr("truncated information element 0x%02x", ies[0])
		}
		iei, length := ies[0], int(ies[1])
		if length > len(ies)-2 {
			return nil, decodeErr("IE 0x%02x length %d exceeds message", iei, length)
		}
		// SSバージョンや原因値を含め、Facility以外のIEは長さだけ確認して読み飛ばす
		if iei == IEIFacility {
			return ies[2 : 2+length], nil
		}
		ies = ies[2+length:]
	}
	return nil, decodeErr("facility IE missing")
}

// parseFacility はFacility IE内の先頭コンポーネントを解釈する。
func parseFacility(facility []byte, req *SSRequest) error {
	var comp asn1.RawValue
	if _, err := asn1.Unmarshal(facility, &comp); err != nil {
		return decodeErr("component: %v", err)
	}
	if comp.Class != asn1.ClassContextSpecific || !comp.IsCompound {
		return decodeErr("invalid component tag class=%d tag=%d", comp.Class, comp.Tag)
	}
	if comp.Tag != ComponentInvoke {
		return decodeErr("unsupported component type %d", comp.Tag)
	}
	return parseInvoke(comp.Bytes, req)
}

// parseInvoke はInvokeコンポーネントを解釈する。
func parseInvoke(b []byte, req *SSRequest) error {
	invokeID, rest, err := parseInteger(b, "invoke id")
	if err != nil {
		return err
	}
	if invokeID < minInvokeID || invokeID > maxInvokeID {
		return decodeErr("invoke id %d out of range", invokeID)
	}
	req.InvokeID = invokeID

	// LinkedIDは読み飛ばす
	var next asn1.RawValue
	if _, err := asn1.Unmarshal(rest, &next); err == nil &&
		next.Class == asn1.ClassContextSpecific && next.Tag == linkedIDTag {
		rest = rest[len(next.FullBytes):]
	}

	opcode, rest, err := parseInteger(rest, "operation code")
	if err != nil {
		return err
	}
	req.Opcode = opcode

	switch opcode {
	case OpProcessUSSDReq:
		return parseUSSDArg(rest, req)
	case OpRegisterSS, OpEraseSS, OpActivateSS, OpDeactivateSS, OpInterrogateSS:
		return parseSSForBSArg(rest, req)
	default:
		return decodeErr("unsupported operation %d", opcode)
	}
}

// parseUSSDArg はUSSD-Arg（DCSとUSSD-String）を解釈する。
func parseUSSDArg(b []byte, req *SSRequest) error {
	seq, err := parseSequence(b, "USSD-Arg")
	if err != nil {
		return err
	}

	dcs, rest, err := parseOctetString(seq, "DCS")
	if err != nil {
		return err
	}
	if len(dcs) != 1 {
		return decodeErr("DCS length %d", len(dcs))
	}
	str, _, err := parseOctetString(rest, "USSD-String")
	if err != nil {
		return err
	}

	text, err := DecodeUSSDString(dcs[0], str)
	if err != nil {
		return decodeErr("%v", err)
	}
	req.DCS = dcs[0]
	req.USSDText = text
	return nil
}

// parseSSForBSArg はSS-ForBS-Arg等の先頭ss-Codeを取り出す。
func parseSSForBSArg(b []byte, req *SSRequest) error {
	seq, err := parseSequence(b, "SS-ForBS-Arg")
	if err != nil {
		return err
	}
	code, _, err := parseOctetString(seq, "ss-Code")
	if err != nil {
		return err
	}
	if len(code) != 1 {
		return decodeErr("ss-Code length %d", len(code))
	}
	req.SSCode = code[0]
	return nil
}

func parseInteger(b []byte, name string) (int, []byte, error) {
	var rv asn1.RawValue
	rest, err := asn1.Unmarshal(b, &rv)
	if err != nil {
		return 0, nil, decodeErr("%s: %v", name, err)
	}
	if rv.Class != asn1.ClassUniversal || rv.Tag != asn1.TagInteger {
		return 0, nil, decodeErr("%s: unexpected tag %d", name, rv.Tag)
	}
	var v int
	if _, err := asn1.Unmarshal(rv.FullBytes, &v); err != nil {
		return 0, nil, decodeErr("%s: %v", name, err)
	}
	return v, rest, nil
}

func parseSequence(b []byte, name string) ([]byte, error) {
	var rv asn1.RawValue
	if _, err := asn1.Unmarshal(b, &rv); err != nil {
		return nil, decodeErr("%s: %v", name, err)
	}
	if rv.Class != asn1.ClassUniversal || rv.Tag != asn1.TagSequence || !rv.IsCompound {
		return nil, decodeErr("%s: unexpected tag %d", name, rv.Tag)
	}
	return rv.Bytes, nil
}

func parseOctetString(b []byte, name string) ([]byte, []byte, error) {
	var rv asn1.RawValue
	rest, err := asn1.Unmarshal(b, &rv)
	if err != nil {
		return nil, nil, decodeErr("%s: %v", name, err)
	}
	if rv.Class != asn1.ClassUniversal || rv.Tag != asn1.TagOctetString || rv.IsCompound {
		return nil, nil, decodeErr("%s: unexpected tag %d", name, rv.Tag)
	}
	return rv.Bytes, rest, nil
}

func decodeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecodeFailed, fmt.Sprintf(format, args...))
}
