package gsm0480

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linxGnu/gosmpp/data"
	"golang.org/x/text/encoding/unicode"
)

type charset int

const (
	charsetGSM7 charset = iota
	charset8Bit
	charsetUCS2
)

const (
	septetCR = 0x0d
	// maxUSSDSeptets はUSSD-Stringに格納できる7bit文字数
	maxUSSDSeptets = MaxUSSDStringOctets * 8 / 7
	// ucs2LangPrefix はDCS 0x11で本文に先行する言語表示のオクテット数
	ucs2LangPrefix = 2
	// gsm7LangPrefix はDCS 0x10で本文に先行する言語表示（2文字+CR）の文字数
	gsm7LangPrefix = 3
)

var (
	errReservedDCS    = errors.New("reserved or unsupported DCS")
	errCompressedText = errors.New("compressed text is not supported")
	ucs2Encoding      = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// dcsCharset はCBS/USSD向けDCS（23.038 5章）から文字セットを判定する。
func dcsCharset(dcs uint8) (charset, error) {
	switch dcs >> 4 {
	case 0x0, 0x2, 0x3:
		return charsetGSM7, nil
	case 0x1:
		switch dcs & 0x0f {
		case 0x0:
			return charsetGSM7, nil
		case 0x1:
			return charsetUCS2, nil
		}
	case 0x4, 0x5, 0x6, 0x7, 0x9:
		if dcs&0x20 != 0 && dcs>>4 != 0x9 {
			return 0, errCompressedText
		}
		switch (dcs >> 2) & 0x03 {
		case 0:
			return charsetGSM7, nil
		case 1:
			return charset8Bit, nil
		case 2:
			return charsetUCS2, nil
		}
	case 0xf:
		if dcs&0x04 == 0 {
			return charsetGSM7, nil
		}
		return charset8Bit, nil
	}
	return 0, errReservedDCS
}

// DecodeUSSDString はDCSに従ってUSSD-Stringを文字列に復号する。
func DecodeUSSDString(dcs uint8, octets []byte) (string, error) {
	if len(octets) > MaxUSSDStringOctets {
		return "", fmt.Errorf("USSD string too long: %d octets", len(octets))
	}
	cs, err := dcsCharset(dcs)
	if err != nil {
		return "", fmt.Errorf("dcs 0x%02x: %w", dcs, err)
	}

	switch cs {
	case charsetGSM7:
		text, err := decodeGSM7(octets)
		if err != nil {
			return "", err
		}
		if dcs == 0x10 {
			text = stripRunes(text, gsm7LangPrefix)
		}
		return text, nil
	case charsetUCS2:
		if dcs == 0x11 {
			if len(octets) < ucs2LangPrefix {
				return "", fmt.Errorf("UCS2 string shorter than language prefix")
			}
			octets = octets[ucs2LangPrefix:]
		}
		if len(octets)%2 != 0 {
			return "", fmt.Errorf("UCS2 string has odd length %d", len(octets))
		}
		b, err := ucs2Encoding.NewDecoder().Bytes(octets)
		if err != nil {
			return "", fmt.Errorf("UCS2 decode: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("dcs 0x%02x: 8-bit data is not a USSD text", dcs)
	}
}

// EncodeUSSDString は応答テキストをUSSD-Stringに符号化する。
// デフォルトアルファベットで表現できればGSM 7bit、できなければUCS2を用いる。
// 容量を超える場合は末尾の文字から切り詰める。
func EncodeUSSDString(text string) (dcs uint8, octets []byte, err error) {
	runes := []rune(strings.ToValidUTF8(text, "?"))
	if len(runes) > MaxResponseTextLen {
		runes = runes[:MaxResponseTextLen]
	}

	if septets, gsmErr := data.GSM7BIT.Encode(string(runes)); gsmErr == nil {
		for len(septets) > maxUSSDSeptets {
			runes = runes[:len(runes)-1]
			if septets, gsmErr = data.GSM7BIT.Encode(string(runes)); gsmErr != nil {
				return 0, nil, fmt.Errorf("GSM 7bit encode: %w", gsmErr)
			}
		}
		return DCSGSM7Unspecified, packUSSD(septets), nil
	}

	enc := ucs2Encoding.NewEncoder()
	for {
		octets, err = enc.Bytes([]byte(string(runes)))
		if err != nil {
			return 0, nil, fmt.Errorf("UCS2 encode: %w", err)
		}
		if len(octets) <= MaxUSSDStringOctets {
			return DCSUCS2, octets, nil
		}
		runes = runes[:len(runes)-1]
	}
}

// decodeGSM7 はパック済み7bit列を復号する。
// オクテット境界で終わり最終セプテットがCRの場合は詰め物として除去する。
func decodeGSM7(octets []byte) (string, error) {
	n := len(octets) * 8 / 7
	septets := unpack7bit(octets, n)
	if n > 0 && len(octets)%7 == 0 && septets[n-1] == septetCR {
		septets = septets[:n-1]
	}
	text, err := data.GSM7BIT.Decode(septets)
	if err != nil {
		return "", fmt.Errorf("GSM 7bit decode: %w", err)
	}
	return text, nil
}

// packUSSD はセプテット列をCBS/USSD規則（23.038 6.1.2.3.1）でパックする。
func packUSSD(septets []byte) []byte {
	switch {
	case len(septets)%8 == 7:
		// 残り7bitが@と誤認されないようCRを詰める
		septets = append(septets, septetCR)
	case len(septets) > 0 && len(septets)%8 == 0 && septets[len(septets)-1] == septetCR:
		// 末尾のCRが詰め物と誤認されないようCRを追加する
		septets = append(septets, septetCR)
	}
	return pack7bit(septets)
}

// pack7bit はセプテット列を7bitパックする。
func pack7bit(septets []byte) []byte {
	out := make([]byte, (len(septets)*7+7)/8)
	for i, s := range septets {
		bit := i * 7
		idx := bit / 8
		shift := uint(bit % 8)
		s &= 0x7f
		out[idx] |= s << shift
		if shift > 1 {
			out[idx+1] |= s >> (8 - shift)
		}
	}
	return out
}

// unpack7bit はパック済みオクテット列からn個のセプテットを取り出す。
func unpack7bit(octets []byte, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		bit := i * 7
		idx := bit / 8
		shift := uint(bit % 8)
		v := uint16(octets[idx]) >> shift
		if shift > 1 {
			v |= uint16(octets[idx+1]) << (8 - shift)
		}
		out[i] = byte(v & 0x7f)
	}
	return out
}

func stripRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return ""
	}
	return string(r[n:])
}
