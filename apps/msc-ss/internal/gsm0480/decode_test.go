package gsm0480

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// processUSS-Request "*1000#"（TI=0, InvokeID=1, SSバージョン付き）
const register1000 = "0b7b1c15a113020101" + "02013b" + "300b04010f0406aa180c061b01" + "7f0100"

func TestDecodeSSRequest_USSD(t *testing.T) {
	req, err := DecodeSSRequest(mustHex(t, register1000))
	require.NoError(t, err)

	assert.Equal(t, uint8(0), req.TransactionID)
	assert.Equal(t, MsgTypeRegister, req.MessageType)
	assert.Equal(t, 1, req.InvokeID)
	assert.Equal(t, OpProcessUSSDReq, req.Opcode)
	assert.Equal(t, uint8(0), req.SSCode)
	assert.Equal(t, DCSGSM7Unspecified, req.DCS)
	assert.Equal(t, "*1000#", req.USSDText)
	assert.True(t, req.HasText())
}

func TestDecodeSSRequest_TransactionID(t *testing.T) {
	// TI=5（0x5b）、N(SD)ビットなしのREGISTER
	payload := mustHex(t, "5b3b1c11a10f020107"+"02013b"+"300704010f0402aa11")
	req, err := DecodeSSRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, uint8(5), req.TransactionID)
	assert.Equal(t, 7, req.InvokeID)
	assert.Equal(t, "*#", req.USSDText)
}

func TestDecodeSSRequest_FacilityMessage(t *testing.T) {
	// FACILITYメッセージのFacility IEはLV形式
	payload := mustHex(t, "8b3a13a111020102"+"02013b"+"300904010f0404aa180c06")
	req, err := DecodeSSRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, MsgTypeFacility, req.MessageType)
	assert.Equal(t, 2, req.InvokeID)
	assert.Equal(t, "*100", req.USSDText)
}

func TestDecodeSSRequest_LinkedID(t *testing.T) {
	payload := mustHex(t, "0b7b1c18a116020103"+"800102"+"02013b"+"300b04010f0406aa180c061b01")
	req, err := DecodeSSRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, 3, req.InvokeID)
	assert.Equal(t, "*1000#", req.USSDText)
}

func TestDecodeSSRequest_SkipsUnknownIE(t *testing.T) {
	facility := "1c15a113020101" + "02013b" + "300b04010f0406aa180c061b01"
	tests := []struct {
		name    string
		payload string
	}{
		{"before facility", "0b7b" + "4501aa" + facility},
		{"after facility", "0b7b" + facility + "4502aabb"},
		{"empty value", "0b7b" + "6000" + facility + "7f0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeSSRequest(mustHex(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, MsgTypeRegister, req.MessageType)
			assert.Equal(t, 1, req.InvokeID)
			assert.Equal(t, "*1000#", req.USSDText)
		})
	}
}

func TestDecodeSSRequest_Interrogate(t *testing.T) {
	// interrogateSS（ss-Code=0x21 CFU）
	payload := mustHex(t, "0b7b1c0da10b020103"+"02010e"+"3003040121"+"7f0100")
	req, err := DecodeSSRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, OpInterrogateSS, req.Opcode)
	assert.Equal(t, uint8(0x21), req.SSCode)
	assert.Empty(t, req.USSDText)
	assert.False(t, req.HasText())
}

func TestDecodeSSRequest_ReleaseComplete(t *testing.T) {
	req, err := DecodeSSRequest(mustHex(t, "0b2a"))
	require.NoError(t, err)

	assert.Equal(t, MsgTypeReleaseComplete, req.MessageType)
	assert.True(t, req.IsReleaseComplete())
	assert.False(t, req.HasText())
	assert.Equal(t, uint8(0), req.SSCode)
}

func TestDecodeSSRequest_UCS2(t *testing.T) {
	// DCS=0x48、"*1#"
	payload := mustHex(t, "0b3b1c15a113020104"+"02013b"+"300b040148"+"0406002a00310023")
	req, err := DecodeSSRequest(payload)
	require.NoError(t, err)

	assert.Equal(t, DCSUCS2, req.DCS)
	assert.Equal(t, "*1#", req.USSDText)
}

func TestDecodeSSRequest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"header only one octet", "0b"},
		{"wrong protocol discriminator", "05" + "3b1c00"},
		{"unsupported message type", "0b31"},
		{"register without facility", "0b3b7f0100"},
		{"facility length overrun", "0b3b1c20a113"},
		{"facility LV overrun", "0b3a40a1"},
		{"empty facility after unknown IE", "0b3b0401001c00"},
		{"unknown IE length overrun", "0b3b4505aa"},
		{"unknown IE without facility", "0b3b4501aa7f0100"},
		{"return result component", "0b3b1c05a203020101"},
		{"reject component", "0b3b1c05a403020101"},
		{"universal component tag", "0b3b1c053003020101"},
		{"truncated invoke", "0b3b1c05a1050201"},
		{"missing opcode", "0b3b1c05a103020101"},
		{"unsupported operation", "0b3b1c0aa108020101" + "02013d" + "3000"},
		{"invoke id is not integer", "0b3b1c08a106040101" + "02013b"},
		{"ussd arg not sequence", "0b3b1c0ea10c020101" + "02013b" + "040104" + "0f0000"},
		{"dcs wrong length", "0b3b1c12a110020101" + "02013b" + "3008" + "04020f0f" + "0402aa18"},
		{"8-bit dcs", "0b3b1c10a10e020101" + "02013b" + "3006" + "040144" + "040141"},
		{"odd UCS2 length", "0b3b1c10a10e020101" + "02013b" + "3006" + "040148" + "040100"},
		{"interrogate without ss-code", "0b3b1c0aa108020101" + "02010e" + "3000"},
		{"ss-code wrong length", "0b3b1c0ea10c020101" + "02010e" + "3004" + "04022100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeSSRequest(mustHex(t, tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecodeFailed)
			assert.Nil(t, req, "partially-populated request must not be returned")
		})
	}
}

func TestPeekTransactionID(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		wantTI  uint8
		wantOK  bool
	}{
		{"ti 0", []byte{0x0b, 0x3b}, 0, true},
		{"ti 6 with flag", []byte{0xeb, 0x3b}, 6, true},
		{"not SS", []byte{0x05, 0x08}, 0, false},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti, ok := PeekTransactionID(tt.payload)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTI, ti)
		})
	}
}
