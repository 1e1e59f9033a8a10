package gsm0480

// プロトコル識別子（24.007 11.2.3.1.1）
const (
	PDNonCallSS uint8 = 0x0b
)

// メッセージタイプ（24.080 3.4）
const (
	MsgTypeReleaseComplete uint8 = 0x2a
	MsgTypeFacility        uint8 = 0x3a
	MsgTypeRegister        uint8 = 0x3b

	// msgTypeMask はN(SD)ビットを除去するマスク
	msgTypeMask uint8 = 0xbf
)

// 情報要素識別子
const (
	IEICause     uint8 = 0x08
	IEIFacility  uint8 = 0x1c
	IEISSVersion uint8 = 0x7f
)

// コンポーネントタイプ（context-specific, constructed）
const (
	ComponentInvoke       = 1
	ComponentReturnResult = 2
	ComponentReturnError  = 3
	ComponentReject       = 4
)

// オペレーションコード（29.002 localValue）
const (
	OpRegisterSS     = 10
	OpEraseSS        = 11
	OpActivateSS     = 12
	OpDeactivateSS   = 13
	OpInterrogateSS  = 14
	OpProcessUSSDReq = 59
	OpUSSDRequest    = 60
	OpUSSDNotify     = 61
)

// linkedIDTag はInvoke内のLinkedID（[0] IMPLICIT）のタグ番号
const linkedIDTag = 0

// データコーディングスキーム
const (
	// DCSGSM7Unspecified はGSM 7bitデフォルトアルファベット（言語指定なし）
	DCSGSM7Unspecified uint8 = 0x0f
	// DCSUCS2 はUCS2（一般データコーディング、非圧縮）
	DCSUCS2 uint8 = 0x48
)

// 長さ制限
const (
	// MaxUSSDStringOctets はUSSD-Stringの最大オクテット長
	MaxUSSDStringOctets = 160
	// MaxResponseTextLen は応答テキストの最大文字数
	MaxResponseTextLen = 130
	// maxInvokeID はInvokeIDの上限（INTEGER (-128..127)）
	maxInvokeID = 127
	minInvokeID = -128
)

// Problem はRejectコンポーネントの問題コード。
type Problem struct {
	Tag  int   // context-specific タグ番号（0:general, 1:invoke）
	Code uint8 // 問題コード
}

// 定義済み問題コード
var (
	ProblemUnrecognizedComponent = Problem{Tag: 0, Code: 0x00}
	ProblemMistypedComponent     = Problem{Tag: 0, Code: 0x01}
	ProblemUnrecognizedOperation = Problem{Tag: 1, Code: 0x01}
)
