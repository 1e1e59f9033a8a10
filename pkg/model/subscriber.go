// Package model は共通データ構造体を提供する。
package model

// Subscriber は加入者情報を表す。
// Valkeyキー: sub:{IMSI}
// TMSIと内線番号はそれぞれ idx:tmsi:{TMSI} / idx:ext:{Extension} で一意性を保証する。
type Subscriber struct {
	ID         int64  `json:"id" redis:"id"`                 // ストア採番の加入者ID
	IMSI       string `json:"imsi" redis:"imsi"`             // 国際移動体加入者識別番号（15桁）
	TMSI       string `json:"tmsi,omitempty" redis:"tmsi"`   // 一時識別子（10進文字列、空は未割当）
	Extension  string `json:"extension" redis:"extension"`   // 内線番号
	Name       string `json:"name,omitempty" redis:"name"`   // 表示名
	Authorized bool   `json:"authorized" redis:"authorized"` // 発着信許可
	LAC        int    `json:"lac" redis:"lac"`               // 位置登録エリアコード
	Created    int64  `json:"created" redis:"created"`       // 作成日時（Unix秒）
	Updated    int64  `json:"updated" redis:"updated"`       // 最終更新日時（Unix秒）
}

// HasTMSI はTMSIが割り当て済みかどうかを返す。
func (s *Subscriber) HasTMSI() bool {
	return s.TMSI != ""
}
