// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// バリデーション関連エラー
var (
	// ErrInvalidIMSI は不正なIMSI形式エラー
	ErrInvalidIMSI = errors.New("invalid IMSI format")
	// ErrInvalidIMEI は不正なIMEI形式エラー
	ErrInvalidIMEI = errors.New("invalid IMEI format")
	// ErrInvalidHex は不正な16進数文字列エラー
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrInvalidLAC は範囲外のLACエラー
	ErrInvalidLAC = errors.New("invalid LAC")
)
