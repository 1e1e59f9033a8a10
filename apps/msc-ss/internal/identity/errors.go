package identity

import "errors"

// ErrIdentityAllocationExhausted は試行回数内に未使用のTMSIを確保できなかった場合のエラー。
// 一時的な状態であり、呼び出し側は再試行してよい。
var ErrIdentityAllocationExhausted = errors.New("tmsi allocation exhausted")
