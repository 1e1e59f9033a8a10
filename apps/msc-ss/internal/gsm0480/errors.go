package gsm0480

import "errors"

// ErrDecodeFailed はLayer-3ペイロードが期待する構造に一致しない場合のエラー。
// 具体的な理由は %w でラップされたメッセージに含まれる。
var ErrDecodeFailed = errors.New("SS request decode failed")
