package ussd

import "errors"

// ErrSubscriberUnavailable は組込みハンドラが加入者情報を取得できない場合のエラー
var ErrSubscriberUnavailable = errors.New("subscriber unavailable")
