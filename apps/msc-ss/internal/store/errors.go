package store

import "errors"

var (
	// ErrValkeyUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrNotFound は指定されたレコードが存在しない場合のエラー
	ErrNotFound = errors.New("record not found")

	// ErrPersistence はSMSの永続化に失敗した場合のエラー
	ErrPersistence = errors.New("persistence failed")

	// ErrTMSIConflict はTMSIが他の加入者に割当済みの場合のエラー
	ErrTMSIConflict = errors.New("tmsi already assigned")

	// ErrExtensionConflict は内線番号が他の加入者に割当済みの場合のエラー
	ErrExtensionConflict = errors.New("extension already assigned")
)
