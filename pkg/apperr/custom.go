package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ValkeyError はValkeyとの操作エラーを表す。
type ValkeyError struct {
	Operation string // 操作名（GET, SET, DEL等）
	Key       string // 操作対象のキー
	Cause     error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *ValkeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("valkey error: operation=%s, key=%s, cause=%v",
			e.Operation, e.Key, e.Cause)
	}
	return fmt.Sprintf("valkey error: operation=%s, key=%s", e.Operation, e.Key)
}

// Unwrap は根本原因を返す。
func (e *ValkeyError) Unwrap() error {
	return e.Cause
}

// NewValkeyError はValkeyErrorを生成する。
func NewValkeyError(operation, key string, cause error) *ValkeyError {
	return &ValkeyError{
		Operation: operation,
		Key:       key,
		Cause:     cause,
	}
}

// ConflictError は一意性制約の衝突を表す。
// Field には衝突した属性名（tmsi, extension）が入る。
type ConflictError struct {
	Field string // 衝突した属性名
	Value string // 衝突した値
	Cause error  // 呼び出し側で判定するためのセンチネル
}

// Error はerrorインターフェースを実装する。
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: field=%s, value=%s", e.Field, e.Value)
}

// Unwrap は根本原因を返す。
func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// NewConflictError はConflictErrorを生成する。
func NewConflictError(field, value string, cause error) *ConflictError {
	return &ConflictError{
		Field: field,
		Value: value,
		Cause: cause,
	}
}
