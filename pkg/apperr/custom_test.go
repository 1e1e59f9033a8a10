package apperr

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("Error message format", func(t *testing.T) {
		err := NewValidationError("imsi", "must be 15 digits")
		got := err.Error()
		if !strings.Contains(got, "validation error") {
			t.Errorf("error message should contain 'validation error': %s", got)
		}
		if !strings.Contains(got, "field=imsi") {
			t.Errorf("error message should contain 'field=imsi': %s", got)
		}
		if !strings.Contains(got, "message=must be 15 digits") {
			t.Errorf("error message should contain 'message=must be 15 digits': %s", got)
		}
	})

	t.Run("Fields are accessible", func(t *testing.T) {
		err := NewValidationError("imei", "must be 14 to 16 digits")
		if err.Field != "imei" {
			t.Errorf("Field = %q, want %q", err.Field, "imei")
		}
		if err.Message != "must be 14 to 16 digits" {
			t.Errorf("Message = %q, want %q", err.Message, "must be 14 to 16 digits")
		}
	})
}

func TestValkeyError(t *testing.T) {
	t.Run("Error message without cause", func(t *testing.T) {
		err := NewValkeyError("GET", "sub:440101234567890", nil)
		got := err.Error()
		if !strings.Contains(got, "valkey error") {
			t.Errorf("error message should contain 'valkey error': %s", got)
		}
		if !strings.Contains(got, "operation=GET") {
			t.Errorf("error message should contain 'operation=GET': %s", got)
		}
		if !strings.Contains(got, "key=sub:440101234567890") {
			t.Errorf("error message should contain 'key=sub:440101234567890': %s", got)
		}
	})

	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("WRONGTYPE Operation")
		err := NewValkeyError("HGET", "sms:42", cause)
		got := err.Error()
		if !strings.Contains(got, "cause=WRONGTYPE Operation") {
			t.Errorf("error message should contain cause: %s", got)
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("connection lost")
		err := NewValkeyError("SET", "key", cause)
		if err.Unwrap() != cause {
			t.Error("Unwrap should return the cause")
		}
	})

	t.Run("errors.Is with wrapped sentinel error", func(t *testing.T) {
		sentinel := errors.New("valkey unavailable")
		err := NewValkeyError("PING", "", sentinel)
		if !errors.Is(err, sentinel) {
			t.Error("errors.Is should find wrapped sentinel error")
		}
	})

	t.Run("Fields are accessible", func(t *testing.T) {
		err := NewValkeyError("EVALSHA", "idx:tmsi:305419896", nil)
		if err.Operation != "EVALSHA" {
			t.Errorf("Operation = %q, want %q", err.Operation, "EVALSHA")
		}
		if err.Key != "idx:tmsi:305419896" {
			t.Errorf("Key = %q, want %q", err.Key, "idx:tmsi:305419896")
		}
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message format", func(t *testing.T) {
		err := NewConflictError("extension", "1001", nil)
		got := err.Error()
		if !strings.Contains(got, "field=extension") {
			t.Errorf("error message should contain 'field=extension': %s", got)
		}
		if !strings.Contains(got, "value=1001") {
			t.Errorf("error message should contain 'value=1001': %s", got)
		}
	})

	t.Run("errors.Is with sentinel cause", func(t *testing.T) {
		sentinel := errors.New("extension conflict")
		err := NewConflictError("extension", "1001", sentinel)
		if !errors.Is(err, sentinel) {
			t.Error("errors.Is should find the sentinel cause")
		}
	})

	t.Run("errors.As extracts fields", func(t *testing.T) {
		var wrapped error = NewConflictError("tmsi", "305419896", nil)
		var ce *ConflictError
		if !errors.As(wrapped, &ce) {
			t.Fatal("errors.As should match *ConflictError")
		}
		if ce.Field != "tmsi" {
			t.Errorf("Field = %q, want %q", ce.Field, "tmsi")
		}
	})
}
