package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidIMSI", ErrInvalidIMSI, "invalid IMSI format"},
		{"ErrInvalidIMEI", ErrInvalidIMEI, "invalid IMEI format"},
		{"ErrInvalidHex", ErrInvalidHex, "invalid hex string"},
		{"ErrInvalidLAC", ErrInvalidLAC, "invalid LAC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	allErrors := []error{ErrInvalidIMSI, ErrInvalidIMEI, ErrInvalidHex, ErrInvalidLAC}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("errors.Is(%v, %v) = true, want false", err1, err2)
			}
		}
	}
}

func TestSentinelWrapsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrInvalidIMSI, NewValidationError("imsi", "IMSI must be 15 digits"))
	if !errors.Is(wrapped, ErrInvalidIMSI) {
		t.Error("wrapped error should match with errors.Is")
	}
	if errors.Is(wrapped, ErrInvalidLAC) {
		t.Error("wrapped error should not match a different sentinel")
	}

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find ValidationError")
	}
	if ve.Field != "imsi" {
		t.Errorf("Field = %q, want %q", ve.Field, "imsi")
	}
}
