package handler

import (
	"encoding/hex"
	"fmt"

	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
)

// LACの有効範囲（0x0000と0xFFFEは予約値）
const (
	minLAC = 0x0001
	maxLAC = 0xFFFD
)

// validateIMSI はIMSI形式（15桁の数字）を検証する。
func validateIMSI(imsi string) error {
	if len(imsi) != 15 || !isDigits(imsi) {
		return invalid(apperr.ErrInvalidIMSI, "imsi", "IMSI must be 15 digits")
	}
	return nil
}

// validateIMEI はIMEI（14桁）またはIMEISV（16桁）の形式を検証する。
func validateIMEI(imei string) error {
	if (len(imei) < 14 || len(imei) > 16) || !isDigits(imei) {
		return invalid(apperr.ErrInvalidIMEI, "imei", "IMEI must be 14 to 16 digits")
	}
	return nil
}

// validateLAC はLACの範囲を検証する。
func validateLAC(lac int) error {
	if lac < minLAC || lac > maxLAC {
		return invalid(apperr.ErrInvalidLAC, "lac", fmt.Sprintf("LAC must be between %d and %d", minLAC, maxLAC))
	}
	return nil
}

// decodeHex は16進文字列をバイト列に変換する。
func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalid(apperr.ErrInvalidHex, field, field+" must be a hex string")
	}
	return b, nil
}

func invalid(sentinel error, field, message string) error {
	return fmt.Errorf("%w: %w", sentinel, apperr.NewValidationError(field, message))
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
