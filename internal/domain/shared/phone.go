package shared

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// Phone number length bounds after normalization, in digits. Numbers carry
// their country calling code, hence the wide range.
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 16
)

var (
	// ErrInvalidPhone indicates a mobile number outside the accepted length.
	ErrInvalidPhone = dErrors.New(dErrors.CodeValidation, "invalid phone number")

	// ErrInvalidLandline indicates a landline number outside the accepted length.
	ErrInvalidLandline = dErrors.New(dErrors.CodeValidation, "invalid landline number")
)

// Phone is a validated mobile number, normalized to bare digits.
type Phone struct {
	value string
}

// NewPhone strips formatting characters and validates the digit count.
func NewPhone(value string) (Phone, error) {
	digits, ok := normalizeDigits(value)
	if !ok {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: digits}, nil
}

// RestorePhone wraps a number already validated on write.
func RestorePhone(value string) Phone {
	return Phone{value: value}
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsZero() bool {
	return p.value == ""
}

// Landline is a validated fixed-line number, normalized to bare digits.
// Same shape as Phone but a distinct type: a landline is never accepted
// where a mobile number is required, and vice versa.
type Landline struct {
	value string
}

// NewLandline strips formatting characters and validates the digit count.
func NewLandline(value string) (Landline, error) {
	digits, ok := normalizeDigits(value)
	if !ok {
		return Landline{}, ErrInvalidLandline
	}
	return Landline{value: digits}, nil
}

// RestoreLandline wraps a number already validated on write.
func RestoreLandline(value string) Landline {
	return Landline{value: value}
}

func (l Landline) String() string {
	return l.value
}

func (l Landline) IsZero() bool {
	return l.value == ""
}

// normalizeDigits strips the leading "+" and common separators, then checks
// the remainder is MinPhoneDigits-MaxPhoneDigits digits.
func normalizeDigits(value string) (string, bool) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "+")
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, skip
		default:
			return "", false
		}
	}
	digits := b.String()
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return "", false
	}
	return digits, true
}
