package shared

import (
	"regexp"
	"strings"

	dErrors "registro/pkg/domain-errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MaxEmailLength bounds the stored address, matching the column width.
const MaxEmailLength = 100

// ErrInvalidEmail indicates the address failed format or length validation.
var ErrInvalidEmail = dErrors.New(dErrors.CodeValidation, "invalid email address")

// Email is a validated, normalized (trimmed, lowercased) email address.
//
// Invariants:
//   - Matches the address pattern local@domain.tld
//   - At most MaxEmailLength characters after normalization
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) > MaxEmailLength || !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

// RestoreEmail wraps an address already validated on write.
func RestoreEmail(value string) Email {
	return Email{value: value}
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsZero returns true for the uninitialized value.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Equals compares two addresses.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
