package shared

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// Length bounds shared by company address and description.
const (
	MinCompanyAddressLength = 20
	MaxCompanyAddressLength = 255

	MinCompanyDescriptionLength = 20
	MaxCompanyDescriptionLength = 255
)

var (
	// ErrCompanyAddressTooShort indicates the address is under the minimum length.
	ErrCompanyAddressTooShort = dErrors.Newf(dErrors.CodeValidation,
		"company address must be at least %d characters", MinCompanyAddressLength)

	// ErrCompanyAddressTooLong indicates the address exceeds the maximum length.
	ErrCompanyAddressTooLong = dErrors.Newf(dErrors.CodeValidation,
		"company address must be at most %d characters", MaxCompanyAddressLength)

	// ErrCompanyDescriptionTooShort indicates the description is under the minimum length.
	ErrCompanyDescriptionTooShort = dErrors.Newf(dErrors.CodeValidation,
		"company description must be at least %d characters", MinCompanyDescriptionLength)

	// ErrCompanyDescriptionTooLong indicates the description exceeds the maximum length.
	ErrCompanyDescriptionTooLong = dErrors.Newf(dErrors.CodeValidation,
		"company description must be at most %d characters", MaxCompanyDescriptionLength)
)

// CompanyAddress is a validated street address line.
//
// Invariants:
//   - Between MinCompanyAddressLength and MaxCompanyAddressLength characters
//     after trimming
type CompanyAddress struct {
	value string
}

// NewCompanyAddress trims and validates an address line.
func NewCompanyAddress(value string) (CompanyAddress, error) {
	value = strings.TrimSpace(value)
	if len(value) < MinCompanyAddressLength {
		return CompanyAddress{}, ErrCompanyAddressTooShort
	}
	if len(value) > MaxCompanyAddressLength {
		return CompanyAddress{}, ErrCompanyAddressTooLong
	}
	return CompanyAddress{value: value}, nil
}

// RestoreCompanyAddress wraps an address already validated on write.
func RestoreCompanyAddress(value string) CompanyAddress {
	return CompanyAddress{value: value}
}

func (a CompanyAddress) String() string {
	return a.value
}

func (a CompanyAddress) IsZero() bool {
	return a.value == ""
}

// CompanyDescription is a validated free-text description.
//
// Invariants:
//   - Between MinCompanyDescriptionLength and MaxCompanyDescriptionLength
//     characters after trimming
type CompanyDescription struct {
	value string
}

// NewCompanyDescription trims and validates a description.
func NewCompanyDescription(value string) (CompanyDescription, error) {
	value = strings.TrimSpace(value)
	if len(value) < MinCompanyDescriptionLength {
		return CompanyDescription{}, ErrCompanyDescriptionTooShort
	}
	if len(value) > MaxCompanyDescriptionLength {
		return CompanyDescription{}, ErrCompanyDescriptionTooLong
	}
	return CompanyDescription{value: value}, nil
}

// RestoreCompanyDescription wraps a description already validated on write.
func RestoreCompanyDescription(value string) CompanyDescription {
	return CompanyDescription{value: value}
}

func (d CompanyDescription) String() string {
	return d.value
}

func (d CompanyDescription) IsZero() bool {
	return d.value == ""
}
