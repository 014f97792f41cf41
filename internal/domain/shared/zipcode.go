package shared

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// ZipCodeValidator is the port for country-specific postal code formats
// (CEP, ZIP, postcode, ...).
type ZipCodeValidator interface {
	Validate(code, countryCode string) bool
}

var (
	// ErrZipCodeRequired indicates a missing postal code.
	ErrZipCodeRequired = dErrors.New(dErrors.CodeValidation, "zip code is required")

	// ErrZipCodeInvalid indicates the postal code failed the country-specific format check.
	ErrZipCodeInvalid = dErrors.New(dErrors.CodeValidation, "invalid zip code for country")
)

// ZipCode is a postal code validated against the rules of its country.
type ZipCode struct {
	code        string
	countryCode string
}

// NewZipCode validates a postal code for the given country.
func NewZipCode(code, countryCode string, validator ZipCodeValidator) (ZipCode, error) {
	code = strings.TrimSpace(code)
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return ZipCode{}, ErrZipCodeRequired
	}
	if validator == nil || !validator.Validate(code, countryCode) {
		return ZipCode{}, ErrZipCodeInvalid
	}
	return ZipCode{code: code, countryCode: countryCode}, nil
}

// RestoreZipCode wraps a postal code already validated on write.
func RestoreZipCode(code, countryCode string) ZipCode {
	return ZipCode{code: code, countryCode: countryCode}
}

func (z ZipCode) String() string {
	return z.code
}

// CountryCode returns the ISO country code the postal code was validated for.
func (z ZipCode) CountryCode() string {
	return z.countryCode
}

func (z ZipCode) IsZero() bool {
	return z.code == ""
}
