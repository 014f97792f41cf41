package shared

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// TaxIDValidator is the port for country-specific tax identifier formats
// (CPF/CNPJ, EIN, VAT, ...). Implementations live outside the domain so new
// country rules never touch the value object.
type TaxIDValidator interface {
	Validate(code, countryCode string) bool
}

var (
	// ErrTaxIDRequired indicates a missing tax identifier or country code.
	ErrTaxIDRequired = dErrors.New(dErrors.CodeValidation, "tax id and country code are required")

	// ErrTaxIDInvalid indicates the identifier failed the country-specific format check.
	ErrTaxIDInvalid = dErrors.New(dErrors.CodeValidation, "invalid tax id for country")
)

// TaxID is a tax identifier validated against the rules of its country.
//
// Invariants:
//   - Code and country code are non-empty
//   - Code passes the injected country-specific format check
type TaxID struct {
	code        string
	countryCode string
}

// NewTaxID validates a tax identifier for the given country. The country
// code is normalized to upper case.
func NewTaxID(code, countryCode string, validator TaxIDValidator) (TaxID, error) {
	code = strings.TrimSpace(code)
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" || countryCode == "" {
		return TaxID{}, ErrTaxIDRequired
	}
	if validator == nil || !validator.Validate(code, countryCode) {
		return TaxID{}, ErrTaxIDInvalid
	}
	return TaxID{code: code, countryCode: countryCode}, nil
}

// RestoreTaxID wraps an identifier already validated on write.
func RestoreTaxID(code, countryCode string) TaxID {
	return TaxID{code: code, countryCode: countryCode}
}

// String returns the identifier code.
func (t TaxID) String() string {
	return t.code
}

// CountryCode returns the ISO country code the identifier was validated for.
func (t TaxID) CountryCode() string {
	return t.countryCode
}

func (t TaxID) IsZero() bool {
	return t.code == ""
}
