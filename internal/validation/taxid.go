// Package validation ships the default country-aware format strategies behind
// the shared kernel's TaxIDValidator and ZipCodeValidator ports. Rules are
// registered per ISO-3166 alpha-2 country code; adding a country never
// touches the value objects.
package validation

import (
	"regexp"
	"strings"
)

// TaxIDRule checks a single country's tax identifier format. The code is
// passed as received; rules strip their own punctuation.
type TaxIDRule func(code string) bool

// TaxIDRegistry validates tax identifiers against per-country rules,
// falling back to a permissive generic rule for unconfigured countries.
type TaxIDRegistry struct {
	rules    map[string]TaxIDRule
	fallback TaxIDRule
}

// NewTaxIDRegistry builds a registry with the built-in rules (BR, US, GB)
// and the generic fallback.
func NewTaxIDRegistry() *TaxIDRegistry {
	r := &TaxIDRegistry{
		rules:    make(map[string]TaxIDRule),
		fallback: genericTaxID,
	}
	r.Register("BR", brazilianTaxID)
	r.Register("US", usEmployerID)
	r.Register("GB", ukVATNumber)
	return r
}

// Register installs or replaces the rule for a country code.
func (r *TaxIDRegistry) Register(countryCode string, rule TaxIDRule) {
	r.rules[strings.ToUpper(countryCode)] = rule
}

// Validate implements shared.TaxIDValidator.
func (r *TaxIDRegistry) Validate(code, countryCode string) bool {
	if rule, ok := r.rules[strings.ToUpper(countryCode)]; ok {
		return rule(code)
	}
	return r.fallback(code)
}

// brazilianTaxID accepts a CPF (11 digits) or CNPJ (14 digits), with or
// without punctuation, and verifies the check digits.
func brazilianTaxID(code string) bool {
	digits := stripTaxIDSeparators(code)
	switch len(digits) {
	case 11:
		return validCPF(digits)
	case 14:
		return validCNPJ(digits)
	default:
		return false
	}
}

func validCPF(digits string) bool {
	if !allDigits(digits) || allSame(digits) {
		return false
	}
	return cpfCheckDigit(digits, 9) == int(digits[9]-'0') &&
		cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

// cpfCheckDigit computes the verification digit over the first n digits,
// with weights n+1 down to 2.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func validCNPJ(digits string) bool {
	if !allDigits(digits) || allSame(digits) {
		return false
	}
	return cnpjCheckDigit(digits, 12) == int(digits[12]-'0') &&
		cnpjCheckDigit(digits, 13) == int(digits[13]-'0')
}

func cnpjCheckDigit(digits string, n int) int {
	weights := cnpjWeights[len(cnpjWeights)-n:]
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// usEmployerID accepts a 9-digit EIN, with or without the NN-NNNNNNN dash.
func usEmployerID(code string) bool {
	digits := stripTaxIDSeparators(code)
	return len(digits) == 9 && allDigits(digits)
}

var ukVATPattern = regexp.MustCompile(`^(GB)?(\d{9}|\d{12})$`)

// ukVATNumber accepts a UK VAT registration number, 9 or 12 digits with an
// optional GB prefix.
func ukVATNumber(code string) bool {
	return ukVATPattern.MatchString(stripTaxIDSeparators(strings.ToUpper(code)))
}

var genericTaxIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)

// genericTaxID is the fallback for countries without a registered rule.
func genericTaxID(code string) bool {
	return genericTaxIDPattern.MatchString(stripTaxIDSeparators(code))
}

func stripTaxIDSeparators(code string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-', '/':
			return -1
		}
		return r
	}, strings.TrimSpace(code))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
