package validation

import (
	"regexp"
	"strings"
)

// ZipCodeRule checks a single country's postal code format.
type ZipCodeRule func(code string) bool

// ZipCodeRegistry validates postal codes against per-country rules, falling
// back to a permissive generic rule for unconfigured countries.
type ZipCodeRegistry struct {
	rules    map[string]ZipCodeRule
	fallback ZipCodeRule
}

// NewZipCodeRegistry builds a registry with the built-in rules (BR, US, GB)
// and the generic fallback.
func NewZipCodeRegistry() *ZipCodeRegistry {
	r := &ZipCodeRegistry{
		rules:    make(map[string]ZipCodeRule),
		fallback: genericZipCode,
	}
	r.Register("BR", brazilianCEP)
	r.Register("US", usZIPCode)
	r.Register("GB", ukPostcode)
	return r
}

// Register installs or replaces the rule for a country code.
func (r *ZipCodeRegistry) Register(countryCode string, rule ZipCodeRule) {
	r.rules[strings.ToUpper(countryCode)] = rule
}

// Validate implements shared.ZipCodeValidator.
func (r *ZipCodeRegistry) Validate(code, countryCode string) bool {
	if rule, ok := r.rules[strings.ToUpper(countryCode)]; ok {
		return rule(code)
	}
	return r.fallback(code)
}

var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// brazilianCEP accepts an 8-digit CEP with an optional dash (89160-306).
func brazilianCEP(code string) bool {
	return cepPattern.MatchString(strings.TrimSpace(code))
}

var usZIPPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// usZIPCode accepts ZIP and ZIP+4.
func usZIPCode(code string) bool {
	return usZIPPattern.MatchString(strings.TrimSpace(code))
}

var ukPostcodePattern = regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`)

// ukPostcode accepts the outward/inward postcode shape (SW1A 1AA).
func ukPostcode(code string) bool {
	return ukPostcodePattern.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

var genericZipPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,8}[A-Za-z0-9]$`)

// genericZipCode is the fallback for countries without a registered rule.
func genericZipCode(code string) bool {
	return genericZipPattern.MatchString(strings.TrimSpace(code))
}
