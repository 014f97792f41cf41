package models

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// CompanyStatus is the onboarding lifecycle state. Every transition is
// allowed, including a no-op to the same status; onboarding is only special
// as the default for new companies.
type CompanyStatus string

const (
	StatusOnboarding CompanyStatus = "onboarding"
	StatusActive     CompanyStatus = "active"
	StatusInactive   CompanyStatus = "inactive"
	StatusBlocked    CompanyStatus = "blocked"
)

// ErrInvalidCompanyStatus indicates an unknown status value.
var ErrInvalidCompanyStatus = dErrors.New(dErrors.CodeValidation, "invalid company status")

// ParseCompanyStatus matches a status case-insensitively. Empty input yields
// the onboarding default.
func ParseCompanyStatus(s string) (CompanyStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusOnboarding, nil
	case string(StatusOnboarding):
		return StatusOnboarding, nil
	case string(StatusActive):
		return StatusActive, nil
	case string(StatusInactive):
		return StatusInactive, nil
	case string(StatusBlocked):
		return StatusBlocked, nil
	default:
		return "", ErrInvalidCompanyStatus
	}
}

// PersonType distinguishes sole traders from incorporated companies.
type PersonType string

const (
	PersonTypeIndividual PersonType = "individual"
	PersonTypeCompany    PersonType = "company"
)

// ErrInvalidPersonType indicates an unknown person type value.
var ErrInvalidPersonType = dErrors.New(dErrors.CodeValidation, "invalid person type")

// ParsePersonType matches a person type case-insensitively. Empty input
// yields the individual default.
func ParsePersonType(s string) (PersonType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PersonTypeIndividual, nil
	case string(PersonTypeIndividual):
		return PersonTypeIndividual, nil
	case string(PersonTypeCompany):
		return PersonTypeCompany, nil
	default:
		return "", ErrInvalidPersonType
	}
}

// BusinessArea is the canonical sector key a company registers under.
type BusinessArea string

const (
	BusinessAreaTechnology    BusinessArea = "technology"
	BusinessAreaHealthcare    BusinessArea = "healthcare"
	BusinessAreaFinance       BusinessArea = "finance"
	BusinessAreaRetail        BusinessArea = "retail"
	BusinessAreaManufacturing BusinessArea = "manufacturing"
	BusinessAreaEducation     BusinessArea = "education"
	BusinessAreaAgriculture   BusinessArea = "agriculture"
	BusinessAreaLogistics     BusinessArea = "logistics"
	BusinessAreaServices      BusinessArea = "services"
)

var businessAreas = []BusinessArea{
	BusinessAreaTechnology,
	BusinessAreaHealthcare,
	BusinessAreaFinance,
	BusinessAreaRetail,
	BusinessAreaManufacturing,
	BusinessAreaEducation,
	BusinessAreaAgriculture,
	BusinessAreaLogistics,
	BusinessAreaServices,
}

// ErrUnknownBusinessArea indicates the free-text area matched no canonical key.
var ErrUnknownBusinessArea = dErrors.New(dErrors.CodeValidation, "unknown business area")

// ParseBusinessArea resolves free text to its canonical key, matching
// case-insensitively ("Technology" -> technology).
func ParseBusinessArea(s string) (BusinessArea, error) {
	s = strings.TrimSpace(s)
	for _, area := range businessAreas {
		if strings.EqualFold(s, string(area)) {
			return area, nil
		}
	}
	return "", ErrUnknownBusinessArea
}
