// Package models holds the Company aggregate and its construction rules.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"registro/internal/domain/shared"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/sentinel"
)

var (
	// ErrCompanyNameRequired indicates a missing company name.
	ErrCompanyNameRequired = dErrors.New(dErrors.CodeValidation, "company name is required")

	// ErrLandlineOrPhoneRequired indicates both contact numbers are absent.
	// This is a cross-field invariant, not a single value object rule.
	ErrLandlineOrPhoneRequired = dErrors.New(dErrors.CodeInvariantViolation,
		"at least one of landline or phone is required")

	// Storage-level uniqueness facts; stores return these so services can
	// name the conflicting field without re-querying.
	ErrDuplicateEmail = fmt.Errorf("company email already registered: %w", sentinel.ErrConflict)
	ErrDuplicateTaxID = fmt.Errorf("company tax id already registered: %w", sentinel.ErrConflict)
)

// Company is the aggregate root for a registered company.
//
// Invariants:
//   - Email and TaxID are unique across companies (enforced by stores)
//   - CountryID references an existing country (enforced by the service)
//   - At least one of Landline and Phone is present
//   - Address is always present; Zip and Description are optional
//   - TaxID and Zip are validated against the rules of the company's country
//
// Fields are mutated only through Apply* methods so every write revalidates
// and stamps UpdatedAt.
type Company struct {
	ID           int64
	UUID         uuid.UUID
	Name         string
	Email        shared.Email
	Landline     shared.Landline
	Phone        shared.Phone
	Address      shared.CompanyAddress
	City         string
	State        string
	Zip          shared.ZipCode
	CountryID    int64
	TaxID        shared.TaxID
	Description  shared.CompanyDescription
	BusinessArea BusinessArea
	PersonType   PersonType
	Status       CompanyStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyParams is the raw primitive input for constructing or updating a
// company. Optional fields are absent when empty.
type CompanyParams struct {
	Name         string
	Email        string
	Landline     string
	Phone        string
	Address      string
	City         string
	State        string
	Zip          string
	TaxID        string
	Description  string
	BusinessArea string
	PersonType   string
	Status       string
	CountryID    int64
	CountryCode  string
}

// FormatValidators carries the country-aware format ports the aggregate
// delegates to.
type FormatValidators struct {
	TaxID shared.TaxIDValidator
	Zip   shared.ZipCodeValidator
}

// NewCompany validates params field by field and builds the aggregate.
// Validation stops at the first violation; callers receive exactly one
// error. PersonType defaults to individual and Status to onboarding.
func NewCompany(p CompanyParams, v FormatValidators, now time.Time) (*Company, error) {
	fields, err := buildCompanyFields(p, v)
	if err != nil {
		return nil, err
	}
	status, err := ParseCompanyStatus(p.Status)
	if err != nil {
		return nil, err
	}
	personType, err := ParsePersonType(p.PersonType)
	if err != nil {
		return nil, err
	}
	return &Company{
		UUID:         uuid.New(),
		Name:         fields.name,
		Email:        fields.email,
		Landline:     fields.landline,
		Phone:        fields.phone,
		Address:      fields.address,
		City:         p.City,
		State:        p.State,
		Zip:          fields.zip,
		CountryID:    p.CountryID,
		TaxID:        fields.taxID,
		Description:  fields.description,
		BusinessArea: fields.businessArea,
		PersonType:   personType,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ApplyUpdate replaces every mutable field after re-running the same
// validation as NewCompany. Identity, status and CreatedAt are untouched;
// status changes go through ApplyStatus.
func (c *Company) ApplyUpdate(p CompanyParams, v FormatValidators, now time.Time) error {
	fields, err := buildCompanyFields(p, v)
	if err != nil {
		return err
	}
	personType, err := ParsePersonType(p.PersonType)
	if err != nil {
		return err
	}
	c.Name = fields.name
	c.Email = fields.email
	c.Landline = fields.landline
	c.Phone = fields.phone
	c.Address = fields.address
	c.City = p.City
	c.State = p.State
	c.Zip = fields.zip
	c.CountryID = p.CountryID
	c.TaxID = fields.taxID
	c.Description = fields.description
	c.BusinessArea = fields.businessArea
	c.PersonType = personType
	c.UpdatedAt = now
	return nil
}

// ApplyStatus sets the status. The lifecycle allows any transition,
// including setting the current status again.
func (c *Company) ApplyStatus(status CompanyStatus, now time.Time) {
	c.Status = status
	c.UpdatedAt = now
}

// IsActive reports whether the company has been activated.
func (c *Company) IsActive() bool {
	return c.Status == StatusActive
}

// IsBlocked reports whether the company is blocked.
func (c *Company) IsBlocked() bool {
	return c.Status == StatusBlocked
}

// companyFields are the validated value objects shared by create and update.
type companyFields struct {
	name         string
	email        shared.Email
	landline     shared.Landline
	phone        shared.Phone
	zip          shared.ZipCode
	taxID        shared.TaxID
	description  shared.CompanyDescription
	address      shared.CompanyAddress
	businessArea BusinessArea
}

// buildCompanyFields validates in declaration order; the first failing field
// wins, so callers never see aggregated errors.
func buildCompanyFields(p CompanyParams, v FormatValidators) (companyFields, error) {
	var f companyFields

	if p.Name == "" {
		return f, ErrCompanyNameRequired
	}
	f.name = p.Name

	email, err := shared.NewEmail(p.Email)
	if err != nil {
		return f, err
	}
	f.email = email

	if p.Landline != "" {
		landline, err := shared.NewLandline(p.Landline)
		if err != nil {
			return f, err
		}
		f.landline = landline
	}
	if p.Phone != "" {
		phone, err := shared.NewPhone(p.Phone)
		if err != nil {
			return f, err
		}
		f.phone = phone
	}
	if f.landline.IsZero() && f.phone.IsZero() {
		return f, ErrLandlineOrPhoneRequired
	}

	if p.Zip != "" {
		zip, err := shared.NewZipCode(p.Zip, p.CountryCode, v.Zip)
		if err != nil {
			return f, err
		}
		f.zip = zip
	}

	taxID, err := shared.NewTaxID(p.TaxID, p.CountryCode, v.TaxID)
	if err != nil {
		return f, err
	}
	f.taxID = taxID

	if p.Description != "" {
		description, err := shared.NewCompanyDescription(p.Description)
		if err != nil {
			return f, err
		}
		f.description = description
	}

	address, err := shared.NewCompanyAddress(p.Address)
	if err != nil {
		return f, err
	}
	f.address = address

	businessArea, err := ParseBusinessArea(p.BusinessArea)
	if err != nil {
		return f, err
	}
	f.businessArea = businessArea

	return f, nil
}

// CompanyRow is the persistence shape of a company: raw primitives as
// written by a store. Only store implementations should construct one.
type CompanyRow struct {
	ID           int64
	UUID         uuid.UUID
	Name         string
	Email        string
	Landline     string
	Phone        string
	Address      string
	City         string
	State        string
	Zip          string
	CountryID    int64
	CountryCode  string
	TaxID        string
	Description  string
	BusinessArea string
	PersonType   string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstitute rebuilds the aggregate from a stored row. Data was validated
// on write, so value objects are restored without re-running validation.
func Reconstitute(row CompanyRow) *Company {
	c := &Company{
		ID:           row.ID,
		UUID:         row.UUID,
		Name:         row.Name,
		Email:        shared.RestoreEmail(row.Email),
		Address:      shared.RestoreCompanyAddress(row.Address),
		City:         row.City,
		State:        row.State,
		CountryID:    row.CountryID,
		TaxID:        shared.RestoreTaxID(row.TaxID, row.CountryCode),
		BusinessArea: BusinessArea(row.BusinessArea),
		PersonType:   PersonType(row.PersonType),
		Status:       CompanyStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Landline != "" {
		c.Landline = shared.RestoreLandline(row.Landline)
	}
	if row.Phone != "" {
		c.Phone = shared.RestorePhone(row.Phone)
	}
	if row.Zip != "" {
		c.Zip = shared.RestoreZipCode(row.Zip, row.CountryCode)
	}
	if row.Description != "" {
		c.Description = shared.RestoreCompanyDescription(row.Description)
	}
	return c
}

// Row converts the aggregate back to its persistence shape.
func (c *Company) Row() CompanyRow {
	return CompanyRow{
		ID:           c.ID,
		UUID:         c.UUID,
		Name:         c.Name,
		Email:        c.Email.String(),
		Landline:     c.Landline.String(),
		Phone:        c.Phone.String(),
		Address:      c.Address.String(),
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip.String(),
		CountryID:    c.CountryID,
		CountryCode:  c.TaxID.CountryCode(),
		TaxID:        c.TaxID.String(),
		Description:  c.Description.String(),
		BusinessArea: string(c.BusinessArea),
		PersonType:   string(c.PersonType),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
