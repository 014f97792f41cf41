package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"registro/internal/company/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/sentinel"
	"registro/pkg/requestcontext"
)

// Application errors raised by company use cases. Validation errors from the
// aggregate propagate as-is; these cover existence and uniqueness against
// stored state.
var (
	ErrCountryNotFound    = dErrors.New(dErrors.CodeNotFound, "country not found for code")
	ErrCompanyNotFound    = dErrors.New(dErrors.CodeNotFound, "company not found")
	ErrCompanyEmailExists = dErrors.New(dErrors.CodeConflict, "company email already in use")
	ErrCompanyTaxIDExists = dErrors.New(dErrors.CodeConflict, "company tax id already in use")
)

// Create registers a new company. The country code must resolve, email and
// tax id must be unused, and every field must pass the aggregate's
// validation. The stored aggregate is returned with its assigned id.
func (s *Service) Create(ctx context.Context, params models.CompanyParams) (*models.Company, error) {
	country, err := s.countries.FindByCode(ctx, params.CountryCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not resolve country")
	}
	params.CountryID = country.ID

	if err := s.checkEmailAvailable(ctx, params.Email, 0); err != nil {
		return nil, err
	}
	if err := s.checkTaxIDAvailable(ctx, params.TaxID, 0); err != nil {
		return nil, err
	}

	company, err := models.NewCompany(params, s.validators, requestcontext.Now(ctx))
	if err != nil {
		s.recordRejection(err)
		return nil, err
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, translateWriteErr(err)
	}

	s.incrementCreated()
	s.logger.InfoContext(ctx, "company created",
		slog.String("company_uuid", company.UUID.String()),
		slog.String("business_area", string(company.BusinessArea)))
	return company, nil
}

// Update replaces every mutable field of an existing company, re-running the
// same validation as Create. Uniqueness checks exclude the company itself,
// so keeping an unchanged email or tax id never self-conflicts.
func (s *Service) Update(ctx context.Context, id int64, params models.CompanyParams) (*models.Company, error) {
	company, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	country, err := s.countries.FindByCode(ctx, params.CountryCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not resolve country")
	}
	params.CountryID = country.ID

	if err := s.checkEmailAvailable(ctx, params.Email, id); err != nil {
		return nil, err
	}
	if err := s.checkTaxIDAvailable(ctx, params.TaxID, id); err != nil {
		return nil, err
	}

	if err := company.ApplyUpdate(params, s.validators, requestcontext.Now(ctx)); err != nil {
		s.recordRejection(err)
		return nil, err
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, translateWriteErr(err)
	}
	return company, nil
}

// UpdateStatus sets the lifecycle status of a company. Any status may be set
// from any other.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.Company, error) {
	if strings.TrimSpace(status) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "status is required")
	}
	parsed, err := models.ParseCompanyStatus(status)
	if err != nil {
		return nil, err
	}

	company, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.ApplyStatus(parsed, requestcontext.Now(ctx))
	if err := s.companies.UpdateStatus(ctx, company.ID, parsed); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not update company status")
	}
	return company, nil
}

// DeleteByID removes a company.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.loadByID(ctx, id); err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not delete company")
	}
	return nil
}

// GetByUUID returns a single company by its public identity.
func (s *Service) GetByUUID(ctx context.Context, companyUUID uuid.UUID) (*models.Company, error) {
	company, err := s.companies.FindByUUID(ctx, companyUUID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load company")
	}
	return company, nil
}

// List returns companies matching the filter, paginated and ordered. An
// empty result set is not an error.
func (s *Service) List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.Company, error) {
	defer s.observeList(time.Now())
	companies, err := s.companies.List(ctx, filter, page, sort)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list companies")
	}
	return companies, nil
}

func (s *Service) loadByID(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load company")
	}
	return company, nil
}

// checkEmailAvailable fails when another company (excluding excludeID) holds
// the email. The pre-check gives precise errors; the store's unique index is
// what makes the invariant hold under concurrent creates.
func (s *Service) checkEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	existing, err := s.companies.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check company email")
	}
	if existing.ID != excludeID {
		return ErrCompanyEmailExists
	}
	return nil
}

func (s *Service) checkTaxIDAvailable(ctx context.Context, taxID string, excludeID int64) error {
	existing, err := s.companies.FindByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check company tax id")
	}
	if existing.ID != excludeID {
		return ErrCompanyTaxIDExists
	}
	return nil
}

// translateWriteErr maps storage uniqueness facts onto the application
// errors the pre-checks would have produced.
func translateWriteErr(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return ErrCompanyEmailExists
	case errors.Is(err, models.ErrDuplicateTaxID):
		return ErrCompanyTaxIDExists
	case errors.Is(err, sentinel.ErrNotFound):
		return ErrCompanyNotFound
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist company")
	}
}
