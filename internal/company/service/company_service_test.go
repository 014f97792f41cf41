package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"registro/internal/company/models"
	"registro/internal/company/service"
	companystore "registro/internal/company/store/company"
	countrystore "registro/internal/country/store/country"
	"registro/internal/validation"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

type CompanyServiceSuite struct {
	suite.Suite
	ctx       context.Context
	companies *companystore.InMemory
	svc       *service.Service
}

func TestCompanyServiceSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceSuite))
}

func (s *CompanyServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.companies = companystore.NewInMemory()
	s.svc = service.New(
		s.companies,
		countrystore.NewInMemorySeeded(),
		models.FormatValidators{
			TaxID: validation.NewTaxIDRegistry(),
			Zip:   validation.NewZipCodeRegistry(),
		},
	)
}

// validParams mirrors a realistic Brazilian registration payload.
func validParams() models.CompanyParams {
	return models.CompanyParams{
		Name:         "Company 1",
		Email:        "company1@example.com",
		TaxID:        "01894147000135",
		Address:      "123 Main St, Downtown District",
		City:         "Anytown",
		State:        "Rio de Janeiro",
		BusinessArea: "Technology",
		PersonType:   "company",
		CountryCode:  "BR",
		Zip:          "89160306",
		Landline:     "551135211980",
		Phone:        "5511988899090",
		Description:  "Company 1 description is valid!",
	}
}

func (s *CompanyServiceSuite) TestCreate() {
	s.Run("full payload creates an onboarding company", func() {
		company, err := s.svc.Create(s.ctx, validParams())
		s.Require().NoError(err)

		s.NotZero(company.ID)
		s.NotEqual(uuid.Nil, company.UUID)
		s.Equal(models.StatusOnboarding, company.Status)
		s.Equal(models.PersonTypeCompany, company.PersonType)
		s.Equal(int64(1), company.CountryID)
		s.Equal("company1@example.com", company.Email.String())
	})

	s.Run("unknown country code is not found", func() {
		params := validParams()
		params.Email = "other@example.com"
		params.TaxID = "11222333000181"
		params.CountryCode = "XX"

		_, err := s.svc.Create(s.ctx, params)
		s.ErrorIs(err, service.ErrCountryNotFound)
	})

	s.Run("missing landline and phone violates the contact invariant", func() {
		params := validParams()
		params.Email = "other@example.com"
		params.TaxID = "11222333000181"
		params.Landline = ""
		params.Phone = ""

		_, err := s.svc.Create(s.ctx, params)
		s.ErrorIs(err, models.ErrLandlineOrPhoneRequired)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *CompanyServiceSuite) TestCreateUniquenessIdempotence() {
	_, err := s.svc.Create(s.ctx, validParams())
	s.Require().NoError(err)

	countBefore, err := s.companies.Count(s.ctx)
	s.Require().NoError(err)

	s.Run("duplicate email conflicts and stores nothing", func() {
		params := validParams()
		params.TaxID = "11222333000181"

		_, err := s.svc.Create(s.ctx, params)
		s.ErrorIs(err, service.ErrCompanyEmailExists)
	})

	s.Run("duplicate tax id conflicts and stores nothing", func() {
		params := validParams()
		params.Email = "other@example.com"

		_, err := s.svc.Create(s.ctx, params)
		s.ErrorIs(err, service.ErrCompanyTaxIDExists)
	})

	countAfter, err := s.companies.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(countBefore, countAfter)
}

func (s *CompanyServiceSuite) TestUpdate() {
	created, err := s.svc.Create(s.ctx, validParams())
	s.Require().NoError(err)

	s.Run("keeping own email and tax id never self-conflicts", func() {
		params := validParams()
		params.City = "Niteroi"

		updated, err := s.svc.Update(s.ctx, created.ID, params)
		s.Require().NoError(err)
		s.Equal("Niteroi", updated.City)
		s.Equal(created.UUID, updated.UUID)
	})

	s.Run("taking another company's email conflicts", func() {
		other := validParams()
		other.Email = "company2@example.com"
		other.TaxID = "11222333000181"
		_, err := s.svc.Create(s.ctx, other)
		s.Require().NoError(err)

		params := validParams()
		params.Email = "company2@example.com"
		_, err = s.svc.Update(s.ctx, created.ID, params)
		s.ErrorIs(err, service.ErrCompanyEmailExists)
	})

	s.Run("invalid field is rejected with a validation error", func() {
		params := validParams()
		params.Email = "not-an-email"

		_, err := s.svc.Update(s.ctx, created.ID, params)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown id is not found", func() {
		_, err := s.svc.Update(s.ctx, 999, validParams())
		s.ErrorIs(err, service.ErrCompanyNotFound)
	})
}

func (s *CompanyServiceSuite) TestUpdateStatus() {
	created, err := s.svc.Create(s.ctx, validParams())
	s.Require().NoError(err)

	s.Run("any status may follow any other", func() {
		for _, status := range []string{"active", "blocked", "inactive", "active", "active"} {
			updated, err := s.svc.UpdateStatus(s.ctx, created.ID, status)
			s.Require().NoError(err)
			s.Equal(models.CompanyStatus(status), updated.Status)
		}
	})

	s.Run("empty status is a validation error", func() {
		_, err := s.svc.UpdateStatus(s.ctx, created.ID, "  ")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown status is rejected", func() {
		_, err := s.svc.UpdateStatus(s.ctx, created.ID, "suspended")
		s.ErrorIs(err, models.ErrInvalidCompanyStatus)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.svc.UpdateStatus(s.ctx, 999, "active")
		s.ErrorIs(err, service.ErrCompanyNotFound)
	})
}

func (s *CompanyServiceSuite) TestDeleteAndGet() {
	created, err := s.svc.Create(s.ctx, validParams())
	s.Require().NoError(err)

	s.Run("get by uuid returns the company", func() {
		found, err := s.svc.GetByUUID(s.ctx, created.UUID)
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
	})

	s.Run("delete removes it", func() {
		s.Require().NoError(s.svc.DeleteByID(s.ctx, created.ID))
		_, err := s.svc.GetByUUID(s.ctx, created.UUID)
		s.ErrorIs(err, service.ErrCompanyNotFound)
	})

	s.Run("deleting again is not found", func() {
		s.ErrorIs(s.svc.DeleteByID(s.ctx, created.ID), service.ErrCompanyNotFound)
	})
}

func (s *CompanyServiceSuite) TestList() {
	first := validParams()
	_, err := s.svc.Create(s.ctx, first)
	s.Require().NoError(err)

	second := validParams()
	second.Name = "Acme Retail"
	second.Email = "acme@example.com"
	second.TaxID = "11222333000181"
	second.BusinessArea = "retail"
	_, err = s.svc.Create(s.ctx, second)
	s.Require().NoError(err)

	s.Run("filter by business area", func() {
		listed, err := s.svc.List(s.ctx, models.Filter{BusinessArea: "retail"},
			domain.NewOffsetPagination(0, 0), nil)
		s.Require().NoError(err)
		s.Require().Len(listed, 1)
		s.Equal("Acme Retail", listed[0].Name)
	})

	s.Run("empty result is not an error", func() {
		listed, err := s.svc.List(s.ctx, models.Filter{City: "Nowhere"},
			domain.NewOffsetPagination(0, 0), nil)
		s.Require().NoError(err)
		s.Empty(listed)
	})
}
