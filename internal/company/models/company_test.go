package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"registro/internal/company/models"
	"registro/internal/domain/shared"
	"registro/internal/validation"
)

type CompanySuite struct {
	suite.Suite
	validators models.FormatValidators
	now        time.Time
}

func (s *CompanySuite) SetupTest() {
	s.validators = models.FormatValidators{
		TaxID: validation.NewTaxIDRegistry(),
		Zip:   validation.NewZipCodeRegistry(),
	}
	s.now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func TestCompanySuite(t *testing.T) {
	suite.Run(t, new(CompanySuite))
}

// validParams is the reference payload: a Brazilian company with every
// optional field supplied.
func (s *CompanySuite) validParams() models.CompanyParams {
	return models.CompanyParams{
		Name:         "Company 1",
		Email:        "company1@example.com",
		TaxID:        "01894147000135",
		Address:      "123 Main St, Downtown District",
		City:         "Anytown",
		State:        "Rio de Janeiro",
		BusinessArea: "Technology",
		PersonType:   "company",
		CountryID:    1,
		CountryCode:  "BR",
		Zip:          "89160306",
		Landline:     "551135211980",
		Phone:        "5511988899090",
		Description:  "Company 1 description is valid!",
	}
}

func (s *CompanySuite) TestNewCompanyDefaults() {
	s.Run("builds with onboarding status and supplied person type", func() {
		company, err := models.NewCompany(s.validParams(), s.validators, s.now)
		s.Require().NoError(err)
		s.Equal(models.StatusOnboarding, company.Status)
		s.Equal(models.PersonTypeCompany, company.PersonType)
		s.Equal("company1@example.com", company.Email.String())
		s.Equal(models.BusinessAreaTechnology, company.BusinessArea)
		s.NotEqual(company.UUID.String(), "00000000-0000-0000-0000-000000000000")
		s.Equal(s.now, company.CreatedAt)
	})

	s.Run("person type defaults to individual", func() {
		p := s.validParams()
		p.PersonType = ""
		company, err := models.NewCompany(p, s.validators, s.now)
		s.Require().NoError(err)
		s.Equal(models.PersonTypeIndividual, company.PersonType)
	})

	s.Run("explicit status is honored", func() {
		p := s.validParams()
		p.Status = "active"
		company, err := models.NewCompany(p, s.validators, s.now)
		s.Require().NoError(err)
		s.Equal(models.StatusActive, company.Status)
	})
}

func (s *CompanySuite) TestContactNumberInvariant() {
	s.Run("landline alone is enough", func() {
		p := s.validParams()
		p.Phone = ""
		_, err := models.NewCompany(p, s.validators, s.now)
		s.NoError(err)
	})

	s.Run("phone alone is enough", func() {
		p := s.validParams()
		p.Landline = ""
		_, err := models.NewCompany(p, s.validators, s.now)
		s.NoError(err)
	})

	s.Run("both absent violates the invariant", func() {
		p := s.validParams()
		p.Landline = ""
		p.Phone = ""
		_, err := models.NewCompany(p, s.validators, s.now)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrLandlineOrPhoneRequired)
	})
}

func (s *CompanySuite) TestFirstFailureWins() {
	s.Run("bad email reported before bad address", func() {
		p := s.validParams()
		p.Email = "not-an-email"
		p.Address = "short"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, shared.ErrInvalidEmail)
	})

	s.Run("bad tax id reported before bad address", func() {
		p := s.validParams()
		p.TaxID = "123"
		p.Address = "short"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, shared.ErrTaxIDInvalid)
	})

	s.Run("bad zip validated against the company country", func() {
		p := s.validParams()
		p.Zip = "90210"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, shared.ErrZipCodeInvalid)
	})

	s.Run("unknown business area rejected", func() {
		p := s.validParams()
		p.BusinessArea = "Alchemy"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, models.ErrUnknownBusinessArea)
	})

	s.Run("missing name rejected first", func() {
		p := s.validParams()
		p.Name = ""
		p.Email = "also-bad"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, models.ErrCompanyNameRequired)
	})
}

func (s *CompanySuite) TestOptionalFields() {
	s.Run("zip and description may be absent", func() {
		p := s.validParams()
		p.Zip = ""
		p.Description = ""
		company, err := models.NewCompany(p, s.validators, s.now)
		s.Require().NoError(err)
		s.True(company.Zip.IsZero())
		s.True(company.Description.IsZero())
	})

	s.Run("short description still rejected when present", func() {
		p := s.validParams()
		p.Description = "too short"
		_, err := models.NewCompany(p, s.validators, s.now)
		s.ErrorIs(err, shared.ErrCompanyDescriptionTooShort)
	})
}

func (s *CompanySuite) TestApplyUpdate() {
	s.Run("replaces fields and stamps UpdatedAt", func() {
		company, err := models.NewCompany(s.validParams(), s.validators, s.now)
		s.Require().NoError(err)
		createdAt := company.CreatedAt
		originalUUID := company.UUID

		later := s.now.Add(time.Hour)
		p := s.validParams()
		p.Name = "Company 1 Renamed"
		p.City = "Blumenau"
		s.Require().NoError(company.ApplyUpdate(p, s.validators, later))

		s.Equal("Company 1 Renamed", company.Name)
		s.Equal("Blumenau", company.City)
		s.Equal(createdAt, company.CreatedAt)
		s.Equal(originalUUID, company.UUID)
		s.Equal(later, company.UpdatedAt)
	})

	s.Run("update re-runs full validation", func() {
		company, err := models.NewCompany(s.validParams(), s.validators, s.now)
		s.Require().NoError(err)

		p := s.validParams()
		p.Address = "too short"
		err = company.ApplyUpdate(p, s.validators, s.now)
		s.ErrorIs(err, shared.ErrCompanyAddressTooShort)
		// Failed update leaves the aggregate untouched.
		s.Equal("Company 1", company.Name)
	})
}

func (s *CompanySuite) TestStatusLifecycle() {
	company, err := models.NewCompany(s.validParams(), s.validators, s.now)
	s.Require().NoError(err)

	// Any transition is legal, including repeats.
	for _, status := range []models.CompanyStatus{
		models.StatusActive, models.StatusBlocked, models.StatusInactive,
		models.StatusInactive, models.StatusOnboarding,
	} {
		company.ApplyStatus(status, s.now)
		s.Equal(status, company.Status)
	}
	s.False(company.IsActive())
	company.ApplyStatus(models.StatusActive, s.now)
	s.True(company.IsActive())
	s.False(company.IsBlocked())
}

func (s *CompanySuite) TestReconstituteRoundTrip() {
	company, err := models.NewCompany(s.validParams(), s.validators, s.now)
	s.Require().NoError(err)
	company.ID = 42

	restored := models.Reconstitute(company.Row())
	s.Equal(company, restored)
}

func (s *CompanySuite) TestReconstituteSkipsValidation() {
	// Rows written before a rule change must still load.
	row := models.CompanyRow{
		ID:           7,
		Name:         "Legacy Co",
		Email:        "legacy@example.com",
		Phone:        "5511988899090",
		Address:      "short",
		TaxID:        "not-checked",
		CountryCode:  "BR",
		BusinessArea: "technology",
		PersonType:   "individual",
		Status:       "active",
	}
	company := models.Reconstitute(row)
	s.Equal("short", company.Address.String())
	s.Equal("not-checked", company.TaxID.String())
}
