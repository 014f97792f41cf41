//go:build integration

package company_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"registro/internal/company/models"
	companystore "registro/internal/company/store/company"
	"registro/internal/validation"
	"registro/pkg/domain"
	"registro/pkg/platform/sentinel"
	"registro/pkg/testutil/containers"
)

type PostgresSuite struct {
	suite.Suite
	postgres   *containers.PostgresContainer
	store      *companystore.Postgres
	validators models.FormatValidators
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = companystore.NewPostgres(s.postgres.Pool)
	s.validators = models.FormatValidators{
		TaxID: validation.NewTaxIDRegistry(),
		Zip:   validation.NewZipCodeRegistry(),
	}
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "companies"))
}

func (s *PostgresSuite) newCompany(name, email, taxID string) *models.Company {
	s.T().Helper()
	company, err := models.NewCompany(models.CompanyParams{
		Name:         name,
		Email:        email,
		Phone:        "+55 11 91234-5678",
		Address:      "123 Main St, Downtown District",
		City:         "Sao Paulo",
		State:        "SP",
		Zip:          "01310-100",
		TaxID:        taxID,
		Description:  "Custom software development and consulting",
		BusinessArea: "technology",
		PersonType:   "company",
		CountryID:    1,
		CountryCode:  "BR",
	}, s.validators, time.Now().UTC().Truncate(time.Microsecond))
	s.Require().NoError(err)
	return company
}

func (s *PostgresSuite) TestCreateAndReadBack() {
	ctx := context.Background()
	company := s.newCompany("Tech Solutions Ltda", "contact@techsolutions.com.br", "01894147000135")

	s.Require().NoError(s.store.Create(ctx, company))
	s.NotZero(company.ID)

	stored, err := s.store.FindByID(ctx, company.ID)
	s.Require().NoError(err)
	s.Equal(company.UUID, stored.UUID)
	s.Equal("Tech Solutions Ltda", stored.Name)
	s.Equal("contact@techsolutions.com.br", stored.Email.String())
	s.Equal("01894147000135", stored.TaxID.String())
	s.Equal("BR", stored.TaxID.CountryCode())
	s.Equal(models.StatusOnboarding, stored.Status)
	s.Equal(models.PersonTypeCompany, stored.PersonType)
}

func (s *PostgresSuite) TestUniqueConstraints() {
	ctx := context.Background()
	existing := s.newCompany("Tech Solutions Ltda", "contact@techsolutions.com.br", "01894147000135")
	s.Require().NoError(s.store.Create(ctx, existing))

	s.Run("duplicate email loses the race", func() {
		dup := s.newCompany("Other Co", "CONTACT@techsolutions.com.br", "11222333000181")
		s.ErrorIs(s.store.Create(ctx, dup), models.ErrDuplicateEmail)
	})

	s.Run("duplicate tax id loses the race", func() {
		dup := s.newCompany("Other Co", "other@example.com.br", "01894147000135")
		s.ErrorIs(s.store.Create(ctx, dup), models.ErrDuplicateTaxID)
	})
}

func (s *PostgresSuite) TestUpdateAndStatus() {
	ctx := context.Background()
	company := s.newCompany("Tech Solutions Ltda", "contact@techsolutions.com.br", "01894147000135")
	s.Require().NoError(s.store.Create(ctx, company))

	company.City = "Campinas"
	s.Require().NoError(s.store.Update(ctx, company))
	s.Require().NoError(s.store.UpdateStatus(ctx, company.ID, models.StatusActive))

	stored, err := s.store.FindByUUID(ctx, company.UUID)
	s.Require().NoError(err)
	s.Equal("Campinas", stored.City)
	s.Equal(models.StatusActive, stored.Status)
}

func (s *PostgresSuite) TestDeleteAndNotFound() {
	ctx := context.Background()
	company := s.newCompany("Tech Solutions Ltda", "contact@techsolutions.com.br", "01894147000135")
	s.Require().NoError(s.store.Create(ctx, company))

	s.Require().NoError(s.store.Delete(ctx, company.ID))
	s.ErrorIs(s.store.Delete(ctx, company.ID), sentinel.ErrNotFound)

	_, err := s.store.FindByEmail(ctx, "contact@techsolutions.com.br")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresSuite) TestListFilterSortPaginate() {
	ctx := context.Background()
	fixtures := []struct{ name, email, taxID, area string }{
		{"Beta Logistics", "beta@example.com.br", "01894147000135", "logistics"},
		{"Alpha Tech", "alpha@example.com.br", "11222333000181", "technology"},
		{"Gamma Foods", "gamma@example.com.br", "34028316000103", "retail"},
	}
	for _, f := range fixtures {
		company, err := models.NewCompany(models.CompanyParams{
			Name:         f.name,
			Email:        f.email,
			Phone:        "+55 11 91234-5678",
			Address:      "123 Main St, Downtown District",
			City:         "Sao Paulo",
			State:        "SP",
			TaxID:        f.taxID,
			BusinessArea: f.area,
			PersonType:   "company",
			CountryID:    1,
			CountryCode:  "BR",
		}, s.validators, time.Now().UTC().Truncate(time.Microsecond))
		s.Require().NoError(err)
		s.Require().NoError(s.store.Create(ctx, company))
	}

	sortBy, err := domain.NewSort([]string{"name:asc"}, models.SortableFields)
	s.Require().NoError(err)

	s.Run("name ascending", func() {
		listed, err := s.store.List(ctx, models.Filter{}, domain.NewOffsetPagination(0, 0), sortBy)
		s.Require().NoError(err)
		s.Require().Len(listed, 3)
		s.Equal("Alpha Tech", listed[0].Name)
	})

	s.Run("partial name filter is case-insensitive", func() {
		listed, err := s.store.List(ctx, models.Filter{Name: "ALPH"}, domain.NewOffsetPagination(0, 0), nil)
		s.Require().NoError(err)
		s.Require().Len(listed, 1)
		s.Equal("Alpha Tech", listed[0].Name)
	})

	s.Run("second page of size two", func() {
		listed, err := s.store.List(ctx, models.Filter{}, domain.NewOffsetPagination(2, 2), sortBy)
		s.Require().NoError(err)
		s.Require().Len(listed, 1)
		s.Equal("Gamma Foods", listed[0].Name)
	})

	s.Run("empty result is an empty slice", func() {
		listed, err := s.store.List(ctx, models.Filter{City: "Recife"}, domain.NewOffsetPagination(0, 0), nil)
		s.Require().NoError(err)
		s.Empty(listed)
	})
}
