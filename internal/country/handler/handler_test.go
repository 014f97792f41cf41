package handler_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"registro/internal/country/handler"
	"registro/internal/country/models"
	countrystore "registro/internal/country/store/country"
	"registro/pkg/testutil"
)

type CountryHandlerSuite struct {
	suite.Suite
	router chi.Router
}

func (s *CountryHandlerSuite) SetupTest() {
	store := countrystore.NewInMemorySeeded()
	h := handler.New(store, slog.Default())
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *CountryHandlerSuite) TestListReturnsSeededCountriesOrderedByName() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/countries"))

	testutil.AssertStatusOK(s.T(), rr)
	countries := testutil.UnmarshalResponse[[]models.Country](s.T(), rr)
	s.Require().Len(*countries, 8)
	s.Equal("Argentina", (*countries)[0].Name)
	s.Equal("United States", (*countries)[7].Name)
}

func (s *CountryHandlerSuite) TestGetByISO2() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/countries/br"))

	testutil.AssertStatusOK(s.T(), rr)
	country := testutil.UnmarshalResponse[models.Country](s.T(), rr)
	s.Equal("Brazil", country.Name)
	s.Equal("BR", country.ISO2)
}

func (s *CountryHandlerSuite) TestGetByISO3AndLocale() {
	for _, code := range []string{"DEU", "de-DE"} {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/countries/"+code))

		testutil.AssertStatusOK(s.T(), rr)
		country := testutil.UnmarshalResponse[models.Country](s.T(), rr)
		s.Equal("Germany", country.Name)
	}
}

func (s *CountryHandlerSuite) TestGetUnknownCodeReturnsNotFound() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/countries/XX"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func TestCountryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CountryHandlerSuite))
}
