// Package service orchestrates company use cases: each exported method is a
// single business operation following fetch -> check invariants -> construct
// -> persist. Expected failures come back as coded domain errors; nothing
// here panics or lets a store error escape untranslated.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	companymetrics "registro/internal/company/metrics"
	"registro/internal/company/models"
	countrymodels "registro/internal/country/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

// CompanyStore is the persistence port for companies. Implementations must
// enforce email and tax id uniqueness and return the models.Err* facts on
// violation, so the invariant holds even when two creates race.
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	UpdateStatus(ctx context.Context, id int64, status models.CompanyStatus) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Company, error)
	FindByUUID(ctx context.Context, companyUUID uuid.UUID) (*models.Company, error)
	FindByEmail(ctx context.Context, email string) (*models.Company, error)
	FindByTaxID(ctx context.Context, taxID string) (*models.Company, error)
	List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.Company, error)
}

// CountryStore resolves country reference data by iso2, iso3 or locale code.
type CountryStore interface {
	FindByCode(ctx context.Context, code string) (*countrymodels.Country, error)
}

// Service orchestrates company lifecycle management.
type Service struct {
	companies  CompanyStore
	countries  CountryStore
	validators models.FormatValidators
	logger     *slog.Logger
	metrics    *companymetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *companymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(companies CompanyStore, countries CountryStore, validators models.FormatValidators, opts ...Option) *Service {
	s := &Service{
		companies:  companies,
		countries:  countries,
		validators: validators,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementCompanyCreated()
	}
}

func (s *Service) recordRejection(err error) {
	if s.metrics != nil {
		s.metrics.IncrementValidationRejected(string(dErrors.CodeOf(err)))
	}
}

func (s *Service) observeList(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveList(start)
	}
}
