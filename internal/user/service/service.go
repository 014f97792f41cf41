// Package service orchestrates user account use cases. Each exported method
// is a single business operation following fetch -> check invariants ->
// construct -> persist, returning coded domain errors for expected failures.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"registro/internal/domain/shared"
	usermetrics "registro/internal/user/metrics"
	"registro/internal/user/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

// UserStore is the persistence port for users. Implementations must enforce
// email uniqueness and return models.ErrDuplicateEmail on violation, so the
// invariant holds even when two creates race.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
	UpdateSessionStatus(ctx context.Context, id int64, status models.SessionStatus) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.User, error)
}

// Service orchestrates user account management.
type Service struct {
	users   UserStore
	hasher  shared.Hasher
	logger  *slog.Logger
	metrics *usermetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *usermetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(users UserStore, hasher shared.Hasher, opts ...Option) *Service {
	s := &Service{
		users:  users,
		hasher: hasher,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementUserCreated()
	}
}

func (s *Service) recordPasswordChange(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementPasswordChange(outcome)
	}
}

func (s *Service) recordRejection(err error) {
	if s.metrics != nil {
		s.metrics.IncrementValidationRejected(string(dErrors.CodeOf(err)))
	}
}
