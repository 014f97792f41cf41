package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"registro/internal/user/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/sentinel"
	"registro/pkg/requestcontext"
)

// Application errors raised by user use cases.
var (
	ErrUserNotFound    = dErrors.New(dErrors.CodeNotFound, "user not found")
	ErrUserEmailExists = dErrors.New(dErrors.CodeConflict, "user email already in use")
)

// Create registers a new account. Email must be unused; the password, when
// supplied, is validated and hashed before anything is stored.
func (s *Service) Create(ctx context.Context, params models.UserParams) (*models.User, error) {
	if err := s.checkEmailAvailable(ctx, params.Email, 0); err != nil {
		return nil, err
	}

	user, err := models.NewUser(params, s.hasher, requestcontext.Now(ctx))
	if err != nil {
		s.recordRejection(err)
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, translateWriteErr(err)
	}

	s.incrementCreated()
	s.logger.InfoContext(ctx, "user created",
		slog.String("user_uuid", user.UUID.String()))
	return user, nil
}

// Update applies profile changes and, when a new password is supplied,
// rotates it after verifying the current one. Email uniqueness checks
// exclude the user itself.
func (s *Service) Update(ctx context.Context, id int64, params models.UserParams, oldPassword string) (*models.User, error) {
	user, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailAvailable(ctx, params.Email, id); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if err := user.ApplyUpdate(params, now); err != nil {
		s.recordRejection(err)
		return nil, err
	}

	if params.Password != "" {
		if err := user.ChangePassword(oldPassword, params.Password, s.hasher, now); err != nil {
			s.recordPasswordChange(passwordOutcome(err))
			return nil, err
		}
		s.recordPasswordChange("success")
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, translateWriteErr(err)
	}
	return user, nil
}

// UpdateStatus sets the account lifecycle status.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	if strings.TrimSpace(status) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "status is required")
	}
	parsed, err := models.ParseUserStatus(status)
	if err != nil {
		return nil, err
	}

	user, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApplyStatus(parsed, requestcontext.Now(ctx))
	if err := s.users.UpdateStatus(ctx, user.ID, parsed); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not update user status")
	}
	return user, nil
}

// UpdateSessionStatus sets the presence state.
func (s *Service) UpdateSessionStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	if strings.TrimSpace(status) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "session status is required")
	}
	parsed, err := models.ParseSessionStatus(status)
	if err != nil {
		return nil, err
	}

	user, err := s.loadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApplySessionStatus(parsed, requestcontext.Now(ctx))
	if err := s.users.UpdateSessionStatus(ctx, user.ID, parsed); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not update session status")
	}
	return user, nil
}

// DeleteByID removes an account.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.loadByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return ErrUserNotFound
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not delete user")
	}
	return nil
}

// GetByUUID returns a single user by its public identity.
func (s *Service) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load user")
	}
	return user, nil
}

// List returns users matching the filter, paginated and ordered. An empty
// result set is not an error.
func (s *Service) List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.User, error) {
	users, err := s.users.List(ctx, filter, page, sort)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list users")
	}
	return users, nil
}

func (s *Service) loadByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load user")
	}
	return user, nil
}

// checkEmailAvailable fails when another user (excluding excludeID) holds
// the email. The store's unique index backs this check under concurrency.
func (s *Service) checkEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	existing, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check user email")
	}
	if existing.ID != excludeID {
		return ErrUserEmailExists
	}
	return nil
}

func passwordOutcome(err error) string {
	if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		return "unauthorized"
	}
	return "rejected"
}

// translateWriteErr maps storage uniqueness facts onto the application
// errors the pre-checks would have produced.
func translateWriteErr(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return ErrUserEmailExists
	case errors.Is(err, sentinel.ErrNotFound):
		return ErrUserNotFound
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist user")
	}
}
