// Package models holds the User aggregate and its construction rules.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"registro/internal/domain/shared"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/sentinel"
)

var (
	// ErrUserNameRequired indicates a missing user name.
	ErrUserNameRequired = dErrors.New(dErrors.CodeValidation, "user name is required")

	// ErrOldPasswordRequired indicates a password change without the current
	// password. Credential checks map to 401, not 400.
	ErrOldPasswordRequired = dErrors.New(dErrors.CodeUnauthorized, "current password is required to change password")

	// ErrOldPasswordInvalid indicates the supplied current password does not
	// match the stored hash.
	ErrOldPasswordInvalid = dErrors.New(dErrors.CodeUnauthorized, "current password does not match")

	// ErrDuplicateEmail is the storage-level uniqueness fact for user email.
	ErrDuplicateEmail = fmt.Errorf("user email already registered: %w", sentinel.ErrConflict)
)

// User is the aggregate root for an account.
//
// Invariants:
//   - Email is unique across users (enforced by stores)
//   - Password, when set, satisfied the policy at hashing time
//   - Changing the password requires the correct current password
type User struct {
	ID            int64
	UUID          uuid.UUID
	Name          string
	Email         shared.Email
	Password      shared.Password
	Phone         shared.Phone
	SessionStatus SessionStatus
	Status        UserStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserParams is the raw primitive input for constructing or updating a user.
// Password is plaintext here and never stored; it is hashed on the way in.
type UserParams struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	SessionStatus string
	Status        string
}

// NewUser validates params field by field and builds the aggregate. Password
// is optional on creation; when present it is validated and hashed. Status
// defaults to active and session status to offline.
func NewUser(p UserParams, hasher shared.Hasher, now time.Time) (*User, error) {
	fields, err := buildUserFields(p, hasher)
	if err != nil {
		return nil, err
	}
	status, err := ParseUserStatus(p.Status)
	if err != nil {
		return nil, err
	}
	sessionStatus, err := ParseSessionStatus(p.SessionStatus)
	if err != nil {
		return nil, err
	}
	return &User{
		UUID:          uuid.New(),
		Name:          fields.name,
		Email:         fields.email,
		Password:      fields.password,
		Phone:         fields.phone,
		SessionStatus: sessionStatus,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyUpdate replaces name, email, phone, status and session status after
// validation. The password is untouched; changes go through ChangePassword.
func (u *User) ApplyUpdate(p UserParams, now time.Time) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrUserNameRequired
	}
	email, err := shared.NewEmail(p.Email)
	if err != nil {
		return err
	}
	var phone shared.Phone
	if p.Phone != "" {
		phone, err = shared.NewPhone(p.Phone)
		if err != nil {
			return err
		}
	}
	status, err := ParseUserStatus(p.Status)
	if err != nil {
		return err
	}
	sessionStatus, err := ParseSessionStatus(p.SessionStatus)
	if err != nil {
		return err
	}

	u.Name = strings.TrimSpace(p.Name)
	u.Email = email
	u.Phone = phone
	u.Status = status
	u.SessionStatus = sessionStatus
	u.UpdatedAt = now
	return nil
}

// ChangePassword rotates the stored hash. The current password is required
// and verified before the new password's policy is even checked, so callers
// cannot probe the policy without credentials.
func (u *User) ChangePassword(oldPassword, newPassword string, hasher shared.Hasher, now time.Time) error {
	if oldPassword == "" {
		return ErrOldPasswordRequired
	}
	if err := u.Password.Verify(oldPassword, hasher); err != nil {
		return ErrOldPasswordInvalid
	}
	password, err := shared.NewPassword(newPassword, hasher)
	if err != nil {
		return err
	}
	u.Password = password
	u.UpdatedAt = now
	return nil
}

// ApplyStatus sets the account status. Transitions are unrestricted.
func (u *User) ApplyStatus(status UserStatus, now time.Time) {
	u.Status = status
	u.UpdatedAt = now
}

// ApplySessionStatus sets the presence state.
func (u *User) ApplySessionStatus(status SessionStatus, now time.Time) {
	u.SessionStatus = status
	u.UpdatedAt = now
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

type userFields struct {
	name     string
	email    shared.Email
	password shared.Password
	phone    shared.Phone
}

func buildUserFields(p UserParams, hasher shared.Hasher) (userFields, error) {
	var f userFields

	if strings.TrimSpace(p.Name) == "" {
		return f, ErrUserNameRequired
	}
	f.name = strings.TrimSpace(p.Name)

	email, err := shared.NewEmail(p.Email)
	if err != nil {
		return f, err
	}
	f.email = email

	if p.Password != "" {
		password, err := shared.NewPassword(p.Password, hasher)
		if err != nil {
			return f, err
		}
		f.password = password
	}

	if p.Phone != "" {
		phone, err := shared.NewPhone(p.Phone)
		if err != nil {
			return f, err
		}
		f.phone = phone
	}
	return f, nil
}

// UserRow is the persistence shape of a user. Only store implementations
// should construct one.
type UserRow struct {
	ID            int64
	UUID          uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	Phone         string
	SessionStatus string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstitute rebuilds the aggregate from a stored row without re-running
// validation.
func Reconstitute(row UserRow) *User {
	u := &User{
		ID:            row.ID,
		UUID:          row.UUID,
		Name:          row.Name,
		Email:         shared.RestoreEmail(row.Email),
		Password:      shared.RestorePassword(row.PasswordHash),
		SessionStatus: SessionStatus(row.SessionStatus),
		Status:        UserStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.Phone != "" {
		u.Phone = shared.RestorePhone(row.Phone)
	}
	return u
}

// Row converts the aggregate back to its persistence shape.
func (u *User) Row() UserRow {
	return UserRow{
		ID:            u.ID,
		UUID:          u.UUID,
		Name:          u.Name,
		Email:         u.Email.String(),
		PasswordHash:  u.Password.Hash(),
		Phone:         u.Phone.String(),
		SessionStatus: string(u.SessionStatus),
		Status:        string(u.Status),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
