package models

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// SessionStatus is the user's presence state. Transitions are unrestricted.
type SessionStatus string

const (
	SessionOffline SessionStatus = "offline"
	SessionOnline  SessionStatus = "online"
	SessionAway    SessionStatus = "away"
	SessionBusy    SessionStatus = "busy"
)

var (
	ErrInvalidUserStatus    = dErrors.New(dErrors.CodeValidation, "invalid user status")
	ErrInvalidSessionStatus = dErrors.New(dErrors.CodeValidation, "invalid session status")
)

// ParseUserStatus parses a status string; empty defaults to active.
func ParseUserStatus(raw string) (UserStatus, error) {
	switch UserStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return UserStatusActive, nil
	case UserStatusActive:
		return UserStatusActive, nil
	case UserStatusInactive:
		return UserStatusInactive, nil
	}
	return "", ErrInvalidUserStatus
}

// ParseSessionStatus parses a session status string; empty defaults to
// offline.
func ParseSessionStatus(raw string) (SessionStatus, error) {
	switch SessionStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return SessionOffline, nil
	case SessionOffline:
		return SessionOffline, nil
	case SessionOnline:
		return SessionOnline, nil
	case SessionAway:
		return SessionAway, nil
	case SessionBusy:
		return SessionBusy, nil
	}
	return "", ErrInvalidSessionStatus
}
