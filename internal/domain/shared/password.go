package shared

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// Hasher is the port for one-way password hashing. Compare returns an error
// when the plaintext does not match the hash.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) error
}

// Password policy bounds.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 16

	passwordSpecials = "!@#$%^&*"
)

// ErrInvalidPassword indicates the plaintext failed the password policy.
var ErrInvalidPassword = dErrors.Newf(dErrors.CodeValidation,
	"password must be %d-%d characters with an uppercase letter, a digit and one of %s",
	MinPasswordLength, MaxPasswordLength, passwordSpecials)

// Password holds a password hash; the plaintext never leaves NewPassword.
//
// Invariants (checked against the plaintext before hashing):
//   - Between MinPasswordLength and MaxPasswordLength characters
//   - At least one uppercase letter, one digit, and one of passwordSpecials
type Password struct {
	hash string
}

// NewPassword validates the plaintext against the policy, then hashes it via
// the injected hasher.
func NewPassword(plain string, hasher Hasher) (Password, error) {
	if !passwordMeetsPolicy(plain) {
		return Password{}, ErrInvalidPassword
	}
	hash, err := hasher.Hash(plain)
	if err != nil {
		return Password{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return Password{hash: hash}, nil
}

// RestorePassword wraps an already-hashed value read from storage.
func RestorePassword(hash string) Password {
	return Password{hash: hash}
}

// Verify compares a plaintext candidate against the stored hash.
func (p Password) Verify(plain string, hasher Hasher) error {
	return hasher.Compare(plain, p.hash)
}

// Hash returns the stored hash for persistence.
func (p Password) Hash() string {
	return p.hash
}

// IsZero returns true when no password has been set.
func (p Password) IsZero() bool {
	return p.hash == ""
}

func passwordMeetsPolicy(plain string) bool {
	if len(plain) < MinPasswordLength || len(plain) > MaxPasswordLength {
		return false
	}
	var upper, digit, special bool
	for _, r := range plain {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && digit && special
}
