// Package user provides the user stores: a mutex-guarded in-memory store
// used by tests and development wiring, and a PostgreSQL store for
// production. Both enforce email uniqueness and speak in sentinel errors.
package user

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"registro/internal/user/models"
	"registro/pkg/domain"
	"registro/pkg/platform/sentinel"
)

// InMemory is an in-memory user store. Email uniqueness is case-insensitive,
// matching the postgres index.
type InMemory struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]*models.User
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{users: make(map[int64]*models.User)}
}

func (s *InMemory) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email.String(), user.Email.String()) {
			return models.ErrDuplicateEmail
		}
	}

	s.seq++
	user.ID = s.seq
	s.users[user.ID] = clone(user)
	return nil
}

func (s *InMemory) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.users {
		if id != user.ID && strings.EqualFold(existing.Email.String(), user.Email.String()) {
			return models.ErrDuplicateEmail
		}
	}
	s.users[user.ID] = clone(user)
	return nil
}

func (s *InMemory) UpdateStatus(_ context.Context, id int64, status models.UserStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	user.Status = status
	return nil
}

func (s *InMemory) UpdateSessionStatus(_ context.Context, id int64, status models.SessionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	user.SessionStatus = status
	return nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(user), nil
}

func (s *InMemory) FindByUUID(_ context.Context, userUUID uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.UUID == userUUID {
			return clone(user), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email.String(), email) {
			return clone(user), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Count returns the number of stored users. Intended for tests.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *InMemory) List(_ context.Context, filter models.Filter, page domain.OffsetPagination, sortBy domain.Sort) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		if matchesFilter(user, filter) {
			matched = append(matched, clone(user))
		}
	}

	orderUsers(matched, sortBy)

	start := page.Offset()
	if start >= len(matched) {
		return []*models.User{}, nil
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func matchesFilter(u *models.User, f models.Filter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Email != "" && !strings.Contains(strings.ToLower(u.Email.String()), strings.ToLower(f.Email)) {
		return false
	}
	if f.Status != "" && u.Status != f.Status {
		return false
	}
	if f.SessionStatus != "" && u.SessionStatus != f.SessionStatus {
		return false
	}
	return true
}

func orderUsers(users []*models.User, sortBy domain.Sort) {
	sort.SliceStable(users, func(i, j int) bool {
		for _, key := range sortBy {
			cmp := compareField(users[i], users[j], key.Field)
			if cmp == 0 {
				continue
			}
			if key.Direction == domain.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return users[i].ID < users[j].ID
	})
}

func compareField(a, b *models.User, field string) int {
	switch field {
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return strings.Compare(
			strings.ToLower(stringField(a, field)),
			strings.ToLower(stringField(b, field)),
		)
	}
}

func stringField(u *models.User, field string) string {
	switch field {
	case "name":
		return u.Name
	case "email":
		return u.Email.String()
	case "status":
		return string(u.Status)
	case "sessionStatus":
		return string(u.SessionStatus)
	default:
		return ""
	}
}

func clone(u *models.User) *models.User {
	copied := *u
	return &copied
}
