// Package company provides the company stores: a mutex-guarded in-memory
// store used by tests and development wiring, and a PostgreSQL store for
// production. Both enforce the email and tax id uniqueness invariants and
// speak in sentinel errors.
package company

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"registro/internal/company/models"
	"registro/pkg/domain"
	"registro/pkg/platform/sentinel"
)

// InMemory is an in-memory company store. Uniqueness checks are
// case-insensitive on email, exact on tax id, matching the postgres indexes.
type InMemory struct {
	mu        sync.RWMutex
	seq       int64
	companies map[int64]*models.Company
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{companies: make(map[int64]*models.Company)}
}

func (s *InMemory) Create(_ context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.companies {
		if strings.EqualFold(existing.Email.String(), company.Email.String()) {
			return models.ErrDuplicateEmail
		}
		if existing.TaxID.String() == company.TaxID.String() {
			return models.ErrDuplicateTaxID
		}
	}

	s.seq++
	company.ID = s.seq
	s.companies[company.ID] = clone(company)
	return nil
}

func (s *InMemory) Update(_ context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[company.ID]; !ok {
		return sentinel.ErrNotFound
	}
	for id, existing := range s.companies {
		if id == company.ID {
			continue
		}
		if strings.EqualFold(existing.Email.String(), company.Email.String()) {
			return models.ErrDuplicateEmail
		}
		if existing.TaxID.String() == company.TaxID.String() {
			return models.ErrDuplicateTaxID
		}
	}
	s.companies[company.ID] = clone(company)
	return nil
}

func (s *InMemory) UpdateStatus(_ context.Context, id int64, status models.CompanyStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, ok := s.companies[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	company.Status = status
	return nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.companies, id)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(company), nil
}

func (s *InMemory) FindByUUID(_ context.Context, companyUUID uuid.UUID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, company := range s.companies {
		if company.UUID == companyUUID {
			return clone(company), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, company := range s.companies {
		if strings.EqualFold(company.Email.String(), email) {
			return clone(company), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByTaxID(_ context.Context, taxID string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, company := range s.companies {
		if company.TaxID.String() == taxID {
			return clone(company), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Count returns the number of stored companies. Intended for tests.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies), nil
}

func (s *InMemory) List(_ context.Context, filter models.Filter, page domain.OffsetPagination, sortBy domain.Sort) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Company, 0, len(s.companies))
	for _, company := range s.companies {
		if matchesFilter(company, filter) {
			matched = append(matched, clone(company))
		}
	}

	orderCompanies(matched, sortBy)

	start := page.Offset()
	if start >= len(matched) {
		return []*models.Company{}, nil
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func matchesFilter(c *models.Company, f models.Filter) bool {
	if !containsFold(c.Name, f.Name) ||
		!containsFold(c.Email.String(), f.Email) ||
		!containsFold(c.TaxID.String(), f.TaxID) ||
		!containsFold(c.City, f.City) ||
		!containsFold(c.State, f.State) ||
		!containsFold(string(c.BusinessArea), f.BusinessArea) {
		return false
	}
	if f.PersonType != "" && c.PersonType != f.PersonType {
		return false
	}
	if f.CountryID != 0 && c.CountryID != f.CountryID {
		return false
	}
	return true
}

// containsFold is a case-insensitive partial match; an empty needle matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// orderCompanies applies the sort keys in order. A stable sort plus
// first-key-that-differs comparison gives a deterministic multi-key order;
// ties keep insertion id order as the final tiebreak.
func orderCompanies(companies []*models.Company, sortBy domain.Sort) {
	sort.SliceStable(companies, func(i, j int) bool {
		for _, key := range sortBy {
			cmp := compareField(companies[i], companies[j], key.Field)
			if cmp == 0 {
				continue
			}
			if key.Direction == domain.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return companies[i].ID < companies[j].ID
	})
}

func compareField(a, b *models.Company, field string) int {
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

func stringField(c *models.Company, field string) string {
	switch field {
	case "name":
		return c.Name
	case "email":
		return c.Email.String()
	case "taxId":
		return c.TaxID.String()
	case "city":
		return c.City
	case "state":
		return c.State
	case "businessArea":
		return string(c.BusinessArea)
	case "personType":
		return string(c.PersonType)
	case "status":
		return string(c.Status)
	default:
		return ""
	}
}

func clone(c *models.Company) *models.Company {
	copied := *c
	return &copied
}
