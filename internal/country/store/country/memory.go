// Package country provides the country reference stores: an in-memory store
// for tests and development, and a PostgreSQL store reading the seeded table.
package country

import (
	"context"
	"sort"
	"sync"

	"registro/internal/country/models"
	"registro/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded country store. NewInMemory starts empty;
// NewInMemorySeeded ships a realistic default set.
type InMemory struct {
	mu        sync.RWMutex
	countries map[int64]*models.Country
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{countries: make(map[int64]*models.Country)}
}

// NewInMemorySeeded creates a store pre-loaded with the default country set.
func NewInMemorySeeded() *InMemory {
	s := NewInMemory()
	for _, c := range seedCountries() {
		country := c
		s.countries[country.ID] = &country
	}
	return s
}

// Add inserts or replaces a country. Intended for tests.
func (s *InMemory) Add(country *models.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *country
	s.countries[country.ID] = &copied
}

// FindByCode returns the country matching code against iso2, iso3 or locale,
// case-insensitively. Returns sentinel.ErrNotFound when nothing matches.
func (s *InMemory) FindByCode(_ context.Context, code string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, country := range s.countries {
		if country.MatchesCode(code) {
			copied := *country
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// FindByID returns the country with the given storage id.
func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	country, ok := s.countries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *country
	return &copied, nil
}

// List returns all countries ordered by name.
func (s *InMemory) List(_ context.Context) ([]*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Country, 0, len(s.countries))
	for _, country := range s.countries {
		copied := *country
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// seedCountries mirrors the rows installed by the countries migration.
func seedCountries() []models.Country {
	return []models.Country{
		{ID: 1, Name: "Brazil", ISO2: "BR", ISO3: "BRA", PhoneCode: "55", Locale: "pt-BR"},
		{ID: 2, Name: "United States", ISO2: "US", ISO3: "USA", PhoneCode: "1", Locale: "en-US"},
		{ID: 3, Name: "United Kingdom", ISO2: "GB", ISO3: "GBR", PhoneCode: "44", Locale: "en-GB"},
		{ID: 4, Name: "Germany", ISO2: "DE", ISO3: "DEU", PhoneCode: "49", Locale: "de-DE"},
		{ID: 5, Name: "Portugal", ISO2: "PT", ISO3: "PRT", PhoneCode: "351", Locale: "pt-PT"},
		{ID: 6, Name: "Netherlands", ISO2: "NL", ISO3: "NLD", PhoneCode: "31", Locale: "nl-NL"},
		{ID: 7, Name: "Canada", ISO2: "CA", ISO3: "CAN", PhoneCode: "1", Locale: "en-CA"},
		{ID: 8, Name: "Argentina", ISO2: "AR", ISO3: "ARG", PhoneCode: "54", Locale: "es-AR"},
	}
}
