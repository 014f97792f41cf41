package country

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registro/internal/country/models"
	"registro/pkg/platform/sentinel"
)

// Postgres reads the countries table seeded by migrations.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed country store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const countryColumns = `id, name, iso2, iso3, phone_code, locale`

func (s *Postgres) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+countryColumns+` FROM countries
		 WHERE LOWER(iso2) = LOWER($1) OR LOWER(iso3) = LOWER($1) OR LOWER(locale) = LOWER($1)`,
		code)
	country, err := scanCountry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by code: %w", err)
	}
	return country, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Country, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE id = $1`, id)
	country, err := scanCountry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by id: %w", err)
	}
	return country, nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+countryColumns+` FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var countries []*models.Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

func scanCountry(row pgx.Row) (*models.Country, error) {
	var c models.Country
	if err := row.Scan(&c.ID, &c.Name, &c.ISO2, &c.ISO3, &c.PhoneCode, &c.Locale); err != nil {
		return nil, err
	}
	return &c, nil
}
