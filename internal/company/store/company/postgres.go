package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"registro/internal/company/models"
	"registro/pkg/domain"
	"registro/pkg/platform/sentinel"
)

// Postgres persists companies in PostgreSQL. Uniqueness is enforced by the
// companies_email_unique and companies_tax_id_unique indexes; violations are
// translated to the models duplicate errors so races lose cleanly instead of
// surfacing a driver error.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed company store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// companyColumns joins countries so reconstitution knows the country code
// without a second query.
const companyColumns = `
	c.id, c.uuid, c.name, c.email, c.landline, c.phone, c.address, c.city,
	c.state, c.zip, c.country_id, co.iso2, c.tax_id, c.description,
	c.business_area, c.person_type, c.status, c.created_at, c.updated_at`

const companyFrom = ` FROM companies c JOIN countries co ON co.id = c.country_id `

// sortColumns maps API sort fields to companies columns. Keys must stay in
// step with models.SortableFields.
var sortColumns = map[string]string{
	"name":         "c.name",
	"email":        "c.email",
	"taxId":        "c.tax_id",
	"city":         "c.city",
	"state":        "c.state",
	"businessArea": "c.business_area",
	"personType":   "c.person_type",
	"status":       "c.status",
	"createdAt":    "c.created_at",
	"updatedAt":    "c.updated_at",
}

func (s *Postgres) Create(ctx context.Context, company *models.Company) error {
	row := company.Row()
	err := s.pool.QueryRow(ctx, `
		INSERT INTO companies (
			uuid, name, email, landline, phone, address, city, state, zip,
			country_id, tax_id, description, business_area, person_type,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		row.UUID, row.Name, row.Email, row.Landline, row.Phone, row.Address,
		row.City, row.State, row.Zip, row.CountryID, row.TaxID,
		row.Description, row.BusinessArea, row.PersonType, row.Status,
		row.CreatedAt, row.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("create company: %w", translateConstraint(err))
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, company *models.Company) error {
	row := company.Row()
	tag, err := s.pool.Exec(ctx, `
		UPDATE companies SET
			name = $2, email = $3, landline = $4, phone = $5, address = $6,
			city = $7, state = $8, zip = $9, country_id = $10, tax_id = $11,
			description = $12, business_area = $13, person_type = $14,
			updated_at = $15
		WHERE id = $1`,
		row.ID, row.Name, row.Email, row.Landline, row.Phone, row.Address,
		row.City, row.State, row.Zip, row.CountryID, row.TaxID,
		row.Description, row.BusinessArea, row.PersonType, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", translateConstraint(err))
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) UpdateStatus(ctx context.Context, id int64, status models.CompanyStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE companies SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.findOne(ctx, `c.id = $1`, id)
}

func (s *Postgres) FindByUUID(ctx context.Context, companyUUID uuid.UUID) (*models.Company, error) {
	return s.findOne(ctx, `c.uuid = $1`, companyUUID)
}

func (s *Postgres) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	return s.findOne(ctx, `LOWER(c.email) = LOWER($1)`, email)
}

func (s *Postgres) FindByTaxID(ctx context.Context, taxID string) (*models.Company, error) {
	return s.findOne(ctx, `c.tax_id = $1`, taxID)
}

func (s *Postgres) findOne(ctx context.Context, where string, arg any) (*models.Company, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+companyColumns+companyFrom+`WHERE `+where, arg)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return company, nil
}

func (s *Postgres) List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sortBy domain.Sort) ([]*models.Company, error) {
	where, args := buildWhere(filter)

	var query strings.Builder
	query.WriteString(`SELECT ` + companyColumns + companyFrom)
	if where != "" {
		query.WriteString(`WHERE ` + where + ` `)
	}
	query.WriteString(`ORDER BY ` + orderClause(sortBy) + ` `)
	args = append(args, page.Limit(), page.Offset())
	query.WriteString(fmt.Sprintf(`LIMIT $%d OFFSET $%d`, len(args)-1, len(args)))

	rows, err := s.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]*models.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// buildWhere assembles the filter predicate. Values are always passed as
// placeholders; only column names from this file reach the SQL text.
func buildWhere(f models.Filter) (string, []any) {
	var conds []string
	var args []any

	like := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+value+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	like("c.name", f.Name)
	like("c.email", f.Email)
	like("c.tax_id", f.TaxID)
	like("c.city", f.City)
	like("c.state", f.State)
	like("c.business_area", f.BusinessArea)

	if f.PersonType != "" {
		args = append(args, string(f.PersonType))
		conds = append(conds, fmt.Sprintf("c.person_type = $%d", len(args)))
	}
	if f.CountryID != 0 {
		args = append(args, f.CountryID)
		conds = append(conds, fmt.Sprintf("c.country_id = $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

// orderClause renders allowlisted sort keys; c.id is the final tiebreak so
// pages are stable across requests.
func orderClause(sortBy domain.Sort) string {
	var parts []string
	for _, key := range sortBy {
		column, ok := sortColumns[key.Field]
		if !ok {
			continue
		}
		direction := "ASC"
		if key.Direction == domain.Desc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}
	parts = append(parts, "c.id ASC")
	return strings.Join(parts, ", ")
}

// translateConstraint maps unique violations (SQLSTATE 23505) to the domain
// duplicate errors by constraint name.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch pgErr.ConstraintName {
	case "companies_email_unique":
		return models.ErrDuplicateEmail
	case "companies_tax_id_unique":
		return models.ErrDuplicateTaxID
	}
	return fmt.Errorf("%s: %w", pgErr.ConstraintName, sentinel.ErrConflict)
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var r models.CompanyRow
	err := row.Scan(
		&r.ID, &r.UUID, &r.Name, &r.Email, &r.Landline, &r.Phone, &r.Address,
		&r.City, &r.State, &r.Zip, &r.CountryID, &r.CountryCode, &r.TaxID,
		&r.Description, &r.BusinessArea, &r.PersonType, &r.Status,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return models.Reconstitute(r), nil
}
