package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"registro/internal/user/models"
	"registro/pkg/domain"
	"registro/pkg/platform/sentinel"
)

// Postgres persists users in PostgreSQL. Email uniqueness is enforced by the
// users_email_unique index; violations are translated so races lose cleanly.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const userColumns = `
	id, uuid, name, email, password_hash, phone, session_status, status,
	created_at, updated_at`

var sortColumns = map[string]string{
	"name":          "name",
	"email":         "email",
	"status":        "status",
	"sessionStatus": "session_status",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

func (s *Postgres) Create(ctx context.Context, user *models.User) error {
	row := user.Row()
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (
			uuid, name, email, password_hash, phone, session_status, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		row.UUID, row.Name, row.Email, row.PasswordHash, row.Phone,
		row.SessionStatus, row.Status, row.CreatedAt, row.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", translateConstraint(err))
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, user *models.User) error {
	row := user.Row()
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET
			name = $2, email = $3, password_hash = $4, phone = $5,
			session_status = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		row.ID, row.Name, row.Email, row.PasswordHash, row.Phone,
		row.SessionStatus, row.Status, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", translateConstraint(err))
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) UpdateSessionStatus(ctx context.Context, id int64, status models.SessionStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET session_status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findOne(ctx, `id = $1`, id)
}

func (s *Postgres) FindByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error) {
	return s.findOne(ctx, `uuid = $1`, userUUID)
}

func (s *Postgres) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, `LOWER(email) = LOWER($1)`, email)
}

func (s *Postgres) findOne(ctx context.Context, where string, arg any) (*models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *Postgres) List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sortBy domain.Sort) ([]*models.User, error) {
	where, args := buildWhere(filter)

	var query strings.Builder
	query.WriteString(`SELECT ` + userColumns + ` FROM users `)
	if where != "" {
		query.WriteString(`WHERE ` + where + ` `)
	}
	query.WriteString(`ORDER BY ` + orderClause(sortBy) + ` `)
	args = append(args, page.Limit(), page.Offset())
	query.WriteString(fmt.Sprintf(`LIMIT $%d OFFSET $%d`, len(args)-1, len(args)))

	rows, err := s.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func buildWhere(f models.Filter) (string, []any) {
	var conds []string
	var args []any

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.SessionStatus != "" {
		args = append(args, string(f.SessionStatus))
		conds = append(conds, fmt.Sprintf("session_status = $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

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
	parts = append(parts, "id ASC")
	return strings.Join(parts, ", ")
}

func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	if pgErr.ConstraintName == "users_email_unique" {
		return models.ErrDuplicateEmail
	}
	return fmt.Errorf("%s: %w", pgErr.ConstraintName, sentinel.ErrConflict)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var r models.UserRow
	err := row.Scan(
		&r.ID, &r.UUID, &r.Name, &r.Email, &r.PasswordHash, &r.Phone,
		&r.SessionStatus, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return models.Reconstitute(r), nil
}
