// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `email, name, password_hash, created_at, updated_at`

// GetByEmail returns a user by email address. Returns domain.ErrNotFound when absent.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", email)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user. Returns domain.ErrAlreadyExists when the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING `+userColumns,
		u.Email, u.Name, u.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	result := row.toDomain()
	return &result, nil
}

// Upsert inserts a user or replaces the name and password hash of an existing one.
// Used by the legacy users file import.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, updated_at = now()
		 RETURNING `+userColumns,
		u.Email, u.Name, u.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdatePasswordHash replaces the stored hash. Returns domain.ErrNotFound when absent.
func (r *Repo) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE email = $1`,
		email, hash,
	)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

type userRow struct {
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
