// Package domains implements the Domain catalogue repository using PostgreSQL.
package domains

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Repo provides domain persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new domains repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, slug, name, theme, ranking, created_at, updated_at`

// createSQL appends the new domain after the current last one.
const createSQL = `
INSERT INTO domains (slug, name, theme, ranking)
SELECT $1, $2, $3, COALESCE(MAX(ranking), 0) + 1 FROM domains
RETURNING ` + columns

const updateSQL = `
UPDATE domains
SET slug = $2, name = $3, theme = $4, updated_at = now()
WHERE slug = $1
RETURNING ` + columns

// insertIfAbsentSQL leaves existing domains alone except for filling in a
// missing ranking.
const insertIfAbsentSQL = `
INSERT INTO domains (slug, name, theme, ranking)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET ranking = EXCLUDED.ranking, updated_at = now()
WHERE domains.ranking IS NULL`

const setRankingSQL = `UPDATE domains SET ranking = $2, updated_at = now() WHERE slug = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every domain in display order: ranking ascending with
// unranked domains last, ties broken by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Domain, error) {
	query, args, err := r.selectBuilder().
		OrderBy("ranking ASC NULLS LAST", "name ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "list domains", "")
	}

	var rows []domainRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list domains", "")
	}

	result := make([]*domain.Domain, len(rows))
	for i := range rows {
		d := rows[i].toDomain()
		result[i] = &d
	}
	return result, nil
}

// GetBySlug returns one domain. Returns domain.ErrNotFound when absent.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Domain, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "domain", slug)
	}

	var row domainRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("domain %s: %w", slug, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "domain", slug)
	}

	d := row.toDomain()
	return &d, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a domain ranked after every existing one.
// Returns domain.ErrAlreadyExists when the slug is taken.
func (r *Repo) Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	var row domainRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, d.Slug, d.Name, d.Theme)
	if err != nil {
		return nil, postgres.MapError(err, "domain", d.Slug)
	}

	result := row.toDomain()
	return &result, nil
}

// Update changes the slug, name and theme of the domain currently at slug.
// Returns domain.ErrNotFound when absent and domain.ErrAlreadyExists when the
// new slug belongs to another domain.
func (r *Repo) Update(ctx context.Context, slug string, d *domain.Domain) (*domain.Domain, error) {
	var row domainRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL, slug, d.Slug, d.Name, d.Theme)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("domain %s: %w", slug, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "domain", slug)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes a domain and reports whether a row existed.
func (r *Repo) Delete(ctx context.Context, slug string) (bool, error) {
	query, args, err := postgres.Builder().
		Delete("domains").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "domain", slug)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "domain", slug)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertIfAbsent inserts a domain with an explicit ranking unless the slug
// already exists. An existing unranked domain takes the given ranking.
// Reports whether a row was written.
func (r *Repo) InsertIfAbsent(ctx context.Context, d *domain.Domain) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertIfAbsentSQL, d.Slug, d.Name, d.Theme, d.Ranking)
	if err != nil {
		return false, postgres.MapError(err, "domain", d.Slug)
	}
	return tag.RowsAffected() > 0, nil
}

// SetRankings applies every ranking update in one batch round trip. The first
// update that matches no domain yields domain.ErrNotFound naming its slug.
// Callers wanting all-or-nothing semantics run it inside a transaction.
func (r *Repo) SetRankings(ctx context.Context, updates []domain.RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(setRankingSQL, u.Slug, u.Ranking)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return postgres.MapError(err, "domain", u.Slug)
		}
		if tag.RowsAffected() == 0 {
			_ = br.Close()
			return fmt.Errorf("domain %s: %w", u.Slug, domain.ErrNotFound)
		}
	}

	if err := br.Close(); err != nil {
		return postgres.MapError(err, "reorder domains", "")
	}
	return nil
}

func (r *Repo) selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns).From("domains")
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type domainRow struct {
	ID        uuid.UUID `db:"id"`
	Slug      string    `db:"slug"`
	Name      string    `db:"name"`
	Theme     string    `db:"theme"`
	Ranking   *int      `db:"ranking"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r domainRow) toDomain() domain.Domain {
	return domain.Domain{
		ID:        r.ID,
		Slug:      r.Slug,
		Name:      r.Name,
		Theme:     r.Theme,
		Ranking:   r.Ranking,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
