// Package rating implements the Rating repository using PostgreSQL.
// Ratings are keyed by (entity_kind, entity_slug, user_email); writes are a
// single INSERT ... ON CONFLICT statement so concurrent upserts for the same
// key cannot duplicate or lose a row.
package rating

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, entity_kind, entity_slug, user_email, user_name, ranking, comment, created_at, updated_at`

const upsertSQL = `
INSERT INTO ratings (entity_kind, entity_slug, user_email, user_name, ranking, comment)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (entity_kind, entity_slug, user_email) DO UPDATE
SET user_name  = EXCLUDED.user_name,
    ranking    = EXCLUDED.ranking,
    comment    = EXCLUDED.comment,
    updated_at = now()
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the rating or, when one already exists for the same entity
// and user, overwrites its ranking, comment and user name.
// The email must already be normalized.
func (r *Repo) Upsert(ctx context.Context, rt *domain.Rating) (*domain.Rating, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row ratingRow
	err := pgxscan.Get(ctx, q, &row, upsertSQL,
		string(rt.Kind), rt.EntitySlug, rt.UserEmail, rt.UserName, string(rt.Ranking), rt.Comment,
	)
	if err != nil {
		return nil, postgres.MapError(err, "rating", rt.EntitySlug)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes the rating of one user on one entity. Deleting a rating that
// does not exist is not an error.
func (r *Repo) Delete(ctx context.Context, kind domain.EntityKind, slug, email string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM ratings WHERE entity_kind = $1 AND entity_slug = $2 AND user_email = $3`,
		string(kind), slug, email,
	)
	if err != nil {
		return postgres.MapError(err, "rating", slug)
	}
	return nil
}

// RenameEntity moves every rating of an entity to a new slug.
func (r *Repo) RenameEntity(ctx context.Context, kind domain.EntityKind, oldSlug, newSlug string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE ratings SET entity_slug = $3, updated_at = now() WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), oldSlug, newSlug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "rating", oldSlug)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEntity removes every rating of an entity.
func (r *Repo) DeleteByEntity(ctx context.Context, kind domain.EntityKind, slug string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM ratings WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), slug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "rating", slug)
	}
	return tag.RowsAffected(), nil
}

// DeleteOrphans removes ratings that reference a deleted domain.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	return postgres.DeleteOrphans(ctx, postgres.QuerierFromCtx(ctx, r.db), "ratings")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns one user's rating on an entity, or nil when there is none.
func (r *Repo) Get(ctx context.Context, kind domain.EntityKind, slug, email string) (*domain.Rating, error) {
	ratings, err := r.list(ctx, "rating", slug, squirrel.Eq{
		"entity_kind": string(kind),
		"entity_slug": slug,
		"user_email":  email,
	})
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, nil
	}
	return ratings[0], nil
}

// ListByEntity returns all ratings of an entity, newest first.
// Returns an empty slice (not nil) when the entity has no ratings.
func (r *Repo) ListByEntity(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Rating, error) {
	return r.list(ctx, "ratings", slug, squirrel.Eq{
		"entity_kind": string(kind),
		"entity_slug": slug,
	})
}

// ListByKind returns every rating of every entity of a kind, ordered by slug
// and then newest first.
func (r *Repo) ListByKind(ctx context.Context, kind domain.EntityKind) ([]*domain.Rating, error) {
	return r.list(ctx, "ratings", string(kind), squirrel.Eq{"entity_kind": string(kind)})
}

// CountByRanking returns rating counts grouped by entity and ranking for a kind.
func (r *Repo) CountByRanking(ctx context.Context, kind domain.EntityKind) ([]domain.RankingCount, error) {
	query, args, err := postgres.Builder().
		Select("entity_slug", "ranking", "count(*) AS count").
		From("ratings").
		Where(squirrel.Eq{"entity_kind": string(kind)}).
		GroupBy("entity_slug", "ranking").
		OrderBy("entity_slug", "ranking").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "rating counts", string(kind))
	}

	var rows []countRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "rating counts", string(kind))
	}

	counts := make([]domain.RankingCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.RankingCount{
			EntitySlug: row.EntitySlug,
			Ranking:    domain.Ranking(row.Ranking),
			Count:      row.Count,
		}
	}
	return counts, nil
}

func (r *Repo) list(ctx context.Context, entity, key string, where squirrel.Eq) ([]*domain.Rating, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From("ratings").
		Where(where).
		OrderBy("entity_slug ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}

	var rows []ratingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}

	result := make([]*domain.Rating, len(rows))
	for i := range rows {
		rt := rows[i].toDomain()
		result[i] = &rt
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type ratingRow struct {
	ID         uuid.UUID `db:"id"`
	EntityKind string    `db:"entity_kind"`
	EntitySlug string    `db:"entity_slug"`
	UserEmail  string    `db:"user_email"`
	UserName   string    `db:"user_name"`
	Ranking    string    `db:"ranking"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r ratingRow) toDomain() domain.Rating {
	return domain.Rating{
		ID:         r.ID,
		Kind:       domain.EntityKind(r.EntityKind),
		EntitySlug: r.EntitySlug,
		UserEmail:  r.UserEmail,
		UserName:   r.UserName,
		Ranking:    domain.Ranking(r.Ranking),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type countRow struct {
	EntitySlug string `db:"entity_slug"`
	Ranking    string `db:"ranking"`
	Count      int    `db:"count"`
}
