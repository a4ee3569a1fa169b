// Package decision implements the Decision repository using PostgreSQL.
// An entity has zero or one decision; writes overwrite it in place.
package decision

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Repo provides decision persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new decision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, entity_kind, entity_slug, decision_status, next_steps, next_phase_budget, updated_by, created_at, updated_at`

const upsertSQL = `
INSERT INTO decisions (entity_kind, entity_slug, decision_status, next_steps, next_phase_budget, updated_by)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (entity_kind, entity_slug) DO UPDATE
SET decision_status   = EXCLUDED.decision_status,
    next_steps        = EXCLUDED.next_steps,
    next_phase_budget = EXCLUDED.next_phase_budget,
    updated_by        = EXCLUDED.updated_by,
    updated_at        = now()
RETURNING ` + columns

// Upsert writes the decision for an entity, replacing any existing one.
func (r *Repo) Upsert(ctx context.Context, d *domain.Decision) (*domain.Decision, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row decisionRow
	err := pgxscan.Get(ctx, q, &row, upsertSQL,
		string(d.Kind), d.EntitySlug, string(d.Status), d.NextSteps, d.NextPhaseBudget, d.UpdatedBy,
	)
	if err != nil {
		return nil, postgres.MapError(err, "decision", d.EntitySlug)
	}

	result := row.toDomain()
	return &result, nil
}

// Get returns the decision for an entity, or nil when none was recorded.
func (r *Repo) Get(ctx context.Context, kind domain.EntityKind, slug string) (*domain.Decision, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From("decisions").
		Where(squirrel.Eq{"entity_kind": string(kind), "entity_slug": slug}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "decision", slug)
	}

	var rows []decisionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "decision", slug)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	result := rows[0].toDomain()
	return &result, nil
}

// ListSummaries returns the decision summary of every entity of a kind,
// most recently updated first.
func (r *Repo) ListSummaries(ctx context.Context, kind domain.EntityKind) ([]domain.DecisionSummary, error) {
	query, args, err := postgres.Builder().
		Select("entity_slug", "decision_status", "next_steps", "next_phase_budget", "updated_at").
		From("decisions").
		Where(squirrel.Eq{"entity_kind": string(kind)}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "decisions", string(kind))
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "decisions", string(kind))
	}

	result := make([]domain.DecisionSummary, len(rows))
	for i, row := range rows {
		result[i] = domain.DecisionSummary{
			EntitySlug:      row.EntitySlug,
			Status:          domain.DecisionStatus(row.Status),
			NextSteps:       row.NextSteps,
			NextPhaseBudget: row.NextPhaseBudget,
			UpdatedAt:       row.UpdatedAt,
		}
	}
	return result, nil
}

// RenameEntity moves the decision of an entity to a new slug.
func (r *Repo) RenameEntity(ctx context.Context, kind domain.EntityKind, oldSlug, newSlug string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE decisions SET entity_slug = $3, updated_at = now() WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), oldSlug, newSlug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "decision", oldSlug)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEntity removes the decision of an entity, if any.
func (r *Repo) DeleteByEntity(ctx context.Context, kind domain.EntityKind, slug string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM decisions WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), slug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "decision", slug)
	}
	return tag.RowsAffected(), nil
}

// DeleteOrphans removes decisions that reference a deleted domain.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	return postgres.DeleteOrphans(ctx, postgres.QuerierFromCtx(ctx, r.db), "decisions")
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type decisionRow struct {
	ID              uuid.UUID `db:"id"`
	EntityKind      string    `db:"entity_kind"`
	EntitySlug      string    `db:"entity_slug"`
	Status          string    `db:"decision_status"`
	NextSteps       *string   `db:"next_steps"`
	NextPhaseBudget *float64  `db:"next_phase_budget"`
	UpdatedBy       string    `db:"updated_by"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r decisionRow) toDomain() domain.Decision {
	return domain.Decision{
		ID:              r.ID,
		Kind:            domain.EntityKind(r.EntityKind),
		EntitySlug:      r.EntitySlug,
		Status:          domain.DecisionStatus(r.Status),
		NextSteps:       r.NextSteps,
		NextPhaseBudget: r.NextPhaseBudget,
		UpdatedBy:       r.UpdatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type summaryRow struct {
	EntitySlug      string    `db:"entity_slug"`
	Status          string    `db:"decision_status"`
	NextSteps       *string   `db:"next_steps"`
	NextPhaseBudget *float64  `db:"next_phase_budget"`
	UpdatedAt       time.Time `db:"updated_at"`
}
