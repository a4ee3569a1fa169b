// Package decision implements the per-entity decision upsert engine and the
// status state machine around it.
package decision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

type decisionRepo interface {
	Upsert(ctx context.Context, d *domain.Decision) (*domain.Decision, error)
	Get(ctx context.Context, kind domain.EntityKind, slug string) (*domain.Decision, error)
	ListSummaries(ctx context.Context, kind domain.EntityKind) ([]domain.DecisionSummary, error)
}

// Service provides decision operations.
type Service struct {
	decisions decisionRepo
	log       *slog.Logger
}

// NewService creates a new Decision service.
func NewService(log *slog.Logger, decisions decisionRepo) *Service {
	return &Service{
		decisions: decisions,
		log:       log.With("service", "decision"),
	}
}

// Upsert records the current decision for an entity, replacing any previous
// one. Any valid status may follow any other.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Decision, error) {
	budget, err := input.validate()
	if err != nil {
		return nil, err
	}

	slug := domain.NormalizeSlug(input.Slug)
	status := domain.DecisionStatus(strings.TrimSpace(input.Status))

	// The previous status is read only to log the transition.
	var from domain.DecisionStatus
	prev, err := s.decisions.Get(ctx, input.Kind, slug)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "read previous decision",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
	case prev != nil:
		from = prev.Status
	}

	if !domain.CanTransition(from, status) {
		return nil, domain.NewValidationError("decision_status", fmt.Sprintf("cannot move from %q to %q", from, status))
	}

	d, err := s.decisions.Upsert(ctx, &domain.Decision{
		Kind:            input.Kind,
		EntitySlug:      slug,
		Status:          status,
		NextSteps:       trimOrNil(input.NextSteps),
		NextPhaseBudget: budget,
		UpdatedBy:       domain.NormalizeEmail(input.UpdatedBy),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert decision: %w", err)
	}

	s.log.InfoContext(ctx, "decision saved",
		slog.String("kind", d.Kind.String()),
		slog.String("slug", d.EntitySlug),
		slog.String("from", from.String()),
		slog.String("to", d.Status.String()),
		slog.String("updated_by", d.UpdatedBy),
	)

	return d, nil
}

// Get returns the decision for an entity, or nil when none was recorded.
func (s *Service) Get(ctx context.Context, kind domain.EntityKind, slug string) (*domain.Decision, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be domain or project")
	}
	d, err := s.decisions.Get(ctx, kind, domain.NormalizeSlug(slug))
	if err != nil {
		return nil, fmt.Errorf("get decision: %w", err)
	}
	return d, nil
}

// ListSummaries returns the decision summaries of a kind, most recent first.
// List views must keep working when the store is down, so failures are logged
// and an empty list is returned.
func (s *Service) ListSummaries(ctx context.Context, kind domain.EntityKind) []domain.DecisionSummary {
	if !kind.IsValid() {
		return []domain.DecisionSummary{}
	}

	summaries, err := s.decisions.ListSummaries(ctx, kind)
	if err != nil {
		s.log.WarnContext(ctx, "list decisions degraded to empty",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return []domain.DecisionSummary{}
	}
	if summaries == nil {
		return []domain.DecisionSummary{}
	}
	return summaries
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
