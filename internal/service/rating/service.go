// Package rating implements the per-user rating upsert engine.
package rating

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

type ratingRepo interface {
	Upsert(ctx context.Context, rt *domain.Rating) (*domain.Rating, error)
	Get(ctx context.Context, kind domain.EntityKind, slug, email string) (*domain.Rating, error)
	ListByEntity(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Rating, error)
	ListByKind(ctx context.Context, kind domain.EntityKind) ([]*domain.Rating, error)
	Delete(ctx context.Context, kind domain.EntityKind, slug, email string) error
}

// Service provides rating operations.
type Service struct {
	ratings ratingRepo
	log     *slog.Logger
}

// NewService creates a new Rating service.
func NewService(log *slog.Logger, ratings ratingRepo) *Service {
	return &Service{
		ratings: ratings,
		log:     log.With("service", "rating"),
	}
}

// Upsert creates the caller's rating on an entity or replaces it. The write is
// a single statement keyed by (kind, slug, lowercased email).
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Rating, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rt, err := s.ratings.Upsert(ctx, &domain.Rating{
		Kind:       input.Kind,
		EntitySlug: domain.NormalizeSlug(input.Slug),
		UserEmail:  domain.NormalizeEmail(input.UserEmail),
		UserName:   strings.TrimSpace(input.UserName),
		Ranking:    domain.Ranking(strings.TrimSpace(input.Ranking)),
		Comment:    trimOrNil(input.Comment),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	s.log.InfoContext(ctx, "rating saved",
		slog.String("kind", rt.Kind.String()),
		slog.String("slug", rt.EntitySlug),
		slog.String("user_email", rt.UserEmail),
		slog.String("ranking", rt.Ranking.String()),
	)

	return rt, nil
}

// Get returns one user's rating on an entity, or nil when there is none.
func (s *Service) Get(ctx context.Context, kind domain.EntityKind, slug, email string) (*domain.Rating, error) {
	if err := validateKey(kind, slug); err != nil {
		return nil, err
	}
	rt, err := s.ratings.Get(ctx, kind, domain.NormalizeSlug(slug), domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return rt, nil
}

// List returns all ratings of an entity, newest first.
func (s *Service) List(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Rating, error) {
	if err := validateKey(kind, slug); err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListByEntity(ctx, kind, domain.NormalizeSlug(slug))
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// ListAll returns the ratings of every entity of a kind grouped by slug.
func (s *Service) ListAll(ctx context.Context, kind domain.EntityKind) (map[string][]*domain.Rating, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be domain or project")
	}
	ratings, err := s.ratings.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	grouped := make(map[string][]*domain.Rating)
	for _, rt := range ratings {
		grouped[rt.EntitySlug] = append(grouped[rt.EntitySlug], rt)
	}
	return grouped, nil
}

// Delete removes a user's rating. Deleting a rating that does not exist succeeds.
func (s *Service) Delete(ctx context.Context, kind domain.EntityKind, slug, email string) error {
	if err := validateKey(kind, slug); err != nil {
		return err
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.NewValidationError("user_email", "required")
	}

	if err := s.ratings.Delete(ctx, kind, domain.NormalizeSlug(slug), email); err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}

	s.log.InfoContext(ctx, "rating deleted",
		slog.String("kind", kind.String()),
		slog.String("slug", slug),
		slog.String("user_email", email),
	)
	return nil
}

func validateKey(kind domain.EntityKind, slug string) error {
	var errs []domain.FieldError
	if !kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be domain or project"})
	}
	if domain.NormalizeSlug(slug) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_slug", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
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
