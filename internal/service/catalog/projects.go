package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

const projectsCacheKey = "projects"

// ListProjects returns the rows of the projects sheet. A cached copy is served
// while fresh; cache failures are logged and bypassed.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		var cached []domain.Project
		err := s.cache.Get(ctx, projectsCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		s.log.DebugContext(ctx, "projects cache miss", slog.String("reason", err.Error()))
	}

	projects, err := s.projects.FetchProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, projectsCacheKey, projects, s.cacheTTL); err != nil {
			s.log.WarnContext(ctx, "projects cache write failed", slog.String("error", err.Error()))
		}
	}
	return projects, nil
}

// GetProject returns one project by slug. Returns domain.ErrNotFound when the
// sheet has no such row.
func (s *Service) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	slug = domain.NormalizeSlug(slug)

	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", slug, domain.ErrNotFound)
}
