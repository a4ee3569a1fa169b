package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// ListDomains returns all domains ordered by ranking (unranked last), then name.
func (s *Service) ListDomains(ctx context.Context) ([]*domain.Domain, error) {
	domains, err := s.domains.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return domains, nil
}

// GetDomain returns a domain by slug. Returns domain.ErrNotFound when absent.
func (s *Service) GetDomain(ctx context.Context, slug string) (*domain.Domain, error) {
	d, err := s.domains.GetBySlug(ctx, domain.NormalizeSlug(slug))
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return d, nil
}

// CreateDomain adds a domain after every existing one.
func (s *Service) CreateDomain(ctx context.Context, input DomainInput) (*domain.Domain, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeText(input.Name)
	d, err := s.domains.Create(ctx, &domain.Domain{
		Slug:  domain.Slugify(name),
		Name:  name,
		Theme: strings.TrimSpace(input.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}

	s.log.InfoContext(ctx, "domain created",
		slog.String("slug", d.Slug),
		slog.Int("ranking", derefInt(d.Ranking)),
	)
	return d, nil
}

// UpdateDomain renames a domain. The slug is regenerated from the new name and,
// when it changes, every rating, decision and post of the domain moves to the
// new slug in the same transaction.
func (s *Service) UpdateDomain(ctx context.Context, slug string, input DomainInput) (*domain.Domain, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	oldSlug := domain.NormalizeSlug(slug)
	name := domain.NormalizeText(input.Name)
	newSlug := domain.Slugify(name)

	var updated *domain.Domain
	moved := map[string]int64{}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.domains.Update(txCtx, oldSlug, &domain.Domain{
			Slug:  newSlug,
			Name:  name,
			Theme: strings.TrimSpace(input.Theme),
		})
		if err != nil {
			return fmt.Errorf("update domain: %w", err)
		}

		if newSlug == oldSlug {
			return nil
		}
		for _, dep := range s.dependentNames() {
			n, err := s.dependents[dep].RenameEntity(txCtx, domain.EntityKindDomain, oldSlug, newSlug)
			if err != nil {
				return fmt.Errorf("rename %s: %w", dep, err)
			}
			moved[dep] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{slog.String("slug", oldSlug), slog.String("new_slug", newSlug)}
	for dep, n := range moved {
		attrs = append(attrs, slog.Int64(dep, n))
	}
	s.log.InfoContext(ctx, "domain updated", attrs...)

	return updated, nil
}

// DeleteDomain removes a domain together with its ratings, decision and posts.
// Deleting a domain that does not exist succeeds.
func (s *Service) DeleteDomain(ctx context.Context, slug string) error {
	slug = domain.NormalizeSlug(slug)
	if slug == "" {
		return domain.NewValidationError("slug", "required")
	}

	var existed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, dep := range s.dependentNames() {
			if _, err := s.dependents[dep].DeleteByEntity(txCtx, domain.EntityKindDomain, slug); err != nil {
				return fmt.Errorf("delete %s: %w", dep, err)
			}
		}

		var err error
		existed, err = s.domains.Delete(txCtx, slug)
		if err != nil {
			return fmt.Errorf("delete domain: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "domain deleted",
		slog.String("slug", slug),
		slog.Bool("existed", existed),
	)
	return nil
}

// SeedDomains inserts the given domains in order, ranked 1..N. An existing
// domain is skipped unless it has no ranking, in which case it takes its
// position in inputs. Returns the number of domains written.
func (s *Service) SeedDomains(ctx context.Context, inputs []DomainInput) (int, error) {
	inserted := 0
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			return inserted, fmt.Errorf("seed domain %d: %w", i+1, err)
		}

		name := domain.NormalizeText(in.Name)
		ranking := i + 1
		ok, err := s.domains.InsertIfAbsent(ctx, &domain.Domain{
			Slug:    domain.Slugify(name),
			Name:    name,
			Theme:   strings.TrimSpace(in.Theme),
			Ranking: &ranking,
		})
		if err != nil {
			return inserted, fmt.Errorf("seed domain %q: %w", name, err)
		}
		if ok {
			inserted++
			s.log.InfoContext(ctx, "domain seeded", slog.String("name", name), slog.Int("ranking", ranking))
		} else {
			s.log.InfoContext(ctx, "domain exists, skipped", slog.String("name", name))
		}
	}
	return inserted, nil
}

// dependentNames returns the dependent store names in a stable order.
func (s *Service) dependentNames() []string {
	names := make([]string, 0, len(s.dependents))
	for name := range s.dependents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
