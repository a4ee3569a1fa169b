package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// OverviewItem is one entity of a list view with its decision and rating tally.
type OverviewItem struct {
	Slug         string
	Name         string
	Ranking      *int   // domains only
	Status       string // projects only, as written in the sheet
	Decision     *domain.DecisionSummary
	RatingCounts map[domain.Ranking]int
	TotalRatings int
}

// Overview joins every entity of a kind with its decision summary and rating
// counts. The three reads run concurrently; decisions degrade to none.
func (s *Service) Overview(ctx context.Context, kind domain.EntityKind) ([]OverviewItem, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be domain or project")
	}

	var (
		items     []OverviewItem
		counts    []domain.RankingCount
		summaries []domain.DecisionSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.overviewEntities(gctx, kind)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.ratings.CountByRanking(gctx, kind)
		if err != nil {
			return fmt.Errorf("count ratings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		summaries = s.decisions.ListSummaries(gctx, kind)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bySlug := make(map[string]int, len(items))
	for i := range items {
		bySlug[items[i].Slug] = i
	}
	for _, c := range counts {
		i, ok := bySlug[c.EntitySlug]
		if !ok {
			continue
		}
		items[i].RatingCounts[c.Ranking] += c.Count
		items[i].TotalRatings += c.Count
	}
	for _, d := range summaries {
		if i, ok := bySlug[d.EntitySlug]; ok {
			summary := d
			items[i].Decision = &summary
		}
	}

	return items, nil
}

func (s *Service) overviewEntities(ctx context.Context, kind domain.EntityKind) ([]OverviewItem, error) {
	switch kind {
	case domain.EntityKindDomain:
		domains, err := s.ListDomains(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]OverviewItem, len(domains))
		for i, d := range domains {
			items[i] = OverviewItem{
				Slug:         d.Slug,
				Name:         d.Name,
				Ranking:      d.Ranking,
				RatingCounts: map[domain.Ranking]int{},
			}
		}
		return items, nil
	default:
		projects, err := s.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]OverviewItem, len(projects))
		for i, p := range projects {
			items[i] = OverviewItem{
				Slug:         p.Slug,
				Name:         p.Name,
				Status:       p.Status,
				RatingCounts: map[domain.Ranking]int{},
			}
		}
		return items, nil
	}
}
