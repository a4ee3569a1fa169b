package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Reorder assigns new display positions to domains. All updates are applied in
// one transaction: if any slug is unknown nothing changes and the first failure
// is returned.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if len(input.Rankings) == 0 {
		return nil
	}

	updates := make([]domain.RankUpdate, len(input.Rankings))
	for i, r := range input.Rankings {
		updates[i] = domain.RankUpdate{Slug: domain.NormalizeSlug(r.Slug), Ranking: r.Ranking}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.domains.SetRankings(txCtx, updates)
	})
	if err != nil {
		return fmt.Errorf("reorder domains: %w", err)
	}

	s.log.InfoContext(ctx, "domains reordered", slog.Int("count", len(updates)))
	return nil
}
