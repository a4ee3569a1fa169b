// Command cleanup removes ratings, decisions and posts that still reference
// a domain which no longer exists. Deleting or renaming a domain cascades in
// one transaction, so orphans only come from data imported or edited outside
// the API. It is intended to be invoked by an external cron job or by hand.
//
// Flags:
//
//	--dry-run  roll back instead of committing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/decision"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/post"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/rating"
	"github.com/tdt-studio/portfolio-tracker/internal/app"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
)

type orphanPruner interface {
	DeleteOrphans(ctx context.Context) (int64, error)
}

var errDryRun = errors.New("dry run")

func main() {
	dryRun := flag.Bool("dry-run", false, "roll back instead of committing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	stores := []struct {
		name string
		repo orphanPruner
	}{
		{"ratings", rating.New(pool)},
		{"decisions", decision.New(pool)},
		{"posts", post.New(pool)},
	}

	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		for _, s := range stores {
			deleted, err := s.repo.DeleteOrphans(ctx)
			if err != nil {
				return err
			}
			logger.Info("orphans removed", slog.String("store", s.name), slog.Int64("deleted", deleted))
		}
		if *dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Bool("dry_run", *dryRun))
}
