// Command seed-domains inserts the initial domain catalogue, ranked in the
// order listed. Domains that already exist are left alone apart from
// receiving a ranking when they have none.
//
// Flags:
//
//	--dry-run  print the domains without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/domains"
	"github.com/tdt-studio/portfolio-tracker/internal/app"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/service/catalog"
)

var initialDomains = []catalog.DomainInput{
	{Name: "Participation & Prediction Markets", Theme: "Turning attention into action and capital"},
	{Name: "Tokenized Project Financing & RWAs", Theme: "New capital rails before institutions adapt"},
	{Name: "Fan Engagement & Emerging Markets", Theme: "Undervalued global passion networks"},
	{Name: "Environmental Value Chains", Theme: "Measurement unlocks ownable assets"},
	{Name: "Spatial / Real-World Digital Systems", Theme: "Real-world anchoring creates defensibility"},
	{Name: "Media, Characters & Interactive IP", Theme: "AI-driven storytelling and ownership"},
	{Name: "AI Operations for Exploration", Theme: "Discovery itself becomes leverage"},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the domains without writing to DB")
	flag.Parse()

	if *dryRun {
		for i, d := range initialDomains {
			fmt.Printf("%d. %s (%s)\n", i+1, d.Name, domain.Slugify(d.Name))
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger, catalog.Deps{Domains: domains.New(pool)}, 0)

	inserted, err := svc.SeedDomains(ctx, initialDomains)
	if err != nil {
		logger.Error("seed domains failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed domains completed",
		slog.Int("written", inserted),
		slog.Int("total", len(initialDomains)),
	)
}
