// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Requires DATABASE_DSN.
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
	"github.com/tdt-studio/portfolio-tracker/internal/app"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
)

func main() {
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Database.Configured() {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		err = postgres.Migrate(ctx, cfg.Database.DSN, logger)
	case "down":
		err = postgres.MigrateDown(ctx, cfg.Database.DSN)
	case "status":
		err = printStatus(ctx, cfg.Database.DSN)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("migrate completed", slog.String("command", command))
}

func printStatus(ctx context.Context, dsn string) error {
	statuses, err := postgres.MigrationStatus(ctx, dsn)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%-40s %s\n", s.Source.Path, applied)
	}
	return nil
}
