package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// relationMigrations maps each table to the migration that creates it, so a
// missing-table error can name the file to run.
var relationMigrations = map[string]string{
	"domains":       "00001_catalog.sql",
	"ratings":       "00001_catalog.sql",
	"decisions":     "00001_catalog.sql",
	"posts":         "00002_discussion.sql",
	"post_comments": "00002_discussion.sql",
	"users":         "00003_users.sql",
}

var missingRelation = regexp.MustCompile(`relation "([^"]+)" does not exist`)

// MapError converts pgx/pgconn errors to domain errors, prefixing them with
// "<entity> <key>".
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if key != "" {
		prefix = entity + " " + key
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	// Already classified, e.g. by the unavailable guard.
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %v", prefix, domain.ErrStorageUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		case "22003": // numeric_value_out_of_range
			return fmt.Errorf("%s: %w: %s", prefix, domain.ErrValidation, pgErr.Message)
		case "42P01": // undefined_table
			return fmt.Errorf("%s: %w", prefix, schemaError(pgErr.Message))
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", prefix, err)
}

func schemaError(msg string) *domain.SchemaError {
	se := &domain.SchemaError{Relation: "unknown", Migration: "all migrations"}
	if m := missingRelation.FindStringSubmatch(msg); m != nil {
		se.Relation = m[1]
		if mig, ok := relationMigrations[m[1]]; ok {
			se.Migration = mig
		}
	}
	return se
}
