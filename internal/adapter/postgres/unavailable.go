package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Unavailable is the DB used when no database is configured. Every call fails
// with domain.ErrStorageUnavailable without touching the network.
type Unavailable struct{}

var _ DB = Unavailable{}

func (Unavailable) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, domain.ErrStorageUnavailable
}

func (Unavailable) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, domain.ErrStorageUnavailable
}

func (Unavailable) QueryRow(context.Context, string, ...any) pgx.Row {
	return unavailableRow{}
}

func (Unavailable) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	return unavailableBatch{}
}

func (Unavailable) Begin(context.Context) (pgx.Tx, error) {
	return nil, domain.ErrStorageUnavailable
}

// Ping satisfies the readiness checker.
func (Unavailable) Ping(context.Context) error {
	return domain.ErrStorageUnavailable
}

type unavailableRow struct{}

func (unavailableRow) Scan(...any) error { return domain.ErrStorageUnavailable }

type unavailableBatch struct{}

func (unavailableBatch) Exec() (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, domain.ErrStorageUnavailable
}

func (unavailableBatch) Query() (pgx.Rows, error) { return nil, domain.ErrStorageUnavailable }

func (unavailableBatch) QueryRow() pgx.Row { return unavailableRow{} }

func (unavailableBatch) Close() error { return nil }
