package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// DeleteOrphans removes the rows of table that reference a domain which no
// longer exists. table must have entity_kind and entity_slug columns.
// Project rows are never touched since projects live outside the database.
func DeleteOrphans(ctx context.Context, q Querier, table string) (int64, error) {
	query, args, err := Builder().
		Delete(table).
		Where(squirrel.Eq{"entity_kind": string(domain.EntityKindDomain)}).
		Where("NOT EXISTS (SELECT 1 FROM domains d WHERE d.slug = " + table + ".entity_slug)").
		ToSql()
	if err != nil {
		return 0, MapError(err, "delete orphans", table)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, MapError(err, "delete orphans", table)
	}
	return tag.RowsAffected(), nil
}
