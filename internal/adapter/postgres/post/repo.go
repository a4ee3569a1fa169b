// Package post implements the Post and Comment repository using PostgreSQL.
// Comments are removed with their post by the ON DELETE CASCADE foreign key.
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Repo provides post and comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	postColumns    = `id, entity_kind, entity_slug, content, posted_by, posted_by_name, created_at, updated_at`
	commentColumns = `id, post_id, content, posted_by, posted_by_name, created_at, updated_at`
)

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

// ListPosts returns the posts of an entity, newest first.
func (r *Repo) ListPosts(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"entity_kind": string(kind), "entity_slug": slug}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "posts", slug)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "posts", slug)
	}

	result := make([]*domain.Post, len(rows))
	for i := range rows {
		p := rows[i].toDomain()
		result[i] = &p
	}
	return result, nil
}

// GetPost returns a post by id. Returns domain.ErrNotFound when absent.
func (r *Repo) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var row postRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOrMap(err, "post", id)
	}

	p := row.toDomain()
	return &p, nil
}

// CreatePost inserts a post and returns it with its generated id.
func (r *Repo) CreatePost(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	var row postRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO posts (entity_kind, entity_slug, content, posted_by, posted_by_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+postColumns,
		string(p.Kind), p.EntitySlug, p.Content, p.PostedBy, p.PostedByName,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", p.EntitySlug)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdatePostContent replaces the content of a post.
// Returns domain.ErrNotFound when absent.
func (r *Repo) UpdatePostContent(ctx context.Context, id uuid.UUID, content string) (*domain.Post, error) {
	var row postRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE posts SET content = $2, updated_at = now() WHERE id = $1 RETURNING `+postColumns,
		id, content,
	)
	if err != nil {
		return nil, notFoundOrMap(err, "post", id)
	}

	result := row.toDomain()
	return &result, nil
}

// DeletePost removes a post and its comments. Reports whether it existed.
func (r *Repo) DeletePost(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, postgres.MapError(err, "post", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// RenameEntity moves every post of an entity to a new slug.
func (r *Repo) RenameEntity(ctx context.Context, kind domain.EntityKind, oldSlug, newSlug string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE posts SET entity_slug = $3, updated_at = now() WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), oldSlug, newSlug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "post", oldSlug)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEntity removes every post of an entity together with its comments.
func (r *Repo) DeleteByEntity(ctx context.Context, kind domain.EntityKind, slug string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM posts WHERE entity_kind = $1 AND entity_slug = $2`,
		string(kind), slug,
	)
	if err != nil {
		return 0, postgres.MapError(err, "post", slug)
	}
	return tag.RowsAffected(), nil
}

// DeleteOrphans removes posts that reference a deleted domain.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	return postgres.DeleteOrphans(ctx, postgres.QuerierFromCtx(ctx, r.db), "posts")
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// ListComments returns the comments of a post, oldest first.
func (r *Repo) ListComments(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	var rows []commentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+commentColumns+` FROM post_comments WHERE post_id = $1 ORDER BY created_at ASC`, postID)
	if err != nil {
		return nil, postgres.MapError(err, "comments", postID.String())
	}

	result := make([]*domain.Comment, len(rows))
	for i := range rows {
		c := rows[i].toDomain()
		result[i] = &c
	}
	return result, nil
}

// GetComment returns a comment by id. Returns domain.ErrNotFound when absent.
func (r *Repo) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+commentColumns+` FROM post_comments WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOrMap(err, "comment", id)
	}

	c := row.toDomain()
	return &c, nil
}

// CreateComment inserts a comment. Returns domain.ErrNotFound when the parent
// post does not exist.
func (r *Repo) CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO post_comments (post_id, content, posted_by, posted_by_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+commentColumns,
		c.PostID, c.Content, c.PostedBy, c.PostedByName,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", c.PostID.String())
	}

	result := row.toDomain()
	return &result, nil
}

// UpdateCommentContent replaces the content of a comment.
// Returns domain.ErrNotFound when absent.
func (r *Repo) UpdateCommentContent(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE post_comments SET content = $2, updated_at = now() WHERE id = $1 RETURNING `+commentColumns,
		id, content,
	)
	if err != nil {
		return nil, notFoundOrMap(err, "comment", id)
	}

	result := row.toDomain()
	return &result, nil
}

// DeleteComment removes a comment. Reports whether it existed.
func (r *Repo) DeleteComment(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM post_comments WHERE id = $1`, id)
	if err != nil {
		return false, postgres.MapError(err, "comment", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

func notFoundOrMap(err error, entity string, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return postgres.MapError(err, entity, id.String())
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type postRow struct {
	ID           uuid.UUID `db:"id"`
	EntityKind   string    `db:"entity_kind"`
	EntitySlug   string    `db:"entity_slug"`
	Content      string    `db:"content"`
	PostedBy     string    `db:"posted_by"`
	PostedByName string    `db:"posted_by_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:           r.ID,
		Kind:         domain.EntityKind(r.EntityKind),
		EntitySlug:   r.EntitySlug,
		Content:      r.Content,
		PostedBy:     r.PostedBy,
		PostedByName: r.PostedByName,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type commentRow struct {
	ID           uuid.UUID `db:"id"`
	PostID       uuid.UUID `db:"post_id"`
	Content      string    `db:"content"`
	PostedBy     string    `db:"posted_by"`
	PostedByName string    `db:"posted_by_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:           r.ID,
		PostID:       r.PostID,
		Content:      r.Content,
		PostedBy:     r.PostedBy,
		PostedByName: r.PostedByName,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
