// Package discussion implements posts on entities and the comments under them.
// Only the author of a post or comment may edit or delete it.
package discussion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

type postRepo interface {
	ListPosts(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	CreatePost(ctx context.Context, p *domain.Post) (*domain.Post, error)
	UpdatePostContent(ctx context.Context, id uuid.UUID, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) (bool, error)

	ListComments(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	CreateComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateCommentContent(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides post and comment operations.
type Service struct {
	posts postRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Discussion service.
func NewService(log *slog.Logger, posts postRepo, tx txManager) *Service {
	return &Service{
		posts: posts,
		tx:    tx,
		log:   log.With("service", "discussion"),
	}
}
