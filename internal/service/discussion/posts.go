package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// ListPosts returns the posts of an entity, newest first.
func (s *Service) ListPosts(ctx context.Context, ref EntityRef) ([]*domain.Post, error) {
	if errs := ref.validate(nil); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	posts, err := s.posts.ListPosts(ctx, ref.Kind, domain.NormalizeSlug(ref.Slug))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost adds a post to an entity.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.posts.CreatePost(ctx, &domain.Post{
		Kind:         input.Entity.Kind,
		EntitySlug:   domain.NormalizeSlug(input.Entity.Slug),
		Content:      strings.TrimSpace(input.Content),
		PostedBy:     domain.NormalizeEmail(input.PostedBy),
		PostedByName: strings.TrimSpace(input.PostedByName),
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", p.ID.String()),
		slog.String("kind", p.Kind.String()),
		slog.String("slug", p.EntitySlug),
		slog.String("posted_by", p.PostedBy),
	)
	return p, nil
}

// UpdatePost replaces the content of a post owned by the actor.
func (s *Service) UpdatePost(ctx context.Context, input EditInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.ownedPost(txCtx, input.Entity, input.PostID, input.ActorEmail)
		if err != nil {
			return err
		}
		updated, err = s.posts.UpdatePostContent(txCtx, p.ID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post updated", slog.String("post_id", input.PostID.String()))
	return updated, nil
}

// DeletePost removes a post owned by the actor together with its comments.
func (s *Service) DeletePost(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.ownedPost(txCtx, input.Entity, input.PostID, input.ActorEmail)
		if err != nil {
			return err
		}
		if _, err := s.posts.DeletePost(txCtx, p.ID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "post deleted", slog.String("post_id", input.PostID.String()))
	return nil
}

// entityPost loads a post and checks it belongs to ref. A post under another
// entity is reported as not found.
func (s *Service) entityPost(ctx context.Context, ref EntityRef, id uuid.UUID) (*domain.Post, error) {
	p, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p.Kind != ref.Kind || p.EntitySlug != domain.NormalizeSlug(ref.Slug) {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (s *Service) ownedPost(ctx context.Context, ref EntityRef, id uuid.UUID, actor string) (*domain.Post, error) {
	p, err := s.entityPost(ctx, ref, id)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(actor) {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrForbidden)
	}
	return p, nil
}
