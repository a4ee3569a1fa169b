package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// ListComments returns the comments of a post, oldest first.
func (s *Service) ListComments(ctx context.Context, ref EntityRef, postID uuid.UUID) ([]*domain.Comment, error) {
	if errs := ref.validate(nil); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	if _, err := s.entityPost(ctx, ref, postID); err != nil {
		return nil, err
	}

	comments, err := s.posts.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment adds a comment to a post. Returns domain.ErrNotFound when the
// post does not exist.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.entityPost(ctx, input.Entity, input.PostID); err != nil {
		return nil, err
	}

	c, err := s.posts.CreateComment(ctx, &domain.Comment{
		PostID:       input.PostID,
		Content:      strings.TrimSpace(input.Content),
		PostedBy:     domain.NormalizeEmail(input.PostedBy),
		PostedByName: strings.TrimSpace(input.PostedByName),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("post_id", c.PostID.String()),
		slog.String("comment_id", c.ID.String()),
		slog.String("posted_by", c.PostedBy),
	)
	return c, nil
}

// UpdateComment replaces the content of a comment owned by the actor.
func (s *Service) UpdateComment(ctx context.Context, input EditInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.ownedComment(txCtx, input.Entity, input.PostID, input.CommentID, input.ActorEmail)
		if err != nil {
			return err
		}
		updated, err = s.posts.UpdateCommentContent(txCtx, c.ID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment updated", slog.String("comment_id", input.CommentID.String()))
	return updated, nil
}

// DeleteComment removes a comment owned by the actor.
func (s *Service) DeleteComment(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.ownedComment(txCtx, input.Entity, input.PostID, input.CommentID, input.ActorEmail)
		if err != nil {
			return err
		}
		if _, err := s.posts.DeleteComment(txCtx, c.ID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted", slog.String("comment_id", input.CommentID.String()))
	return nil
}

func (s *Service) ownedComment(ctx context.Context, ref EntityRef, postID, id uuid.UUID, actor string) (*domain.Comment, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("comment_id", "required")
	}
	if _, err := s.entityPost(ctx, ref, postID); err != nil {
		return nil, err
	}

	c, err := s.posts.GetComment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c.PostID != postID {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	if !c.OwnedBy(actor) {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrForbidden)
	}
	return c, nil
}
