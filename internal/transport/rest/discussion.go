package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/service/discussion"
)

// discussionService defines the post and comment operations.
type discussionService interface {
	ListPosts(ctx context.Context, ref discussion.EntityRef) ([]*domain.Post, error)
	CreatePost(ctx context.Context, input discussion.CreatePostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, input discussion.EditInput) (*domain.Post, error)
	DeletePost(ctx context.Context, input discussion.DeleteInput) error
	ListComments(ctx context.Context, ref discussion.EntityRef, postID uuid.UUID) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, input discussion.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input discussion.EditInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, input discussion.DeleteInput) error
}

// DiscussionHandler serves posts and comments on domains and projects.
type DiscussionHandler struct {
	svc discussionService
	log *slog.Logger
}

// NewDiscussionHandler creates a DiscussionHandler.
func NewDiscussionHandler(svc discussionService, logger *slog.Logger) *DiscussionHandler {
	return &DiscussionHandler{svc: svc, log: logger.With("handler", "discussion")}
}

type contentRequest struct {
	Content string `json:"content"`
}

func entityRef(kind domain.EntityKind, r *http.Request) discussion.EntityRef {
	return discussion.EntityRef{Kind: kind, Slug: r.PathValue("slug")}
}

// pathID parses a UUID path segment. Malformed ids cannot name an existing
// row, so they answer 404.
func pathID(w http.ResponseWriter, r *http.Request, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusNotFound, what+" not found")
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

// ListPosts handles GET /api/{kind}/{slug}/posts.
func (h *DiscussionHandler) ListPosts(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.svc.ListPosts(r.Context(), entityRef(kind, r))
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch posts", err)
			return
		}

		out := make([]postResponse, len(posts))
		for i, p := range posts {
			out[i] = toPostResponse(p)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CreatePost handles POST /api/{kind}/{slug}/posts.
func (h *DiscussionHandler) CreatePost(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		var req contentRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to create post", err)
			return
		}

		p, err := h.svc.CreatePost(r.Context(), discussion.CreatePostInput{
			Entity:       entityRef(kind, r),
			Content:      req.Content,
			PostedBy:     caller.Email,
			PostedByName: caller.Name,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to create post", err)
			return
		}
		writeJSON(w, http.StatusCreated, toPostResponse(p))
	}
}

// UpdatePost handles PUT /api/{kind}/{slug}/posts/{id}.
func (h *DiscussionHandler) UpdatePost(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}

		var req contentRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to update post", err)
			return
		}

		p, err := h.svc.UpdatePost(r.Context(), discussion.EditInput{
			Entity:     entityRef(kind, r),
			PostID:     postID,
			Content:    req.Content,
			ActorEmail: caller.Email,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to update post", err)
			return
		}
		writeJSON(w, http.StatusOK, toPostResponse(p))
	}
}

// DeletePost handles DELETE /api/{kind}/{slug}/posts/{id}.
func (h *DiscussionHandler) DeletePost(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}

		err := h.svc.DeletePost(r.Context(), discussion.DeleteInput{
			Entity:     entityRef(kind, r),
			PostID:     postID,
			ActorEmail: caller.Email,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to delete post", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// ListComments handles GET /api/{kind}/{slug}/posts/{id}/comments.
func (h *DiscussionHandler) ListComments(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}

		comments, err := h.svc.ListComments(r.Context(), entityRef(kind, r), postID)
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch comments", err)
			return
		}

		out := make([]commentResponse, len(comments))
		for i, c := range comments {
			out[i] = toCommentResponse(c)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CreateComment handles POST /api/{kind}/{slug}/posts/{id}/comments.
func (h *DiscussionHandler) CreateComment(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}

		var req contentRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to create comment", err)
			return
		}

		c, err := h.svc.CreateComment(r.Context(), discussion.CreateCommentInput{
			Entity:       entityRef(kind, r),
			PostID:       postID,
			Content:      req.Content,
			PostedBy:     caller.Email,
			PostedByName: caller.Name,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to create comment", err)
			return
		}
		writeJSON(w, http.StatusCreated, toCommentResponse(c))
	}
}

// UpdateComment handles PUT /api/{kind}/{slug}/posts/{id}/comments/{commentId}.
func (h *DiscussionHandler) UpdateComment(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}
		commentID, ok := pathID(w, r, "commentId", "Comment")
		if !ok {
			return
		}

		var req contentRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to update comment", err)
			return
		}

		c, err := h.svc.UpdateComment(r.Context(), discussion.EditInput{
			Entity:     entityRef(kind, r),
			PostID:     postID,
			CommentID:  commentID,
			Content:    req.Content,
			ActorEmail: caller.Email,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to update comment", err)
			return
		}
		writeJSON(w, http.StatusOK, toCommentResponse(c))
	}
}

// DeleteComment handles DELETE /api/{kind}/{slug}/posts/{id}/comments/{commentId}.
func (h *DiscussionHandler) DeleteComment(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "id", "Post")
		if !ok {
			return
		}
		commentID, ok := pathID(w, r, "commentId", "Comment")
		if !ok {
			return
		}

		err := h.svc.DeleteComment(r.Context(), discussion.DeleteInput{
			Entity:     entityRef(kind, r),
			PostID:     postID,
			CommentID:  commentID,
			ActorEmail: caller.Email,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to delete comment", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
