package discussion

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

const maxContentLength = 10000

// EntityRef addresses the entity a post belongs to.
type EntityRef struct {
	Kind domain.EntityKind
	Slug string
}

func (r EntityRef) validate(errs []domain.FieldError) []domain.FieldError {
	if !r.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be domain or project"})
	}
	if domain.NormalizeSlug(r.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_slug", Message: "required"})
	}
	return errs
}

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	Entity       EntityRef
	Content      string
	PostedBy     string
	PostedByName string
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	errs := i.Entity.validate(nil)
	errs = validateContent(errs, i.Content)
	errs = validateAuthor(errs, i.PostedBy, i.PostedByName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCommentInput holds the parameters for commenting on a post.
type CreateCommentInput struct {
	Entity       EntityRef
	PostID       uuid.UUID
	Content      string
	PostedBy     string
	PostedByName string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	errs := i.Entity.validate(nil)
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	errs = validateAuthor(errs, i.PostedBy, i.PostedByName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds the parameters for editing a post or comment. CommentID is
// uuid.Nil when the post itself is edited.
type EditInput struct {
	Entity     EntityRef
	PostID     uuid.UUID
	CommentID  uuid.UUID
	Content    string
	ActorEmail string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	errs := i.Entity.validate(nil)
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	if domain.NormalizeEmail(i.ActorEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "actor", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting a post or comment. CommentID
// is uuid.Nil when the post itself is deleted.
type DeleteInput struct {
	Entity     EntityRef
	PostID     uuid.UUID
	CommentID  uuid.UUID
	ActorEmail string
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	errs := i.Entity.validate(nil)
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if domain.NormalizeEmail(i.ActorEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "actor", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	content = strings.TrimSpace(content)
	if content == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLength {
		return append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}
	return errs
}

func validateAuthor(errs []domain.FieldError, email, name string) []domain.FieldError {
	if domain.NormalizeEmail(email) == "" {
		errs = append(errs, domain.FieldError{Field: "posted_by", Message: "required"})
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.FieldError{Field: "posted_by_name", Message: "required"})
	}
	return errs
}
