package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a user-authored note attached to an entity.
type Post struct {
	ID           uuid.UUID
	Kind         EntityKind
	EntitySlug   string
	Content      string
	PostedBy     string
	PostedByName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether email is the author of the post.
func (p *Post) OwnedBy(email string) bool {
	return strings.EqualFold(p.PostedBy, strings.TrimSpace(email))
}

// Comment is a reply to a Post.
type Comment struct {
	ID           uuid.UUID
	PostID       uuid.UUID
	Content      string
	PostedBy     string
	PostedByName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether email is the author of the comment.
func (c *Comment) OwnedBy(email string) bool {
	return strings.EqualFold(c.PostedBy, strings.TrimSpace(email))
}
