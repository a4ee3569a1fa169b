package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one user's conviction score for one entity.
// At most one exists per (Kind, EntitySlug, UserEmail).
type Rating struct {
	ID         uuid.UUID
	Kind       EntityKind
	EntitySlug string
	UserEmail  string
	UserName   string
	Ranking    Ranking
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RankingCount is the number of ratings with one ranking on one entity.
type RankingCount struct {
	EntitySlug string
	Ranking    Ranking
	Count      int
}
