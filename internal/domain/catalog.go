package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain is an investment theme tracked by the studio.
// Ranking is the display position; nil sorts last.
type Domain struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	Theme     string
	Ranking   *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project is a row of the published projects spreadsheet. Projects are
// read-only here.
type Project struct {
	Slug        string
	Name        string
	Status      string
	Domain      string
	Description string
	FolderURL   string
}

// RankUpdate assigns a new display position to the domain with Slug.
type RankUpdate struct {
	Slug    string
	Ranking int
}
