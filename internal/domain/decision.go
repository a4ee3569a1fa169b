package domain

import (
	"time"

	"github.com/google/uuid"
)

// Decision is the single current verdict for an entity. It is overwritten in
// place; prior values are not kept.
type Decision struct {
	ID              uuid.UUID
	Kind            EntityKind
	EntitySlug      string
	Status          DecisionStatus
	NextSteps       *string
	NextPhaseBudget *float64
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DecisionSummary is the projection of a Decision used by list views.
type DecisionSummary struct {
	EntitySlug      string
	Status          DecisionStatus
	NextSteps       *string
	NextPhaseBudget *float64
	UpdatedAt       time.Time
}

// Summary returns the list-view projection of d.
func (d *Decision) Summary() DecisionSummary {
	return DecisionSummary{
		EntitySlug:      d.EntitySlug,
		Status:          d.Status,
		NextSteps:       d.NextSteps,
		NextPhaseBudget: d.NextPhaseBudget,
		UpdatedAt:       d.UpdatedAt,
	}
}
