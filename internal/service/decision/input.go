package decision

import (
	"errors"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// UpsertInput holds the parameters for recording a decision. Budget is the
// raw JSON value (string, number or null).
type UpsertInput struct {
	Kind      domain.EntityKind
	Slug      string
	Status    string
	NextSteps *string
	Budget    any
	UpdatedBy string
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	_, err := i.validate()
	return err
}

// validate returns the normalized budget alongside any validation error.
func (i UpsertInput) validate() (*float64, error) {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be domain or project"})
	}
	if domain.NormalizeSlug(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_slug", Message: "required"})
	}

	status := strings.TrimSpace(i.Status)
	switch {
	case status == "":
		errs = append(errs, domain.FieldError{Field: "decision_status", Message: "required"})
	case !domain.DecisionStatus(status).IsValid():
		errs = append(errs, domain.FieldError{
			Field:   "decision_status",
			Message: "must be one of Explore, Advance, Park, Kill, Spin-Out Candidate",
		})
	}

	if domain.NormalizeEmail(i.UpdatedBy) == "" {
		errs = append(errs, domain.FieldError{Field: "updated_by", Message: "required"})
	}

	budget, err := domain.ParseBudget(i.Budget)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		} else {
			errs = append(errs, domain.FieldError{Field: "next_phase_budget", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return budget, nil
}
