package rating

import (
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// UpsertInput holds the parameters for saving a rating.
type UpsertInput struct {
	Kind      domain.EntityKind
	Slug      string
	UserEmail string
	UserName  string
	Ranking   string
	Comment   *string
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be domain or project"})
	}
	if domain.NormalizeSlug(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_slug", Message: "required"})
	}
	if domain.NormalizeEmail(i.UserEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "user_email", Message: "required"})
	}
	if strings.TrimSpace(i.UserName) == "" {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "required"})
	}

	ranking := strings.TrimSpace(i.Ranking)
	switch {
	case ranking == "":
		errs = append(errs, domain.FieldError{Field: "ranking", Message: "required"})
	case !domain.Ranking(ranking).IsValid():
		errs = append(errs, domain.FieldError{Field: "ranking", Message: "must be one of A+, A, B, C, D, E, X"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
