package catalog

import (
	"fmt"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// reservedSlugs collide with fixed routes under /api/domains.
var reservedSlugs = map[string]bool{
	"decisions": true,
	"overview":  true,
	"ratings":   true,
	"reorder":   true,
}

// DomainInput holds the editable fields of a domain. The slug is always
// derived from Name.
type DomainInput struct {
	Name  string
	Theme string
}

// Validate checks all fields and collects all errors.
func (i DomainInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > 200:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	case domain.Slugify(name) == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "must contain at least one letter or digit"})
	case reservedSlugs[domain.Slugify(name)]:
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("%q is reserved", domain.Slugify(name))})
	}

	if strings.TrimSpace(i.Theme) == "" {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput is a list of new display positions.
type ReorderInput struct {
	Rankings []domain.RankUpdate
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError
	seen := make(map[string]int, len(i.Rankings))

	for idx, r := range i.Rankings {
		field := fmt.Sprintf("rankings[%d]", idx)
		slug := domain.NormalizeSlug(r.Slug)
		if slug == "" {
			errs = append(errs, domain.FieldError{Field: field + ".slug", Message: "required"})
		} else if first, dup := seen[slug]; dup {
			errs = append(errs, domain.FieldError{
				Field:   field + ".slug",
				Message: fmt.Sprintf("duplicate of rankings[%d]", first),
			})
		} else {
			seen[slug] = idx
		}
		if r.Ranking <= 0 {
			errs = append(errs, domain.FieldError{Field: field + ".ranking", Message: "must be a positive integer"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
