package rest

import (
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/service/catalog"
)

type domainResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Theme     string    `json:"theme"`
	Ranking   *int      `json:"ranking"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDomainResponse(d *domain.Domain) domainResponse {
	return domainResponse{
		ID:        d.ID.String(),
		Slug:      d.Slug,
		Name:      d.Name,
		Theme:     d.Theme,
		Ranking:   d.Ranking,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type projectResponse struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	FolderURL   string `json:"folder_url"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse(p)
}

type ratingResponse struct {
	ID         string    `json:"id"`
	EntityKind string    `json:"entity_kind"`
	EntitySlug string    `json:"entity_slug"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name"`
	Ranking    string    `json:"ranking"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toRatingResponse(r *domain.Rating) ratingResponse {
	return ratingResponse{
		ID:         r.ID.String(),
		EntityKind: r.Kind.String(),
		EntitySlug: r.EntitySlug,
		UserEmail:  r.UserEmail,
		UserName:   r.UserName,
		Ranking:    r.Ranking.String(),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toRatingResponses(rs []*domain.Rating) []ratingResponse {
	out := make([]ratingResponse, len(rs))
	for i, r := range rs {
		out[i] = toRatingResponse(r)
	}
	return out
}

type decisionResponse struct {
	ID              string    `json:"id"`
	EntityKind      string    `json:"entity_kind"`
	EntitySlug      string    `json:"entity_slug"`
	DecisionStatus  string    `json:"decision_status"`
	NextSteps       *string   `json:"next_steps"`
	NextPhaseBudget *float64  `json:"next_phase_budget"`
	UpdatedBy       string    `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toDecisionResponse(d *domain.Decision) decisionResponse {
	return decisionResponse{
		ID:              d.ID.String(),
		EntityKind:      d.Kind.String(),
		EntitySlug:      d.EntitySlug,
		DecisionStatus:  d.Status.String(),
		NextSteps:       d.NextSteps,
		NextPhaseBudget: d.NextPhaseBudget,
		UpdatedBy:       d.UpdatedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type decisionSummaryResponse struct {
	EntitySlug      string   `json:"entity_slug"`
	DecisionStatus  string   `json:"decision_status"`
	NextSteps       *string  `json:"next_steps"`
	NextPhaseBudget *float64 `json:"next_phase_budget"`
}

func toDecisionSummaryResponse(s domain.DecisionSummary) decisionSummaryResponse {
	return decisionSummaryResponse{
		EntitySlug:      s.EntitySlug,
		DecisionStatus:  s.Status.String(),
		NextSteps:       s.NextSteps,
		NextPhaseBudget: s.NextPhaseBudget,
	}
}

type overviewResponse struct {
	Slug         string                   `json:"slug"`
	Name         string                   `json:"name"`
	Ranking      *int                     `json:"ranking,omitempty"`
	Status       string                   `json:"status,omitempty"`
	Decision     *decisionSummaryResponse `json:"decision"`
	RatingCounts map[string]int           `json:"rating_counts"`
	TotalRatings int                      `json:"total_ratings"`
}

func toOverviewResponse(item catalog.OverviewItem) overviewResponse {
	counts := make(map[string]int, len(item.RatingCounts))
	for r, n := range item.RatingCounts {
		counts[r.String()] = n
	}
	resp := overviewResponse{
		Slug:         item.Slug,
		Name:         item.Name,
		Ranking:      item.Ranking,
		Status:       item.Status,
		RatingCounts: counts,
		TotalRatings: item.TotalRatings,
	}
	if item.Decision != nil {
		d := toDecisionSummaryResponse(*item.Decision)
		resp.Decision = &d
	}
	return resp
}

type postResponse struct {
	ID           string    `json:"id"`
	EntityKind   string    `json:"entity_kind"`
	EntitySlug   string    `json:"entity_slug"`
	Content      string    `json:"content"`
	PostedBy     string    `json:"posted_by"`
	PostedByName string    `json:"posted_by_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:           p.ID.String(),
		EntityKind:   p.Kind.String(),
		EntitySlug:   p.EntitySlug,
		Content:      p.Content,
		PostedBy:     p.PostedBy,
		PostedByName: p.PostedByName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type commentResponse struct {
	ID           string    `json:"id"`
	PostID       string    `json:"post_id"`
	Content      string    `json:"content"`
	PostedBy     string    `json:"posted_by"`
	PostedByName string    `json:"posted_by_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID.String(),
		PostID:       c.PostID.String(),
		Content:      c.Content,
		PostedBy:     c.PostedBy,
		PostedByName: c.PostedByName,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
