package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/service/catalog"
	"github.com/tdt-studio/portfolio-tracker/internal/service/decision"
	"github.com/tdt-studio/portfolio-tracker/internal/service/rating"
)

// ratingService defines the rating operations needed by EntityHandler.
type ratingService interface {
	Upsert(ctx context.Context, input rating.UpsertInput) (*domain.Rating, error)
	Get(ctx context.Context, kind domain.EntityKind, slug, email string) (*domain.Rating, error)
	List(ctx context.Context, kind domain.EntityKind, slug string) ([]*domain.Rating, error)
	ListAll(ctx context.Context, kind domain.EntityKind) (map[string][]*domain.Rating, error)
	Delete(ctx context.Context, kind domain.EntityKind, slug, email string) error
}

// decisionService defines the decision operations needed by EntityHandler.
type decisionService interface {
	Upsert(ctx context.Context, input decision.UpsertInput) (*domain.Decision, error)
	Get(ctx context.Context, kind domain.EntityKind, slug string) (*domain.Decision, error)
	ListSummaries(ctx context.Context, kind domain.EntityKind) []domain.DecisionSummary
}

// overviewService defines the dashboard aggregation needed by EntityHandler.
type overviewService interface {
	Overview(ctx context.Context, kind domain.EntityKind) ([]catalog.OverviewItem, error)
}

// EntityHandler serves the rating, decision and overview endpoints shared by
// domains and projects. Each method binds the entity kind of its route.
type EntityHandler struct {
	ratings   ratingService
	decisions decisionService
	overview  overviewService
	log       *slog.Logger
}

// NewEntityHandler creates an EntityHandler.
func NewEntityHandler(ratings ratingService, decisions decisionService, overview overviewService, logger *slog.Logger) *EntityHandler {
	return &EntityHandler{
		ratings:   ratings,
		decisions: decisions,
		overview:  overview,
		log:       logger.With("handler", "entities"),
	}
}

type ratingRequest struct {
	Ranking string  `json:"ranking"`
	Comment *string `json:"comment"`
}

type decisionRequest struct {
	DecisionStatus  string  `json:"decision_status"`
	NextSteps       *string `json:"next_steps"`
	NextPhaseBudget any     `json:"next_phase_budget"`
}

// ---------------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------------

// ListRatings handles GET /api/{kind}/{slug}/ratings.
func (h *EntityHandler) ListRatings(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.ratings.List(r.Context(), kind, r.PathValue("slug"))
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch ratings", err)
			return
		}
		writeJSON(w, http.StatusOK, toRatingResponses(list))
	}
}

// UpsertRating handles POST /api/{kind}/{slug}/ratings. The rater is the
// signed-in caller.
func (h *EntityHandler) UpsertRating(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		var req ratingRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to save rating", err)
			return
		}

		saved, err := h.ratings.Upsert(r.Context(), rating.UpsertInput{
			Kind:      kind,
			Slug:      r.PathValue("slug"),
			UserEmail: caller.Email,
			UserName:  caller.Name,
			Ranking:   req.Ranking,
			Comment:   req.Comment,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to save rating", err)
			return
		}
		writeJSON(w, http.StatusOK, toRatingResponse(saved))
	}
}

// GetRating handles GET /api/{kind}/{slug}/ratings/{email}. Answers null
// when the user has not rated the entity.
func (h *EntityHandler) GetRating(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found, err := h.ratings.Get(r.Context(), kind, r.PathValue("slug"), r.PathValue("email"))
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch rating", err)
			return
		}
		if found == nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, toRatingResponse(found))
	}
}

// DeleteRating handles DELETE /api/{kind}/{slug}/ratings/{email}. Callers
// may only withdraw their own rating.
func (h *EntityHandler) DeleteRating(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		email := r.PathValue("email")
		if !strings.EqualFold(strings.TrimSpace(email), caller.Email) {
			writeError(w, http.StatusForbidden, "You can only delete your own rating")
			return
		}

		if err := h.ratings.Delete(r.Context(), kind, r.PathValue("slug"), email); err != nil {
			handleError(w, r, h.log, "Failed to delete rating", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// AllRatings handles GET /api/{kind}/ratings: every rating of the kind
// grouped by entity slug.
func (h *EntityHandler) AllRatings(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grouped, err := h.ratings.ListAll(r.Context(), kind)
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch ratings", err)
			return
		}

		out := make(map[string][]ratingResponse, len(grouped))
		for slug, list := range grouped {
			out[slug] = toRatingResponses(list)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ---------------------------------------------------------------------------
// Decisions
// ---------------------------------------------------------------------------

// GetDecision handles GET /api/{kind}/{slug}/decision. Answers null when no
// decision was recorded yet.
func (h *EntityHandler) GetDecision(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := h.decisions.Get(r.Context(), kind, r.PathValue("slug"))
		if err != nil {
			handleError(w, r, h.log, "Failed to fetch decision", err)
			return
		}
		if d == nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, toDecisionResponse(d))
	}
}

// UpsertDecision handles POST /api/{kind}/{slug}/decision.
func (h *EntityHandler) UpsertDecision(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity(w, r)
		if !ok {
			return
		}

		var req decisionRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, "Failed to save decision", err)
			return
		}

		saved, err := h.decisions.Upsert(r.Context(), decision.UpsertInput{
			Kind:      kind,
			Slug:      r.PathValue("slug"),
			Status:    req.DecisionStatus,
			NextSteps: req.NextSteps,
			Budget:    req.NextPhaseBudget,
			UpdatedBy: caller.Email,
		})
		if err != nil {
			handleError(w, r, h.log, "Failed to save decision", err)
			return
		}
		writeJSON(w, http.StatusOK, toDecisionResponse(saved))
	}
}

// ListDecisions handles GET /api/{kind}/decisions. Never fails: store errors
// yield an empty list.
func (h *EntityHandler) ListDecisions(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := h.decisions.ListSummaries(r.Context(), kind)

		out := make([]decisionSummaryResponse, len(summaries))
		for i, s := range summaries {
			out[i] = toDecisionSummaryResponse(s)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ---------------------------------------------------------------------------
// Overview
// ---------------------------------------------------------------------------

// Overview handles GET /api/{kind}/overview.
func (h *EntityHandler) Overview(kind domain.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.overview.Overview(r.Context(), kind)
		if err != nil {
			handleError(w, r, h.log, "Failed to build overview", err)
			return
		}

		out := make([]overviewResponse, len(items))
		for i, it := range items {
			out[i] = toOverviewResponse(it)
		}
		writeJSON(w, http.StatusOK, out)
	}
}
