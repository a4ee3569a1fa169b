package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/service/catalog"
)

// domainService defines the catalogue operations needed by DomainHandler.
type domainService interface {
	ListDomains(ctx context.Context) ([]*domain.Domain, error)
	GetDomain(ctx context.Context, slug string) (*domain.Domain, error)
	CreateDomain(ctx context.Context, input catalog.DomainInput) (*domain.Domain, error)
	UpdateDomain(ctx context.Context, slug string, input catalog.DomainInput) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, slug string) error
	Reorder(ctx context.Context, input catalog.ReorderInput) error
}

// DomainHandler serves the domain catalogue endpoints.
type DomainHandler struct {
	svc domainService
	log *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(svc domainService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{svc: svc, log: logger.With("handler", "domains")}
}

type domainRequest struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

type reorderRequest struct {
	Rankings json.RawMessage `json:"rankings"`
}

type rankingItem struct {
	Slug    string `json:"slug"`
	Ranking int    `json:"ranking"`
}

// List handles GET /api/domains.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	domains, err := h.svc.ListDomains(r.Context())
	if err != nil {
		handleError(w, r, h.log, "Failed to fetch domains", err)
		return
	}

	out := make([]domainResponse, len(domains))
	for i, d := range domains {
		out[i] = toDomainResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/domains/{slug}.
func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDomain(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, "Failed to fetch domain", err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(d))
}

// Create handles POST /api/domains.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domainRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, "Failed to create domain", err)
		return
	}

	d, err := h.svc.CreateDomain(r.Context(), catalog.DomainInput{Name: req.Name, Theme: req.Theme})
	if err != nil {
		handleError(w, r, h.log, "Failed to create domain", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDomainResponse(d))
}

// Update handles PUT /api/domains/{slug}. Renaming moves every rating,
// decision and post of the domain to the new slug.
func (h *DomainHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domainRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, "Failed to update domain", err)
		return
	}

	d, err := h.svc.UpdateDomain(r.Context(), r.PathValue("slug"), catalog.DomainInput{Name: req.Name, Theme: req.Theme})
	if err != nil {
		handleError(w, r, h.log, "Failed to update domain", err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(d))
}

// Delete handles DELETE /api/domains/{slug}.
func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDomain(r.Context(), r.PathValue("slug")); err != nil {
		handleError(w, r, h.log, "Failed to delete domain", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Reorder handles POST /api/domains/reorder.
func (h *DomainHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, "Failed to reorder domains", err)
		return
	}

	raw := bytes.TrimSpace(req.Rankings)
	if len(raw) == 0 || raw[0] != '[' {
		writeError(w, http.StatusBadRequest, "Rankings must be an array")
		return
	}

	var items []rankingItem
	if err := json.Unmarshal(raw, &items); err != nil {
		writeError(w, http.StatusBadRequest, "Rankings must be an array of {slug, ranking}")
		return
	}

	updates := make([]domain.RankUpdate, len(items))
	for i, it := range items {
		updates[i] = domain.RankUpdate{Slug: it.Slug, Ranking: it.Ranking}
	}

	if err := h.svc.Reorder(r.Context(), catalog.ReorderInput{Rankings: updates}); err != nil {
		handleError(w, r, h.log, "Failed to reorder domains", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
