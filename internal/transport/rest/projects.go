package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// projectService defines the read-only projects operations.
type projectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, slug string) (*domain.Project, error)
}

// ProjectHandler serves the spreadsheet-backed projects endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		h.fetchFailed(w, r, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/projects/{slug}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProject(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.fetchFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

func (h *ProjectHandler) fetchFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "load projects", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "Failed to load projects")
}
