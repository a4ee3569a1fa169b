package rest

import (
	"net/http"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Domains    *DomainHandler
	Projects   *ProjectHandler
	Entities   *EntityHandler
	Discussion *DiscussionHandler
}

// entityPaths maps each entity kind to its URL segment.
var entityPaths = []struct {
	kind    domain.EntityKind
	segment string
}{
	{domain.EntityKindDomain, "domains"},
	{domain.EntityKindProject, "projects"},
}

// NewRouter registers every route. authLimit throttles the credential
// endpoints.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	signedIn := func(fn http.HandlerFunc) http.Handler { return middleware.RequireIdentity(fn) }

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /api/auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/domains", h.Domains.List)
	mux.Handle("POST /api/domains", signedIn(h.Domains.Create))
	mux.Handle("POST /api/domains/reorder", signedIn(h.Domains.Reorder))
	mux.HandleFunc("GET /api/domains/{slug}", h.Domains.Get)
	mux.Handle("PUT /api/domains/{slug}", signedIn(h.Domains.Update))
	mux.Handle("DELETE /api/domains/{slug}", signedIn(h.Domains.Delete))

	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("GET /api/projects/{slug}", h.Projects.Get)

	for _, ep := range entityPaths {
		kind, base := ep.kind, "/api/"+ep.segment

		mux.HandleFunc("GET "+base+"/decisions", h.Entities.ListDecisions(kind))
		mux.HandleFunc("GET "+base+"/overview", h.Entities.Overview(kind))
		mux.HandleFunc("GET "+base+"/ratings", h.Entities.AllRatings(kind))

		mux.HandleFunc("GET "+base+"/{slug}/decision", h.Entities.GetDecision(kind))
		mux.HandleFunc("POST "+base+"/{slug}/decision", h.Entities.UpsertDecision(kind))

		mux.HandleFunc("GET "+base+"/{slug}/ratings", h.Entities.ListRatings(kind))
		mux.HandleFunc("POST "+base+"/{slug}/ratings", h.Entities.UpsertRating(kind))
		mux.HandleFunc("GET "+base+"/{slug}/ratings/{email}", h.Entities.GetRating(kind))
		mux.HandleFunc("DELETE "+base+"/{slug}/ratings/{email}", h.Entities.DeleteRating(kind))

		mux.HandleFunc("GET "+base+"/{slug}/posts", h.Discussion.ListPosts(kind))
		mux.HandleFunc("POST "+base+"/{slug}/posts", h.Discussion.CreatePost(kind))
		mux.HandleFunc("PUT "+base+"/{slug}/posts/{id}", h.Discussion.UpdatePost(kind))
		mux.HandleFunc("DELETE "+base+"/{slug}/posts/{id}", h.Discussion.DeletePost(kind))
		mux.HandleFunc("GET "+base+"/{slug}/posts/{id}/comments", h.Discussion.ListComments(kind))
		mux.HandleFunc("POST "+base+"/{slug}/posts/{id}/comments", h.Discussion.CreateComment(kind))
		mux.HandleFunc("PUT "+base+"/{slug}/posts/{id}/comments/{commentId}", h.Discussion.UpdateComment(kind))
		mux.HandleFunc("DELETE "+base+"/{slug}/posts/{id}/comments/{commentId}", h.Discussion.DeleteComment(kind))
	}

	return mux
}
