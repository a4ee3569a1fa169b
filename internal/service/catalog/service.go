// Package catalog manages the entities that can be rated and decided upon:
// domains stored in Postgres and projects read from the published sheet.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

type domainRepo interface {
	List(ctx context.Context) ([]*domain.Domain, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Domain, error)
	Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	Update(ctx context.Context, slug string, d *domain.Domain) (*domain.Domain, error)
	Delete(ctx context.Context, slug string) (bool, error)
	InsertIfAbsent(ctx context.Context, d *domain.Domain) (bool, error)
	SetRankings(ctx context.Context, updates []domain.RankUpdate) error
}

// DependentRepo is implemented by every store whose rows reference an entity
// by (kind, slug): ratings, decisions and posts.
type DependentRepo interface {
	RenameEntity(ctx context.Context, kind domain.EntityKind, oldSlug, newSlug string) (int64, error)
	DeleteByEntity(ctx context.Context, kind domain.EntityKind, slug string) (int64, error)
}

type projectSource interface {
	FetchProjects(ctx context.Context) ([]domain.Project, error)
}

type projectCache interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

type ratingCounter interface {
	CountByRanking(ctx context.Context, kind domain.EntityKind) ([]domain.RankingCount, error)
}

type decisionLister interface {
	ListSummaries(ctx context.Context, kind domain.EntityKind) []domain.DecisionSummary
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the collaborators of the catalog service.
type Deps struct {
	Domains    domainRepo
	Dependents map[string]DependentRepo
	Projects   projectSource
	Cache      projectCache
	Ratings    ratingCounter
	Decisions  decisionLister
	Tx         txManager
}

// Service provides catalogue operations.
type Service struct {
	domains    domainRepo
	dependents map[string]DependentRepo
	projects   projectSource
	cache      projectCache
	cacheTTL   time.Duration
	ratings    ratingCounter
	decisions  decisionLister
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Catalog service. Dependents are keyed by a short
// name used in logs ("ratings", "decisions", "posts").
func NewService(log *slog.Logger, deps Deps, cacheTTL time.Duration) *Service {
	return &Service{
		domains:    deps.Domains,
		dependents: deps.Dependents,
		projects:   deps.Projects,
		cache:      deps.Cache,
		cacheTTL:   cacheTTL,
		ratings:    deps.Ratings,
		decisions:  deps.Decisions,
		tx:         deps.Tx,
		log:        log.With("service", "catalog"),
	}
}
