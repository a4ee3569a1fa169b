package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/auth"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}

// sessionStore defines the live-session store needed by auth service.
type sessionStore interface {
	Save(ctx context.Context, tokenID string, id domain.Identity, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (domain.Identity, error)
	Delete(ctx context.Context, tokenID string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(email, name string) (string, auth.Claims, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	AccessTTL() time.Duration
}

// passwordHasher defines password hashing needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (ok bool, needsRehash bool)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionStore
	jwt      jwtManager
	hasher   passwordHasher
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	jwt jwtManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		hasher:   hasher,
		cfg:      cfg,
	}
}
