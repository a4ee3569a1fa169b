package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Logout ends the session behind the given access token.
// Returns ErrUnauthorized if the token is invalid.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, claims.TokenID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("email", claims.Email))
	return nil
}

// ValidateToken verifies an access token and checks that its session is
// still live. Returns ErrUnauthorized if either check fails.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	identity, err := s.sessions.Get(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.Identity{}, domain.ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("auth.ValidateToken: %w", err)
	}

	if identity.Email != claims.Email {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
