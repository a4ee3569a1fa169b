package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Login authenticates a user with email + password and opens a session.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
// Legacy SHA-256 hashes are replaced with bcrypt after a successful match.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, needsRehash := s.hasher.Verify(user.PasswordHash, input.Password)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if needsRehash {
		s.upgradeHash(ctx, user.Email, input.Password)
	}

	token, claims, err := s.jwt.GenerateAccessToken(user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	identity := domain.Identity{Email: user.Email, Name: user.Name}
	if err := s.sessions.Save(ctx, claims.TokenID, identity, s.jwt.AccessTTL()); err != nil {
		return nil, fmt.Errorf("auth.Login store session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("email", user.Email))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt,
		User:        user,
	}, nil
}

// upgradeHash replaces a legacy hash with bcrypt. Failures are logged only;
// the user can still sign in with the legacy hash next time.
func (s *Service) upgradeHash(ctx context.Context, email, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.users.UpdatePasswordHash(ctx, email, hash)
	}
	if err != nil {
		s.log.WarnContext(ctx, "password hash upgrade failed",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "password hash upgraded", slog.String("email", email))
}
