package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrForbidden if the email is not on the allow-list and
// ErrAlreadyExists if it is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.cfg.IsEmailAllowed(input.Email) {
		s.log.WarnContext(ctx, "registration refused", slog.String("email", input.Email))
		return nil, fmt.Errorf("email %s not authorized: %w", input.Email, domain.ErrForbidden)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	name := input.Name
	if name == "" {
		name = domain.DefaultUserName(input.Email)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user %s: %w", input.Email, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("email", user.Email))
	return user, nil
}
