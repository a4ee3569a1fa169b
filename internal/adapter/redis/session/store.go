// Package session stores verified login sessions in Redis, keyed by the
// token id (jti) of the access token that opened them.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

const keyPrefix = "session:"

// data is the JSON value stored for each session.
type data struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Store implements session storage using Redis.
type Store struct {
	client goredis.UniversalClient
}

// NewStore creates a session store from an existing Redis client.
func NewStore(client goredis.UniversalClient) *Store {
	return &Store{client: client}
}

func key(tokenID string) string {
	return keyPrefix + tokenID
}

// Save stores the identity under tokenID until ttl elapses.
func (s *Store) Save(ctx context.Context, tokenID string, id domain.Identity, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("save session: ttl must be positive, got %s", ttl)
	}

	raw, err := json.Marshal(data{Email: id.Email, Name: id.Name, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, key(tokenID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns the identity of a live session.
// Returns domain.ErrUnauthorized when the session expired or was revoked.
func (s *Store) Get(ctx context.Context, tokenID string) (domain.Identity, error) {
	raw, err := s.client.Get(ctx, key(tokenID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.Identity{}, fmt.Errorf("session %s: %w", tokenID, domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("lookup session: %w", err)
	}

	var d data
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.Identity{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return domain.Identity{Email: d.Email, Name: d.Name}, nil
}

// Delete revokes a session. Deleting an unknown session is not an error.
func (s *Store) Delete(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, key(tokenID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
