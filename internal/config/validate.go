package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}
	c.Auth.AllowedEmails = ParseEmailList(c.Auth.AllowedEmailsRaw)

	if c.Projects.SheetURL != "" {
		u, err := url.Parse(c.Projects.SheetURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("projects.sheet_url must be an absolute URL (got %q)", c.Projects.SheetURL)
		}
	}
	if c.Projects.CacheTTL < 0 {
		return fmt.Errorf("projects.cache_ttl must be >= 0 (got %v)", c.Projects.CacheTTL)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

// ParseEmailList parses a comma-separated list of emails, lowercasing each one
// and dropping empty items. An empty string returns a nil slice.
func ParseEmailList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		emails = append(emails, p)
	}
	return emails
}
