package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDomain inserts a domain with a unique slug and the given ranking
// (nil for unranked) and returns it.
func SeedDomain(t *testing.T, pool *pgxpool.Pool, ranking *int) domain.Domain {
	t.Helper()

	suffix := UniqueSuffix()
	d := domain.Domain{
		Slug:    "domain-" + suffix,
		Name:    "Domain " + suffix,
		Theme:   "Theme " + suffix,
		Ranking: ranking,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO domains (slug, name, theme, ranking)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		d.Slug, d.Name, d.Theme, d.Ranking,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDomain: %v", err)
	}

	return d
}

// SeedRating inserts a rating by a unique user on the given entity.
func SeedRating(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind, slug string, ranking domain.Ranking) domain.Rating {
	t.Helper()

	suffix := UniqueSuffix()
	r := domain.Rating{
		Kind:       kind,
		EntitySlug: slug,
		UserEmail:  "rater-" + suffix + "@example.com",
		UserName:   "Rater " + suffix,
		Ranking:    ranking,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO ratings (entity_kind, entity_slug, user_email, user_name, ranking)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		string(r.Kind), r.EntitySlug, r.UserEmail, r.UserName, string(r.Ranking),
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRating: %v", err)
	}

	return r
}

// SeedDecision inserts a decision for the given entity.
func SeedDecision(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind, slug string, status domain.DecisionStatus) domain.Decision {
	t.Helper()

	d := domain.Decision{
		Kind:       kind,
		EntitySlug: slug,
		Status:     status,
		UpdatedBy:  "seed@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO decisions (entity_kind, entity_slug, decision_status, updated_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		string(d.Kind), d.EntitySlug, string(d.Status), d.UpdatedBy,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDecision: %v", err)
	}

	return d
}

// SeedPost inserts a post authored by postedBy on the given entity.
func SeedPost(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind, slug, postedBy string) domain.Post {
	t.Helper()

	p := domain.Post{
		Kind:         kind,
		EntitySlug:   slug,
		Content:      "post " + UniqueSuffix(),
		PostedBy:     postedBy,
		PostedByName: "Author",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (entity_kind, entity_slug, content, posted_by, posted_by_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		string(p.Kind), p.EntitySlug, p.Content, p.PostedBy, p.PostedByName,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return p
}

// SeedUser inserts a user with the given password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, passwordHash string) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	u := domain.User{
		Email:        "user-" + suffix + "@example.com",
		Name:         "User " + suffix,
		PasswordHash: passwordHash,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}
