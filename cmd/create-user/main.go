// Command create-user adds a team member who can sign in, or imports the
// legacy users.json file.
//
// Usage:
//
//	create-user --email=ann@example.com --password=secret [--name=Ann]
//	create-user --import=users.json
//
// Imported accounts keep their legacy password hashes. They are upgraded to
// bcrypt on the next successful login. Existing users are skipped.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/user"
	"github.com/tdt-studio/portfolio-tracker/internal/app"
	"github.com/tdt-studio/portfolio-tracker/internal/auth"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

type userCreator interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

func main() {
	email := flag.String("email", "", "email of the new user")
	password := flag.String("password", "", "password of the new user")
	name := flag.String("name", "", "display name (default: local part of the email)")
	importPath := flag.String("import", "", "path to a legacy users.json file")
	flag.Parse()

	if *importPath == "" && (*email == "" || *password == "") {
		fmt.Fprintln(os.Stderr, "Usage: create-user --email=user@example.com --password=secret [--name=Name]")
		fmt.Fprintln(os.Stderr, "       create-user --import=users.json")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := user.New(pool)

	if *importPath != "" {
		f, err := os.Open(*importPath)
		if err != nil {
			logger.Error("open import file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()

		created, skipped, err := importUsers(ctx, repo, f)
		if err != nil {
			logger.Error("import failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("import completed", slog.Int("created", created), slog.Int("skipped", skipped))
		return
	}

	if len(*password) < 6 {
		logger.Error("password must be at least 6 characters")
		os.Exit(1)
	}

	hash, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost).Hash(*password)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	u, err := repo.Create(ctx, newUser(*email, *name, hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			fmt.Fprintf(os.Stderr, "User with email %s already exists\n", *email)
			os.Exit(1)
		}
		logger.Error("create user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("User created successfully:")
	fmt.Printf("  Email: %s\n", u.Email)
	fmt.Printf("  Name: %s\n", u.Name)
}

// legacyUser is one record of the old users.json file.
type legacyUser struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
}

// importUsers creates every user in r, skipping emails that already exist.
func importUsers(ctx context.Context, repo userCreator, r io.Reader) (created, skipped int, err error) {
	var records []legacyUser
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, 0, fmt.Errorf("decode users file: %w", err)
	}

	for i, rec := range records {
		if !strings.Contains(rec.Email, "@") || rec.PasswordHash == "" {
			return created, skipped, fmt.Errorf("record %d: email and passwordHash are required", i+1)
		}

		_, err := repo.Create(ctx, newUser(rec.Email, rec.Name, rec.PasswordHash))
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("create %s: %w", rec.Email, err)
		default:
			created++
		}
	}
	return created, skipped, nil
}

func newUser(email, name, hash string) *domain.User {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultUserName(email)
	}
	return &domain.User{Email: email, Name: name, PasswordHash: hash}
}
