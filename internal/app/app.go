package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/decision"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/domains"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/post"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/rating"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/user"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/provider/sheets"
	redisadapter "github.com/tdt-studio/portfolio-tracker/internal/adapter/redis"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/redis/cache"
	"github.com/tdt-studio/portfolio-tracker/internal/adapter/redis/session"
	"github.com/tdt-studio/portfolio-tracker/internal/auth"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
	authsvc "github.com/tdt-studio/portfolio-tracker/internal/service/auth"
	"github.com/tdt-studio/portfolio-tracker/internal/service/catalog"
	decisionsvc "github.com/tdt-studio/portfolio-tracker/internal/service/decision"
	"github.com/tdt-studio/portfolio-tracker/internal/service/discussion"
	ratingsvc "github.com/tdt-studio/portfolio-tracker/internal/service/rating"
	"github.com/tdt-studio/portfolio-tracker/internal/transport/middleware"
	"github.com/tdt-studio/portfolio-tracker/internal/transport/rest"
)

const projectsCachePrefix = "portfolio:cache:"

// Run is the application entry point. It loads configuration, connects the
// stores, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Database. Without a DSN the server still starts and data routes answer 503.
	var db postgres.DB = postgres.Unavailable{}
	dbPinger := rest.Pinger(postgres.Unavailable{})
	if cfg.Database.Configured() {
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		db, dbPinger = pool, pool
	} else {
		logger.Warn("database not configured, data routes will answer 503")
	}

	rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	handler, cleanup := NewHandler(cfg, logger, db, dbPinger, rdb)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the repositories, services and the middleware-wrapped
// router. The returned func stops background workers.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	db postgres.DB,
	dbPinger rest.Pinger,
	rdb goredis.UniversalClient,
) (http.Handler, func()) {
	// Repositories
	txm := postgres.NewTxManager(db)
	domainRepo := domains.New(db)
	ratingRepo := rating.New(db)
	decisionRepo := decision.New(db)
	postRepo := post.New(db)
	userRepo := user.New(db)

	// Adapters
	sessions := session.NewStore(rdb)
	projectsCache := cache.New(rdb, projectsCachePrefix)
	sheet := sheets.NewProvider(cfg.Projects.SheetURL, cfg.Projects.FetchTimeout, logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Services
	ratings := ratingsvc.NewService(logger, ratingRepo)
	decisions := decisionsvc.NewService(logger, decisionRepo)
	catalogSvc := catalog.NewService(logger, catalog.Deps{
		Domains: domainRepo,
		Dependents: map[string]catalog.DependentRepo{
			"ratings":   ratingRepo,
			"decisions": decisionRepo,
			"posts":     postRepo,
		},
		Projects:  sheet,
		Cache:     projectsCache,
		Ratings:   ratingRepo,
		Decisions: decisions,
		Tx:        txm,
	}, cfg.Projects.CacheTTL)
	discussionSvc := discussion.NewService(logger, postRepo, txm)
	authService := authsvc.NewService(logger, userRepo, sessions, jwtManager, hasher, cfg.Auth)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": dbPinger,
			"redis":    sessions,
		}, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Domains:    rest.NewDomainHandler(catalogSvc, logger),
		Projects:   rest.NewProjectHandler(catalogSvc, logger),
		Entities:   rest.NewEntityHandler(ratings, decisions, catalogSvc, logger),
		Discussion: rest.NewDiscussionHandler(discussionSvc, logger),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, logger),
	)

	return chain(mux), limiter.Stop
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
