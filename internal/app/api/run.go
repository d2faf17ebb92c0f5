package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	usersserver "github.com/Apurer/go-users-api/server"

	platformmigrations "github.com/Apurer/go-users-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-users-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-users-api/internal/platform/postgres"
	usermemory "github.com/Apurer/go-users-api/internal/users/adapters/memory"
	userobs "github.com/Apurer/go-users-api/internal/users/adapters/observability"
	userpostgres "github.com/Apurer/go-users-api/internal/users/adapters/persistence/postgres"
	userapp "github.com/Apurer/go-users-api/internal/users/application"
	userports "github.com/Apurer/go-users-api/internal/users/ports"
)

// Run boots the users HTTP API with observability and persistence wired.
// The connection pool is established before the listener starts and closed
// after the listener drains, matching the process lifecycle contract.
func Run(ctx context.Context) error {
	const serviceName = "users-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdownObservability, err := platformobservability.Init(ctx, serviceName, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownObservability(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repo, cleanupRepo, err := buildUserRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanupRepo()

	coreService := userapp.NewService(repo)
	userService := userobs.New(
		coreService,
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	handlers := usersserver.ApiHandleFunctions{
		UsersAPI:  usersserver.NewUsersAPI(userService),
		HealthAPI: usersserver.NewHealthAPI(),
	}
	router := usersserver.NewRouter(handlers, otelgin.Middleware(serviceName))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	notifyCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("users API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("users API server exited", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-notifyCtx.Done():
	}

	// Stop accepting traffic first; the deferred cleanup closes the pool.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
		return err
	}
	logger.Info("users API stopped")
	return nil
}

func buildUserRepository(ctx context.Context, cfg Config, logger *slog.Logger) (userports.Repository, func(), error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory user repository")
		return usermemory.NewRepository(), func() {}, nil
	}
	pool := platformpostgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}
	db, cleanup, err := platformpostgres.Connect(ctx, cfg.PostgresDSN, pool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := platformmigrations.Run(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to apply users schema: %w", err)
	}
	logger.Info("database connection established")
	return userpostgres.NewRepository(db), cleanup, nil
}
