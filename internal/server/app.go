// Package server wires the application together: configuration,
// logging, storage, services, HTTP routes and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iudanet/gatekeeper/internal/server/config"
	"github.com/iudanet/gatekeeper/internal/server/cookies"
	"github.com/iudanet/gatekeeper/internal/server/handlers"
	"github.com/iudanet/gatekeeper/internal/server/jwt"
	"github.com/iudanet/gatekeeper/internal/server/middleware"
	"github.com/iudanet/gatekeeper/internal/server/service"
	"github.com/iudanet/gatekeeper/internal/server/storage"
	"github.com/iudanet/gatekeeper/internal/server/storage/postgres"
	"github.com/iudanet/gatekeeper/internal/server/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// App хранит зависимости приложения с определенным жизненным циклом:
// создаются один раз при старте, передаются в сервисы явно.
type App struct {
	config *config.Config
	logger *slog.Logger
	users  storage.UserStorage
	server *http.Server
}

// NewApp собирает приложение из конфигурации
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg)

	if cfg.UsesDefaultSecret() {
		logger.Error("JWT_SECRET is not set, using the insecure default secret; " +
			"anyone who knows it can forge session tokens, do not run this in production")
	}

	users, err := newStorage(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	tokens := jwt.NewService(cfg.JWTSecret)
	cookieManager := cookies.NewManager(cfg.IsProduction())
	authService := service.NewAuthService(logger, users)

	authHandler := handlers.NewAuthHandler(logger, authService, tokens, cookieManager)
	healthHandler := handlers.NewHealthHandler(logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/sign-up", authHandler.SignUp)
	mux.HandleFunc("POST /api/v1/auth/sign-in", authHandler.SignIn)
	mux.HandleFunc("POST /api/v1/auth/sign-out", authHandler.SignOut)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(logger)(handler)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		config: cfg,
		logger: logger,
		users:  users,
		server: srv,
	}, nil
}

// Run запускает HTTP сервер и блокируется до сигнала завершения
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	errCh := make(chan error, 1)

	go func() {
		app.logger.Info("starting server",
			slog.String("address", app.config.Address),
			slog.String("environment", app.config.Environment))

		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", slog.Any("error", err))
	}

	if err := app.users.Close(); err != nil {
		app.logger.Error("storage close failed", slog.Any("error", err))
	}

	return nil
}

// initSignalHandler отменяет контекст по сигналу ОС
func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

// newLogger создает логгер: JSON в production, текст в development
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// newStorage выбирает реализацию хранилища по DSN
func newStorage(ctx context.Context, dsn string) (storage.UserStorage, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.New(ctx, dsn)
	}
	return sqlite.New(ctx, dsn)
}
