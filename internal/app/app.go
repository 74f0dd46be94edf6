// Package app wires configuration, storage, services and the HTTP stack
// into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/auth"
	"github.com/heartmarshall/daily-pos-backend/internal/config"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/middleware"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/rest"
)

// Run is the server entry point. It blocks until ctx is cancelled, then
// drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := NewRepos(pool)
	if err := EnsureOwner(ctx, repos.Users, cfg.Auth.DefaultOwner); err != nil {
		return err
	}
	services := NewServices(logger, repos, postgres.NewTxManager(pool))

	identity := middleware.IdentityConfig{
		Owners:         NewOwnerProvisioner(repos.Users),
		DefaultOwner:   cfg.Auth.DefaultOwner,
		AllowAnonymous: cfg.Auth.AllowAnonymous,
	}
	if cfg.Auth.JWTEnabled() {
		identity.Validator = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	}

	metrics := middleware.NewMetrics("daily_pos")
	stack := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		metrics.Middleware(),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		stack = append(stack, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	handlers := Handlers{
		Health:       rest.NewHealthHandler(pool, Version),
		Today:        rest.NewTodayHandler(services.Today, logger),
		Tasks:        rest.NewTaskHandler(services.Tasks, logger),
		BetterItems:  rest.NewBetterItemHandler(services.BetterItems, logger),
		Habits:       rest.NewHabitHandler(services.Discipline, services.Diet, logger),
		Deadlines:    rest.NewDeadlineHandler(services.Deadlines, logger),
		Money:        rest.NewMoneyHandler(services.Money, logger),
		Schedule:     rest.NewScheduleHandler(services.Schedule, logger),
		WeeklyReview: rest.NewWeeklyReviewHandler(services.WeeklyReview, logger),
		Seed:         rest.NewSeedHandler(services.Seed, cfg.App.IsDevelopment() && cfg.App.SeedEndpoints, logger),
	}

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler: NewRouter(handlers, RouterOptions{
			Version:    Version,
			Identity:   identity,
			Middleware: stack,
			Metrics:    metrics,
		}, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
