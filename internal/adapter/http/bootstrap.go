package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"todoapi/internal/adapter/database/mongodb"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/adapter/telemetry"
	"todoapi/pkg/config"
)

const shutdownTimeout = 10 * time.Second

// StartServer connects the store, wires the container and serves until ctx
// is cancelled.
func StartServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger, tel *telemetry.Telemetry) error {
	db, err := mongodb.New(ctx, cfg)

	if err != nil {
		return err
	}

	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error().Err(err).Msg("closing mongo client")
		}
	}()

	container := NewContainer(db, cfg, tel.AppMetrics)

	if err := container.EnsureIndexes(ctx); err != nil {
		return err
	}

	var limiter *middleware.RateLimiter

	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(tel.AppMetrics)
	}

	enforcer := middleware.NewHTTPSEnforcer(cfg.EnforceHTTPS || cfg.IsProduction())

	router := routes.SetupRouter(routes.Handlers{
		Auth:     container.AuthHandler,
		Todo:     container.TodoHandler,
		Identity: container.Identity,
	}, routes.Options{
		ServiceName:   "todoapi",
		Logger:        logger,
		Metrics:       tel.AppMetrics,
		Registry:      tel.PrometheusRegistry,
		RateLimiter:   limiter,
		HTTPSEnforcer: enforcer,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Bool("rate_limit_enabled", cfg.RateLimitEnabled).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
