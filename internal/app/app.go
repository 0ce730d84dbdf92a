package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres"
	activityrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/activity"
	activitylogrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/activitylog"
	categoryrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/category"
	insightrepo "github.com/antonvasilev/zenpoints-backend/internal/adapter/postgres/insight"
	"github.com/antonvasilev/zenpoints-backend/internal/auth"
	"github.com/antonvasilev/zenpoints-backend/internal/config"
	"github.com/antonvasilev/zenpoints-backend/internal/service/activity"
	"github.com/antonvasilev/zenpoints-backend/internal/service/activitylog"
	"github.com/antonvasilev/zenpoints-backend/internal/service/category"
	"github.com/antonvasilev/zenpoints-backend/internal/service/stats"
	"github.com/antonvasilev/zenpoints-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires repositories and services, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	activities := activityrepo.New(pool)
	logs := activitylogrepo.New(pool)
	insights := insightrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	categorySvc := category.NewService(logger, categories, category.Config{
		MaxPerUser:               cfg.Tracker.MaxCategoriesPerUser,
		MaxBenchmarksPerCategory: cfg.Tracker.MaxBenchmarksPerCategory,
		DefaultColor:             cfg.Tracker.DefaultCategoryColor,
	})
	activitySvc := activity.NewService(logger, activities, categories, logs, insights, txManager, activity.Config{
		MaxPerCategory: cfg.Tracker.MaxActivitiesPerCategory,
	})
	logSvc := activitylog.NewService(logger, logs, activities, categories, activitylog.Config{
		MaxNotesLength: cfg.Tracker.MaxNotesLength,
	})
	statsSvc := stats.NewService(logger, categories, logs)

	router := rest.NewRouter(rest.RouterConfig{
		Logger:         logger,
		CORS:           cfg.CORS,
		TokenValidator: jwtManager,
		MetricsEnabled: cfg.Metrics.Enabled,
		DB:             pool,
		Version:        BuildVersion(),
		Categories:     categorySvc,
		Activities:     activitySvc,
		Logs:           logSvc,
		Stats:          statsSvc,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
