package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/antonvasilev/zenpoints-backend/internal/config"
	"github.com/antonvasilev/zenpoints-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token into a user ID.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterConfig carries everything the HTTP router needs.
type RouterConfig struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	TokenValidator TokenValidator
	MetricsEnabled bool
	DB             dbPinger
	Version        string

	Categories categoryService
	Activities activityService
	Logs       logService
	Stats      statsService
}

// NewRouter assembles the full HTTP handler: probes and metrics on the root,
// the authenticated API under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	base := []middleware.Middleware{middleware.RequestID}
	if cfg.MetricsEnabled {
		base = append(base, middleware.Metrics)
	}
	base = append(base,
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)
	r.Use(func(next http.Handler) http.Handler {
		return middleware.Chain(base...)(next)
	})

	health := NewHealthHandler(cfg.DB, cfg.Version)
	r.Get("/health", health.Health)
	r.Get("/ready", health.Ready)
	r.Get("/live", health.Live)

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	categories := NewCategoryHandler(cfg.Categories, cfg.Logger)
	activities := NewActivityHandler(cfg.Activities, cfg.Logger)
	logs := NewLogHandler(cfg.Logs, cfg.Logger)
	statistics := NewStatsHandler(cfg.Stats, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.TokenValidator))

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Post("/", categories.Create)
			r.Get("/{categoryID}", categories.Get)
			r.Patch("/{categoryID}", categories.Update)
			r.Post("/{categoryID}/benchmarks", categories.AddBenchmark)
			r.Delete("/{categoryID}/benchmarks/{benchmarkID}", categories.RemoveBenchmark)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activities.List)
			r.Post("/", activities.Create)
			r.Get("/{activityID}", activities.Get)
			r.Patch("/{activityID}", activities.Update)
			r.Delete("/{activityID}", activities.Delete)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", logs.List)
			r.Post("/", logs.Create)
			r.Get("/{logID}", logs.Get)
			r.Delete("/{logID}", logs.Delete)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/categories", statistics.ByCategory)
			r.Get("/periods", statistics.ByPeriod)
		})
	})

	return r
}
