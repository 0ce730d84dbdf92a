package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	AggregateByCategory(ctx context.Context, input stats.AggregateByCategoryInput) (*domain.CategoryAggregate, error)
	AggregateByPeriod(ctx context.Context, input stats.AggregateByPeriodInput) ([]domain.PeriodTotal, error)
}

// StatsHandler serves aggregation REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// ByCategory handles GET /api/v1/stats/categories with optional from/to
// query parameters.
func (h *StatsHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	var input stats.AggregateByCategoryInput

	q := r.URL.Query()
	var err error
	if input.From, err = parseDateParam(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateParam(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	report, err := h.svc.AggregateByCategory(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := categoryAggregateResponse{
		Categories: make([]categoryTotalResponse, 0, len(report.Categories)),
		GrandTotal: report.GrandTotal,
	}
	for _, t := range report.Categories {
		progress := make([]benchmarkProgressResponse, 0, len(t.Benchmarks))
		for _, b := range t.Benchmarks {
			progress = append(progress, benchmarkProgressResponse{
				ID:             b.ID.String(),
				Name:           b.Name,
				PointsRequired: b.PointsRequired,
				Achieved:       b.Achieved,
			})
		}
		out.Categories = append(out.Categories, categoryTotalResponse{
			CategoryID:   t.CategoryID.String(),
			CategoryName: t.CategoryName,
			Color:        t.Color,
			TotalPoints:  t.TotalPoints,
			LogCount:     t.LogCount,
			Benchmarks:   progress,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ByPeriod handles GET /api/v1/stats/periods with a bucket (day, week,
// month) and optional from/to query parameters.
func (h *StatsHandler) ByPeriod(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bucket := q.Get("bucket")
	if bucket == "" {
		bucket = domain.PeriodBucketDay.String()
	}

	input := stats.AggregateByPeriodInput{Bucket: domain.PeriodBucket(bucket)}

	var err error
	if input.From, err = parseDateParam(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateParam(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	totals, err := h.svc.AggregateByPeriod(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]periodTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, periodTotalResponse{
			PeriodStart: t.PeriodStart.Format(dateLayout),
			TotalPoints: t.TotalPoints,
			LogCount:    t.LogCount,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
