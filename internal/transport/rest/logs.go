package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/internal/service/activitylog"
)

// logService defines the minimal interface needed by LogHandler.
type logService interface {
	LogActivity(ctx context.Context, input activitylog.LogActivityInput) (*domain.LoggedActivityDetail, error)
	GetLog(ctx context.Context, logID uuid.UUID) (*domain.LoggedActivityDetail, error)
	ListLogs(ctx context.Context, input activitylog.ListLogsInput) ([]*domain.LoggedActivityDetail, error)
	DeleteLog(ctx context.Context, logID uuid.UUID) error
}

// LogHandler serves logged-activity REST endpoints.
type LogHandler struct {
	svc logService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc logService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "log")}
}

type logActivityRequest struct {
	ActivityID uuid.UUID `json:"activityId"`
	Date       string    `json:"date"`

	// FocusLevel is deliberately loose: clients have sent numbers and
	// booleans here, and those are scored with the neutral fallback
	// instead of being rejected.
	FocusLevel any `json:"focusLevel"`

	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     *string `json:"notes"`
}

// Create handles POST /api/v1/logs.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	created, err := h.svc.LogActivity(r.Context(), activitylog.LogActivityInput{
		ActivityID: req.ActivityID,
		Date:       date,
		FocusLevel: req.FocusLevel,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogDetailResponse(created))
}

// Get handles GET /api/v1/logs/{logID}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	logID, err := uuid.Parse(chi.URLParam(r, "logID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	found, err := h.svc.GetLog(r.Context(), logID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogDetailResponse(found))
}

// List handles GET /api/v1/logs with optional category_id, activity_id,
// focus_level, from, to, limit and offset query parameters.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	var input activitylog.ListLogsInput

	q := r.URL.Query()
	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		input.CategoryID = &id
	}
	if raw := q.Get("activity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid activity_id")
			return
		}
		input.ActivityID = &id
	}
	if raw := q.Get("focus_level"); raw != "" {
		input.FocusLevel = &raw
	}

	var err error
	if input.From, err = parseDateParam(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateParam(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}
	if input.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if input.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	logs, err := h.svc.ListLogs(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]logDetailResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogDetailResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/logs/{logID}.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logID, err := uuid.Parse(chi.URLParam(r, "logID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	if err := h.svc.DeleteLog(r.Context(), logID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
