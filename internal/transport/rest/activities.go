package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	CreateActivity(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error)
	GetActivity(ctx context.Context, activityID uuid.UUID) (*activity.ActivityWithInsight, error)
	ListActivities(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Activity, error)
	DeleteActivity(ctx context.Context, input activity.DeleteActivityInput) error
}

// ActivityHandler serves activity REST endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type createActivityRequest struct {
	CategoryID    uuid.UUID      `json:"categoryId"`
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	ScoringMethod string         `json:"scoringMethod"`
	BasePoints    int            `json:"basePoints"`
	FocusTable    *focusTableDTO `json:"focusTable"`
}

type updateActivityRequest struct {
	CategoryID *uuid.UUID     `json:"categoryId"`
	Name       *string        `json:"name"`
	BasePoints *int           `json:"basePoints"`
	FocusTable *focusTableDTO `json:"focusTable"`
}

// Create handles POST /api/v1/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateActivity(r.Context(), activity.CreateActivityInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Kind:          domain.ActivityKind(req.Kind),
		ScoringMethod: domain.ScoringMethod(req.ScoringMethod),
		BasePoints:    req.BasePoints,
		FocusTable:    req.FocusTable.toDomain(),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(created))
}

// Get handles GET /api/v1/activities/{activityID}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	found, err := h.svc.GetActivity(r.Context(), activityID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityDetailResponse(found))
}

// List handles GET /api/v1/activities with an optional category_id query
// filter.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		categoryID = &id
	}

	activities, err := h.svc.ListActivities(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/activities/{activityID}.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateActivity(r.Context(), activity.UpdateActivityInput{
		ActivityID: activityID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		BasePoints: req.BasePoints,
		FocusTable: req.FocusTable.toDomain(),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(updated))
}

// Delete handles DELETE /api/v1/activities/{activityID}. The cascade query
// flag removes the activity's logged history with it; without the flag the
// delete is refused while history exists.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	cascade := r.URL.Query().Get("cascade") == "true"

	if err := h.svc.DeleteActivity(r.Context(), activity.DeleteActivityInput{
		ActivityID: activityID,
		Cascade:    cascade,
	}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
