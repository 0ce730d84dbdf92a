package activitylog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/internal/observability"
	"github.com/antonvasilev/zenpoints-backend/pkg/ctxutil"
)

// LogActivity records a completion of one of the user's activities. Points
// are computed here, once, from the activity's current scoring rules and
// stored on the row. The returned record carries the parent activity and
// category display fields.
func (s *Service) LogActivity(ctx context.Context, input LogActivityInput) (*domain.LoggedActivityDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	notes := trimOrNil(input.Notes)
	if notes != nil && len(*notes) > s.cfg.MaxNotesLength {
		return nil, domain.NewValidationError("notes", fmt.Sprintf("max %d characters", s.cfg.MaxNotesLength))
	}

	// Ownership check doubles as the scoring-rule fetch. An activity of
	// another user is indistinguishable from a missing one.
	activity, err := s.activities.GetByID(ctx, userID, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	var startTime, endTime *time.Time
	if input.StartTime != nil {
		start, err := ParseClock(*input.StartTime)
		if err != nil {
			return nil, domain.NewValidationError("start_time", err.Error())
		}
		startTime = &start
	}
	if input.EndTime != nil {
		end, err := ParseClock(*input.EndTime)
		if err != nil {
			return nil, domain.NewValidationError("end_time", err.Error())
		}
		endTime = &end
	}

	// A one-sided time pair is stored as given; duration stays undefined.
	var durationMinutes *int
	if startTime != nil && endTime != nil {
		minutes := MinutesBetween(*startTime, *endTime)
		durationMinutes = &minutes
	}

	category, err := s.categories.GetByID(ctx, userID, activity.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	focusLabel := domain.NormalizeFocusLabel(input.FocusLevel)
	points := CalculatePoints(activity, focusLabel, durationMinutes)

	created, err := s.logs.Create(ctx, &domain.LoggedActivity{
		ActivityID:   activity.ID,
		Date:         input.Date,
		FocusLevel:   focusLabel,
		PointsEarned: points,
		StartTime:    startTime,
		EndTime:      endTime,
		Notes:        notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}

	observability.RecordLogRecorded(activity.Kind.String(), created.PointsEarned)

	s.log.InfoContext(ctx, "activity logged",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activity.ID.String()),
		slog.String("log_id", created.ID.String()),
		slog.Int("points_earned", created.PointsEarned),
	)

	return &domain.LoggedActivityDetail{
		LoggedActivity: *created,
		ActivityName:   activity.Name,
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		CategoryColor:  category.Color,
	}, nil
}
