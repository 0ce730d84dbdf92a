package rest

import (
	"time"

	"github.com/antonvasilev/zenpoints-backend/internal/domain"
	"github.com/antonvasilev/zenpoints-backend/internal/service/activity"
)

const dateLayout = "2006-01-02"
const clockLayout = "15:04"

type benchmarkResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PointsRequired int       `json:"pointsRequired"`
	CreatedAt      time.Time `json:"createdAt"`
}

type categoryResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Color       string              `json:"color"`
	Description *string             `json:"description,omitempty"`
	Benchmarks  []benchmarkResponse `json:"benchmarks"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type focusTableDTO struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	Good   float64 `json:"good"`
	Zen    float64 `json:"zen"`
}

type activityResponse struct {
	ID            string        `json:"id"`
	CategoryID    string        `json:"categoryId"`
	Name          string        `json:"name"`
	Kind          string        `json:"kind"`
	ScoringMethod string        `json:"scoringMethod"`
	BasePoints    int           `json:"basePoints"`
	FocusTable    focusTableDTO `json:"focusTable"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type insightResponse struct {
	TotalPoints  int64      `json:"totalPoints"`
	LogCount     int        `json:"logCount"`
	LastLoggedAt *time.Time `json:"lastLoggedAt,omitempty"`
	RefreshedAt  time.Time  `json:"refreshedAt"`
}

type activityDetailResponse struct {
	activityResponse
	Insight *insightResponse `json:"insight,omitempty"`
}

type logResponse struct {
	ID           string    `json:"id"`
	ActivityID   string    `json:"activityId"`
	Date         string    `json:"date"`
	FocusLevel   *string   `json:"focusLevel,omitempty"`
	PointsEarned int       `json:"pointsEarned"`
	StartTime    *string   `json:"startTime,omitempty"`
	EndTime      *string   `json:"endTime,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type logDetailResponse struct {
	logResponse
	ActivityName  string `json:"activityName"`
	CategoryID    string `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor"`
}

type benchmarkProgressResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"pointsRequired"`
	Achieved       bool   `json:"achieved"`
}

type categoryTotalResponse struct {
	CategoryID   string                      `json:"categoryId"`
	CategoryName string                      `json:"categoryName"`
	Color        string                      `json:"color"`
	TotalPoints  int64                       `json:"totalPoints"`
	LogCount     int64                       `json:"logCount"`
	Benchmarks   []benchmarkProgressResponse `json:"benchmarks"`
}

type categoryAggregateResponse struct {
	Categories []categoryTotalResponse `json:"categories"`
	GrandTotal int64                   `json:"grandTotal"`
}

type periodTotalResponse struct {
	PeriodStart string `json:"periodStart"`
	TotalPoints int64  `json:"totalPoints"`
	LogCount    int64  `json:"logCount"`
}

func toBenchmarkResponses(benchmarks []domain.Benchmark) []benchmarkResponse {
	out := make([]benchmarkResponse, 0, len(benchmarks))
	for _, b := range benchmarks {
		out = append(out, benchmarkResponse{
			ID:             b.ID.String(),
			Name:           b.Name,
			PointsRequired: b.PointsRequired,
			CreatedAt:      b.CreatedAt,
		})
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Color:       c.Color,
		Description: c.Description,
		Benchmarks:  toBenchmarkResponses(c.Benchmarks),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:            a.ID.String(),
		CategoryID:    a.CategoryID.String(),
		Name:          a.Name,
		Kind:          a.Kind.String(),
		ScoringMethod: a.ScoringMethod.String(),
		BasePoints:    a.BasePoints,
		FocusTable: focusTableDTO{
			Low:    a.FocusTable.Low,
			Medium: a.FocusTable.Medium,
			Good:   a.FocusTable.Good,
			Zen:    a.FocusTable.Zen,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toActivityDetailResponse(a *activity.ActivityWithInsight) activityDetailResponse {
	resp := activityDetailResponse{activityResponse: toActivityResponse(a.Activity)}
	if a.Insight != nil {
		resp.Insight = &insightResponse{
			TotalPoints:  a.Insight.TotalPoints,
			LogCount:     a.Insight.LogCount,
			LastLoggedAt: a.Insight.LastLoggedAt,
			RefreshedAt:  a.Insight.RefreshedAt,
		}
	}
	return resp
}

func toLogResponse(l *domain.LoggedActivity) logResponse {
	return logResponse{
		ID:           l.ID.String(),
		ActivityID:   l.ActivityID.String(),
		Date:         l.Date.Format(dateLayout),
		FocusLevel:   l.FocusLevel,
		PointsEarned: l.PointsEarned,
		StartTime:    formatClock(l.StartTime),
		EndTime:      formatClock(l.EndTime),
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
	}
}

func toLogDetailResponse(l *domain.LoggedActivityDetail) logDetailResponse {
	return logDetailResponse{
		logResponse:   toLogResponse(&l.LoggedActivity),
		ActivityName:  l.ActivityName,
		CategoryID:    l.CategoryID.String(),
		CategoryName:  l.CategoryName,
		CategoryColor: l.CategoryColor,
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(clockLayout)
	return &s
}

func (d *focusTableDTO) toDomain() *domain.FocusTable {
	if d == nil {
		return nil
	}
	return &domain.FocusTable{Low: d.Low, Medium: d.Medium, Good: d.Good, Zen: d.Zen}
}
