package store

import (
	"context"
	"time"
)

// PlanRecord is a locally remembered plan generation.
type PlanRecord struct {
	PlanID          string
	CreatedAt       time.Time
	DurationDays    int
	TotalHours      string
	LearningStyle   string
	SyllabusExcerpt string
}

// PlanRepo keeps the history of generated plans.
type PlanRepo interface {
	// SavePlan inserts or replaces the record for rec.PlanID.
	SavePlan(ctx context.Context, rec PlanRecord) error

	// RecentPlans returns up to limit records, newest first. A limit of
	// zero or less returns every record.
	RecentPlans(ctx context.Context, limit int) ([]PlanRecord, error)
}

// RequestEventData captures one backend call.
type RequestEventData struct {
	Op           string
	PlanID       string
	Status       int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestEvent is a stored RequestEventData.
type RequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RequestEventData
}

// OpStats aggregates request events for one operation.
type OpStats struct {
	Op           string
	Total        int
	Failures     int
	AvgLatencyMs float64
}

// EventRepo provides append and query access to request events.
type EventRepo interface {
	AppendRequestEvent(ctx context.Context, data RequestEventData) error

	// RecentRequestEvents returns up to limit events, newest first.
	RecentRequestEvents(ctx context.Context, limit int) ([]RequestEvent, error)

	// RequestStats aggregates all events by operation, ordered by op name.
	RequestStats(ctx context.Context) ([]OpStats, error)
}
