package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/abhisek/studyplan/ent"
	"github.com/abhisek/studyplan/ent/requestevent"
)

// sequenceCounter hands out a monotonic sequence shared by every event so
// ordering survives identical timestamps. The mutex serializes within the
// process; the RETURNING clause makes the increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendRequestEvent(ctx context.Context, data RequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.RequestEvent.Create().
		SetSequence(seqNum).
		SetOp(data.Op).
		SetPlanID(data.PlanID).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRequestEvents(ctx context.Context, limit int) ([]RequestEvent, error) {
	query := r.client.RequestEvent.Query().
		Order(ent.Desc(requestevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}

	events := make([]RequestEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, RequestEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			RequestEventData: RequestEventData{
				Op:           e.Op,
				PlanID:       e.PlanID,
				Status:       e.Status,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return events, nil
}

func (r *eventRepo) RequestStats(ctx context.Context) ([]OpStats, error) {
	var totals []struct {
		Op    string  `json:"op"`
		Count int     `json:"count"`
		Avg   float64 `json:"avg"`
	}
	err := r.client.RequestEvent.Query().
		GroupBy(requestevent.FieldOp).
		Aggregate(ent.Count(), ent.Mean(requestevent.FieldLatencyMs)).
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("query request stats: %w", err)
	}

	var failed []struct {
		Op    string `json:"op"`
		Count int    `json:"count"`
	}
	err = r.client.RequestEvent.Query().
		Where(requestevent.Success(false)).
		GroupBy(requestevent.FieldOp).
		Aggregate(ent.Count()).
		Scan(ctx, &failed)
	if err != nil {
		return nil, fmt.Errorf("query request failures: %w", err)
	}
	failures := make(map[string]int, len(failed))
	for _, f := range failed {
		failures[f.Op] = f.Count
	}

	stats := make([]OpStats, 0, len(totals))
	for _, t := range totals {
		stats = append(stats, OpStats{
			Op:           t.Op,
			Total:        t.Count,
			Failures:     failures[t.Op],
			AvgLatencyMs: t.Avg,
		})
	}
	slices.SortFunc(stats, func(a, b OpStats) int { return strings.Compare(a.Op, b.Op) })
	return stats, nil
}
