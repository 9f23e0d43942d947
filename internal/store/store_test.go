package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"plan_records", "request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestSavePlanAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plans, err := repo.RecentPlans(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected no plans, got %d", len(plans))
	}

	base := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"plan_a", "plan_b", "plan_c"} {
		err := repo.SavePlan(ctx, PlanRecord{
			PlanID:        id,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
			DurationDays:  30 + i,
			TotalHours:    "120",
			LearningStyle: "visual",
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	plans, err = repo.RecentPlans(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len = %d, want 2", len(plans))
	}
	if plans[0].PlanID != "plan_c" || plans[1].PlanID != "plan_b" {
		t.Errorf("order = [%s %s], want [plan_c plan_b]", plans[0].PlanID, plans[1].PlanID)
	}
	if plans[0].DurationDays != 32 {
		t.Errorf("duration = %d, want 32", plans[0].DurationDays)
	}
	if !plans[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("created_at = %v", plans[0].CreatedAt)
	}

	all, err := repo.RecentPlans(ctx, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestSavePlanReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	if err := repo.SavePlan(ctx, PlanRecord{PlanID: "p1", DurationDays: 7}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SavePlan(ctx, PlanRecord{PlanID: "p1", DurationDays: 14}); err != nil {
		t.Fatalf("save again: %v", err)
	}

	plans, err := repo.RecentPlans(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(plans) != 1 || plans[0].DurationDays != 14 {
		t.Errorf("plans = %+v, want single record with 14 days", plans)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestRequestEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []RequestEventData{
		{Op: "generate-plan", PlanID: "p1", Status: 200, LatencyMs: 100, Success: true},
		{Op: "generate-plan", Status: 400, LatencyMs: 20, ErrorMessage: "Syllabus text is required"},
		{Op: "get-plan", PlanID: "p1", Status: 200, LatencyMs: 30, Success: true},
	}
	for _, ev := range events {
		if err := repo.AppendRequestEvent(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.RecentRequestEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].Op != "get-plan" || recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("unexpected order: %+v", recent)
	}
	if recent[1].ErrorMessage != "Syllabus text is required" {
		t.Errorf("error message = %q", recent[1].ErrorMessage)
	}

	stats, err := repo.RequestStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	gen := stats[0]
	if gen.Op != "generate-plan" || gen.Total != 2 || gen.Failures != 1 {
		t.Errorf("generate-plan stats = %+v", gen)
	}
	if gen.AvgLatencyMs != 60 {
		t.Errorf("avg latency = %v, want 60", gen.AvgLatencyMs)
	}
	if stats[1].Op != "get-plan" || stats[1].Failures != 0 {
		t.Errorf("get-plan stats = %+v", stats[1])
	}
}
