package api

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordingService_RecordsOutcomes(t *testing.T) {
	s := openStore(t)
	mock := &MockService{
		GenerateResult: &plan.GenerateResult{PlanID: "plan_9"},
		DetailErr:      &RequestError{Op: OpGetPlan, Status: 404, Message: "Plan not found"},
	}
	svc := WithRecording(mock, s.EventRepo(), zerolog.Nop())
	ctx := context.Background()

	res, err := svc.GeneratePlan(ctx, GenerateRequest{SyllabusText: "x"})
	require.NoError(t, err)
	assert.Equal(t, "plan_9", res.PlanID)

	_, err = svc.GetPlan(ctx, "plan_9")
	require.Error(t, err)

	events, err := s.EventRepo().RecentRequestEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, OpGetPlan, events[0].Op)
	assert.False(t, events[0].Success)
	assert.Equal(t, 404, events[0].Status)
	assert.Equal(t, "Plan not found", events[0].ErrorMessage)

	assert.Equal(t, OpGeneratePlan, events[1].Op)
	assert.True(t, events[1].Success)
	assert.Equal(t, "plan_9", events[1].PlanID)
}

func TestRecordingService_NilRepo(t *testing.T) {
	mock := &MockService{HealthErr: errors.New("dial tcp: refused")}
	svc := WithRecording(mock, nil, zerolog.Nop())

	_, err := svc.Health(context.Background())
	assert.EqualError(t, err, "dial tcp: refused")
	assert.Equal(t, 1, mock.HealthCalls)
}
