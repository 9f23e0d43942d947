package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/planform"
	"github.com/abhisek/studyplan/internal/store"
)

func validForm() planform.Values {
	v := planform.Defaults()
	v.Syllabus = "  Physics: Kinematics\nChemistry: Bonds  "
	v.LearningStyle = "kinesthetic"
	v.StudyHours = "4-6"
	v.Pace = "fast"
	v.Duration = "14 days"
	return v
}

func newTestController(t *testing.T, svc api.Service) (*Controller, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	c := New(Options{
		Service:     svc,
		Plans:       s.PlanRepo(),
		DownloadDir: t.TempDir(),
		Logger:      zerolog.Nop(),
	})
	return c, s
}

func TestGenerate_ValidationBlocksRequest(t *testing.T) {
	mock := &api.MockService{}
	c, _ := newTestController(t, mock)

	v := validForm()
	v.Syllabus = "   "
	cmd, err := c.Generate(v)
	assert.Nil(t, cmd)

	var verr *planform.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, planform.FieldSyllabus, verr.Field)
	assert.Empty(t, mock.GenerateCalls)
}

func TestGenerate_SendsOneRequest(t *testing.T) {
	mock := &api.MockService{GenerateResult: &plan.GenerateResult{PlanID: "plan_1733212345"}}
	c, _ := newTestController(t, mock)

	cmd, err := c.Generate(validForm())
	require.NoError(t, err)
	msg := cmd().(GeneratedMsg)
	require.NoError(t, msg.Err)

	require.Len(t, mock.GenerateCalls, 1)
	req := mock.GenerateCalls[0]
	assert.Equal(t, "Physics: Kinematics\nChemistry: Bonds", req.SyllabusText)
	assert.Equal(t, 14, req.StudyDurationDays)
	assert.Contains(t, req.LearningPreferences, "kinesthetic learner")
}

func TestApplyGenerated_SetsStateAndRecords(t *testing.T) {
	res := &plan.GenerateResult{
		PlanID:  "plan_1733212345",
		Summary: plan.Summary{DurationDays: 14, PrimaryLearningStyle: "kinesthetic"},
	}
	c, s := newTestController(t, &api.MockService{GenerateResult: res})

	cmd, err := c.Generate(validForm())
	require.NoError(t, err)
	require.NoError(t, c.ApplyGenerated(cmd().(GeneratedMsg)))

	st := c.State()
	assert.True(t, st.HasPlan())
	assert.Equal(t, "plan_1733212345", st.PlanID)
	assert.Same(t, res, st.Result)

	plans, err := s.PlanRepo().RecentPlans(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "plan_1733212345", plans[0].PlanID)
	assert.Equal(t, "Physics: Kinematics Chemistry: Bonds", plans[0].SyllabusExcerpt)
}

func TestApplyGenerated_FailureLeavesStateEmpty(t *testing.T) {
	c, _ := newTestController(t, &api.MockService{})

	reqErr := &api.RequestError{Op: api.OpGeneratePlan, Status: 500, Message: "boom"}
	err := c.ApplyGenerated(GeneratedMsg{Err: reqErr})
	assert.ErrorIs(t, err, reqErr)
	assert.False(t, c.State().HasPlan())

	err = c.ApplyGenerated(GeneratedMsg{Result: &plan.GenerateResult{}})
	assert.Error(t, err)
	assert.False(t, c.State().HasPlan())
}

func TestFetchDetail_RequiresPlan(t *testing.T) {
	mock := &api.MockService{}
	c, _ := newTestController(t, mock)

	cmd, err := c.FetchDetail()
	assert.Nil(t, cmd)
	assert.ErrorIs(t, err, ErrNoPlan)
	assert.Empty(t, mock.GetPlanCalls)
}

func TestFetchDetail_RefetchesEveryTime(t *testing.T) {
	mock := &api.MockService{
		GenerateResult: &plan.GenerateResult{PlanID: "p1"},
		Detail:         &plan.Detail{Learning: &plan.LearningAnalysis{PrimaryStyle: "visual"}},
	}
	c, _ := newTestController(t, mock)
	require.NoError(t, c.ApplyGenerated(GeneratedMsg{Result: mock.GenerateResult}))

	for i := 0; i < 2; i++ {
		cmd, err := c.FetchDetail()
		require.NoError(t, err)
		msg := cmd().(DetailMsg)
		assert.Equal(t, "p1", msg.PlanID)
		assert.NoError(t, msg.Err)
	}
	assert.Equal(t, []string{"p1", "p1"}, mock.GetPlanCalls)
}

func TestDownloadPDF_RequiresPlan(t *testing.T) {
	mock := &api.MockService{}
	c, _ := newTestController(t, mock)

	cmd, err := c.DownloadPDF()
	assert.Nil(t, cmd)
	assert.ErrorIs(t, err, ErrNoPlan)
	assert.Empty(t, mock.PDFCalls)
}

func TestDownloadPDF_SavesFile(t *testing.T) {
	mock := &api.MockService{PDF: []byte("%PDF-1.4")}
	c, _ := newTestController(t, mock)
	require.NoError(t, c.ApplyGenerated(GeneratedMsg{Result: &plan.GenerateResult{PlanID: "plan_7"}}))

	cmd, err := c.DownloadPDF()
	require.NoError(t, err)
	msg := cmd().(DownloadedMsg)
	require.NoError(t, msg.Err)
	assert.Equal(t, "study_plan_plan_7.pdf", filepath.Base(msg.Path))
	assert.Equal(t, int64(8), msg.Bytes)

	data, err := os.ReadFile(msg.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestDownloadPDF_ErrorRemovesFile(t *testing.T) {
	mock := &api.MockService{PDFErr: &api.RequestError{Op: api.OpDownloadPDF, Status: 404, Message: "Plan not found"}}
	c, _ := newTestController(t, mock)
	require.NoError(t, c.ApplyGenerated(GeneratedMsg{Result: &plan.GenerateResult{PlanID: "plan_7"}}))

	cmd, err := c.DownloadPDF()
	require.NoError(t, err)
	msg := cmd().(DownloadedMsg)
	assert.EqualError(t, msg.Err, "Plan not found")

	_, statErr := os.Stat(msg.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReset(t *testing.T) {
	c, _ := newTestController(t, &api.MockService{})
	require.NoError(t, c.ApplyGenerated(GeneratedMsg{Result: &plan.GenerateResult{PlanID: "p1"}}))

	c.Reset()
	st := c.State()
	assert.Empty(t, st.PlanID)
	assert.Nil(t, st.Result)
}

func TestHealth(t *testing.T) {
	mock := &api.MockService{HealthResult: &api.Health{Status: "healthy"}}
	c := New(Options{Service: mock})

	msg := c.Health()().(HealthMsg)
	require.NoError(t, msg.Err)
	assert.Equal(t, "healthy", msg.Health.Status)
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "study_plan_a_b.pdf", PDFFileName("a/b"))
}
