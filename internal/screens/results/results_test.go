package results

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/notify"
	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/router"
)

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestResults(t *testing.T, mock *api.MockService, withPlan bool) (*ResultsScreen, *controller.Controller) {
	t.Helper()
	ctrl := controller.New(controller.Options{
		Service:     mock,
		DownloadDir: t.TempDir(),
		Logger:      zerolog.Nop(),
	})
	if withPlan {
		require.NoError(t, ctrl.ApplyGenerated(controller.GeneratedMsg{
			Result: &plan.GenerateResult{PlanID: "plan_1733212345", Summary: plan.Summary{DurationDays: 30}},
		}))
	}
	s := New(ctrl)
	s.Init()
	return s, ctrl
}

func TestResultsScreen_SummaryCollapsed(t *testing.T) {
	s, _ := newTestResults(t, &api.MockService{}, true)
	view := s.View(100, 40)
	assert.Contains(t, view, "30 days")
	assert.Contains(t, view, "Varies")
	assert.Contains(t, view, "Mixed")
	assert.Contains(t, view, "plan_1733212...")
	assert.False(t, s.Open())
}

func TestResultsScreen_ToggleFetchesEveryOpen(t *testing.T) {
	mock := &api.MockService{Detail: &plan.Detail{Learning: &plan.LearningAnalysis{PrimaryStyle: "visual"}}}
	s, _ := newTestResults(t, mock, true)

	for i := 0; i < 2; i++ {
		_, cmd := s.Update(keyPress('d'))
		require.True(t, s.Open())
		detail, ok := find[controller.DetailMsg](collect(cmd))
		require.True(t, ok)
		s.Update(detail)
		require.Len(t, s.Sections(), 1)

		// Closing only hides the panel.
		_, cmd = s.Update(keyPress('d'))
		assert.Nil(t, cmd)
		assert.False(t, s.Open())
	}
	assert.Len(t, mock.GetPlanCalls, 2)
}

func TestResultsScreen_DetailRendersSections(t *testing.T) {
	mock := &api.MockService{Detail: &plan.Detail{Learning: &plan.LearningAnalysis{PrimaryStyle: "kinesthetic"}}}
	s, _ := newTestResults(t, mock, true)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	detail, _ := find[controller.DetailMsg](collect(cmd))
	s.Update(detail)

	assert.Contains(t, s.View(100, 40), "Learning Analysis")
}

func TestResultsScreen_DetailError(t *testing.T) {
	mock := &api.MockService{DetailErr: &api.RequestError{Op: api.OpGetPlan, Status: 404, Message: "Plan not found"}}
	s, _ := newTestResults(t, mock, true)

	_, cmd := s.Update(keyPress('d'))
	detail, ok := find[controller.DetailMsg](collect(cmd))
	require.True(t, ok)

	_, cmd = s.Update(detail)
	show, ok := find[notify.ShowMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, show.Level)
	assert.Contains(t, show.Text, "Plan not found")
	assert.Contains(t, s.View(100, 40), "Plan not found")
}

func TestResultsScreen_EmptyDetailFallback(t *testing.T) {
	mock := &api.MockService{Detail: &plan.Detail{}}
	s, _ := newTestResults(t, mock, true)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := s.Update(keyPress('d'))
	detail, _ := find[controller.DetailMsg](collect(cmd))
	s.Update(detail)

	assert.Empty(t, s.Sections())
	assert.Contains(t, s.View(100, 40), "No detailed plan data")
}

func TestResultsScreen_StaleDetailIgnored(t *testing.T) {
	s, _ := newTestResults(t, &api.MockService{}, true)
	_, _ = s.Update(keyPress('d'))

	s.Update(controller.DetailMsg{PlanID: "other", Detail: &plan.Detail{Learning: &plan.LearningAnalysis{PrimaryStyle: "x"}}})
	assert.Empty(t, s.Sections())
}

func TestResultsScreen_NoPlan(t *testing.T) {
	mock := &api.MockService{}
	s, _ := newTestResults(t, mock, false)

	_, cmd := s.Update(keyPress('d'))
	show, ok := find[notify.ShowMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, show.Level)
	assert.False(t, s.Open())
	assert.Empty(t, mock.GetPlanCalls)

	_, cmd = s.Update(keyPress('p'))
	msgs := collect(cmd)
	show, ok = find[notify.ShowMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, show.Level)
	_, downloaded := find[controller.DownloadedMsg](msgs)
	assert.False(t, downloaded)
	assert.Empty(t, mock.PDFCalls)
}

func TestResultsScreen_DownloadPDF(t *testing.T) {
	mock := &api.MockService{PDF: []byte("%PDF-1.4")}
	s, _ := newTestResults(t, mock, true)

	_, cmd := s.Update(keyPress('p'))
	msgs := collect(cmd)
	info, ok := find[notify.ShowMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, notify.LevelInfo, info.Level)

	done, ok := find[controller.DownloadedMsg](msgs)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, "study_plan_plan_1733212345.pdf", filepath.Base(done.Path))
	_, err := os.Stat(done.Path)
	assert.NoError(t, err)

	_, cmd = s.Update(done)
	show, _ := find[notify.ShowMsg](collect(cmd))
	assert.Equal(t, notify.LevelSuccess, show.Level)
}

func TestResultsScreen_NewPlanGoesHome(t *testing.T) {
	s, _ := newTestResults(t, &api.MockService{}, true)
	_, cmd := s.Update(keyPress('n'))
	require.NotNil(t, cmd)
	assert.Equal(t, router.HomeMsg{}, cmd())
}

func TestResultsScreen_ResetCollapses(t *testing.T) {
	s, _ := newTestResults(t, &api.MockService{Detail: &plan.Detail{}}, true)
	s.Update(keyPress('d'))
	require.True(t, s.Open())

	s.Reset()
	assert.False(t, s.Open())
	assert.Nil(t, s.Sections())
}
