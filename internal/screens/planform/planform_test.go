package planform

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/notify"
	"github.com/abhisek/studyplan/internal/plan"
	form "github.com/abhisek/studyplan/internal/planform"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
)

// collect runs cmd and flattens batches into their messages.
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

func newTestForm(mock *api.MockService) (*FormScreen, *controller.Controller) {
	ctrl := controller.New(controller.Options{Service: mock, Logger: zerolog.Nop()})
	s := New(ctrl)
	s.Init()
	return s, ctrl
}

func fill(s *FormScreen) {
	s.syllabus.SetValue("Physics: Kinematics, Dynamics")
	s.style.Select("visual")
	s.hours.Select("2-4")
	s.pace.Select("moderate")
}

func ctrlS() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

func TestFormScreen_Defaults(t *testing.T) {
	s, _ := newTestForm(&api.MockService{})
	assert.Equal(t, form.Defaults(), s.Values())
	assert.Equal(t, screen.PlanForm, s.ID())
}

func TestFormScreen_EmptySyllabusSendsNothing(t *testing.T) {
	mock := &api.MockService{}
	s, _ := newTestForm(mock)
	fill(s)
	s.syllabus.SetValue("   ")

	_, cmd := s.Update(ctrlS())
	msgs := collect(cmd)

	show, ok := find[notify.ShowMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, show.Level)
	assert.Equal(t, "Please paste your syllabus text", show.Text)

	_, sent := find[controller.GeneratedMsg](msgs)
	assert.False(t, sent)
	assert.Empty(t, mock.GenerateCalls)
	assert.False(t, s.Loading())
	assert.Empty(t, s.Status())
}

func TestFormScreen_MissingPaceFocusesField(t *testing.T) {
	s, _ := newTestForm(&api.MockService{})
	fill(s)
	s.pace.Select("")

	_, cmd := s.Update(ctrlS())
	show, ok := find[notify.ShowMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Please select your learning pace", show.Text)
	assert.Equal(t, fieldPace, s.focus)
}

func TestFormScreen_SubmitSuccess(t *testing.T) {
	mock := &api.MockService{GenerateResult: &plan.GenerateResult{PlanID: "plan_1733212345"}}
	s, ctrl := newTestForm(mock)
	fill(s)
	s.duration.SetValue("21")

	_, cmd := s.Update(ctrlS())
	assert.True(t, s.Loading())
	assert.NotEmpty(t, s.Status())

	generated, ok := find[controller.GeneratedMsg](collect(cmd))
	require.True(t, ok)
	require.Len(t, mock.GenerateCalls, 1)
	assert.Equal(t, 21, mock.GenerateCalls[0].StudyDurationDays)

	_, cmd = s.Update(generated)
	assert.False(t, s.Loading())
	assert.Empty(t, s.Status())
	assert.True(t, ctrl.State().HasPlan())

	msgs := collect(cmd)
	nav, ok := find[router.NavigateMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, screen.Results, nav.To)
	show, ok := find[notify.ShowMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, notify.LevelSuccess, show.Level)
}

func TestFormScreen_SubmitFromButton(t *testing.T) {
	mock := &api.MockService{GenerateResult: &plan.GenerateResult{PlanID: "p"}}
	s, _ := newTestForm(mock)
	fill(s)

	// shift+tab from the first field wraps to the submit button.
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, fieldSubmit, s.focus)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := find[controller.GeneratedMsg](collect(cmd))
	assert.True(t, ok)
	assert.Len(t, mock.GenerateCalls, 1)
}

func TestFormScreen_ServerError(t *testing.T) {
	mock := &api.MockService{GenerateErr: &api.RequestError{Op: api.OpGeneratePlan, Status: 400, Message: "Syllabus text is required"}}
	s, ctrl := newTestForm(mock)
	fill(s)

	_, cmd := s.Update(ctrlS())
	generated, ok := find[controller.GeneratedMsg](collect(cmd))
	require.True(t, ok)

	_, cmd = s.Update(generated)
	assert.False(t, s.Loading())
	assert.Equal(t, "Syllabus text is required", s.Status())
	assert.False(t, ctrl.State().HasPlan())

	msgs := collect(cmd)
	show, ok := find[notify.ShowMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, show.Level)
	assert.Equal(t, "Syllabus text is required", show.Text)
	_, navigated := find[router.NavigateMsg](msgs)
	assert.False(t, navigated)
}

func TestFormScreen_ChoiceWithArrows(t *testing.T) {
	s, _ := newTestForm(&api.MockService{})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, fieldStyle, s.focus)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "visual", s.Values().LearningStyle)
}

func TestFormScreen_Reset(t *testing.T) {
	s, _ := newTestForm(&api.MockService{})
	fill(s)
	s.preferences.SetValue("more quizzes")
	s.duration.SetValue("7")
	s.loading = true
	s.status = "Generating"

	s.Reset()
	assert.Equal(t, form.Defaults(), s.Values())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Status())
	assert.Equal(t, fieldSyllabus, s.focus)
}

func TestFormScreen_View(t *testing.T) {
	s, _ := newTestForm(&api.MockService{})
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := s.View(100, 40)
	assert.Contains(t, view, "Syllabus")
	assert.Contains(t, view, "Generate Study Plan")
}
