package app

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
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
)

func newTestApp(t *testing.T) (AppModel, *controller.Controller) {
	t.Helper()
	ctrl := controller.New(controller.Options{
		Service:     &api.MockService{HealthResult: &api.Health{Status: "healthy"}},
		DownloadDir: t.TempDir(),
		Logger:      zerolog.Nop(),
	})
	m := newAppModel(Options{Controller: ctrl, Logger: zerolog.Nop()})
	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, ctrl
}

func step(m AppModel, msg tea.Msg) AppModel {
	updated, _ := m.Update(msg)
	return updated.(AppModel)
}

func TestApp_StartsHome(t *testing.T) {
	m, _ := newTestApp(t)
	assert.Equal(t, screen.Home, m.router.ActiveID())
	assert.NotNil(t, m.Init())
}

func TestApp_CtrlCQuits(t *testing.T) {
	m, _ := newTestApp(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_EscOnHomeIsNoop(t *testing.T) {
	m, _ := newTestApp(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestApp_EscFromFormGoesHome(t *testing.T) {
	m, _ := newTestApp(t)
	m = step(m, router.NavigateMsg{To: screen.PlanForm})
	require.Equal(t, screen.PlanForm, m.router.ActiveID())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, router.HomeMsg{}, msg)

	m = step(m, msg)
	assert.Equal(t, screen.Home, m.router.ActiveID())
}

func TestApp_HomeClearsSession(t *testing.T) {
	m, ctrl := newTestApp(t)
	require.NoError(t, ctrl.ApplyGenerated(controller.GeneratedMsg{
		Result: &plan.GenerateResult{PlanID: "plan_1733212345", Summary: plan.Summary{DurationDays: 30}},
	}))

	m = step(m, router.NavigateMsg{To: screen.PlanForm})
	m = step(m, router.NavigateMsg{To: screen.Results})
	require.Equal(t, screen.Results, m.router.ActiveID())
	assert.Contains(t, m.render(), "plan_1733212...")

	m = step(m, router.HomeMsg{})
	assert.Equal(t, screen.Home, m.router.ActiveID())
	assert.False(t, ctrl.State().HasPlan())
	assert.Nil(t, ctrl.State().Result)
	assert.Empty(t, ctrl.State().PlanID)
}

func TestApp_InvalidTransitionIgnored(t *testing.T) {
	m, _ := newTestApp(t)
	updated, cmd := m.Update(router.NavigateMsg{To: screen.Results})
	assert.Nil(t, cmd)
	assert.Equal(t, screen.Home, updated.(AppModel).router.ActiveID())
}

func TestApp_BannerShownAndReplaced(t *testing.T) {
	m, _ := newTestApp(t)

	updated, cmd := m.Update(notify.ShowMsg{Text: "first", Level: notify.LevelInfo})
	m = updated.(AppModel)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.render(), "first")

	m = step(m, notify.ShowMsg{Text: "second", Level: notify.LevelError})
	out := m.render()
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "first")
}

func TestApp_TooSmall(t *testing.T) {
	m, _ := newTestApp(t)
	m = step(m, tea.WindowSizeMsg{Width: 70, Height: 10})
	assert.Contains(t, m.render(), "bigger window")
}
