package home

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
)

func newTestHome(mock *api.MockService) *HomeScreen {
	return New(controller.New(controller.Options{Service: mock, Logger: zerolog.Nop()}))
}

func TestHomeScreen_StartNavigatesToForm(t *testing.T) {
	h := newTestHome(&api.MockService{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{To: screen.PlanForm}, cmd())
}

func TestHomeScreen_QuitItem(t *testing.T) {
	h := newTestHome(&api.MockService{})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHomeScreen_HealthStatus(t *testing.T) {
	mock := &api.MockService{HealthResult: &api.Health{Status: "healthy", Service: "Study Plan Generator"}}
	h := newTestHome(mock)

	cmd := h.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, h.View(100, 30), "Checking backend")

	h.Update(cmd())
	assert.Equal(t, 1, mock.HealthCalls)
	assert.Contains(t, h.View(100, 30), "Backend online")

	h.Update(controller.HealthMsg{Err: errors.New("connection refused")})
	assert.Contains(t, h.View(100, 30), "Backend unavailable")
}

func TestHomeScreen_Reset(t *testing.T) {
	h := newTestHome(&api.MockService{})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, h.menu.Selected)

	h.Reset()
	assert.Equal(t, 0, h.menu.Selected)
}
