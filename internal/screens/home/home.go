package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

// backendStatus is what the home screen knows about the backend.
type backendStatus int

const (
	statusChecking backendStatus = iota
	statusHealthy
	statusDown
)

// HomeScreen is the landing screen.
type HomeScreen struct {
	ctrl    *controller.Controller
	menu    components.Menu
	status  backendStatus
	service string
	detail  string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resetter        = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates the home screen. Health checks go through ctrl.
func New(ctrl *controller.Controller) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START PLANNING", Action: func() tea.Cmd {
			return router.Navigate(screen.PlanForm)
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{
		ctrl: ctrl,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) ID() screen.ID { return screen.Home }

// Init refreshes the backend status every time home becomes active.
func (h *HomeScreen) Init() tea.Cmd {
	h.status = statusChecking
	return h.ctrl.Health()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(controller.HealthMsg); ok {
		h.applyHealth(msg)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) applyHealth(msg controller.HealthMsg) {
	if msg.Err != nil || msg.Health == nil {
		h.status = statusDown
		h.service = ""
		if msg.Err != nil {
			h.detail = msg.Err.Error()
		}
		return
	}
	h.status = statusDown
	if msg.Health.Status == "healthy" {
		h.status = statusHealthy
	}
	h.service = msg.Health.Service
	h.detail = msg.Health.LLM
}

// Reset returns the menu to its first entry.
func (h *HomeScreen) Reset() {
	h.menu.Reset()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}
