package results

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/notify"
	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

const (
	noPlanNotice       = "No plan available. Please generate a plan first."
	noPlanPDFNotice    = "No plan available to download"
	downloadingNotice  = "Downloading PDF..."
	detailFailedNotice = "Failed to load plan details"
)

// ResultsScreen shows the generated plan summary and the on-demand detail
// panel.
type ResultsScreen struct {
	ctrl *controller.Controller

	open      bool
	loading   bool
	detail    *plan.Detail
	detailErr string

	spinner  spinner.Model
	viewport viewport.Model
	width    int
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.Resetter        = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
)

// New creates the results screen. It reads the active plan from ctrl.
func New(ctrl *controller.Controller) *ResultsScreen {
	return &ResultsScreen{
		ctrl:     ctrl,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(10)),
		width:    80,
	}
}

func (s *ResultsScreen) ID() screen.ID { return screen.Results }

// Init collapses the detail panel each time the screen becomes active.
func (s *ResultsScreen) Init() tea.Cmd {
	s.Reset()
	return nil
}

// Reset collapses and clears the detail panel.
func (s *ResultsScreen) Reset() {
	s.open = false
	s.loading = false
	s.detail = nil
	s.detailErr = ""
	s.viewport.SetContent("")
	s.viewport.GotoTop()
}

// Open reports whether the detail panel is expanded.
func (s *ResultsScreen) Open() bool {
	return s.open
}

// Sections returns the rendered detail sections, or nil when none are loaded.
func (s *ResultsScreen) Sections() []Section {
	return BuildSections(s.detail)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.refreshContent()
		return s, nil

	case controller.DetailMsg:
		return s, s.handleDetail(msg)

	case controller.DownloadedMsg:
		if msg.Err != nil {
			return s, notify.Error(msg.Err.Error())
		}
		return s, notify.Success(fmt.Sprintf("PDF saved to %s", msg.Path))

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "d", "enter":
			return s, s.toggleDetail()
		case "p":
			return s, s.downloadPDF()
		case "n":
			return s, router.GoHome()
		}
	}

	if s.open && s.detail != nil {
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	return s, nil
}

// toggleDetail closes an open panel, or opens it with a fresh fetch.
func (s *ResultsScreen) toggleDetail() tea.Cmd {
	if s.open {
		s.open = false
		s.loading = false
		return nil
	}

	cmd, err := s.ctrl.FetchDetail()
	if err != nil {
		if errors.Is(err, controller.ErrNoPlan) {
			return notify.Error(noPlanNotice)
		}
		return notify.Error(err.Error())
	}

	s.open = true
	s.loading = true
	s.detail = nil
	s.detailErr = ""
	return tea.Batch(s.spinner.Tick, cmd)
}

func (s *ResultsScreen) handleDetail(msg controller.DetailMsg) tea.Cmd {
	// Replies for a closed panel or a different plan are stale.
	if !s.open || msg.PlanID != s.ctrl.State().PlanID {
		return nil
	}
	s.loading = false

	if msg.Err != nil {
		s.detailErr = msg.Err.Error()
		return notify.Error(detailFailedNotice + ": " + msg.Err.Error())
	}

	s.detail = msg.Detail
	if s.detail == nil {
		s.detail = &plan.Detail{}
	}
	s.refreshContent()
	s.viewport.GotoTop()
	return nil
}

func (s *ResultsScreen) refreshContent() {
	if s.detail == nil {
		return
	}
	s.viewport.SetContent(RenderSections(s.Sections(), components.ContentWidth(s.width)-4))
}

func (s *ResultsScreen) downloadPDF() tea.Cmd {
	cmd, err := s.ctrl.DownloadPDF()
	if err != nil {
		if errors.Is(err, controller.ErrNoPlan) {
			return notify.Error(noPlanPDFNotice)
		}
		return notify.Error(err.Error())
	}
	return tea.Batch(notify.Info(downloadingNotice), cmd)
}

func (s *ResultsScreen) Title() string {
	return "Your Study Plan"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "D", Description: "Details"},
		{Key: "P", Description: "PDF"},
		{Key: "N", Description: "New plan"},
	}
	if s.open {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	return hints
}
