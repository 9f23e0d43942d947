package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/notify"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/home"
	"github.com/abhisek/studyplan/internal/screens/planform"
	"github.com/abhisek/studyplan/internal/screens/results"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Controller *controller.Controller
	Logger     zerolog.Logger

	// NotifyDuration and NotifyErrorDuration control how long banners stay
	// visible. Zero uses the notify defaults.
	NotifyDuration      time.Duration
	NotifyErrorDuration time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *controller.Controller
	banner *notify.Banner
	logger zerolog.Logger
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller
	return AppModel{
		router: router.New(
			home.New(ctrl),
			planform.New(ctrl),
			results.New(ctrl),
		),
		ctrl:   ctrl,
		banner: notify.NewBanner(opts.NotifyDuration, opts.NotifyErrorDuration),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.banner.Handle(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.ActiveID() != screen.Home {
				return m, router.GoHome()
			}
			return m, nil
		}

	case router.HomeMsg:
		m.ctrl.Reset()
	}

	from := m.router.ActiveID()
	cmd, err := m.router.Update(msg)
	if err != nil {
		m.logger.Warn().Err(err).Str("from", string(from)).Msg("navigation rejected")
		return m, nil
	}
	if to := m.router.ActiveID(); to != from {
		m.logger.Debug().Str("from", string(from)).Str("to", string(to)).Msg("screen changed")
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	frame := layout.Frame{
		Title:  active.Title(),
		Hints:  m.footerHints(active),
		Banner: m.banner.View(m.width),
	}
	if st := m.ctrl.State(); st.HasPlan() {
		frame.PlanLabel = session.AbbreviateID(st.PlanID)
	}

	content := m.router.View(m.width, frame.BodyHeight(m.width, m.height))
	return frame.Compose(content, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if active.ID() != screen.Home {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("app: controller is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
