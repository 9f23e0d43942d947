package router

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/screen"
)

var (
	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrUnknownScreen     = errors.New("unknown screen")
)

// NavigateMsg requests a transition to the registered screen To.
type NavigateMsg struct {
	To screen.ID
}

// HomeMsg requests the reset path: every screen is reset and home becomes
// active.
type HomeMsg struct{}

// Navigate returns a command requesting a transition to id.
func Navigate(id screen.ID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: id} }
}

// GoHome returns a command requesting the reset path.
func GoHome() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// transitions lists the allowed targets from each screen.
var transitions = map[screen.ID][]screen.ID{
	screen.Home:     {screen.PlanForm},
	screen.PlanForm: {screen.Results, screen.Home},
	screen.Results:  {screen.Home},
}

// CanTransition reports whether from → to is an allowed move.
func CanTransition(from, to screen.ID) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Router holds one instance of every screen and shows exactly one at a time.
type Router struct {
	screens map[screen.ID]screen.Screen
	active  screen.ID
}

// New creates a Router with initial active and the other screens registered.
func New(initial screen.Screen, others ...screen.Screen) *Router {
	r := &Router{
		screens: make(map[screen.ID]screen.Screen, len(others)+1),
		active:  initial.ID(),
	}
	r.screens[initial.ID()] = initial
	for _, s := range others {
		r.screens[s.ID()] = s
	}
	return r
}

// Navigate activates the screen registered under to and calls its Init().
func (r *Router) Navigate(to screen.ID) (tea.Cmd, error) {
	target, ok := r.screens[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, to)
	}
	if !CanTransition(r.active, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.active, to)
	}
	r.active = to
	return target.Init(), nil
}

// Home resets every resettable screen and activates home.
func (r *Router) Home() (tea.Cmd, error) {
	if r.active == screen.Home {
		return nil, nil
	}
	cmd, err := r.Navigate(screen.Home)
	if err != nil {
		return nil, err
	}
	for _, s := range r.screens {
		if rs, ok := s.(screen.Resetter); ok {
			rs.Reset()
		}
	}
	return cmd, nil
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.active]
}

// ActiveID returns the id of the visible screen.
func (r *Router) ActiveID() screen.ID {
	return r.active
}

// Update handles navigation messages and forwards everything else to the
// active screen. Rejected transitions are returned as errors.
func (r *Router) Update(msg tea.Msg) (tea.Cmd, error) {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.To)
	case HomeMsg:
		return r.Home()
	}

	active := r.Active()
	if active == nil {
		return nil, nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.active] = updated
	return cmd, nil
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
