package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/layout"
)

// ID names a screen in the navigation graph.
type ID string

const (
	Home     ID = "home"
	PlanForm ID = "plan-form"
	Results  ID = "results"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// ID identifies the screen for navigation.
	ID() ID

	// Init is called every time the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resetter is implemented by screens that hold transient state which must
// be cleared when the user returns home.
type Resetter interface {
	Reset()
}
