package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// ChoiceOption is one entry of a Choice.
type ChoiceOption struct {
	Value string
	Label string
}

// Choice is a single-select field cycled with the arrow keys. It starts
// with nothing chosen.
type Choice struct {
	Label   string
	Options []ChoiceOption
	Focused bool

	// Chosen is the index into Options, or -1 when nothing is chosen.
	Chosen int
}

// NewChoice creates a Choice with no option chosen.
func NewChoice(label string, options []ChoiceOption) Choice {
	return Choice{
		Label:   label,
		Options: options,
		Chosen:  -1,
	}
}

// Update cycles the choice while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused || len(c.Options) == 0 {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "right", "l", "space":
		c.Chosen = (c.Chosen + 1) % len(c.Options)
	case "left", "h":
		if c.Chosen <= 0 {
			c.Chosen = len(c.Options) - 1
		} else {
			c.Chosen--
		}
	}

	return c, nil
}

// Value returns the chosen option's value, or "".
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen].Value
}

// Select chooses the option with value. Unknown values clear the choice.
func (c *Choice) Select(value string) {
	c.Chosen = -1
	for i, o := range c.Options {
		if o.Value == value {
			c.Chosen = i
			return
		}
	}
}

// Reset clears the choice and focus.
func (c *Choice) Reset() {
	c.Chosen = -1
	c.Focused = false
}

// View renders the options on one line, highlighting the chosen one.
func (c Choice) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, o := range c.Options {
		switch {
		case i == c.Chosen:
			parts = append(parts, theme.Selected.Render("● "+o.Label))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+o.Label))
		}
	}
	line := strings.Join(parts, "  ")
	if c.Focused {
		return theme.Selected.Render("‹ ") + line + theme.Selected.Render(" ›")
	}
	return "  " + line
}
