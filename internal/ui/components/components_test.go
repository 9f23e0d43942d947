package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuNavigationAndReset(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Action: func() tea.Cmd { pressed = "A"; return nil }},
		{Label: "B", Disabled: true},
		{Label: "C", Action: func() tea.Cmd { pressed = "C"; return nil }},
	})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(key("down"))
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(key("enter"))
	assert.Equal(t, "C", pressed)

	m.Reset()
	assert.Equal(t, 0, m.Selected)
}

func TestChoiceCycles(t *testing.T) {
	c := NewChoice("Pace", []ChoiceOption{{"slow", "Slow"}, {"fast", "Fast"}})
	assert.Empty(t, c.Value())

	// Unfocused choices ignore keys.
	c, _ = c.Update(key("right"))
	assert.Empty(t, c.Value())

	c.Focused = true
	c, _ = c.Update(key("right"))
	assert.Equal(t, "slow", c.Value())
	c, _ = c.Update(key("right"))
	assert.Equal(t, "fast", c.Value())
	c, _ = c.Update(key("right"))
	assert.Equal(t, "slow", c.Value())
	c, _ = c.Update(key("left"))
	assert.Equal(t, "fast", c.Value())

	c.Select("slow")
	assert.Equal(t, "slow", c.Value())
	c.Select("nope")
	assert.Empty(t, c.Value())

	c.Select("fast")
	c.Reset()
	assert.Empty(t, c.Value())
	assert.False(t, c.Focused)
}

func TestTextInputNumericOnly(t *testing.T) {
	ti := NewTextInput("days", "", true, 4)
	ti.Focus()

	ti, _ = ti.Update(key("4"))
	ti, _ = ti.Update(key("x"))
	ti, _ = ti.Update(key("2"))
	assert.Equal(t, "42", ti.Value())
}

func TestTextInputReset(t *testing.T) {
	ti := NewTextInput("days", "30", true, 4)
	ti.SetValue("7")
	ti.Reset()
	assert.Equal(t, "30", ti.Value())
}

func TestButtonRequiresFocus(t *testing.T) {
	pressed := 0
	b := NewButton("Generate", func() tea.Cmd { pressed++; return nil })

	b, _ = b.Update(key("enter"))
	assert.Zero(t, pressed)

	b.Focused = true
	b, _ = b.Update(key("enter"))
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "Generate")
}

func TestContentWidthClamps(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 74, ContentWidth(80))
	assert.Equal(t, 90, ContentWidth(200))
}
