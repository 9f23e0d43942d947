package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line input.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a blurred, empty text area.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	return TextArea{Model: ta}
}

func (t *TextArea) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextArea) Blur() { t.Model.Blur() }

func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextArea) View() string { return t.Model.View() }
func (t TextArea) Value() string { return t.Model.Value() }
func (t *TextArea) SetValue(s string) { t.Model.SetValue(s) }
func (t *TextArea) SetWidth(w int) { t.Model.SetWidth(w) }

// Reset clears the text and blurs the area.
func (t *TextArea) Reset() {
	t.Model.Reset()
	t.Model.Blur()
}
