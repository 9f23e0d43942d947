// Package notify implements the single transient notification banner.
package notify

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Default display durations.
const (
	DefaultDuration      = 3 * time.Second
	DefaultErrorDuration = 5 * time.Second
)

// ShowMsg asks the banner to display a notification, replacing any current
// one. A zero Duration uses the banner's default for the level.
type ShowMsg struct {
	Text     string
	Level    Level
	Duration time.Duration
}

// ClearMsg hides the banner immediately.
type ClearMsg struct{}

// hideMsg is the scheduled auto-hide for the notification with seq.
type hideMsg struct {
	seq int
}

// Show returns a command that displays text at level.
func Show(text string, level Level) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Text: text, Level: level}
	}
}

func Info(text string) tea.Cmd    { return Show(text, LevelInfo) }
func Success(text string) tea.Cmd { return Show(text, LevelSuccess) }
func Error(text string) tea.Cmd   { return Show(text, LevelError) }

// Banner holds at most one notification. Each show bumps a sequence
// number; a hide scheduled for an older sequence is ignored, so a stale
// timer never hides a newer message.
type Banner struct {
	seq           int
	current       *ShowMsg
	duration      time.Duration
	errorDuration time.Duration
}

// NewBanner creates a Banner. Non-positive durations use the defaults.
func NewBanner(duration, errorDuration time.Duration) *Banner {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if errorDuration <= 0 {
		errorDuration = DefaultErrorDuration
	}
	return &Banner{duration: duration, errorDuration: errorDuration}
}

// Handle consumes banner messages. It reports false for anything else.
func (b *Banner) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ShowMsg:
		b.seq++
		shown := msg
		b.current = &shown
		seq := b.seq
		return tea.Tick(b.durationFor(msg), func(time.Time) tea.Msg {
			return hideMsg{seq: seq}
		}), true

	case hideMsg:
		if msg.seq == b.seq {
			b.current = nil
		}
		return nil, true

	case ClearMsg:
		b.seq++
		b.current = nil
		return nil, true
	}
	return nil, false
}

func (b *Banner) durationFor(msg ShowMsg) time.Duration {
	if msg.Duration > 0 {
		return msg.Duration
	}
	if msg.Level == LevelError {
		return b.errorDuration
	}
	return b.duration
}

// Current returns the visible notification, if any.
func (b *Banner) Current() (ShowMsg, bool) {
	if b.current == nil {
		return ShowMsg{}, false
	}
	return *b.current, true
}

// View renders the banner across width, or "" when hidden.
func (b *Banner) View(width int) string {
	if b.current == nil {
		return ""
	}
	style := theme.NoticeInfo
	switch b.current.Level {
	case LevelSuccess:
		style = theme.NoticeSuccess
	case LevelError:
		style = theme.NoticeError
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(b.current.Text))
}
