package planform

import (
	"strings"

	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

func (s *FormScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(i int, text string) string {
		if s.focus == i {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Label.Render("  " + text)
	}

	rows := []string{
		label(fieldSyllabus, "Syllabus"),
		s.syllabus.View(),
		"",
		label(fieldStyle, s.style.Label),
		s.style.View(),
		label(fieldHours, s.hours.Label),
		s.hours.View(),
		label(fieldPace, s.pace.Label),
		s.pace.View(),
		"",
		label(fieldPreferences, "Other preferences (optional)"),
		"  " + s.preferences.View(),
		label(fieldDuration, "Duration (days)"),
		"  " + s.duration.View(),
		"",
		s.submit.View(),
	}

	if line := s.statusLine(); line != "" {
		rows = append(rows, "", line)
	}

	return components.Center(components.Panel(strings.Join(rows, "\n"), cw), width, height)
}

func (s *FormScreen) statusLine() string {
	switch {
	case s.loading:
		return s.spinner.View() + " " + theme.Body.Render(s.status)
	case s.status == "":
		return ""
	case s.statusErr:
		return theme.StatusError.Render(s.status)
	default:
		return theme.Hint.Render(s.status)
	}
}
