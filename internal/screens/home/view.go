package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

const titleFull = `╔═╗╔╦╗╦ ╦╔╦╗╦ ╦  ╔═╗╦  ╔═╗╔╗╔
╚═╗ ║ ║ ║ ║║╚╦╝  ╠═╝║  ╠═╣║║║
╚═╝ ╩ ╚═╝═╩╝ ╩   ╩  ╩═╝╩ ╩╝╚╝`

const titleCompact = "S T U D Y   P L A N"

const tagline = "Paste your syllabus, tell us how you learn,\nand get a personalized day-by-day study plan."

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if cw > 60 {
		cw = 60
	}

	title := titleFull
	if layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		title = titleCompact
	}

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	sections := []string{
		center.Render(theme.Title.Render(title)),
		center.Render(theme.Subtitle.Render(tagline)),
		center.Render(h.statusLine()),
		components.Panel(strings.TrimRight(h.menu.View(), "\n"), cw),
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) statusLine() string {
	switch h.status {
	case statusHealthy:
		line := "● Backend online"
		if h.service != "" {
			line += " · " + h.service
		}
		return theme.StatusOK.Render(line)
	case statusDown:
		line := "● Backend unavailable"
		if h.detail != "" {
			line += " · " + h.detail
		}
		return theme.StatusError.Render(line)
	default:
		return theme.Hint.Render("Checking backend...")
	}
}
