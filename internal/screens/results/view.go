package results

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// SummaryFields returns the label/value pairs of the summary card.
func SummaryFields(planID string, res *plan.GenerateResult) [][2]string {
	if res == nil {
		return nil
	}
	hours := res.Summary.TotalEstimatedHours
	if hours == "" {
		hours = "Varies"
	}
	style := res.Summary.PrimaryLearningStyle
	if style == "" {
		style = "Mixed"
	}
	fields := [][2]string{
		{"Duration", plural(res.Summary.DurationDays, "day")},
		{"Total hours", hours},
		{"Learning style", style},
		{"Plan ID", session.AbbreviateID(planID)},
	}
	if res.Summary.CreatedAt != "" {
		fields = append(fields, [2]string{"Created", res.Summary.CreatedAt})
	}
	return fields
}

func renderSummary(fields [][2]string) string {
	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render("Your Study Plan"))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(padRight(f[0]+":", 16)))
		b.WriteString(theme.Body.Render(f[1]))
	}
	return b.String()
}

// RenderSections renders the detail panel content, or the fallback message
// when there is nothing to show.
func RenderSections(sections []Section, width int) string {
	if len(sections) == 0 {
		return theme.Hint.Render(EmptyDetailMessage)
	}
	wrap := lipgloss.NewStyle().Width(width)
	var parts []string
	for _, s := range sections {
		var b strings.Builder
		b.WriteString(theme.SectionTitle.Render(s.Title))
		for _, l := range s.Lines {
			b.WriteString("\n" + wrap.Render(theme.Body.Render(l)))
		}
		for _, blk := range s.Blocks {
			b.WriteString("\n" + theme.Label.Render(blk.Heading))
			for _, l := range blk.Lines {
				b.WriteString("\n" + wrap.Render(theme.Body.Render("  "+l)))
			}
		}
		if s.Notice != "" {
			b.WriteString("\n" + theme.Hint.Render(s.Notice))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := s.ctrl.State()

	summary := components.Panel(renderSummary(SummaryFields(st.PlanID, st.Result)), cw)
	rows := []string{summary}

	switch {
	case !s.open:
		rows = append(rows, theme.Hint.Render("Press d to view the full plan, p to download the PDF, n to start over."))
	case s.loading:
		rows = append(rows, components.Panel(s.spinner.View()+" Loading plan details...", cw))
	case s.detailErr != "":
		rows = append(rows, theme.ErrorBlock.Width(cw).Render("Could not load plan details: "+s.detailErr))
	default:
		avail := height - lipgloss.Height(summary) - 3
		if avail < 3 {
			avail = 3
		}
		s.viewport.SetWidth(cw - 2)
		s.viewport.SetHeight(avail)
		rows = append(rows, components.Panel(s.viewport.View(), cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n"))
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s + " "
}
