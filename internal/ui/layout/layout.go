// Package layout draws the chrome around every screen: a header with the
// screen title and active plan, and a footer carrying key hints and the
// notification banner.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// HeaderHeight and FooterHeight are the bar heights without a banner.
	HeaderHeight = 3
	FooterHeight = 3

	CompactHeightThreshold = 32
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether height calls for the condensed layouts.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The study planner needs a bigger window.\n\nResize to at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
	planStyle  = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
	sepStyle   = lipgloss.NewStyle().Foreground(theme.Border)
)

// Frame describes the chrome for one render.
type Frame struct {
	Title     string
	PlanLabel string // abbreviated plan id, empty when no plan is active
	Hints     []KeyHint
	Banner    string // rendered notification line, empty when hidden
}

// Header renders the top bar: brand left, title centred, plan right.
func (f Frame) Header(width int) string {
	inner := max(width-4, 0)

	brand := brandStyle.Render("Study Planner")
	plan := ""
	if f.PlanLabel != "" {
		plan = planStyle.Render("Plan " + f.PlanLabel)
	}
	side := max(lipgloss.Width(brand), lipgloss.Width(plan))
	middle := max(inner-2*side, 0)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, brand),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(f.Title)),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, plan),
	)
	return barStyle.Width(width).Render(row)
}

// Footer renders the hint bar, with the banner line above it when set.
func (f Frame) Footer(width int) string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	bar := barStyle.Width(width).Render(strings.Join(parts, sepStyle.Render("  ·  ")))

	if f.Banner == "" {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, f.Banner, bar)
}

// BodyHeight is the number of rows left for screen content.
func (f Frame) BodyHeight(width, height int) int {
	return max(height-lipgloss.Height(f.Header(width))-lipgloss.Height(f.Footer(width)), 0)
}

// Compose stacks header, body and footer into exactly height rows.
func (f Frame) Compose(body string, width, height int) string {
	rows := f.BodyHeight(width, height)
	styled := lipgloss.NewStyle().
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, f.Header(width), styled, f.Footer(width))
}
