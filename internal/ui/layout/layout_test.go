package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestFrameHeader(t *testing.T) {
	f := Frame{Title: "Results", PlanLabel: "plan_1733212..."}
	out := f.Header(100)

	assert.Contains(t, out, "Study Planner")
	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "Plan plan_1733212...")
	assert.Equal(t, HeaderHeight, lipgloss.Height(out))

	assert.NotContains(t, Frame{Title: "Home"}.Header(100), "Plan ")
}

func TestFrameFooterBanner(t *testing.T) {
	f := Frame{Hints: []KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Ctrl+C", Description: "Quit"}}}

	plain := f.Footer(100)
	assert.Contains(t, plain, "Enter")
	assert.Contains(t, plain, "Quit")
	assert.Equal(t, FooterHeight, lipgloss.Height(plain))

	f.Banner = "Plan generated"
	withBanner := f.Footer(100)
	assert.Equal(t, FooterHeight+1, lipgloss.Height(withBanner))
	assert.True(t, strings.HasPrefix(withBanner, "Plan generated"))
}

func TestFrameCompose(t *testing.T) {
	f := Frame{Title: "Home", Hints: []KeyHint{{Key: "Ctrl+C", Description: "Quit"}}}
	assert.Equal(t, 40-HeaderHeight-FooterHeight, f.BodyHeight(100, 40))

	long := strings.Repeat("line\n", 80)
	out := f.Compose(long, 100, 40)
	assert.Equal(t, 40, lipgloss.Height(out))

	f.Banner = "Saved"
	assert.Equal(t, 40-HeaderHeight-FooterHeight-1, f.BodyHeight(100, 40))
	assert.Equal(t, 40, lipgloss.Height(f.Compose("short", 100, 40)))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
}
