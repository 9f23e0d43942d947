package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd(t *testing.T) {
	msg := Error("Please paste your syllabus text")()
	show, ok := msg.(ShowMsg)
	require.True(t, ok)
	assert.Equal(t, LevelError, show.Level)
	assert.Equal(t, "Please paste your syllabus text", show.Text)
}

func TestBannerShowAndAutoHide(t *testing.T) {
	b := NewBanner(time.Millisecond, time.Millisecond)

	cmd, handled := b.Handle(ShowMsg{Text: "Study plan generated!", Level: LevelSuccess})
	require.True(t, handled)
	require.NotNil(t, cmd)

	cur, visible := b.Current()
	require.True(t, visible)
	assert.Equal(t, "Study plan generated!", cur.Text)

	// The scheduled command fires the hide for this notification.
	_, handled = b.Handle(cmd())
	assert.True(t, handled)
	_, visible = b.Current()
	assert.False(t, visible)
}

func TestBannerStaleHideIgnored(t *testing.T) {
	b := NewBanner(time.Millisecond, time.Millisecond)

	first, _ := b.Handle(ShowMsg{Text: "first"})
	_, _ = b.Handle(ShowMsg{Text: "second", Level: LevelError})

	// The first timer fires after the second message replaced it.
	b.Handle(first())

	cur, visible := b.Current()
	require.True(t, visible)
	assert.Equal(t, "second", cur.Text)
	assert.Equal(t, LevelError, cur.Level)
}

func TestBannerClear(t *testing.T) {
	b := NewBanner(0, 0)
	b.Handle(ShowMsg{Text: "x"})
	_, handled := b.Handle(ClearMsg{})
	assert.True(t, handled)
	assert.Empty(t, b.View(80))

	// A hide for the cleared message must not affect a later one.
	b.Handle(ShowMsg{Text: "y"})
	b.Handle(hideMsg{seq: 1})
	_, visible := b.Current()
	assert.True(t, visible)
}

func TestBannerDurations(t *testing.T) {
	b := NewBanner(0, 0)
	assert.Equal(t, DefaultDuration, b.durationFor(ShowMsg{Level: LevelInfo}))
	assert.Equal(t, DefaultErrorDuration, b.durationFor(ShowMsg{Level: LevelError}))
	assert.Equal(t, time.Second, b.durationFor(ShowMsg{Level: LevelError, Duration: time.Second}))
}

func TestBannerIgnoresOtherMessages(t *testing.T) {
	b := NewBanner(0, 0)
	_, handled := b.Handle("unrelated")
	assert.False(t, handled)
}

func TestBannerView(t *testing.T) {
	b := NewBanner(0, 0)
	b.Handle(ShowMsg{Text: "Downloading PDF...", Level: LevelInfo})
	assert.Contains(t, b.View(80), "Downloading PDF...")
}
