package mockapi

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	created := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	p := buildPlan("Physics\n- Kinematics (motion)\n- Dynamics", "visual", 5, created)

	out, err := renderPDF(p, created)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(out), []byte("%%EOF")))
	s := string(out)
	assert.Contains(t, s, "Personalized Study Plan")
	assert.Contains(t, s, "(- Physics)")
	assert.Contains(t, s, "(Created: 2025-12-03)")
	assert.Contains(t, s, "(Duration: 5 days)")
	assert.Contains(t, s, "3. Schedule \\(First 3 Days\\)")
}

func TestRenderPDF_Latin1(t *testing.T) {
	created := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	p := buildPlan("Théorie des nombres\n- Congruences", "visual", 3, created)

	out, err := renderPDF(p, created)
	require.NoError(t, err)

	// cp1252 encodes é as a single 0xE9 byte.
	assert.Contains(t, string(out), "(- Th\xe9orie des nombres)")
	assert.NotContains(t, string(out), "Th\xc3\xa9orie")
}

func TestPlanPDFLines_Limits(t *testing.T) {
	p := buildPlan("A\nB\nC\nD\nE", "visual", 10, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC))

	var subjects, days int
	for _, l := range planPDFLines(p) {
		switch {
		case len(l.text) > 2 && l.text[:2] == "- ":
			subjects++
		case len(l.text) > 4 && l.text[:4] == "Day ":
			days++
		}
	}
	assert.Equal(t, 3, subjects)
	assert.Equal(t, 3, days)
}
