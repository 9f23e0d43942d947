package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeLearningPreferences(t *testing.T) {
	tests := []struct {
		prefs string
		want  string
	}{
		{"I am a visual learner. I can study 2-4 hours per day.", "visual"},
		{"I like audio books", "auditory"},
		{"I am a auditory learner.", "auditory"},
		{"Hands-on work suits me", "kinesthetic"},
		{"I am a kinesthetic learner.", "kinesthetic"},
		{"I am a reading-writing learner.", "reading-writing"},
		{"no idea", "reading-writing"},
		// Visual wins when several styles are named.
		{"visual and auditory", "visual"},
	}
	for _, tt := range tests {
		t.Run(tt.prefs, func(t *testing.T) {
			got := analyzeLearningPreferences(tt.prefs)
			assert.Equal(t, tt.want, got.PrimaryLearningStyle)
			assert.Equal(t, studyMethods[tt.want], got.RecommendedStudyMethods)
			assert.Equal(t, studyTips, got.PersonalizedTips)
		})
	}
}

func TestBuildProgressTracking(t *testing.T) {
	days := func(p progressTracking) []int {
		var out []int
		for _, c := range p.CheckpointSchedule {
			out = append(out, c.Day)
		}
		return out
	}

	assert.Equal(t, []int{7, 14, 21, 28}, days(buildProgressTracking(30)))
	assert.Equal(t, []int{7, 10, 10, 10}, days(buildProgressTracking(10)))
	assert.Equal(t, []int{25, 50, 75, 100}, days(buildProgressTracking(100)))

	p := buildProgressTracking(30)
	assert.Equal(t, "Review Week 3", p.CheckpointSchedule[2].Checkpoint)
	assert.Equal(t, "Quiz + practical exercise", p.CheckpointSchedule[2].Assessment)
	assert.Len(t, p.TrackingMetrics, 3)
}

func TestAnalyzeSyllabus_Structured(t *testing.T) {
	sa := analyzeSyllabus("Physics:\n- Kinematics\n- Dynamics\n\nChemistry\n  Atoms\n  1. Bonds\n")
	require.Len(t, sa.Subjects, 2)
	assert.Equal(t, "Physics", sa.Subjects[0].Name)
	assert.Equal(t, []string{"Kinematics", "Dynamics"}, chapterNames(sa.Subjects[0]))
	assert.Equal(t, "Chemistry", sa.Subjects[1].Name)
	assert.Equal(t, []string{"Atoms", "Bonds"}, chapterNames(sa.Subjects[1]))
	assert.Equal(t, "medium", sa.Subjects[0].Chapters[0].Difficulty)
}

func TestAnalyzeSyllabus_FlatLines(t *testing.T) {
	sa := analyzeSyllabus("Algebra\nGeometry\nCalculus")
	require.Len(t, sa.Subjects, 1)
	s := sa.Subjects[0]
	assert.Equal(t, "General", s.Name)
	assert.Equal(t, []string{"Algebra", "Geometry", "Calculus"}, chapterNames(s))
	assert.Equal(t, "easy", s.Chapters[0].Difficulty)
	assert.Equal(t, "medium", s.Chapters[1].Difficulty)
	assert.Equal(t, "hard", s.Chapters[2].Difficulty)
	assert.Equal(t, 2+3+5, sa.TotalEstimatedHours)
}

func TestAnalyzeSyllabus_SingleLine(t *testing.T) {
	sa := analyzeSyllabus("Intro to programming")
	require.Len(t, sa.Subjects, 1)
	assert.Equal(t, []string{"Intro to programming"}, chapterNames(sa.Subjects[0]))
	assert.Equal(t, 4, sa.TotalEstimatedHours)
}

func TestAnalyzeSyllabus_LooseBullets(t *testing.T) {
	sa := analyzeSyllabus("- Loops\n- Functions\nData Structures\n- Lists")
	require.Len(t, sa.Subjects, 2)
	assert.Equal(t, "General", sa.Subjects[0].Name)
	assert.Equal(t, []string{"Loops", "Functions"}, chapterNames(sa.Subjects[0]))
	assert.Equal(t, []string{"Lists"}, chapterNames(sa.Subjects[1]))
}

func TestBuildSchedule(t *testing.T) {
	start := time.Date(2025, 12, 3, 9, 0, 0, 0, time.UTC)
	subjects := []subject{{Name: "Maths", Chapters: []chapter{{Name: "Algebra"}, {Name: "Geometry"}}}}

	s := buildSchedule(subjects, 10, "visual", start).Schedule
	require.Len(t, s, 10)
	assert.Equal(t, 1, s[0].Day)
	assert.Equal(t, "2025-12-03", s[0].Date)
	assert.Equal(t, "2025-12-12", s[9].Date)
	assert.Equal(t, "Algebra", s[0].Sessions[0].Topic)
	assert.Equal(t, []string{"Video lectures", "Practice"}, s[0].Sessions[0].Activities)
	assert.Equal(t, "Geometry", s[1].Sessions[0].Topic)
	assert.Equal(t, "Weekly review", s[6].Sessions[0].Topic)
	assert.NotEmpty(t, s[6].Notes)
	// Rotation resumes after the review day.
	assert.Equal(t, "Algebra", s[7].Sessions[0].Topic)
}

func TestRecommendResources(t *testing.T) {
	subjects := []subject{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	r := recommendResources(subjects, "auditory").ResourceRecommendations
	require.Len(t, r, 3)
	assert.Equal(t, "podcast", r[0].Resources[0].Type)
	assert.Equal(t, "A fundamentals", r[0].Resources[0].Name)
}

func chapterNames(s subject) []string {
	var out []string
	for _, c := range s.Chapters {
		out = append(out, c.Name)
	}
	return out
}
