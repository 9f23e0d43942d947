package planform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() Values {
	v := Defaults()
	v.Syllabus = "Physics: Kinematics, Dynamics"
	v.LearningStyle = "visual"
	v.StudyHours = "2-4"
	v.Pace = "moderate"
	return v
}

func TestDefaults(t *testing.T) {
	v := Defaults()
	assert.Equal(t, "30", v.Duration)
	assert.Empty(t, v.Syllabus)
	assert.Empty(t, v.LearningStyle)
	assert.Empty(t, v.StudyHours)
	assert.Empty(t, v.Pace)
	assert.Empty(t, v.Preferences)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Values)
		wantField string
	}{
		{"valid", func(*Values) {}, ""},
		{"empty syllabus", func(v *Values) { v.Syllabus = "" }, FieldSyllabus},
		{"whitespace syllabus", func(v *Values) { v.Syllabus = "  \n\t " }, FieldSyllabus},
		{"missing style", func(v *Values) { v.LearningStyle = "" }, FieldLearningStyle},
		{"unknown style", func(v *Values) { v.LearningStyle = "telepathic" }, FieldLearningStyle},
		{"missing hours", func(v *Values) { v.StudyHours = "" }, FieldStudyHours},
		{"missing pace", func(v *Values) { v.Pace = "" }, FieldPace},
		{"syllabus reported first", func(v *Values) { v.Syllabus = ""; v.Pace = "" }, FieldSyllabus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			tt.mutate(&v)
			err := v.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Error())
		})
	}
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"30", 30},
		{" 14 ", 14},
		{"21 days", 21},
		{"7.5", 7},
		{"", DefaultDurationDays},
		{"abc", DefaultDurationDays},
		{"0", DefaultDurationDays},
		{"-5", DefaultDurationDays},
		{"14１", 14},
		{"１４", DefaultDurationDays},
		{"2٣", 2},
	}
	for _, tt := range tests {
		v := Values{Duration: tt.in}
		assert.Equal(t, tt.want, v.DurationDays(), "duration %q", tt.in)
	}
}

func TestComposePreferences(t *testing.T) {
	v := validValues()
	assert.Equal(t,
		"I am a visual learner. I can study 2-4 hours per day. I prefer a moderate learning pace.",
		v.ComposePreferences())

	v.Preferences = "  I like practice problems  "
	assert.Equal(t,
		"I am a visual learner. I can study 2-4 hours per day. I prefer a moderate learning pace. Additional preferences: I like practice problems",
		v.ComposePreferences())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "6+ hours", Label(StudyHours, "6+"))
	assert.Equal(t, "other", Label(StudyHours, "other"))
}
