// Package planform holds the plan request form: its fields, defaults,
// validation and the preferences sentence sent to the backend.
package planform

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDurationDays is used when the duration field is empty or invalid.
const DefaultDurationDays = 30

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

var (
	LearningStyles = []Option{
		{Value: "visual", Label: "Visual (diagrams, videos)"},
		{Value: "auditory", Label: "Auditory (lectures, discussion)"},
		{Value: "kinesthetic", Label: "Kinesthetic (hands-on practice)"},
		{Value: "reading-writing", Label: "Reading/Writing (notes, texts)"},
	}

	StudyHours = []Option{
		{Value: "1-2", Label: "1-2 hours"},
		{Value: "2-4", Label: "2-4 hours"},
		{Value: "4-6", Label: "4-6 hours"},
		{Value: "6+", Label: "6+ hours"},
	}

	Paces = []Option{
		{Value: "slow", Label: "Slow and thorough"},
		{Value: "moderate", Label: "Moderate"},
		{Value: "fast", Label: "Fast-paced"},
	}
)

// Field names used in ValidationError.
const (
	FieldSyllabus      = "syllabus"
	FieldLearningStyle = "learning_style"
	FieldStudyHours    = "study_hours"
	FieldPace          = "pace"
)

// ValidationError is a client-side problem with the form. The request is
// never sent while one is present.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Values is the raw content of the form. Select fields hold an option
// Value, or "" when nothing is chosen.
type Values struct {
	Syllabus      string
	LearningStyle string
	StudyHours    string
	Pace          string
	Preferences   string
	Duration      string
}

// Defaults returns a freshly reset form.
func Defaults() Values {
	return Values{Duration: strconv.Itoa(DefaultDurationDays)}
}

// Validate checks the mandatory fields in display order and returns the
// first problem found.
func (v Values) Validate() error {
	if strings.TrimSpace(v.Syllabus) == "" {
		return &ValidationError{Field: FieldSyllabus, Message: "Please paste your syllabus text"}
	}
	if !hasOption(LearningStyles, v.LearningStyle) {
		return &ValidationError{Field: FieldLearningStyle, Message: "Please select your learning style"}
	}
	if !hasOption(StudyHours, v.StudyHours) {
		return &ValidationError{Field: FieldStudyHours, Message: "Please select your daily study hours"}
	}
	if !hasOption(Paces, v.Pace) {
		return &ValidationError{Field: FieldPace, Message: "Please select your learning pace"}
	}
	return nil
}

// DurationDays coerces the duration field to an integer: the leading
// digits of the trimmed text, or DefaultDurationDays when there are none
// or the value is below one.
func (v Values) DurationDays() int {
	s := strings.TrimSpace(v.Duration)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end >= 0 {
		s = s[:end]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DefaultDurationDays
	}
	return n
}

// ComposePreferences turns the discrete fields into the sentence the
// backend analyses for learning style.
func (v Values) ComposePreferences() string {
	s := fmt.Sprintf("I am a %s learner. I can study %s hours per day. I prefer a %s learning pace.",
		v.LearningStyle, v.StudyHours, v.Pace)
	if extra := strings.TrimSpace(v.Preferences); extra != "" {
		s += " Additional preferences: " + extra
	}
	return s
}

// Label returns the display label for value, or value itself when unknown.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func hasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
