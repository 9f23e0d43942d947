package plan

// Summary is the part of a generation response shown as soon as a plan exists.
type Summary struct {
	DurationDays int

	// TotalEstimatedHours is display text; the backend may send a number
	// or a placeholder string. Empty means absent.
	TotalEstimatedHours string

	// PrimaryLearningStyle is empty when the backend did not report one.
	PrimaryLearningStyle string

	CreatedAt string
}

// GenerateResult is a successful response from the plan generation endpoint.
type GenerateResult struct {
	PlanID  string
	Message string
	Summary Summary
}

// Detail is the full plan fetched on demand. Every sub-report is optional
// and absent ones are left nil or empty.
type Detail struct {
	Syllabus  *SyllabusAnalysis
	Learning  *LearningAnalysis
	Schedule  []ScheduleDay
	Resources []ResourceGroup
	Progress  *ProgressTracking
}

// IsEmpty reports whether no sub-report carries any data.
func (d *Detail) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Syllabus == nil && d.Learning == nil && len(d.Schedule) == 0 &&
		len(d.Resources) == 0 && d.Progress == nil
}

// SyllabusAnalysis breaks the syllabus into subjects and chapters.
type SyllabusAnalysis struct {
	TotalEstimatedHours string
	Subjects            []Subject
}

type Subject struct {
	Name     string
	Chapters []Chapter
}

type Chapter struct {
	Name           string
	EstimatedHours string
	Difficulty     string
}

// LearningAnalysis describes how the learner studies best.
type LearningAnalysis struct {
	PrimaryStyle string
	Methods      []string
	Tips         string
}

// ScheduleDay is one day of the study calendar.
type ScheduleDay struct {
	Day      int
	Date     string
	Sessions []StudySession
	Notes    string
}

type StudySession struct {
	Time       string
	Topic      string
	Activities []string
}

// ResourceGroup lists recommended material for one topic.
type ResourceGroup struct {
	Topic     string
	Resources []Resource
}

type Resource struct {
	Type        string
	Name        string
	Description string
}

// ProgressTracking holds review checkpoints and the metrics to watch.
type ProgressTracking struct {
	Checkpoints []Checkpoint
	Metrics     []string
}

type Checkpoint struct {
	Day        int
	Checkpoint string
	Assessment string
}
