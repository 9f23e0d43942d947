package mockapi

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Wire shapes of a stored plan. They mirror what the real backend returns
// from GET /api/plan/{id}.
type (
	storedPlan struct {
		CreatedAt        string           `json:"created_at"`
		DurationDays     int              `json:"duration_days"`
		SyllabusAnalysis syllabusAnalysis `json:"syllabus_analysis"`
		LearningAnalysis learningAnalysis `json:"learning_analysis"`
		Schedule         scheduleReport   `json:"schedule"`
		Resources        resourceReport   `json:"resources"`
		ProgressTracking progressTracking `json:"progress_tracking"`
	}

	syllabusAnalysis struct {
		Subjects            []subject `json:"subjects"`
		TotalEstimatedHours int       `json:"total_estimated_hours"`
	}

	subject struct {
		Name     string    `json:"name"`
		Chapters []chapter `json:"chapters"`
	}

	chapter struct {
		Name           string `json:"name"`
		EstimatedHours int    `json:"estimated_hours"`
		Difficulty     string `json:"difficulty"`
	}

	learningAnalysis struct {
		PrimaryLearningStyle    string   `json:"primary_learning_style"`
		RecommendedStudyMethods []string `json:"recommended_study_methods"`
		PersonalizedTips        string   `json:"personalized_tips"`
	}

	scheduleReport struct {
		Schedule []scheduleDay `json:"schedule"`
	}

	scheduleDay struct {
		Day      int            `json:"day"`
		Date     string         `json:"date"`
		Sessions []studySession `json:"sessions"`
		Notes    string         `json:"notes,omitempty"`
	}

	studySession struct {
		Time       string   `json:"time"`
		Topic      string   `json:"topic"`
		Activities []string `json:"activities"`
	}

	resourceReport struct {
		ResourceRecommendations []resourceGroup `json:"resource_recommendations"`
	}

	resourceGroup struct {
		Topic     string     `json:"topic"`
		Resources []resource `json:"resources"`
	}

	resource struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	progressTracking struct {
		CheckpointSchedule []checkpoint `json:"checkpoint_schedule"`
		TrackingMetrics    []string     `json:"tracking_metrics"`
	}

	checkpoint struct {
		Day        int    `json:"day"`
		Checkpoint string `json:"checkpoint"`
		Assessment string `json:"assessment"`
	}
)

const defaultStyle = "reading-writing"

var studyMethods = map[string][]string{
	"visual":          {"video lectures", "diagrams", "mind maps", "flashcards"},
	"auditory":        {"podcasts", "audio books", "group discussions", "lectures"},
	"kinesthetic":     {"hands-on practice", "labs", "projects", "simulations"},
	"reading-writing": {"textbooks", "note-taking", "written summaries", "articles"},
}

var resourceTypes = map[string]string{
	"visual":          "video",
	"auditory":        "podcast",
	"kinesthetic":     "interactive",
	"reading-writing": "book",
}

const studyTips = "Use 45-90 minute focused sessions with breaks. Apply active recall and spaced repetition."

// syllabusInputLimit bounds how much syllabus text is analysed.
const syllabusInputLimit = 2000

// buildPlan produces a complete plan from the request using local
// heuristics only.
func buildPlan(syllabus, prefs string, days int, now time.Time) *storedPlan {
	learning := analyzeLearningPreferences(prefs)
	sa := analyzeSyllabus(syllabus)
	return &storedPlan{
		CreatedAt:        now.Format("2006-01-02T15:04:05"),
		DurationDays:     days,
		SyllabusAnalysis: sa,
		LearningAnalysis: learning,
		Schedule:         buildSchedule(sa.Subjects, days, learning.PrimaryLearningStyle, now),
		Resources:        recommendResources(sa.Subjects, learning.PrimaryLearningStyle),
		ProgressTracking: buildProgressTracking(days),
	}
}

// analyzeLearningPreferences picks the first style named in prefs, in the
// order visual, auditory, kinesthetic, and falls back to reading-writing.
func analyzeLearningPreferences(prefs string) learningAnalysis {
	p := strings.ToLower(prefs)

	style := defaultStyle
	switch {
	case strings.Contains(p, "visual"):
		style = "visual"
	case strings.Contains(p, "audio"), strings.Contains(p, "auditory"):
		style = "auditory"
	case strings.Contains(p, "kinesthetic"), strings.Contains(p, "hands"):
		style = "kinesthetic"
	}

	return learningAnalysis{
		PrimaryLearningStyle:    style,
		RecommendedStudyMethods: studyMethods[style],
		PersonalizedTips:        studyTips,
	}
}

// buildProgressTracking spaces four review checkpoints at least a week
// apart, never past the last day.
func buildProgressTracking(days int) progressTracking {
	interval := max(7, days/4)
	var cps []checkpoint
	for i := 1; i <= 4; i++ {
		cps = append(cps, checkpoint{
			Day:        min(days, i*interval),
			Checkpoint: fmt.Sprintf("Review Week %d", i),
			Assessment: "Quiz + practical exercise",
		})
	}
	return progressTracking{
		CheckpointSchedule: cps,
		TrackingMetrics: []string{
			"Daily session completion",
			"Topic understanding scores",
			"Practice problem accuracy",
		},
	}
}

// analyzeSyllabus reads unindented, unbulleted lines as subjects and
// bulleted or indented lines as their chapters. Text without any
// structure becomes one subject whose chapters are the lines.
func analyzeSyllabus(text string) syllabusAnalysis {
	if len(text) > syllabusInputLimit {
		text = strings.ToValidUTF8(text[:syllabusInputLimit], "")
	}

	var subjects []subject
	var loose []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		name, bulleted := stripBullet(line)
		nested := bulleted || raw[0] == ' ' || raw[0] == '\t'
		switch {
		case nested && len(subjects) > 0:
			last := &subjects[len(subjects)-1]
			last.Chapters = append(last.Chapters, chapter{Name: name})
		case nested:
			loose = append(loose, name)
		default:
			subjects = append(subjects, subject{Name: strings.TrimSuffix(name, ":")})
		}
	}

	if len(loose) > 0 {
		subjects = append([]subject{{Name: "General", Chapters: chaptersOf(loose)}}, subjects...)
	}
	// Headings with no chapters are chapters of a single subject.
	if allEmpty(subjects) && len(subjects) > 1 {
		var names []string
		for _, s := range subjects {
			names = append(names, s.Name)
		}
		subjects = []subject{{Name: "General", Chapters: chaptersOf(names)}}
	}

	total := 0
	for i := range subjects {
		if len(subjects[i].Chapters) == 0 {
			subjects[i].Chapters = []chapter{{Name: subjects[i].Name}}
		}
		n := len(subjects[i].Chapters)
		for j := range subjects[i].Chapters {
			ch := &subjects[i].Chapters[j]
			ch.Difficulty = difficultyAt(j, n)
			ch.EstimatedHours = estimateHours(ch.Name, ch.Difficulty)
			total += ch.EstimatedHours
		}
	}
	return syllabusAnalysis{Subjects: subjects, TotalEstimatedHours: total}
}

func stripBullet(line string) (string, bool) {
	for _, p := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	// "1." or "1)" numbering.
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:]), true
	}
	return line, false
}

func chaptersOf(names []string) []chapter {
	out := make([]chapter, 0, len(names))
	for _, n := range names {
		out = append(out, chapter{Name: n})
	}
	return out
}

func allEmpty(subjects []subject) bool {
	for _, s := range subjects {
		if len(s.Chapters) > 0 {
			return false
		}
	}
	return true
}

// difficultyAt ramps chapters from easy to hard through the subject.
func difficultyAt(i, n int) string {
	if n < 3 {
		return "medium"
	}
	switch {
	case i < n/3:
		return "easy"
	case i < 2*n/3:
		return "medium"
	default:
		return "hard"
	}
}

func estimateHours(name, difficulty string) int {
	h := 2 + len(strings.Fields(name))/2
	switch difficulty {
	case "medium":
		h += 1
	case "hard":
		h += 3
	}
	return min(h, 12)
}

// buildSchedule rotates through every chapter, one morning session per
// day, with a review day every seventh day.
func buildSchedule(subjects []subject, days int, style string, start time.Time) scheduleReport {
	var topics []string
	for _, s := range subjects {
		for _, ch := range s.Chapters {
			topics = append(topics, ch.Name)
		}
	}
	if len(topics) == 0 {
		topics = []string{"Syllabus overview"}
	}
	methods := studyMethods[style]

	out := make([]scheduleDay, 0, days)
	next := 0
	for d := 1; d <= days; d++ {
		day := scheduleDay{
			Day:  d,
			Date: start.AddDate(0, 0, d-1).Format("2006-01-02"),
		}
		if d%7 == 0 {
			day.Sessions = []studySession{{
				Time:       "09:00-11:00",
				Topic:      "Weekly review",
				Activities: []string{"Active recall", "Practice test"},
			}}
			day.Notes = "Revisit the topics you found hardest this week."
		} else {
			topic := topics[next%len(topics)]
			next++
			day.Sessions = []studySession{
				{Time: "09:00-11:00", Topic: topic, Activities: []string{capitalize(methods[0]), "Practice"}},
				{Time: "16:00-17:00", Topic: topic + " (review)", Activities: []string{capitalize(methods[2])}},
			}
		}
		out = append(out, day)
	}
	return scheduleReport{Schedule: out}
}

// recommendResources suggests material for the first three subjects.
func recommendResources(subjects []subject, style string) resourceReport {
	kind := resourceTypes[style]
	var groups []resourceGroup
	for i, s := range subjects {
		if i == 3 {
			break
		}
		groups = append(groups, resourceGroup{
			Topic: s.Name,
			Resources: []resource{
				{Type: kind, Name: s.Name + " fundamentals", Description: "Core material matched to your learning style"},
				{Type: "practice", Name: s.Name + " problem set", Description: "Exercises for active recall"},
			},
		})
	}
	return resourceReport{ResourceRecommendations: groups}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
