package plan

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when a payload is not valid JSON.
var ErrMalformed = errors.New("malformed plan payload")

// DecodeGenerateResult reads a plan generation response body. Fields the
// backend omits are left at their zero value.
func DecodeGenerateResult(raw []byte) (*GenerateResult, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(raw)
	summary := root.Get("summary")

	return &GenerateResult{
		PlanID:  text(root.Get("plan_id")),
		Message: text(root.Get("message")),
		Summary: Summary{
			DurationDays:         int(summary.Get("duration_days").Int()),
			TotalEstimatedHours:  text(summary.Get("total_estimated_hours")),
			PrimaryLearningStyle: text(summary.Get("primary_learning_style")),
			CreatedAt:            text(summary.Get("created_at")),
		},
	}, nil
}

// DecodeDetail reads the "plan" object of a plan detail response. Each
// sub-report is decoded independently; a missing, failed or empty one is
// left absent without affecting the others.
func DecodeDetail(raw []byte) (*Detail, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(raw)

	return &Detail{
		Syllabus:  decodeSyllabus(root.Get("syllabus_analysis")),
		Learning:  decodeLearning(root.Get("learning_analysis")),
		Schedule:  decodeSchedule(root.Get("schedule")),
		Resources: decodeResources(root.Get("resources")),
		Progress:  decodeProgress(root.Get("progress_tracking")),
	}, nil
}

func decodeSyllabus(r gjson.Result) *SyllabusAnalysis {
	if !r.IsObject() {
		return nil
	}
	s := &SyllabusAnalysis{
		TotalEstimatedHours: text(r.Get("total_estimated_hours")),
	}
	for _, sub := range r.Get("subjects").Array() {
		if !sub.IsObject() {
			continue
		}
		subject := Subject{Name: text(sub.Get("name"))}
		for _, ch := range sub.Get("chapters").Array() {
			if ch.IsObject() {
				subject.Chapters = append(subject.Chapters, Chapter{
					Name:           text(ch.Get("name")),
					EstimatedHours: text(ch.Get("estimated_hours")),
					Difficulty:     text(ch.Get("difficulty")),
				})
				continue
			}
			if name := text(ch); name != "" {
				subject.Chapters = append(subject.Chapters, Chapter{Name: name})
			}
		}
		s.Subjects = append(s.Subjects, subject)
	}
	if len(s.Subjects) == 0 && s.TotalEstimatedHours == "" {
		return nil
	}
	return s
}

func decodeLearning(r gjson.Result) *LearningAnalysis {
	if !r.IsObject() {
		return nil
	}
	l := &LearningAnalysis{
		PrimaryStyle: text(r.Get("primary_learning_style")),
		Methods:      scalarList(r.Get("recommended_study_methods")),
		Tips:         text(r.Get("personalized_tips")),
	}
	if l.PrimaryStyle == "" && len(l.Methods) == 0 && l.Tips == "" {
		return nil
	}
	return l
}

func decodeSchedule(r gjson.Result) []ScheduleDay {
	days := r
	if !r.IsArray() {
		days = r.Get("schedule")
	}
	var out []ScheduleDay
	for i, d := range days.Array() {
		if !d.IsObject() {
			continue
		}
		day := ScheduleDay{
			Day:   int(d.Get("day").Int()),
			Date:  text(d.Get("date")),
			Notes: text(d.Get("notes")),
		}
		if day.Day == 0 {
			day.Day = i + 1
		}
		for _, s := range d.Get("sessions").Array() {
			if !s.IsObject() {
				continue
			}
			day.Sessions = append(day.Sessions, StudySession{
				Time:       text(s.Get("time")),
				Topic:      text(s.Get("topic")),
				Activities: scalarList(s.Get("activities")),
			})
		}
		out = append(out, day)
	}
	return out
}

func decodeResources(r gjson.Result) []ResourceGroup {
	groups := r
	if !r.IsArray() {
		groups = r.Get("resource_recommendations")
	}
	var out []ResourceGroup
	for _, g := range groups.Array() {
		if !g.IsObject() {
			continue
		}
		group := ResourceGroup{Topic: text(g.Get("topic"))}
		for _, res := range g.Get("resources").Array() {
			if !res.IsObject() {
				continue
			}
			group.Resources = append(group.Resources, Resource{
				Type:        text(res.Get("type")),
				Name:        text(res.Get("name")),
				Description: text(res.Get("description")),
			})
		}
		out = append(out, group)
	}
	return out
}

func decodeProgress(r gjson.Result) *ProgressTracking {
	if !r.IsObject() {
		return nil
	}
	p := &ProgressTracking{}
	for _, c := range r.Get("checkpoint_schedule").Array() {
		if !c.IsObject() {
			continue
		}
		p.Checkpoints = append(p.Checkpoints, Checkpoint{
			Day:        int(c.Get("day").Int()),
			Checkpoint: text(c.Get("checkpoint")),
			Assessment: text(c.Get("assessment")),
		})
	}
	// Metrics keep string entries only.
	for _, m := range r.Get("tracking_metrics").Array() {
		if m.Type == gjson.String && strings.TrimSpace(m.Str) != "" {
			p.Metrics = append(p.Metrics, strings.TrimSpace(m.Str))
		}
	}
	if len(p.Checkpoints) == 0 && len(p.Metrics) == 0 {
		return nil
	}
	return p
}

// text returns the display form of a scalar value, or "" for anything
// missing, null or structured.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return strings.TrimSpace(r.String())
	default:
		return ""
	}
}

// scalarList accepts either an array of scalars or a single scalar.
func scalarList(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	var out []string
	for _, item := range r.Array() {
		if s := text(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
