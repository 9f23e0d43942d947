package results

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyplan/internal/plan"
)

// Display limits for the detail panel.
const (
	maxChaptersPerSubject = 3
	maxScheduleDays       = 7
	maxResourceGroups     = 5
)

// EmptyDetailMessage is shown when no section of the detail has data.
const EmptyDetailMessage = "No detailed plan data is available. Please try generating the plan again."

const noResourcesMessage = "No specific resources listed"

// Section is one titled part of the detail panel.
type Section struct {
	Title  string
	Lines  []string
	Blocks []Block

	// Notice is an elision message shown after the blocks.
	Notice string
}

// Block is a headed group of lines inside a section.
type Block struct {
	Heading string
	Lines   []string
}

// BuildSections turns a plan detail into the sections to render. Absent
// or empty sub-reports produce no section.
func BuildSections(d *plan.Detail) []Section {
	if d == nil {
		return nil
	}
	var out []Section
	if s, ok := syllabusSection(d.Syllabus); ok {
		out = append(out, s)
	}
	if s, ok := learningSection(d.Learning); ok {
		out = append(out, s)
	}
	if s, ok := scheduleSection(d.Schedule); ok {
		out = append(out, s)
	}
	if s, ok := resourcesSection(d.Resources); ok {
		out = append(out, s)
	}
	if s, ok := progressSection(d.Progress); ok {
		out = append(out, s)
	}
	return out
}

func syllabusSection(a *plan.SyllabusAnalysis) (Section, bool) {
	if a == nil || (a.TotalEstimatedHours == "" && len(a.Subjects) == 0) {
		return Section{}, false
	}
	s := Section{Title: "Syllabus Analysis"}
	if a.TotalEstimatedHours != "" {
		s.Lines = append(s.Lines, "Total estimated hours: "+a.TotalEstimatedHours)
	}
	for _, sub := range a.Subjects {
		name := sub.Name
		if name == "" {
			name = "Untitled subject"
		}
		b := Block{Heading: fmt.Sprintf("%s (%s)", name, plural(len(sub.Chapters), "chapter"))}
		for i, ch := range sub.Chapters {
			if i == maxChaptersPerSubject {
				b.Lines = append(b.Lines, fmt.Sprintf("...and %d more", len(sub.Chapters)-maxChaptersPerSubject))
				break
			}
			b.Lines = append(b.Lines, chapterLine(ch))
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s, true
}

func chapterLine(ch plan.Chapter) string {
	parts := []string{ch.Name}
	if ch.EstimatedHours != "" {
		parts = append(parts, ch.EstimatedHours+"h")
	}
	if ch.Difficulty != "" {
		parts = append(parts, ch.Difficulty)
	}
	return "• " + strings.Join(parts, " · ")
}

func learningSection(a *plan.LearningAnalysis) (Section, bool) {
	if a == nil || (a.PrimaryStyle == "" && len(a.Methods) == 0 && a.Tips == "") {
		return Section{}, false
	}
	s := Section{Title: "Learning Analysis"}
	if a.PrimaryStyle != "" {
		s.Lines = append(s.Lines, "Primary style: "+a.PrimaryStyle)
	}
	if len(a.Methods) > 0 {
		b := Block{Heading: "Recommended methods"}
		for _, m := range a.Methods {
			b.Lines = append(b.Lines, "• "+m)
		}
		s.Blocks = append(s.Blocks, b)
	}
	if a.Tips != "" {
		s.Blocks = append(s.Blocks, Block{Heading: "Tips", Lines: []string{a.Tips}})
	}
	return s, true
}

func scheduleSection(days []plan.ScheduleDay) (Section, bool) {
	if len(days) == 0 {
		return Section{}, false
	}
	s := Section{Title: "Study Schedule"}
	for i, d := range days {
		if i == maxScheduleDays {
			s.Notice = fmt.Sprintf("...and %d more days", len(days)-maxScheduleDays)
			break
		}
		heading := fmt.Sprintf("Day %d", d.Day)
		if d.Date != "" {
			heading += " · " + d.Date
		}
		b := Block{Heading: heading}
		for _, ss := range d.Sessions {
			b.Lines = append(b.Lines, sessionLine(ss))
			if len(ss.Activities) > 0 {
				b.Lines = append(b.Lines, "    "+strings.Join(ss.Activities, ", "))
			}
		}
		if d.Notes != "" {
			b.Lines = append(b.Lines, "Notes: "+d.Notes)
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s, true
}

func sessionLine(ss plan.StudySession) string {
	switch {
	case ss.Time != "" && ss.Topic != "":
		return "• " + ss.Time + ": " + ss.Topic
	case ss.Time != "":
		return "• " + ss.Time
	default:
		return "• " + ss.Topic
	}
}

func resourcesSection(groups []plan.ResourceGroup) (Section, bool) {
	if len(groups) == 0 {
		return Section{}, false
	}
	s := Section{Title: "Recommended Resources"}
	for i, g := range groups {
		if i == maxResourceGroups {
			break
		}
		topic := g.Topic
		if topic == "" {
			topic = "General"
		}
		b := Block{Heading: topic}
		for _, r := range g.Resources {
			line := "• " + r.Name
			if r.Type != "" {
				line += " (" + r.Type + ")"
			}
			if r.Description != "" {
				line += ": " + r.Description
			}
			b.Lines = append(b.Lines, line)
		}
		if len(b.Lines) == 0 {
			b.Lines = []string{noResourcesMessage}
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s, true
}

func progressSection(p *plan.ProgressTracking) (Section, bool) {
	if p == nil || (len(p.Checkpoints) == 0 && len(p.Metrics) == 0) {
		return Section{}, false
	}
	s := Section{Title: "Progress Tracking"}
	if len(p.Checkpoints) > 0 {
		b := Block{Heading: "Checkpoints"}
		for _, c := range p.Checkpoints {
			line := fmt.Sprintf("• Day %d: %s", c.Day, c.Checkpoint)
			if c.Assessment != "" {
				line += " (" + c.Assessment + ")"
			}
			b.Lines = append(b.Lines, line)
		}
		s.Blocks = append(s.Blocks, b)
	}
	if len(p.Metrics) > 0 {
		b := Block{Heading: "Tracking metrics"}
		for _, m := range p.Metrics {
			b.Lines = append(b.Lines, "• "+m)
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s, true
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
