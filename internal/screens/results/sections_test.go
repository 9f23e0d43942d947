package results

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/plan"
)

func TestBuildSections_LearningOnly(t *testing.T) {
	d := &plan.Detail{Learning: &plan.LearningAnalysis{
		PrimaryStyle: "auditory",
		Methods:      []string{"podcasts", "lectures"},
		Tips:         "Study in 45 minute blocks.",
	}}

	sections := BuildSections(d)
	require.Len(t, sections, 1)
	assert.Equal(t, "Learning Analysis", sections[0].Title)
	assert.Equal(t, []string{"Primary style: auditory"}, sections[0].Lines)
	require.Len(t, sections[0].Blocks, 2)
	assert.Equal(t, []string{"• podcasts", "• lectures"}, sections[0].Blocks[0].Lines)
}

func TestBuildSections_ScheduleElision(t *testing.T) {
	var days []plan.ScheduleDay
	for i := 1; i <= 10; i++ {
		days = append(days, plan.ScheduleDay{
			Day:      i,
			Sessions: []plan.StudySession{{Time: "09:00", Topic: fmt.Sprintf("Topic %d", i)}},
		})
	}

	sections := BuildSections(&plan.Detail{Schedule: days})
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Blocks, 7)
	assert.Equal(t, "...and 3 more days", sections[0].Notice)
	assert.Equal(t, "Day 7", sections[0].Blocks[6].Heading)
}

func TestBuildSections_ScheduleDetails(t *testing.T) {
	d := &plan.Detail{Schedule: []plan.ScheduleDay{{
		Day:  1,
		Date: "2025-12-03",
		Sessions: []plan.StudySession{
			{Time: "09:00-11:00", Topic: "Kinematics", Activities: []string{"Read", "Practice"}},
		},
		Notes: "Take breaks",
	}}}

	s := BuildSections(d)[0]
	assert.Empty(t, s.Notice)
	assert.Equal(t, "Day 1 · 2025-12-03", s.Blocks[0].Heading)
	assert.Equal(t, []string{
		"• 09:00-11:00: Kinematics",
		"    Read, Practice",
		"Notes: Take breaks",
	}, s.Blocks[0].Lines)
}

func TestBuildSections_ChapterElision(t *testing.T) {
	d := &plan.Detail{Syllabus: &plan.SyllabusAnalysis{
		TotalEstimatedHours: "40",
		Subjects: []plan.Subject{{
			Name: "Maths",
			Chapters: []plan.Chapter{
				{Name: "Algebra", EstimatedHours: "5", Difficulty: "easy"},
				{Name: "Geometry"},
				{Name: "Calculus"},
				{Name: "Statistics"},
				{Name: "Probability"},
			},
		}},
	}}

	s := BuildSections(d)[0]
	assert.Equal(t, "Syllabus Analysis", s.Title)
	assert.Equal(t, []string{"Total estimated hours: 40"}, s.Lines)
	require.Len(t, s.Blocks, 1)
	assert.Equal(t, "Maths (5 chapters)", s.Blocks[0].Heading)
	assert.Equal(t, []string{
		"• Algebra · 5h · easy",
		"• Geometry",
		"• Calculus",
		"...and 2 more",
	}, s.Blocks[0].Lines)
}

func TestBuildSections_Resources(t *testing.T) {
	var groups []plan.ResourceGroup
	for i := 0; i < 6; i++ {
		groups = append(groups, plan.ResourceGroup{Topic: fmt.Sprintf("T%d", i)})
	}
	groups[0].Resources = []plan.Resource{{Type: "video", Name: "Khan Academy", Description: "Free lectures"}}

	s := BuildSections(&plan.Detail{Resources: groups})[0]
	assert.Len(t, s.Blocks, 5)
	assert.Equal(t, []string{"• Khan Academy (video): Free lectures"}, s.Blocks[0].Lines)
	assert.Equal(t, []string{"No specific resources listed"}, s.Blocks[1].Lines)
}

func TestBuildSections_Progress(t *testing.T) {
	d := &plan.Detail{Progress: &plan.ProgressTracking{
		Checkpoints: []plan.Checkpoint{{Day: 7, Checkpoint: "Review Week 1", Assessment: "Quiz"}, {Day: 14, Checkpoint: "Review Week 2"}},
		Metrics:     []string{"Daily session completion"},
	}}

	s := BuildSections(d)[0]
	require.Len(t, s.Blocks, 2)
	assert.Equal(t, []string{"• Day 7: Review Week 1 (Quiz)", "• Day 14: Review Week 2"}, s.Blocks[0].Lines)
	assert.Equal(t, []string{"• Daily session completion"}, s.Blocks[1].Lines)
}

func TestBuildSections_Empty(t *testing.T) {
	assert.Empty(t, BuildSections(nil))
	assert.Empty(t, BuildSections(&plan.Detail{}))
	assert.Contains(t, RenderSections(nil, 60), EmptyDetailMessage)
}

func TestBuildSections_Order(t *testing.T) {
	d := &plan.Detail{
		Syllabus:  &plan.SyllabusAnalysis{TotalEstimatedHours: "10"},
		Learning:  &plan.LearningAnalysis{PrimaryStyle: "visual"},
		Schedule:  []plan.ScheduleDay{{Day: 1}},
		Resources: []plan.ResourceGroup{{Topic: "x"}},
		Progress:  &plan.ProgressTracking{Metrics: []string{"m"}},
	}
	var titles []string
	for _, s := range BuildSections(d) {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Syllabus Analysis", "Learning Analysis", "Study Schedule",
		"Recommended Resources", "Progress Tracking",
	}, titles)
}

func TestSummaryFields(t *testing.T) {
	res := &plan.GenerateResult{PlanID: "plan_1733212345", Summary: plan.Summary{DurationDays: 30}}
	fields := SummaryFields(res.PlanID, res)
	assert.Equal(t, [][2]string{
		{"Duration", "30 days"},
		{"Total hours", "Varies"},
		{"Learning style", "Mixed"},
		{"Plan ID", "plan_1733212..."},
	}, fields)

	res.Summary.TotalEstimatedHours = "120"
	res.Summary.PrimaryLearningStyle = "visual"
	res.Summary.CreatedAt = "2025-12-03T10:00:00"
	fields = SummaryFields(res.PlanID, res)
	assert.Equal(t, "120", fields[1][1])
	assert.Equal(t, "visual", fields[2][1])
	assert.Equal(t, [2]string{"Created", "2025-12-03T10:00:00"}, fields[4])
}
