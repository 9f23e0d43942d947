package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGenerateResult(t *testing.T) {
	raw := []byte(`{
		"success": true,
		"plan_id": "plan_1733212345",
		"message": "Study plan generated successfully",
		"summary": {
			"created_at": "2025-12-03T10:00:00",
			"duration_days": 30,
			"total_estimated_hours": 120,
			"primary_learning_style": "visual"
		}
	}`)

	res, err := DecodeGenerateResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "plan_1733212345", res.PlanID)
	assert.Equal(t, "Study plan generated successfully", res.Message)
	assert.Equal(t, 30, res.Summary.DurationDays)
	assert.Equal(t, "120", res.Summary.TotalEstimatedHours)
	assert.Equal(t, "visual", res.Summary.PrimaryLearningStyle)
	assert.Equal(t, "2025-12-03T10:00:00", res.Summary.CreatedAt)
}

func TestDecodeGenerateResult_OptionalFieldsAbsent(t *testing.T) {
	res, err := DecodeGenerateResult([]byte(`{"plan_id":"p1","summary":{"duration_days":14}}`))
	require.NoError(t, err)
	assert.Equal(t, 14, res.Summary.DurationDays)
	assert.Empty(t, res.Summary.TotalEstimatedHours)
	assert.Empty(t, res.Summary.PrimaryLearningStyle)
}

func TestDecodeGenerateResult_Malformed(t *testing.T) {
	_, err := DecodeGenerateResult([]byte(`{"plan_id":`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeDetail_Full(t *testing.T) {
	raw := []byte(`{
		"syllabus_analysis": {
			"subjects": [
				{"name": "Physics", "chapters": [
					{"name": "Kinematics", "estimated_hours": 5, "difficulty": "medium"},
					{"name": "Dynamics", "estimated_hours": "6", "difficulty": "hard"}
				]}
			],
			"total_estimated_hours": 11
		},
		"learning_analysis": {
			"primary_learning_style": "visual",
			"recommended_study_methods": ["video lectures", "diagrams"],
			"personalized_tips": "Use 45-90 minute focused sessions."
		},
		"schedule": {"schedule": [
			{"day": 1, "date": "2025-12-03", "sessions": [
				{"time": "09:00-11:00", "topic": "Kinematics", "activities": ["Read", "Practice"]}
			]},
			{"day": 2, "sessions": [], "notes": "Rest early"}
		]},
		"resources": {"resource_recommendations": [
			{"topic": "Physics", "resources": [
				{"type": "video", "name": "Khan Academy", "description": "Free lectures"}
			]}
		]},
		"progress_tracking": {
			"checkpoint_schedule": [{"day": 7, "checkpoint": "Review Week 1", "assessment": "Quiz"}],
			"tracking_metrics": ["Daily session completion", 42, {"k": "v"}, "Practice accuracy"]
		}
	}`)

	d, err := DecodeDetail(raw)
	require.NoError(t, err)

	require.NotNil(t, d.Syllabus)
	assert.Equal(t, "11", d.Syllabus.TotalEstimatedHours)
	require.Len(t, d.Syllabus.Subjects, 1)
	assert.Equal(t, "Physics", d.Syllabus.Subjects[0].Name)
	require.Len(t, d.Syllabus.Subjects[0].Chapters, 2)
	assert.Equal(t, "6", d.Syllabus.Subjects[0].Chapters[1].EstimatedHours)

	require.NotNil(t, d.Learning)
	assert.Equal(t, []string{"video lectures", "diagrams"}, d.Learning.Methods)

	require.Len(t, d.Schedule, 2)
	assert.Equal(t, "2025-12-03", d.Schedule[0].Date)
	assert.Equal(t, []string{"Read", "Practice"}, d.Schedule[0].Sessions[0].Activities)
	assert.Equal(t, "Rest early", d.Schedule[1].Notes)

	require.Len(t, d.Resources, 1)
	assert.Equal(t, "Khan Academy", d.Resources[0].Resources[0].Name)

	require.NotNil(t, d.Progress)
	assert.Len(t, d.Progress.Checkpoints, 1)
	assert.Equal(t, []string{"Daily session completion", "Practice accuracy"}, d.Progress.Metrics)
	assert.False(t, d.IsEmpty())
}

func TestDecodeDetail_AbsentTolerant(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, d *Detail)
	}{
		{
			name: "empty object",
			raw:  `{}`,
			check: func(t *testing.T, d *Detail) {
				assert.True(t, d.IsEmpty())
			},
		},
		{
			name: "failed sub-reports",
			raw:  `{"syllabus_analysis":{"error":"Failed to parse JSON response"},"schedule":{"error":"x"},"resources":{"error":"x"}}`,
			check: func(t *testing.T, d *Detail) {
				assert.True(t, d.IsEmpty())
			},
		},
		{
			name: "learning only",
			raw:  `{"learning_analysis":{"primary_learning_style":"auditory"}}`,
			check: func(t *testing.T, d *Detail) {
				require.NotNil(t, d.Learning)
				assert.Nil(t, d.Syllabus)
				assert.Empty(t, d.Schedule)
				assert.Empty(t, d.Resources)
				assert.Nil(t, d.Progress)
			},
		},
		{
			name: "bare schedule array",
			raw:  `{"schedule":[{"sessions":[{"time":"10:00","topic":"Intro"}]}]}`,
			check: func(t *testing.T, d *Detail) {
				require.Len(t, d.Schedule, 1)
				assert.Equal(t, 1, d.Schedule[0].Day)
			},
		},
		{
			name: "metrics without strings",
			raw:  `{"progress_tracking":{"tracking_metrics":[1,2,null]}}`,
			check: func(t *testing.T, d *Detail) {
				assert.Nil(t, d.Progress)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeDetail([]byte(tt.raw))
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func TestDetailIsEmpty_Nil(t *testing.T) {
	var d *Detail
	assert.True(t, d.IsEmpty())
}
