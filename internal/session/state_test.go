package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/studyplan/internal/plan"
)

func TestStateSetAndReset(t *testing.T) {
	var s State
	assert.False(t, s.HasPlan())

	res := &plan.GenerateResult{PlanID: "plan_1733212345"}
	s.Set(res)
	assert.True(t, s.HasPlan())
	assert.Equal(t, "plan_1733212345", s.PlanID)
	assert.Same(t, res, s.Result)

	s.Reset()
	assert.False(t, s.HasPlan())
	assert.Empty(t, s.PlanID)
	assert.Nil(t, s.Result)
}

func TestStateSetNilClears(t *testing.T) {
	s := State{PlanID: "p1", Result: &plan.GenerateResult{PlanID: "p1"}}
	s.Set(nil)
	assert.False(t, s.HasPlan())
}

func TestStateEmptyIDHasNoPlan(t *testing.T) {
	var s State
	s.Set(&plan.GenerateResult{})
	assert.False(t, s.HasPlan())
}

func TestHasPlanOnCopy(t *testing.T) {
	snapshot := func(s State) State { return s }

	var s State
	s.Set(&plan.GenerateResult{PlanID: "plan_1"})
	assert.True(t, snapshot(s).HasPlan())

	s.Reset()
	assert.False(t, snapshot(s).HasPlan())
}

func TestAbbreviateID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plan_1", "plan_1"},
		{"plan_1733212", "plan_1733212"},
		{"plan_1733212345", "plan_1733212..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AbbreviateID(tt.in), tt.in)
	}
}
