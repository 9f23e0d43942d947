package session

import "github.com/abhisek/studyplan/internal/plan"

// State is the currently active plan. The zero value has no plan.
//
// State is owned by the controller and mutated only from the Bubble Tea
// update loop, so it carries no lock.
type State struct {
	PlanID string
	Result *plan.GenerateResult
}

// Set records a successful generation. The identifier and result are
// always replaced together.
func (s *State) Set(res *plan.GenerateResult) {
	if res == nil {
		s.Reset()
		return
	}
	s.PlanID = res.PlanID
	s.Result = res
}

// Reset clears the active plan.
func (s *State) Reset() {
	s.PlanID = ""
	s.Result = nil
}

// HasPlan reports whether a non-empty plan identifier is held.
func (s State) HasPlan() bool {
	return s.PlanID != "" && s.Result != nil
}

// abbrevLen is the number of identifier characters kept by AbbreviateID.
const abbrevLen = 12

// AbbreviateID shortens long plan identifiers for display.
func AbbreviateID(id string) string {
	r := []rune(id)
	if len(r) <= abbrevLen {
		return id
	}
	return string(r[:abbrevLen]) + "..."
}
