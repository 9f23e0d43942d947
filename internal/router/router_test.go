package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	id        screen.ID
	initCount int
	resets    int
	updates   int
}

func (s *stubScreen) ID() screen.ID { return s.id }
func (s *stubScreen) Init() tea.Cmd {
	s.initCount++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return string(s.id) }
func (s *stubScreen) Title() string        { return string(s.id) }
func (s *stubScreen) Reset()               { s.resets++ }

func newTestRouter() (*Router, *stubScreen, *stubScreen, *stubScreen) {
	home := &stubScreen{id: screen.Home}
	form := &stubScreen{id: screen.PlanForm}
	results := &stubScreen{id: screen.Results}
	return New(home, form, results), home, form, results
}

func TestNavigateHappyPath(t *testing.T) {
	r, _, form, results := newTestRouter()

	if _, err := r.Navigate(screen.PlanForm); err != nil {
		t.Fatalf("home -> plan-form: %v", err)
	}
	if form.initCount != 1 {
		t.Errorf("expected Init() on plan-form, got %d calls", form.initCount)
	}

	if _, err := r.Navigate(screen.Results); err != nil {
		t.Fatalf("plan-form -> results: %v", err)
	}
	if r.ActiveID() != screen.Results || results.initCount != 1 {
		t.Errorf("expected results active and initialised")
	}
}

func TestNavigateRejected(t *testing.T) {
	tests := []struct {
		name string
		path []screen.ID
		to   screen.ID
	}{
		{"home to results", nil, screen.Results},
		{"home to home", nil, screen.Home},
		{"results to plan-form", []screen.ID{screen.PlanForm, screen.Results}, screen.PlanForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := newTestRouter()
			for _, id := range tt.path {
				if _, err := r.Navigate(id); err != nil {
					t.Fatalf("setup navigate %s: %v", id, err)
				}
			}
			before := r.ActiveID()
			_, err := r.Navigate(tt.to)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if r.ActiveID() != before {
				t.Errorf("active changed to %s on rejected transition", r.ActiveID())
			}
		})
	}
}

func TestNavigateUnknown(t *testing.T) {
	r := New(&stubScreen{id: screen.Home})
	_, err := r.Navigate(screen.PlanForm)
	if !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestHomeResetsScreens(t *testing.T) {
	r, home, form, results := newTestRouter()
	r.Navigate(screen.PlanForm)
	r.Navigate(screen.Results)

	if _, err := r.Update(HomeMsg{}); err != nil {
		t.Fatalf("home: %v", err)
	}
	if r.ActiveID() != screen.Home {
		t.Errorf("expected home active, got %s", r.ActiveID())
	}
	for _, s := range []*stubScreen{home, form, results} {
		if s.resets != 1 {
			t.Errorf("%s: resets = %d, want 1", s.id, s.resets)
		}
	}
}

func TestHomeNoopOnHome(t *testing.T) {
	r, home, _, _ := newTestRouter()
	if _, err := r.Home(); err != nil {
		t.Fatalf("home: %v", err)
	}
	if home.resets != 0 {
		t.Errorf("expected no reset while already home")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, home, form, _ := newTestRouter()
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if home.updates != 1 || form.updates != 0 {
		t.Errorf("expected update on home only")
	}
	if r.View(80, 24) != "home" {
		t.Errorf("expected home view")
	}
}

func TestNavigateMsg(t *testing.T) {
	r, _, _, _ := newTestRouter()
	msg := Navigate(screen.PlanForm)()
	if _, err := r.Update(msg); err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.ActiveID() != screen.PlanForm {
		t.Errorf("expected plan-form active, got %s", r.ActiveID())
	}
}
