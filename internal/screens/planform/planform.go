package planform

import (
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/notify"
	form "github.com/abhisek/studyplan/internal/planform"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Focus order of the form fields.
const (
	fieldSyllabus = iota
	fieldStyle
	fieldHours
	fieldPace
	fieldPreferences
	fieldDuration
	fieldSubmit
	fieldCount
)

const (
	generatingStatus = "Generating your study plan. This can take a minute..."
	successNotice    = "Study plan generated successfully!"
)

// FormScreen collects the syllabus and preferences and submits them.
type FormScreen struct {
	ctrl *controller.Controller

	syllabus    components.TextArea
	style       components.Choice
	hours       components.Choice
	pace        components.Choice
	preferences components.TextInput
	duration    components.TextInput
	submit      components.Button
	focus       int

	loading bool
	spinner spinner.Model

	// status is the inline status line under the form.
	status    string
	statusErr bool
}

var (
	_ screen.Screen          = (*FormScreen)(nil)
	_ screen.Resetter        = (*FormScreen)(nil)
	_ screen.KeyHintProvider = (*FormScreen)(nil)
)

// New creates the plan-form screen with default values.
func New(ctrl *controller.Controller) *FormScreen {
	s := &FormScreen{
		ctrl:    ctrl,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	s.build()
	return s
}

func (s *FormScreen) build() {
	defaults := form.Defaults()
	s.syllabus = components.NewTextArea("Paste your syllabus, course outline or topic list here...", 70, 8)
	s.syllabus.SetValue(defaults.Syllabus)
	s.style = components.NewChoice("Learning style", choiceOptions(form.LearningStyles))
	s.hours = components.NewChoice("Daily study hours", choiceOptions(form.StudyHours))
	s.pace = components.NewChoice("Learning pace", choiceOptions(form.Paces))
	s.preferences = components.NewTextInput("e.g. I prefer practice problems over reading", defaults.Preferences, false, 300)
	s.duration = components.NewTextInput("30", defaults.Duration, true, 4)
	s.submit = components.NewButton("Generate Study Plan", nil)
	s.focus = fieldSyllabus
}

func choiceOptions(opts []form.Option) []components.ChoiceOption {
	out := make([]components.ChoiceOption, len(opts))
	for i, o := range opts {
		out[i] = components.ChoiceOption{Value: o.Value, Label: o.Label}
	}
	return out
}

func (s *FormScreen) ID() screen.ID { return screen.PlanForm }

// Init focuses the first field whenever the form becomes active.
func (s *FormScreen) Init() tea.Cmd {
	return s.setFocus(s.focus)
}

// Values returns the current form content.
func (s *FormScreen) Values() form.Values {
	return form.Values{
		Syllabus:      s.syllabus.Value(),
		LearningStyle: s.style.Value(),
		StudyHours:    s.hours.Value(),
		Pace:          s.pace.Value(),
		Preferences:   s.preferences.Value(),
		Duration:      s.duration.Value(),
	}
}

// Reset restores every field to its default and clears the loader and
// status line.
func (s *FormScreen) Reset() {
	s.syllabus.Reset()
	s.style.Reset()
	s.hours.Reset()
	s.pace.Reset()
	s.preferences.Reset()
	s.duration.Reset()
	s.submit.Focused = false
	s.focus = fieldSyllabus
	s.loading = false
	s.status = ""
	s.statusErr = false
}

// Loading reports whether a generation request is outstanding.
func (s *FormScreen) Loading() bool {
	return s.loading
}

// Status returns the inline status text.
func (s *FormScreen) Status() string {
	return s.status
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width)
		return s, nil

	case controller.GeneratedMsg:
		return s, s.handleGenerated(msg)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "ctrl+s":
			return s, s.submitForm()
		case "enter":
			if s.focus == fieldSubmit {
				return s, s.submitForm()
			}
		}
	}

	return s, s.updateFocused(msg)
}

func (s *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldSyllabus:
		s.syllabus, cmd = s.syllabus.Update(msg)
	case fieldStyle:
		s.style, cmd = s.style.Update(msg)
	case fieldHours:
		s.hours, cmd = s.hours.Update(msg)
	case fieldPace:
		s.pace, cmd = s.pace.Update(msg)
	case fieldPreferences:
		s.preferences, cmd = s.preferences.Update(msg)
	case fieldDuration:
		s.duration, cmd = s.duration.Update(msg)
	case fieldSubmit:
		s.submit, cmd = s.submit.Update(msg)
	}
	return cmd
}

// submitForm validates and sends the form. Validation failures only raise
// a notification; the loader is never shown for them.
func (s *FormScreen) submitForm() tea.Cmd {
	cmd, err := s.ctrl.Generate(s.Values())
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return tea.Batch(notify.Error(verr.Message), s.setFocus(fieldFor(verr.Field)))
		}
		return notify.Error(err.Error())
	}

	s.loading = true
	s.status = generatingStatus
	s.statusErr = false
	return tea.Batch(s.spinner.Tick, cmd)
}

func (s *FormScreen) handleGenerated(msg controller.GeneratedMsg) tea.Cmd {
	s.loading = false
	if err := s.ctrl.ApplyGenerated(msg); err != nil {
		s.status = err.Error()
		s.statusErr = true
		return notify.Error(err.Error())
	}
	s.status = ""
	s.statusErr = false
	return tea.Batch(notify.Success(successNotice), router.Navigate(screen.Results))
}

func fieldFor(name string) int {
	switch name {
	case form.FieldLearningStyle:
		return fieldStyle
	case form.FieldStudyHours:
		return fieldHours
	case form.FieldPace:
		return fieldPace
	default:
		return fieldSyllabus
	}
}

// setFocus moves keyboard focus to field i.
func (s *FormScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.syllabus.Blur()
	s.preferences.Blur()
	s.duration.Blur()
	s.style.Focused = i == fieldStyle
	s.hours.Focused = i == fieldHours
	s.pace.Focused = i == fieldPace
	s.submit.Focused = i == fieldSubmit

	switch i {
	case fieldSyllabus:
		return s.syllabus.Focus()
	case fieldPreferences:
		return s.preferences.Focus()
	case fieldDuration:
		return s.duration.Focus()
	}
	return nil
}

func (s *FormScreen) resize(width int) {
	cw := components.ContentWidth(width) - 4
	s.syllabus.SetWidth(cw)
	s.preferences.SetWidth(cw - 2)
	s.duration.SetWidth(6)
}

func (s *FormScreen) Title() string {
	return "New Study Plan"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Ctrl+S", Description: "Generate"},
	}
}
