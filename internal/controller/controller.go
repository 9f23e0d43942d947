// Package controller owns the active plan and runs the backend operations
// the screens trigger. It holds no UI state; every async operation is
// returned as a tea.Cmd that reports back with a typed message.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/planform"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
)

// ErrNoPlan is returned when an operation needs a plan and none is active.
var ErrNoPlan = errors.New("no active study plan")

// syllabusExcerptLen bounds the syllabus text kept in the local history.
const syllabusExcerptLen = 120

// GeneratedMsg reports the outcome of a plan generation.
type GeneratedMsg struct {
	Request api.GenerateRequest
	Result  *plan.GenerateResult
	Err     error
}

// DetailMsg reports the outcome of a plan detail fetch.
type DetailMsg struct {
	PlanID string
	Detail *plan.Detail
	Err    error
}

// DownloadedMsg reports the outcome of a PDF download.
type DownloadedMsg struct {
	PlanID string
	Path   string
	Bytes  int64
	Err    error
}

// HealthMsg reports the backend status.
type HealthMsg struct {
	Health *api.Health
	Err    error
}

// Options configures a Controller.
type Options struct {
	Service api.Service

	// Plans records generated plans locally. Optional.
	Plans store.PlanRepo

	// DownloadDir receives PDF downloads. Empty means the working directory.
	DownloadDir string

	Logger zerolog.Logger
}

// Controller is the owned application state plus the operations on it.
// It must only be used from the Bubble Tea update loop.
type Controller struct {
	svc         api.Service
	plans       store.PlanRepo
	downloadDir string
	logger      zerolog.Logger
	state       session.State
}

// New creates a Controller with no active plan.
func New(opts Options) *Controller {
	dir := opts.DownloadDir
	if dir == "" {
		dir = "."
	}
	return &Controller{
		svc:         opts.Service,
		plans:       opts.Plans,
		downloadDir: dir,
		logger:      opts.Logger,
	}
}

// State returns a copy of the session state.
func (c *Controller) State() session.State {
	return c.state
}

// Reset clears the active plan.
func (c *Controller) Reset() {
	if c.state.HasPlan() {
		c.logger.Debug().Str("plan_id", c.state.PlanID).Msg("session reset")
	}
	c.state.Reset()
}

// Generate validates v and returns the command that submits it. A
// *planform.ValidationError means nothing was sent.
func (c *Controller) Generate(v planform.Values) (tea.Cmd, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	req := api.GenerateRequest{
		SyllabusText:        strings.TrimSpace(v.Syllabus),
		LearningPreferences: v.ComposePreferences(),
		StudyDurationDays:   v.DurationDays(),
	}
	svc := c.svc
	return func() tea.Msg {
		res, err := svc.GeneratePlan(context.Background(), req)
		return GeneratedMsg{Request: req, Result: res, Err: err}
	}, nil
}

// ApplyGenerated stores a successful generation as the active plan. The
// identifier and result are set together or not at all.
func (c *Controller) ApplyGenerated(msg GeneratedMsg) error {
	if msg.Err != nil {
		return msg.Err
	}
	if msg.Result == nil || msg.Result.PlanID == "" {
		return &api.RequestError{
			Op:      api.OpGeneratePlan,
			Message: api.FallbackMessage(api.OpGeneratePlan),
			Err:     plan.ErrMalformed,
		}
	}

	c.state.Set(msg.Result)
	c.record(msg)
	return nil
}

func (c *Controller) record(msg GeneratedMsg) {
	if c.plans == nil {
		return
	}
	rec := store.PlanRecord{
		PlanID:          msg.Result.PlanID,
		CreatedAt:       time.Now(),
		DurationDays:    msg.Result.Summary.DurationDays,
		TotalHours:      msg.Result.Summary.TotalEstimatedHours,
		LearningStyle:   msg.Result.Summary.PrimaryLearningStyle,
		SyllabusExcerpt: excerpt(msg.Request.SyllabusText, syllabusExcerptLen),
	}
	if rec.DurationDays == 0 {
		rec.DurationDays = msg.Request.StudyDurationDays
	}
	if err := c.plans.SavePlan(context.Background(), rec); err != nil {
		c.logger.Error().Err(err).Str("plan_id", rec.PlanID).Msg("failed to record plan")
	}
}

// FetchDetail returns the command that loads the active plan's detail.
// It is never cached; each call issues a new request.
func (c *Controller) FetchDetail() (tea.Cmd, error) {
	if !c.state.HasPlan() {
		return nil, ErrNoPlan
	}
	planID := c.state.PlanID
	svc := c.svc
	return func() tea.Msg {
		d, err := svc.GetPlan(context.Background(), planID)
		return DetailMsg{PlanID: planID, Detail: d, Err: err}
	}, nil
}

// PDFPath returns where the PDF for planID is saved.
func (c *Controller) PDFPath(planID string) string {
	return filepath.Join(c.downloadDir, PDFFileName(planID))
}

// PDFFileName is the download file name for planID.
func PDFFileName(planID string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, planID)
	return "study_plan_" + safe + ".pdf"
}

// DownloadPDF returns the command that saves the active plan's PDF.
func (c *Controller) DownloadPDF() (tea.Cmd, error) {
	if !c.state.HasPlan() {
		return nil, ErrNoPlan
	}
	planID := c.state.PlanID
	path := c.PDFPath(planID)
	svc := c.svc
	return func() tea.Msg {
		n, err := savePDF(svc, planID, path)
		return DownloadedMsg{PlanID: planID, Path: path, Bytes: n, Err: err}
	}, nil
}

func savePDF(svc api.Service, planID, path string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create download dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	n, err := svc.DownloadPDF(context.Background(), planID, f)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return n, nil
}

// Health returns the command that checks the backend status.
func (c *Controller) Health() tea.Cmd {
	svc := c.svc
	return func() tea.Msg {
		h, err := svc.Health(context.Background())
		return HealthMsg{Health: h, Err: err}
	}
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
