// Package mockapi is an offline stand-in for the study plan backend. It
// serves the same HTTP contracts and builds plans with local heuristics
// instead of language models.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "Study Plan Generator"

	// Engine is reported as the health endpoint's llm field.
	Engine = "offline-heuristics"

	defaultDurationDays = 30
	maxDurationDays     = 365
	maxBodyBytes        = 1 << 20
)

// Server holds generated plans in memory.
type Server struct {
	mu    sync.RWMutex
	plans map[string]*storedPlan

	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithIDGenerator overrides plan id generation.
func WithIDGenerator(f func() string) Option {
	return func(s *Server) { s.newID = f }
}

// New creates an empty Server.
func New(opts ...Option) *Server {
	s := &Server{
		plans:  make(map[string]*storedPlan),
		now:    time.Now,
		newID:  newPlanID,
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func newPlanID() string {
	return "plan_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Post("/generate-plan", s.handleGenerate)
		api.Get("/plan/{planID}", s.handleGetPlan)
		api.Get("/plan/{planID}/pdf", s.handlePDF)
		api.Get("/health", s.handleHealth)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("mock backend listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

type generateInput struct {
	syllabus string
	prefs    string
	days     int
}

// readGenerateInput accepts a JSON body or a form post. A missing duration
// means the default. A non-empty problem is the 400 message.
func readGenerateInput(r *http.Request) (in generateInput, problem string) {
	duration := ""

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return in, "Invalid request body"
		}
		in.syllabus = r.PostForm.Get("syllabus_text")
		in.prefs = r.PostForm.Get("learning_preferences")
		duration = r.PostForm.Get("study_duration_days")
	} else {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil || !gjson.ValidBytes(raw) {
			return in, "Invalid request body"
		}
		body := gjson.ParseBytes(raw)
		in.syllabus = body.Get("syllabus_text").String()
		in.prefs = body.Get("learning_preferences").String()
		duration = body.Get("study_duration_days").String()
	}

	in.syllabus = strings.TrimSpace(in.syllabus)
	in.prefs = strings.TrimSpace(in.prefs)
	in.days = defaultDurationDays
	if d := strings.TrimSpace(duration); d != "" {
		n := gjson.Parse(d)
		if n.Type != gjson.Number {
			return in, "study_duration_days must be a number"
		}
		// Fractions truncate toward zero.
		in.days = int(n.Num)
	}
	return in, ""
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	in, problem := readGenerateInput(r)
	if problem != "" {
		RespondError(w, http.StatusBadRequest, problem)
		return
	}
	if in.syllabus == "" {
		RespondError(w, http.StatusBadRequest, "Syllabus text is required")
		return
	}
	if in.prefs == "" {
		RespondError(w, http.StatusBadRequest, "Learning preferences are required")
		return
	}
	if in.days < 1 || in.days > maxDurationDays {
		RespondError(w, http.StatusBadRequest, fmt.Sprintf("study_duration_days must be between 1 and %d", maxDurationDays))
		return
	}

	p := buildPlan(in.syllabus, in.prefs, in.days, s.now())
	id := s.newID()

	s.mu.Lock()
	s.plans[id] = p
	s.mu.Unlock()

	s.logger.Info().Str("plan_id", id).Int("duration_days", in.days).Msg("plan generated")

	RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"plan_id": id,
		"message": "Study plan generated successfully",
		"summary": map[string]any{
			"created_at":             p.CreatedAt,
			"duration_days":          p.DurationDays,
			"total_estimated_hours":  p.SyllabusAnalysis.TotalEstimatedHours,
			"primary_learning_style": p.LearningAnalysis.PrimaryLearningStyle,
		},
	})
}

func (s *Server) lookup(id string) (*storedPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	return p, ok
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(chi.URLParam(r, "planID"))
	if !ok {
		RespondError(w, http.StatusNotFound, "Plan not found")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"plan":    p,
	})
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "planID")
	p, ok := s.lookup(id)
	if !ok {
		RespondError(w, http.StatusNotFound, "Plan not found")
		return
	}
	body, err := renderPDF(p, s.now())
	if err != nil {
		s.logger.Error().Err(err).Str("plan_id", id).Msg("pdf rendering failed")
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=study_plan_%s.pdf", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   ServiceName,
		"agents":    3,
		"llm":       Engine,
		"timestamp": s.now().Format("2006-01-02T15:04:05"),
	})
}

// PlanCount reports how many plans are held.
func (s *Server) PlanCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}
