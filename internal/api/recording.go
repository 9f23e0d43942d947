package api

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/studyplan/internal/plan"
	"github.com/abhisek/studyplan/internal/store"
)

// RecordingService is a decorator that logs every backend call and appends
// it to the request event log.
type RecordingService struct {
	inner  Service
	events store.EventRepo
	logger zerolog.Logger
}

// WithRecording wraps a Service with logging and event recording. A nil
// repo disables recording but keeps logging.
func WithRecording(s Service, repo store.EventRepo, logger zerolog.Logger) Service {
	return &RecordingService{inner: s, events: repo, logger: logger}
}

func (r *RecordingService) GeneratePlan(ctx context.Context, req GenerateRequest) (*plan.GenerateResult, error) {
	ctx, done := r.begin(ctx, OpGeneratePlan, "")
	res, err := r.inner.GeneratePlan(ctx, req)
	planID := ""
	if res != nil {
		planID = res.PlanID
	}
	done(planID, err)
	return res, err
}

func (r *RecordingService) GetPlan(ctx context.Context, planID string) (*plan.Detail, error) {
	ctx, done := r.begin(ctx, OpGetPlan, planID)
	d, err := r.inner.GetPlan(ctx, planID)
	done(planID, err)
	return d, err
}

func (r *RecordingService) DownloadPDF(ctx context.Context, planID string, w io.Writer) (int64, error) {
	ctx, done := r.begin(ctx, OpDownloadPDF, planID)
	n, err := r.inner.DownloadPDF(ctx, planID, w)
	done(planID, err)
	return n, err
}

func (r *RecordingService) Health(ctx context.Context) (*Health, error) {
	ctx, done := r.begin(ctx, OpHealth, "")
	h, err := r.inner.Health(ctx)
	done("", err)
	return h, err
}

// begin tags ctx with a request id and returns a func that records the
// outcome once the call returns.
func (r *RecordingService) begin(ctx context.Context, op, planID string) (context.Context, func(string, error)) {
	reqID := uuid.NewString()
	ctx = WithRequestID(ctx, reqID)
	start := time.Now()

	return ctx, func(resultPlanID string, err error) {
		latency := time.Since(start).Milliseconds()
		if resultPlanID == "" {
			resultPlanID = planID
		}

		data := store.RequestEventData{
			Op:        op,
			PlanID:    resultPlanID,
			LatencyMs: latency,
			Success:   err == nil,
		}
		if err == nil {
			data.Status = 200
		}

		var ev *zerolog.Event
		if err != nil {
			data.ErrorMessage = err.Error()
			var re *RequestError
			if errors.As(err, &re) {
				data.Status = re.Status
				ev = r.logger.Warn().Str("detail", re.Detail())
			} else {
				ev = r.logger.Warn().Err(err)
			}
		} else {
			ev = r.logger.Info()
		}
		ev.Str("op", op).
			Str("request_id", reqID).
			Str("plan_id", resultPlanID).
			Int("status", data.Status).
			Int64("latency_ms", latency).
			Msg("backend request")

		if r.events == nil {
			return
		}
		// Don't fail the request if recording fails.
		if logErr := r.events.AppendRequestEvent(context.WithoutCancel(ctx), data); logErr != nil {
			r.logger.Error().Err(logErr).Str("op", op).Msg("failed to record request event")
		}
	}
}
