package mockapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/abhisek/studyplan/internal/api"
)

var fixedNow = time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	n := 0
	s := New(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return "plan_test" + strings.Repeat("x", n)
		}),
	)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func validRequest() api.GenerateRequest {
	return api.GenerateRequest{
		SyllabusText:        "Algebra\nGeometry\nCalculus",
		LearningPreferences: "I am a visual learner. I can study 2-4 hours per day. I prefer a moderate learning pace.",
		StudyDurationDays:   14,
	}
}

func TestClientRoundTrip(t *testing.T) {
	srv, ts := newTestServer(t)
	client := api.NewClient(ts.URL)
	ctx := context.Background()

	res, err := client.GeneratePlan(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "plan_testx", res.PlanID)
	assert.Equal(t, "Study plan generated successfully", res.Message)
	assert.Equal(t, 14, res.Summary.DurationDays)
	assert.Equal(t, "10", res.Summary.TotalEstimatedHours)
	assert.Equal(t, "visual", res.Summary.PrimaryLearningStyle)
	assert.Equal(t, "2025-12-03T10:00:00", res.Summary.CreatedAt)
	assert.Equal(t, 1, srv.PlanCount())

	d, err := client.GetPlan(ctx, res.PlanID)
	require.NoError(t, err)
	require.NotNil(t, d.Syllabus)
	require.NotNil(t, d.Learning)
	require.NotNil(t, d.Progress)
	assert.Len(t, d.Schedule, 14)
	assert.Len(t, d.Resources, 1)
	assert.Len(t, d.Progress.Checkpoints, 4)
	assert.Equal(t, []string{"video lectures", "diagrams", "mind maps", "flashcards"}, d.Learning.Methods)

	var pdf bytes.Buffer
	n, err := client.DownloadPDF(ctx, res.PlanID, &pdf)
	require.NoError(t, err)
	assert.Equal(t, int64(pdf.Len()), n)
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, pdf.String(), "Personalized Study Plan")

	h, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, ServiceName, h.Service)
	assert.Equal(t, 3, h.Agents)
	assert.Equal(t, Engine, h.LLM)
}

func TestClientErrors(t *testing.T) {
	_, ts := newTestServer(t)
	client := api.NewClient(ts.URL)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		status  int
		message string
	}{
		{
			name: "empty syllabus",
			call: func() error {
				req := validRequest()
				req.SyllabusText = "   "
				_, err := client.GeneratePlan(ctx, req)
				return err
			},
			status:  http.StatusBadRequest,
			message: "Syllabus text is required",
		},
		{
			name: "empty preferences",
			call: func() error {
				req := validRequest()
				req.LearningPreferences = ""
				_, err := client.GeneratePlan(ctx, req)
				return err
			},
			status:  http.StatusBadRequest,
			message: "Learning preferences are required",
		},
		{
			name: "unknown plan",
			call: func() error {
				_, err := client.GetPlan(ctx, "plan_missing")
				return err
			},
			status:  http.StatusNotFound,
			message: "Plan not found",
		},
		{
			name: "unknown plan pdf",
			call: func() error {
				_, err := client.DownloadPDF(ctx, "plan_missing", io.Discard)
				return err
			},
			status:  http.StatusNotFound,
			message: "Plan not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var reqErr *api.RequestError
			require.True(t, errors.As(err, &reqErr), "got %v", err)
			assert.Equal(t, tt.status, reqErr.Status)
			assert.Equal(t, tt.message, reqErr.Message)
		})
	}
}

func TestGenerateDurationHandling(t *testing.T) {
	_, ts := newTestServer(t)

	post := func(body string) (int, gjson.Result) {
		resp, err := http.Post(ts.URL+"/api/generate-plan", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, gjson.ParseBytes(raw)
	}

	status, body := post(`{"syllabus_text":"Maths","learning_preferences":"visual"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(30), body.Get("summary.duration_days").Int())

	status, body = post(`{"syllabus_text":"Maths","learning_preferences":"visual","study_duration_days":"21"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(21), body.Get("summary.duration_days").Int())

	status, body = post(`{"syllabus_text":"Maths","learning_preferences":"visual","study_duration_days":"soon"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Get("error").String(), "must be a number")

	status, body = post(`{"syllabus_text":"Maths","learning_preferences":"visual","study_duration_days":14.5}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(14), body.Get("summary.duration_days").Int())

	status, _ = post(`{"syllabus_text":"Maths","learning_preferences":"visual","study_duration_days":0}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body.Get("error").String())
}

func TestGenerateFormPost(t *testing.T) {
	_, ts := newTestServer(t)
	form := url.Values{
		"syllabus_text":        {"Biology"},
		"learning_preferences": {"hands-on"},
		"study_duration_days":  {"7"},
	}
	resp, err := http.PostForm(ts.URL+"/api/generate-plan", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "kinesthetic", gjson.GetBytes(raw, "summary.primary_learning_style").String())
}

func TestPDFHeaders(t *testing.T) {
	_, ts := newTestServer(t)
	res, err := api.NewClient(ts.URL).GeneratePlan(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/plan/" + res.PlanID + "/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=study_plan_"+res.PlanID+".pdf", resp.Header.Get("Content-Disposition"))
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
