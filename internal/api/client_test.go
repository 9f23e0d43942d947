package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestGeneratePlan_Success(t *testing.T) {
	var got map[string]any
	var gotHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-plan", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotHeader = r.Header.Get(RequestIDHeader)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"plan_id":"plan_1","summary":{"duration_days":21,"primary_learning_style":"visual"}}`))
	})

	res, err := c.GeneratePlan(WithRequestID(context.Background(), "req-1"), GenerateRequest{
		SyllabusText:        "Physics",
		LearningPreferences: "I am a visual learner.",
		StudyDurationDays:   21,
	})
	require.NoError(t, err)
	assert.Equal(t, "plan_1", res.PlanID)
	assert.Equal(t, 21, res.Summary.DurationDays)
	assert.Equal(t, "req-1", gotHeader)

	assert.Equal(t, "Physics", got["syllabus_text"])
	assert.Equal(t, "I am a visual learner.", got["learning_preferences"])
	// Decoded as float64 by encoding/json; on the wire it is a bare integer.
	assert.Equal(t, float64(21), got["study_duration_days"])
}

func TestGeneratePlan_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Syllabus text is required"}`))
	})

	_, err := c.GeneratePlan(context.Background(), GenerateRequest{})
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, OpGeneratePlan, re.Op)
	assert.Equal(t, http.StatusBadRequest, re.Status)
	assert.Equal(t, "Syllabus text is required", re.Error())
}

func TestGeneratePlan_FallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := c.GeneratePlan(context.Background(), GenerateRequest{})
	require.Error(t, err)
	assert.Equal(t, "Failed to generate study plan", err.Error())
}

func TestGeneratePlan_SchemaMismatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"summary":{}}`))
	})

	_, err := c.GeneratePlan(context.Background(), GenerateRequest{})
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusOK, re.Status)
	assert.Equal(t, "Failed to generate study plan", re.Message)
	assert.Error(t, re.Unwrap())
}

func TestGeneratePlan_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(srv.URL)

	_, err := c.GeneratePlan(context.Background(), GenerateRequest{})
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Zero(t, re.Status)
	assert.NotNil(t, re.Err)
	assert.Equal(t, "Failed to generate study plan", re.Error())
}

func TestGetPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plan/plan_42", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"plan":{"learning_analysis":{"primary_learning_style":"auditory"}}}`))
	})

	d, err := c.GetPlan(context.Background(), "plan_42")
	require.NoError(t, err)
	require.NotNil(t, d.Learning)
	assert.Equal(t, "auditory", d.Learning.PrimaryStyle)
	assert.Nil(t, d.Syllabus)
}

func TestGetPlan_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Plan not found"}`))
	})

	_, err := c.GetPlan(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Plan not found", err.Error())
}

func TestGetPlan_NoPlanObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	d, err := c.GetPlan(context.Background(), "p")
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestDownloadPDF(t *testing.T) {
	pdf := []byte("%PDF-1.4 test")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plan/p1/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	var buf bytes.Buffer
	n, err := c.DownloadPDF(context.Background(), "p1", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pdf)), n)
	assert.Equal(t, pdf, buf.Bytes())
}

func TestDownloadPDF_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Plan not found"}`))
	})

	var buf bytes.Buffer
	_, err := c.DownloadPDF(context.Background(), "p1", &buf)
	require.Error(t, err)
	assert.Equal(t, "Plan not found", err.Error())
	assert.Zero(t, buf.Len())
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		_, _ = w.Write([]byte(`{"status":"healthy","service":"Study Plan Generator","agents":3,"llm":"groq/llama","timestamp":"2025-12-03T10:00:00"}`))
	})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 3, h.Agents)
	assert.Equal(t, "groq/llama", h.LLM)
}

func TestRequestErrorDetail(t *testing.T) {
	e := &RequestError{Op: OpGetPlan, Status: 404, Message: "Plan not found"}
	assert.Equal(t, "get-plan: HTTP 404: Plan not found", e.Detail())
	assert.Equal(t, "Request failed", FallbackMessage("unknown"))
}
