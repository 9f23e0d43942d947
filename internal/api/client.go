// Package api talks to the study plan backend over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/abhisek/studyplan/internal/plan"
)

// GenerateRequest is the body of POST /api/generate-plan.
type GenerateRequest struct {
	SyllabusText        string `json:"syllabus_text"`
	LearningPreferences string `json:"learning_preferences"`
	StudyDurationDays   int    `json:"study_duration_days"`
}

// Health is the backend status reported by GET /api/health.
type Health struct {
	Status    string
	Service   string
	Agents    int
	LLM       string
	Timestamp string
}

// Service is the set of backend operations used by the client.
type Service interface {
	GeneratePlan(ctx context.Context, req GenerateRequest) (*plan.GenerateResult, error)
	GetPlan(ctx context.Context, planID string) (*plan.Detail, error)

	// DownloadPDF streams the plan PDF into w and returns the byte count.
	// The body is never parsed.
	DownloadPDF(ctx context.Context, planID string, w io.Writer) (int64, error)

	Health(ctx context.Context) (*Health, error)
}

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a client-side timeout. Zero keeps the transport defaults.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GeneratePlan(ctx context.Context, in GenerateRequest) (*plan.GenerateResult, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, &RequestError{Op: OpGeneratePlan, Message: FallbackMessage(OpGeneratePlan), Err: err}
	}

	status, raw, err := c.doJSON(ctx, OpGeneratePlan, http.MethodPost, "/api/generate-plan", body)
	if err != nil {
		return nil, err
	}

	if err := validateGenerateResponse(raw); err != nil {
		return nil, &RequestError{Op: OpGeneratePlan, Status: status, Message: FallbackMessage(OpGeneratePlan), Err: err}
	}
	res, err := plan.DecodeGenerateResult(raw)
	if err != nil {
		return nil, &RequestError{Op: OpGeneratePlan, Status: status, Message: FallbackMessage(OpGeneratePlan), Err: err}
	}
	return res, nil
}

func (c *Client) GetPlan(ctx context.Context, planID string) (*plan.Detail, error) {
	status, raw, err := c.doJSON(ctx, OpGetPlan, http.MethodGet, planPath(planID), nil)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(raw) {
		return nil, &RequestError{Op: OpGetPlan, Status: status, Message: FallbackMessage(OpGetPlan), Err: plan.ErrMalformed}
	}
	p := gjson.GetBytes(raw, "plan")
	if !p.IsObject() {
		// A success body without a plan renders as an empty detail.
		return &plan.Detail{}, nil
	}
	detail, err := plan.DecodeDetail([]byte(p.Raw))
	if err != nil {
		return nil, &RequestError{Op: OpGetPlan, Status: status, Message: FallbackMessage(OpGetPlan), Err: err}
	}
	return detail, nil
}

func (c *Client) DownloadPDF(ctx context.Context, planID string, w io.Writer) (int64, error) {
	resp, err := c.send(ctx, OpDownloadPDF, http.MethodGet, planPath(planID)+"/pdf", nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return 0, statusError(OpDownloadPDF, resp.StatusCode, raw)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, &RequestError{Op: OpDownloadPDF, Status: resp.StatusCode, Message: FallbackMessage(OpDownloadPDF), Err: err}
	}
	return n, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	status, raw, err := c.doJSON(ctx, OpHealth, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(raw) {
		return nil, &RequestError{Op: OpHealth, Status: status, Message: FallbackMessage(OpHealth), Err: plan.ErrMalformed}
	}
	root := gjson.ParseBytes(raw)
	return &Health{
		Status:    root.Get("status").String(),
		Service:   root.Get("service").String(),
		Agents:    int(root.Get("agents").Int()),
		LLM:       root.Get("llm").String(),
		Timestamp: root.Get("timestamp").String(),
	}, nil
}

// doJSON sends a request and reads the whole body. Non-2xx responses are
// returned as *RequestError carrying the server message when present.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body []byte) (int, []byte, error) {
	resp, err := c.send(ctx, op, method, path, body)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &RequestError{Op: op, Status: resp.StatusCode, Message: FallbackMessage(op), Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, raw, statusError(op, resp.StatusCode, raw)
	}
	return resp.StatusCode, raw, nil
}

func (c *Client) send(ctx context.Context, op, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Op: op, Message: FallbackMessage(op), Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, RequestIDFrom(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Message: FallbackMessage(op), Err: err}
	}
	return resp, nil
}

// statusError builds the error for a non-2xx response, preferring the
// backend's "error" field over the generic message.
func statusError(op string, status int, raw []byte) error {
	msg := serverMessage(raw)
	if msg == "" {
		msg = FallbackMessage(op)
	}
	return &RequestError{
		Op:      op,
		Status:  status,
		Message: msg,
		Err:     fmt.Errorf("HTTP %d", status),
	}
}

func serverMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	r := gjson.GetBytes(raw, "error")
	if r.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(r.Str)
}

func planPath(planID string) string {
	return "/api/plan/" + url.PathEscape(planID)
}
