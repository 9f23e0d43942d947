package api

import (
	"context"
	"io"
	"sync"

	"github.com/abhisek/studyplan/internal/plan"
)

// MockService is a deterministic Service for tests. Each method returns
// its configured values and every call is recorded.
type MockService struct {
	mu sync.Mutex

	GenerateResult *plan.GenerateResult
	GenerateErr    error
	Detail         *plan.Detail
	DetailErr      error
	PDF            []byte
	PDFErr         error
	HealthResult   *Health
	HealthErr      error

	GenerateCalls []GenerateRequest
	GetPlanCalls  []string
	PDFCalls      []string
	HealthCalls   int
}

func (m *MockService) GeneratePlan(_ context.Context, req GenerateRequest) (*plan.GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateCalls = append(m.GenerateCalls, req)
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.GenerateResult, nil
}

func (m *MockService) GetPlan(_ context.Context, planID string) (*plan.Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlanCalls = append(m.GetPlanCalls, planID)
	if m.DetailErr != nil {
		return nil, m.DetailErr
	}
	return m.Detail, nil
}

func (m *MockService) DownloadPDF(_ context.Context, planID string, w io.Writer) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PDFCalls = append(m.PDFCalls, planID)
	if m.PDFErr != nil {
		return 0, m.PDFErr
	}
	n, err := w.Write(m.PDF)
	return int64(n), err
}

func (m *MockService) Health(_ context.Context) (*Health, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HealthCalls++
	if m.HealthErr != nil {
		return nil, m.HealthErr
	}
	return m.HealthResult, nil
}
