package api

import "fmt"

// Operation names used for errors, logging and the request event log.
const (
	OpGeneratePlan = "generate-plan"
	OpGetPlan      = "get-plan"
	OpDownloadPDF  = "download-pdf"
	OpHealth       = "health"
)

// fallbackMessages are shown when the backend gives no usable error text.
var fallbackMessages = map[string]string{
	OpGeneratePlan: "Failed to generate study plan",
	OpGetPlan:      "Failed to load plan details",
	OpDownloadPDF:  "Failed to download PDF",
	OpHealth:       "Backend unavailable",
}

// FallbackMessage returns the generic user-facing failure text for op.
func FallbackMessage(op string) string {
	if m, ok := fallbackMessages[op]; ok {
		return m
	}
	return "Request failed"
}

// RequestError is a failed backend call: a transport failure, a non-2xx
// status or a success body that does not have the expected shape.
//
// Message is always suitable for display. Status is zero when no response
// was received.
type RequestError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

// Detail describes the failure for logs.
func (e *RequestError) Detail() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d: %s: %v", e.Op, e.Status, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}
