package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultFormsBaseURL = "https://docs.google.com/forms/d/e"

// SubmissionSink delivers field name → chosen value pairs to an external
// form endpoint. The response is never consumed; delivery is best-effort.
type SubmissionSink interface {
	Submit(ctx context.Context, formID string, fields map[string]string) error
}

// FormsSink posts quiz field values to a form-processing endpoint
// parameterized by form id.
type FormsSink struct {
	baseURL string
	client  *resty.Client
}

// NewFormsSink creates a sink for the given endpoint base; an empty base
// falls back to the hosted forms service.
func NewFormsSink(baseURL string) *FormsSink {
	if baseURL == "" {
		baseURL = defaultFormsBaseURL
	}
	return &FormsSink{
		baseURL: baseURL,
		client:  resty.New().SetTimeout(10 * time.Second),
	}
}

func (s *FormsSink) Submit(ctx context.Context, formID string, fields map[string]string) error {
	if formID == "" {
		return fmt.Errorf("quiz: form id is empty")
	}

	_, err := s.client.R().
		SetContext(ctx).
		SetFormData(fields).
		Post(fmt.Sprintf("%s/%s/formResponse", s.baseURL, formID))
	if err != nil {
		return fmt.Errorf("submitting quiz form: %w", err)
	}
	return nil
}
