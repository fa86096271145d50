package quiz

import (
	"context"
	"sync"
)

// MockSink is a test double for SubmissionSink. Submit may be called from
// a goroutine, so the recorded state is guarded.
type MockSink struct {
	Err error

	mu         sync.Mutex
	calls      int
	lastFormID string
	lastFields map[string]string
}

func (m *MockSink) Submit(_ context.Context, formID string, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastFormID = formID
	m.lastFields = fields
	return m.Err
}

// Calls returns how many times Submit has been invoked.
func (m *MockSink) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastCall returns the form id and fields of the most recent Submit.
func (m *MockSink) LastCall() (string, map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFormID, m.lastFields
}
