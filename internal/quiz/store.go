package quiz

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// AnswerState is the transient selection state of one quiz instance. It
// lives from Build until reset or expiry and never outlasts the page.
type AnswerState struct {
	SectionID  string         `json:"section_id"`
	SubID      string         `json:"sub_id"`
	Selections map[string]int `json:"selections"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AnswerStore keeps AnswerState per quiz instance.
type AnswerStore interface {
	Create(ctx context.Context, state AnswerState) (string, error)
	Get(ctx context.Context, id string) (*AnswerState, error)
	Select(ctx context.Context, id, field string, option int) error
	Reset(ctx context.Context, id string) error
}

// MemoryStore is an in-memory AnswerStore.
type MemoryStore struct {
	states map[string]*AnswerState
	mu     sync.RWMutex
}

// NewMemoryStore creates an in-memory answer store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*AnswerState)}
}

func (s *MemoryStore) Create(_ context.Context, state AnswerState) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := generateID()
	state.CreatedAt = time.Now()
	if state.Selections == nil {
		state.Selections = make(map[string]int)
	}
	s.states[id] = &state
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*AnswerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return nil, fmt.Errorf("quiz instance not found: %s", id)
	}

	// Copy so callers cannot mutate stored state behind the lock.
	out := *state
	out.Selections = make(map[string]int, len(state.Selections))
	for k, v := range state.Selections {
		out.Selections[k] = v
	}
	return &out, nil
}

func (s *MemoryStore) Select(_ context.Context, id, field string, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok {
		return fmt.Errorf("quiz instance not found: %s", id)
	}
	state.Selections[field] = option
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok {
		return fmt.Errorf("quiz instance not found: %s", id)
	}
	state.Selections = make(map[string]int)
	return nil
}

func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
