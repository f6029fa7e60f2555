package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/agentgraph/core"
)

// Transcript records the final message sequence of one completed graph run.
type Transcript struct {
	RunID    string         `json:"run_id"`
	GraphID  string         `json:"graph_id"`
	Messages []core.Message `json:"messages"`
	Created  time.Time      `json:"created"`
}

// clone returns a deep copy safe for independent use.
func (t *Transcript) clone() *Transcript {
	cp := &Transcript{RunID: t.RunID, GraphID: t.GraphID, Created: t.Created}
	cp.Messages = make([]core.Message, len(t.Messages))
	copy(cp.Messages, t.Messages)
	return cp
}

// Store persists run transcripts.
type Store interface {
	Save(t *Transcript) error
	Get(runID string) (*Transcript, error)
}

// InMemoryStore is a volatile Store implementation keeping transcripts in a
// process local map. It is safe for concurrent access. Each returned
// transcript is cloned to prevent external mutation of internal state.
type InMemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string]*Transcript
}

// NewInMemoryStore constructs an empty in-memory transcript store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{transcripts: make(map[string]*Transcript)}
}

// Save stores a clone of the provided transcript keyed by its run id.
func (s *InMemoryStore) Save(t *Transcript) error {
	if t.RunID == "" {
		return fmt.Errorf("transcript has no run id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[t.RunID] = t.clone()
	return nil
}

// Get returns the transcript for runID.
func (s *InMemoryStore) Get(runID string) (*Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transcripts[runID]
	if !ok {
		return nil, fmt.Errorf("transcript %s not found", runID)
	}
	return t.clone(), nil
}
