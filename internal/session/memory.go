package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"homeprice/internal/form"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. States are stored encoded so
// callers never share a *form.State between requests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Load(ctx context.Context, id string) (*form.State, bool, error) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	if ok && m.expired(entry) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, false, nil
	}

	var state form.State
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, false, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &state, true, nil
}

func (m *MemoryStore) Save(ctx context.Context, id string, state *form.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl)}
	m.sweep()
	return nil
}

// Len returns the number of sessions held, expired or not
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return m.ttl > 0 && m.now().After(e.expiresAt)
}

// sweep drops expired entries. Caller holds mu.
func (m *MemoryStore) sweep() {
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
		}
	}
}
