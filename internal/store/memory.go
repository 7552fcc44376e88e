package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store for tests and hosts that manage
// durability themselves. It round-trips through JSON so it exercises the
// same wire format as the SQLite store.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte

	// SaveErr, when set, is returned by Save. Lets tests exercise the
	// best-effort persistence path.
	SaveErr error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed places a raw blob in the store, bypassing encoding. Tests use it
// to simulate corrupt or legacy payloads.
func (m *MemoryStore) Seed(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
}

// Load reads and decodes the snapshot.
func (m *MemoryStore) Load(ctx context.Context) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return nil, ErrNotFound
	}
	return decodeState(m.blob)
}

// Save encodes and stores the snapshot.
func (m *MemoryStore) Save(ctx context.Context, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	m.blob = blob
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
