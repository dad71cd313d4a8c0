package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/statechain/state"
)

// MemoryStore keeps chains in process memory.
//
// States are immutable, so the store holds the saved chain itself and Load
// returns it without decoding. Chains are lost when the process exits.
type MemoryStore struct {
	chains map[string]*state.State
	mu     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chains: make(map[string]*state.State),
	}
}

func (m *MemoryStore) Save(ctx context.Context, key string, s *state.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: %s: nil state", ErrSaveFailed, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.chains[key] = s
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, key string) (*state.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.chains[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return s, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.chains, key)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.chains))
	for key := range m.chains {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}
