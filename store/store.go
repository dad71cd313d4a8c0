package store

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/tailored-agentic-units/statechain/config"
	"github.com/tailored-agentic-units/statechain/state"
)

// Store persists chains under string keys.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists the chain ending at s under key, replacing any chain
	// already stored there.
	Save(ctx context.Context, key string, s *state.State) error

	// Load rebuilds the chain stored under key.
	// Returns ErrNotFound if nothing is stored there.
	Load(ctx context.Context, key string) (*state.State, error)

	// Delete removes the chain stored under key.
	// No error if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// List returns every stored key in sorted order.
	List(ctx context.Context) ([]string, error)
}

// Factory opens a Store from configuration. Options are applied to every
// chain the store decodes.
type Factory func(cfg config.StoreConfig, opts ...state.Option) (Store, error)

var (
	backends = map[string]Factory{
		"memory": func(config.StoreConfig, ...state.Option) (Store, error) {
			return NewMemoryStore(), nil
		},
		"file": func(cfg config.StoreConfig, opts ...state.Option) (Store, error) {
			return NewFileStore(cfg.Path, opts...)
		},
		"badger": func(cfg config.StoreConfig, opts ...state.Option) (Store, error) {
			return OpenBadgerStore(cfg, opts...)
		},
		"sqlite": func(cfg config.StoreConfig, opts ...state.Option) (Store, error) {
			return OpenSQLiteStore(cfg, opts...)
		},
	}
	mutex sync.RWMutex
)

// New opens the backend named by cfg.Backend. An empty backend selects
// "memory".
//
// Example:
//
//	cfg := config.DefaultStoreConfig()
//	cfg.Backend = "sqlite"
//	cfg.Path = "chains.db"
//
//	st, err := store.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if c, ok := st.(io.Closer); ok {
//	    defer c.Close()
//	}
func New(cfg config.StoreConfig, opts ...state.Option) (Store, error) {
	name := cfg.Backend
	if name == "" {
		name = "memory"
	}

	mutex.RLock()
	factory, exists := backends[name]
	mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
	return factory(cfg, opts...)
}

// RegisterBackend adds a named Factory so that New can select it.
func RegisterBackend(name string, factory Factory) {
	mutex.Lock()
	defer mutex.Unlock()

	backends[name] = factory
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// validateKey rejects keys that are empty or that would escape a directory
// when used as a slash-separated relative path.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if path.Clean(key) != key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." || strings.HasPrefix(segment, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
