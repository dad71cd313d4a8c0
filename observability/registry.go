package observability

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrUnknownObserver is returned by GetObserver for unregistered names.
var ErrUnknownObserver = errors.New("unknown observer")

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetObserver returns a registered observer by name. An empty name resolves
// to the "noop" observer.
// Pre-registered observers: "noop" (NoOpObserver) and "slog" (default logger).
func GetObserver(name string) (Observer, error) {
	if name == "" {
		name = "noop"
	}

	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer in the global registry.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// Observers lists the registered observer names in sorted order.
func Observers() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(observers))
	for name := range observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up the observer registered under name and, when minLevel is
// not empty, wraps it in a FilterObserver that drops events below that level.
//
// Example:
//
//	obs, err := observability.Resolve(cfg.Observer, cfg.Level)
func Resolve(name, minLevel string) (Observer, error) {
	obs, err := GetObserver(name)
	if err != nil {
		return nil, err
	}
	if minLevel == "" {
		return obs, nil
	}

	level, err := ParseLevel(minLevel)
	if err != nil {
		return nil, err
	}
	return NewFilterObserver(obs, level), nil
}
