package state

import (
	"fmt"

	"github.com/tailored-agentic-units/statechain/config"
	"github.com/tailored-agentic-units/statechain/observability"
)

// Option configures Create and CreateWith.
type Option func(*options)

type options struct {
	observer   observability.Observer
	identifier string
}

func resolveOptions(opts []Option) options {
	o := options{observer: observability.NoOpObserver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithObserver attaches an observer to the chain. Every descendant emits
// through the same observer. A nil observer falls back to NoOpObserver.
func WithObserver(observer observability.Observer) Option {
	return func(o *options) {
		if observer == nil {
			observer = observability.NoOpObserver{}
		}
		o.observer = observer
	}
}

// WithIdentifier stores a generated UUID under field on the root state. The
// identifier reaches every descendant like any other field.
func WithIdentifier(field string) Option {
	return func(o *options) {
		o.identifier = field
	}
}

// WithoutIdentifier disables identifier generation set by an earlier option.
func WithoutIdentifier() Option {
	return func(o *options) {
		o.identifier = ""
	}
}

// FromConfig resolves a ChainConfig into options. The observer is looked up
// by name in the observability registry and filtered by cfg.Level.
//
// Example:
//
//	opts, err := state.FromConfig(cfg.Chain)
//	if err != nil {
//	    return err
//	}
//	s := state.Create(input, opts...)
func FromConfig(cfg config.ChainConfig) ([]Option, error) {
	observer, err := observability.Resolve(cfg.Observer, cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	opts := []Option{WithObserver(observer)}
	if cfg.IdentifierField != "" {
		opts = append(opts, WithIdentifier(cfg.IdentifierField))
	}
	return opts, nil
}
