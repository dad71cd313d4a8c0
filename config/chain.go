package config

// ChainConfig controls how root states are created.
//
// Example JSON:
//
//	{
//	  "observer": "slog",
//	  "level": "info",
//	  "identifier_field": "run_id"
//	}
type ChainConfig struct {
	// Observer names the observer attached to created chains ("noop", "slog", ...)
	Observer string `json:"observer" yaml:"observer" env:"OBSERVER"`

	// Level drops events below this severity ("debug", "info", "warn", "error"; empty = all)
	Level string `json:"level,omitempty" yaml:"level,omitempty" env:"LEVEL"`

	// IdentifierField receives a generated UUID on the root state (empty = disabled)
	IdentifierField string `json:"identifier_field" yaml:"identifier_field" env:"IDENTIFIER_FIELD"`
}

// DefaultChainConfig returns a chain configuration without identifier and with
// the no-op observer.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		Observer: "noop",
	}
}

func (c *ChainConfig) Merge(source *ChainConfig) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.Level != "" {
		c.Level = source.Level
	}

	if source.IdentifierField != "" {
		c.IdentifierField = source.IdentifierField
	}
}
