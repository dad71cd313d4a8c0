package config

// PipelineConfig defines configuration for pipeline execution.
//
// Example JSON:
//
//	{
//	  "name": "ingest",
//	  "observer": "slog",
//	  "level": "info",
//	  "finish_on_complete": true,
//	  "capture_history": true,
//	  "max_steps": 100
//	}
type PipelineConfig struct {
	// Name identifies the pipeline for observability
	Name string `json:"name" yaml:"name" env:"NAME"`

	// Observer specifies which observer implementation to use ("noop", "slog", etc.)
	Observer string `json:"observer" yaml:"observer" env:"OBSERVER"`

	// Level drops events below this severity (empty = all)
	Level string `json:"level,omitempty" yaml:"level,omitempty" env:"LEVEL"`

	// FinishOnComplete closes a still-successful final state with Finish
	FinishOnComplete bool `json:"finish_on_complete" yaml:"finish_on_complete" env:"FINISH_ON_COMPLETE"`

	// CaptureHistory collects the final state's history into the result
	CaptureHistory bool `json:"capture_history" yaml:"capture_history" env:"CAPTURE_HISTORY"`

	// MaxSteps limits executed steps (0 = unlimited)
	MaxSteps int `json:"max_steps" yaml:"max_steps" env:"MAX_STEPS"`
}

// DefaultPipelineConfig returns defaults for pipeline execution.
//
// Default values:
//   - Observer: "slog" for structured logging
//   - FinishOnComplete, CaptureHistory: false
//   - MaxSteps: 0 (unlimited)
func DefaultPipelineConfig(name string) PipelineConfig {
	return PipelineConfig{
		Name:     name,
		Observer: "slog",
	}
}

func (c *PipelineConfig) Merge(source *PipelineConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.Level != "" {
		c.Level = source.Level
	}

	if source.FinishOnComplete {
		c.FinishOnComplete = source.FinishOnComplete
	}

	if source.CaptureHistory {
		c.CaptureHistory = source.CaptureHistory
	}

	if source.MaxSteps > 0 {
		c.MaxSteps = source.MaxSteps
	}
}
