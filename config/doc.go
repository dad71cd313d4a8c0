// Package config provides configuration structures for state chains,
// pipelines and chain stores.
//
// Configuration only exists during initialization: each package resolves its
// config into domain objects (state.FromConfig, pipeline.Run, store.New) and
// does not keep it afterwards. Observer and store backends are referenced by
// name so configs can be loaded from JSON or YAML and resolved at runtime
// through registries.
//
// # Configuration Merging
//
// All configuration types support the Merge pattern. Loaded configs merge
// over defaults:
//
//	cfg := config.DefaultConfig()
//	var loaded config.Config
//	json.Unmarshal(data, &loaded)
//	cfg.Merge(&loaded)
//
// Merge semantics by field type:
//
//   - Strings: Merge if source is non-empty
//   - Integers: Merge if source is greater than zero
//   - Pointers: Merge if source is non-nil
//   - Plain booleans: Merge if source is true
//   - Nested configs: Recursive merge
//
// Boolean fields whose default is true are stored as *bool behind an accessor
// (StoreConfig.Sync and StoreConfig.SyncWrites), so a partial document that
// omits the field keeps the default.
//
// # Environment Overlay
//
// ApplyEnv reads STATECHAIN_* variables and merges them over a config, so the
// precedence is defaults < file < environment.
package config
