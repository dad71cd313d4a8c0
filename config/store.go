package config

// StoreConfig selects and configures a chain store backend.
//
// Backends: "memory", "file", "badger", "sqlite". Path is the root directory
// for "file", the database directory for "badger" and the database file for
// "sqlite". InMemory only applies to "badger" and "sqlite".
type StoreConfig struct {
	Backend  string `json:"backend" yaml:"backend" env:"BACKEND"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty" env:"PATH"`
	InMemory bool   `json:"in_memory,omitempty" yaml:"in_memory,omitempty" env:"IN_MEMORY"`
	Sync     *bool  `json:"sync_writes,omitempty" yaml:"sync_writes,omitempty" env:"SYNC_WRITES"`
}

// DefaultStoreConfig returns the in-process memory store.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Backend: "memory",
	}
}

// SyncWrites reports whether durable backends sync every write. Defaults to true.
func (c *StoreConfig) SyncWrites() bool {
	if c.Sync == nil {
		return true
	}
	return *c.Sync
}

func (c *StoreConfig) Merge(source *StoreConfig) {
	if source.Backend != "" {
		c.Backend = source.Backend
	}

	if source.Path != "" {
		c.Path = source.Path
	}

	if source.InMemory {
		c.InMemory = source.InMemory
	}

	if source.Sync != nil {
		c.Sync = source.Sync
	}
}
