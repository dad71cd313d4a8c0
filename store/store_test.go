package store_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/statechain/config"
	"github.com/tailored-agentic-units/statechain/state"
	"github.com/tailored-agentic-units/statechain/store"
)

func openStore(t *testing.T, cfg config.StoreConfig) store.Store {
	t.Helper()

	st, err := store.New(cfg)
	require.NoError(t, err)

	if c, ok := st.(io.Closer); ok {
		t.Cleanup(func() { _ = c.Close() })
	}
	return st
}

// backendConfigs returns a fresh configuration per call so that every subtest
// starts from an empty store.
var backendConfigs = map[string]func(t *testing.T) config.StoreConfig{
	"memory": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "memory"}
	},
	"file": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "file", Path: t.TempDir()}
	},
	"badger-memory": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "badger", InMemory: true}
	},
	"badger-disk": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "badger", Path: filepath.Join(t.TempDir(), "badger")}
	},
	"sqlite-memory": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "sqlite", InMemory: true}
	},
	"sqlite-file": func(t *testing.T) config.StoreConfig {
		return config.StoreConfig{Backend: "sqlite", Path: filepath.Join(t.TempDir(), "chains.db")}
	},
}

func TestStores(t *testing.T) {
	for name, configure := range backendConfigs {
		t.Run(name, func(t *testing.T) {
			t.Run("SaveLoad", func(t *testing.T) {
				st := openStore(t, configure(t))
				ctx := context.Background()
				original := sampleChain()

				require.NoError(t, st.Save(ctx, "order-1", original))

				loaded, err := st.Load(ctx, "order-1")
				require.NoError(t, err)

				assert.Equal(t, original.String(), loaded.String())
				assert.Equal(t, original.Keys(), loaded.Keys())
				assert.Equal(t, kinds(original), kinds(loaded))
				assert.True(t, loaded.IsFailed())
			})

			t.Run("LoadMissing", func(t *testing.T) {
				st := openStore(t, configure(t))

				_, err := st.Load(context.Background(), "missing")
				assert.ErrorIs(t, err, store.ErrNotFound)
			})

			t.Run("Overwrite", func(t *testing.T) {
				st := openStore(t, configure(t))
				ctx := context.Background()

				first := state.Create(map[string]any{"v": "first"})
				second := must(first.Succeed(map[string]any{"v": "second"}))

				require.NoError(t, st.Save(ctx, "k", first))
				require.NoError(t, st.Save(ctx, "k", second))

				loaded, err := st.Load(ctx, "k")
				require.NoError(t, err)

				v, _ := loaded.Get("v")
				assert.Equal(t, "second", v)
				assert.Equal(t, 2, loaded.Depth())
			})

			t.Run("DeleteAndList", func(t *testing.T) {
				st := openStore(t, configure(t))
				ctx := context.Background()
				s := state.Create(map[string]any{"n": 1})

				keys, err := st.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, keys)

				for _, key := range []string{"b", "a", "runs/2", "runs/1"} {
					require.NoError(t, st.Save(ctx, key, s))
				}

				keys, err = st.List(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{"a", "b", "runs/1", "runs/2"}, keys)

				require.NoError(t, st.Delete(ctx, "runs/1"))
				require.NoError(t, st.Delete(ctx, "runs/1"))
				require.NoError(t, st.Delete(ctx, "never-saved"))

				keys, err = st.List(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{"a", "b", "runs/2"}, keys)

				_, err = st.Load(ctx, "runs/1")
				assert.ErrorIs(t, err, store.ErrNotFound)
			})

			t.Run("InvalidKey", func(t *testing.T) {
				st := openStore(t, configure(t))
				s := state.Create(nil)

				ctx := context.Background()
				for _, key := range []string{"", "/abs", "../escape", "a/../b", ".hidden", "a//b"} {
					assert.ErrorIs(t, st.Save(ctx, key, s), store.ErrInvalidKey, "save %q", key)

					_, err := st.Load(ctx, key)
					assert.ErrorIs(t, err, store.ErrInvalidKey, "load %q", key)

					assert.ErrorIs(t, st.Delete(ctx, key), store.ErrInvalidKey, "delete %q", key)
				}
			})

			t.Run("CancelledContext", func(t *testing.T) {
				st := openStore(t, configure(t))
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				err := st.Save(ctx, "k", state.Create(nil))
				assert.ErrorIs(t, err, context.Canceled)

				_, err = st.Load(ctx, "k")
				assert.ErrorIs(t, err, context.Canceled)
			})
		})
	}
}

func TestMemoryStore_KeepsChain(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	s := sampleChain()

	require.NoError(t, st.Save(ctx, "k", s))

	loaded, err := st.Load(ctx, "k")
	require.NoError(t, err)
	assert.Same(t, s, loaded)

	assert.Error(t, st.Save(ctx, "nil", nil))
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	first, err := store.NewFileStore(root)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "runs/a", sampleChain()))

	observer := &captureObserver{}
	second, err := store.NewFileStore(root, state.WithObserver(observer))
	require.NoError(t, err)

	loaded, err := second.Load(ctx, "runs/a")
	require.NoError(t, err)
	assert.True(t, loaded.IsFailed())
	assert.Len(t, observer.events, 4)

	require.NoError(t, second.Delete(ctx, "runs/a"))
	assert.NoDirExists(t, filepath.Join(root, "runs"))
	assert.DirExists(t, root)
}

func TestFileStore_CorruptJournal(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	st, err := store.NewFileStore(root)
	require.NoError(t, err)
	require.NoError(t, writeFile(filepath.Join(root, "broken"), "not a journal"))

	_, err = st.Load(ctx, "broken")
	assert.ErrorIs(t, err, store.ErrLoadFailed)
	assert.ErrorIs(t, err, store.ErrInvalidJournal)
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	cfg := config.StoreConfig{Backend: "sqlite", Path: filepath.Join(t.TempDir(), "chains.db")}
	ctx := context.Background()

	first, err := store.OpenSQLiteStore(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "k", sampleChain()))
	require.NoError(t, first.Close())

	second, err := store.OpenSQLiteStore(cfg)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, sampleChain().String(), loaded.String())
}

func TestBadgerStore_PersistsAcrossInstances(t *testing.T) {
	cfg := config.StoreConfig{Backend: "badger", Path: filepath.Join(t.TempDir(), "db")}
	ctx := context.Background()

	first, err := store.OpenBadgerStore(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "k", sampleChain()))
	require.NoError(t, first.Close())

	second, err := store.OpenBadgerStore(cfg)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, sampleChain().String(), loaded.String())
}

func TestNew(t *testing.T) {
	st, err := store.New(config.StoreConfig{})
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)

	_, err = store.New(config.StoreConfig{Backend: "etcd"})
	assert.ErrorIs(t, err, store.ErrUnknownBackend)

	_, err = store.New(config.StoreConfig{Backend: "file"})
	assert.Error(t, err)

	_, err = store.New(config.StoreConfig{Backend: "badger"})
	assert.Error(t, err)

	_, err = store.New(config.StoreConfig{Backend: "sqlite"})
	assert.Error(t, err)
}

func TestRegisterBackend(t *testing.T) {
	errCustom := errors.New("custom backend")
	store.RegisterBackend("custom", func(cfg config.StoreConfig, opts ...state.Option) (store.Store, error) {
		return nil, errCustom
	})

	assert.Contains(t, store.Backends(), "custom")
	assert.Contains(t, store.Backends(), "sqlite")

	_, err := store.New(config.StoreConfig{Backend: "custom"})
	assert.ErrorIs(t, err, errCustom)
}
