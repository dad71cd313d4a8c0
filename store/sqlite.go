package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tailored-agentic-units/statechain/config"
	"github.com/tailored-agentic-units/statechain/state"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS chains (
  chain_key  TEXT PRIMARY KEY,
  journal    BLOB NOT NULL,
  updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps journals in a SQLite table.
type SQLiteStore struct {
	sqlDB *sql.DB
	opts  []state.Option
}

// OpenSQLiteStore opens the SQLite database at cfg.Path and creates the
// chains table if needed. With cfg.InMemory set the database lives in memory
// and is discarded on Close.
func OpenSQLiteStore(cfg config.StoreConfig, opts ...state.Option) (*SQLiteStore, error) {
	synchronous := "NORMAL"
	if cfg.SyncWrites() {
		synchronous = "FULL"
	}

	var dsn string
	switch {
	case cfg.InMemory:
		dsn = ":memory:?_pragma=synchronous(" + synchronous + ")"
	case strings.TrimSpace(cfg.Path) == "":
		return nil, fmt.Errorf("storage path is required")
	default:
		dsn = filepath.Clean(cfg.Path) +
			"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(" + synchronous + ")"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// every connection to :memory: is a separate database
	if cfg.InMemory {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB, opts: opts}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, key string, st *state.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	data, err := Encode(st)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO chains (chain_key, journal, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(chain_key) DO UPDATE SET
		   journal = excluded.journal,
		   updated_at = excluded.updated_at`,
		key,
		data,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (*state.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT journal FROM chains WHERE chain_key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}

	st, err := Decode(data, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailed, key, err)
	}
	return st, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM chains WHERE chain_key = ?`, key); err != nil {
		return fmt.Errorf("delete failed: %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT chain_key FROM chains ORDER BY chain_key`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return keys, nil
}
