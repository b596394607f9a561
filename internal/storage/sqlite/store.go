// Package sqlite implements the indexed store (C3) on top of SQLite via
// the pure-Go ncruces/go-sqlite3 driver (backed by wazero, no cgo). WAL
// mode, a 5-second busy timeout, and foreign-key enforcement implement
// the concurrency model from the spec: concurrent readers tolerated,
// concurrent writers serialize and retry until the timeout.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/beadkeep/beads/internal/storage"
)

// executor is satisfied by both *sql.DB and *sql.Conn, so every query
// helper in this package can run either standalone or pinned inside a
// transaction's connection.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the SQLite-backed implementation of storage.Storage.
type Store struct {
	db   *sql.DB
	path string
}

var _ storage.Storage = (*Store)(nil)

// Open creates or opens a SQLite store at path, applies the schema, and
// enables WAL mode, a 5-second busy timeout, and foreign keys.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &Store{db: db, path: path}
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1')"); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed metadata: %w", err)
	}
	return s, nil
}

// OpenMemory opens an in-memory store, used for --no-db and for tests.
func OpenMemory(ctx context.Context) (*Store, error) {
	return Open(ctx, ":memory:")
}

func (s *Store) Close() error          { return s.db.Close() }
func (s *Store) Path() string          { return s.path }
func (s *Store) UnderlyingDB() *sql.DB { return s.db }

// RunInTransaction executes fn within a BEGIN IMMEDIATE transaction on a
// single pinned connection, committing on a nil return and rolling back
// (panics included) otherwise.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx storage.Transaction) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	tx := &txStore{exec: conn}
	committed := false
	defer func() {
		if !committed {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

// txStore implements storage.Transaction by running every operation
// against a single pinned connection supplied by RunInTransaction.
type txStore struct {
	exec executor
}

var _ storage.Transaction = (*txStore)(nil)
