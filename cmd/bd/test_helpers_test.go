package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/storage/sqlite"
)

// newTestStore opens a fresh SQLite-backed store under t.TempDir and
// points the package-level globals the commands read (store, dbPath,
// jsonlPath, actor) at it, restoring the prior values on cleanup so
// tests don't bleed state into each other.
func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".beads", "beads.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir beads dir: %v", err)
	}
	s, err := sqlite.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	prevStore, prevDB, prevJSONL, prevActor := store, dbPath, jsonlPath, actor
	store, dbPath, jsonlPath, actor = s, path, filepath.Join(dir, ".beads", "issues.jsonl"), "test"
	t.Cleanup(func() {
		store, dbPath, jsonlPath, actor = prevStore, prevDB, prevJSONL, prevActor
	})
	return s
}
