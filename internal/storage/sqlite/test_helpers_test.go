package sqlite

import (
	"context"
	"testing"
)

// newTestStore opens a fresh on-disk store under the test's TempDir. A
// real file (rather than ":memory:") matters here: the store caps
// db.SetMaxOpenConns at 1, so the usual shared-memory-across-connections
// gotcha doesn't apply, but a real path also exercises the same open path
// bd itself uses.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	store, err := Open(ctx, t.TempDir()+"/test.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
	return store
}
