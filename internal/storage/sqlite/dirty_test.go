package sqlite

import (
	"context"
	"testing"
)

func TestMarkDirty_DeduplicatesAndClears(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedIssue(t, store, "bd-1")
	seedIssue(t, store, "bd-2")

	// CreateIssue already marks its own id dirty; mark it again explicitly.
	if err := store.MarkDirty(ctx, "bd-1"); err != nil {
		t.Fatalf("MarkDirty: %v", err)
	}

	ids, err := store.GetDirtyIssues(ctx)
	if err != nil {
		t.Fatalf("GetDirtyIssues: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("GetDirtyIssues() = %v, want 2 distinct ids", ids)
	}

	if err := store.ClearDirty(ctx, []string{"bd-1"}); err != nil {
		t.Fatalf("ClearDirty: %v", err)
	}
	ids, err = store.GetDirtyIssues(ctx)
	if err != nil {
		t.Fatalf("GetDirtyIssues: %v", err)
	}
	if len(ids) != 1 || ids[0] != "bd-2" {
		t.Errorf("GetDirtyIssues() after partial clear = %v, want [bd-2]", ids)
	}

	if err := store.ClearDirty(ctx, nil); err != nil {
		t.Fatalf("ClearDirty(nil): %v", err)
	}
	ids, err = store.GetDirtyIssues(ctx)
	if err != nil {
		t.Fatalf("GetDirtyIssues: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("GetDirtyIssues() after full clear = %v, want none", ids)
	}
}

func TestExportHash_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedIssue(t, store, "bd-1")

	hash, err := store.GetExportHash(ctx, "bd-1")
	if err != nil {
		t.Fatalf("GetExportHash: %v", err)
	}
	if hash != "" {
		t.Errorf("GetExportHash() = %q before any SetExportHash, want empty", hash)
	}

	if err := store.SetExportHash(ctx, "bd-1", "abc123"); err != nil {
		t.Fatalf("SetExportHash: %v", err)
	}
	hash, err = store.GetExportHash(ctx, "bd-1")
	if err != nil {
		t.Fatalf("GetExportHash: %v", err)
	}
	if hash != "abc123" {
		t.Errorf("GetExportHash() = %q, want %q", hash, "abc123")
	}

	// Setting again updates rather than duplicating.
	if err := store.SetExportHash(ctx, "bd-1", "def456"); err != nil {
		t.Fatalf("SetExportHash (update): %v", err)
	}
	hash, err = store.GetExportHash(ctx, "bd-1")
	if err != nil {
		t.Fatalf("GetExportHash: %v", err)
	}
	if hash != "def456" {
		t.Errorf("GetExportHash() after update = %q, want %q", hash, "def456")
	}

	if err := store.ClearAllExportHashes(ctx); err != nil {
		t.Fatalf("ClearAllExportHashes: %v", err)
	}
	hash, err = store.GetExportHash(ctx, "bd-1")
	if err != nil {
		t.Fatalf("GetExportHash: %v", err)
	}
	if hash != "" {
		t.Errorf("GetExportHash() after clear-all = %q, want empty", hash)
	}
}
