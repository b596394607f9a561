package sqlite

import (
	"context"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	v, err := store.GetConfig(ctx, "issue_prefix")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if v != "" {
		t.Errorf("GetConfig() on unset key = %q, want empty", v)
	}

	if err := store.SetConfig(ctx, "issue_prefix", "bd"); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	v, err = store.GetConfig(ctx, "issue_prefix")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if v != "bd" {
		t.Errorf("GetConfig() = %q, want %q", v, "bd")
	}

	if err := store.SetConfig(ctx, "issue_prefix", "gt"); err != nil {
		t.Fatalf("SetConfig (update): %v", err)
	}
	all, err := store.GetAllConfig(ctx)
	if err != nil {
		t.Fatalf("GetAllConfig: %v", err)
	}
	if all["issue_prefix"] != "gt" {
		t.Errorf("GetAllConfig()[issue_prefix] = %q, want %q", all["issue_prefix"], "gt")
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetMetadata(ctx, "schema_version", "2"); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	v, err := store.GetMetadata(ctx, "schema_version")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if v != "2" {
		t.Errorf("GetMetadata() = %q, want %q", v, "2")
	}
}

func TestNextChildNumber(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.NextChildNumber(ctx, "bd-a3f8e9")
	if err != nil {
		t.Fatalf("NextChildNumber: %v", err)
	}
	if n != 1 {
		t.Errorf("NextChildNumber() first call = %d, want 1", n)
	}

	n, err = store.NextChildNumber(ctx, "bd-a3f8e9")
	if err != nil {
		t.Fatalf("NextChildNumber: %v", err)
	}
	if n != 2 {
		t.Errorf("NextChildNumber() second call = %d, want 2", n)
	}

	// A different parent has its own independent counter.
	n, err = store.NextChildNumber(ctx, "bd-ffffff")
	if err != nil {
		t.Fatalf("NextChildNumber: %v", err)
	}
	if n != 1 {
		t.Errorf("NextChildNumber() for a new parent = %d, want 1", n)
	}
}
