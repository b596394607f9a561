package utils

import (
	"context"
	"fmt"

	"github.com/beadkeep/beads/internal/storage"
)

// ResolvePartialID expands a full or unambiguous-prefix id to its full
// form via the store's resolver, surfacing storage.ErrNotFound and
// storage.ErrAmbiguousID as readable errors.
func ResolvePartialID(ctx context.Context, store storage.Storage, id string) (string, error) {
	full, err := store.ResolveID(ctx, id)
	if err != nil {
		return "", err
	}
	if full == "" {
		return "", fmt.Errorf("no issue matches %q", id)
	}
	return full, nil
}

// ResolvePartialIDs resolves a batch of ids, stopping at the first
// resolution failure.
func ResolvePartialIDs(ctx context.Context, store storage.Storage, ids []string) ([]string, error) {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		full, err := ResolvePartialID(ctx, store, id)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", id, err)
		}
		resolved = append(resolved, full)
	}
	return resolved, nil
}
