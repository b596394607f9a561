// Package export implements the full atomic rewrite of the shared text
// log from the indexed store (C6): fetch every non-ephemeral issue
// including tombstones, serialize, write to a sibling temp file, rename
// over the destination, clear the dirty set.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beadkeep/beads/internal/jsonl"
	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
)

// Full rewrites path with every non-ephemeral issue in store, in
// ascending id order for a stable diff against the previous log, and
// clears the dirty set on success.
func Full(ctx context.Context, store storage.Storage, path string) error {
	issues, err := store.ListIssues(ctx, types.IssueFilter{
		IncludeTombstone: true,
		SortBy:           types.SortByID,
	})
	if err != nil {
		return fmt.Errorf("list issues for export: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp log file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	writeErr := func() error {
		defer tmp.Close()
		for _, issue := range issues {
			if issue.Ephemeral {
				continue
			}
			line, err := jsonl.EncodeIssue(issue)
			if err != nil {
				return fmt.Errorf("encode issue %s: %w", issue.ID, err)
			}
			if _, err := tmp.Write(append(line, '\n')); err != nil {
				return fmt.Errorf("write issue %s: %w", issue.ID, err)
			}
		}
		return tmp.Sync()
	}()
	if writeErr != nil {
		return writeErr
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp log into place: %w", err)
	}

	if err := store.ClearDirty(ctx, nil); err != nil {
		return fmt.Errorf("clear dirty set after export: %w", err)
	}
	return nil
}

// IfDirty performs a Full rewrite only when the dirty set is non-empty,
// the surface variant the auto-sync driver calls on command exit.
func IfDirty(ctx context.Context, store storage.Storage, path string) error {
	dirty, err := store.GetDirtyIssues(ctx)
	if err != nil {
		return fmt.Errorf("read dirty set: %w", err)
	}
	if len(dirty) == 0 {
		return nil
	}
	return Full(ctx, store, path)
}
