// Package autoimport implements the auto-sync driver (C7): on command
// entry, import the shared log if it is newer than the last import; on
// command exit, export if the store has pending dirty issues.
package autoimport

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beadkeep/beads/internal/export"
	"github.com/beadkeep/beads/internal/importer"
	"github.com/beadkeep/beads/internal/jsonl"
	"github.com/beadkeep/beads/internal/storage"
)

// lastImportMtimeKey is the metadata key recording the log's modification
// time as of the last successful import, compared against the log's
// current mtime to decide whether re-import is warranted.
const lastImportMtimeKey = "last_import_mtime"

// Notifier receives diagnostic messages during auto-sync; the CLI wires
// this to stderr, tests can supply a no-op or recording stub.
type Notifier interface {
	Warnf(format string, args ...any)
}

// IfNewer imports jsonlPath into store when the file's mtime is newer
// than the recorded last_import_mtime, then advances the watermark.
// Malformed lines are skipped with a warning and import continues, per
// the log codec's error taxonomy.
func IfNewer(ctx context.Context, store storage.Storage, jsonlPath string, notify Notifier) (importer.Tally, error) {
	var tally importer.Tally

	info, err := os.Lstat(jsonlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return tally, nil
		}
		return tally, fmt.Errorf("stat log file: %w", err)
	}

	lastStr, err := store.GetMetadata(ctx, lastImportMtimeKey)
	if err != nil {
		return tally, fmt.Errorf("read last_import_mtime: %w", err)
	}

	if lastStr != "" {
		last, err := time.Parse(time.RFC3339Nano, lastStr)
		if err == nil && !info.ModTime().After(last) {
			return tally, nil
		}
	}

	f, err := os.Open(jsonlPath)
	if err != nil {
		return tally, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	records, warnings, err := jsonl.Decode(f)
	if err != nil {
		return tally, fmt.Errorf("decode log file: %w", err)
	}
	if notify != nil {
		for _, w := range warnings {
			notify.Warnf("skipping malformed log line: %v", w)
		}
	}

	tally, err = importer.Import(ctx, store, records)
	if err != nil {
		return tally, err
	}

	if err := store.SetMetadata(ctx, lastImportMtimeKey, info.ModTime().UTC().Format(time.RFC3339Nano)); err != nil {
		return tally, fmt.Errorf("advance last_import_mtime: %w", err)
	}
	return tally, nil
}

// ExportIfDirty performs the exit-side half of the driver: a full log
// rewrite iff the store has pending dirty issues, skipped entirely when
// noAutoFlush is set (the config key driving the --no-auto-flush CLI flag).
func ExportIfDirty(ctx context.Context, store storage.Storage, jsonlPath string, noAutoFlush bool) error {
	if noAutoFlush {
		return nil
	}
	return export.IfDirty(ctx, store, jsonlPath)
}
