package autoimport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beadkeep/beads/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "beads.db"))
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Warnf(format string, args ...any) {
	n.messages = append(n.messages, format)
}

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestIfNewer_MissingFileIsANoOp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tally, err := IfNewer(ctx, store, filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	if err != nil {
		t.Fatalf("IfNewer: %v", err)
	}
	if tally.Created != 0 {
		t.Errorf("tally = %+v, want zero-value", tally)
	}
}

func TestIfNewer_ImportsOnFirstRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beads.jsonl")
	writeLog(t, path, `{"id":"bd-1","title":"Task","priority":1}`+"\n")

	tally, err := IfNewer(ctx, store, path, nil)
	if err != nil {
		t.Fatalf("IfNewer: %v", err)
	}
	if tally.Created != 1 {
		t.Errorf("tally = %+v, want Created=1", tally)
	}

	if _, err := store.GetIssue(ctx, "bd-1"); err != nil {
		t.Errorf("GetIssue(bd-1): %v", err)
	}
}

func TestIfNewer_SkipsReimportWhenNotModified(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beads.jsonl")
	writeLog(t, path, `{"id":"bd-1","title":"Task","priority":1}`+"\n")

	if _, err := IfNewer(ctx, store, path, nil); err != nil {
		t.Fatalf("IfNewer (first): %v", err)
	}
	// Appending a second id without touching mtime forward would be flaky
	// to simulate; instead confirm a second call against the unchanged
	// file performs no additional work by checking the tally is empty.
	tally, err := IfNewer(ctx, store, path, nil)
	if err != nil {
		t.Fatalf("IfNewer (second): %v", err)
	}
	if tally.Created != 0 || tally.Updated != 0 {
		t.Errorf("tally = %+v, want a no-op re-run", tally)
	}
}

func TestIfNewer_ReimportsAfterMtimeAdvances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beads.jsonl")
	writeLog(t, path, `{"id":"bd-1","title":"Task","priority":1}`+"\n")

	if _, err := IfNewer(ctx, store, path, nil); err != nil {
		t.Fatalf("IfNewer (first): %v", err)
	}

	writeLog(t, path, `{"id":"bd-1","title":"Task","priority":1}`+"\n"+`{"id":"bd-2","title":"Second","priority":1}`+"\n")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	tally, err := IfNewer(ctx, store, path, nil)
	if err != nil {
		t.Fatalf("IfNewer (second): %v", err)
	}
	if tally.Created != 1 {
		t.Errorf("tally = %+v, want Created=1 for the newly-added issue", tally)
	}
}

func TestIfNewer_WarnsOnMalformedLineButContinues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beads.jsonl")
	writeLog(t, path, `{"id":"bd-1","title":"Task","priority":1}`+"\n"+"not json\n")

	notifier := &recordingNotifier{}
	tally, err := IfNewer(ctx, store, path, notifier)
	if err != nil {
		t.Fatalf("IfNewer: %v", err)
	}
	if tally.Created != 1 {
		t.Errorf("tally = %+v, want Created=1 despite the malformed line", tally)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("notifier received %d warnings, want 1", len(notifier.messages))
	}
}

func TestExportIfDirty_RespectsNoAutoFlush(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beads.jsonl")

	if err := ExportIfDirty(ctx, store, path, true); err != nil {
		t.Fatalf("ExportIfDirty: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("ExportIfDirty(noAutoFlush=true) wrote %s, want no-op", path)
	}
}
