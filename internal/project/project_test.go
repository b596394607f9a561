package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beadkeep/beads/internal/storage/sqlite"
	"github.com/beadkeep/beads/internal/types"
)

func TestFindBeadsDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BEADS_DIR", dir)

	got := FindBeadsDir()
	abs, _ := filepath.Abs(dir)
	if got != abs {
		t.Errorf("FindBeadsDir() = %q, want %q", got, abs)
	}
}

func TestFindBeadsDir_WalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, dirName), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	t.Chdir(nested)
	got := FindBeadsDir()
	want := filepath.Join(root, dirName)
	if got != want {
		t.Errorf("FindBeadsDir() = %q, want %q", got, want)
	}
}

func TestFindBeadsDir_NoneFound(t *testing.T) {
	t.Chdir(t.TempDir())
	if got := FindBeadsDir(); got != "" {
		t.Errorf("FindBeadsDir() = %q, want empty", got)
	}
}

func TestFindDatabasePath_EnvOverride(t *testing.T) {
	t.Setenv("BEADS_DB", "custom.db")
	got := FindDatabasePath()
	abs, _ := filepath.Abs("custom.db")
	if got != abs {
		t.Errorf("FindDatabasePath() = %q, want %q", got, abs)
	}
}

func TestFindJSONLPath_FromDBPath(t *testing.T) {
	got := FindJSONLPath("/a/b/.beads/beads.db")
	want := filepath.Join("/a/b/.beads", jsonlName)
	if got != want {
		t.Errorf("FindJSONLPath() = %q, want %q", got, want)
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("/a/.beads")
	want := filepath.Join("/a/.beads", configName)
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestFindAllDatabases_CollectsEachAncestorClosestFirst(t *testing.T) {
	root := t.TempDir()
	outerBeads := filepath.Join(root, dirName)
	if err := os.Mkdir(outerBeads, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	createDBWithIssue(t, filepath.Join(outerBeads, dbName), "bd-outer")

	nested := filepath.Join(root, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	innerBeads := filepath.Join(nested, dirName)
	if err := os.Mkdir(innerBeads, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	createDBWithIssue(t, filepath.Join(innerBeads, dbName), "bd-inner")

	t.Chdir(nested)
	found := FindAllDatabases()
	if len(found) != 2 {
		t.Fatalf("FindAllDatabases() = %+v, want 2 entries", found)
	}
	if found[0].BeadsDir != innerBeads {
		t.Errorf("found[0].BeadsDir = %q, want closest dir %q", found[0].BeadsDir, innerBeads)
	}
	if found[0].IssueCount != 1 {
		t.Errorf("found[0].IssueCount = %d, want 1", found[0].IssueCount)
	}
	if found[1].BeadsDir != outerBeads {
		t.Errorf("found[1].BeadsDir = %q, want %q", found[1].BeadsDir, outerBeads)
	}
}

func TestFindAllDatabases_SkipsDirWithoutDBFile(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, dirName), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	t.Chdir(root)

	if found := FindAllDatabases(); len(found) != 0 {
		t.Errorf("FindAllDatabases() = %+v, want none (no beads.db present)", found)
	}
}

func TestCountIssues_MissingFileReturnsNegativeOne(t *testing.T) {
	if n := countIssues(filepath.Join(t.TempDir(), "nope.db")); n != -1 {
		t.Errorf("countIssues() on a missing file = %d, want -1", n)
	}
}

func createDBWithIssue(t *testing.T, dbPath, id string) {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	defer store.Close()
	if err := store.CreateIssue(ctx, &types.Issue{ID: id, Title: "T", Priority: 1, IssueType: types.TypeTask}, "alice"); err != nil {
		t.Fatalf("CreateIssue: %v", err)
	}
}
