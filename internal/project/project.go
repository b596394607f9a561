// Package project locates a workspace's .beads/ directory and the files
// inside it, following the same env-var-then-walk-up discovery rule the
// command surface uses to find the log, the store, and the config file.
package project

import (
	"context"
	"os"
	"path/filepath"

	"github.com/beadkeep/beads/internal/storage/sqlite"
	"github.com/beadkeep/beads/internal/types"
)

const (
	dirName    = ".beads"
	jsonlName  = "issues.jsonl"
	dbName     = "beads.db"
	configName = "config.yaml"
)

// FindBeadsDir walks up from the current working directory looking for a
// .beads/ directory, the same way git locates .git/. BEADS_DIR overrides
// the search entirely. Returns "" if none is found.
func FindBeadsDir() string {
	if dir := os.Getenv("BEADS_DIR"); dir != "" {
		abs, err := filepath.Abs(dir)
		if err == nil {
			return abs
		}
		return dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findUpward(cwd)
}

func findUpward(start string) string {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// FindDatabasePath resolves the store path: BEADS_DB env var first, then
// dbName inside the discovered .beads/ directory.
func FindDatabasePath() string {
	if db := os.Getenv("BEADS_DB"); db != "" {
		abs, err := filepath.Abs(db)
		if err == nil {
			return abs
		}
		return db
	}

	beadsDir := FindBeadsDir()
	if beadsDir == "" {
		return ""
	}
	return filepath.Join(beadsDir, dbName)
}

// FindJSONLPath resolves the shared text log path given a store path's
// directory, or "" if no .beads/ directory is known.
func FindJSONLPath(dbPath string) string {
	var dir string
	if dbPath != "" {
		dir = filepath.Dir(dbPath)
	} else {
		dir = FindBeadsDir()
	}
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, jsonlName)
}

// ConfigPath resolves config.yaml's path given the .beads/ directory.
func ConfigPath(beadsDir string) string {
	return filepath.Join(beadsDir, configName)
}

// DatabaseInfo describes one discovered workspace store.
type DatabaseInfo struct {
	Path       string
	BeadsDir   string
	IssueCount int // -1 if the store couldn't be opened
}

// FindAllDatabases walks up from the current working directory collecting
// every .beads/ directory it passes through, closest first. Useful for
// diagnosing which workspace a command would actually bind to.
func FindAllDatabases() []DatabaseInfo {
	found := []DatabaseInfo{}

	dir, err := os.Getwd()
	if err != nil {
		return found
	}

	for {
		beadsDir := filepath.Join(dir, dirName)
		if info, err := os.Stat(beadsDir); err == nil && info.IsDir() {
			dbPath := filepath.Join(beadsDir, dbName)
			if _, err := os.Stat(dbPath); err == nil {
				found = append(found, DatabaseInfo{
					Path:       dbPath,
					BeadsDir:   beadsDir,
					IssueCount: countIssues(dbPath),
				})
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return found
}

// countIssues best-effort opens a store to report its size; a missing,
// locked or corrupt database just yields -1 rather than failing the whole
// scan.
func countIssues(dbPath string) int {
	if _, err := os.Stat(dbPath); err != nil {
		return -1
	}
	store, err := sqlite.Open(context.Background(), dbPath)
	if err != nil {
		return -1
	}
	defer store.Close()

	issues, err := store.ListIssues(context.Background(), types.IssueFilter{})
	if err != nil {
		return -1
	}
	return len(issues)
}
