package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/project"
	"github.com/beadkeep/beads/internal/synclock"
	"github.com/beadkeep/beads/internal/types"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the index for dangling dependency edges and report workspace, lock and log state",
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := store.ListIssues(rootCtx, types.IssueFilter{IncludeTombstone: true})
		if err != nil {
			return fmt.Errorf("list issues: %w", err)
		}
		known := make(map[string]bool, len(issues))
		for _, i := range issues {
			known[i.ID] = true
		}

		problems := 0
		for _, i := range issues {
			deps, err := store.GetDependencyRecords(rootCtx, i.ID)
			if err != nil {
				return fmt.Errorf("dependencies for %s: %w", i.ID, err)
			}
			for _, d := range deps {
				if !known[d.DependsOnID] {
					problems++
					fmt.Printf("dangling edge: %s -> %s (%s) references a missing issue\n", d.IssueID, d.DependsOnID, d.Type)
				}
			}
		}

		if problems == 0 {
			fmt.Println("No issues found.")
		} else {
			fmt.Printf("%d problem(s) found.\n", problems)
		}

		reportWorkspaces()
		reportSyncLock()
		reportUnimportedLog()
		return nil
	},
}

// reportWorkspaces warns when more than one .beads/ directory is visible
// from the cwd upward, since that usually means a command bound to a
// different workspace than the one the user expected.
func reportWorkspaces() {
	found := project.FindAllDatabases()
	if len(found) <= 1 {
		return
	}
	fmt.Printf("\n%d workspaces found walking up from the current directory:\n", len(found))
	for _, db := range found {
		fmt.Printf("  %s (%d issues)\n", db.Path, db.IssueCount)
	}
}

// reportSyncLock flags a sync.lock held by a process other than this one.
// A held lock from a no-longer-running process (this binary never
// records the holder's PID, so it can't distinguish the two cases
// automatically) is surfaced as advisory information for the operator to
// check by hand.
func reportSyncLock() {
	if syncLock != nil {
		// This process took the lock in PersistentPreRunE, so no other
		// process holds it; a probe would only find this process's own hold.
		return
	}
	beadsDir := filepath.Dir(dbPath)
	held, err := synclock.HeldByOtherProcess(beadsDir)
	if err != nil {
		fmt.Printf("\nwarning: could not probe sync lock: %v\n", err)
		return
	}
	if held {
		fmt.Printf("\nwarning: %s is held by another process (a concurrent bd command, or a stale lock from a crashed one)\n", synclock.Path(beadsDir))
	}
}

// reportUnimportedLog flags when the log file has a newer modification
// time than the store's recorded last_import_mtime, meaning an external
// change (e.g. a git pull) hasn't been imported yet.
func reportUnimportedLog() {
	info, err := os.Stat(jsonlPath)
	if err != nil {
		return
	}
	lastStr, err := store.GetMetadata(rootCtx, "last_import_mtime")
	if err != nil || lastStr == "" {
		return
	}
	last, err := time.Parse(time.RFC3339Nano, lastStr)
	if err != nil {
		return
	}
	if info.ModTime().After(last) {
		fmt.Printf("\nwarning: %s was modified after the last import; run `bd sync` to pick up external changes\n", jsonlPath)
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
