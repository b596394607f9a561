// Command bd is the beads CLI: a thin driver over the local SQLite index,
// the shared JSONL log, and the auto-sync layer that keeps them converged.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/autoimport"
	"github.com/beadkeep/beads/internal/config"
	"github.com/beadkeep/beads/internal/debug"
	"github.com/beadkeep/beads/internal/project"
	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/storage/sqlite"
	"github.com/beadkeep/beads/internal/synclock"
	"github.com/beadkeep/beads/internal/types"
)

var (
	rootCtx     = context.Background()
	store       storage.Storage
	dbPath      string
	jsonlPath   string
	actor       string
	jsonOutput  bool
	noAutoFlush bool
	verbose     bool
	force       bool
	logFile     string
	syncLock    *synclock.Lock
)

var rootCmd = &cobra.Command{
	Use:           "bd",
	Short:         "bd tracks issues in a shared JSONL log indexed locally in SQLite",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		debug.SetEnabled(verbose)
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if logFile == "" {
			logFile = os.Getenv("BD_LOG_FILE")
		}
		if logFile == "" {
			logFile = config.GetString("log-file")
		}
		if err := debug.SetLogFile(logFile); err != nil {
			return fmt.Errorf("open log file %s: %w", logFile, err)
		}
		if dbPath == "" {
			dbPath = config.GetString("db")
		}
		if dbPath == "" {
			dbPath = project.FindDatabasePath()
		}
		if dbPath == "" {
			return fmt.Errorf("no .beads/ workspace found (run `bd init` or set --db/BEADS_DB)")
		}
		if actor == "" {
			actor = config.GetString("actor")
		}
		if actor == "" {
			actor = os.Getenv("USER")
		}
		if !cmd.Flags().Changed("json") {
			jsonOutput = config.GetBool("json")
		}
		if !cmd.Flags().Changed("no-auto-flush") {
			noAutoFlush = config.GetBool("no-auto-flush")
		}

		s, err := sqlite.Open(rootCtx, dbPath)
		if err != nil {
			return fmt.Errorf("open database %s: %w", dbPath, err)
		}
		store = s

		jsonlPath = project.FindJSONLPath(dbPath)

		lock, err := synclock.Acquire(filepath.Dir(dbPath))
		if err != nil {
			return fmt.Errorf("lock workspace: %w", err)
		}
		syncLock = lock

		if !config.GetBool("no-auto-import") {
			notify := stderrNotifier{}
			if _, err := autoimport.IfNewer(rootCtx, store, jsonlPath, notify); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: auto-import failed: %v\n", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer func() {
			if err := syncLock.Unlock(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: release sync lock failed: %v\n", err)
			}
		}()
		if store == nil {
			return nil
		}
		defer store.Close()
		if err := autoimport.ExportIfDirty(rootCtx, store, jsonlPath, noAutoFlush); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: auto-export failed: %v\n", err)
		}
		return nil
	},
}

type stderrNotifier struct{}

func (stderrNotifier) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "issues", Title: "Issue commands:"},
		&cobra.Group{ID: "work", Title: "Work-queue commands:"},
		&cobra.Group{ID: "graph", Title: "Dependency graph commands:"},
		&cobra.Group{ID: "sync", Title: "Sync commands:"},
	)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite index (default: discovered .beads/beads.db)")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "identity recorded for mutations (default: $BD_ACTOR, $USER)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&noAutoFlush, "no-auto-flush", false, "skip the export-on-exit auto-sync step")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit diagnostic output to stderr")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "skip the confirmation prompt of bd delete")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "redirect --verbose diagnostics to a rotated file instead of stderr")
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func markDirtyAndScheduleFlush() {
	// Mutating store calls already mark the affected issue dirty; the
	// actual flush happens in PersistentPostRunE via autoimport.ExportIfDirty.
}

// issueIDCompletion offers open issue ids for shell completion; real
// resolution still goes through resolveIssue at run time.
func issueIDCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if store == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	issues, err := store.ListIssues(rootCtx, types.IssueFilter{IDPrefix: toComplete, Limit: 50})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids := make([]string, 0, len(issues))
	for _, i := range issues {
		ids = append(ids, i.ID)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// naturalDateParser resolves phrases like "tomorrow" or "next friday"
// when --due/--defer don't parse as RFC3339 or a bare date. Built once;
// the underlying rule set is immutable after Add.
var naturalDateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

func parseTimeFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if !config.GetBool("due-natural-language") {
		return nil, fmt.Errorf("invalid time %q (use RFC3339 or YYYY-MM-DD)", s)
	}
	r, err := naturalDateParser.Parse(s, time.Now())
	if err != nil || r == nil {
		return nil, fmt.Errorf("invalid time %q (use RFC3339, YYYY-MM-DD, or a phrase like \"tomorrow\")", s)
	}
	t := r.Time
	return &t, nil
}
