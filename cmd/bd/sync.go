package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/export"
	"github.com/beadkeep/beads/internal/importer"
	"github.com/beadkeep/beads/internal/jsonl"
)

var importCmd = &cobra.Command{
	Use:     "import",
	GroupID: "sync",
	Short:   "Force-import the shared log into the local index",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(jsonlPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", jsonlPath, err)
		}
		defer f.Close()
		records, warnings, err := jsonl.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", jsonlPath, err)
		}
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", w)
		}
		tally, err := importer.Import(rootCtx, store, records)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		if jsonOutput {
			outputJSON(tally)
			return nil
		}
		fmt.Printf("created=%d updated=%d unchanged=%d skipped=%d deleted=%d\n",
			tally.Created, tally.Updated, tally.Unchanged, tally.Skipped, tally.Deleted)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:     "export",
	GroupID: "sync",
	Short:   "Force a full rewrite of the shared log from the local index",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.Full(rootCtx, store, jsonlPath); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("Exported index to %s\n", jsonlPath)
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:     "sync",
	GroupID: "sync",
	Short:   "Force-import the shared log, then rewrite it in full from the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := importCmd.RunE(cmd, nil); err != nil {
			return err
		}
		if err := exportCmd.RunE(cmd, nil); err != nil {
			return err
		}
		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return nil
		}
		return watchLog(cmd)
	},
}

// watchLog runs importCmd on every write, create or rename event for
// jsonlPath until interrupted; events for other files are ignored. The directory (not the file) is watched
// so an editor or VCS checkout that replaces the file via rename-over
// is still seen; a direct file watch would miss that.
func watchLog(cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(jsonlPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("Watching %s for changes (ctrl-C to stop)...\n", jsonlPath)
	for {
		select {
		case <-sigCh:
			return nil
		case err := <-watcher.Errors:
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		case ev := <-watcher.Events:
			if filepath.Clean(ev.Name) != filepath.Clean(jsonlPath) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := importCmd.RunE(cmd, nil); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: re-import failed: %v\n", err)
			}
		}
	}
}

func init() {
	syncCmd.Flags().Bool("watch", false, "after syncing once, keep watching the log and re-import on external changes")
	rootCmd.AddCommand(importCmd, exportCmd, syncCmd)
}
