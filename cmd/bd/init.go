package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/storage/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a .beads/ workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetString("prefix")
		if prefix == "" {
			prefix = "bd"
		}

		beadsDir := ".beads"
		if existing, _ := cmd.Flags().GetString("dir"); existing != "" {
			beadsDir = existing
		}

		if _, err := os.Stat(beadsDir); err == nil {
			return fmt.Errorf("%s already exists", beadsDir)
		}
		if err := os.MkdirAll(beadsDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", beadsDir, err)
		}

		dbPath := filepath.Join(beadsDir, "beads.db")
		s, err := sqlite.Open(rootCtx, dbPath)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		defer s.Close()
		if err := s.SetConfig(rootCtx, "issue-prefix", prefix); err != nil {
			return fmt.Errorf("set issue-prefix: %w", err)
		}

		jsonlPath := filepath.Join(beadsDir, "issues.jsonl")
		if _, err := os.Stat(jsonlPath); os.IsNotExist(err) {
			if err := os.WriteFile(jsonlPath, nil, 0o644); err != nil {
				return fmt.Errorf("create %s: %w", jsonlPath, err)
			}
		}

		configPath := filepath.Join(beadsDir, "config.yaml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			contents := fmt.Sprintf("issue-prefix: %s\n", prefix)
			if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
				return fmt.Errorf("create %s: %w", configPath, err)
			}
		}

		fmt.Printf("Initialized beads workspace in %s (prefix %q)\n", beadsDir, prefix)
		return nil
	},
}

func init() {
	initCmd.Flags().String("prefix", "", "issue id prefix for this workspace (default: bd)")
	initCmd.Flags().String("dir", "", "workspace directory (default: .beads)")
	rootCmd.AddCommand(initCmd)
}
