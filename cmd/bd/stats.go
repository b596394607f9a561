package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	GroupID: "work",
	Short:   "Show aggregate counts across the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.GetStatistics(rootCtx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		if jsonOutput {
			outputJSON(stats)
			return nil
		}
		fmt.Printf("Total:      %d\n", stats.Total)
		fmt.Printf("Ready:      %d\n", stats.Ready)
		fmt.Printf("Tombstones: %d\n", stats.Tombstones)
		fmt.Println("\nBy status:")
		for status, n := range stats.ByStatus {
			fmt.Printf("  %-12s %d\n", status, n)
		}
		fmt.Println("\nBy type:")
		for t, n := range stats.ByType {
			fmt.Printf("  %-12s %d\n", t, n)
		}
		fmt.Println("\nBy priority:")
		for p, n := range stats.ByPriority {
			fmt.Printf("  P%-3d %d\n", p, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
