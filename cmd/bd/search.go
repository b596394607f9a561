package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <query...>",
	GroupID: "issues",
	Short:   "Substring search across title, description, and notes",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		filter, err := buildListFilter(cmd)
		if err != nil {
			return err
		}
		issues, err := store.SearchIssues(rootCtx, query, filter)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if jsonOutput {
			outputJSON(issues)
			return nil
		}
		printIssueTable(issues)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSlice("status", nil, "filter by status (repeatable)")
	searchCmd.Flags().StringSlice("type", nil, "filter by issue type (repeatable)")
	searchCmd.Flags().String("assignee", "", "filter by assignee")
	searchCmd.Flags().StringSlice("label", nil, "filter by label, AND-combined")
	searchCmd.Flags().Int("priority", 0, "filter by exact priority")
	searchCmd.Flags().Int("limit", 0, "cap the number of results")
	searchCmd.Flags().String("sort", "", "sort key")
	searchCmd.Flags().Bool("all", false, "include tombstoned issues")
	rootCmd.AddCommand(searchCmd)
}
