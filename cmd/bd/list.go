package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/types"
)

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: "issues",
	Aliases: []string{"ls"},
	Short:   "List issues matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildListFilter(cmd)
		if err != nil {
			return err
		}
		issues, err := store.ListIssues(rootCtx, filter)
		if err != nil {
			return fmt.Errorf("list issues: %w", err)
		}
		if jsonOutput {
			outputJSON(issues)
			return nil
		}
		printIssueTable(issues)
		return nil
	},
}

func buildListFilter(cmd *cobra.Command) (types.IssueFilter, error) {
	flags := cmd.Flags()
	var filter types.IssueFilter

	if statuses, _ := flags.GetStringSlice("status"); len(statuses) > 0 {
		for _, s := range statuses {
			filter.Status = append(filter.Status, types.Status(s))
		}
	}
	if types_, _ := flags.GetStringSlice("type"); len(types_) > 0 {
		for _, t := range types_ {
			filter.Type = append(filter.Type, types.IssueType(t))
		}
	}
	if assignee, _ := flags.GetString("assignee"); assignee != "" {
		filter.Assignee = assignee
	}
	if labels, _ := flags.GetStringSlice("label"); len(labels) > 0 {
		filter.Labels = labels
	}
	if p, _ := flags.GetInt("priority"); flags.Changed("priority") {
		filter.Priority = &p
	}
	if limit, _ := flags.GetInt("limit"); limit > 0 {
		filter.Limit = limit
	}
	if sortBy, _ := flags.GetString("sort"); sortBy != "" {
		filter.SortBy = types.SortKey(sortBy)
	}
	if all, _ := flags.GetBool("all"); !all {
		filter.ExcludeStatus = []types.Status{types.StatusTombstone}
	} else {
		filter.IncludeTombstone = true
	}
	return filter, nil
}

func printIssueTable(issues []*types.Issue) {
	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return
	}
	for _, i := range issues {
		fmt.Printf("%-16s P%d  %-10s %-8s %s\n", i.ID, i.Priority, i.Status, i.IssueType, i.Title)
	}
}

func init() {
	listCmd.Flags().StringSlice("status", nil, "filter by status (repeatable)")
	listCmd.Flags().StringSlice("type", nil, "filter by issue type (repeatable)")
	listCmd.Flags().String("assignee", "", "filter by assignee")
	listCmd.Flags().StringSlice("label", nil, "filter by label, AND-combined")
	listCmd.Flags().Int("priority", 0, "filter by exact priority")
	listCmd.Flags().Int("limit", 0, "cap the number of results")
	listCmd.Flags().String("sort", "", "sort key: created, updated, priority, status, title, id, type")
	listCmd.Flags().Bool("all", false, "include tombstoned issues")
	rootCmd.AddCommand(listCmd)
}
