package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/types"
	"github.com/beadkeep/beads/internal/ui"
)

var readyCmd = &cobra.Command{
	Use:     "ready",
	GroupID: "work",
	Short:   "List issues with no unresolved blockers",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var filter types.WorkFilter
		if t, _ := flags.GetString("type"); t != "" {
			filter.Type = types.IssueType(t)
		}
		if a, _ := flags.GetString("assignee"); a != "" {
			filter.Assignee = a
		}
		if u, _ := flags.GetBool("unassigned"); u {
			filter.Unassigned = true
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

		issues, err := store.GetReadyWork(rootCtx, filter)
		if err != nil {
			return fmt.Errorf("ready: %w", err)
		}
		if jsonOutput {
			outputJSON(issues)
			return nil
		}
		if len(issues) == 0 {
			fmt.Printf("%s No ready work found\n", ui.RenderPass("done"))
			return nil
		}
		fmt.Printf("%s Ready work (%d):\n\n", ui.RenderAccent("ready"), len(issues))
		for i, issue := range issues {
			fmt.Printf("%d. [%s] [P%d] %s: %s\n", i+1, issue.ID, issue.Priority, issue.IssueType, issue.Title)
		}
		return nil
	},
}

var blockedCmd = &cobra.Command{
	Use:     "blocked",
	GroupID: "work",
	Short:   "List issues with unresolved blockers",
	RunE: func(cmd *cobra.Command, args []string) error {
		blocked, err := store.GetBlockedIssues(rootCtx, types.WorkFilter{})
		if err != nil {
			return fmt.Errorf("blocked: %w", err)
		}
		if jsonOutput {
			outputJSON(blocked)
			return nil
		}
		if len(blocked) == 0 {
			fmt.Printf("%s No blocked issues\n", ui.RenderPass("done"))
			return nil
		}
		fmt.Printf("%s Blocked issues (%d):\n\n", ui.RenderFail("blocked"), len(blocked))
		for _, b := range blocked {
			fmt.Printf("[%s] %s: %s\n  blocked by: %v\n", b.Issue.ID, b.Issue.Status, b.Issue.Title, b.BlockedBy)
		}
		return nil
	},
}

func init() {
	readyCmd.Flags().String("type", "", "filter by issue type")
	readyCmd.Flags().String("assignee", "", "filter by assignee")
	readyCmd.Flags().Bool("unassigned", false, "only unassigned issues")
	readyCmd.Flags().StringSlice("label", nil, "filter by label")
	readyCmd.Flags().Int("priority", 0, "filter by exact priority")
	readyCmd.Flags().Int("limit", 0, "cap the number of results")
	rootCmd.AddCommand(readyCmd)
	rootCmd.AddCommand(blockedCmd)
}
