package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var reopenCmd = &cobra.Command{
	Use:     "reopen <id...>",
	GroupID: "issues",
	Short:   "Reopen one or more closed issues",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")
		for _, arg := range args {
			id, err := resolveIssue(arg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error resolving %s: %v\n", arg, err)
				continue
			}
			if err := store.ReopenIssue(rootCtx, id, actor); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error reopening %s: %v\n", id, err)
				continue
			}
			if reason != "" {
				if _, err := store.AddComment(rootCtx, id, actor, reason); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to add comment to %s: %v\n", id, err)
				}
			}
			if !jsonOutput {
				fmt.Printf("%s Reopened %s\n", ui.RenderAccent("o"), id)
			}
		}
		markDirtyAndScheduleFlush()
		return nil
	},
}

func init() {
	reopenCmd.Flags().StringP("reason", "r", "", "reason for reopening")
	reopenCmd.ValidArgsFunction = issueIDCompletion
	rootCmd.AddCommand(reopenCmd)
}
