package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var closeCmd = &cobra.Command{
	Use:     "close <id...>",
	GroupID: "issues",
	Short:   "Close one or more issues",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")
		for _, arg := range args {
			id, err := resolveIssue(arg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error resolving %s: %v\n", arg, err)
				continue
			}
			if err := store.CloseIssue(rootCtx, id, reason, actor); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error closing %s: %v\n", id, err)
				continue
			}
			if !jsonOutput {
				fmt.Printf("%s Closed %s\n", ui.RenderPass("x"), id)
			}
		}
		markDirtyAndScheduleFlush()
		return nil
	},
}

func init() {
	closeCmd.Flags().StringP("reason", "r", "", "reason for closing")
	closeCmd.ValidArgsFunction = issueIDCompletion
	rootCmd.AddCommand(closeCmd)
}
