package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id...>",
	GroupID: "issues",
	Aliases: []string{"rm"},
	Short:   "Hard-delete one or more issues (no tombstone, no undo)",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !force {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !ui.PromptYesNo(fmt.Sprintf("Permanently delete %d issue(s)?", len(args)), false) {
				fmt.Println("Aborted.")
				return nil
			}
		}
		for _, arg := range args {
			id, err := resolveIssue(arg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error resolving %s: %v\n", arg, err)
				continue
			}
			if err := store.DeleteIssue(rootCtx, id); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting %s: %v\n", id, err)
				continue
			}
			if !jsonOutput {
				fmt.Printf("%s Deleted %s\n", ui.RenderFail("-"), id)
			}
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	deleteCmd.ValidArgsFunction = issueIDCompletion
	rootCmd.AddCommand(deleteCmd)
}
