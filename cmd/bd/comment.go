package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var commentCmd = &cobra.Command{
	Use:     "comment",
	GroupID: "issues",
	Short:   "Manage an issue's comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <id> <text...>",
	Short: "Append a comment",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		text := strings.Join(args[1:], " ")
		comment, err := store.AddComment(rootCtx, id, actor, text)
		if err != nil {
			return fmt.Errorf("add comment: %w", err)
		}
		markDirtyAndScheduleFlush()
		if jsonOutput {
			outputJSON(comment)
			return nil
		}
		fmt.Printf("%s Commented on %s\n", ui.RenderAccent("#"), id)
		return nil
	},
}

var commentListCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "List an issue's comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		comments, err := store.GetComments(rootCtx, id)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		if jsonOutput {
			outputJSON(comments)
			return nil
		}
		for _, c := range comments {
			fmt.Printf("[%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author, c.Text)
		}
		return nil
	},
}

func init() {
	commentCmd.AddCommand(commentAddCmd, commentListCmd)
	rootCmd.AddCommand(commentCmd)
}
