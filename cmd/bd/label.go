package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var labelCmd = &cobra.Command{
	Use:     "label",
	GroupID: "issues",
	Short:   "Manage labels on an issue",
}

var labelAddCmd = &cobra.Command{
	Use:   "add <id> <label...>",
	Short: "Attach one or more labels",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		for _, label := range args[1:] {
			if err := store.AddLabel(rootCtx, id, label, actor); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error adding label %q: %v\n", label, err)
				continue
			}
			if !jsonOutput {
				fmt.Printf("%s %s += %s\n", ui.RenderAccent("+"), id, label)
			}
		}
		markDirtyAndScheduleFlush()
		return nil
	},
}

var labelRemoveCmd = &cobra.Command{
	Use:   "remove <id> <label...>",
	Short: "Remove one or more labels",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		for _, label := range args[1:] {
			if err := store.RemoveLabel(rootCtx, id, label, actor); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error removing label %q: %v\n", label, err)
				continue
			}
			if !jsonOutput {
				fmt.Printf("%s %s -= %s\n", ui.RenderFail("-"), id, label)
			}
		}
		markDirtyAndScheduleFlush()
		return nil
	},
}

var labelListCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "List an issue's labels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		labels, err := store.GetLabels(rootCtx, id)
		if err != nil {
			return fmt.Errorf("list labels: %w", err)
		}
		if jsonOutput {
			outputJSON(labels)
			return nil
		}
		for _, l := range labels {
			fmt.Println(l)
		}
		return nil
	},
}

func init() {
	labelCmd.AddCommand(labelAddCmd, labelRemoveCmd, labelListCmd)
	rootCmd.AddCommand(labelCmd)
}
