package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
	"github.com/beadkeep/beads/internal/ui"
)

var depCmd = &cobra.Command{
	Use:     "dep",
	GroupID: "graph",
	Short:   "Manage dependency edges between issues",
}

var depAddCmd = &cobra.Command{
	Use:   "add <from-id> <to-id>",
	Short: "Add a dependency edge: from-id depends-on to-id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		depType, _ := cmd.Flags().GetString("type")
		from, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		to, err := resolveIssue(args[1])
		if err != nil {
			return err
		}
		dep := &types.Dependency{IssueID: from, DependsOnID: to, Type: types.DependencyType(depType)}
		if err := store.AddDependency(rootCtx, dep, actor); err != nil {
			if errors.Is(err, storage.ErrCycle) {
				return fmt.Errorf("adding %s -> %s would create a cycle", from, to)
			}
			return fmt.Errorf("add dependency: %w", err)
		}
		markDirtyAndScheduleFlush()
		if !jsonOutput {
			fmt.Printf("%s %s depends-on %s (%s)\n", ui.RenderAccent("->"), from, to, depType)
		}
		return nil
	},
}

var depRemoveCmd = &cobra.Command{
	Use:   "remove <from-id> <to-id>",
	Short: "Remove a dependency edge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		to, err := resolveIssue(args[1])
		if err != nil {
			return err
		}
		if err := store.RemoveDependency(rootCtx, from, to, actor); err != nil {
			return fmt.Errorf("remove dependency: %w", err)
		}
		markDirtyAndScheduleFlush()
		if !jsonOutput {
			fmt.Printf("%s Removed %s -> %s\n", ui.RenderFail("x"), from, to)
		}
		return nil
	},
}

var depListCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "List an issue's dependency edges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		deps, err := store.GetDependencyRecords(rootCtx, id)
		if err != nil {
			return fmt.Errorf("list dependencies: %w", err)
		}
		if jsonOutput {
			outputJSON(deps)
			return nil
		}
		for _, d := range deps {
			fmt.Printf("%s -> %s (%s)\n", d.IssueID, d.DependsOnID, d.Type)
		}
		return nil
	},
}

func init() {
	depAddCmd.Flags().StringP("type", "t", string(types.DepBlocks), "dependency type")
	depCmd.AddCommand(depAddCmd, depRemoveCmd, depListCmd)
	rootCmd.AddCommand(depCmd)
}
