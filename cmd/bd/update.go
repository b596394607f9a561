package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/types"
	"github.com/beadkeep/beads/internal/ui"
	"github.com/beadkeep/beads/internal/validation"
)

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	GroupID: "issues",
	Short:   "Patch fields on an existing issue",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}

		updates := map[string]any{}
		flags := cmd.Flags()

		strField := func(flag, key string) error {
			if !flags.Changed(flag) {
				return nil
			}
			v, _ := flags.GetString(flag)
			updates[key] = v
			return nil
		}
		if err := strField("title", "title"); err != nil {
			return err
		}
		if err := strField("description", "description"); err != nil {
			return err
		}
		if err := strField("design", "design"); err != nil {
			return err
		}
		if err := strField("acceptance", "acceptance_criteria"); err != nil {
			return err
		}
		if err := strField("notes", "notes"); err != nil {
			return err
		}
		if err := strField("assignee", "assignee"); err != nil {
			return err
		}
		if err := strField("owner", "owner"); err != nil {
			return err
		}
		if err := strField("external-ref", "external_ref"); err != nil {
			return err
		}

		if flags.Changed("priority") {
			priorityStr, _ := flags.GetString("priority")
			priority, err := validation.ValidatePriority(priorityStr)
			if err != nil {
				return err
			}
			updates["priority"] = priority
		}
		if flags.Changed("type") {
			typeStr, _ := flags.GetString("type")
			issueType, err := validation.ParseIssueType(typeStr)
			if err != nil {
				return err
			}
			updates["issue_type"] = string(issueType)
		}
		if flags.Changed("status") {
			statusStr, _ := flags.GetString("status")
			status := types.Status(statusStr)
			switch status {
			case types.StatusOpen, types.StatusInProgress, types.StatusBlocked, types.StatusDeferred, types.StatusClosed:
			default:
				return fmt.Errorf("invalid status %q", statusStr)
			}
			updates["status"] = string(status)
		}
		if flags.Changed("estimate") {
			v, _ := flags.GetInt("estimate")
			updates["estimated_minutes"] = v
		}
		if flags.Changed("due") {
			v, _ := flags.GetString("due")
			t, err := parseTimeFlag(v)
			if err != nil {
				return err
			}
			updates["due_at"] = t
		}
		if flags.Changed("defer") {
			v, _ := flags.GetString("defer")
			t, err := parseTimeFlag(v)
			if err != nil {
				return err
			}
			updates["defer_until"] = t
		}
		if flags.Changed("pinned") {
			v, _ := flags.GetBool("pinned")
			updates["pinned"] = v
		}

		if len(updates) == 0 {
			return fmt.Errorf("no fields given to update")
		}

		if err := store.UpdateIssue(rootCtx, id, updates, actor); err != nil {
			return fmt.Errorf("update %s: %w", id, err)
		}
		markDirtyAndScheduleFlush()

		if jsonOutput {
			issue, _ := store.GetIssue(rootCtx, id)
			outputJSON(issue)
			return nil
		}
		fmt.Printf("%s Updated %s\n", ui.RenderAccent("~"), id)
		return nil
	},
}

func init() {
	updateCmd.Flags().String("title", "", "new title")
	updateCmd.Flags().StringP("description", "d", "", "new description")
	updateCmd.Flags().String("design", "", "new design notes")
	updateCmd.Flags().String("acceptance", "", "new acceptance criteria")
	updateCmd.Flags().String("notes", "", "new notes")
	updateCmd.Flags().StringP("assignee", "a", "", "new assignee")
	updateCmd.Flags().String("owner", "", "new owner")
	updateCmd.Flags().String("external-ref", "", "new external reference")
	updateCmd.Flags().StringP("priority", "p", "", "new priority: 0-4 or P0-P4")
	updateCmd.Flags().StringP("type", "t", "", "new issue type")
	updateCmd.Flags().StringP("status", "s", "", "new status: open, in_progress, blocked, deferred, closed")
	updateCmd.Flags().Int("estimate", 0, "new estimated minutes")
	updateCmd.Flags().String("due", "", "new due date (RFC3339, YYYY-MM-DD, or a phrase like \"tomorrow\")")
	updateCmd.Flags().String("defer", "", "new defer-until date (RFC3339, YYYY-MM-DD, or a phrase like \"tomorrow\")")
	updateCmd.Flags().Bool("pinned", false, "set pinned flag")
	updateCmd.ValidArgsFunction = issueIDCompletion
	rootCmd.AddCommand(updateCmd)
}
