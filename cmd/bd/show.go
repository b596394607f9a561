package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	GroupID: "issues",
	Short:   "Show an issue's full detail",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveIssue(args[0])
		if err != nil {
			return err
		}
		issue, err := store.GetIssue(rootCtx, id)
		if err != nil {
			return fmt.Errorf("show %s: %w", id, err)
		}

		if jsonOutput {
			outputJSON(issue)
			return nil
		}

		fmt.Printf("%s %s\n", ui.RenderAccent(issue.ID), issue.Title)
		fmt.Printf("  status: %s   priority: P%d   type: %s\n", issue.Status, issue.Priority, issue.IssueType)
		if issue.Assignee != "" {
			fmt.Printf("  assignee: %s\n", issue.Assignee)
		}
		if issue.Description != "" {
			fmt.Printf("\n%s\n", ui.RenderMarkdown(issue.Description))
		}
		if issue.Design != "" {
			fmt.Printf("\ndesign:\n%s\n", ui.RenderMarkdown(issue.Design))
		}
		if issue.AcceptanceCriteria != "" {
			fmt.Printf("\nacceptance criteria:\n%s\n", ui.RenderMarkdown(issue.AcceptanceCriteria))
		}
		if len(issue.Labels) > 0 {
			fmt.Printf("\nlabels: %v\n", issue.Labels)
		}
		if len(issue.Dependencies) > 0 {
			fmt.Println("\ndependencies:")
			for _, d := range issue.Dependencies {
				fmt.Printf("  %s -> %s (%s)\n", d.IssueID, d.DependsOnID, d.Type)
			}
		}
		if len(issue.Comments) > 0 {
			fmt.Println("\ncomments:")
			for _, c := range issue.Comments {
				fmt.Printf("  [%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author, c.Text)
			}
		}
		fmt.Printf("\ncreated: %s   updated: %s\n", issue.CreatedAt.Format("2006-01-02 15:04"), issue.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	showCmd.ValidArgsFunction = issueIDCompletion
	rootCmd.AddCommand(showCmd)
}
