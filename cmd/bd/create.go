package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadkeep/beads/internal/idgen"
	"github.com/beadkeep/beads/internal/types"
	"github.com/beadkeep/beads/internal/ui"
	"github.com/beadkeep/beads/internal/validation"
)

var createCmd = &cobra.Command{
	Use:     "create [title]",
	GroupID: "issues",
	Short:   "Create a new issue",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		priorityStr, _ := flags.GetString("priority")
		typeStr, _ := flags.GetString("type")
		description, _ := flags.GetString("description")
		design, _ := flags.GetString("design")
		acceptance, _ := flags.GetString("acceptance")
		assignee, _ := flags.GetString("assignee")
		parentID, _ := flags.GetString("parent")
		labels, _ := flags.GetStringSlice("label")
		estimate, _ := flags.GetInt("estimate")
		prefix, _ := flags.GetString("prefix")
		dueStr, _ := flags.GetString("due")
		externalRef, _ := flags.GetString("external-ref")
		deps, _ := flags.GetStringSlice("dep")

		var title string
		if len(args) == 1 {
			title = args[0]
		}

		if title == "" && ui.IsTerminal() {
			in := &ui.CreateFormInput{
				Title:       title,
				Description: description,
				IssueType:   typeStr,
				Priority:    priorityStr,
				Assignee:    assignee,
				Labels:      strings.Join(labels, ","),
				Design:      design,
				Acceptance:  acceptance,
				ExternalRef: externalRef,
				Deps:        strings.Join(deps, ","),
			}
			if _, err := ui.CreateIssueForm(in); err != nil {
				return fmt.Errorf("interactive form: %w", err)
			}
			if !in.Confirm {
				return fmt.Errorf("aborted")
			}
			fv := ui.ParseCreateFormInput(in)
			title = fv.Title
			description = fv.Description
			typeStr = fv.IssueType
			priorityStr = strconv.Itoa(fv.Priority)
			assignee = fv.Assignee
			labels = fv.Labels
			design = fv.Design
			acceptance = fv.Acceptance
			externalRef = fv.ExternalRef
			deps = fv.Deps
		}
		if title == "" {
			return fmt.Errorf("title is required (pass it as an argument, or run interactively from a terminal)")
		}
		args = []string{title}

		priority, err := validation.ValidatePriority(priorityStr)
		if err != nil {
			return err
		}
		issueType, err := validation.ParseIssueType(typeStr)
		if err != nil {
			return err
		}

		if prefix == "" {
			prefix = configuredPrefix()
		}

		createdAt := time.Now().UTC()

		var id string
		if parentID != "" {
			full, err := resolveIssue(parentID)
			if err != nil {
				return err
			}
			if err := idgen.CheckHierarchyDepth(full); err != nil {
				return err
			}
			n, err := store.NextChildNumber(rootCtx, full)
			if err != nil {
				return fmt.Errorf("allocate child number: %w", err)
			}
			id = idgen.ChildID(full, n)
		} else {
			exists := func(candidate string) (bool, error) {
				return store.IssueExists(rootCtx, candidate)
			}
			id, err = idgen.GenerateHashID(prefix, args[0], description, createdAt, dbPath, exists)
			if err != nil {
				return fmt.Errorf("generate id: %w", err)
			}
		}

		due, err := parseTimeFlag(dueStr)
		if err != nil {
			return err
		}

		var estPtr *int
		if cmd.Flags().Changed("estimate") {
			estPtr = &estimate
		}

		var externalRefPtr *string
		if externalRef != "" {
			externalRefPtr = &externalRef
		}

		issue := &types.Issue{
			ID:                 id,
			Title:              args[0],
			Description:        description,
			Design:             design,
			AcceptanceCriteria: acceptance,
			Status:             types.StatusOpen,
			Priority:           priority,
			IssueType:          issueType,
			Assignee:           assignee,
			EstimatedMinutes:   estPtr,
			CreatedAt:          createdAt,
			CreatedBy:          actor,
			UpdatedAt:          createdAt,
			DueAt:              due,
			Labels:             labels,
			ExternalRef:        externalRefPtr,
		}

		if err := store.CreateIssue(rootCtx, issue, actor); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}

		if parentID != "" {
			full, _ := resolveIssue(parentID)
			dep := &types.Dependency{IssueID: id, DependsOnID: full, Type: types.DepParentChild}
			if err := store.AddDependency(rootCtx, dep, actor); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to link parent: %v\n", err)
			}
		}

		for _, spec := range deps {
			depType := types.DepBlocks
			depID := spec
			if idx := strings.Index(spec, ":"); idx >= 0 {
				depType = types.DependencyType(spec[:idx])
				depID = spec[idx+1:]
			}
			if !depType.IsValid() {
				fmt.Fprintf(os.Stderr, "Warning: skipping dependency %q: unknown type %q\n", spec, depType)
				continue
			}
			full, err := resolveIssue(depID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping dependency %q: %v\n", spec, err)
				continue
			}
			dep := &types.Dependency{IssueID: id, DependsOnID: full, Type: depType}
			if err := store.AddDependency(rootCtx, dep, actor); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to add dependency %q: %v\n", spec, err)
			}
		}

		markDirtyAndScheduleFlush()

		if jsonOutput {
			outputJSON(issue)
			return nil
		}
		fmt.Printf("%s Created %s: %s\n", ui.RenderPass("+"), issue.ID, issue.Title)
		return nil
	},
}

func configuredPrefix() string {
	if p := os.Getenv("BD_ISSUE_PREFIX"); p != "" {
		return p
	}
	return "bd"
}

func resolveIssue(partial string) (string, error) {
	full, err := store.ResolveID(rootCtx, partial)
	if err != nil {
		return "", err
	}
	if full == "" {
		return "", fmt.Errorf("no issue matches %q", partial)
	}
	return full, nil
}

func init() {
	createCmd.Flags().StringP("priority", "p", "2", "priority: 0-4 or P0-P4")
	createCmd.Flags().StringP("type", "t", "task", "issue type: bug, feature, task, epic, chore, event")
	createCmd.Flags().StringP("description", "d", "", "long-form description")
	createCmd.Flags().String("design", "", "design notes")
	createCmd.Flags().String("acceptance", "", "acceptance criteria")
	createCmd.Flags().StringP("assignee", "a", "", "assignee")
	createCmd.Flags().String("parent", "", "parent issue id (creates a hierarchical child id)")
	createCmd.Flags().StringSlice("label", nil, "labels to attach (repeatable)")
	createCmd.Flags().Int("estimate", 0, "estimated minutes")
	createCmd.Flags().String("prefix", "", "id prefix override")
	createCmd.Flags().String("due", "", "due date (RFC3339, YYYY-MM-DD, or a phrase like \"tomorrow\")")
	createCmd.Flags().String("external-ref", "", "external tracker reference (url or ticket id)")
	createCmd.Flags().StringSlice("dep", nil, "dependency on another issue, \"type:id\" or bare id (defaults to blocks), repeatable")
	rootCmd.AddCommand(createCmd)
}
