package main

import (
	"testing"

	"github.com/beadkeep/beads/internal/types"
)

func TestCreateCmd_BasicIssue(t *testing.T) {
	newTestStore(t)

	createCmd.Flags().Set("priority", "1")
	createCmd.Flags().Set("type", "bug")
	t.Cleanup(func() {
		createCmd.Flags().Set("priority", "2")
		createCmd.Flags().Set("type", "task")
	})

	if err := createCmd.RunE(createCmd, []string{"Fix the thing"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	issues, err := store.ListIssues(rootCtx, types.IssueFilter{})
	if err != nil {
		t.Fatalf("list issues: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Title != "Fix the thing" {
		t.Errorf("expected title %q, got %q", "Fix the thing", issues[0].Title)
	}
	if issues[0].Priority != 1 {
		t.Errorf("expected priority 1, got %d", issues[0].Priority)
	}
	if issues[0].IssueType != types.TypeBug {
		t.Errorf("expected type bug, got %s", issues[0].IssueType)
	}
}

func TestCreateCmd_WithParentCreatesHierarchicalChild(t *testing.T) {
	newTestStore(t)

	createCmd.Flags().Set("priority", "2")
	createCmd.Flags().Set("type", "epic")
	if err := createCmd.RunE(createCmd, []string{"Parent epic"}); err != nil {
		t.Fatalf("create parent: %v", err)
	}
	issues, err := store.ListIssues(rootCtx, types.IssueFilter{})
	if err != nil {
		t.Fatalf("list issues: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 parent issue, got %d", len(issues))
	}
	parentID := issues[0].ID

	createCmd.Flags().Set("type", "task")
	createCmd.Flags().Set("parent", parentID)
	t.Cleanup(func() {
		createCmd.Flags().Set("priority", "2")
		createCmd.Flags().Set("type", "task")
		createCmd.Flags().Set("parent", "")
	})
	if err := createCmd.RunE(createCmd, []string{"Child task"}); err != nil {
		t.Fatalf("create child: %v", err)
	}

	all, err := store.ListIssues(rootCtx, types.IssueFilter{})
	if err != nil {
		t.Fatalf("list issues: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(all))
	}

	var child *types.Issue
	for _, i := range all {
		if i.ID != parentID {
			child = i
		}
	}
	if child == nil {
		t.Fatal("could not find child issue")
	}
	deps, err := store.GetDependencyRecords(rootCtx, child.ID)
	if err != nil {
		t.Fatalf("get dependency records: %v", err)
	}
	found := false
	for _, d := range deps {
		if d.DependsOnID == parentID && d.Type == types.DepParentChild {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a parent-child dependency on %s, got %+v", parentID, deps)
	}
}

func TestCreateCmd_RequiresTitleWhenNotInteractive(t *testing.T) {
	newTestStore(t)

	createCmd.Flags().Set("priority", "2")
	createCmd.Flags().Set("type", "task")
	if err := createCmd.RunE(createCmd, []string{}); err == nil {
		t.Fatal("expected an error when no title is given and stdin is not a terminal")
	}
}
