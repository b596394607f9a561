package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
)

func TestRunInTransaction_Commits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.RunInTransaction(ctx, func(tx storage.Transaction) error {
		return tx.CreateIssue(ctx, &types.Issue{ID: "bd-1", Title: "Task", Priority: 1, IssueType: types.TypeTask}, "alice")
	})
	if err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}

	got, err := store.GetIssue(ctx, "bd-1")
	if err != nil {
		t.Fatalf("GetIssue: %v", err)
	}
	if got.Title != "Task" {
		t.Errorf("GetIssue() = %+v", got)
	}
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.RunInTransaction(ctx, func(tx storage.Transaction) error {
		if err := tx.CreateIssue(ctx, &types.Issue{ID: "bd-1", Title: "Task", Priority: 1, IssueType: types.TypeTask}, "alice"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTransaction error = %v, want %v", err, boom)
	}

	_, err = store.GetIssue(ctx, "bd-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetIssue after rollback: err = %v, want ErrNotFound", err)
	}
}

func TestRunInTransaction_MultipleOperations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.RunInTransaction(ctx, func(tx storage.Transaction) error {
		if err := tx.CreateIssue(ctx, &types.Issue{ID: "bd-1", Title: "One", Priority: 1, IssueType: types.TypeTask}, "alice"); err != nil {
			return err
		}
		if err := tx.CreateIssue(ctx, &types.Issue{ID: "bd-2", Title: "Two", Priority: 1, IssueType: types.TypeTask}, "alice"); err != nil {
			return err
		}
		return tx.AddDependency(ctx, &types.Dependency{IssueID: "bd-2", DependsOnID: "bd-1", Type: types.DepBlocks}, "alice")
	})
	if err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}

	deps, err := store.GetDependencyRecords(ctx, "bd-2")
	if err != nil {
		t.Fatalf("GetDependencyRecords: %v", err)
	}
	if len(deps) != 1 {
		t.Errorf("GetDependencyRecords() = %+v, want 1 edge committed", deps)
	}
}
