// Package storage tests for interface compliance: a minimal mock confirms
// the Storage and Transaction interfaces are implementable without a real
// database backing them.
package storage

import (
	"context"
	"database/sql"

	"github.com/beadkeep/beads/internal/types"
)

var (
	_ Storage     = (*mockStorage)(nil)
	_ Transaction = (*mockTransaction)(nil)
)

type mockStorage struct{}

func (m *mockStorage) CreateIssue(ctx context.Context, issue *types.Issue, actor string) error {
	return nil
}
func (m *mockStorage) GetIssue(ctx context.Context, id string) (*types.Issue, error) {
	return nil, nil
}
func (m *mockStorage) UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error {
	return nil
}
func (m *mockStorage) CloseIssue(ctx context.Context, id, reason, actor string) error { return nil }
func (m *mockStorage) ReopenIssue(ctx context.Context, id, actor string) error        { return nil }
func (m *mockStorage) DeleteIssue(ctx context.Context, id string) error               { return nil }
func (m *mockStorage) IssueExists(ctx context.Context, id string) (bool, error)       { return false, nil }
func (m *mockStorage) ResolveID(ctx context.Context, partial string) (string, error)  { return "", nil }

func (m *mockStorage) ListIssues(ctx context.Context, filter types.IssueFilter) ([]*types.Issue, error) {
	return nil, nil
}
func (m *mockStorage) SearchIssues(ctx context.Context, text string, filter types.IssueFilter) ([]*types.Issue, error) {
	return nil, nil
}

func (m *mockStorage) GetReadyWork(ctx context.Context, filter types.WorkFilter) ([]*types.Issue, error) {
	return nil, nil
}
func (m *mockStorage) GetBlockedIssues(ctx context.Context, filter types.WorkFilter) ([]*types.BlockedIssue, error) {
	return nil, nil
}
func (m *mockStorage) HasCycle(ctx context.Context, a, b string) (bool, error) { return false, nil }

func (m *mockStorage) AddDependency(ctx context.Context, dep *types.Dependency, actor string) error {
	return nil
}
func (m *mockStorage) RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error {
	return nil
}
func (m *mockStorage) GetDependencyRecords(ctx context.Context, issueID string) ([]*types.Dependency, error) {
	return nil, nil
}

func (m *mockStorage) AddLabel(ctx context.Context, issueID, label, actor string) error    { return nil }
func (m *mockStorage) RemoveLabel(ctx context.Context, issueID, label, actor string) error { return nil }
func (m *mockStorage) GetLabels(ctx context.Context, issueID string) ([]string, error)     { return nil, nil }

func (m *mockStorage) AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error) {
	return nil, nil
}
func (m *mockStorage) GetComments(ctx context.Context, issueID string) ([]*types.Comment, error) {
	return nil, nil
}

func (m *mockStorage) GetEvents(ctx context.Context, issueID string, limit int) ([]*types.Event, error) {
	return nil, nil
}

func (m *mockStorage) GetStatistics(ctx context.Context) (*types.Statistics, error) { return nil, nil }

func (m *mockStorage) MarkDirty(ctx context.Context, id string) error       { return nil }
func (m *mockStorage) GetDirtyIssues(ctx context.Context) ([]string, error) { return nil, nil }
func (m *mockStorage) ClearDirty(ctx context.Context, ids []string) error   { return nil }

func (m *mockStorage) GetExportHash(ctx context.Context, issueID string) (string, error) {
	return "", nil
}
func (m *mockStorage) SetExportHash(ctx context.Context, issueID, contentHash string) error {
	return nil
}
func (m *mockStorage) ClearAllExportHashes(ctx context.Context) error { return nil }

func (m *mockStorage) NextChildNumber(ctx context.Context, parentID string) (int, error) {
	return 1, nil
}

func (m *mockStorage) SetConfig(ctx context.Context, key, value string) error { return nil }
func (m *mockStorage) GetConfig(ctx context.Context, key string) (string, error) {
	return "", nil
}
func (m *mockStorage) GetAllConfig(ctx context.Context) (map[string]string, error) {
	return nil, nil
}
func (m *mockStorage) SetMetadata(ctx context.Context, key, value string) error { return nil }
func (m *mockStorage) GetMetadata(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (m *mockStorage) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) error {
	return fn(&mockTransaction{})
}

func (m *mockStorage) Close() error          { return nil }
func (m *mockStorage) Path() string          { return ":memory:" }
func (m *mockStorage) UnderlyingDB() *sql.DB { return nil }

type mockTransaction struct{}

func (m *mockTransaction) CreateIssue(ctx context.Context, issue *types.Issue, actor string) error {
	return nil
}
func (m *mockTransaction) UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error {
	return nil
}
func (m *mockTransaction) CloseIssue(ctx context.Context, id, reason, actor string) error { return nil }
func (m *mockTransaction) ReopenIssue(ctx context.Context, id, actor string) error        { return nil }
func (m *mockTransaction) DeleteIssue(ctx context.Context, id string) error               { return nil }
func (m *mockTransaction) GetIssue(ctx context.Context, id string) (*types.Issue, error) {
	return nil, nil
}

func (m *mockTransaction) AddDependency(ctx context.Context, dep *types.Dependency, actor string) error {
	return nil
}
func (m *mockTransaction) RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error {
	return nil
}

func (m *mockTransaction) AddLabel(ctx context.Context, issueID, label, actor string) error {
	return nil
}
func (m *mockTransaction) RemoveLabel(ctx context.Context, issueID, label, actor string) error {
	return nil
}

func (m *mockTransaction) AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error) {
	return nil, nil
}

func (m *mockTransaction) SetConfig(ctx context.Context, key, value string) error { return nil }
func (m *mockTransaction) GetConfig(ctx context.Context, key string) (string, error) {
	return "", nil
}
func (m *mockTransaction) SetMetadata(ctx context.Context, key, value string) error { return nil }
func (m *mockTransaction) GetMetadata(ctx context.Context, key string) (string, error) {
	return "", nil
}
