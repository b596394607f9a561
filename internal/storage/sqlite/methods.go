package sqlite

import (
	"context"

	"github.com/beadkeep/beads/internal/types"
)

// The methods below are thin dispatches onto the package-level query
// helpers: *Store runs them against s.db (the pool, capped at one open
// connection), *txStore runs them against the pinned connection handed
// to it by RunInTransaction. Keeping the logic in one place means a
// transactional caller and a standalone caller can never drift apart.

func (s *Store) CreateIssue(ctx context.Context, issue *types.Issue, actor string) error {
	return createIssue(ctx, s.db, issue, actor)
}
func (s *Store) GetIssue(ctx context.Context, id string) (*types.Issue, error) {
	return getIssue(ctx, s.db, id)
}
func (s *Store) UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error {
	return updateIssue(ctx, s.db, id, updates, actor)
}
func (s *Store) CloseIssue(ctx context.Context, id, reason, actor string) error {
	return closeIssue(ctx, s.db, id, reason, actor)
}
func (s *Store) ReopenIssue(ctx context.Context, id, actor string) error {
	return reopenIssue(ctx, s.db, id, actor)
}
func (s *Store) DeleteIssue(ctx context.Context, id string) error {
	return deleteIssue(ctx, s.db, id)
}
func (s *Store) IssueExists(ctx context.Context, id string) (bool, error) {
	return issueExists(ctx, s.db, id)
}
func (s *Store) ResolveID(ctx context.Context, partial string) (string, error) {
	return resolveID(ctx, s.db, partial)
}

func (s *Store) ListIssues(ctx context.Context, filter types.IssueFilter) ([]*types.Issue, error) {
	return listIssuesQuery(ctx, s.db, filter)
}
func (s *Store) SearchIssues(ctx context.Context, text string, filter types.IssueFilter) ([]*types.Issue, error) {
	return searchIssuesQuery(ctx, s.db, text, filter)
}

func (s *Store) GetReadyWork(ctx context.Context, filter types.WorkFilter) ([]*types.Issue, error) {
	return getReadyWork(ctx, s.db, filter)
}
func (s *Store) GetBlockedIssues(ctx context.Context, filter types.WorkFilter) ([]*types.BlockedIssue, error) {
	return getBlockedIssues(ctx, s.db, filter)
}
func (s *Store) HasCycle(ctx context.Context, a, b string) (bool, error) {
	return hasCycle(ctx, s.db, a, b)
}

func (s *Store) AddDependency(ctx context.Context, dep *types.Dependency, actor string) error {
	return addDependency(ctx, s.db, dep, actor)
}
func (s *Store) RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error {
	return removeDependency(ctx, s.db, issueID, dependsOnID, actor)
}
func (s *Store) GetDependencyRecords(ctx context.Context, issueID string) ([]*types.Dependency, error) {
	return getDependencyRecords(ctx, s.db, issueID)
}

func (s *Store) AddLabel(ctx context.Context, issueID, label, actor string) error {
	return addLabel(ctx, s.db, issueID, label, actor)
}
func (s *Store) RemoveLabel(ctx context.Context, issueID, label, actor string) error {
	return removeLabel(ctx, s.db, issueID, label, actor)
}
func (s *Store) GetLabels(ctx context.Context, issueID string) ([]string, error) {
	return getLabels(ctx, s.db, issueID)
}

func (s *Store) AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error) {
	return addComment(ctx, s.db, issueID, author, text)
}
func (s *Store) GetComments(ctx context.Context, issueID string) ([]*types.Comment, error) {
	return getComments(ctx, s.db, issueID)
}

func (s *Store) GetEvents(ctx context.Context, issueID string, limit int) ([]*types.Event, error) {
	return getEvents(ctx, s.db, issueID, limit)
}

func (s *Store) GetStatistics(ctx context.Context) (*types.Statistics, error) {
	return getStatistics(ctx, s.db)
}

func (s *Store) MarkDirty(ctx context.Context, id string) error { return markDirty(ctx, s.db, id) }
func (s *Store) GetDirtyIssues(ctx context.Context) ([]string, error) {
	return getDirtyIssues(ctx, s.db)
}
func (s *Store) ClearDirty(ctx context.Context, ids []string) error {
	return clearDirty(ctx, s.db, ids)
}

func (s *Store) GetExportHash(ctx context.Context, issueID string) (string, error) {
	return getExportHash(ctx, s.db, issueID)
}
func (s *Store) SetExportHash(ctx context.Context, issueID, contentHash string) error {
	return setExportHash(ctx, s.db, issueID, contentHash)
}
func (s *Store) ClearAllExportHashes(ctx context.Context) error {
	return clearAllExportHashes(ctx, s.db)
}

func (s *Store) NextChildNumber(ctx context.Context, parentID string) (int, error) {
	return nextChildNumber(ctx, s.db, parentID)
}

func (s *Store) SetConfig(ctx context.Context, key, value string) error {
	return setConfig(ctx, s.db, key, value)
}
func (s *Store) GetConfig(ctx context.Context, key string) (string, error) {
	return getConfig(ctx, s.db, key)
}
func (s *Store) GetAllConfig(ctx context.Context) (map[string]string, error) {
	return getAllConfig(ctx, s.db)
}
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	return setMetadata(ctx, s.db, key, value)
}
func (s *Store) GetMetadata(ctx context.Context, key string) (string, error) {
	return getMetadata(ctx, s.db, key)
}

// txStore: the Transaction subset, run against the pinned connection.

func (t *txStore) CreateIssue(ctx context.Context, issue *types.Issue, actor string) error {
	return createIssue(ctx, t.exec, issue, actor)
}
func (t *txStore) UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error {
	return updateIssue(ctx, t.exec, id, updates, actor)
}
func (t *txStore) CloseIssue(ctx context.Context, id, reason, actor string) error {
	return closeIssue(ctx, t.exec, id, reason, actor)
}
func (t *txStore) ReopenIssue(ctx context.Context, id, actor string) error {
	return reopenIssue(ctx, t.exec, id, actor)
}
func (t *txStore) DeleteIssue(ctx context.Context, id string) error {
	return deleteIssue(ctx, t.exec, id)
}
func (t *txStore) GetIssue(ctx context.Context, id string) (*types.Issue, error) {
	return getIssue(ctx, t.exec, id)
}

func (t *txStore) AddDependency(ctx context.Context, dep *types.Dependency, actor string) error {
	return addDependency(ctx, t.exec, dep, actor)
}
func (t *txStore) RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error {
	return removeDependency(ctx, t.exec, issueID, dependsOnID, actor)
}

func (t *txStore) AddLabel(ctx context.Context, issueID, label, actor string) error {
	return addLabel(ctx, t.exec, issueID, label, actor)
}
func (t *txStore) RemoveLabel(ctx context.Context, issueID, label, actor string) error {
	return removeLabel(ctx, t.exec, issueID, label, actor)
}

func (t *txStore) AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error) {
	return addComment(ctx, t.exec, issueID, author, text)
}

func (t *txStore) SetConfig(ctx context.Context, key, value string) error {
	return setConfig(ctx, t.exec, key, value)
}
func (t *txStore) GetConfig(ctx context.Context, key string) (string, error) {
	return getConfig(ctx, t.exec, key)
}
func (t *txStore) SetMetadata(ctx context.Context, key, value string) error {
	return setMetadata(ctx, t.exec, key, value)
}
func (t *txStore) GetMetadata(ctx context.Context, key string) (string, error) {
	return getMetadata(ctx, t.exec, key)
}
