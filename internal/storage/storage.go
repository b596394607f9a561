// Package storage defines the interface for the indexed store (C3): typed
// CRUD over issues, dependency edges, labels, comments, and events; the
// dirty set; config/metadata key-value maps; and the derived ready-work,
// blocked-work, and cycle-oracle queries.
package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/beadkeep/beads/internal/types"
)

// ErrNotFound is returned when a lookup by exact or resolved id misses.
var ErrNotFound = errors.New("issue not found")

// ErrAmbiguousID is returned when a partial id prefix matches more than
// one issue.
var ErrAmbiguousID = errors.New("ambiguous issue id")

// ErrCycle is returned when adding a dependency edge would create a cycle.
var ErrCycle = errors.New("dependency would create a cycle")

// Transaction is the subset of Storage that runs inside a single
// transaction started by RunInTransaction: if the callback returns an
// error (or panics) every operation performed through it is rolled back.
type Transaction interface {
	CreateIssue(ctx context.Context, issue *types.Issue, actor string) error
	UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error
	CloseIssue(ctx context.Context, id, reason, actor string) error
	ReopenIssue(ctx context.Context, id, actor string) error
	DeleteIssue(ctx context.Context, id string) error
	GetIssue(ctx context.Context, id string) (*types.Issue, error)

	AddDependency(ctx context.Context, dep *types.Dependency, actor string) error
	RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error

	AddLabel(ctx context.Context, issueID, label, actor string) error
	RemoveLabel(ctx context.Context, issueID, label, actor string) error

	AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error)

	SetConfig(ctx context.Context, key, value string) error
	GetConfig(ctx context.Context, key string) (string, error)
	SetMetadata(ctx context.Context, key, value string) error
	GetMetadata(ctx context.Context, key string) (string, error)
}

// Storage is the indexed store's full surface.
type Storage interface {
	// Issues (C3 CRUD)
	CreateIssue(ctx context.Context, issue *types.Issue, actor string) error
	GetIssue(ctx context.Context, id string) (*types.Issue, error)
	UpdateIssue(ctx context.Context, id string, updates map[string]any, actor string) error
	CloseIssue(ctx context.Context, id, reason, actor string) error
	ReopenIssue(ctx context.Context, id, actor string) error
	DeleteIssue(ctx context.Context, id string) error
	IssueExists(ctx context.Context, id string) (bool, error)
	ResolveID(ctx context.Context, partial string) (string, error)

	// Queries
	ListIssues(ctx context.Context, filter types.IssueFilter) ([]*types.Issue, error)
	SearchIssues(ctx context.Context, text string, filter types.IssueFilter) ([]*types.Issue, error)

	// Ready/blocked work and cycle oracle
	GetReadyWork(ctx context.Context, filter types.WorkFilter) ([]*types.Issue, error)
	GetBlockedIssues(ctx context.Context, filter types.WorkFilter) ([]*types.BlockedIssue, error)
	HasCycle(ctx context.Context, a, b string) (bool, error)

	// Dependencies
	AddDependency(ctx context.Context, dep *types.Dependency, actor string) error
	RemoveDependency(ctx context.Context, issueID, dependsOnID, actor string) error
	GetDependencyRecords(ctx context.Context, issueID string) ([]*types.Dependency, error)

	// Labels
	AddLabel(ctx context.Context, issueID, label, actor string) error
	RemoveLabel(ctx context.Context, issueID, label, actor string) error
	GetLabels(ctx context.Context, issueID string) ([]string, error)

	// Comments
	AddComment(ctx context.Context, issueID, author, text string) (*types.Comment, error)
	GetComments(ctx context.Context, issueID string) ([]*types.Comment, error)

	// Events (local audit trail, never exported)
	GetEvents(ctx context.Context, issueID string, limit int) ([]*types.Event, error)

	// Statistics
	GetStatistics(ctx context.Context) (*types.Statistics, error)

	// Dirty set
	MarkDirty(ctx context.Context, id string) error
	GetDirtyIssues(ctx context.Context) ([]string, error)
	ClearDirty(ctx context.Context, ids []string) error

	// Export hash map
	GetExportHash(ctx context.Context, issueID string) (string, error)
	SetExportHash(ctx context.Context, issueID, contentHash string) error
	ClearAllExportHashes(ctx context.Context) error

	// Child counter
	NextChildNumber(ctx context.Context, parentID string) (int, error)

	// Config / metadata key-value maps
	SetConfig(ctx context.Context, key, value string) error
	GetConfig(ctx context.Context, key string) (string, error)
	GetAllConfig(ctx context.Context) (map[string]string, error)
	SetMetadata(ctx context.Context, key, value string) error
	GetMetadata(ctx context.Context, key string) (string, error)

	// RunInTransaction wraps fn in a single transaction, committing on a
	// nil return and rolling back otherwise (including on panic).
	RunInTransaction(ctx context.Context, fn func(tx Transaction) error) error

	Close() error
	Path() string
	UnderlyingDB() *sql.DB
}
