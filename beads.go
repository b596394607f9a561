// Package beads is the public, embeddable surface of the issue tracker:
// the indexed store and the core data model, for callers that want to
// script against a workspace's .beads/ directory directly rather than
// shelling out to the bd command.
package beads

import (
	"context"

	"github.com/beadkeep/beads/internal/project"
	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/storage/sqlite"
	"github.com/beadkeep/beads/internal/types"
)

// Storage is the indexed store's full surface: typed CRUD, ready/blocked
// work, the cycle oracle, and the dirty set and config/metadata maps that
// back the import/export engine.
type Storage = storage.Storage

// Transaction is the subset of Storage available inside Storage.RunInTransaction.
type Transaction = storage.Transaction

// NewSQLiteStorage opens (creating if absent) the SQLite-backed indexed
// store at dbPath. Pass ":memory:" for a disposable, unpersisted store.
func NewSQLiteStorage(ctx context.Context, dbPath string) (Storage, error) {
	return sqlite.Open(ctx, dbPath)
}

// FindBeadsDir locates the current workspace's .beads/ directory.
func FindBeadsDir() string { return project.FindBeadsDir() }

// FindDatabasePath resolves the indexed store's path for the current workspace.
func FindDatabasePath() string { return project.FindDatabasePath() }

// FindJSONLPath resolves the shared text log's path given a store path.
func FindJSONLPath(dbPath string) string { return project.FindJSONLPath(dbPath) }

// DatabaseInfo describes one workspace store discovered by FindAllDatabases.
type DatabaseInfo = project.DatabaseInfo

// FindAllDatabases walks up from the current directory collecting every
// .beads/ workspace it passes through, closest first.
func FindAllDatabases() []DatabaseInfo { return project.FindAllDatabases() }

// Sentinel errors surfaced by Storage operations.
var (
	ErrNotFound    = storage.ErrNotFound
	ErrAmbiguousID = storage.ErrAmbiguousID
	ErrCycle       = storage.ErrCycle
)

// Core types from internal/types.
type (
	Issue          = types.Issue
	Status         = types.Status
	IssueType      = types.IssueType
	Dependency     = types.Dependency
	DependencyType = types.DependencyType
	Comment        = types.Comment
	Event          = types.Event
	EventType      = types.EventType
	BlockedIssue   = types.BlockedIssue
	Statistics     = types.Statistics
	IssueFilter    = types.IssueFilter
	WorkFilter     = types.WorkFilter
	SortKey        = types.SortKey
)

// Status constants.
const (
	StatusOpen       = types.StatusOpen
	StatusInProgress = types.StatusInProgress
	StatusBlocked    = types.StatusBlocked
	StatusDeferred   = types.StatusDeferred
	StatusClosed     = types.StatusClosed
	StatusTombstone  = types.StatusTombstone
	StatusPinned     = types.StatusPinned
	StatusHooked     = types.StatusHooked
)

// IssueType constants.
const (
	TypeBug     = types.TypeBug
	TypeFeature = types.TypeFeature
	TypeTask    = types.TypeTask
	TypeEpic    = types.TypeEpic
	TypeChore   = types.TypeChore
	TypeEvent   = types.TypeEvent
)

// DependencyType constants.
const (
	DepBlocks            = types.DepBlocks
	DepParentChild       = types.DepParentChild
	DepConditionalBlocks = types.DepConditionalBlocks
	DepWaitsFor          = types.DepWaitsFor
	DepRelated           = types.DepRelated
	DepDuplicates        = types.DepDuplicates
	DepSupersedes        = types.DepSupersedes
	DepDiscoveredFrom    = types.DepDiscoveredFrom
)

// EventType constants.
const (
	EventCreated           = types.EventCreated
	EventUpdated           = types.EventUpdated
	EventStatusChanged     = types.EventStatusChanged
	EventCommented         = types.EventCommented
	EventClosed            = types.EventClosed
	EventReopened          = types.EventReopened
	EventDependencyAdded   = types.EventDependencyAdded
	EventDependencyRemoved = types.EventDependencyRemoved
	EventLabelAdded        = types.EventLabelAdded
	EventLabelRemoved      = types.EventLabelRemoved
	EventCompacted         = types.EventCompacted
)
