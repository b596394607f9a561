// Package types defines the core data model shared by the store, the
// importer/exporter, and the command surface.
package types

import "time"

// Status is the workflow state of an issue.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusDeferred   Status = "deferred"
	StatusClosed     Status = "closed"
	StatusTombstone  Status = "tombstone"
	StatusPinned     Status = "pinned"
	StatusHooked     Status = "hooked"
)

// IssueType classifies the kind of work item.
type IssueType string

const (
	TypeBug     IssueType = "bug"
	TypeFeature IssueType = "feature"
	TypeTask    IssueType = "task"
	TypeEpic    IssueType = "epic"
	TypeChore   IssueType = "chore"
	// TypeEvent is reserved for issues carrying the event extension fields
	// (event_kind/actor/target/payload) rather than ordinary work.
	TypeEvent IssueType = "event"
)

// validIssueTypes backs IsValid; kept separate from the const block so
// adding a type only requires one new line here.
var validIssueTypes = map[IssueType]bool{
	TypeBug:     true,
	TypeFeature: true,
	TypeTask:    true,
	TypeEpic:    true,
	TypeChore:   true,
	TypeEvent:   true,
}

// IsValid reports whether t is one of the known issue types.
func (t IssueType) IsValid() bool {
	return validIssueTypes[t]
}

// RequiredSection describes a recommended markdown section for an issue
// type's description, used by template linting.
type RequiredSection struct {
	Heading string
	Hint    string
}

// RequiredSections returns the recommended sections for t, or nil for
// types with no specific requirements.
func (t IssueType) RequiredSections() []RequiredSection {
	switch t {
	case TypeBug:
		return []RequiredSection{
			{Heading: "## Steps to Reproduce", Hint: "Describe how to reproduce the bug"},
			{Heading: "## Acceptance Criteria", Hint: "Define criteria to verify the fix"},
		}
	case TypeTask, TypeFeature:
		return []RequiredSection{
			{Heading: "## Acceptance Criteria", Hint: "Define criteria to verify completion"},
		}
	case TypeEpic:
		return []RequiredSection{
			{Heading: "## Success Criteria", Hint: "Define high-level success criteria"},
		}
	default:
		return nil
	}
}

// DependencyType names the edge kind between two issues.
type DependencyType string

const (
	DepBlocks            DependencyType = "blocks"
	DepParentChild       DependencyType = "parent-child"
	DepConditionalBlocks DependencyType = "conditional-blocks"
	DepWaitsFor          DependencyType = "waits-for"
	DepRelated           DependencyType = "related"
	DepDuplicates        DependencyType = "duplicates"
	DepSupersedes        DependencyType = "supersedes"
	DepDiscoveredFrom    DependencyType = "discovered-from"
)

// BlockingTypes is the subset of edge types that participate in the
// ready-work computation and the blocked-work view.
var BlockingTypes = map[DependencyType]bool{
	DepBlocks:            true,
	DepParentChild:       true,
	DepConditionalBlocks: true,
	DepWaitsFor:          true,
}

// IsBlocking reports whether t is one of the blocking-types subset.
func (t DependencyType) IsBlocking() bool {
	return BlockingTypes[t]
}

// validDependencyTypes backs IsValid; the blocking subset is only part of
// the full set of edge kinds an issue can carry.
var validDependencyTypes = map[DependencyType]bool{
	DepBlocks:            true,
	DepParentChild:       true,
	DepConditionalBlocks: true,
	DepWaitsFor:          true,
	DepRelated:           true,
	DepDuplicates:        true,
	DepSupersedes:        true,
	DepDiscoveredFrom:    true,
}

// IsValid reports whether t is one of the known dependency types.
func (t DependencyType) IsValid() bool {
	return validDependencyTypes[t]
}

// unresolvedBlockerStatuses is the set of blocker statuses that keep a dependent
// issue from being ready (i.e. the blocker is not yet resolved).
var unresolvedBlockerStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusBlocked:    true,
	StatusDeferred:   true,
	StatusHooked:     true,
}

// IsUnresolved reports whether a blocker at this status still blocks a
// dependent issue from being ready.
func (s Status) IsUnresolved() bool {
	return unresolvedBlockerStatuses[s]
}

// EventType names the kind of local audit event recorded for a mutation.
type EventType string

const (
	EventCreated           EventType = "created"
	EventUpdated           EventType = "updated"
	EventStatusChanged     EventType = "status_changed"
	EventCommented         EventType = "commented"
	EventClosed            EventType = "closed"
	EventReopened          EventType = "reopened"
	EventDependencyAdded   EventType = "dependency_added"
	EventDependencyRemoved EventType = "dependency_removed"
	EventLabelAdded        EventType = "label_added"
	EventLabelRemoved      EventType = "label_removed"
	EventCompacted         EventType = "compacted"
)

// EntityRef names an actor (human, agent, or org) in the extension fields.
// Carried opaquely: the core never interprets it beyond hashing and
// round-tripping it through the log.
type EntityRef struct {
	Name     string `json:"name,omitempty"`
	Platform string `json:"platform,omitempty"`
	Org      string `json:"org,omitempty"`
	ID       string `json:"id,omitempty"`
}

// BondRef records one constituent of a bonded/compound issue.
type BondRef struct {
	SourceID  string `json:"source_id,omitempty"`
	BondType  string `json:"bond_type,omitempty"`
	BondPoint string `json:"bond_point,omitempty"`
}

// Validation records one reviewer's sign-off on an issue's content.
type Validation struct {
	Validator *EntityRef `json:"validator,omitempty"`
	Outcome   string     `json:"outcome,omitempty"`
	Timestamp time.Time  `json:"timestamp,omitempty"`
	Score     *float32   `json:"score,omitempty"`
}

// Issue is the primary tracked record. Fields are grouped to mirror the
// spec's own grouping; the extension-field block (bonded/HOP/gate/slot/
// agent/molecule/event) is carried opaquely by the core: it participates
// in the content hash and the wire format but is never interpreted here.
type Issue struct {
	// Identity
	ID          string `json:"id"`
	ContentHash string `json:"-"`

	// Content
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	Design             string `json:"design,omitempty"`
	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
	Notes              string `json:"notes,omitempty"`
	SpecID             string `json:"spec_id,omitempty"`

	// Workflow
	Status    Status    `json:"status,omitempty"`
	Priority  int       `json:"priority"` // no omitempty: 0 (P0) is a real value
	IssueType IssueType `json:"issue_type,omitempty"`

	// Assignment
	Assignee         string `json:"assignee,omitempty"`
	Owner            string `json:"owner,omitempty"`
	EstimatedMinutes *int   `json:"estimated_minutes,omitempty"`

	// Timestamps
	CreatedAt       time.Time  `json:"created_at"`
	CreatedBy       string     `json:"created_by,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	CloseReason     string     `json:"close_reason,omitempty"`
	ClosedBySession string     `json:"closed_by_session,omitempty"`
	DueAt           *time.Time `json:"due_at,omitempty"`
	DeferUntil      *time.Time `json:"defer_until,omitempty"`
	LastActivity    *time.Time `json:"last_activity,omitempty"`

	// External integration
	ExternalRef  *string `json:"external_ref,omitempty"`
	SourceSystem string  `json:"source_system,omitempty"`

	// Free-form metadata, validated JSON if non-empty (see Validate).
	Metadata string `json:"metadata,omitempty"`

	// Flags
	Pinned       bool `json:"pinned,omitempty"`
	IsTemplate   bool `json:"is_template,omitempty"`
	Ephemeral    bool `json:"ephemeral,omitempty"`
	Crystallizes bool `json:"crystallizes,omitempty"`

	// Relational data, populated on read and round-tripped on export/import.
	Labels       []string      `json:"labels,omitempty"`
	Dependencies []*Dependency `json:"dependencies,omitempty"`
	Comments     []*Comment    `json:"comments,omitempty"`

	// Tombstone fields
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	DeletedBy    string     `json:"deleted_by,omitempty"`
	DeleteReason string     `json:"delete_reason,omitempty"`
	OriginalType string     `json:"original_type,omitempty"`

	// Extension fields: carried verbatim, content-hashed, never interpreted.
	BondedFrom   []BondRef    `json:"bonded_from,omitempty"`
	Creator      *EntityRef   `json:"creator,omitempty"`
	Validations  []Validation `json:"validations,omitempty"`
	QualityScore *float32     `json:"quality_score,omitempty"`

	AwaitType string        `json:"await_type,omitempty"`
	AwaitID   string        `json:"await_id,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty"`
	Waiters   []string      `json:"waiters,omitempty"`

	Holder string `json:"holder,omitempty"`

	HookBead   string `json:"hook_bead,omitempty"`
	RoleBead   string `json:"role_bead,omitempty"`
	AgentState string `json:"agent_state,omitempty"`
	RoleType   string `json:"role_type,omitempty"`
	Rig        string `json:"rig,omitempty"`

	MolType  string `json:"mol_type,omitempty"`
	WorkType string `json:"work_type,omitempty"`

	EventKind string `json:"event_kind,omitempty"`
	Actor     string `json:"actor,omitempty"`
	Target    string `json:"target,omitempty"`
	Payload   string `json:"payload,omitempty"`
}

// Dependency is one outgoing edge from Issue.ID to DependsOnID.
type Dependency struct {
	IssueID     string         `json:"issue_id"`
	DependsOnID string         `json:"depends_on_id"`
	Type        DependencyType `json:"type"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty"`
	Metadata    string         `json:"metadata,omitempty"`
	ThreadID    string         `json:"thread_id,omitempty"`
}

// Comment is one entry in an issue's discussion, ordered by CreatedAt.
type Comment struct {
	ID        int64     `json:"id,omitempty"`
	IssueID   string    `json:"-"`
	Author    string    `json:"author,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Event is an append-only local audit record. Never exported to the log.
type Event struct {
	ID        int64     `json:"id"`
	IssueID   string    `json:"issue_id"`
	EventType EventType `json:"event_type"`
	Actor     string    `json:"actor,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BlockedIssue pairs an issue with the ids of its unmet blockers.
type BlockedIssue struct {
	Issue      *Issue   `json:"issue"`
	BlockedBy  []string `json:"blocked_by"`
}

// Statistics aggregates store-wide counts.
type Statistics struct {
	Total      int            `json:"total"`
	Tombstones int            `json:"tombstones"`
	Ready      int            `json:"ready"`
	ByStatus   map[Status]int `json:"by_status"`
	ByType     map[IssueType]int `json:"by_type"`
	ByPriority map[int]int    `json:"by_priority"`
}

// SortKey names a field that list_issues can sort by.
type SortKey string

const (
	SortByCreated  SortKey = "created"
	SortByUpdated  SortKey = "updated"
	SortByPriority SortKey = "priority"
	SortByStatus   SortKey = "status"
	SortByTitle    SortKey = "title"
	SortByID       SortKey = "id"
	SortByType     SortKey = "type"
)

// IssueFilter carries AND-combined predicates for list/search queries.
type IssueFilter struct {
	Status           []Status
	ExcludeStatus    []Status
	Priority         *int
	PriorityMin      *int
	PriorityMax      *int
	Type             []IssueType
	ExcludeType      []IssueType
	Assignee         string
	NoAssignee       bool
	Labels           []string // AND
	LabelsAny        []string // OR
	Search           string
	IDs              []string
	IDPrefix         string
	ParentID         string
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
	UpdatedAfter     *time.Time
	UpdatedBefore    *time.Time
	Ephemeral        *bool
	Pinned           *bool
	IsTemplate       *bool
	Overdue          bool
	IncludeTombstone bool
	Limit            int
	SortBy           SortKey
	Reverse          bool
}

// WorkFilter narrows the ready-work query beyond its default rules.
type WorkFilter struct {
	Type       IssueType
	Priority   *int
	Assignee   string
	Unassigned bool
	Labels     []string
	Limit      int
}
