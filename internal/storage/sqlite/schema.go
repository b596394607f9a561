package sqlite

const schema = `
-- Issues table. Columns after acceptance_criteria/notes are the extension
-- fields: carried opaquely through import/export and folded into the
-- content hash, but never interpreted by the store itself.
CREATE TABLE IF NOT EXISTS issues (
    id TEXT PRIMARY KEY,
    content_hash TEXT,
    title TEXT NOT NULL CHECK(length(title) <= 500),
    description TEXT NOT NULL DEFAULT '',
    design TEXT NOT NULL DEFAULT '',
    acceptance_criteria TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    spec_id TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'open',
    priority INTEGER NOT NULL DEFAULT 2 CHECK(priority >= 0 AND priority <= 4),
    issue_type TEXT NOT NULL DEFAULT 'task',
    assignee TEXT NOT NULL DEFAULT '',
    owner TEXT NOT NULL DEFAULT '',
    estimated_minutes INTEGER,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    created_by TEXT NOT NULL DEFAULT '',
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    closed_at DATETIME,
    close_reason TEXT NOT NULL DEFAULT '',
    closed_by_session TEXT NOT NULL DEFAULT '',
    due_at DATETIME,
    defer_until DATETIME,
    deleted_at DATETIME,
    deleted_by TEXT NOT NULL DEFAULT '',
    delete_reason TEXT NOT NULL DEFAULT '',
    original_type TEXT NOT NULL DEFAULT '',
    external_ref TEXT,
    source_system TEXT NOT NULL DEFAULT '',
    metadata TEXT NOT NULL DEFAULT '',
    pinned INTEGER NOT NULL DEFAULT 0,
    is_template INTEGER NOT NULL DEFAULT 0,
    ephemeral INTEGER NOT NULL DEFAULT 0,
    crystallizes INTEGER NOT NULL DEFAULT 0,
    -- Extension fields (see content hash field order)
    bonded_from TEXT NOT NULL DEFAULT '',
    creator TEXT NOT NULL DEFAULT '',
    validations TEXT NOT NULL DEFAULT '',
    quality_score REAL,
    await_type TEXT NOT NULL DEFAULT '',
    await_id TEXT NOT NULL DEFAULT '',
    timeout_ns INTEGER NOT NULL DEFAULT 0,
    waiters TEXT NOT NULL DEFAULT '',
    holder TEXT NOT NULL DEFAULT '',
    hook_bead TEXT NOT NULL DEFAULT '',
    role_bead TEXT NOT NULL DEFAULT '',
    agent_state TEXT NOT NULL DEFAULT '',
    role_type TEXT NOT NULL DEFAULT '',
    rig TEXT NOT NULL DEFAULT '',
    mol_type TEXT NOT NULL DEFAULT '',
    work_type TEXT NOT NULL DEFAULT '',
    event_kind TEXT NOT NULL DEFAULT '',
    actor TEXT NOT NULL DEFAULT '',
    target TEXT NOT NULL DEFAULT '',
    payload TEXT NOT NULL DEFAULT '',
    CHECK (
        (status = 'closed' AND closed_at IS NOT NULL) OR
        (status = 'tombstone' AND deleted_at IS NOT NULL) OR
        (status NOT IN ('closed', 'tombstone'))
    )
);

CREATE INDEX IF NOT EXISTS idx_issues_status ON issues(status);
CREATE INDEX IF NOT EXISTS idx_issues_priority ON issues(priority);
CREATE INDEX IF NOT EXISTS idx_issues_assignee ON issues(assignee);
CREATE INDEX IF NOT EXISTS idx_issues_created_at ON issues(created_at);
CREATE INDEX IF NOT EXISTS idx_issues_external_ref ON issues(external_ref);

-- Dependency edge table. (issue_id, depends_on_id) is the primary key: at
-- most one edge per ordered pair. "type" drives both the blocking-types
-- subset used by ready-work and the cycle oracle, which walks all types.
CREATE TABLE IF NOT EXISTS dependencies (
    issue_id TEXT NOT NULL,
    depends_on_id TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT 'blocks',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    created_by TEXT NOT NULL DEFAULT '',
    metadata TEXT NOT NULL DEFAULT '{}',
    thread_id TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (issue_id, depends_on_id),
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE,
    FOREIGN KEY (depends_on_id) REFERENCES issues(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_dependencies_issue ON dependencies(issue_id);
CREATE INDEX IF NOT EXISTS idx_dependencies_depends_on ON dependencies(depends_on_id);
CREATE INDEX IF NOT EXISTS idx_dependencies_depends_on_type ON dependencies(depends_on_id, type);

-- Labels table
CREATE TABLE IF NOT EXISTS labels (
    issue_id TEXT NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (issue_id, label),
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_labels_label ON labels(label);

-- Comments, numbered monotonically per issue and ordered by created_at ascending.
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    issue_id TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    text TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_comments_issue ON comments(issue_id);
CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at);

-- Append-only local audit trail. Never exported to the log.
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    issue_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    actor TEXT NOT NULL DEFAULT '',
    old_value TEXT,
    new_value TEXT,
    comment TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_events_issue ON events(issue_id);
CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);

-- User-visible configuration (issue-prefix, etc).
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Internal bookkeeping (schema_version, last_import_mtime, db filename tag).
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Dirty set: issue ids changed since the last successful export.
CREATE TABLE IF NOT EXISTS dirty_issues (
    issue_id TEXT PRIMARY KEY,
    marked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_dirty_issues_marked_at ON dirty_issues(marked_at);

-- Last exported content_hash per issue, for a future incremental exporter.
CREATE TABLE IF NOT EXISTS export_hashes (
    issue_id TEXT PRIMARY KEY,
    content_hash TEXT NOT NULL,
    exported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
);

-- Per-parent monotonic counters for hierarchical child ids.
CREATE TABLE IF NOT EXISTS child_counters (
    parent_id TEXT PRIMARY KEY,
    last_child INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (parent_id) REFERENCES issues(id) ON DELETE CASCADE
);

-- Ready-work view: open, non-ephemeral, non-pinned, and with no outgoing
-- blocking edge to a blocker whose own status is still unresolved. This
-- is a single-hop check on the issue's own edges, not a transitive walk
-- through the parent-child hierarchy: a blocker's status fully
-- determines whether it blocks, regardless of what blocks the blocker in
-- turn. The Go-level GetReadyWork query applies the defer_until<=now
-- check and per-call filters on top of this view since SQLite has no
-- notion of "now" that is safely injectable without a bound parameter.
CREATE VIEW IF NOT EXISTS ready_issues AS
SELECT i.*
FROM issues i
WHERE i.status = 'open'
  AND i.ephemeral = 0
  AND i.pinned = 0
  AND NOT EXISTS (
    SELECT 1
    FROM dependencies d
    JOIN issues blocker ON d.depends_on_id = blocker.id
    WHERE d.issue_id = i.id
      AND d.type IN ('blocks', 'parent-child', 'conditional-blocks', 'waits-for')
      AND blocker.status IN ('open', 'in_progress', 'blocked', 'deferred', 'hooked')
  );

-- Blocked-work view: non-closed issues with at least one unmet blocking edge.
CREATE VIEW IF NOT EXISTS blocked_issues AS
SELECT
    i.*,
    COUNT(d.depends_on_id) as blocked_by_count
FROM issues i
JOIN dependencies d ON i.id = d.issue_id
JOIN issues blocker ON d.depends_on_id = blocker.id
WHERE i.status NOT IN ('closed', 'tombstone')
  AND d.type IN ('blocks', 'parent-child', 'conditional-blocks', 'waits-for')
  AND blocker.status IN ('open', 'in_progress', 'blocked', 'deferred', 'hooked')
GROUP BY i.id;
`
