// Package importer reconciles a batch of decoded log records against the
// indexed store: content-hash/id tie-breaking, wisp auto-classification,
// tombstone guards, and deletion markers.
package importer

import (
	"context"
	"errors"
	"strings"

	"github.com/beadkeep/beads/internal/jsonl"
	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
)

// Tally counts what Import did with each incoming record.
type Tally struct {
	Created   int
	Updated   int
	Unchanged int
	Skipped   int
	Deleted   int
}

// Import reconciles records against store. Deletion markers are applied
// first, then every issue record is classified through the phases in
// order: intra-batch dedup, tombstone guard, content-hash match,
// id-match newer-wins, insert.
func Import(ctx context.Context, store storage.Storage, records []jsonl.Record) (Tally, error) {
	var tally Tally

	for _, rec := range records {
		if rec.Deletion == nil {
			continue
		}
		exists, err := store.IssueExists(ctx, rec.Deletion.ID)
		if err != nil {
			return tally, err
		}
		if !exists {
			continue
		}
		if err := store.DeleteIssue(ctx, rec.Deletion.ID); err != nil {
			return tally, err
		}
		tally.Deleted++
	}

	seenHashes := map[string]bool{}
	seenIDs := map[string]bool{}

	for _, rec := range records {
		if rec.Issue == nil {
			continue
		}
		issue := rec.Issue

		if strings.Contains(issue.ID, "-wisp-") {
			issue.Ephemeral = true
		}
		issue.ContentHash = issue.ComputeContentHash()

		if seenHashes[issue.ContentHash] || seenIDs[issue.ID] {
			tally.Skipped++
			continue
		}
		seenHashes[issue.ContentHash] = true
		seenIDs[issue.ID] = true

		existing, err := store.GetIssue(ctx, issue.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return tally, err
		}
		if existing != nil && existing.Status == types.StatusTombstone {
			tally.Skipped++
			continue
		}

		hashMatch, err := findByContentHash(ctx, store, issue.ContentHash)
		if err != nil {
			return tally, err
		}
		if hashMatch != nil {
			tally.Unchanged++
			continue
		}

		if existing != nil {
			if issue.UpdatedAt.After(existing.UpdatedAt) {
				if err := applyPatch(ctx, store, existing, issue); err != nil {
					return tally, err
				}
				tally.Updated++
			} else {
				tally.Unchanged++
			}
			continue
		}

		if err := store.CreateIssue(ctx, issue, issue.CreatedBy); err != nil {
			return tally, err
		}
		tally.Created++
	}

	return tally, nil
}

// findByContentHash scans for any stored issue whose content_hash equals
// hash. Storage exposes no direct hash lookup (it is not a queryable
// filter in IssueFilter — the hash is derived, not user-facing), so this
// walks the full issue set. Acceptable for the log sizes this store
// targets; a hash index could be added to Storage if that stopped being true.
func findByContentHash(ctx context.Context, store storage.Storage, hash string) (*types.Issue, error) {
	issues, err := store.ListIssues(ctx, types.IssueFilter{IncludeTombstone: true})
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		if issue.ContentHash == hash {
			return issue, nil
		}
	}
	return nil, nil
}

func applyPatch(ctx context.Context, store storage.Storage, existing, incoming *types.Issue) error {
	updates := map[string]any{
		"title":               incoming.Title,
		"description":         incoming.Description,
		"design":              incoming.Design,
		"acceptance_criteria": incoming.AcceptanceCriteria,
		"notes":               incoming.Notes,
		"status":              string(incoming.Status),
		"priority":            incoming.Priority,
		"issue_type":          string(incoming.IssueType),
		"assignee":            incoming.Assignee,
	}
	if incoming.ClosedAt != nil {
		updates["closed_at"] = incoming.ClosedAt
		updates["close_reason"] = incoming.CloseReason
	}
	updates["pinned"] = incoming.Pinned
	if incoming.ExternalRef != nil {
		updates["external_ref"] = *incoming.ExternalRef
	}
	return store.UpdateIssue(ctx, existing.ID, updates, incoming.CreatedBy)
}
