package types

import (
	"encoding/json"
	"fmt"
)

// Validate checks the invariants from the data model: title length,
// priority range, the status/closed_at and status/deleted_at
// biconditionals, metadata well-formedness, and estimated_minutes sign.
func (i *Issue) Validate() error {
	if len(i.Title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(i.Title) > 500 {
		return fmt.Errorf("title exceeds 500 characters (got %d)", len(i.Title))
	}
	if i.Priority < 0 || i.Priority > 4 {
		return fmt.Errorf("priority must be between 0 and 4 (got %d)", i.Priority)
	}
	if i.EstimatedMinutes != nil && *i.EstimatedMinutes < 0 {
		return fmt.Errorf("estimated_minutes must be non-negative (got %d)", *i.EstimatedMinutes)
	}
	if (i.Status == StatusClosed) != (i.ClosedAt != nil) {
		return fmt.Errorf("status=closed must coincide with closed_at being set")
	}
	if (i.Status == StatusTombstone) != (i.DeletedAt != nil) {
		return fmt.Errorf("status=tombstone must coincide with deleted_at being set")
	}
	if i.Metadata != "" && i.Metadata != "{}" {
		var v any
		if err := json.Unmarshal([]byte(i.Metadata), &v); err != nil {
			return fmt.Errorf("metadata is not valid JSON: %w", err)
		}
	}
	return nil
}
