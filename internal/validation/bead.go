package validation

import (
	"fmt"
	"strings"

	"github.com/beadkeep/beads/internal/types"
)

// ParsePriority extracts and validates a priority value from content.
// Supports both numeric (0-4) and P-prefix format (P0-P4).
// Returns the parsed priority (0-4) or -1 if invalid.
func ParsePriority(content string) int {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(strings.ToUpper(content), "P") {
		content = content[1:]
	}

	var p int
	if _, err := fmt.Sscanf(content, "%d", &p); err == nil && p >= 0 && p <= 4 {
		return p
	}
	return -1
}

// ParseIssueType validates that content names a known issue type.
func ParseIssueType(content string) (types.IssueType, error) {
	issueType := types.IssueType(strings.TrimSpace(content))
	if !issueType.IsValid() {
		return types.TypeTask, fmt.Errorf("invalid issue type: %s", content)
	}
	return issueType, nil
}

// ValidatePriority parses and validates a priority string.
// Supports both numeric (0-4) and P-prefix format (P0-P4).
func ValidatePriority(priorityStr string) (int, error) {
	priority := ParsePriority(priorityStr)
	if priority == -1 {
		return -1, fmt.Errorf("invalid priority %q (expected 0-4 or P0-P4, not words like high/medium/low)", priorityStr)
	}
	return priority, nil
}

// ValidateIDFormat checks that id has the prefix-hash (or hierarchical
// prefix-hash.n) shape and returns the prefix part.
func ValidateIDFormat(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if !strings.Contains(id, "-") {
		return "", fmt.Errorf("invalid ID format '%s' (expected format: prefix-hash or prefix-hash.number, e.g., 'bd-a3f8e9' or 'bd-a3f8e9.1')", id)
	}
	hyphenIdx := strings.Index(id, "-")
	return id[:hyphenIdx], nil
}

// ValidatePrefix checks that the requested prefix matches the database's
// configured prefix, unless force is set.
func ValidatePrefix(requestedPrefix, dbPrefix string, force bool) error {
	return ValidatePrefixWithAllowed(requestedPrefix, dbPrefix, "", force)
}

// ValidatePrefixWithAllowed additionally accepts a comma-separated list of
// prefixes beyond the database's own, for workspaces that accept more
// than one project tag.
func ValidatePrefixWithAllowed(requestedPrefix, dbPrefix, allowedPrefixes string, force bool) error {
	if force || dbPrefix == "" || dbPrefix == requestedPrefix {
		return nil
	}

	if allowedPrefixes != "" {
		for _, allowed := range strings.Split(allowedPrefixes, ",") {
			if strings.TrimSpace(allowed) == requestedPrefix {
				return nil
			}
		}
		return fmt.Errorf("prefix mismatch: database uses '%s' (allowed: %s) but you specified '%s' (use --force to override)",
			dbPrefix, allowedPrefixes, requestedPrefix)
	}
	return fmt.Errorf("prefix mismatch: database uses '%s' but you specified '%s' (use --force to override)", dbPrefix, requestedPrefix)
}
