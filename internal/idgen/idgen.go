// Package idgen generates content-addressed issue identifiers and the
// hierarchical child-ID scheme layered on top of them.
package idgen

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// MaxHierarchyDepth bounds how many dotted segments a hierarchical ID may
// carry; adding a child past this depth is a policy error.
const MaxHierarchyDepth = 3

// MaxHashLength is the longest hex prefix the progressive collision
// resolver will grow to before giving up.
const MaxHashLength = 13

// minHashLength is the initial hex prefix length for a freshly minted ID.
const minHashLength = 6

// HashContent returns the full 64-char SHA256 hex digest over
// title, description, the RFC3339Nano creation timestamp, and the
// workspace id, concatenated with no separators. Callers take a prefix of
// this digest to form an ID; on collision the prefix is grown one
// character at a time up to MaxHashLength.
func HashContent(title, description string, created time.Time, workspaceID string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte(description))
	h.Write([]byte(created.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte(workspaceID))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// MakeID forms "{prefix}-{hash[:length]}". length is clamped to
// [minHashLength, MaxHashLength] and to len(hash).
func MakeID(prefix, hash string, length int) string {
	if length < minHashLength {
		length = minHashLength
	}
	if length > MaxHashLength {
		length = MaxHashLength
	}
	if length > len(hash) {
		length = len(hash)
	}
	return fmt.Sprintf("%s-%s", prefix, hash[:length])
}

// Exists reports whether a candidate ID is already taken; callers supply
// their own lookup (typically a store hit) since idgen has no storage
// dependency.
type Exists func(id string) (bool, error)

// GenerateHashID mints an ID by progressively growing the hash prefix
// until it finds one not already present, starting at 6 hex chars and
// growing to MaxHashLength. Returns an error if every length collides.
func GenerateHashID(prefix, title, description string, created time.Time, workspaceID string, exists Exists) (string, error) {
	hash := HashContent(title, description, created, workspaceID)
	for length := minHashLength; length <= MaxHashLength; length++ {
		candidate := MakeID(prefix, hash, length)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate unique id for prefix %q after growing hash to %d chars", prefix, MaxHashLength)
}

// ParseHierarchicalID splits a hierarchical ID into its root ID, immediate
// parent ID, and depth. A dotted segment whose suffix is not entirely
// digits breaks the hierarchy: the whole ID is then treated as flat
// (depth 0, no parent).
func ParseHierarchicalID(id string) (rootID, parentID string, depth int) {
	firstDot := -1
	lastDot := -1
	segStart := -1
	for i := 0; i < len(id); i++ {
		if id[i] == '.' {
			if firstDot == -1 {
				firstDot = i
			}
			if segStart != -1 && !allDigits(id[segStart:i]) {
				return id, "", 0
			}
			lastDot = i
			segStart = i + 1
			depth++
		}
	}
	if segStart != -1 && !allDigits(id[segStart:]) {
		return id, "", 0
	}
	if depth == 0 {
		return id, "", 0
	}
	return id[:firstDot], id[:lastDot], depth
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckHierarchyDepth reports an error if a parent already at the maximum
// depth is given another child.
func CheckHierarchyDepth(parentID string) error {
	depth := 0
	for i := 0; i < len(parentID); i++ {
		if parentID[i] == '.' {
			depth++
		}
	}
	if depth >= MaxHierarchyDepth {
		return fmt.Errorf("maximum hierarchy depth (%d) exceeded for parent %s", MaxHierarchyDepth, parentID)
	}
	return nil
}

// ChildID forms "{parent}.{n}" for the nth child (1-based) of parent.
func ChildID(parentID string, childNumber int) string {
	return fmt.Sprintf("%s.%d", parentID, childNumber)
}
