// Package jsonl implements the shared text log's wire format: newline-
// delimited JSON, one Issue or deletion marker per line.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/beadkeep/beads/internal/types"
)

// DeletionMarker requests hard deletion of ID when encountered on import.
type DeletionMarker struct {
	ID      string `json:"id"`
	Deleted bool   `json:"_deleted"`
}

// Record is one decoded line: exactly one of Issue or Deletion is non-nil.
type Record struct {
	Issue    *types.Issue
	Deletion *DeletionMarker
}

// ParseWarning names a line skipped during decode.
type ParseWarning struct {
	Line    int
	Snippet string
	Err     error
}

func (w ParseWarning) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", w.Line, w.Err, w.Snippet)
}

// maxLineBytes bounds the scanner's line buffer; individual issues are
// small JSON objects, so a generous cap catches pathological input
// without risking an unbounded in-memory read.
const maxLineBytes = 8 * 1024 * 1024

// Decode reads every line of r, skipping blank lines, and returns the
// successfully parsed records plus a ParseWarning per malformed line (the
// caller decides whether those warnings are fatal or merely logged).
func Decode(r io.Reader) ([]Record, []ParseWarning, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []Record
	var warnings []ParseWarning
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := decodeLine(line)
		if err != nil {
			snippet := string(line)
			if len(snippet) > 80 {
				snippet = snippet[:80] + "..."
			}
			warnings = append(warnings, ParseWarning{Line: lineNo, Snippet: snippet, Err: err})
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, warnings, fmt.Errorf("scan jsonl: %w", err)
	}
	return records, warnings, nil
}

func decodeLine(line []byte) (Record, error) {
	var probe struct {
		Deleted bool `json:"_deleted"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return Record{}, err
	}
	if probe.Deleted {
		var marker DeletionMarker
		if err := json.Unmarshal(line, &marker); err != nil {
			return Record{}, err
		}
		return Record{Deletion: &marker}, nil
	}

	var issue types.Issue
	if err := json.Unmarshal(line, &issue); err != nil {
		return Record{}, err
	}
	if issue.Status == "" {
		issue.Status = types.StatusOpen
	}
	if issue.IssueType == "" {
		issue.IssueType = types.TypeTask
	}
	return Record{Issue: &issue}, nil
}

// EncodeIssue renders issue per the log's omit-empty rules: the same
// shape the content hash is computed over, since the Issue struct's JSON
// tags already drop empty strings/slices/maps and always keep priority.
func EncodeIssue(issue *types.Issue) ([]byte, error) {
	return json.Marshal(issue)
}

// EncodeDeletion renders a deletion marker line for id.
func EncodeDeletion(id string) ([]byte, error) {
	return json.Marshal(DeletionMarker{ID: id, Deleted: true})
}
