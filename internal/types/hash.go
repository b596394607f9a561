package types

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"time"
)

// hashWriter writes the null-tagged field stream consumed by
// ComputeContentHash. Each write primitive mirrors one of the writer
// primitives named by the canonical hash format: a value (or nothing, for
// an absent optional) followed by a single 0x00 separator.
type hashWriter struct {
	h hash.Hash
}

func (w hashWriter) str(s string) {
	w.h.Write([]byte(s))
	w.h.Write([]byte{0})
}

func (w hashWriter) strOptional(s *string) {
	if s != nil {
		w.h.Write([]byte(*s))
	}
	w.h.Write([]byte{0})
}

func (w hashWriter) int(n int) {
	w.h.Write([]byte(fmt.Sprintf("%d", n)))
	w.h.Write([]byte{0})
}

func (w hashWriter) flag(b bool, label string) {
	if b {
		w.h.Write([]byte(label))
	}
	w.h.Write([]byte{0})
}

func (w hashWriter) floatOptional(f *float32) {
	if f != nil {
		w.h.Write([]byte(fmt.Sprintf("%f", *f)))
	}
	w.h.Write([]byte{0})
}

func (w hashWriter) duration(d time.Duration) {
	w.h.Write([]byte(fmt.Sprintf("%d", int64(d))))
	w.h.Write([]byte{0})
}

func (w hashWriter) entityRef(e *EntityRef) {
	if e == nil {
		return
	}
	w.str(e.Name)
	w.str(e.Platform)
	w.str(e.Org)
	w.str(e.ID)
}

// ComputeContentHash reproduces the canonical field-ordered, null-tagged
// SHA-256 digest. The field order and the writer used for each field is a
// wire-compatibility contract: changing it would make a reimplementation
// unable to recognize content written by any other conforming tool.
func (i *Issue) ComputeContentHash() string {
	h := sha256.New()
	w := hashWriter{h}

	w.str(i.Title)
	w.str(i.Description)
	w.str(i.Design)
	w.str(i.AcceptanceCriteria)
	w.str(i.Notes)
	w.str(i.SpecID)
	w.str(string(i.Status))
	w.int(i.Priority)
	w.str(string(i.IssueType))
	w.str(i.Assignee)
	w.str(i.Owner)
	w.str(i.CreatedBy)
	w.strOptional(i.ExternalRef)
	w.str(i.SourceSystem)
	w.flag(i.Pinned, "pinned")
	w.str(i.Metadata)
	w.flag(i.IsTemplate, "template")

	for _, br := range i.BondedFrom {
		w.str(br.SourceID)
		w.str(br.BondType)
		w.str(br.BondPoint)
	}

	w.entityRef(i.Creator)

	for _, v := range i.Validations {
		w.entityRef(v.Validator)
		w.str(v.Outcome)
		w.str(formatTimestampZ(v.Timestamp))
		w.floatOptional(v.Score)
	}

	w.floatOptional(i.QualityScore)
	w.flag(i.Crystallizes, "crystallizes")

	w.str(i.AwaitType)
	w.str(i.AwaitID)
	w.duration(i.Timeout)
	for _, waiter := range i.Waiters {
		w.str(waiter)
	}

	w.str(i.Holder)
	w.str(i.HookBead)
	w.str(i.RoleBead)
	w.str(i.AgentState)
	w.str(i.RoleType)
	w.str(i.Rig)
	w.str(i.MolType)
	w.str(i.WorkType)
	w.str(i.EventKind)
	w.str(i.Actor)
	w.str(i.Target)
	w.str(i.Payload)

	return fmt.Sprintf("%x", h.Sum(nil))
}

// formatTimestampZ renders t as RFC3339 with the UTC offset normalized to
// "Z", matching the log's own timestamp serialization rules.
func formatTimestampZ(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
