package types

import (
	"testing"
	"time"
)

func TestIssueType_IsValid(t *testing.T) {
	tests := []struct {
		t    IssueType
		want bool
	}{
		{TypeBug, true},
		{TypeFeature, true},
		{TypeTask, true},
		{TypeEpic, true},
		{TypeChore, true},
		{TypeEvent, true},
		{IssueType("molecule"), false},
		{IssueType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.t), func(t *testing.T) {
			if got := tt.t.IsValid(); got != tt.want {
				t.Errorf("IssueType(%q).IsValid() = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIssueType_RequiredSections(t *testing.T) {
	tests := []struct {
		name      string
		t         IssueType
		wantEmpty bool
	}{
		{"bug", TypeBug, false},
		{"task", TypeTask, false},
		{"feature", TypeFeature, false},
		{"epic", TypeEpic, false},
		{"chore", TypeChore, true},
		{"event", TypeEvent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.RequiredSections()
			if tt.wantEmpty && len(got) != 0 {
				t.Errorf("RequiredSections(%q) = %v, want empty", tt.t, got)
			}
			if !tt.wantEmpty && len(got) == 0 {
				t.Errorf("RequiredSections(%q) = empty, want non-empty", tt.t)
			}
		})
	}
}

func TestDependencyType_IsBlocking(t *testing.T) {
	tests := []struct {
		d    DependencyType
		want bool
	}{
		{DepBlocks, true},
		{DepParentChild, true},
		{DepConditionalBlocks, true},
		{DepWaitsFor, true},
		{DepRelated, false},
		{DepDuplicates, false},
		{DepSupersedes, false},
		{DepDiscoveredFrom, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			if got := tt.d.IsBlocking(); got != tt.want {
				t.Errorf("DependencyType(%q).IsBlocking() = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestStatus_IsUnresolved(t *testing.T) {
	tests := []struct {
		s    Status
		want bool
	}{
		{StatusOpen, true},
		{StatusInProgress, true},
		{StatusBlocked, true},
		{StatusDeferred, true},
		{StatusHooked, true},
		{StatusClosed, false},
		{StatusTombstone, false},
		{StatusPinned, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			if got := tt.s.IsUnresolved(); got != tt.want {
				t.Errorf("Status(%q).IsUnresolved() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestComputeContentHash_Deterministic(t *testing.T) {
	issue := &Issue{Title: "Fix login", Description: "Details", Priority: 2, IssueType: TypeBug}

	h1 := issue.ComputeContentHash()
	h2 := issue.ComputeContentHash()
	if h1 != h2 {
		t.Errorf("ComputeContentHash not deterministic: %q != %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("ComputeContentHash length = %d, want 64 hex chars", len(h1))
	}
}

func TestComputeContentHash_FieldsAffectHash(t *testing.T) {
	base := &Issue{Title: "Title", Description: "Desc", Priority: 1, IssueType: TypeTask}
	baseHash := base.ComputeContentHash()

	variants := []struct {
		name  string
		issue *Issue
	}{
		{"title", &Issue{Title: "Other", Description: "Desc", Priority: 1, IssueType: TypeTask}},
		{"description", &Issue{Title: "Title", Description: "Other", Priority: 1, IssueType: TypeTask}},
		{"priority", &Issue{Title: "Title", Description: "Desc", Priority: 2, IssueType: TypeTask}},
		{"issueType", &Issue{Title: "Title", Description: "Desc", Priority: 1, IssueType: TypeBug}},
		{"pinned", &Issue{Title: "Title", Description: "Desc", Priority: 1, IssueType: TypeTask, Pinned: true}},
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			if got := v.issue.ComputeContentHash(); got == baseHash {
				t.Errorf("changing %s did not change the content hash", v.name)
			}
		})
	}
}

func TestComputeContentHash_IgnoresIdentityAndTimestamps(t *testing.T) {
	a := &Issue{ID: "bd-1", Title: "Title", Description: "Desc", Priority: 1, IssueType: TypeTask}
	b := &Issue{ID: "bd-2", Title: "Title", Description: "Desc", Priority: 1, IssueType: TypeTask,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), UpdatedAt: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)}

	if a.ComputeContentHash() != b.ComputeContentHash() {
		t.Error("ComputeContentHash should not depend on ID or CreatedAt")
	}
}
