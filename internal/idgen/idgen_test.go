package idgen

import (
	"testing"
	"time"
)

func TestHashContent_Deterministic(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	h1 := HashContent("Fix login", "Details", ts, "ws-1")
	h2 := HashContent("Fix login", "Details", ts, "ws-1")
	if h1 != h2 {
		t.Errorf("HashContent not deterministic: %q != %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("HashContent length = %d, want 64 hex chars", len(h1))
	}
}

func TestHashContent_InputsAffectHash(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	base := HashContent("Title", "Desc", ts, "ws-1")

	tests := []struct {
		name string
		got  string
	}{
		{"title", HashContent("Other", "Desc", ts, "ws-1")},
		{"description", HashContent("Title", "Other", ts, "ws-1")},
		{"created", HashContent("Title", "Desc", ts.Add(time.Second), "ws-1")},
		{"workspaceID", HashContent("Title", "Desc", ts, "ws-2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == base {
				t.Errorf("changing %s did not change the hash", tt.name)
			}
		})
	}
}

func TestMakeID_ClampsLength(t *testing.T) {
	hash := HashContent("Title", "Desc", time.Now(), "ws-1")

	tests := []struct {
		name   string
		length int
		want   int // expected hash-portion length
	}{
		{"below minimum", 1, minHashLength},
		{"at minimum", minHashLength, minHashLength},
		{"above maximum", MaxHashLength + 5, MaxHashLength},
		{"at maximum", MaxHashLength, MaxHashLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := MakeID("bd", hash, tt.length)
			wantPrefix := "bd-" + hash[:tt.want]
			if id != wantPrefix {
				t.Errorf("MakeID(length=%d) = %q, want %q", tt.length, id, wantPrefix)
			}
		})
	}
}

func TestGenerateHashID_NoCollision(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	none := func(id string) (bool, error) { return false, nil }

	id, err := GenerateHashID("bd", "Title", "Desc", ts, "ws-1", none)
	if err != nil {
		t.Fatalf("GenerateHashID: %v", err)
	}
	hash := HashContent("Title", "Desc", ts, "ws-1")
	want := "bd-" + hash[:minHashLength]
	if id != want {
		t.Errorf("GenerateHashID() = %q, want %q", id, want)
	}
}

func TestGenerateHashID_GrowsOnCollision(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	hash := HashContent("Title", "Desc", ts, "ws-1")
	taken := MakeID("bd", hash, minHashLength)

	exists := func(id string) (bool, error) { return id == taken, nil }

	id, err := GenerateHashID("bd", "Title", "Desc", ts, "ws-1", exists)
	if err != nil {
		t.Fatalf("GenerateHashID: %v", err)
	}
	if id == taken {
		t.Errorf("GenerateHashID returned colliding id %q", id)
	}
	want := "bd-" + hash[:minHashLength+1]
	if id != want {
		t.Errorf("GenerateHashID() = %q, want %q", id, want)
	}
}

func TestGenerateHashID_ExhaustsLengths(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	alwaysTaken := func(id string) (bool, error) { return true, nil }

	_, err := GenerateHashID("bd", "Title", "Desc", ts, "ws-1", alwaysTaken)
	if err == nil {
		t.Error("expected error when every candidate length collides")
	}
}

func TestGenerateHashID_PropagatesExistsError(t *testing.T) {
	ts := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	boom := errTest("boom")
	failing := func(id string) (bool, error) { return false, boom }

	_, err := GenerateHashID("bd", "Title", "Desc", ts, "ws-1", failing)
	if err != boom {
		t.Errorf("expected propagated error %v, got %v", boom, err)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestParseHierarchicalID(t *testing.T) {
	tests := []struct {
		id         string
		wantRoot   string
		wantParent string
		wantDepth  int
	}{
		{"bd-a3f8e9", "bd-a3f8e9", "", 0},
		{"bd-a3f8e9.1", "bd-a3f8e9", "bd-a3f8e9", 1},
		{"bd-a3f8e9.1.2", "bd-a3f8e9", "bd-a3f8e9.1", 2},
		{"bd-a3f8e9.1.2.3", "bd-a3f8e9", "bd-a3f8e9.1.2", 3},
		{"bd-a3f8e9.abc", "bd-a3f8e9.abc", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			root, parent, depth := ParseHierarchicalID(tt.id)
			if root != tt.wantRoot || parent != tt.wantParent || depth != tt.wantDepth {
				t.Errorf("ParseHierarchicalID(%q) = (%q, %q, %d), want (%q, %q, %d)",
					tt.id, root, parent, depth, tt.wantRoot, tt.wantParent, tt.wantDepth)
			}
		})
	}
}

func TestCheckHierarchyDepth(t *testing.T) {
	tests := []struct {
		parentID  string
		wantError bool
	}{
		{"bd-a3f8e9", false},
		{"bd-a3f8e9.1", false},
		{"bd-a3f8e9.1.2", false},
		{"bd-a3f8e9.1.2.3", true},
	}
	for _, tt := range tests {
		t.Run(tt.parentID, func(t *testing.T) {
			err := CheckHierarchyDepth(tt.parentID)
			if (err != nil) != tt.wantError {
				t.Errorf("CheckHierarchyDepth(%q) error = %v, wantError %v", tt.parentID, err, tt.wantError)
			}
		})
	}
}

func TestChildID(t *testing.T) {
	if got := ChildID("bd-a3f8e9", 1); got != "bd-a3f8e9.1" {
		t.Errorf("ChildID() = %q, want %q", got, "bd-a3f8e9.1")
	}
	if got := ChildID("bd-a3f8e9.1", 2); got != "bd-a3f8e9.1.2" {
		t.Errorf("ChildID() = %q, want %q", got, "bd-a3f8e9.1.2")
	}
}
