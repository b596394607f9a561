package sqlite

import (
	"encoding/json"

	"github.com/beadkeep/beads/internal/types"
)

// The extension fields below are structured but opaque to the store: it
// round-trips them through JSON-encoded TEXT columns without interpreting
// their contents. encoding/json is used rather than a schema-aware codec
// since these blobs are never queried, only stored and rehydrated.

func encodeBondedFrom(refs []types.BondRef) string {
	if len(refs) == 0 {
		return ""
	}
	b, _ := json.Marshal(refs)
	return string(b)
}

func decodeBondedFrom(s string) []types.BondRef {
	if s == "" {
		return nil
	}
	var refs []types.BondRef
	if err := json.Unmarshal([]byte(s), &refs); err != nil {
		return nil
	}
	return refs
}

func encodeEntityRef(ref *types.EntityRef) string {
	if ref == nil {
		return ""
	}
	b, _ := json.Marshal(ref)
	return string(b)
}

func decodeEntityRef(s string) *types.EntityRef {
	if s == "" {
		return nil
	}
	var ref types.EntityRef
	if err := json.Unmarshal([]byte(s), &ref); err != nil {
		return nil
	}
	return &ref
}

func encodeValidations(vs []types.Validation) string {
	if len(vs) == 0 {
		return ""
	}
	b, _ := json.Marshal(vs)
	return string(b)
}

func decodeValidations(s string) []types.Validation {
	if s == "" {
		return nil
	}
	var vs []types.Validation
	if err := json.Unmarshal([]byte(s), &vs); err != nil {
		return nil
	}
	return vs
}

func encodeStringList(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	b, _ := json.Marshal(ss)
	return string(b)
}

func decodeStringList(s string) []string {
	if s == "" {
		return nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(s), &ss); err != nil {
		return nil
	}
	return ss
}
