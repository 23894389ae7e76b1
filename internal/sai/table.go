package sai

// table.go — per-table classification.
//
// Each table resolves its match fields into key descriptors, drops
// NoAction from its action references, and is classified object vs entry:
//
//   - exactly one key named "<base>_id"  → object, key list cleared
//     (the id is the table's own object identifier, not a matchable field)
//   - more than five keys               → object
//   - anything else                     → entry, name gains "_entry"
//
// The exclusion set is matched against the derived name before the
// "_entry" suffix is applied.

import (
	"fmt"
	"strings"

	"github.com/marian-pritsak/DASH-1/internal/p4info"
)

// objectKeyThreshold is the key count above which a table is addressed by
// an opaque handle instead of a composite entry struct.
const objectKeyThreshold = 5

// resolveKey parses one match field into a KeyDescriptor.
//
// The field name has the form "<path>:<declared-key-name>" where path is
// either "<struct>.<header>.<field>" or "<header>.<field>". Only the
// header and field segments feed type-hint matching.
func resolveKey(field p4info.MatchField) (KeyDescriptor, error) {
	path, declared, ok := strings.Cut(field.Name, ":")
	if !ok {
		return KeyDescriptor{}, fmt.Errorf("match field %q: missing declared key name", field.Name)
	}
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return KeyDescriptor{}, fmt.Errorf("match field %q: field path %q is not dot-qualified", field.Name, path)
	}
	header := segments[len(segments)-2]
	name := segments[len(segments)-1]

	key := KeyDescriptor{Name: declared}
	switch {
	case field.OtherMatchType != "":
		key.MatchKind = strings.ToLower(field.OtherMatchType)
	case field.MatchType != "":
		key.MatchKind = strings.ToLower(field.MatchType)
	default:
		return KeyDescriptor{}, &InvalidMatchTagError{Key: field.Name}
	}

	var err error
	switch key.MatchKind {
	case matchExact:
		key.KeyType, err = keyType(field.Bitwidth, header, name)
	case matchLPM:
		key.LPMType, err = lpmType(field.Bitwidth, header, name)
	case matchList:
		key.ListType, err = listType(field.Bitwidth, header, name)
	case matchRangeList:
		key.RangeListType, err = rangeListType(field.Bitwidth, header, name)
	default:
		return KeyDescriptor{}, &UnsupportedMatchKindError{Key: field.Name, Kind: key.MatchKind}
	}
	if err != nil {
		return KeyDescriptor{}, err
	}
	return key, nil
}

// classifyTable produces the descriptor for one table, or nil (no error)
// when the table's derived name is in the exclusion set.
func classifyTable(table p4info.Table, actions map[int]ActionDescriptor, ignore map[string]bool) (*TableDescriptor, error) {
	qualified := table.Preamble.Name
	_, rest, ok := strings.Cut(qualified, ".")
	if !ok {
		return nil, fmt.Errorf("table %q: name is not control-block qualified", qualified)
	}
	name := strings.ReplaceAll(rest, ".", "_")
	if ignore[name] {
		return nil, nil
	}

	keys := make([]KeyDescriptor, 0, len(table.MatchFields))
	for _, field := range table.MatchFields {
		key, err := resolveKey(field)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		keys = append(keys, key)
	}

	refs := make([]ActionDescriptor, 0, len(table.ActionRefs))
	for _, ref := range table.ActionRefs {
		action, ok := actions[ref.ID]
		if !ok {
			return nil, &MissingActionRefError{Table: name, ID: ref.ID}
		}
		if action.Name == noAction {
			continue
		}
		refs = append(refs, action)
	}

	desc := &TableDescriptor{Name: name, Keys: keys, Actions: refs}
	base := rest
	if i := strings.LastIndex(rest, "."); i >= 0 {
		base = rest[i+1:]
	}
	switch {
	case len(keys) == 1 && keys[0].Name == base+"_id":
		desc.IsObject = true
		desc.Keys = []KeyDescriptor{}
	case len(keys) > objectKeyThreshold:
		desc.IsObject = true
	default:
		desc.Name += "_entry"
	}
	return desc, nil
}
