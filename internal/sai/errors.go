package sai

// errors.go — error taxonomy for schema translation.
//
// Every error here is fatal to the run: a single malformed table or
// parameter aborts the whole generation, because a partial API surface is
// worse than none. Callers match with errors.As.

import "fmt"

// UnsupportedWidthError reports a key or parameter bit-width that falls
// outside every recognized band for its resolution mode, or a 32/48-bit
// value lacking the required address hint.
type UnsupportedWidthError struct {
	Width  int
	Header string
	Field  string
	Mode   string // "exact" | "lpm" | "list" | "range_list"
}

func (e *UnsupportedWidthError) Error() string {
	return fmt.Sprintf("bitwidth %d (header %q, field %q) is not supported for %s match",
		e.Width, e.Header, e.Field, e.Mode)
}

// InvalidMatchTagError reports a match field that declares neither a
// matchType nor an otherMatchType tag.
type InvalidMatchTagError struct {
	Key string // full match field name
}

func (e *InvalidMatchTagError) Error() string {
	return fmt.Sprintf("match field %q: no valid match tag found", e.Key)
}

// UnsupportedMatchKindError reports a match kind outside the four
// recognized kinds (exact, lpm, list, range_list).
type UnsupportedMatchKindError struct {
	Key  string
	Kind string
}

func (e *UnsupportedMatchKindError) Error() string {
	return fmt.Sprintf("match field %q: match type %q is not supported", e.Key, e.Kind)
}

// MissingActionRefError reports a table referencing an action id that is
// absent from the action map.
type MissingActionRefError struct {
	Table string
	ID    int
}

func (e *MissingActionRefError) Error() string {
	return fmt.Sprintf("table %q references unknown action id %d", e.Table, e.ID)
}
