// Package sai translates a P4Runtime info document into the normalized
// model the SAI header generator renders from.
//
// The pipeline is a deterministic, single-pass computation: actions are
// resolved once into an id-keyed map, then every table is classified in
// declaration order into either an object table (addressed by an opaque
// object id) or an entry table (addressed by a composite structured key).
// Running it twice on the same input yields identical output.
package sai

// Model is the final artifact handed to the renderer and patchers.
// Field order matches the YAML dumped by "saigen print".
type Model struct {
	AppName string            `yaml:"app_name"`
	Tables  []TableDescriptor `yaml:"tables"`
}

// TableDescriptor is one normalized table.
//
// Name is the qualified table name with the control-block prefix dropped
// and remaining dots replaced by underscores; entry tables additionally
// carry an "_entry" suffix. IsObject is true when the table is addressed
// by a single opaque handle rather than its key fields — in that case
// Keys is empty, since the object id is implicit.
type TableDescriptor struct {
	Name     string             `yaml:"name"`
	Keys     []KeyDescriptor    `yaml:"keys"`
	Actions  []ActionDescriptor `yaml:"actions"`
	IsObject bool               `yaml:"is_object"`
}

// KeyDescriptor is one resolved table key. Exactly one of the four type
// fields is set, matching MatchKind.
type KeyDescriptor struct {
	Name          string `yaml:"sai_key_name"`
	MatchKind     string `yaml:"match_type"`
	KeyType       string `yaml:"sai_key_type,omitempty"`
	LPMType       string `yaml:"sai_lpm_type,omitempty"`
	ListType      string `yaml:"sai_list_type,omitempty"`
	RangeListType string `yaml:"sai_range_list_type,omitempty"`
}

// Type returns whichever resolved type tag is set.
func (k KeyDescriptor) Type() string {
	switch k.MatchKind {
	case matchLPM:
		return k.LPMType
	case matchList:
		return k.ListType
	case matchRangeList:
		return k.RangeListType
	default:
		return k.KeyType
	}
}

// ActionDescriptor is one resolved action: short name plus typed
// parameters, in declaration order.
type ActionDescriptor struct {
	ID     int           `yaml:"id"`
	Name   string        `yaml:"name"`
	Params []ActionParam `yaml:"params"`
}

// ActionParam is one typed action parameter. Params are never matched,
// only carried, so they always resolve in scalar mode.
type ActionParam struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}
