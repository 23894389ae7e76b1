// Package p4info reads the P4Runtime info JSON emitted by the p4c compiler.
//
// Only the subset of the document the SAI generator consumes is modeled:
// tables (with their match fields and action references) and actions (with
// their parameters). Everything else in the file is ignored on unmarshal.
// The loaded Program is read-only; no stage of the pipeline mutates it.
package p4info

import (
	"encoding/json"
	"fmt"
	"os"
)

// Program is the top-level P4Runtime info document.
type Program struct {
	Tables  []Table  `json:"tables"`
	Actions []Action `json:"actions"`
}

// Preamble carries the id and dot-qualified name every table and action has.
type Preamble struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Table is one match-action table declaration.
type Table struct {
	Preamble    Preamble     `json:"preamble"`
	MatchFields []MatchField `json:"matchFields"`
	ActionRefs  []ActionRef  `json:"actionRefs"`
}

// MatchField is one key of a table. Name has the form
// "<path>:<declared-key-name>" where path is the dot-qualified field
// reference. Exactly one of MatchType / OtherMatchType is set; standard
// kinds (EXACT, LPM) arrive in MatchType, p4c @SaiVal extensions (list,
// range_list) in OtherMatchType.
type MatchField struct {
	Name           string `json:"name"`
	Bitwidth       int    `json:"bitwidth"`
	MatchType      string `json:"matchType,omitempty"`
	OtherMatchType string `json:"otherMatchType,omitempty"`
}

// ActionRef points at an action by id (foreign key into Program.Actions).
type ActionRef struct {
	ID int `json:"id"`
}

// Action is one action declaration with its typed parameters.
type Action struct {
	Preamble Preamble `json:"preamble"`
	Params   []Param  `json:"params,omitempty"`
}

// Param is one action parameter.
type Param struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Bitwidth int    `json:"bitwidth"`
}

// Load reads and unmarshals a P4Runtime info JSON file.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var program Program
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &program, nil
}
