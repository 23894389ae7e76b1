package sai

// action.go — action model builder.

import (
	"fmt"
	"strings"

	"github.com/marian-pritsak/DASH-1/internal/p4info"
)

// noAction is the p4c synthetic no-op action. It is referenced by most
// tables but never part of the exposed API surface.
const noAction = "NoAction"

// buildActionMap resolves every action in the program into a descriptor,
// keyed by action id. Built once per run, before any table is processed;
// a parameter width outside the scalar bands aborts the run.
func buildActionMap(program *p4info.Program) (map[int]ActionDescriptor, error) {
	actions := make(map[int]ActionDescriptor, len(program.Actions))
	for _, action := range program.Actions {
		name := action.Preamble.Name
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		params := make([]ActionParam, 0, len(action.Params))
		for _, p := range action.Params {
			// The parameter name stands in for both hints: a param
			// called "dst_addr" still types as an address.
			typ, err := keyType(p.Bitwidth, p.Name, p.Name)
			if err != nil {
				return nil, fmt.Errorf("action %s, param %s: %w", name, p.Name, err)
			}
			params = append(params, ActionParam{ID: p.ID, Name: p.Name, Type: typ})
		}
		actions[action.Preamble.ID] = ActionDescriptor{
			ID:     action.Preamble.ID,
			Name:   name,
			Params: params,
		}
	}
	return actions, nil
}
