package sai

// schema.go — schema assembly: the top of the translation pipeline.

import (
	"fmt"

	"github.com/marian-pritsak/DASH-1/internal/p4info"
)

// Config is the caller-supplied configuration for one generation run.
// It is passed explicitly rather than held as process state so the
// pipeline stays testable in isolation.
type Config struct {
	// AppName names the generated API (e.g. "dash").
	AppName string
	// IgnoreTables lists derived table names (dots already replaced,
	// before any "_entry" suffix) to drop from the model.
	IgnoreTables []string
}

// Generate assembles the final model: actions resolved once, then every
// table classified in declaration order. Input order is preserved —
// downstream consumers rely on reproducible output for identical input.
func Generate(program *p4info.Program, cfg Config) (*Model, error) {
	actions, err := buildActionMap(program)
	if err != nil {
		return nil, fmt.Errorf("resolve actions: %w", err)
	}

	ignore := make(map[string]bool, len(cfg.IgnoreTables))
	for _, name := range cfg.IgnoreTables {
		ignore[name] = true
	}

	model := &Model{
		AppName: cfg.AppName,
		Tables:  []TableDescriptor{},
	}
	for _, table := range program.Tables {
		desc, err := classifyTable(table, actions, ignore)
		if err != nil {
			return nil, err
		}
		if desc == nil {
			continue
		}
		model.Tables = append(model.Tables, *desc)
	}
	return model, nil
}
