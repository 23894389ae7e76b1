// Package patch performs the line-oriented edits that register a generated
// experimental API in the three boilerplate SAI headers.
//
// Each edit keys off a marker comment that the SAI tree guarantees to be
// present ("Add new experimental APIs above this line" and friends). The
// transforms are pure []line → []line functions; file I/O sits at the
// edges. A missing marker leaves the lines untouched.
package patch

import (
	"fmt"
	"os"
	"strings"

	"github.com/marian-pritsak/DASH-1/internal/sai"
)

// Marker comments in the SAI boilerplate headers.
const (
	apiMarker        = "Add new experimental APIs above this line"
	includesMarker   = "new experimental object type includes"
	objectTypeMarker = "Add new experimental object types above this line"
	entryMarker      = "Add new experimental entries above this line"
)

// Extensions registers the API id and the generated header's include in
// saiextensions.h.
func Extensions(lines []string, model *sai.Model) []string {
	out := make([]string, 0, len(lines)+3)
	for _, line := range lines {
		if strings.Contains(line, apiMarker) {
			out = append(out, "    SAI_API_"+strings.ToUpper(model.AppName)+",", "")
		}
		if strings.Contains(line, includesMarker) {
			out = append(out, line, `#include "`+headerInclude(model.AppName)+`"`)
			continue
		}
		out = append(out, line)
	}
	return out
}

// TypeExtensions registers one object type per table in
// saitypesextensions.h.
func TypeExtensions(lines []string, model *sai.Model) []string {
	out := make([]string, 0, len(lines)+2*len(model.Tables))
	for _, line := range lines {
		if strings.Contains(line, objectTypeMarker) {
			for _, table := range model.Tables {
				out = append(out, "    SAI_OBJECT_TYPE_"+strings.ToUpper(table.Name)+",", "")
			}
		}
		out = append(out, line)
	}
	return out
}

// Object adds one union member per entry table to the sai_object_key_entry_t
// union in saiobject.h, plus the include. Object tables are addressed by
// object id and need no member.
func Object(lines []string, model *sai.Model) []string {
	out := make([]string, 0, len(lines)+3*len(model.Tables))
	for _, line := range lines {
		if strings.Contains(line, entryMarker) {
			for _, table := range model.Tables {
				if table.IsObject {
					continue
				}
				out = append(out,
					"    /** @validonly object_type == SAI_OBJECT_TYPE_"+strings.ToUpper(table.Name)+" */",
					"    sai_"+table.Name+"_t "+table.Name+";",
					"")
			}
		}
		if strings.Contains(line, includesMarker) {
			out = append(out, line, `#include "../experimental/`+headerInclude(model.AppName)+`"`)
			continue
		}
		out = append(out, line)
	}
	return out
}

func headerInclude(appName string) string {
	return "saiexperimental" + appName + ".h"
}

// File rewrites the file at path through transform, preserving the
// trailing newline.
func File(path string, model *sai.Model, transform func([]string, *sai.Model) []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	patched := strings.Join(transform(lines, model), "\n")
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
