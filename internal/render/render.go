// Package render turns the normalized SAI model into header text.
//
// Templates are Go text/template files. The canonical saiapi.h.tmpl ships
// embedded in the binary; a template directory (typically the checked-out
// SAI tree) can override it so header layout changes don't require a
// rebuild.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/marian-pritsak/DASH-1/internal/sai"
)

//go:embed saiapi.h.tmpl
var templateFS embed.FS

// HeaderTemplate is the template that renders the experimental API header.
const HeaderTemplate = "saiapi.h.tmpl"

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
}

// Renderer renders named templates against a model.
type Renderer struct {
	dir string // optional override directory
}

// New returns a Renderer. dir may be empty; when set, templates present
// there take precedence over the embedded ones.
func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render executes the named template against data and returns the text.
func (r *Renderer) Render(name string, data any) (string, error) {
	src, err := r.source(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Funcs(funcs).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Header renders the experimental API header for the model.
func (r *Renderer) Header(model *sai.Model) (string, error) {
	return r.Render(HeaderTemplate, model)
}

// HeaderFileName returns the generated header's file name for an API name,
// e.g. "saiexperimentaldash.h".
func HeaderFileName(appName string) string {
	return "saiexperimental" + appName + ".h"
}

func (r *Renderer) source(name string) (string, error) {
	if r.dir != "" {
		path := filepath.Join(r.dir, name)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("read template %s: %w", path, err)
		}
	}
	data, err := templateFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("no template named %s: %w", name, err)
	}
	return string(data), nil
}
