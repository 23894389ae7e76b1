// Package config loads generator configuration from a .saigen.yaml file
// kept next to the P4Info document. Command-line flags override file
// values; the file itself is optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file.
const FileName = ".saigen.yaml"

// Config holds one generation run's settings.
type Config struct {
	// AppName names the generated API (e.g. "dash").
	AppName string `yaml:"app_name"`
	// IgnoreTables lists derived table names to drop from the model,
	// matched before any "_entry" suffix is applied.
	IgnoreTables []string `yaml:"ignore_tables"`
	// SAIGitURL and SAIGitBranch select the baseline header tree.
	SAIGitURL    string `yaml:"sai_git_url"`
	SAIGitBranch string `yaml:"sai_git_branch"`
	// Dest is the directory the SAI tree is cloned into (or already
	// checked out at).
	Dest string `yaml:"dest"`
}

// Load reads <dir>/.saigen.yaml. Returns nil (not an error) if the file
// does not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays non-zero values from other. Safe on a nil receiver base:
// a nil Config merges into a fresh one.
func (c *Config) Merge(other Config) Config {
	merged := Config{}
	if c != nil {
		merged = *c
	}
	if other.AppName != "" {
		merged.AppName = other.AppName
	}
	if len(other.IgnoreTables) > 0 {
		merged.IgnoreTables = other.IgnoreTables
	}
	if other.SAIGitURL != "" {
		merged.SAIGitURL = other.SAIGitURL
	}
	if other.SAIGitBranch != "" {
		merged.SAIGitBranch = other.SAIGitBranch
	}
	if other.Dest != "" {
		merged.Dest = other.Dest
	}
	return merged
}

// SplitTables parses a comma-separated table list, trimming whitespace
// and dropping empty entries.
func SplitTables(s string) []string {
	var tables []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			tables = append(tables, name)
		}
	}
	return tables
}
