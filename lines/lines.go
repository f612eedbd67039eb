// Package lines provides the display-metadata lookup for transport lines.
// The table is loaded once at startup from a yaml data file and injected
// where needed, keeping presentation attributes out of the routing core.
package lines

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Info holds the display attributes of a single transport line.
type Info struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color,omitempty"`
	Mode  string `yaml:"mode" json:"mode,omitempty"`
}

// Table is an immutable mapping from line code to display attributes.
type Table struct {
	byCode map[string]Info
}

// Load reads a yaml file mapping line codes to Info entries.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lines: %w", err)
	}
	var byCode map[string]Info
	if err := yaml.Unmarshal(data, &byCode); err != nil {
		return nil, fmt.Errorf("lines: parse %s: %w", path, err)
	}
	return NewTable(byCode), nil
}

// NewTable builds a table from an in-memory mapping.
func NewTable(byCode map[string]Info) *Table {
	copied := make(map[string]Info, len(byCode))
	for code, info := range byCode {
		copied[code] = info
	}
	return &Table{byCode: copied}
}

func (t *Table) Lookup(code string) (Info, bool) {
	if t == nil {
		return Info{}, false
	}
	info, ok := t.byCode[code]
	return info, ok
}

// DisplayName returns the configured name for a line code, falling back to
// the code itself for unknown lines.
func (t *Table) DisplayName(code string) string {
	if info, ok := t.Lookup(code); ok && info.Name != "" {
		return info.Name
	}
	return code
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCode)
}
