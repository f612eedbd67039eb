package lines

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.yml")
	data := `
"M1":
  name: "Metro Line 1"
  color: "#FFCD00"
  mode: metro
"RER-A":
  name: "RER A"
  color: "#E2231A"
  mode: rail
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", table.Len())
	}
	info, ok := table.Lookup("M1")
	if !ok || info.Name != "Metro Line 1" || info.Color != "#FFCD00" {
		t.Errorf("unexpected M1 info %+v ok=%v", info, ok)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDisplayName_FallsBackToCode(t *testing.T) {
	table := NewTable(map[string]Info{"M4": {Name: "Metro Line 4"}})
	if got := table.DisplayName("M4"); got != "Metro Line 4" {
		t.Errorf("got %q", got)
	}
	if got := table.DisplayName("unknown-line"); got != "unknown-line" {
		t.Errorf("unknown code must fall back to itself, got %q", got)
	}
}

func TestNilTableIsSafe(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("M1"); ok {
		t.Error("nil table must not resolve lookups")
	}
	if got := table.DisplayName("M1"); got != "M1" {
		t.Errorf("nil table DisplayName = %q", got)
	}
}
