package network

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// SaveGraph serializes the graph to a gob snapshot. The file is written to a
// temporary sibling and renamed into place so readers never observe a
// partially written artifact.
func SaveGraph(g *Graph, path string) error {
	if path == "" {
		return fmt.Errorf("save graph: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".graph-*")
	if err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(g); err != nil {
		tmp.Close()
		return fmt.Errorf("save graph: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	return nil
}

// LoadGraph reads a gob snapshot written by SaveGraph.
func LoadGraph(path string) (*Graph, error) {
	if path == "" {
		return nil, fmt.Errorf("load graph: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	defer f.Close()

	var g Graph
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf("load graph: decode %s: %w", path, err)
	}
	if g.Nodes == nil {
		g.Nodes = map[int]*Node{}
	}
	if g.Out == nil {
		g.Out = map[int][]*Edge{}
	}
	return &g, nil
}
