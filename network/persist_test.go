package network

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadGraph_RoundTrip(t *testing.T) {
	g := BuildNetwork(
		[]StationRecord{{ID: 1, Name: "One", Latitude: 48.85, Longitude: 2.35}, {ID: 2, Name: "Two", Latitude: 48.86, Longitude: 2.36}},
		[]TravelTimeRow{
			{Line: "A", FromID: 1, ToID: 2, TravelTime: 5},
			{Line: "B", FromID: 1, ToID: 2, TravelTime: 7},
		},
	)

	path := filepath.Join(t.TempDir(), "graphs", "base.gob")
	if err := SaveGraph(g, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadGraph(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.NodeCount() != g.NodeCount() || loaded.EdgeCount() != g.EdgeCount() {
		t.Fatalf("round trip lost data: %d/%d nodes, %d/%d edges",
			loaded.NodeCount(), g.NodeCount(), loaded.EdgeCount(), g.EdgeCount())
	}
	if loaded.Nodes[1].Name != "One" || !loaded.Nodes[1].HasCoordinates {
		t.Errorf("node attributes lost: %+v", loaded.Nodes[1])
	}
	if len(loaded.Out[1]) != 2 {
		t.Errorf("parallel edges lost: %d", len(loaded.Out[1]))
	}
}

func TestLoadGraph_Missing(t *testing.T) {
	if _, err := LoadGraph(filepath.Join(t.TempDir(), "nope.gob")); err == nil {
		t.Error("expected error for missing snapshot")
	}
	if _, err := LoadGraph(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestSaveGraph_EmptyPath(t *testing.T) {
	if err := SaveGraph(NewGraph(), ""); err == nil {
		t.Error("expected error for empty path")
	}
}
