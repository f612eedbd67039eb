package network

import (
	"math"
	"testing"
)

func walkTestGraph() *Graph {
	g := NewGraph()
	g.AddNode(&Node{ID: 1, Name: "Near", Latitude: 48.8500, Longitude: 2.3500, HasCoordinates: true})
	g.AddNode(&Node{ID: 2, Name: "Far", Latitude: 48.9500, Longitude: 2.5500, HasCoordinates: true})
	g.AddNode(&Node{ID: 3, Name: "No coords"})
	return g
}

func TestFindNearestStation_PicksClosest(t *testing.T) {
	g := walkTestGraph()
	ap := FindNearestStation(48.8505, 2.3505, g, 10, 4.5)
	if ap == nil {
		t.Fatal("expected an access point")
	}
	if ap.StationID != 1 {
		t.Errorf("expected station 1, got %d", ap.StationID)
	}
	if ap.WalkingDistance <= 0 || ap.WalkingDistance > 200 {
		t.Errorf("implausible walking distance %g m", ap.WalkingDistance)
	}
	wantDuration := (ap.WalkingDistance / 1000) / 4.5 * 60
	if math.Abs(ap.WalkingDuration-wantDuration) > 1e-9 {
		t.Errorf("duration %g does not match distance/speed formula %g", ap.WalkingDuration, wantDuration)
	}
}

func TestFindNearestStation_NoCoverage(t *testing.T) {
	g := walkTestGraph()
	// Marseille is far outside a 10 km radius around the Paris test stations.
	if ap := FindNearestStation(43.2965, 5.3698, g, 10, 4.5); ap != nil {
		t.Errorf("expected nil outside coverage, got station %d", ap.StationID)
	}
}

func TestFindNearestStation_IgnoresNodesWithoutCoordinates(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: 3, Name: "No coords"})
	if ap := FindNearestStation(48.85, 2.35, g, 10, 4.5); ap != nil {
		t.Error("placeholder nodes must never be walk targets")
	}
}

func TestHaversineMeters(t *testing.T) {
	// Paris Notre-Dame to Gare de Lyon, roughly 2.8 km.
	d := HaversineMeters(48.8530, 2.3499, 48.8443, 2.3744)
	if d < 2000 || d > 3500 {
		t.Errorf("implausible distance %g m", d)
	}
	if z := HaversineMeters(48.85, 2.35, 48.85, 2.35); z != 0 {
		t.Errorf("distance to self should be 0, got %g", z)
	}
}
