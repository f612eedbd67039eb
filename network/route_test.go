package network

import (
	"math"
	"testing"
)

// triangleGraph: 1 -(A,5)-> 2 -(A,8)-> 3 and a direct 1 -(B,12)-> 3.
func triangleGraph() *Graph {
	return BuildNetwork(
		[]StationRecord{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}},
		[]TravelTimeRow{
			{Line: "A", FromID: 1, ToID: 2, TravelTime: 5},
			{Line: "A", FromID: 2, ToID: 3, TravelTime: 8},
			{Line: "B", FromID: 1, ToID: 3, TravelTime: 12},
		},
	)
}

// transferGraph: line A 1->2->3, line B 2->4; reaching 4 from 1 requires a
// change at station 2.
func transferGraph() *Graph {
	return BuildNetwork(
		[]StationRecord{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}, {ID: 4, Name: "Four"}},
		[]TravelTimeRow{
			{Line: "A", FromID: 1, ToID: 2, TravelTime: 5},
			{Line: "A", FromID: 2, ToID: 3, TravelTime: 6},
			{Line: "B", FromID: 2, ToID: 4, TravelTime: 7},
		},
	)
}

func TestFindRoute_WeightGovernsSelection(t *testing.T) {
	g := triangleGraph()
	path, cost, info := FindRoute(g, 1, 3, DefaultRouteOptions())

	if info.Error != "" {
		t.Fatalf("unexpected error: %s", info.Error)
	}
	// The direct line-B edge (12) beats riding line A through station 2
	// (5+8=13); weight, not hop count, governs selection.
	if len(path) != 2 || path[0] != 1 || path[1] != 3 {
		t.Fatalf("expected path [1 3], got %v", path)
	}
	if cost != 12 {
		t.Errorf("expected cost 12, got %g", cost)
	}
	if info.NumTransfers != 0 {
		t.Errorf("direct ride has no transfers, got %d", info.NumTransfers)
	}
	if len(info.Segments) != 1 || info.Segments[0].Line != "B" {
		t.Errorf("expected a single line-B segment, got %+v", info.Segments)
	}
}

func TestFindRoute_SingleLineNoTransfers(t *testing.T) {
	g := BuildNetwork(
		[]StationRecord{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}},
		[]TravelTimeRow{
			{Line: "A", FromID: 1, ToID: 2, TravelTime: 5},
			{Line: "A", FromID: 2, ToID: 3, TravelTime: 8},
		},
	)
	path, cost, info := FindRoute(g, 1, 3, DefaultRouteOptions())
	if info.Error != "" {
		t.Fatalf("unexpected error: %s", info.Error)
	}
	if len(path) != 3 || path[0] != 1 || path[1] != 2 || path[2] != 3 {
		t.Fatalf("expected path [1 2 3], got %v", path)
	}
	if cost != 13 {
		t.Errorf("expected cost 13, got %g", cost)
	}
	if info.NumTransfers != 0 {
		t.Errorf("single-line path must count 0 transfers, got %d", info.NumTransfers)
	}
	for _, s := range info.Segments {
		if s.IsTransfer {
			t.Errorf("segment %+v wrongly flagged as transfer", s)
		}
	}
}

func TestFindRoute_TransferPenaltyAndCounting(t *testing.T) {
	g := transferGraph()
	opts := DefaultRouteOptions()
	path, cost, info := FindRoute(g, 1, 4, opts)

	if info.Error != "" {
		t.Fatalf("unexpected error: %s", info.Error)
	}
	if len(path) != 3 || path[0] != 1 || path[1] != 2 || path[2] != 4 {
		t.Fatalf("expected path [1 2 4], got %v", path)
	}
	// 5 (line A) + 5 transfer penalty + 7 (line B)
	want := 5 + opts.TransferPenalty + 7
	if math.Abs(cost-want) > 1e-9 {
		t.Errorf("expected cost %g, got %g", want, cost)
	}
	if info.NumTransfers != 1 {
		t.Errorf("expected 1 transfer, got %d", info.NumTransfers)
	}
	if len(info.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(info.Segments))
	}
	if info.Segments[0].IsTransfer {
		t.Error("first leg must not be a transfer")
	}
	if !info.Segments[1].IsTransfer {
		t.Error("line change at station 2 must flag the second leg")
	}
}

func TestFindRoute_CongestionRaisesTransferCost(t *testing.T) {
	g := transferGraph()
	opts := DefaultRouteOptions()
	copts := DefaultCongestionOptions()

	// Station 2 (the hub) fully loaded: node penalty 5*1*2 = 10, edges into
	// it pay 0.1*10 = 1 and the transfer itself pays the full 10.
	w := ApplyCongestion(g, map[int]float64{1: 0, 2: 100, 3: 0, 4: 0}, copts)
	_, cost, info := FindRoute(w, 1, 4, opts)
	if info.Error != "" {
		t.Fatalf("unexpected error: %s", info.Error)
	}
	want := (5 + 1.0) + (opts.TransferPenalty + 10.0) + 7
	if math.Abs(cost-want) > 1e-9 {
		t.Errorf("expected weighted cost %g, got %g", want, cost)
	}

	_, base, _ := FindRoute(g, 1, 4, opts)
	if cost <= base {
		t.Errorf("congestion at the hub must raise the route cost (%g <= %g)", cost, base)
	}
}

func TestFindRoute_UnknownStations(t *testing.T) {
	g := triangleGraph()

	path, cost, info := FindRoute(g, 999, 3, DefaultRouteOptions())
	if path != nil || !math.IsInf(cost, 1) || info.Error == "" {
		t.Errorf("unknown start must produce an error payload, got path=%v cost=%g err=%q", path, cost, info.Error)
	}

	_, _, info = FindRoute(g, 1, 999, DefaultRouteOptions())
	if info.Error == "" {
		t.Error("unknown end must produce an error payload")
	}
}

func TestFindRoute_NoPathBetweenComponents(t *testing.T) {
	g := BuildNetwork(
		[]StationRecord{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 5, Name: "Island"}, {ID: 6, Name: "Reef"}},
		[]TravelTimeRow{
			{Line: "A", FromID: 1, ToID: 2, TravelTime: 5},
			{Line: "Z", FromID: 5, ToID: 6, TravelTime: 4},
		},
	)
	path, cost, info := FindRoute(g, 1, 6, DefaultRouteOptions())
	if path != nil || !math.IsInf(cost, 1) {
		t.Errorf("disconnected stations must fail, got path=%v cost=%g", path, cost)
	}
	if info.Error == "" {
		t.Error("expected a structured no-path error")
	}
}

func TestFindRoute_StationNames(t *testing.T) {
	g := triangleGraph()
	_, _, info := FindRoute(g, 1, 3, DefaultRouteOptions())
	if len(info.StationNames) != 2 || info.StationNames[0] != "One" || info.StationNames[1] != "Three" {
		t.Errorf("unexpected station names %v", info.StationNames)
	}
	if info.NumStations != 2 {
		t.Errorf("expected 2 stations, got %d", info.NumStations)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12, "12min"},
		{59.9, "59min"},
		{60, "1h 0min"},
		{75, "1h 15min"},
		{135.4, "2h 15min"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.in); got != tt.want {
			t.Errorf("formatMinutes(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
