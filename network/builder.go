package network

import (
	"fmt"
	"log"
)

// StationRecord is a row of the station reference table.
type StationRecord struct {
	ID        int
	Name      string
	Latitude  float64
	Longitude float64
}

func placeholderName(id int) string {
	return fmt.Sprintf("Station %d", id)
}

// BuildNetwork assembles the base graph: one node per station, one directed
// edge per averaged (line, station, next station) travel time. Stations
// referenced by the schedule but missing from the reference table get a
// placeholder node without coordinates; the two datasets are collected at
// different times and referential gaps are expected.
func BuildNetwork(stations []StationRecord, rows []TravelTimeRow) *Graph {
	g := NewGraph()

	for _, s := range stations {
		name := s.Name
		if name == "" {
			name = placeholderName(s.ID)
		}
		g.AddNode(&Node{
			ID:             s.ID,
			Name:           name,
			Latitude:       s.Latitude,
			Longitude:      s.Longitude,
			HasCoordinates: true,
		})
	}

	placeholders := 0
	ensure := func(id int) {
		if g.HasNode(id) {
			return
		}
		g.AddNode(&Node{ID: id, Name: placeholderName(id)})
		placeholders++
	}

	for _, r := range rows {
		if r.ToID < 0 {
			continue
		}
		ensure(r.FromID)
		ensure(r.ToID)
		g.AddEdge(&Edge{
			FromID:     r.FromID,
			ToID:       r.ToID,
			Line:       r.Line,
			TravelTime: r.TravelTime,
			Weight:     r.TravelTime,
		})
	}

	if placeholders > 0 {
		log.Printf("network: synthesized %d placeholder stations missing from the reference table", placeholders)
	}
	return g
}
