package network

import (
	"math"
)

const earthRadiusKM = 6371.0

// AccessPoint describes the walkable station nearest to a query point.
type AccessPoint struct {
	StationID       int     `json:"station_id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	WalkingDistance float64 `json:"walking_distance"` // meters
	WalkingDuration float64 `json:"walking_duration"` // minutes
}

// FindNearestStation returns the coordinate-bearing node closest to the
// query point within maxDistanceKm, or nil when no station is in range.
// A nil result is a normal "no coverage" outcome, not an error.
func FindNearestStation(lat, lon float64, g *Graph, maxDistanceKm, walkingSpeedKmh float64) *AccessPoint {
	var nearest *AccessPoint
	minDist := math.Inf(1)

	for _, n := range g.Nodes {
		if !n.HasCoordinates {
			continue
		}
		dist := HaversineMeters(lat, lon, n.Latitude, n.Longitude)
		if dist <= maxDistanceKm*1000 && dist < minDist {
			minDist = dist
			nearest = &AccessPoint{
				StationID:       n.ID,
				Name:            n.Name,
				Latitude:        n.Latitude,
				Longitude:       n.Longitude,
				WalkingDistance: dist,
				WalkingDuration: (dist / 1000) / walkingSpeedKmh * 60,
			}
		}
	}
	return nearest
}

// HaversineMeters is the great-circle distance between two points in meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))
	return c * earthRadiusKM * 1000
}
