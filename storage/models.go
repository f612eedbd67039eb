// Package storage reads and writes the relational snapshots the route
// engine is built from: station reference data, timetabled schedules and
// the per-station load predictions produced by the external forecaster.
package storage

import (
	"time"

	"github.com/theoremus-urban-solutions/transport-watcher/network"
)

// Station is a row of the station reference table.
type Station struct {
	ID        int     `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
}

func (Station) TableName() string { return "station" }

// Schedule is a row of the timetable: one timestamped stop of one journey.
// NextStationID is NULL on the last stop of a journey.
type Schedule struct {
	ID            int    `gorm:"column:id;primaryKey;autoIncrement"`
	TransportID   string `gorm:"column:transport_id;index"`
	StationID     int    `gorm:"column:station_id;index"`
	NextStationID *int   `gorm:"column:next_station_id"`
	Timestamp     string `gorm:"column:timestamp"` // time of day, HH:MM:SS
	JourneyID     int    `gorm:"column:journey_id;index"`
}

func (Schedule) TableName() string { return "schedule" }

// Prediction is one forecast total for a station, written by the external
// ARIMA forecaster. Only the latest row per station matters to the weighter.
type Prediction struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	StationID int       `gorm:"column:station_id;index"`
	Total     float64   `gorm:"column:total"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Prediction) TableName() string { return "station_prediction" }

// NetworkRecord converts a station row to the routing core's input type.
func (s Station) NetworkRecord() network.StationRecord {
	return network.StationRecord{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

// NetworkEntry converts a schedule row to the routing core's input type,
// mapping a NULL next station to the core's negative sentinel.
func (s Schedule) NetworkEntry() network.ScheduleEntry {
	next := -1
	if s.NextStationID != nil {
		next = *s.NextStationID
	}
	return network.ScheduleEntry{
		JourneyID:     s.JourneyID,
		Line:          s.TransportID,
		StationID:     s.StationID,
		NextStationID: next,
		Timestamp:     s.Timestamp,
	}
}
