package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm/clause"
)

// ImportReport summarizes one CSV import run. Malformed rows are dropped,
// not fatal: ingestion favors partial success over total failure.
type ImportReport struct {
	Imported int
	Dropped  int
}

// ImportStationsCSV upserts station reference rows from a CSV stream with
// header id,name,latitude,longitude.
func (r *Repository) ImportStationsCSV(ctx context.Context, src io.Reader) (ImportReport, error) {
	rows, report, err := parseStationsCSV(src)
	if err != nil {
		return report, err
	}
	if len(rows) == 0 {
		return report, nil
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, 500).Error
	if err != nil {
		return report, fmt.Errorf("storage: import stations: %w", err)
	}
	log.Printf("storage: imported %d stations (%d rows dropped)", report.Imported, report.Dropped)
	return report, nil
}

// ImportSchedulesCSV appends schedule rows from a CSV stream with header
// transport_id,station_id,next_station_id,timestamp,journey_id. An empty
// next_station_id marks the last stop of a journey.
func (r *Repository) ImportSchedulesCSV(ctx context.Context, src io.Reader) (ImportReport, error) {
	rows, report, err := parseSchedulesCSV(src)
	if err != nil {
		return report, err
	}
	if len(rows) == 0 {
		return report, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		return report, fmt.Errorf("storage: import schedules: %w", err)
	}
	log.Printf("storage: imported %d schedule rows (%d dropped)", report.Imported, report.Dropped)
	return report, nil
}

func parseStationsCSV(src io.Reader) ([]Station, ImportReport, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("storage: stations csv: %w", err)
	}
	col := columnIndex(header)

	var out []Station
	var report ImportReport
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Dropped++
			continue
		}
		id, err1 := strconv.Atoi(field(record, col, "id"))
		lat, err2 := strconv.ParseFloat(field(record, col, "latitude"), 64)
		lon, err3 := strconv.ParseFloat(field(record, col, "longitude"), 64)
		name := field(record, col, "name")
		if err1 != nil || err2 != nil || err3 != nil || name == "" {
			report.Dropped++
			continue
		}
		out = append(out, Station{ID: id, Name: name, Latitude: lat, Longitude: lon})
		report.Imported++
	}
	return out, report, nil
}

func parseSchedulesCSV(src io.Reader) ([]Schedule, ImportReport, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("storage: schedules csv: %w", err)
	}
	col := columnIndex(header)

	var out []Schedule
	var report ImportReport
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Dropped++
			continue
		}
		stationID, err1 := strconv.Atoi(field(record, col, "station_id"))
		journeyID, err2 := strconv.Atoi(field(record, col, "journey_id"))
		transportID := field(record, col, "transport_id")
		timestamp := field(record, col, "timestamp")
		if err1 != nil || err2 != nil || transportID == "" || timestamp == "" {
			report.Dropped++
			continue
		}
		var next *int
		if raw := field(record, col, "next_station_id"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				report.Dropped++
				continue
			}
			next = &v
		}
		out = append(out, Schedule{
			TransportID:   transportID,
			StationID:     stationID,
			NextStationID: next,
			Timestamp:     timestamp,
			JourneyID:     journeyID,
		})
		report.Imported++
	}
	return out, report, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
