package storage

import (
	"context"
	"fmt"
	"time"
)

// LatestPredictions returns the most recent forecast total per station.
// Only the aggregate magnitude matters to the congestion weighter; the
// forecaster may write several horizons but the newest row wins.
func (r *Repository) LatestPredictions(ctx context.Context) (map[int]float64, error) {
	var rows []Prediction
	err := r.db.WithContext(ctx).
		Raw(`SELECT p.* FROM station_prediction p
		     JOIN (SELECT station_id, MAX(created_at) AS created_at
		           FROM station_prediction GROUP BY station_id) latest
		     ON p.station_id = latest.station_id AND p.created_at = latest.created_at`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("storage: latest predictions: %w", err)
	}
	out := make(map[int]float64, len(rows))
	for _, p := range rows {
		out[p.StationID] = p.Total
	}
	return out, nil
}

// SavePredictions stores a batch of forecast totals, stamped with a shared
// creation time so a batch replaces the previous one atomically per station.
func (r *Repository) SavePredictions(ctx context.Context, totals map[int]float64) error {
	if len(totals) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]Prediction, 0, len(totals))
	for stationID, total := range totals {
		rows = append(rows, Prediction{StationID: stationID, Total: total, CreatedAt: now})
	}
	if err := r.db.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("storage: save predictions: %w", err)
	}
	return nil
}
