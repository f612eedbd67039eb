package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/theoremus-urban-solutions/transport-watcher/network"
)

// Repository provides snapshot access to the transport tables.
type Repository struct {
	db *gorm.DB
}

// Open connects to the relational store and runs schema migration for the
// tables this service owns.
func Open(dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, fmt.Errorf("storage: empty dsn")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	if err := db.AutoMigrate(&Station{}, &Schedule{}, &Prediction{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &Repository{db: db}, nil
}

// NewRepository wraps an existing gorm handle (used by tests).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FetchStations returns the full station reference snapshot as routing-core
// records.
func (r *Repository) FetchStations(ctx context.Context) ([]network.StationRecord, error) {
	var rows []Station
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("storage: fetch stations: %w", err)
	}
	out := make([]network.StationRecord, len(rows))
	for i, s := range rows {
		out[i] = s.NetworkRecord()
	}
	return out, nil
}

// FetchSchedules returns the full schedule snapshot as routing-core entries.
func (r *Repository) FetchSchedules(ctx context.Context) ([]network.ScheduleEntry, error) {
	var rows []Schedule
	if err := r.db.WithContext(ctx).Order("journey_id, timestamp").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("storage: fetch schedules: %w", err)
	}
	out := make([]network.ScheduleEntry, len(rows))
	for i, s := range rows {
		out[i] = s.NetworkEntry()
	}
	return out, nil
}

// Health checks database connectivity.
func (r *Repository) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
