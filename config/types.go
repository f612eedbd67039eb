package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// DatabaseConfig points at the relational store holding the station,
// schedule and prediction snapshots
type DatabaseConfig struct {
	DSN string `yaml:"dsn" validate:"omitempty"`
}

// GraphConfig controls graph persistence and the routing parameters
type GraphConfig struct {
	BaseNetworkPath     string `yaml:"baseNetworkPath" validate:"omitempty"`
	WeightedNetworkPath string `yaml:"weightedNetworkPath" validate:"omitempty"`

	TransferPenalty    float64 `yaml:"transferPenalty" validate:"gte=0"`
	WeightFactor       float64 `yaml:"weightFactor" validate:"gte=0"`
	BasePenalty        float64 `yaml:"basePenalty" validate:"gte=0"`
	TransferMultiplier float64 `yaml:"transferMultiplier" validate:"gte=0"`

	MaxWalkDistanceKM     float64 `yaml:"maxWalkDistanceKm" validate:"gte=0"`
	WalkingSpeedKMH       float64 `yaml:"walkingSpeedKmh" validate:"gte=0"`
	UpdateIntervalMinutes int     `yaml:"updateIntervalMinutes" validate:"gte=0"`
}

// LinesConfig locates the line display-metadata table
type LinesConfig struct {
	TablePath string `yaml:"tablePath" validate:"omitempty"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Graph    GraphConfig    `yaml:"graph"`
	Lines    LinesConfig    `yaml:"lines"`
}
