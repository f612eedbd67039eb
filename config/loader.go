package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return LoadAppConfigBytes(data)
}

// LoadAppConfigBytes parses and validates raw yaml configuration.
func LoadAppConfigBytes(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16180
	}
	g := &cfg.Graph
	if g.TransferPenalty == 0 {
		g.TransferPenalty = 5.0
	}
	if g.WeightFactor == 0 {
		g.WeightFactor = 0.1
	}
	if g.BasePenalty == 0 {
		g.BasePenalty = 5.0
	}
	if g.TransferMultiplier == 0 {
		g.TransferMultiplier = 2.0
	}
	if g.MaxWalkDistanceKM == 0 {
		g.MaxWalkDistanceKM = 10.0
	}
	if g.WalkingSpeedKMH == 0 {
		g.WalkingSpeedKMH = 4.5
	}
	if g.UpdateIntervalMinutes == 0 {
		g.UpdateIntervalMinutes = 60
	}
}
