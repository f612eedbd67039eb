// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Unset routing parameters fall back to the defaults the route engine was
// calibrated with.
package config
