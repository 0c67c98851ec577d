package config

import "fmt"

// ValidationError describes a config value that failed validation, with the
// file-path of the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config value for %s: %s", e.Field, e.Message)
}

var (
	validLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// ValidateConfig checks the configuration for out-of-range values.
func ValidateConfig(cfg *Config) error {
	if cfg.Control.Label == "" {
		return &ValidationError{Field: "control.label", Message: "must not be empty"}
	}
	if cfg.Control.MarginX < 0 {
		return &ValidationError{Field: "control.margin_x", Message: "must be >= 0"}
	}
	if cfg.Control.MarginY < 0 {
		return &ValidationError{Field: "control.margin_y", Message: "must be >= 0"}
	}
	if !validLevels[cfg.Logging.Level] {
		return &ValidationError{Field: "logging.level", Message: "must be one of trace, debug, info, warn, error"}
	}
	if !validFormats[cfg.Logging.Format] {
		return &ValidationError{Field: "logging.format", Message: "must be one of console, json"}
	}
	return nil
}
