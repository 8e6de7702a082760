package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"sqlite":   true,
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"}.Error())
	}
	if !supportedDrivers[cfg.DBDriver] {
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}
	if cfg.DBDriver == "sqlite" && cfg.DBPath == "" {
		errs = append(errs, ValidationError{"DB_PATH", "is required for sqlite"}.Error())
	}
	if cfg.SessionTTL <= 0 {
		errs = append(errs, ValidationError{"SESSION_TTL", "must be positive"}.Error())
	}

	// Sensitive values must be provided outside development
	if env == Production || env == CI {
		if cfg.JWTSecret == "" {
			errs = append(errs, ValidationError{"JWT_SECRET", "is required"}.Error())
		}
		if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "is required"}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
