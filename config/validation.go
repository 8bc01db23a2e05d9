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

// ValidateConfig checks that the values every environment must provide are set.
// The sensitive values (DB password, JWT secret) are required everywhere; the
// data directories always have defaults and are not validated.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"server port": cfg.ServerPort,
		"server host": cfg.ServerHost,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if cfg.DBPassword == "" {
		errors = append(errors, "db password is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "jwt secret is required")
	}
	if cfg.RedisHost == "" && cfg.RedisURL == "" {
		errors = append(errors, "redis host or redis url is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
