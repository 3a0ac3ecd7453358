package backend

import (
	"fmt"

	appconfig "tripledger/internal/config"
)

// Config holds configuration for record store creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Redis specific
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *appconfig.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.RecordsBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid records backend in config: %s", appConfig.RecordsBackend)
	}

	return Config{
		Type:          backendType,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	}, nil
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case RedisBackend:
		if c.RedisAddr == "" {
			return fmt.Errorf("Redis address is required for redis backend")
		}
	case MemoryBackend:
		// Nothing to validate.
	}

	return nil
}
