package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port string

	// CORS origins allowed to call the API (the trip planner frontend).
	AllowedOrigins []string

	// Trip source: "file" reads TripDataPath, "http" fetches TripDataURL.
	TripSource   string
	TripDataPath string
	TripDataURL  string
	TripTimeout  time.Duration

	// Manual record store backend
	RecordsBackend string
	SQLiteDBPath   string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// AMQP (record events for the export worker)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets export (worker only)
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8082"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		TripSource:   getEnv("TRIP_SOURCE", "file"),
		TripDataPath: getEnv("TRIP_DATA_PATH", "./data/trip.json"),
		TripDataURL:  getEnv("TRIP_DATA_URL", ""),
		TripTimeout:  getEnvDuration("TRIP_TIMEOUT", 10*time.Second),

		RecordsBackend: getEnv("RECORDS_BACKEND", "memory"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/tripledger.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "tripledger"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "record_events"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Records"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.TripSource {
	case "file":
		if c.TripDataPath == "" {
			errs = append(errs, "trip data path cannot be empty when using file trip source")
		}
	case "http":
		if c.TripDataURL == "" {
			errs = append(errs, "TRIP_DATA_URL is required when using http trip source")
		} else if u, err := url.Parse(c.TripDataURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Sprintf("invalid trip data URL '%s'", c.TripDataURL))
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid trip source '%s': must be one of [file http]", c.TripSource))
	}

	validBackends := []string{"memory", "sqlite", "redis"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.RecordsBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid records backend '%s': must be one of %v", c.RecordsBackend, validBackends))
	}

	if c.RecordsBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.RecordsBackend == "redis" && c.RedisAddr == "" {
		errs = append(errs, "REDIS_ADDR cannot be empty when using redis backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.TripTimeout < time.Second || c.TripTimeout > time.Minute {
		errs = append(errs, fmt.Sprintf("invalid trip timeout %v: must be between 1s and 1m", c.TripTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// ValidateExport checks the additional settings the export worker needs.
func (c *Config) ValidateExport() error {
	var errs []string

	if c.AMQPURL == "" {
		errs = append(errs, "AMQP_URL is required for the export worker")
	}
	if c.GoogleSpreadsheetID == "" {
		errs = append(errs, "GOOGLE_SPREADSHEET_ID is required for the export worker")
	}
	if c.GoogleSheetName == "" {
		errs = append(errs, "Google sheet name cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("export configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
