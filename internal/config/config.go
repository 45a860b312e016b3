package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MaxWebhookDeadline is the longest the card network waits for a decision.
const MaxWebhookDeadline = 2 * time.Second

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Schema          string
	SQLitePath      string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// EngineConfig holds decisioning configuration
type EngineConfig struct {
	// WebhookDeadline bounds the time from webhook receipt to response.
	WebhookDeadline time.Duration
	// StoreRetryBackoff is the pause before the single retry of a transient
	// store error.
	StoreRetryBackoff time.Duration
	// FailClosedTimeout bounds persisting a fail-closed decline after the
	// request deadline has fired.
	FailClosedTimeout time.Duration
}

// AuthConfig holds webhook signing and read API token configuration
type AuthConfig struct {
	WebhookSecret      string
	SignatureTolerance time.Duration
	JWTSecret          string
	JWTIssuer          string
	JWTExpiresIn       time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load loads configuration from environment variables with sensible defaults.
// Variables from a .env file in the working directory are applied first
// without overriding the real environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "5s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "10s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "authengine"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Schema:          getEnv("DB_SCHEMA", ""),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "authengine.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Engine: EngineConfig{
			WebhookDeadline:   getEnvAsDuration("WEBHOOK_DEADLINE", "1800ms"),
			StoreRetryBackoff: getEnvAsDuration("STORE_RETRY_BACKOFF", "50ms"),
			FailClosedTimeout: getEnvAsDuration("FAIL_CLOSED_TIMEOUT", "150ms"),
		},
		Auth: AuthConfig{
			WebhookSecret:      getEnv("WEBHOOK_SIGNING_SECRET", ""),
			SignatureTolerance: getEnvAsDuration("WEBHOOK_SIGNATURE_TOLERANCE", "5m"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			JWTIssuer:          getEnv("JWT_ISSUER", "authengine"),
			JWTExpiresIn:       getEnvAsDuration("JWT_EXPIRES_IN", "24h"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host cannot be empty")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name cannot be empty")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path cannot be empty")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s (must be postgres or sqlite)", c.Database.Driver)
	}

	if c.Engine.WebhookDeadline <= 0 || c.Engine.WebhookDeadline > MaxWebhookDeadline {
		return fmt.Errorf("webhook deadline must be in (0, %s], got %s", MaxWebhookDeadline, c.Engine.WebhookDeadline)
	}
	if c.Engine.StoreRetryBackoff < 0 {
		return fmt.Errorf("store retry backoff cannot be negative")
	}
	if c.Engine.StoreRetryBackoff >= c.Engine.WebhookDeadline {
		return fmt.Errorf("store retry backoff (%s) must be shorter than the webhook deadline (%s)",
			c.Engine.StoreRetryBackoff, c.Engine.WebhookDeadline)
	}
	if c.Engine.FailClosedTimeout <= 0 {
		return fmt.Errorf("fail-closed timeout must be positive")
	}

	if c.Auth.SignatureTolerance <= 0 {
		return fmt.Errorf("webhook signature tolerance must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return "file:" + c.SQLitePath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_time_format=sqlite"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
	if c.Schema != "" {
		dsn += " search_path=" + c.Schema
	}
	return dsn
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
