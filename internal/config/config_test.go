package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 1800*time.Millisecond, cfg.Engine.WebhookDeadline)
	assert.Equal(t, 50*time.Millisecond, cfg.Engine.StoreRetryBackoff)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/engine.db")
	t.Setenv("WEBHOOK_DEADLINE", "1s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, time.Second, cfg.Engine.WebhookDeadline)
	assert.Contains(t, cfg.Database.DSN(), "file:/tmp/engine.db?")
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver: DriverPostgres, Host: "db", Port: "5432", User: "engine", Password: "secret",
		DBName: "authengine", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=engine password=secret dbname=authengine sslmode=disable", cfg.DSN())

	cfg.Schema = "authengine_test"
	assert.Equal(t, "host=db port=5432 user=engine password=secret dbname=authengine sslmode=disable search_path=authengine_test", cfg.DSN())
}

func TestLoad_RejectsDeadlineAboveNetworkLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WEBHOOK_DEADLINE", "3s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook deadline")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Driver: DriverPostgres, Host: "localhost", DBName: "authengine"},
			Engine: EngineConfig{
				WebhookDeadline:   time.Second,
				StoreRetryBackoff: 10 * time.Millisecond,
				FailClosedTimeout: 100 * time.Millisecond,
			},
			Auth:   AuthConfig{SignatureTolerance: time.Minute},
			Logger: LoggerConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, errMsg: "server port"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, errMsg: "unsupported database driver"},
		{name: "sqlite without path", mutate: func(c *Config) {
			c.Database.Driver = DriverSQLite
			c.Database.SQLitePath = ""
		}, errMsg: "sqlite path"},
		{name: "zero deadline", mutate: func(c *Config) { c.Engine.WebhookDeadline = 0 }, errMsg: "webhook deadline"},
		{name: "backoff longer than deadline", mutate: func(c *Config) { c.Engine.StoreRetryBackoff = 2 * time.Second }, errMsg: "backoff"},
		{name: "bad log level", mutate: func(c *Config) { c.Logger.Level = "trace" }, errMsg: "log level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logger.Format = "xml" }, errMsg: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoggerConfig_NewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	cfg := LoggerConfig{Level: "warn", Format: "json"}
	logger := cfg.NewLoggerTo(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "external_id", "iauth_1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "authengine", entry["service"])
	assert.Equal(t, "iauth_1", entry["external_id"])
}
