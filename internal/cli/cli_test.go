package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/auth"
	"github.com/fleetcard/authengine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "cli-test-secret"

// setupEnv points the configuration at a fresh SQLite file.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("JWT_SECRET", testJWTSecret)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version")
	assert.Contains(t, out, "sqlite")

	// second run is a no-op
	_, err = execute(t, "migrate")
	require.NoError(t, err)
}

func TestSeedAndLedger(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "migrate")
	require.NoError(t, err)

	out, err := execute(t, "seed", "-f", "../seed/testdata/fleet.toml")
	require.NoError(t, err)
	assert.Equal(t, "seeded 1 businesses, 2 cardholders, 2 cards, 2 limits, 1 overrides, 2 category rules\n", out)

	out, err = execute(t, "ledger", "show", "ich_dana")
	require.NoError(t, err)
	assert.Contains(t, out, "cardholder ich_dana (America/New_York)")
	assert.Contains(t, out, "INTERVAL")

	var monthly string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "monthly") {
			monthly = line
		}
	}
	require.NotEmpty(t, monthly)
	assert.Contains(t, monthly, "500.00")
	assert.Contains(t, monthly, "cardholder")

	out, err = execute(t, "ledger", "rebuild", "ich_dana")
	require.NoError(t, err)
	assert.Contains(t, out, "windows for cardholder ich_dana")
	assert.Contains(t, out, "0.00")
}

func TestLedgerShow_UnknownCardholder(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "migrate")
	require.NoError(t, err)

	_, err = execute(t, "ledger", "show", "ich_missing")
	require.Error(t, err)
}

func TestSeed_Errors(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture file required")

	_, err = execute(t, "seed", "-f", "does-not-exist.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode fixture")
}

func TestToken(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "token", "dashboard")
	require.NoError(t, err)

	tokens := auth.NewTokenService(config.AuthConfig{
		JWTSecret:    testJWTSecret,
		JWTIssuer:    "authengine",
		JWTExpiresIn: time.Hour,
	})
	subject, err := tokens.ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "dashboard", subject)
}

func TestToken_RequiresSecret(t *testing.T) {
	setupEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "token", "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret is not configured")
}

func TestInvalidConfiguration(t *testing.T) {
	setupEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := execute(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
