// Package cli wires the authengine commands: the HTTP server and the
// operator tools for schema migration, fixture seeding, ledger inspection
// and read API tokens.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fleetcard/authengine/internal/config"
	"github.com/fleetcard/authengine/internal/db"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// load reads the configuration and builds the logger. Operator commands log
// to stderr so their stdout stays readable.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	out := cmd.ErrOrStderr()
	if cmd.Name() == "serve" {
		out = cmd.OutOrStdout()
	}
	a.logger = cfg.Logger.NewLoggerTo(out)
	slog.SetDefault(a.logger)
	return nil
}

// connect opens the configured database. The caller closes it.
func (a *app) connect(ctx context.Context) (*db.DB, error) {
	database, err := db.Connect(ctx, &a.cfg.Database, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// NewRootCmd builds the authengine command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "authengine",
		Short: "Real-time card authorization decisioning for fleet cards",
		Long: `authengine answers card network authorization webhooks within the
network deadline, enforcing per-cardholder spending limits, card overrides
and merchant category rules against a persistent ledger.`,
		Version:           version,
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newLedgerCmd(a))
	root.AddCommand(newTokenCmd(a))

	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
