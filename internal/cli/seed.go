package cli

import (
	"errors"
	"fmt"

	"github.com/fleetcard/authengine/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load businesses, cardholders, cards, limits and category rules from a TOML fixture",
		Long: `Load configuration rows from a TOML fixture. Rows are upserted by id, so a
fixture can be applied repeatedly. The whole file is applied in one
transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("fixture file required: authengine seed -f <file>")
			}
			fixture, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			database, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			s, err := seed.Run(ctx, database, fixture)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", file, err)
			}

			a.logger.Info("fixture applied", "file", file)
			fmt.Fprintf(cmd.OutOrStdout(),
				"seeded %d businesses, %d cardholders, %d cards, %d limits, %d overrides, %d category rules\n",
				s.Businesses, s.Cardholders, s.Cards, s.Limits, s.Overrides, s.CategoryRules)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the TOML fixture")
	return cmd
}
