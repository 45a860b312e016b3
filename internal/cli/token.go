package cli

import (
	"fmt"

	"github.com/fleetcard/authengine/internal/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Issue a bearer token for the read API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.NewTokenService(a.cfg.Auth).GenerateToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
