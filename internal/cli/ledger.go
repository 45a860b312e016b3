package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/spf13/cobra"
)

func newLedgerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and repair cardholder spend ledgers",
	}
	cmd.AddCommand(newLedgerShowCmd(a))
	cmd.AddCommand(newLedgerRebuildCmd(a))
	return cmd
}

func newLedgerShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show CARDHOLDER_ID",
		Short: "Show the current windows, limits and remaining spend of a cardholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			view, err := service.NewReportingService(database, a.logger).CardholderLedger(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cardholder %s (%s) as of %s\n\n",
				view.CardholderID, view.Timezone, view.AsOf.Format(time.RFC3339))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "INTERVAL\tWINDOW START\tWINDOW END\tSPENT\tLIMIT\tREMAINING\tSCOPE")
			for _, v := range view.Windows {
				limit, remaining, scope := "-", "-", "-"
				if v.Limit != nil {
					limit = api.MajorUnits(v.Limit.Amount)
					scope = string(v.Limit.Scope)
				}
				if v.Remaining != nil {
					remaining = api.MajorUnits(*v.Remaining)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					v.Window.Interval,
					formatWindowTime(v.Window.WindowStart),
					formatWindowEnd(v.Window.WindowEnd),
					api.MajorUnits(v.Window.AccumulatedAmount),
					limit, remaining, scope,
				)
			}
			return tw.Flush()
		},
	}
}

func newLedgerRebuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild CARDHOLDER_ID",
		Short: "Recompute a cardholder's current windows from approved transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			windows, err := service.NewReportingService(database, a.logger).RebuildLedger(ctx, args[0])
			if err != nil {
				return err
			}
			printWindows(cmd.OutOrStdout(), args[0], windows)
			return nil
		},
	}
}

func printWindows(w io.Writer, cardholderID string, windows []models.LedgerWindow) {
	fmt.Fprintf(w, "rebuilt %d windows for cardholder %s\n", len(windows), cardholderID)
	for _, win := range windows {
		fmt.Fprintf(w, "  %-8s %s\n", win.Interval, api.MajorUnits(win.AccumulatedAmount))
	}
}

func formatWindowTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func formatWindowEnd(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatWindowTime(*t)
}
