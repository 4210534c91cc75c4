package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/ui"
)

func newSkipDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skip-day",
		Short: "Settle today immediately and advance to tomorrow",
		Long: `Settle the current day as if it just ended, advance the calendar by one
day, and move the viewing cursor to the new today.

This is the fast way to see what a missed day costs without waiting for
midnight.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.AdvanceDay(ctx)
			out := cmd.OutOrStdout()
			if res.Applied {
				fmt.Fprintf(out, "%s %s settled at %s tier: %s, shadow +%d\n",
					ui.Warn.Render(ui.IconBolt+" Day over."),
					res.DateKey,
					ui.TierText(string(res.Tier)),
					ui.Bad.Render(fmt.Sprintf("-%d power", res.Punishment)),
					res.MissedPoints)
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Day was already settled."))
			}
			fmt.Fprintln(out, ui.LabelValue("Today", svc.State().Today))
			return nil
		},
	}

	return cmd
}
