package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show power, tier, streaks and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if name != "" {
				svc.SetUserName(ctx, name)
			}

			st := svc.State()
			out := cmd.OutOrStdout()

			who := st.UserName
			if who == "" {
				who = "Warrior"
			}
			lvl := engine.UserLevel(st.UserPower)
			tier := engine.TierFor(st.UserPower)
			b := engine.Balance(st)

			fmt.Fprintln(out, ui.Heading(ui.IconUser, who))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d/%d XP)", lvl.Level, lvl.Current, lvl.Next)))
			tierLine := ui.TierText(string(tier))
			if next, ok := engine.NextTierThreshold(st.UserPower); ok {
				tierLine += ui.Muted.Render(fmt.Sprintf(" (%d%% of band, next at %d)", engine.TierProgress(st.UserPower), next))
			} else {
				tierLine += ui.Muted.Render(" (top tier)")
			}
			fmt.Fprintln(out, ui.LabelValue("Tier", tierLine))
			fmt.Fprintln(out, ui.LabelValue("Power", fmt.Sprintf("you %d / shadow %d", st.UserPower, st.ShadowPower)))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(fmt.Sprintf("You %d%%", b.UserPct)),
				ui.PowerBar(b.UserPct, 30),
				ui.Bad.Render(fmt.Sprintf("%d%% Shadow", b.ShadowPct)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconStreak+" Streaks"))
			fmt.Fprintln(out, ui.LabelValue("Overall", engine.OverallStreak(st)))
			fmt.Fprintln(out, ui.LabelValue("Monthly points", engine.MonthlyPoints(st)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, a := range engine.Achievements(st) {
				marker := ui.Muted.Render("locked")
				if a.Earned {
					marker = ui.Good.Render("earned")
				}
				fmt.Fprintf(out, "- %s %s — %s (%s)\n", a.Icon, a.Name, ui.Muted.Render(a.Description), marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Set your profile name")

	return cmd
}
