package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

func newBattleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Show the battle between you and your shadow",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			b := engine.Balance(st)
			battle := engine.Battle(st)

			fmt.Fprintln(out, ui.Heading(ui.IconBattle, "Weekly Battle"))
			fmt.Fprintln(out, ui.LabelValue("Status", battle.Status))
			fmt.Fprintf(out, "%s  HP %d%%  Power %d\n", ui.Good.Render(ui.IconUser+" You"), battle.UserHealth, b.UserPower)
			fmt.Fprintf(out, "%s HP %d%%  Power %d  Level %d\n",
				ui.Bad.Render(ui.IconShadow+" Shadow"), battle.ShadowHealth, b.ShadowPower, engine.ShadowLevel(st.ShadowPower))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(fmt.Sprintf("%d%%", b.UserPct)),
				ui.PowerBar(b.UserPct, 30),
				ui.Bad.Render(fmt.Sprintf("%d%%", b.ShadowPct)))
			return nil
		},
	}

	return cmd
}
