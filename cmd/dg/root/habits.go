package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List the habit catalog for the viewing day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			label := st.Viewing
			if st.ViewingToday() {
				label = "Today"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Habits — "+label))

			for _, h := range engine.Catalog {
				done := st.IsCompleted(st.Viewing, h.ID)
				streak := engine.HabitStreak(st, h.ID)
				fmt.Fprintf(out, "%s %s %s %s %s\n",
					ui.CheckIcon(done),
					h.Icon,
					h.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, %dp)", h.ID, h.Points)),
					ui.Warn.Render(fmt.Sprintf("streak %d", streak)))
			}

			sum := engine.SummarizeDay(st)
			fmt.Fprintln(out, "")
			if sum.Punishment > 0 {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d - %d = %d", sum.BasePoints, sum.Punishment, sum.NetScore)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Points", sum.BasePoints))
			}
			fmt.Fprintln(out, ui.LabelValue("Final score", sum.FinalScore))
			return nil
		},
	}

	return cmd
}
