package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

func newCheckCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check <habit-id>",
		Short: "Mark a habit complete for the viewing day",
		Long: `Mark a habit complete (or undo it with --undo) for the viewing day.

Completing a habit credits its points to your power. By default only today
is editable; past days settle against you once they are over. With
allow_past_edits set in the config a settled day can still be edited, and
each edit corrects that day's settlement.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit-id is required")
			}
			if _, ok := engine.LookupHabit(args[0]); !ok {
				return fmt.Errorf("unknown habit %q (see 'dg habits')", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.Toggle(ctx, args[0], !undo)
			out := cmd.OutOrStdout()
			if !res.Applied {
				st := svc.State()
				if !st.ViewingToday() {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Only today can be edited. Use 'dg day today' to jump back."))
					return nil
				}
				fmt.Fprintln(out, ui.Muted.Render("Nothing to change."))
				return nil
			}

			if res.Completed {
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"),
					res.Habit.Icon, res.Habit.Name,
					ui.Muted.Render(fmt.Sprintf("(+%d power)", res.UserDelta)))
			} else {
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Warn.Render("↩ Undone"),
					res.Habit.Icon, res.Habit.Name,
					ui.Muted.Render(fmt.Sprintf("(%d power)", res.UserDelta)))
			}
			if res.Corrected {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Settled day corrected: shadow %+d", res.ShadowDelta)))
			}

			st := svc.State()
			b := engine.Balance(st)
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("you %d%% / shadow %d%%", b.UserPct, b.ShadowPct)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Un-complete the habit instead")

	return cmd
}
