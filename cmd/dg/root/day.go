package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [prev|next|today]",
		Short: "Move the viewing day (never past today)",
		Long: `Move the viewing day backwards or forwards. The cursor never passes today.

Each launch resets the cursor to today, so moving it mostly matters inside a
running 'dg board' session. With allow_past_edits set in the config the
cursor keeps its place across runs instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one of: prev, next, today")
			}
			if len(args) == 1 {
				switch args[0] {
				case "prev", "next", "today":
				default:
					return fmt.Errorf("unknown direction %q", args[0])
				}
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

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				switch args[0] {
				case "prev":
					svc.ChangeViewing(ctx, -1)
				case "next":
					if !svc.ChangeViewing(ctx, 1) {
						fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Already at today."))
					}
				case "today":
					// Walk forward until the clamp stops us.
					for svc.ChangeViewing(ctx, 1) {
					}
				}
			}

			st := svc.State()
			if st.ViewingToday() {
				fmt.Fprintln(out, ui.LabelValue("Viewing", "Today ("+st.Viewing+")"))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Viewing", st.Viewing))
			}
			return nil
		},
	}

	return cmd
}
