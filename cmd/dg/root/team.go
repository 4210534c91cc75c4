package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show your team's daily score and standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			if st.Team == nil {
				fmt.Fprintln(out, ui.Muted.Render("No team yet. Try 'dg team create <name>' or 'dg team join <code>'."))
				return nil
			}

			stats := engine.TeamStatsFor(st)
			fmt.Fprintln(out, ui.Heading(ui.IconTeam, st.Team.Name))
			fmt.Fprintln(out, ui.LabelValue("Code", ui.Muted.Render(st.Team.ID)))
			fmt.Fprintln(out, ui.LabelValue("Daily score", fmt.Sprintf("%d/%d (%s, ×%.2f)", stats.DailyScore, stats.MaxScore, stats.Grade, stats.Multiplier)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Members"))
			for _, m := range engine.MemberScores(st) {
				fmt.Fprintf(out, "- %s %s\n", m.Name, ui.Muted.Render(fmt.Sprintf("%d pts", m.Score)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Leaderboard"))
			for _, e := range engine.Leaderboard(st) {
				line := fmt.Sprintf("#%d %s — %d pts", e.Rank, e.Name, e.Score)
				if e.Own {
					line = ui.Gold.Render(line)
				}
				fmt.Fprintln(out, "- "+line)
			}
			return nil
		},
	}

	cmd.AddCommand(newTeamCreateCmd(), newTeamJoinCmd())

	return cmd
}

func newTeamCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a team",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("team name is required")
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

			team, err := svc.CreateTeam(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s created. Share code: %s\n",
				ui.Good.Render(ui.IconTeam+" Team"), team.Name, ui.Key.Render(team.ID))
			return nil
		},
	}
}

func newTeamJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a team by code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("team code is required")
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

			team, err := svc.JoinTeam(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Joined %s.\n", ui.Good.Render(ui.IconTeam), team.Name)
			return nil
		},
	}
}
