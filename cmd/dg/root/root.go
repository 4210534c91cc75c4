package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/p119ro/dopelganger/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "dg",
	Short:         "Dopelganger — habit tracker where your shadow feeds on missed days",
	Long:          "Dopelganger is a local-first habit tracker. Completed habits power you up; every habit you miss powers up your shadow, and the higher you have climbed, the harder a missed day hits.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log settlement and persistence events")

	rootCmd.AddCommand(
		newStatusCmd(),
		newHabitsCmd(),
		newCheckCmd(),
		newDayCmd(),
		newBattleCmd(),
		newTeamCmd(),
		newBoardCmd(),
		newSkipDayCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
