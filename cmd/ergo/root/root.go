package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ergo",
	Short:         "ERGONOMIA7 — workstation ergonomics audit and coaching",
	Long:          "ERGONOMIA7 audits your workstation against a weighted ergonomics checklist,\nranks the health risks it finds and tracks your improvement with points,\nbadges, streaks and a 10-day challenge plan.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAuditCmd(),
		newBoardCmd(),
		newFindingsCmd(),
		newStatusCmd(),
		newPlanCmd(),
		newExercisesCmd(),
		newArticlesCmd(),
		newQuizCmd(),
		newHistoryCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
