package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, level, streak and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			rec := svc.Record()
			level := engine.LevelForPoints(rec.Points)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Your Progress"))
			fmt.Fprintln(out, ui.LabelValue("Points", rec.Points))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%s %s", ui.Gold.Render(level.Name), ui.Muted.Render(level.Description))))
			if next := engine.NextLevel(rec.Points); next != nil {
				fmt.Fprintln(out, ui.LabelValue("Next level", fmt.Sprintf("%s at %d points (%d to go)", next.Name, next.MinPoints, next.MinPoints-rec.Points)))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, rec.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Audits completed", len(rec.AuditHistory)))
			fmt.Fprintln(out, ui.LabelValue("Challenge days", fmt.Sprintf("%d/%d", rec.CompletedDays(), engine.PlanLength)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, def := range engine.Badges() {
				st := rec.Badge(def.ID)
				if st != nil && st.Unlocked {
					fmt.Fprintf(out, "- %s %s %s\n", ui.IconDone, ui.Gold.Render(def.Name), ui.Muted.Render(def.Description))
				} else {
					fmt.Fprintf(out, "- %s %s %s\n", ui.IconLock, def.Name, ui.Muted.Render(def.Description))
				}
			}
			fmt.Fprintln(out, "")

			switch {
			case rec.QuizCompleted:
				fmt.Fprintln(out, ui.LabelValue("Bonus quiz", ui.Good.Render("completed")))
			case rec.Points >= engine.PlatinumThreshold:
				fmt.Fprintln(out, ui.LabelValue("Bonus quiz", ui.Gold.Render("unlocked, run `ergo quiz`")))
			default:
				fmt.Fprintln(out, ui.LabelValue("Bonus quiz", ui.Muted.Render(fmt.Sprintf("locked until %d points", engine.PlatinumThreshold))))
			}

			if svc.Detached() {
				fmt.Fprintln(out, ui.Warn.Render("Running detached: this session is not being saved."))
			}
			return nil
		},
	}

	return cmd
}
