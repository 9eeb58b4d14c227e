package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed audits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			history := svc.Record().AuditHistory
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Audit History"))
			if len(history) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No audits yet. Run `ergo board` or `ergo audit complete`."))
				return nil
			}

			for i, res := range history {
				fmt.Fprintf(out, "%2d. %s  score %s  %s\n",
					i+1,
					res.Date.Local().Format(time.DateTime),
					ui.ScoreText(res.Score),
					ui.Muted.Render(fmt.Sprintf("%d unmet item(s)", len(res.Unchecked))))
			}

			first, last := history[0].Score, history[len(history)-1].Score
			if len(history) > 1 && last != first {
				diff := last - first
				trend := ui.Good.Render(fmt.Sprintf("+%d", diff))
				if diff < 0 {
					trend = ui.Bad.Render(fmt.Sprintf("%d", diff))
				}
				fmt.Fprintln(out, "")
				fmt.Fprintf(out, "Change since first audit: %s points\n", trend)
			}
			return nil
		},
	}

	return cmd
}
