package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newFindingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findings",
		Short: "Show the ranked health risks of the current checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			findings := svc.LiveFindings()
			fmt.Fprintln(out, ui.Heading(ui.IconWarn, "Findings"))
			if len(findings) == 0 {
				fmt.Fprintln(out, ui.Good.Render("No issues: every applicable item is checked."))
				return nil
			}

			for i, f := range findings {
				fmt.Fprintf(out, "%d. %s %s %s\n", i+1, ui.UrgencyText(string(f.Urgency)), ui.Key.Render(f.Name), ui.Muted.Render(fmt.Sprintf("(%d item(s))", f.Count)))
				for _, effect := range f.Effects {
					fmt.Fprintln(out, "   "+ui.Muted.Render("risk: "+effect))
				}
				for _, action := range f.ActionItems {
					fmt.Fprintln(out, "   - "+action)
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}
