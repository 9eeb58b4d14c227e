package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive audit checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunAudit(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
