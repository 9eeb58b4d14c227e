package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [audit-number]",
		Short: "Export an audit report as plaintext (latest by default)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one audit number")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("audit number must be an integer")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			history := svc.Record().AuditHistory
			if len(history) == 0 {
				return errors.New("no audits to export")
			}
			idx := len(history) - 1
			if len(args) == 1 {
				n, _ := strconv.Atoi(args[0])
				if n < 1 || n > len(history) {
					return fmt.Errorf("audit number out of range: %d", n)
				}
				idx = n - 1
			}

			report := engine.BuildReport(&history[idx])
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), report)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")
	return cmd
}
