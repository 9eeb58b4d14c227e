package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Work with the 10-day challenge plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanList(cmd)
		},
	}

	cmd.AddCommand(
		newPlanListCmd(),
		newPlanDoneCmd(),
		newPlanUndoCmd(),
		newPlanResetCmd(),
	)
	return cmd
}

func newPlanListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the plan and its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanList(cmd)
		},
	}
}

func runPlanList(cmd *cobra.Command) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	rec := svc.Record()
	fmt.Fprintln(out, ui.Heading(ui.IconFire, "10-Day Challenge"))
	fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d/%d", rec.CompletedDays(), len(rec.Plan))))
	fmt.Fprintln(out, "")

	for _, day := range rec.Plan {
		mark := ui.Muted.Render("[ ]")
		suffix := ""
		if day.Completed {
			mark = ui.Good.Render("[x]")
			suffix = " " + ui.Muted.Render("("+day.CompletedDate+")")
		}
		fmt.Fprintf(out, "%s Day %2d  %s%s\n", mark, day.Day, ui.Key.Render(day.Title), suffix)
		fmt.Fprintln(out, "        "+ui.Muted.Render(day.Task))
	}
	return nil
}

func planDayArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("day number is required")
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return errors.New("day must be an integer")
	}
	return nil
}

func newPlanDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <day>",
		Short: "Complete one challenge day (one per calendar day)",
		Args:  planDayArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, _ := strconv.Atoi(args[0])
			events, err := svc.RecordChallengeDay(ctx, day-1)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Day %d completed.\n", ui.IconDone, day)
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newPlanUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <day>",
		Short: "Clear a day's completion (earned rewards stay)",
		Args:  planDayArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, _ := strconv.Atoi(args[0])
			events, err := svc.UncompleteChallengeDay(ctx, day-1)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %d is open again. Points already earned for it stay earned.\n", day)
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newPlanResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the stock 10-day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.ResetPlan(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Plan reset. Points and badges are untouched.")
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}
