package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newExercisesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Browse and complete desk exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercisesList(cmd)
		},
	}

	cmd.AddCommand(newExercisesListCmd(), newExercisesDoneCmd())
	return cmd
}

func newExercisesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the exercise library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercisesList(cmd)
		},
	}
}

func runExercisesList(cmd *cobra.Command) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	rec := svc.Record()
	done := make(map[string]bool, len(rec.CompletedExercises))
	for _, id := range rec.CompletedExercises {
		done[id] = true
	}

	fmt.Fprintln(out, ui.Heading(ui.IconMuscle, "Exercise Library"))
	fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d (badge at %d)", len(rec.CompletedExercises), engine.ExerciseBadgeThreshold)))
	fmt.Fprintln(out, "")

	for _, cat := range engine.ExerciseLibrary() {
		fmt.Fprintln(out, ui.H2.Render(cat.Title))
		for _, ex := range cat.Exercises {
			mark := ui.Muted.Render("[ ]")
			if done[ex.ID] {
				mark = ui.Good.Render("[x]")
			}
			fmt.Fprintf(out, "%s %s  %s %s\n", mark, ui.Key.Render(ex.ID), ex.Name, ui.Muted.Render(fmt.Sprintf("(%ds)", ex.Duration)))
			fmt.Fprintln(out, "       "+ui.Muted.Render(ex.Description))
		}
		fmt.Fprintln(out, "")
	}
	return nil
}

func newExercisesDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <exercise-id>",
		Short: "Record a finished exercise (25 points, first time only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.CompleteExercise(ctx, args[0])
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was already completed, nothing new to award.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s completed.\n", ui.IconDone, args[0])
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}
