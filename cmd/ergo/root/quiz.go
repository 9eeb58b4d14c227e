package root

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the Platinum bonus quiz (500 points, once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			rec := svc.Record()
			if rec.Points < engine.PlatinumThreshold {
				return engine.QuizLockedError{PointsNeeded: engine.PlatinumThreshold - rec.Points}
			}
			if rec.QuizCompleted {
				fmt.Fprintln(out, "You have already completed the bonus quiz.")
				return nil
			}

			questions := engine.QuizQuestions()
			fmt.Fprintln(out, ui.Heading(ui.IconBrain, "Bonus Quiz"))
			fmt.Fprintln(out, ui.Muted.Render("Answer with the option number. The reward is for finishing, not for a perfect score."))
			fmt.Fprintln(out, "")

			reader := bufio.NewReader(cmd.InOrStdin())
			correct := 0
			for i, q := range questions {
				fmt.Fprintf(out, "%d. %s\n", i+1, ui.Key.Render(q.Prompt))
				for oi, opt := range q.Options {
					fmt.Fprintf(out, "   %d) %s\n", oi+1, opt)
				}
				fmt.Fprint(out, "> ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				pick, err := strconv.Atoi(strings.TrimSpace(line))
				if err == nil && pick-1 == q.Answer {
					correct++
					fmt.Fprintln(out, ui.Good.Render("Correct!"))
				} else {
					fmt.Fprintf(out, "%s The answer was: %s\n", ui.Bad.Render("Not quite."), q.Options[q.Answer])
				}
				fmt.Fprintln(out, "")
			}

			fmt.Fprintf(out, "You got %d/%d right.\n", correct, len(questions))
			events, err := svc.CompleteQuizBonus(ctx)
			if err != nil {
				return err
			}
			printEvents(out, events)
			return nil
		},
	}

	return cmd
}
