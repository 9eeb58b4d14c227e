package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Work with the live audit checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditShow(cmd)
		},
	}

	cmd.AddCommand(
		newAuditShowCmd(),
		newAuditToggleCmd(),
		newAuditModeCmd(),
		newAuditAppliesCmd(),
		newAuditCompleteCmd(),
		newAuditLoadCmd(),
	)
	return cmd
}

func newAuditShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the checklist with its live score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditShow(cmd)
		},
	}
}

func runAuditShow(cmd *cobra.Command) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	res := svc.LiveScore()
	fmt.Fprintln(out, ui.Heading(ui.IconDesk, "Workstation Audit"))
	fmt.Fprintln(out, ui.LabelValue("Live score", ui.ScoreText(res.Score)))
	fmt.Fprintln(out, "")

	for _, sec := range svc.Sections() {
		header := sec.Title
		switch sec.Kind {
		case storage.SectionModed:
			header += fmt.Sprintf(" [mode: %s]", sec.Mode)
		case storage.SectionOptional:
			if sec.Applies {
				header += " [applies]"
			} else {
				header += " [not applicable]"
			}
		}
		fmt.Fprintln(out, ui.H2.Render(header))

		printItems := func(items []storage.ChecklistItem, active bool) {
			for _, it := range items {
				line := fmt.Sprintf("  %s %s  %s", ui.CheckMark(it.Checked), ui.Key.Render(it.ID), it.Text)
				if !active {
					line = fmt.Sprintf("  %s %s  %s", ui.CheckMark(it.Checked), ui.Muted.Render(it.ID), ui.Muted.Render(it.Text))
				}
				fmt.Fprintln(out, line)
			}
		}
		switch sec.Kind {
		case storage.SectionModed:
			printItems(sec.Symmetric, sec.Mode == storage.ModeSymmetric)
			printItems(sec.Mixed, sec.Mode == storage.ModeMixed)
		default:
			printItems(sec.Items, sec.Kind != storage.SectionOptional || sec.Applies)
		}
		fmt.Fprintln(out, "")
	}
	return nil
}

func newAuditToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Check or uncheck one checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			checked, events, err := svc.ToggleItem(ctx, args[0])
			if err != nil {
				return err
			}
			state := "unchecked"
			if checked {
				state = "checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s. Live score: %s\n", args[0], state, ui.ScoreText(svc.LiveScore().Score))
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newAuditModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <section-id> <na|sym|mixed>",
		Short: "Switch the variant of the dual-monitor section",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("section id and mode are required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("section id must be an integer")
			}
			if !storage.DualMode(args[1]).IsValid() {
				return fmt.Errorf("mode must be na, sym or mixed, got %q", args[1])
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

			id, _ := strconv.Atoi(args[0])
			events, err := svc.SetSectionMode(ctx, id, storage.DualMode(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Section %d mode set to %s. Live score: %s\n", id, args[1], ui.ScoreText(svc.LiveScore().Score))
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newAuditAppliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "applies <section-id> <on|off>",
		Short: "Mark an optional section applicable or not",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("section id and on/off are required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("section id must be an integer")
			}
			if args[1] != "on" && args[1] != "off" {
				return fmt.Errorf("expected on or off, got %q", args[1])
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

			id, _ := strconv.Atoi(args[0])
			events, err := svc.SetSectionApplies(ctx, id, args[1] == "on")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Section %d applies: %s. Live score: %s\n", id, args[1], ui.ScoreText(svc.LiveScore().Score))
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newAuditCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Freeze the current checklist into the audit history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			result, events, err := svc.CompleteAudit(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Audit complete"))
			fmt.Fprintln(out, ui.LabelValue("Score", ui.ScoreText(result.Score)))
			fmt.Fprintln(out, ui.LabelValue("Unmet items", len(result.Unchecked)))
			printEvents(out, events)
			return nil
		},
	}
}

func newAuditLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <checklist.yaml>",
		Short: "Replace the checklist with a custom YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sections, err := engine.LoadSectionsFile(args[0])
			if err != nil {
				return err
			}
			events, err := svc.ReplaceChecklist(ctx, sections)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d section(s) from %s.\n", len(sections), args[0])
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}
