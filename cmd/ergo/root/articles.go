package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

func newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse and read the education articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticlesList(cmd)
		},
	}

	cmd.AddCommand(newArticlesListCmd(), newArticlesReadCmd())
	return cmd
}

func newArticlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the article catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticlesList(cmd)
		},
	}
}

func runArticlesList(cmd *cobra.Command) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	rec := svc.Record()
	read := make(map[int]bool, len(rec.ReadArticles))
	for _, i := range rec.ReadArticles {
		read[i] = true
	}

	articles := engine.ArticleCatalog()
	fmt.Fprintln(out, ui.Heading(ui.IconBook, "Education"))
	fmt.Fprintln(out, ui.LabelValue("Read", fmt.Sprintf("%d/%d", len(rec.ReadArticles), len(articles))))
	fmt.Fprintln(out, "")

	for i, a := range articles {
		mark := ui.Muted.Render("[ ]")
		if read[i] {
			mark = ui.Good.Render("[x]")
		}
		fmt.Fprintf(out, "%s %d. %s %s\n", mark, i+1, ui.Key.Render(a.Title), ui.Muted.Render(fmt.Sprintf("(%s, %d min)", a.Category, a.ReadingTime)))
	}
	return nil
}

func newArticlesReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <number>",
		Short: "Read an article (30 points, first time only)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("article number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("article number must be an integer")
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

			n, _ := strconv.Atoi(args[0])
			articles := engine.ArticleCatalog()
			if n < 1 || n > len(articles) {
				return fmt.Errorf("article number out of range: %d", n)
			}
			a := articles[n-1]

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, a.Title))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s · %d min read", a.Category, a.ReadingTime)))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, a.Content)
			fmt.Fprintln(out, "")

			events, err := svc.ReadArticle(ctx, n-1)
			if err != nil {
				return err
			}
			printEvents(out, events)
			return nil
		},
	}
}
