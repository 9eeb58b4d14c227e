package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

// openService loads the main user session. When the store cannot be opened
// the session runs detached: engine semantics are intact but nothing is
// saved, and a warning says so.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return degraded(err), func() {}, nil
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return degraded(err), func() {}, nil
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc, err := engine.Load(ctx, storage.NewRecordRepo(db))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func degraded(cause error) *engine.Service {
	fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" store unavailable, progress will not be saved: "+cause.Error()))
	return engine.NewDetached()
}

// printEvents renders the gamification events a mutation produced.
func printEvents(w io.Writer, events []engine.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case engine.PointsAwarded:
			fmt.Fprintf(w, "%s +%d points (total %d)\n", ui.IconSparkle, ev.Amount, ev.Total)
		case engine.BadgeUnlocked:
			fmt.Fprintf(w, "%s Badge unlocked: %s — %s\n", ui.IconTrophy, ui.Gold.Render(ev.Badge.Name), ev.Badge.Description)
		case engine.LevelUp:
			fmt.Fprintf(w, "%s Level up: %s → %s\n", ui.IconChart, ev.From.Name, ui.Gold.Render(ev.To.Name))
		case engine.TierUnlocked:
			fmt.Fprintf(w, "%s Platinum tier reached: the bonus quiz is unlocked!\n", ui.IconTrophy)
		case engine.StreakChanged:
			fmt.Fprintf(w, "%s Streak: %d day(s)\n", ui.IconFire, ev.Streak)
		case engine.SaveFailed:
			fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" progress not saved: "+ev.Err.Error()))
		}
	}
}
