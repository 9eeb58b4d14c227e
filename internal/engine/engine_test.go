package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.RecordRepo, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo := storage.NewRecordRepo(db)

	svc, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, repo, cleanup
}

// setDay pins the service clock to noon of the given YYYY-MM-DD day.
func setDay(t *testing.T, svc *Service, day string) {
	t.Helper()
	tm, err := time.Parse(time.DateOnly, day)
	if err != nil {
		t.Fatalf("parse day %q: %v", day, err)
	}
	tm = tm.Add(12 * time.Hour)
	svc.now = func() time.Time { return tm }
}

// checkEverything marks every item of every section and variant as checked.
func checkEverything(svc *Service) {
	for si := range svc.rec.Sections {
		sec := &svc.rec.Sections[si]
		for i := range sec.Items {
			sec.Items[i].Checked = true
		}
		for i := range sec.Symmetric {
			sec.Symmetric[i].Checked = true
		}
		for i := range sec.Mixed {
			sec.Mixed[i].Checked = true
		}
	}
}

func countPointsAwarded(events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(PointsAwarded); ok {
			n++
		}
	}
	return n
}

func countTierUnlocks(events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(TierUnlocked); ok {
			n++
		}
	}
	return n
}

func badgeUnlockedIn(events []Event, id string) bool {
	for _, ev := range events {
		if b, ok := ev.(BadgeUnlocked); ok && b.Badge.ID == id {
			return true
		}
	}
	return false
}

func requireNoSaveFailure(t *testing.T, events []Event) {
	t.Helper()
	for _, ev := range events {
		if sf, ok := ev.(SaveFailed); ok {
			t.Fatalf("unexpected save failure: %v", sf.Err)
		}
	}
}
