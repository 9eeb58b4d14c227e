package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) (*RecordRepo, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewRecordRepo(db), func() { _ = db.Close() }
}

func TestGetMissingRecordIsFirstVisit(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	rec, version, err := repo.Get(ctx, MainUserKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil || version != 0 {
		t.Fatalf("got (%v, %d), want (nil, 0)", rec, version)
	}
}

func TestSaveAndGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	rec := &Record{
		UserName: "tester",
		Points:   275,
		Streak:   3,
		Badges:   []BadgeState{{ID: "first_audit", Unlocked: true}},
		Plan:     []ChallengeDay{{Day: 1, Title: "Chair", Completed: true, CompletedDate: "2026-03-01", Awarded: true}},
	}

	version, err := repo.Save(ctx, MainUserKey, rec, 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if version != 1 {
		t.Fatalf("version=%d, want 1", version)
	}

	got, gotVersion, err := repo.Get(ctx, MainUserKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotVersion != 1 {
		t.Fatalf("version=%d, want 1", gotVersion)
	}
	if got.Points != 275 || got.Streak != 3 || got.UserName != "tester" {
		t.Fatalf("record mismatch: %+v", got)
	}
	if len(got.Badges) != 1 || !got.Badges[0].Unlocked {
		t.Fatalf("badges mismatch: %+v", got.Badges)
	}
	if len(got.Plan) != 1 || !got.Plan[0].Awarded || got.Plan[0].CompletedDate != "2026-03-01" {
		t.Fatalf("plan mismatch: %+v", got.Plan)
	}
}

func TestSaveBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	rec := &Record{Points: 10}
	v1, err := repo.Save(ctx, MainUserKey, rec, 0)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	rec.Points = 20
	v2, err := repo.Save(ctx, MainUserKey, rec, v1)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if v2 != v1+1 {
		t.Fatalf("version=%d, want %d", v2, v1+1)
	}

	got, _, err := repo.Get(ctx, MainUserKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Points != 20 {
		t.Fatalf("points=%d, want 20", got.Points)
	}
}

func TestSaveStaleVersionConflicts(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	rec := &Record{Points: 10}
	v1, err := repo.Save(ctx, MainUserKey, rec, 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.Save(ctx, MainUserKey, rec, v1); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// A writer still holding v1 must be rejected and leave the row alone.
	rec.Points = 999
	if _, err := repo.Save(ctx, MainUserKey, rec, v1); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err=%v, want ErrVersionConflict", err)
	}
	got, _, err := repo.Get(ctx, MainUserKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Points == 999 {
		t.Fatal("conflicting save must not overwrite the record")
	}
}

func TestSaveZeroVersionOnExistingRowConflicts(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	if _, err := repo.Save(ctx, MainUserKey, &Record{}, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.Save(ctx, MainUserKey, &Record{}, 0); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err=%v, want ErrVersionConflict", err)
	}
}

func TestRecordsAreIsolatedByKey(t *testing.T) {
	ctx := context.Background()
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	if _, err := repo.Save(ctx, "a", &Record{Points: 1}, 0); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if _, err := repo.Save(ctx, "b", &Record{Points: 2}, 0); err != nil {
		t.Fatalf("save b: %v", err)
	}

	got, _, err := repo.Get(ctx, "b")
	if err != nil {
		t.Fatalf("get b: %v", err)
	}
	if got.Points != 2 {
		t.Fatalf("points=%d, want 2", got.Points)
	}
}
