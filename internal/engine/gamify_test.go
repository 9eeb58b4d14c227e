package engine

import (
	"context"
	"errors"
	"testing"
)

func TestAwardPointsCrossesTierOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.rec.Points = PlatinumThreshold - 20

	events, err := svc.AwardPoints(ctx, 50)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	requireNoSaveFailure(t, events)
	if svc.rec.Points != PlatinumThreshold+30 {
		t.Fatalf("points=%d, want %d", svc.rec.Points, PlatinumThreshold+30)
	}
	if got := countTierUnlocks(events); got != 1 {
		t.Fatalf("tier unlocks=%d, want 1", got)
	}
	foundLevelUp := false
	for _, ev := range events {
		if lu, ok := ev.(LevelUp); ok {
			foundLevelUp = true
			if lu.To.Name != "Platinum" {
				t.Fatalf("level up to %s, want Platinum", lu.To.Name)
			}
		}
	}
	if !foundLevelUp {
		t.Fatal("expected a LevelUp event")
	}

	// Further grants above the threshold never re-announce the tier.
	events, err = svc.AwardPoints(ctx, 50)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if got := countTierUnlocks(events); got != 0 {
		t.Fatalf("tier unlocks on second grant=%d, want 0", got)
	}
}

func TestAwardPointsRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.AwardPoints(ctx, 0); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := svc.AwardPoints(ctx, -10); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if svc.rec.Points != 0 {
		t.Fatalf("points=%d, want 0", svc.rec.Points)
	}
}

func TestUnlockBadgeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	events, err := svc.UnlockBadge(ctx, BadgeEducator)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeEducator) {
		t.Fatal("expected a BadgeUnlocked event")
	}
	if svc.rec.Points != 100 {
		t.Fatalf("points=%d, want 100", svc.rec.Points)
	}

	events, err = svc.UnlockBadge(ctx, BadgeEducator)
	if err != nil {
		t.Fatalf("re-unlock: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("re-unlock events=%d, want 0", len(events))
	}
	if svc.rec.Points != 100 {
		t.Fatalf("points after re-unlock=%d, want 100", svc.rec.Points)
	}
}

func TestUnlockBadgeRejectsUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.UnlockBadge(ctx, "no_such_badge"); err == nil {
		t.Fatal("expected error for unknown badge")
	}
}

func TestStreakExtendsAndResets(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	days := []struct {
		day    string
		plan   int
		streak int
	}{
		{"2026-03-01", 0, 1},
		{"2026-03-02", 1, 2},
		{"2026-03-03", 2, 3},
		{"2026-03-06", 3, 1}, // two-day gap restarts
	}
	for _, step := range days {
		setDay(t, svc, step.day)
		events, err := svc.RecordChallengeDay(ctx, step.plan)
		if err != nil {
			t.Fatalf("day %s: %v", step.day, err)
		}
		requireNoSaveFailure(t, events)
		if svc.rec.Streak != step.streak {
			t.Fatalf("day %s: streak=%d, want %d", step.day, svc.rec.Streak, step.streak)
		}
	}
}

func TestStreakSameDayRepeatIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	setDay(t, svc, "2026-03-01")
	if _, err := svc.UpdateStreak(ctx); err != nil {
		t.Fatalf("streak: %v", err)
	}
	events, err := svc.UpdateStreak(ctx)
	if err != nil {
		t.Fatalf("streak repeat: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("same-day streak events=%d, want 0", len(events))
	}
	if svc.rec.Streak != 1 {
		t.Fatalf("streak=%d, want 1", svc.rec.Streak)
	}
}

func TestChallengeDayDailyLimit(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	setDay(t, svc, "2026-03-01")
	if _, err := svc.RecordChallengeDay(ctx, 0); err != nil {
		t.Fatalf("first day: %v", err)
	}

	_, err := svc.RecordChallengeDay(ctx, 1)
	var limitErr DailyLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("err=%v, want DailyLimitError", err)
	}
	if limitErr.Date != "2026-03-01" {
		t.Fatalf("limit date=%s, want 2026-03-01", limitErr.Date)
	}
	if svc.rec.Plan[1].Completed {
		t.Fatal("rejected day must stay uncompleted")
	}
}

func TestChallengeDayAwardIsSunk(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	setDay(t, svc, "2026-03-01")
	events, err := svc.RecordChallengeDay(ctx, 0)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeFirstChallenge) {
		t.Fatal("expected first_challenge badge")
	}
	// 50 for the day + 50 for the badge.
	if svc.rec.Points != 100 {
		t.Fatalf("points=%d, want 100", svc.rec.Points)
	}

	if _, err := svc.UncompleteChallengeDay(ctx, 0); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if svc.rec.Points != 100 {
		t.Fatalf("points after undo=%d, want 100", svc.rec.Points)
	}
	if svc.rec.Plan[0].Completed || svc.rec.Plan[0].CompletedDate != "" {
		t.Fatal("day must be open again after undo")
	}

	setDay(t, svc, "2026-03-02")
	events, err = svc.RecordChallengeDay(ctx, 0)
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if got := countPointsAwarded(events); got != 0 {
		t.Fatalf("re-complete point grants=%d, want 0", got)
	}
	if svc.rec.Points != 100 {
		t.Fatalf("points after re-complete=%d, want 100", svc.rec.Points)
	}
}

func TestChallengeBadgeThresholds(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	days := []string{
		"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05",
		"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10",
	}
	for i, day := range days {
		setDay(t, svc, day)
		events, err := svc.RecordChallengeDay(ctx, i)
		if err != nil {
			t.Fatalf("day %d: %v", i+1, err)
		}
		switch i {
		case 0:
			if !badgeUnlockedIn(events, BadgeFirstChallenge) {
				t.Fatal("day 1 must unlock first_challenge")
			}
		case 4:
			if !badgeUnlockedIn(events, BadgeFiveDays) {
				t.Fatal("day 5 must unlock five_days")
			}
		case 9:
			if !badgeUnlockedIn(events, BadgeTenDays) {
				t.Fatal("day 10 must unlock ten_days")
			}
		default:
			if badgeUnlockedIn(events, BadgeFiveDays) || badgeUnlockedIn(events, BadgeTenDays) {
				t.Fatalf("day %d unlocked a threshold badge early", i+1)
			}
		}
	}
	if svc.rec.Streak != 10 {
		t.Fatalf("streak=%d, want 10", svc.rec.Streak)
	}
}

func TestQuizGateAndOneTimeBonus(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.rec.Points = PlatinumThreshold - 100
	_, err := svc.CompleteQuizBonus(ctx)
	var locked QuizLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err=%v, want QuizLockedError", err)
	}
	if locked.PointsNeeded != 100 {
		t.Fatalf("points needed=%d, want 100", locked.PointsNeeded)
	}
	if svc.rec.QuizCompleted {
		t.Fatal("rejected quiz must not mark completion")
	}

	svc.rec.Points = PlatinumThreshold
	events, err := svc.CompleteQuizBonus(ctx)
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeQuizMaster) {
		t.Fatal("expected quiz_master badge")
	}
	// threshold + 500 bonus + 100 badge points.
	if svc.rec.Points != PlatinumThreshold+600 {
		t.Fatalf("points=%d, want %d", svc.rec.Points, PlatinumThreshold+600)
	}
	if !svc.rec.QuizCompleted || !svc.rec.QuizBonusAwarded {
		t.Fatal("quiz completion flags must be set")
	}

	before := svc.rec.Points
	events, err = svc.CompleteQuizBonus(ctx)
	if err != nil {
		t.Fatalf("quiz repeat: %v", err)
	}
	if got := countPointsAwarded(events); got != 0 {
		t.Fatalf("repeat quiz point grants=%d, want 0", got)
	}
	if svc.rec.Points != before {
		t.Fatalf("points changed on repeat: %d -> %d", before, svc.rec.Points)
	}
}

func TestExerciseCompletionAwardsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.CompleteExercise(ctx, "neck-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if svc.rec.Points != 25 {
		t.Fatalf("points=%d, want 25", svc.rec.Points)
	}

	events, err := svc.CompleteExercise(ctx, "neck-1")
	if err != nil {
		t.Fatalf("repeat: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("repeat events=%d, want 0", len(events))
	}
	if svc.rec.Points != 25 {
		t.Fatalf("points after repeat=%d, want 25", svc.rec.Points)
	}

	if _, err := svc.CompleteExercise(ctx, "no-such"); err == nil {
		t.Fatal("expected error for unknown exercise")
	}
}

func TestExerciseMasterBadgeAtThreshold(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	var ids []string
	for _, cat := range ExerciseLibrary() {
		for _, ex := range cat.Exercises {
			ids = append(ids, ex.ID)
		}
	}
	if len(ids) < ExerciseBadgeThreshold {
		t.Fatalf("library has %d exercises, need at least %d", len(ids), ExerciseBadgeThreshold)
	}

	for i := 0; i < ExerciseBadgeThreshold; i++ {
		events, err := svc.CompleteExercise(ctx, ids[i])
		if err != nil {
			t.Fatalf("exercise %s: %v", ids[i], err)
		}
		unlocked := badgeUnlockedIn(events, BadgeExerciseMaster)
		if i == ExerciseBadgeThreshold-1 && !unlocked {
			t.Fatal("threshold exercise must unlock exercise_master")
		}
		if i < ExerciseBadgeThreshold-1 && unlocked {
			t.Fatalf("exercise %d unlocked the badge early", i+1)
		}
	}
}

func TestArticleReadingAwardsOnceAndUnlocksEducator(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.ReadArticle(ctx, 0); err != nil {
		t.Fatalf("read: %v", err)
	}
	if svc.rec.Points != 30 {
		t.Fatalf("points=%d, want 30", svc.rec.Points)
	}
	events, err := svc.ReadArticle(ctx, 0)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("re-read events=%d, want 0", len(events))
	}

	total := len(ArticleCatalog())
	for i := 1; i < total; i++ {
		events, err = svc.ReadArticle(ctx, i)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	if !badgeUnlockedIn(events, BadgeEducator) {
		t.Fatal("reading the whole catalog must unlock educator")
	}
	// 6 articles * 30 + 100 badge points.
	if svc.rec.Points != total*30+100 {
		t.Fatalf("points=%d, want %d", svc.rec.Points, total*30+100)
	}

	if _, err := svc.ReadArticle(ctx, total); err == nil {
		t.Fatal("expected error for out-of-range article")
	}
}
