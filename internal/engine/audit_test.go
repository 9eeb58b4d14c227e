package engine

import (
	"context"
	"testing"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

func TestCompleteAuditFirstAudit(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	result, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	requireNoSaveFailure(t, events)

	if result.Score != 0 {
		t.Fatalf("score=%d, want 0", result.Score)
	}
	if len(svc.rec.AuditHistory) != 1 {
		t.Fatalf("history=%d entries, want 1", len(svc.rec.AuditHistory))
	}
	if !badgeUnlockedIn(events, BadgeFirstAudit) {
		t.Fatal("first audit must unlock first_audit")
	}
	// 50 badge points + 50 completion points.
	if svc.rec.Points != 100 {
		t.Fatalf("points=%d, want 100", svc.rec.Points)
	}

	// Second audit: the badge stays unlocked, completion points accrue.
	_, events, err = svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if badgeUnlockedIn(events, BadgeFirstAudit) {
		t.Fatal("first_audit must not re-unlock")
	}
	if svc.rec.Points != 150 {
		t.Fatalf("points=%d, want 150", svc.rec.Points)
	}
	if len(svc.rec.AuditHistory) != 2 {
		t.Fatalf("history=%d entries, want 2", len(svc.rec.AuditHistory))
	}
}

func TestTransformationBadgeOnImprovement(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.rec.AuditHistory = []storage.AuditResult{{Score: 50}}
	checkEverything(svc)

	_, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeTransformation) {
		t.Fatal("100%% over a first score of 50 must unlock transformation")
	}
}

func TestTransformationBadgeNeedsThirtyPercent(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.rec.AuditHistory = []storage.AuditResult{{Score: 90}}
	checkEverything(svc)

	_, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if badgeUnlockedIn(events, BadgeTransformation) {
		t.Fatal("an 11%% improvement must not unlock transformation")
	}
}

func TestTransformationBadgeZeroFirstScore(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.rec.AuditHistory = []storage.AuditResult{{Score: 0}}

	// Chair section only: score 31, just over the zero-base bar.
	for i := range svc.rec.Sections[0].Items {
		svc.rec.Sections[0].Items[i].Checked = true
	}
	_, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeTransformation) {
		t.Fatal("score 31 over a zero first score must unlock transformation")
	}
}

func TestLegendBadge(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	for i := range svc.rec.Plan {
		svc.rec.Plan[i].Completed = true
	}
	checkEverything(svc)

	_, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !badgeUnlockedIn(events, BadgeLegend) {
		t.Fatal("10 days complete at score 100 must unlock legend")
	}
}

func TestLegendBadgeNeedsHighScore(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	for i := range svc.rec.Plan {
		svc.rec.Plan[i].Completed = true
	}

	_, events, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if badgeUnlockedIn(events, BadgeLegend) {
		t.Fatal("score 0 must not unlock legend")
	}
}

func TestAuditSnapshotIsFrozen(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	checkEverything(svc)
	result, _, err := svc.CompleteAudit(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("score=%d, want 100", result.Score)
	}

	if _, _, err := svc.ToggleItem(ctx, "k1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	frozen := svc.rec.AuditHistory[0].Sections
	item := findItemIn(t, frozen, "k1")
	if !item.Checked {
		t.Fatal("frozen snapshot must not follow later checklist edits")
	}
	live := findItemIn(t, svc.rec.Sections, "k1")
	if live.Checked {
		t.Fatal("live item should be unchecked after the toggle")
	}
}

func findItemIn(t *testing.T, sections []storage.Section, id string) *storage.ChecklistItem {
	t.Helper()
	_, item := findItem(sections, id)
	if item == nil {
		t.Fatalf("item %s not found", id)
	}
	return item
}

func TestAuditStatePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	svc, repo, cleanup := newTestService(t)
	defer cleanup()

	checkEverything(svc)
	if _, _, err := svc.CompleteAudit(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	wantPoints := svc.rec.Points

	reloaded, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.rec.AuditHistory) != 1 {
		t.Fatalf("reloaded history=%d, want 1", len(reloaded.rec.AuditHistory))
	}
	if reloaded.rec.Points != wantPoints {
		t.Fatalf("reloaded points=%d, want %d", reloaded.rec.Points, wantPoints)
	}
	st := reloaded.rec.Badge(BadgeFirstAudit)
	if st == nil || !st.Unlocked {
		t.Fatal("reloaded record must keep the first_audit badge")
	}
}

func TestReplaceChecklistValidates(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	bad := []storage.Section{{ID: 1, Title: "Custom", Kind: "nonsense"}}
	if _, err := svc.ReplaceChecklist(ctx, bad); err == nil {
		t.Fatal("expected validation error")
	}

	good := []storage.Section{{
		ID: 1, Title: "Custom", Kind: storage.SectionRegular,
		Items: []storage.ChecklistItem{{ID: "c1", Text: "Custom item", Weight: 100}},
	}}
	if _, err := svc.ReplaceChecklist(ctx, good); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := svc.LiveScore().Score; got != 0 {
		t.Fatalf("score=%d, want 0", got)
	}
	if _, _, err := svc.ToggleItem(ctx, "c1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := svc.LiveScore().Score; got != 100 {
		t.Fatalf("score=%d, want 100", got)
	}
}

func TestToggleUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, _, err := svc.ToggleItem(ctx, "nope"); err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestSectionModeAndAppliesGuards(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.SetSectionMode(ctx, 1, storage.ModeSymmetric); err == nil {
		t.Fatal("regular sections must reject mode changes")
	}
	if _, err := svc.SetSectionApplies(ctx, 1, true); err == nil {
		t.Fatal("regular sections must reject applies changes")
	}
	if _, err := svc.SetSectionMode(ctx, 5, "sideways"); err == nil {
		t.Fatal("invalid modes must be rejected")
	}

	if _, err := svc.SetSectionMode(ctx, 5, storage.ModeSymmetric); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if _, err := svc.SetSectionApplies(ctx, 6, true); err != nil {
		t.Fatalf("set applies: %v", err)
	}
}
