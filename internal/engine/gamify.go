package engine

import (
	"context"
	"fmt"
	"time"
)

// awardPoints adds points and derives the notification events: a LevelUp
// when the level name changed, a TierUnlocked when this grant crossed the
// Platinum threshold. Points only ever increase.
func (s *Service) awardPoints(amount int) ([]Event, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("point amount must be positive, got %d", amount)
	}

	before := s.rec.Points
	levelBefore := LevelForPoints(before)
	s.rec.Points += amount

	events := []Event{PointsAwarded{Amount: amount, Total: s.rec.Points}}
	levelAfter := LevelForPoints(s.rec.Points)
	if levelAfter.Name != levelBefore.Name {
		events = append(events, LevelUp{From: levelBefore, To: levelAfter})
	}
	if before < PlatinumThreshold && s.rec.Points >= PlatinumThreshold {
		events = append(events, TierUnlocked{Threshold: PlatinumThreshold})
	}
	return events, nil
}

// unlockBadge marks a badge unlocked and grants its points. Unlocking is
// monotonic and idempotent: an already-unlocked badge is a silent no-op and
// its points are never granted twice.
func (s *Service) unlockBadge(id string) ([]Event, error) {
	def, ok := BadgeByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown badge: %s", id)
	}

	st := s.rec.Badge(id)
	if st == nil {
		s.syncDefaults()
		st = s.rec.Badge(id)
	}
	if st.Unlocked {
		return nil, nil
	}
	st.Unlocked = true

	events := []Event{BadgeUnlocked{Badge: def}}
	pts, err := s.awardPoints(def.Points)
	if err != nil {
		return nil, err
	}
	return append(events, pts...), nil
}

// updateStreak counts today as a day of activity. Same-day repeats are
// no-ops; a day of activity right after yesterday's extends the streak;
// anything else (first activity, or a gap of two days or more) restarts it.
func (s *Service) updateStreak() []Event {
	today := s.today()
	if s.rec.LastActivityDate == today {
		return nil
	}

	yesterday := s.now().AddDate(0, 0, -1).Format(time.DateOnly)
	if s.rec.LastActivityDate == yesterday {
		s.rec.Streak++
	} else {
		s.rec.Streak = 1
	}
	s.rec.LastActivityDate = today
	return []Event{StreakChanged{Streak: s.rec.Streak}}
}

// AwardPoints grants points and persists the record.
func (s *Service) AwardPoints(ctx context.Context, amount int) ([]Event, error) {
	events, err := s.awardPoints(amount)
	if err != nil {
		return nil, err
	}
	return append(events, s.persist(ctx)...), nil
}

// UnlockBadge unlocks a badge and persists. Re-unlocking is a no-op.
func (s *Service) UnlockBadge(ctx context.Context, id string) ([]Event, error) {
	events, err := s.unlockBadge(id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return append(events, s.persist(ctx)...), nil
}

// UpdateStreak records a day of activity and persists when anything changed.
func (s *Service) UpdateStreak(ctx context.Context) ([]Event, error) {
	events := s.updateStreak()
	if len(events) == 0 {
		return nil, nil
	}
	return append(events, s.persist(ctx)...), nil
}

// RecordChallengeDay completes one plan day. At most one challenge day may
// be completed per calendar day; violating that returns DailyLimitError and
// leaves state untouched. The 50-point grant fires only the first time a
// given day is ever completed: re-completing a day that was toggled off
// keeps the original award sunk instead of granting it again.
func (s *Service) RecordChallengeDay(ctx context.Context, dayIndex int) ([]Event, error) {
	if dayIndex < 0 || dayIndex >= len(s.rec.Plan) {
		return nil, fmt.Errorf("challenge day index out of range: %d", dayIndex)
	}
	day := &s.rec.Plan[dayIndex]
	if day.Completed {
		return nil, fmt.Errorf("day %d is already completed", day.Day)
	}

	today := s.today()
	for i := range s.rec.Plan {
		if i != dayIndex && s.rec.Plan[i].Completed && s.rec.Plan[i].CompletedDate == today {
			return nil, DailyLimitError{Date: today}
		}
	}

	day.Completed = true
	day.CompletedDate = today

	events := s.updateStreak()
	if !day.Awarded {
		day.Awarded = true
		pts, err := s.awardPoints(50)
		if err != nil {
			return nil, err
		}
		events = append(events, pts...)
	}

	completed := s.rec.CompletedDays()
	for _, check := range []struct {
		threshold int
		badge     string
	}{
		{1, BadgeFirstChallenge},
		{5, BadgeFiveDays},
		{10, BadgeTenDays},
	} {
		if completed >= check.threshold {
			ev, err := s.unlockBadge(check.badge)
			if err != nil {
				return nil, err
			}
			events = append(events, ev...)
		}
	}

	return append(events, s.persist(ctx)...), nil
}

// UncompleteChallengeDay clears a day's completion. Points, badges and the
// streak stay as they are: rewards are sunk once granted.
func (s *Service) UncompleteChallengeDay(ctx context.Context, dayIndex int) ([]Event, error) {
	if dayIndex < 0 || dayIndex >= len(s.rec.Plan) {
		return nil, fmt.Errorf("challenge day index out of range: %d", dayIndex)
	}
	day := &s.rec.Plan[dayIndex]
	if !day.Completed {
		return nil, nil
	}
	day.Completed = false
	day.CompletedDate = ""
	return s.persist(ctx), nil
}

// ResetPlan restores the stock 10-day plan. Earned points and badges are
// untouched, and the per-day award guards reset with the plan.
func (s *Service) ResetPlan(ctx context.Context) ([]Event, error) {
	s.rec.Plan = DefaultPlan()
	return s.persist(ctx), nil
}

// CompleteQuizBonus handles the Platinum bonus quiz. Below the threshold it
// rejects with QuizLockedError. The 500-point grant and the quiz badge fire
// exactly once; repeat calls keep the completed flags set and change nothing
// else.
func (s *Service) CompleteQuizBonus(ctx context.Context) ([]Event, error) {
	if s.rec.Points < PlatinumThreshold {
		return nil, QuizLockedError{PointsNeeded: PlatinumThreshold - s.rec.Points}
	}

	var events []Event
	if !s.rec.QuizBonusAwarded {
		s.rec.QuizBonusAwarded = true
		pts, err := s.awardPoints(500)
		if err != nil {
			return nil, err
		}
		events = append(events, pts...)
		ev, err := s.unlockBadge(BadgeQuizMaster)
		if err != nil {
			return nil, err
		}
		events = append(events, ev...)
	}
	s.rec.QuizCompleted = true

	return append(events, s.persist(ctx)...), nil
}

// CompleteExercise records a finished exercise. Each exercise id awards its
// 25 points only once; 15 distinct exercises unlock the exercise badge.
func (s *Service) CompleteExercise(ctx context.Context, exerciseID string) ([]Event, error) {
	if _, ok := ExerciseByID(exerciseID); !ok {
		return nil, fmt.Errorf("unknown exercise: %s", exerciseID)
	}
	for _, done := range s.rec.CompletedExercises {
		if done == exerciseID {
			return nil, nil
		}
	}

	s.rec.CompletedExercises = append(s.rec.CompletedExercises, exerciseID)
	events, err := s.awardPoints(25)
	if err != nil {
		return nil, err
	}
	if len(s.rec.CompletedExercises) >= ExerciseBadgeThreshold {
		ev, err := s.unlockBadge(BadgeExerciseMaster)
		if err != nil {
			return nil, err
		}
		events = append(events, ev...)
	}

	return append(events, s.persist(ctx)...), nil
}

// ReadArticle records a read article by catalog index. Each index awards its
// 30 points only once; reading the whole catalog unlocks the educator badge.
func (s *Service) ReadArticle(ctx context.Context, index int) ([]Event, error) {
	articles := ArticleCatalog()
	if index < 0 || index >= len(articles) {
		return nil, fmt.Errorf("article index out of range: %d", index)
	}
	for _, read := range s.rec.ReadArticles {
		if read == index {
			return nil, nil
		}
	}

	s.rec.ReadArticles = append(s.rec.ReadArticles, index)
	events, err := s.awardPoints(30)
	if err != nil {
		return nil, err
	}
	if len(s.rec.ReadArticles) == len(articles) {
		ev, err := s.unlockBadge(BadgeEducator)
		if err != nil {
			return nil, err
		}
		events = append(events, ev...)
	}

	return append(events, s.persist(ctx)...), nil
}
