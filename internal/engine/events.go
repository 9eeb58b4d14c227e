package engine

// Event is a domain notification produced by a state transition. The engine
// returns events instead of rendering anything; the CLI/TUI decide how to
// show them.
type Event interface {
	event()
}

// PointsAwarded reports a committed point grant.
type PointsAwarded struct {
	Amount int
	Total  int
}

// LevelUp reports a level-name change caused by a point grant.
type LevelUp struct {
	From Level
	To   Level
}

// TierUnlocked reports crossing the Platinum threshold within a single award.
type TierUnlocked struct {
	Threshold int
}

// BadgeUnlocked reports a badge transitioning to unlocked.
type BadgeUnlocked struct {
	Badge Badge
}

// StreakChanged reports the streak counter after a qualifying activity.
type StreakChanged struct {
	Streak int
}

// SaveFailed reports that the local mutation committed but the persistence
// write did not. The in-memory state stays authoritative; the next save
// retries the full record.
type SaveFailed struct {
	Err error
}

func (PointsAwarded) event() {}
func (LevelUp) event()       {}
func (TierUnlocked) event()  {}
func (BadgeUnlocked) event() {}
func (StreakChanged) event() {}
func (SaveFailed) event()    {}
