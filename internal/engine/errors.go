package engine

import "fmt"

// DailyLimitError rejects completing a second challenge day on the same
// calendar day. State is left unchanged.
type DailyLimitError struct {
	Date string
}

func (e DailyLimitError) Error() string {
	return fmt.Sprintf("one challenge per day: another day was already completed on %s", e.Date)
}

// QuizLockedError rejects the bonus quiz below the Platinum threshold.
type QuizLockedError struct {
	PointsNeeded int
}

func (e QuizLockedError) Error() string {
	return fmt.Sprintf("bonus quiz is locked until Platinum (%d points to go)", e.PointsNeeded)
}
