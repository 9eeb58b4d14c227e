package engine

import "math"

// PlatinumThreshold is the point total that unlocks the bonus quiz.
const PlatinumThreshold = 1620

// Level is one tier of the progression ladder. Levels are contiguous and the
// top tier has no upper bound, so every non-negative point total maps to
// exactly one level.
type Level struct {
	Name        string
	MinPoints   int
	MaxPoints   int
	Description string
}

// Levels returns the ladder in ascending order.
func Levels() []Level {
	return []Level{
		{Name: "Bronze", MinPoints: 0, MaxPoints: 449, Description: "Starting the audit"},
		{Name: "Silver", MinPoints: 450, MaxPoints: 899, Description: "Making progress"},
		{Name: "Gold", MinPoints: 900, MaxPoints: 1619, Description: "Ergonomics master"},
		{Name: "Platinum", MinPoints: PlatinumThreshold, MaxPoints: math.MaxInt, Description: "Ergonomics legend — bonus quiz unlocked!"},
	}
}

// LevelForPoints returns the highest level whose MinPoints <= points.
// The level is always derived from points, never stored.
func LevelForPoints(points int) Level {
	levels := Levels()
	current := levels[0]
	for _, l := range levels {
		if points >= l.MinPoints {
			current = l
		}
	}
	return current
}

// NextLevel returns the first level above the current point total, or nil
// when already at the top.
func NextLevel(points int) *Level {
	for _, l := range Levels() {
		if points < l.MinPoints {
			next := l
			return &next
		}
	}
	return nil
}
