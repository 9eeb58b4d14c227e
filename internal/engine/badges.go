package engine

// Badge ids. A badge is unlocked at most once and its points are granted
// exactly once.
const (
	BadgeFirstAudit     = "first_audit"
	BadgeFirstChallenge = "first_challenge"
	BadgeFiveDays       = "five_days"
	BadgeTenDays        = "ten_days"
	BadgeTransformation = "transformation"
	BadgeLegend         = "legend"
	BadgeEducator       = "educator"
	BadgeExerciseMaster = "exercise_master"
	BadgeQuizMaster     = "quiz_master"
)

// Badge is a one-time-unlockable achievement carrying a fixed point reward.
type Badge struct {
	ID          string
	Name        string
	Description string
	Points      int
}

// Badges returns the full badge catalog in display order.
func Badges() []Badge {
	return []Badge{
		{ID: BadgeFirstAudit, Name: "Audit Counts", Description: "Complete your first workstation audit", Points: 50},
		{ID: BadgeFirstChallenge, Name: "Off to a Serious Start", Description: "Complete the first challenge of the plan", Points: 50},
		{ID: BadgeFiveDays, Name: "Halfway There", Description: "Complete 5 challenge days", Points: 100},
		{ID: BadgeTenDays, Name: "Almost There!", Description: "Complete all 10 challenge days", Points: 100},
		{ID: BadgeTransformation, Name: "Transformation!", Description: "A re-audit showed a 30%+ improvement", Points: 200},
		{ID: BadgeLegend, Name: "Audit Legend", Description: "Finish 10 days and score 85%+ in a re-audit", Points: 150},
		{ID: BadgeEducator, Name: "Educator", Description: "Read every article", Points: 100},
		{ID: BadgeExerciseMaster, Name: "Exercise Master", Description: "Complete 15 exercises", Points: 150},
		{ID: BadgeQuizMaster, Name: "Quiz Master", Description: "Complete the bonus quiz", Points: 100},
	}
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
