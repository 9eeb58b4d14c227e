package engine

import "github.com/planszokwariat/ERGONOMIA7/internal/storage"

// Challenge day types.
const (
	DayTypeAudit     = "audit"
	DayTypeAction    = "action"
	DayTypeExercise  = "exercise"
	DayTypeEducation = "education"
	DayTypeHabit     = "habit"
)

// PlanLength is the number of days in the challenge plan.
const PlanLength = 10

// DefaultPlan returns the 10-day challenge plan with nothing completed.
func DefaultPlan() []storage.ChallengeDay {
	return []storage.ChallengeDay{
		{Day: 1, Title: "Start with an audit", Task: "Run the full ergonomics audit to get a personalized action plan", Type: DayTypeAudit},
		{Day: 2, Title: "Height adjustment", Task: "Adjust the chair height: feet on the floor, knees at 90°", Type: DayTypeAction},
		{Day: 3, Title: "Monitor position", Task: "Raise the monitor: top edge of the screen at eye level", Type: DayTypeAction},
		{Day: 4, Title: "First exercises", Task: "Do the neck and shoulder exercise set, 10 minutes", Type: DayTypeExercise},
		{Day: 5, Title: "Mid-week education", Task: "Read the article on why ergonomics matters for your health", Type: DayTypeEducation},
		{Day: 6, Title: "Keyboard and mouse position", Task: "Adjust heights: keyboard at elbow level, mouse next to it", Type: DayTypeAction},
		{Day: 7, Title: "Back exercises", Task: "Do a 10-minute back stretching set", Type: DayTypeExercise},
		{Day: 8, Title: "Microbreak habit builder", Task: "Set a timer: a 5-minute exercise break every hour", Type: DayTypeHabit},
		{Day: 9, Title: "Final education", Task: "Read the article on keeping good ergonomic habits", Type: DayTypeEducation},
		{Day: 10, Title: "Re-audit and summary", Task: "Run the ergonomics audit again and compare the results", Type: DayTypeAudit},
	}
}
