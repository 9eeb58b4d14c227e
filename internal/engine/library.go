package engine

import "fmt"

// ExerciseBadgeThreshold is how many distinct exercises unlock the
// exercise_master badge.
const ExerciseBadgeThreshold = 15

// Exercise is one guided desk exercise. Duration is in seconds.
type Exercise struct {
	ID          string
	Name        string
	Duration    int
	Description string
}

// ExerciseCategory groups related exercises.
type ExerciseCategory struct {
	Key       string
	Title     string
	Exercises []Exercise
}

// ExerciseLibrary returns the built-in exercise catalog. Exercise ids are
// stable (<category>-<n>) so completion state survives wording changes.
func ExerciseLibrary() []ExerciseCategory {
	cats := []ExerciseCategory{
		{
			Key: "neck", Title: "Neck and shoulders",
			Exercises: []Exercise{
				{Name: "Neck rotation", Duration: 45, Description: "Turn the head slowly left and right, holding 3 seconds at the end of the range. Repeat 5 times each way."},
				{Name: "Neck tilts", Duration: 45, Description: "Tilt the head forward until the nape tenses, hold 5 seconds, then back. Repeat 5 times."},
				{Name: "Shoulder rolls", Duration: 60, Description: "Raise the shoulders to the ears and roll them backward 10 times, then forward 10 times. Slow and controlled."},
				{Name: "Side neck stretch", Duration: 60, Description: "Tilt the head toward the right shoulder, hold 15 seconds. Repeat on the left."},
			},
		},
		{
			Key: "back", Title: "Back",
			Exercises: []Exercise{
				{Name: "Back stretch", Duration: 60, Description: "Stand up, clasp hands behind you and slowly hinge the torso forward. Hold 15 seconds. Repeat 3 times."},
				{Name: "Cat-cow stretch", Duration: 90, Description: "On all fours, arch the back and hold 5 seconds, then round it and hold 5 seconds. Repeat 8 times."},
				{Name: "Forward fold", Duration: 75, Description: "Stand with feet hip-width apart and fold forward, reaching toward the floor. Hold 20 seconds."},
				{Name: "Chest opener", Duration: 60, Description: "Stand tall, interlace hands behind the back and slowly lift them. Hold 15 seconds. Repeat 3 times."},
			},
		},
		{
			Key: "wrists", Title: "Wrists and hands",
			Exercises: []Exercise{
				{Name: "Wrist circles", Duration: 30, Description: "Extend an arm forward, open and close the hand, then circle the wrist 10 times each way."},
				{Name: "Finger stretch", Duration: 45, Description: "Interlace the fingers and slowly raise the arms overhead. Hold 20 seconds."},
				{Name: "Fist squeeze", Duration: 40, Description: "Clench the fists, then release for 2 seconds. Repeat 20 times, then spread the fingers wide."},
				{Name: "Prayer stretch", Duration: 50, Description: "Palms together in front of the chest, slide them downward until the forearms tense. Hold 20 seconds."},
			},
		},
		{
			Key: "eyes", Title: "Eyes",
			Exercises: []Exercise{
				{Name: "Conscious blinking", Duration: 90, Description: "Blink slowly and deliberately for 90 seconds to rewet the eyes and relax the muscles."},
				{Name: "Eye movement", Duration: 60, Description: "Look up, down, right, left and along the diagonals, 5 seconds each. Repeat the cycle 3 times."},
				{Name: "Palming", Duration: 120, Description: "Cover the eyes with the palms without pressing. Sit in the dark and breathe for 2 minutes."},
				{Name: "Focus shift", Duration: 300, Description: "Look out the window at something far away (20 m+), then at something 30 cm away. Switch every 10 seconds for 5 minutes."},
			},
		},
		{
			Key: "legs", Title: "Legs",
			Exercises: []Exercise{
				{Name: "Thigh stretch", Duration: 50, Description: "Sit, cross the right ankle over the left knee and lean forward. Hold 20 seconds. Switch sides."},
				{Name: "Calf stretch", Duration: 45, Description: "Against a wall, bend the front leg and keep the back leg straight. Hold 20 seconds."},
				{Name: "Short walk", Duration: 180, Description: "Walk 100–200 slow, deliberate steps around the office or hallway."},
				{Name: "Seated leg raises", Duration: 40, Description: "Seated, slowly lift one knee and hold 3 seconds. Repeat 10 times per leg."},
			},
		},
	}
	for ci := range cats {
		for ei := range cats[ci].Exercises {
			cats[ci].Exercises[ei].ID = fmt.Sprintf("%s-%d", cats[ci].Key, ei+1)
		}
	}
	return cats
}

// ExerciseByID finds an exercise in the library.
func ExerciseByID(id string) (Exercise, bool) {
	for _, cat := range ExerciseLibrary() {
		for _, ex := range cat.Exercises {
			if ex.ID == id {
				return ex, true
			}
		}
	}
	return Exercise{}, false
}

// Article is one education entry. ReadingTime is in minutes.
type Article struct {
	Title       string
	Category    string
	ReadingTime int
	Content     string
}

// ArticleCatalog returns the education articles. Read state is tracked by
// index, so order is append-only.
func ArticleCatalog() []Article {
	return []Article{
		{
			Title: "Why workstation ergonomics matters", Category: "Why it matters", ReadingTime: 3,
			Content: "Proper ergonomics is not a luxury, it is an investment in your health. Working at a badly arranged desk causes pain, fatigue and long-term damage: over 79% of office workers feel work-related pain daily. The good news is that most problems can be fixed within two or three weeks of simple changes, usually by rearranging the space and building a few habits rather than buying equipment.",
		},
		{
			Title: "The 90-degree angle and why it matters", Category: "How to do it", ReadingTime: 3,
			Content: "When the knees sit at roughly 90° and the thighs are parallel to the floor, blood flow is optimal. Tucking the legs under the seat or stretching them far forward restricts circulation and invites clots, varicose veins and pain. Feet must be fully supported; if they dangle, use a footrest. Fixing this one setting can change how you feel within a week or two.",
		},
		{
			Title: "Monitor at eye level", Category: "How to do it", ReadingTime: 3,
			Content: "Your head should stay in a neutral position while you look at the screen. A monitor placed too low pulls the head forward; after half an hour the neck aches, and after a year the ache is chronic. Keep the top edge of the screen at or slightly below eye level, about an arm's length away (50–70 cm). It is one of the highest-impact changes you can make.",
		},
		{
			Title: "Avoiding carpal tunnel syndrome", Category: "Guide", ReadingTime: 4,
			Content: "Typing a lot with the mouse in the wrong place is the classic recipe for carpal tunnel syndrome: a nerve compressed in the wrist canal causing tingling, pain and sleepless nights. Prevention is cheap: keep the mouse at the same height as the keyboard, keep the wrists straight, and stretch the hands every 30 minutes. If symptoms have already appeared, add a wrist rest.",
		},
		{
			Title: "Ergonomics synergy: the domino effect", Category: "Why it matters", ReadingTime: 3,
			Content: "Ergonomics is a system, not a list of independent fixes. A well-placed monitor needs a well-adjusted chair; the chair needs a footrest; the footrest needs regular breaks and movement. Improving 70% of the setup can still be undone by the remaining 30%, so start with the biggest problem and keep layering changes until the whole station works together.",
		},
		{
			Title: "Microbreaks: the best investment", Category: "Guide", ReadingTime: 4,
			Content: "You do not need long breaks. Standing up for five minutes every 30–40 minutes and doing a couple of stretches restores blood flow, rests the eyes and resets your focus. Research shows the short-break rhythm actually increases productivity. Set a timer and treat it as part of the job.",
		},
	}
}
