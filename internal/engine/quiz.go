package engine

// QuizQuestion is one multiple-choice question of the Platinum bonus quiz.
// Answer indexes into Options.
type QuizQuestion struct {
	Prompt  string
	Options []string
	Answer  int
}

// QuizQuestions returns the bonus quiz. The quiz unlocks at the Platinum
// threshold and its reward is granted once, regardless of the score.
func QuizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			Prompt:  "Where should the top edge of your monitor sit?",
			Options: []string{"Well above eye level", "At or slightly below eye level", "At chest level"},
			Answer:  1,
		},
		{
			Prompt:  "What angle should your knees rest at while seated?",
			Options: []string{"About 45 degrees", "About 90 degrees", "Fully extended"},
			Answer:  1,
		},
		{
			Prompt:  "How often should you take a microbreak?",
			Options: []string{"Every 30-40 minutes", "Every 3 hours", "Only when something hurts"},
			Answer:  0,
		},
		{
			Prompt:  "Where should the mouse be relative to the keyboard?",
			Options: []string{"On a higher shelf", "At the same height, right next to it", "Anywhere within reach"},
			Answer:  1,
		},
		{
			Prompt:  "What is the recommended distance to the screen?",
			Options: []string{"20-30 cm", "50-70 cm", "More than 1.5 m"},
			Answer:  1,
		},
	}
}
