// Package content holds the static pedagogical tables: activities, their
// exercise sets per difficulty, walkthrough steps, and the ASCII
// illustrations the prompts reference. Everything here is immutable data;
// behavior lives in core and screens.
package content

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyTricky Difficulty = "tricky"
)

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyTricky}
}

// ParseDifficulty falls back to easy on anything unknown, so a hand-edited
// config file can never break activity lookup.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyTricky:
		return DifficultyTricky
	default:
		return DifficultyEasy
	}
}

type Activity struct {
	ID      string
	Title   string
	Tagline string
}

// Exercise is one round of an activity. Choices empty means the child types
// the answer; otherwise they pick from the list and Answer must be one of
// the choices.
type Exercise struct {
	Prompt       string
	Illustration string
	Answer       string
	Choices      []string
}

// TutorialStep is one page of an activity walkthrough.
type TutorialStep struct {
	Instruction  string
	Illustration string
}

func Activities() []Activity {
	return []Activity{
		{ID: "counting", Title: "Counting", Tagline: "How many do you see?"},
		{ID: "letters", Title: "Letters", Tagline: "Play with the alphabet"},
		{ID: "colors", Title: "Colors", Tagline: "What color is it?"},
	}
}

func ActivityByID(id string) (Activity, bool) {
	for _, a := range Activities() {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// ExercisesFor returns the exercise table for an activity at a difficulty.
// Unknown activities return nil; unknown difficulties fall back to easy.
func ExercisesFor(activityID string, d Difficulty) []Exercise {
	byDifficulty, ok := exercises[activityID]
	if !ok {
		return nil
	}
	set, ok := byDifficulty[ParseDifficulty(string(d))]
	if !ok {
		return nil
	}
	out := make([]Exercise, len(set))
	copy(out, set)
	return out
}

// TutorialFor returns the walkthrough steps for an activity, or nil.
func TutorialFor(activityID string) []TutorialStep {
	steps, ok := tutorials[activityID]
	if !ok {
		return nil
	}
	out := make([]TutorialStep, len(steps))
	copy(out, steps)
	return out
}
