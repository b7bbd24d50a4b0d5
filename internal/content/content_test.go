package content

import (
	"strings"
	"testing"
)

func TestEveryActivityHasExercisesAndTutorial(t *testing.T) {
	for _, a := range Activities() {
		for _, d := range Difficulties() {
			set := ExercisesFor(a.ID, d)
			if len(set) == 0 {
				t.Fatalf("%s/%s has no exercises", a.ID, d)
			}
		}
		if len(TutorialFor(a.ID)) == 0 {
			t.Fatalf("%s has no walkthrough", a.ID)
		}
	}
}

func TestExercisesAreWellFormed(t *testing.T) {
	for _, a := range Activities() {
		for _, d := range Difficulties() {
			for _, ex := range ExercisesFor(a.ID, d) {
				if strings.TrimSpace(ex.Prompt) == "" {
					t.Fatalf("%s/%s has an empty prompt", a.ID, d)
				}
				if strings.TrimSpace(ex.Answer) == "" {
					t.Fatalf("%s/%s %q has no answer", a.ID, d, ex.Prompt)
				}
				if len(ex.Choices) > 0 {
					found := false
					for _, c := range ex.Choices {
						if c == ex.Answer {
							found = true
						}
					}
					if !found {
						t.Fatalf("%s/%s %q: answer %q not among choices %v", a.ID, d, ex.Prompt, ex.Answer, ex.Choices)
					}
				}
			}
		}
	}
}

func TestIllustrationRefsResolve(t *testing.T) {
	check := func(key, where string) {
		if key == "" {
			return
		}
		if _, ok := Illustration(key); !ok {
			t.Fatalf("%s references unknown illustration %q", where, key)
		}
	}
	for _, a := range Activities() {
		for _, d := range Difficulties() {
			for _, ex := range ExercisesFor(a.ID, d) {
				check(ex.Illustration, a.ID+" exercise "+ex.Prompt)
			}
		}
		for _, step := range TutorialFor(a.ID) {
			check(step.Illustration, a.ID+" tutorial")
		}
	}
}

func TestParseDifficultyFallback(t *testing.T) {
	if ParseDifficulty("medium") != DifficultyMedium {
		t.Fatalf("medium should parse")
	}
	if ParseDifficulty("impossible") != DifficultyEasy {
		t.Fatalf("unknown difficulty should fall back to easy")
	}
	if ParseDifficulty("") != DifficultyEasy {
		t.Fatalf("empty difficulty should fall back to easy")
	}
}

func TestActivityByID(t *testing.T) {
	if _, ok := ActivityByID("counting"); !ok {
		t.Fatalf("counting missing")
	}
	if _, ok := ActivityByID("algebra"); ok {
		t.Fatalf("unknown activity resolved")
	}
	if ExercisesFor("algebra", DifficultyEasy) != nil {
		t.Fatalf("unknown activity returned exercises")
	}
}
