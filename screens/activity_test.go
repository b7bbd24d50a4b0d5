package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/internal/content"
)

func testActivity(t *testing.T, id string, d content.Difficulty, onFinish func(correct, total, stars int) tea.Cmd) *ActivityScreen {
	t.Helper()
	activity, ok := content.ActivityByID(id)
	if !ok {
		t.Fatalf("unknown activity %s", id)
	}
	return NewActivityScreen(activity, d, "cheerful", onFinish, nil)
}

func TestActivityTypedRound(t *testing.T) {
	var gotCorrect, gotTotal, gotStars int
	s := testActivity(t, "counting", content.DifficultyEasy, func(correct, total, stars int) tea.Cmd {
		gotCorrect, gotTotal, gotStars = correct, total, stars
		return nil
	})

	exercises := content.ExercisesFor("counting", content.DifficultyEasy)
	for _, ex := range exercises {
		for _, r := range ex.Answer {
			_, _, _ = s.Update(key(string(r)))
		}
		_, _, _ = s.Update(key("enter")) // grade
		view := s.View(60, 24)
		if !strings.Contains(view, "Great job") {
			t.Fatalf("correct answer should praise, got:\n%s", view)
		}
		_, _, _ = s.Update(key("enter")) // next
	}

	if gotCorrect != len(exercises) || gotTotal != len(exercises) {
		t.Fatalf("finish = %d/%d, want %d/%d", gotCorrect, gotTotal, len(exercises), len(exercises))
	}
	if gotStars != 3 {
		t.Fatalf("stars = %d, want 3", gotStars)
	}
	if !strings.Contains(s.View(60, 24), "round over") {
		t.Fatalf("done view missing")
	}
}

func TestActivityChoiceRound(t *testing.T) {
	finished := false
	s := testActivity(t, "letters", content.DifficultyEasy, func(correct, total, stars int) tea.Cmd {
		finished = true
		if correct != 0 {
			t.Fatalf("always picking the first wrong option scored %d", correct)
		}
		return nil
	})

	exercises := content.ExercisesFor("letters", content.DifficultyEasy)
	for _, ex := range exercises {
		// move to an option that is not the answer when possible
		if ex.Choices[0] == ex.Answer {
			_, _, _ = s.Update(key("down"))
		}
		_, _, _ = s.Update(key("enter")) // commit the choice
		view := s.View(60, 24)
		if !strings.Contains(view, ex.Answer) {
			t.Fatalf("feedback should reveal the answer, got:\n%s", view)
		}
		_, _, _ = s.Update(key("enter")) // next
	}
	if !finished {
		t.Fatalf("round never finished")
	}
}

func TestActivityWrongTypedAnswerShowsCorrection(t *testing.T) {
	s := testActivity(t, "counting", content.DifficultyEasy, nil)
	_, _, _ = s.Update(key("9"))
	_, _, _ = s.Update(key("9"))
	_, _, _ = s.Update(key("enter"))

	view := s.View(60, 24)
	if !strings.Contains(view, "The answer was") {
		t.Fatalf("wrong answer should show the correction, got:\n%s", view)
	}
}

func TestActivityEscLeavesRound(t *testing.T) {
	s := testActivity(t, "counting", content.DifficultyEasy, nil)
	_, _, pop := s.Update(key("esc"))
	if !pop {
		t.Fatalf("esc should leave the round")
	}
}

func TestActivityEmptyTypedAnswerIgnored(t *testing.T) {
	s := testActivity(t, "counting", content.DifficultyEasy, nil)
	_, _, _ = s.Update(key("enter"))
	if s.phase != phaseAnswering {
		t.Fatalf("empty answer should not be graded")
	}
}

func TestActivityChoiceSelectorClampsWhileBrowsing(t *testing.T) {
	s := testActivity(t, "letters", content.DifficultyEasy, nil)
	// walk far past the end of the option list
	for i := 0; i < 10; i++ {
		_, _, _ = s.Update(key("down"))
	}
	ex := content.ExercisesFor("letters", content.DifficultyEasy)[0]
	if got := s.choice.ProvisionalIndex(); got != len(ex.Choices)-1 {
		t.Fatalf("cursor = %d, want clamped to %d", got, len(ex.Choices)-1)
	}
}
