package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/core"
	"owlet/internal/content"
)

func testTutorial(onDismiss tea.Cmd) *TutorialScreen {
	activity, _ := content.ActivityByID("counting")
	return NewTutorialScreen(activity, content.TutorialFor("counting"), onDismiss)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTutorialWalkAndDismiss(t *testing.T) {
	dismissed := false
	s := testTutorial(func() tea.Msg {
		dismissed = true
		return nil
	})

	_, _, pop := s.Update(key("right"))
	if pop {
		t.Fatalf("advancing should not close the walkthrough")
	}
	_, _, _ = s.Update(key("right"))

	_, cmd, pop := s.Update(key("enter"))
	if !pop {
		t.Fatalf("enter on the last page should close")
	}
	if cmd == nil {
		t.Fatalf("dismissal should carry the onDismiss cmd")
	}
	_ = cmd()
	if !dismissed {
		t.Fatalf("onDismiss did not run")
	}
}

func TestTutorialEscSkipsFromAnywhere(t *testing.T) {
	s := testTutorial(nil)
	_, _, _ = s.Update(key("right"))
	_, _, pop := s.Update(key("esc"))
	if !pop {
		t.Fatalf("esc should close the walkthrough")
	}
}

func TestTutorialViewShowsStepAndDots(t *testing.T) {
	s := testTutorial(nil)
	steps := content.TutorialFor("counting")

	view := s.View(60, 20)
	if !strings.Contains(view, steps[0].Instruction) {
		t.Fatalf("first instruction missing from view")
	}
	if !strings.Contains(view, "●") || !strings.Contains(view, "○") {
		t.Fatalf("progress dots missing")
	}

	_, _, _ = s.Update(key("right"))
	view = s.View(60, 20)
	if !strings.Contains(view, steps[1].Instruction) {
		t.Fatalf("second instruction missing after advance")
	}
}

func TestTutorialWithoutStepsClosesOnAnyKey(t *testing.T) {
	activity, _ := content.ActivityByID("counting")
	dismissed := false
	s := NewTutorialScreen(activity, nil, func() tea.Msg {
		dismissed = true
		return nil
	})

	_, cmd, pop := s.Update(key("x"))
	if !pop {
		t.Fatalf("empty walkthrough should close on any key")
	}
	if cmd == nil {
		t.Fatalf("empty walkthrough should still fire onDismiss")
	}
	_ = cmd()
	if !dismissed {
		t.Fatalf("onDismiss did not run")
	}
}

func TestTutorialScope(t *testing.T) {
	s := testTutorial(nil)
	if s.Scope() != "screen:tutorial" {
		t.Fatalf("scope = %q", s.Scope())
	}
	var _ core.Screen = s
}
