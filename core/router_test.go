package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	name string
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) { return f, nil, false }
func (f *fakeScreen) View(width, height int) string              { return f.name }
func (f *fakeScreen) Scope() string                              { return "screen:" + f.name }
func (f *fakeScreen) Title() string                              { return f.name }

func TestScreenStack(t *testing.T) {
	var s ScreenStack
	if s.Top() != nil {
		t.Fatalf("empty stack has a top")
	}
	if s.Pop() != nil {
		t.Fatalf("pop on empty stack returned a screen")
	}

	a := &fakeScreen{name: "a"}
	b := &fakeScreen{name: "b"}
	s.Push(a)
	s.Push(b)

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Top() != b {
		t.Fatalf("top should be last pushed")
	}
	if s.Pop() != b {
		t.Fatalf("pop should return last pushed")
	}
	if s.Top() != a {
		t.Fatalf("top should fall back to earlier screen")
	}
}

func TestScreenStackSetTop(t *testing.T) {
	var s ScreenStack
	s.SetTop(&fakeScreen{name: "orphan"})
	if s.Len() != 0 {
		t.Fatalf("SetTop on empty stack should not push")
	}

	a := &fakeScreen{name: "a"}
	b := &fakeScreen{name: "b"}
	s.Push(a)
	s.SetTop(b)
	if s.Top() != b || s.Len() != 1 {
		t.Fatalf("SetTop should replace the active screen in place")
	}
	s.SetTop(nil)
	if s.Top() != b {
		t.Fatalf("SetTop(nil) should leave the stack untouched")
	}
}

func TestTabSwitchIndex(t *testing.T) {
	if idx, ok := tabSwitchIndex("switch-tab-3"); !ok || idx != 2 {
		t.Fatalf("switch-tab-3 = %d, %v; want 2, true", idx, ok)
	}
	if _, ok := tabSwitchIndex("quit"); ok {
		t.Fatalf("quit is not a tab switch")
	}
	if _, ok := tabSwitchIndex("switch-tab-0"); ok {
		t.Fatalf("tabs are numbered from 1")
	}
}

func TestModalFirstKeyRouting(t *testing.T) {
	m := NewModel(nil, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), nil, Prefs{})
	m.PushScreen(&fakeScreen{name: "tutorial"})

	if m.ActiveScope() != "screen:tutorial" {
		t.Fatalf("scope = %q, want screen:tutorial", m.ActiveScope())
	}
}
