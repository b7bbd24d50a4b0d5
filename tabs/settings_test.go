package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/core"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testSettings() (*SettingsTab, *core.Model) {
	m := core.NewModel(nil, core.NewKeyRegistry(nil), core.NewCommandRegistry(nil), nil, core.Prefs{
		Difficulty: "easy",
		Feedback:   "cheerful",
	})
	tab := NewSettingsTab()
	_ = tab.InitTab(&m)
	return tab, &m
}

func TestSettingsCommitEmitsPrefs(t *testing.T) {
	tab, m := testSettings()

	_ = tab.Update(m, key("enter")) // open difficulty
	_ = tab.Update(m, key("down"))  // easy -> medium
	cmd := tab.Update(m, key("enter"))
	if cmd == nil {
		t.Fatalf("commit should emit a cmd")
	}
	msg, ok := cmd().(core.PrefsChangedMsg)
	if !ok {
		t.Fatalf("msg = %#v, want PrefsChangedMsg", cmd())
	}
	if msg.Prefs.Difficulty != "medium" {
		t.Fatalf("difficulty = %q, want medium", msg.Prefs.Difficulty)
	}
	if msg.Prefs.Feedback != "cheerful" {
		t.Fatalf("commit touched the other field: %+v", msg.Prefs)
	}
}

func TestSettingsDiscardKeepsValue(t *testing.T) {
	tab, m := testSettings()

	_ = tab.Update(m, key("enter"))
	_ = tab.Update(m, key("down"))
	cmd := tab.Update(m, key("esc"))
	if cmd != nil {
		t.Fatalf("discard should emit nothing")
	}
	item, ok := tab.fields[0].selector.CommittedItem()
	if !ok || item.Value != "easy" {
		t.Fatalf("discard changed committed value: %+v", item)
	}
	if tab.fields[0].selector.IsOpen() {
		t.Fatalf("discard should close the dropdown")
	}
}

func TestSettingsFieldNavigation(t *testing.T) {
	tab, m := testSettings()
	if tab.focused != 0 {
		t.Fatalf("focus should start on the first field")
	}
	_ = tab.Update(m, key("tab"))
	if tab.focused != 1 {
		t.Fatalf("tab should move to the feedback field")
	}
	_ = tab.Update(m, key("tab"))
	if tab.focused != 0 {
		t.Fatalf("focus should wrap")
	}
	_ = tab.Update(m, key("shift+tab"))
	if tab.focused != 1 {
		t.Fatalf("shift+tab should move backward")
	}
	_ = tab.Update(m, key("shift+tab"))
	if tab.focused != 0 {
		t.Fatalf("shift+tab should wrap backward")
	}

	// navigation keys must not reach a closed selector
	if tab.fields[0].selector.IsOpen() {
		t.Fatalf("selector opened by navigation")
	}
}

func TestSettingsOpenOnlyFocusedField(t *testing.T) {
	tab, m := testSettings()
	_ = tab.Update(m, key("tab")) // focus feedback
	_ = tab.Update(m, key("enter"))
	if tab.fields[0].selector.IsOpen() {
		t.Fatalf("difficulty opened instead of feedback")
	}
	if !tab.fields[1].selector.IsOpen() {
		t.Fatalf("feedback should be open")
	}
	cmd := tab.Update(m, key("enter")) // commit without moving
	if cmd == nil {
		t.Fatalf("commit should emit a cmd")
	}
	msg := cmd().(core.PrefsChangedMsg)
	if msg.Prefs.Feedback != "cheerful" {
		t.Fatalf("feedback = %q, want cheerful", msg.Prefs.Feedback)
	}
}

func TestSettingsRender(t *testing.T) {
	tab, m := testSettings()
	view := tab.Build(m).Render(60, 20)
	if !strings.Contains(view, "Difficulty") || !strings.Contains(view, "Feedback") {
		t.Fatalf("fields missing from view:\n%s", view)
	}
	if !strings.Contains(view, "Easy") {
		t.Fatalf("committed value missing from view:\n%s", view)
	}
}
