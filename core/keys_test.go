package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyRegistryScopedAction(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"j", "down"}, Action: "list-down", Scopes: []string{"tab:learn"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})

	if !reg.IsAction(keyMsg("j"), "list-down", "tab:learn") {
		t.Fatalf("j should be list-down in tab:learn")
	}
	if reg.IsAction(keyMsg("j"), "list-down", "tab:settings") {
		t.Fatalf("list-down should not match outside its scope")
	}
	if !reg.IsAction(keyMsg("q"), "quit", "tab:settings") {
		t.Fatalf("wildcard scope should match everywhere")
	}
}

func TestKeyRegistryScopeFamilyWildcard(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"tab:*"}},
	})

	for _, scope := range []string{"tab:learn", "tab:progress", "tab:settings"} {
		if !reg.IsAction(keyMsg("q"), "quit", scope) {
			t.Fatalf("tab:* should cover %s", scope)
		}
	}
	if reg.IsAction(keyMsg("q"), "quit", "screen:activity") {
		t.Fatalf("tab:* should not cover screen scopes")
	}
}

func TestKeyRegistrySpaceAlias(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"space"}, Action: "select"},
	})
	pressed := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if !reg.IsAction(pressed, "select", "tab:learn") {
		t.Fatalf("space binding should match the space key press")
	}
}

func TestKeyRegistryActionFor(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())

	action, ok := reg.ActionFor(keyMsg("2"), "tab:learn")
	if !ok || action != "switch-tab-2" {
		t.Fatalf("ActionFor(2) = %q, %v; want switch-tab-2", action, ok)
	}
	if _, ok := reg.ActionFor(keyMsg("z"), "tab:learn"); ok {
		t.Fatalf("unbound key should resolve to no action")
	}
}

func TestKeyRegistryEmptyScopesMatchAll(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter"}, Action: "select"},
	})
	if !reg.IsAction(keyMsg("enter"), "select", "screen:palette") {
		t.Fatalf("binding with no scopes should match any scope")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	got := reg.BindingsForScope("screen:tutorial")
	if len(got) == 0 {
		t.Fatalf("tutorial scope has no bindings")
	}
	for _, b := range got {
		if !scopeMatch("screen:tutorial", b.Scopes) {
			t.Fatalf("binding %q leaked into tutorial scope", b.Action)
		}
	}
}

func TestDefaultKeybindingsByAction(t *testing.T) {
	byAction := DefaultKeybindingsByAction(DefaultKeyBindings())
	if len(byAction["quit"]) == 0 {
		t.Fatalf("quit has no keys")
	}
	if len(byAction["step-nav"]) == 0 {
		t.Fatalf("step-nav has no keys")
	}
}
