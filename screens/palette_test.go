package screens

import (
	"strings"
	"testing"

	"owlet/core"
)

func testPalette() (*PaletteScreen, *core.Model) {
	cmds := []core.Command{
		{ID: "go-learn", Name: "Go to Learn", Scopes: []string{"*"}},
		{ID: "go-progress", Name: "Go to Progress", Scopes: []string{"*"}},
		{ID: "start", Name: "Start activity", Scopes: []string{"tab:learn"}},
	}
	m := core.NewModel(nil, core.NewKeyRegistry(nil), core.NewCommandRegistry(cmds), nil, core.Prefs{})
	return NewPaletteScreen(&m, "tab:learn"), &m
}

func TestPaletteQueryNarrows(t *testing.T) {
	s, _ := testPalette()
	if len(s.results) != 3 {
		t.Fatalf("initial results = %d, want 3", len(s.results))
	}

	for _, r := range "progress" {
		_, _, _ = s.Update(key(string(r)))
	}
	if len(s.results) != 1 || s.results[0].CommandID != "go-progress" {
		t.Fatalf("narrowed results = %+v", s.results)
	}

	_, _, _ = s.Update(key("backspace"))
	if len(s.results) != 1 {
		t.Fatalf("partial query should still match: %+v", s.results)
	}
}

func TestPaletteEnterRunsSelected(t *testing.T) {
	s, _ := testPalette()
	_, _, _ = s.Update(key("down"))

	_, cmd, pop := s.Update(key("enter"))
	if !pop {
		t.Fatalf("enter should close the palette")
	}
	if cmd == nil {
		t.Fatalf("enter should emit an execute cmd")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok {
		t.Fatalf("msg = %#v, want CommandExecuteMsg", cmd())
	}
	if msg.CommandID != s.results[1].CommandID {
		t.Fatalf("executed %q, cursor was on %q", msg.CommandID, s.results[1].CommandID)
	}
}

func TestPaletteEscClosesWithoutRunning(t *testing.T) {
	s, _ := testPalette()
	_, cmd, pop := s.Update(key("esc"))
	if !pop {
		t.Fatalf("esc should close")
	}
	if cmd != nil {
		t.Fatalf("esc should not run anything")
	}
}

func TestPaletteViewListsCommands(t *testing.T) {
	s, _ := testPalette()
	view := s.View(60, 20)
	if !strings.Contains(view, "Go to Learn") {
		t.Fatalf("command names missing from view")
	}
}
