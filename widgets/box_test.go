package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBoxFramesContent(t *testing.T) {
	out := Box{Title: "Count with me", Content: "\n(o o)\n"}.Render(0, 0)
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╰") {
		t.Fatalf("rounded frame missing:\n%s", out)
	}
	if !strings.Contains(out, "(o o)") {
		t.Fatalf("content missing:\n%s", out)
	}
	if !strings.Contains(out, "Count with me") {
		t.Fatalf("title missing:\n%s", out)
	}
}

func TestBoxSizesToContentByDefault(t *testing.T) {
	small := Box{Content: "hi"}.Render(0, 0)
	if got := len(strings.Split(small, "\n")); got != 3 {
		t.Fatalf("content-sized box has %d lines, want 3", got)
	}

	fixed := Box{Content: "hi"}.Render(20, 6)
	if got := len(strings.Split(fixed, "\n")); got != 6 {
		t.Fatalf("fixed box has %d lines, want 6", got)
	}
}

func TestBoxTint(t *testing.T) {
	out := Box{Content: "hi", Tint: lipgloss.Color("#f9e2af")}.Render(0, 0)
	if !strings.Contains(out, "hi") {
		t.Fatalf("tinted content missing:\n%s", out)
	}
}
