package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fill struct {
	ch string
}

func (f fill) Render(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(f.ch, width)
	}
	return strings.Join(rows, "\n")
}

func TestHStackWidths(t *testing.T) {
	out := HStack{Widgets: []Widget{fill{"a"}, fill{"b"}}, Gap: 1}.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w != 21 {
			t.Fatalf("line width = %d, want 21", w)
		}
	}
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[0], "b") {
		t.Fatalf("both widgets should render: %q", lines[0])
	}
}

func TestVStackHeights(t *testing.T) {
	out := VStack{Widgets: []Widget{fill{"a"}, fill{"b"}}}.Render(4, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "a") {
		t.Fatalf("first widget should come first")
	}
	if !strings.HasPrefix(lines[5], "b") {
		t.Fatalf("second widget should come last")
	}
}

func TestStackBreakpoint(t *testing.T) {
	s := Stack{Widgets: []Widget{fill{"a"}, fill{"b"}}, Breakpoint: 30}

	wide := s.Render(40, 2)
	lines := strings.Split(wide, "\n")
	if len(lines) != 2 {
		t.Fatalf("wide layout has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[0], "b") {
		t.Fatalf("wide layout should place widgets side by side: %q", lines[0])
	}

	narrow := s.Render(10, 6)
	lines = strings.Split(narrow, "\n")
	if len(lines) != 6 {
		t.Fatalf("narrow layout has %d lines, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "a") || !strings.HasPrefix(lines[5], "b") {
		t.Fatalf("narrow layout should stack widgets:\n%s", narrow)
	}
}

func TestSplitWidthsDistributesRemainder(t *testing.T) {
	got := splitWidths(10, 3, nil)
	sum := 0
	for _, w := range got {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("widths %v sum to %d, want 10", got, sum)
	}
}

func TestSplitWidthsRatios(t *testing.T) {
	got := splitWidths(10, 2, []float64{3, 1})
	if got[0] <= got[1] {
		t.Fatalf("ratios ignored: %v", got)
	}
	if got[0]+got[1] != 10 {
		t.Fatalf("widths %v do not fill total", got)
	}
}

func TestZeroSize(t *testing.T) {
	if out := (HStack{Widgets: []Widget{fill{"a"}}}).Render(0, 5); out != "" {
		t.Fatalf("zero width should render nothing")
	}
	if out := (VStack{Widgets: []Widget{fill{"a"}}}).Render(5, 0); out != "" {
		t.Fatalf("zero height should render nothing")
	}
}
