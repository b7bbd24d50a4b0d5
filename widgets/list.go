package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type ListRow struct {
	Label string
	Meta  string
}

// List renders rows with a cursor. Rows past the height are clipped, keeping
// the cursor row visible.
type List struct {
	Title  string
	Rows   []ListRow
	Cursor int
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))

	out := make([]string, 0, height)
	if strings.TrimSpace(l.Title) != "" {
		out = append(out, titleStyle.Render(ansi.Truncate(l.Title, width, "")))
	}
	visible := height - len(out)
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.Cursor >= visible {
		start = l.Cursor - visible + 1
	}
	for i := start; i < len(l.Rows) && i-start < visible; i++ {
		row := l.Rows[i]
		prefix := "  "
		style := rowStyle
		if i == l.Cursor {
			prefix = "▶ "
			style = cursorStyle
		}
		line := style.Render(prefix + row.Label)
		if strings.TrimSpace(row.Meta) != "" {
			line += metaStyle.Render("  " + row.Meta)
		}
		out = append(out, ansi.Truncate(line, width, ""))
	}
	return strings.Join(out, "\n")
}
