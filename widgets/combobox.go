package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ComboBox draws a labeled dropdown field. Closed it shows the committed
// value; open it shows the option list with the browsing cursor and a dot on
// the committed row. State lives in core.Selector; this is chrome only.
type ComboBox struct {
	Label     string
	Value     string
	Options   []string
	Cursor    int
	Committed int
	Open      bool
	Focused   bool
}

func (c ComboBox) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	fieldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	dotStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))

	value := c.Value
	if strings.TrimSpace(value) == "" {
		value = "(none)"
	}
	arrow := "▾"
	if c.Open {
		arrow = "▴"
	}
	field := "[ " + value + " " + arrow + " ]"
	if c.Focused && !c.Open {
		field = focusStyle.Render(field)
	} else {
		field = fieldStyle.Render(field)
	}
	lines := []string{ansi.Truncate(labelStyle.Render(c.Label+" ")+field, width, "")}

	if c.Open {
		visible := height - 1
		start := 0
		if visible > 0 && c.Cursor >= visible {
			start = c.Cursor - visible + 1
		}
		for i := start; i < len(c.Options) && i-start < visible; i++ {
			prefix := "   "
			style := fieldStyle
			if i == c.Cursor {
				prefix = " ▶ "
				style = cursorStyle
			}
			mark := "  "
			if i == c.Committed {
				mark = dotStyle.Render("• ")
			}
			lines = append(lines, ansi.Truncate(style.Render(prefix)+mark+style.Render(c.Options[i]), width, ""))
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
