package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Widget interface {
	Render(width, height int) string
}

// Box frames a block of content in rounded chrome. Screens mount it around
// exercise illustrations; zero width and height size the frame to its
// content instead of filling a layout slot.
type Box struct {
	Title   string
	Content string
	Tint    lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if b.Tint != nil {
		style = style.BorderForeground(b.Tint).Foreground(b.Tint)
	}
	if width > 0 {
		style = style.Width(width - 2)
	}
	if height > 0 {
		style = style.Height(max(1, height-2))
	}
	content := strings.Trim(b.Content, "\n")
	if b.Title != "" {
		content = lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + content
	}
	return style.Render(content)
}
