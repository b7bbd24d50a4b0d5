package core

import "github.com/charmbracelet/lipgloss"

// palette is the catppuccin mocha subset owlet draws with. Star gold is
// reserved for reward chrome (the meters and the difficulty badge) so it
// stays special to the child.
type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Star    lipgloss.Color
	TabOff  lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
}

var theme = palette{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Border:  "#585b70",
	Accent:  "#89b4fa",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
	Star:    "#f9e2af",
	TabOff:  "#7f849c",
	Mantle:  "#181825",
	Surface: "#313244",
}
