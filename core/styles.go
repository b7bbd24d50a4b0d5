package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(theme.Text)

	headerAppStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	headerBadgeStyle = lipgloss.NewStyle().
				Foreground(theme.Star).
				Background(theme.Mantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(theme.Mantle).
			Foreground(theme.Text)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(theme.Border).
			Background(theme.Mantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(theme.Surface).
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(theme.Mantle).
				Foreground(theme.TabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(theme.Success).
			Background(theme.Surface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(theme.Error).
				Background(theme.Surface)
	footerStyle = lipgloss.NewStyle().
			Background(theme.Mantle)
)
