package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/core"
	"owlet/internal/database/repository"
)

// paletteCommands builds the command palette entries. Tab switches and quit
// are available everywhere; the difficulty shortcuts persist like the
// settings tab does and grey out when already active.
func paletteCommands() []core.Command {
	cmds := []core.Command{
		{
			ID:          "go-learn",
			Name:        "Go to Learn",
			Description: "open the activity list",
			Keywords:    []string{"activities", "games", "play"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 0} }
			},
		},
		{
			ID:          "go-progress",
			Name:        "Go to Progress",
			Description: "see stars and recent rounds",
			Keywords:    []string{"stars", "history", "rounds"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 1} }
			},
		},
		{
			ID:          "go-settings",
			Name:        "Go to Settings",
			Description: "change difficulty and feedback",
			Keywords:    []string{"difficulty", "feedback", "options"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 2} }
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "leave owlet",
			Keywords:    []string{"exit", "bye"},
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Quit
			},
		},
	}

	difficulties := []struct {
		id, name, value string
	}{
		{"difficulty-easy", "Difficulty: Easy", "easy"},
		{"difficulty-medium", "Difficulty: Medium", "medium"},
		{"difficulty-tricky", "Difficulty: Tricky", "tricky"},
	}
	for _, d := range difficulties {
		value := d.value
		cmds = append(cmds, core.Command{
			ID:          d.id,
			Name:        d.name,
			Description: "switch exercise difficulty",
			Keywords:    []string{"level", d.value},
			Disabled: func(m *core.Model) (bool, string) {
				if m != nil && m.Prefs.Difficulty == value {
					return true, "already on " + value
				}
				return false, ""
			},
			Execute: func(m *core.Model) tea.Cmd {
				prefs := m.Prefs
				prefs.Difficulty = value
				db := m.DB
				return func() tea.Msg {
					if db != nil {
						if err := repository.NewSettingsRepo(db).Upsert(context.Background(), "difficulty", value); err != nil {
							return core.StatusMsg{Text: err.Error(), IsErr: true}
						}
					}
					return core.PrefsChangedMsg{Prefs: prefs}
				}
			},
		})
	}
	return cmds
}
