package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

// PrefsChangedMsg is emitted when the settings tab commits a selector value,
// after the host has persisted it.
type PrefsChangedMsg struct {
	Prefs Prefs
}

// ProgressSavedMsg reports the outcome of writing a finished round to sqlite.
type ProgressSavedMsg struct {
	ActivityID string
	Stars      int
	Err        error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
