package core

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PrefsChangedMsg:
		m.Prefs = msg.Prefs
		m.SetStatus("Settings saved")
		return m, m.forwardToTabs(msg)
	case ProgressSavedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
		}
		return m, m.forwardToTabs(msg)
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.screens.Len() > 0 {
			return m.updateTopScreen(msg)
		}

		scope := m.ActiveScope()
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if action, ok := m.keys.ActionFor(msg, scope); ok {
			switch {
			case action == "quit":
				m.quitting = true
				return m, tea.Quit
			case action == "open-command-palette" && m.OpenPaletteModal != nil:
				m.screens.Push(m.OpenPaletteModal(&m, scope))
				return m, nil
			default:
				if idx, isTab := tabSwitchIndex(action); isTab {
					m.SwitchTab(idx)
					return m, nil
				}
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
	}

	if m.screens.Len() > 0 {
		return m.updateTopScreen(msg)
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

// updateTopScreen feeds a message to the active overlay and applies the
// screen transition it asks for.
func (m Model) updateTopScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	m.screens.SetTop(next)
	return m, cmd
}

// tabSwitchIndex maps a "switch-tab-N" action to the zero-based tab index.
func tabSwitchIndex(action string) (int, bool) {
	num, found := strings.CutPrefix(action, "switch-tab-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// forwardToTabs hands a message to every tab, not just the active one, so
// inactive tabs can refresh their cached data.
func (m *Model) forwardToTabs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if cmd := t.Update(m, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
