package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"owlet/core"
)

// PaletteScreen is the fuzzy command palette. Typing narrows the command
// list; the cursor over the results is a selector with nothing committed, so
// esc always closes without running anything.
type PaletteScreen struct {
	model    *core.Model
	registry *core.CommandRegistry
	scope    string
	query    string
	results  []core.CommandResult
	selector *core.Selector
}

func NewPaletteScreen(m *core.Model, scope string) *PaletteScreen {
	s := &PaletteScreen{
		model:    m,
		registry: m.CommandRegistry(),
		scope:    scope,
	}
	s.refresh()
	return s
}

func (s *PaletteScreen) Scope() string { return "screen:palette" }
func (s *PaletteScreen) Title() string { return "Commands" }

// refresh reruns the search and rebuilds the cursor, keeping it in range.
func (s *PaletteScreen) refresh() {
	prev := -1
	if s.selector != nil {
		prev = s.selector.ProvisionalIndex()
	}
	s.results = s.registry.Search(s.query, s.scope, s.model)
	items := make([]core.SelectorItem, len(s.results))
	for i, r := range s.results {
		items[i] = core.SelectorItem{Label: r.Name, Value: r.CommandID}
	}
	s.selector = core.NewSelector(items)
	s.selector.Open()
	if prev > 0 {
		s.selector.MoveProvisional(prev)
	}
}

func (s *PaletteScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}

	switch key.String() {
	case "esc":
		return s, nil, true
	case "up", "ctrl+p":
		s.selector.HandleKey("up")
		return s, nil, false
	case "down", "ctrl+n":
		s.selector.HandleKey("down")
		return s, nil, false
	case "enter":
		idx := s.selector.ProvisionalIndex()
		if idx < 0 || idx >= len(s.results) {
			return s, nil, true
		}
		chosen := s.results[idx]
		if chosen.Disabled {
			reason := chosen.Reason
			if reason == "" {
				reason = "command is disabled"
			}
			return s, core.StatusCmd(reason), false
		}
		id := chosen.CommandID
		return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
	case "backspace":
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
			s.refresh()
		}
		return s, nil, false
	}

	if key.Type == tea.KeyRunes && !key.Alt {
		s.query += string(key.Runes)
		s.refresh()
	}
	return s, nil, false
}

func (s *PaletteScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Bold(true)
	queryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))

	lines := []string{
		titleStyle.Render("Commands"),
		queryStyle.Render("> " + s.query + "█"),
		"",
	}
	if len(s.results) == 0 {
		lines = append(lines, dimStyle.Render("  no matching commands"))
	}
	for i, r := range s.results {
		prefix := "  "
		style := rowStyle
		if i == s.selector.ProvisionalIndex() {
			prefix = "▶ "
			style = cursorStyle
		}
		if r.Disabled {
			style = dimStyle
		}
		line := style.Render(prefix + r.Name)
		if r.Desc != "" {
			line += descStyle.Render("  " + r.Desc)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", descStyle.Render("↑/↓ choose  enter run  esc close"))
	return strings.Join(lines, "\n")
}
