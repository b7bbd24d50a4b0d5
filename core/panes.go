package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"owlet/widgets"
)

type Pane interface {
	ID() string
	Title() string
	Scope() string
	Focusable() bool
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnSelect() tea.Cmd
	OnDeselect() tea.Cmd
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// PaneKeyHandler lets a tab built on a PaneHost take keys before the
// registry-driven routing sees them.
type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
}

type StaticPane struct {
	id     string
	title  string
	scope  string
	focus  bool
	text   string
	height int
}

func NewStaticPane(id, title, scope string, focusable bool, text string, height int) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, focus: focusable, text: text, height: height}
}

func (p *StaticPane) SetText(text string) { p.text = text }

func (p *StaticPane) ID() string                 { return p.id }
func (p *StaticPane) Title() string              { return p.title }
func (p *StaticPane) Scope() string              { return p.scope }
func (p *StaticPane) Focusable() bool            { return p.focus }
func (p *StaticPane) Init() tea.Cmd              { return nil }
func (p *StaticPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) View(width, height int, selected, focused bool) string {
	return widgets.Pane{Title: p.title, Height: p.height, Content: p.text, Selected: selected, Focused: focused}.Render(width, height)
}
func (p *StaticPane) OnSelect() tea.Cmd   { return nil }
func (p *StaticPane) OnDeselect() tea.Cmd { return nil }
func (p *StaticPane) OnFocus() tea.Cmd    { return nil }
func (p *StaticPane) OnBlur() tea.Cmd     { return nil }

type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

func NewPaneHost(panes ...Pane) PaneHost {
	return PaneHost{panes: panes, selected: 0, focused: -1}
}

func (h *PaneHost) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.panes))
	for _, p := range h.panes {
		if p == nil {
			continue
		}
		if cmd := p.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) Scope() string {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.panes[h.focused].Scope()
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.panes[h.selected].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.panes[h.focused].Title()
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.panes[h.selected].Title()
	}
	return ""
}

func (h *PaneHost) activeIndex() int {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.focused
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.selected
	}
	return -1
}

func (h *PaneHost) UpdateActive(m *Model, msg tea.Msg) tea.Cmd {
	_ = m
	idx := h.activeIndex()
	if idx < 0 || idx >= len(h.panes) {
		return nil
	}
	return h.panes[idx].Update(msg)
}

func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.focused >= 0 && h.focused < len(h.panes) {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.move(m, -1)
	case "right", "down":
		return true, h.move(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	default:
		return false, nil
	}
}

func (h *PaneHost) move(m *Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	prev := h.selected
	prevFocused := h.focused
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	if prev == h.selected {
		return nil
	}
	h.focused = -1
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	cmds := []tea.Cmd{h.panes[prev].OnDeselect(), h.panes[h.selected].OnSelect()}
	if prevFocused >= 0 && prevFocused < len(h.panes) {
		cmds = append(cmds, h.panes[prevFocused].OnBlur())
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) focusSelected(m *Model) tea.Cmd {
	if len(h.panes) == 0 || h.selected < 0 || h.selected >= len(h.panes) {
		return nil
	}
	if !h.panes[h.selected].Focusable() {
		return nil
	}
	prevFocused := h.focused
	h.focused = h.selected
	m.SetStatus("Focused pane: " + h.panes[h.focused].Title())
	if prevFocused >= 0 && prevFocused < len(h.panes) {
		return tea.Batch(h.panes[prevFocused].OnBlur(), h.panes[h.focused].OnFocus())
	}
	return h.panes[h.focused].OnFocus()
}

func (h *PaneHost) unfocus(m *Model) tea.Cmd {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil
	}
	idx := h.focused
	h.focused = -1
	m.SetStatus("Pane unfocused: " + h.panes[idx].Title())
	return h.panes[idx].OnBlur()
}

type paneWidget struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w paneWidget) Render(width, height int) string {
	if w.pane == nil {
		return widgets.Pane{Title: "Missing Pane", Height: 10, Content: ""}.Render(width, height)
	}
	return w.pane.View(width, height, w.selected, w.focused)
}

func (h *PaneHost) BuildPane(id string, m *Model) widgets.Widget {
	_ = m
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Height: 10, Content: id}
}
