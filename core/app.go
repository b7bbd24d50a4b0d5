package core

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Prefs mirrors the committed selector values from the settings tab. The
// authoritative copy lives in sqlite; this is the in-session cache tabs read.
type Prefs struct {
	Difficulty string
	Feedback   string
}

type Model struct {
	width           int
	height          int
	tabs            []Tab
	activeTab       int
	screens         ScreenStack
	keys            *KeyRegistry
	commands        *CommandRegistry
	status          string
	statusErr       bool
	quitting        bool
	Prefs           Prefs
	DB              *sql.DB
	OpenPaletteModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, db *sql.DB, prefs Prefs) Model {
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		DB:        db,
		Prefs:     prefs,
		status:    "Hi! Pick a game to play.",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
