package tabs

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"owlet/core"
	"owlet/internal/database/repository"
	"owlet/widgets"
)

type settingsField struct {
	label    string
	key      string
	selector *core.Selector
}

// SettingsTab edits the difficulty and feedback preferences through dropdown
// fields. A commit writes straight to sqlite and refreshes the in-session
// prefs; esc while a dropdown is open abandons the browse.
type SettingsTab struct {
	fields  []settingsField
	focused int
}

func NewSettingsTab() *SettingsTab {
	return &SettingsTab{}
}

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }

func (t *SettingsTab) InitTab(m *core.Model) tea.Cmd {
	t.fields = []settingsField{
		{
			label: "Difficulty",
			key:   "difficulty",
			selector: newSelectorFor([]core.SelectorItem{
				{Label: "Easy", Value: "easy"},
				{Label: "Medium", Value: "medium"},
				{Label: "Tricky", Value: "tricky"},
			}, m.Prefs.Difficulty),
		},
		{
			label: "Feedback",
			key:   "feedback",
			selector: newSelectorFor([]core.SelectorItem{
				{Label: "Cheerful", Value: "cheerful"},
				{Label: "Quiet", Value: "quiet"},
			}, m.Prefs.Feedback),
		},
	}
	return nil
}

func newSelectorFor(items []core.SelectorItem, value string) *core.Selector {
	committed := -1
	for i, item := range items {
		if item.Value == value {
			committed = i
			break
		}
	}
	return core.NewSelectorAt(items, committed)
}

func (t *SettingsTab) openField() *settingsField {
	for i := range t.fields {
		if t.fields[i].selector.IsOpen() {
			return &t.fields[i]
		}
	}
	return nil
}

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if len(t.fields) == 0 {
		return nil
	}

	if field := t.openField(); field != nil {
		result := field.selector.HandleKey(key.String())
		if result.Action == core.SelectorActionCommitted {
			return t.persist(m, field.key, result.Item.Value)
		}
		return nil
	}

	switch key.String() {
	case "tab", "down", "j":
		t.focused = (t.focused + 1) % len(t.fields)
	case "shift+tab", "up", "k":
		t.focused = (t.focused + len(t.fields) - 1) % len(t.fields)
	case "enter", " ":
		t.fields[t.focused].selector.HandleKey(key.String())
	}
	return nil
}

func (t *SettingsTab) persist(m *core.Model, key, value string) tea.Cmd {
	prefs := m.Prefs
	switch key {
	case "difficulty":
		prefs.Difficulty = value
	case "feedback":
		prefs.Feedback = value
	}
	db := m.DB
	return func() tea.Msg {
		if db != nil {
			if err := repository.NewSettingsRepo(db).Upsert(context.Background(), key, value); err != nil {
				return core.StatusMsg{Text: err.Error(), IsErr: true}
			}
		}
		return core.PrefsChangedMsg{Prefs: prefs}
	}
}

func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	return settingsWidget{tab: t}
}

type settingsWidget struct {
	tab *SettingsTab
}

func (w settingsWidget) Render(width, height int) string {
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))

	var parts []string
	for i, f := range w.tab.fields {
		value := ""
		if item, ok := f.selector.CommittedItem(); ok {
			value = item.Label
		}
		options := make([]string, 0, f.selector.Len())
		for _, item := range f.selector.Items() {
			options = append(options, item.Label)
		}
		box := widgets.ComboBox{
			Label:     f.label + ":",
			Value:     value,
			Options:   options,
			Cursor:    f.selector.ProvisionalIndex(),
			Committed: f.selector.CommittedIndex(),
			Open:      f.selector.IsOpen(),
			Focused:   i == w.tab.focused,
		}
		h := 1
		if box.Open {
			h = 1 + len(options)
		}
		parts = append(parts, box.Render(width-4, h))
	}
	parts = append(parts, "", hintStyle.Render("tab next field  enter change  esc keep current"))

	content := strings.Join(parts, "\n")
	return widgets.Pane{Title: "Settings", Height: height, Content: content}.Render(width, height)
}
