// Package tabs holds the three top-level tabs: Learn, Progress and Settings.
package tabs

import (
	"context"
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/core"
	"owlet/internal/content"
	"owlet/internal/database"
	"owlet/internal/database/repository"
	"owlet/screens"
	"owlet/widgets"
)

// LearnTab lists the activities with their earned stars. Enter starts a
// round; the walkthrough overlay is pushed on top for activities the child
// has not seen yet.
type LearnTab struct {
	cursor     int
	activities []content.Activity
	progress   map[string]repository.ActivityProgress
}

func NewLearnTab() *LearnTab {
	return &LearnTab{activities: content.Activities()}
}

func (t *LearnTab) ID() string    { return "learn" }
func (t *LearnTab) Title() string { return "Learn" }
func (t *LearnTab) Scope() string { return "tab:learn" }

func (t *LearnTab) InitTab(m *core.Model) tea.Cmd {
	t.refresh(m)
	return nil
}

func (t *LearnTab) refresh(m *core.Model) {
	if m.DB == nil {
		return
	}
	all, err := repository.NewProgressRepo(m.DB).All(context.Background())
	if err != nil {
		m.SetError(err)
		return
	}
	t.progress = all
}

func (t *LearnTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.ProgressSavedMsg:
		t.refresh(m)
		if msg.Err == nil && msg.Stars > 0 {
			m.SetStatus(fmt.Sprintf("Saved: %d star(s) earned!", msg.Stars))
		}
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if t.cursor < len(t.activities)-1 {
				t.cursor++
			}
		case "k", "up":
			if t.cursor > 0 {
				t.cursor--
			}
		case "enter":
			return t.startActivity(m)
		}
	}
	return nil
}

func (t *LearnTab) startActivity(m *core.Model) tea.Cmd {
	if t.cursor < 0 || t.cursor >= len(t.activities) {
		return nil
	}
	activity := t.activities[t.cursor]
	difficulty := content.ParseDifficulty(m.Prefs.Difficulty)
	db := m.DB

	onFinish := func(correct, total, stars int) tea.Cmd {
		return func() tea.Msg {
			round := repository.Round{
				ActivityID: activity.ID,
				Difficulty: string(difficulty),
				Correct:    correct,
				Total:      total,
				Stars:      stars,
			}
			if db == nil {
				return core.ProgressSavedMsg{ActivityID: activity.ID, Stars: stars}
			}
			round.PlayedAt = database.Now()
			err := repository.NewProgressRepo(db).RecordRound(context.Background(), round)
			return core.ProgressSavedMsg{ActivityID: activity.ID, Stars: stars, Err: err}
		}
	}
	openTutorial := func() tea.Msg {
		return core.PushScreenMsg{Screen: newTutorial(db, activity)}
	}

	m.PushScreen(screens.NewActivityScreen(activity, difficulty, m.Prefs.Feedback, onFinish, openTutorial))
	if p, ok := t.progress[activity.ID]; !ok || !p.TutorialSeen {
		m.PushScreen(newTutorial(db, activity))
	}
	return nil
}

// newTutorial builds the walkthrough overlay for an activity. Dismissing it
// marks the walkthrough seen so it is skipped next time.
func newTutorial(db *sql.DB, activity content.Activity) core.Screen {
	onDismiss := func() tea.Msg {
		if db == nil {
			return nil
		}
		if err := repository.NewProgressRepo(db).MarkTutorialSeen(context.Background(), activity.ID); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return nil
	}
	return screens.NewTutorialScreen(activity, content.TutorialFor(activity.ID), onDismiss)
}

func (t *LearnTab) Build(m *core.Model) widgets.Widget {
	rows := make([]widgets.ListRow, len(t.activities))
	for i, a := range t.activities {
		stars := 0
		if p, ok := t.progress[a.ID]; ok {
			stars = p.Stars
		}
		rows[i] = widgets.ListRow{
			Label: a.Title,
			Meta:  starMeter(stars) + "  " + a.Tagline,
		}
	}
	list := widgets.List{Title: "", Rows: rows, Cursor: t.cursor}
	return learnWidget{list: list}
}

type learnWidget struct {
	list widgets.List
}

func (w learnWidget) Render(width, height int) string {
	return widgets.Pane{
		Title:   "Activities",
		Height:  height,
		Content: w.list.Render(width-4, height-2),
	}.Render(width, height)
}
