package tabs

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"owlet/core"
	"owlet/internal/content"
	"owlet/internal/database/repository"
	"owlet/widgets"
)

// ProgressTab shows two panes: stars per activity and the most recent
// practice rounds.
type ProgressTab struct {
	host   core.PaneHost
	stars  *core.StaticPane
	recent *core.StaticPane
}

func NewProgressTab() *ProgressTab {
	stars := core.NewStaticPane("stars", "Stars", "pane:stars", false, "", 14)
	recent := core.NewStaticPane("recent", "Recent practice", "pane:recent", false, "", 14)
	return &ProgressTab{
		host:   core.NewPaneHost(stars, recent),
		stars:  stars,
		recent: recent,
	}
}

func (t *ProgressTab) ID() string    { return "progress" }
func (t *ProgressTab) Title() string { return "Progress" }

func (t *ProgressTab) Scope() string { return "tab:progress" }

func (t *ProgressTab) InitTab(m *core.Model) tea.Cmd {
	t.refresh(m)
	return t.host.Init()
}

func (t *ProgressTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *ProgressTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(core.ProgressSavedMsg); ok {
		t.refresh(m)
		return nil
	}
	return t.host.UpdateActive(m, msg)
}

func (t *ProgressTab) refresh(m *core.Model) {
	if m.DB == nil {
		return
	}
	repo := repository.NewProgressRepo(m.DB)
	ctx := context.Background()

	all, err := repo.All(ctx)
	if err != nil {
		m.SetError(err)
		return
	}
	var starLines []string
	for _, a := range content.Activities() {
		p := all[a.ID]
		row := fmt.Sprintf("%-10s %s  best %d/5  rounds %d",
			a.Title,
			starMeter(p.Stars),
			p.BestScore,
			p.RoundsPlayed)
		starLines = append(starLines, row)
	}
	t.stars.SetText(strings.Join(starLines, "\n"))

	rounds, err := repo.Recent(ctx, 8)
	if err != nil {
		m.SetError(err)
		return
	}
	if len(rounds) == 0 {
		t.recent.SetText("No rounds played yet. Visit the Learn tab!")
	} else {
		var lines []string
		for _, r := range rounds {
			title := r.ActivityID
			if a, ok := content.ActivityByID(r.ActivityID); ok {
				title = a.Title
			}
			lines = append(lines, fmt.Sprintf("%s  %s  %d/%d  %s",
				r.PlayedAt.Format("Jan 02 15:04"),
				title,
				r.Correct,
				r.Total,
				starMeter(r.Stars)))
		}
		t.recent.SetText(strings.Join(lines, "\n"))
	}
}

func (t *ProgressTab) Build(m *core.Model) widgets.Widget {
	return widgets.Stack{
		Widgets: []widgets.Widget{
			t.host.BuildPane("stars", m),
			t.host.BuildPane("recent", m),
		},
		Breakpoint: 70,
		Gap:        1,
	}
}
