// Package screens holds the pushable screens that sit above the tab bar: the
// activity walkthrough, the activity round itself, and the command palette.
package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"owlet/core"
	"owlet/internal/content"
	"owlet/widgets"
)

// TutorialScreen walks the child through an activity's intro pages before the
// first round. Dismissing it, either by esc or by pressing enter on the last
// page, fires onDismiss so the host can remember the walkthrough was seen.
type TutorialScreen struct {
	activity  content.Activity
	stepper   *core.Stepper
	onDismiss tea.Cmd
}

func NewTutorialScreen(activity content.Activity, steps []content.TutorialStep, onDismiss tea.Cmd) *TutorialScreen {
	converted := make([]core.Step, len(steps))
	for i, st := range steps {
		converted[i] = core.Step{Instruction: st.Instruction, Illustration: st.Illustration}
	}
	return &TutorialScreen{
		activity:  activity,
		stepper:   core.NewStepper(converted),
		onDismiss: onDismiss,
	}
}

func (s *TutorialScreen) Scope() string { return "screen:tutorial" }
func (s *TutorialScreen) Title() string { return s.activity.Title + ": How to play" }

func (s *TutorialScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	// nothing to walk through: any key closes
	if s.stepper.Len() == 0 {
		return s, s.onDismiss, true
	}
	result := s.stepper.HandleKey(key.String())
	if result.Action == core.StepperActionSkipped {
		return s, s.onDismiss, true
	}
	return s, nil, false
}

func (s *TutorialScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	dotOn := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	dotOff := lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))

	step, ok := s.stepper.Current()
	if !ok {
		return titleStyle.Render(s.Title())
	}

	lines := []string{titleStyle.Render(s.Title()), ""}
	if art, found := content.Illustration(step.Illustration); found {
		lines = append(lines, widgets.Box{Content: art, Tint: lipgloss.Color("#f9e2af")}.Render(0, 0), "")
	}
	lines = append(lines, textStyle.Render(step.Instruction), "")

	dots := make([]string, s.stepper.Len())
	for i := range dots {
		if i == s.stepper.Position() {
			dots[i] = dotOn.Render("●")
		} else {
			dots[i] = dotOff.Render("○")
		}
	}
	lines = append(lines, strings.Join(dots, " "), "")

	hint := "→ next  ← back  esc skip"
	if s.stepper.AtEnd() {
		hint = "← back  enter start"
	} else if s.stepper.AtStart() {
		hint = "→ next  esc skip"
	}
	lines = append(lines, hintStyle.Render(hint))

	return strings.Join(lines, "\n")
}
