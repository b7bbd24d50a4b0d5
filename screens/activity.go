package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"owlet/core"
	"owlet/internal/content"
	"owlet/internal/scoring"
	"owlet/widgets"
)

type activityPhase int

const (
	phaseAnswering activityPhase = iota
	phaseFeedback
	phaseDone
)

// ActivityScreen runs one practice round: a fixed list of exercises answered
// either by picking a choice or typing. Choice answers reuse the selector
// state machine with the dropdown held open for the whole question.
type ActivityScreen struct {
	activity  content.Activity
	feedback  string
	exercises []content.Exercise
	index     int
	correct   int
	phase     activityPhase

	input       textinput.Model
	choice      *core.Selector
	lastCorrect bool

	onFinish     func(correct, total, stars int) tea.Cmd
	openTutorial tea.Cmd
}

func NewActivityScreen(activity content.Activity, difficulty content.Difficulty, feedback string, onFinish func(correct, total, stars int) tea.Cmd, openTutorial tea.Cmd) *ActivityScreen {
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 24
	input.Width = 24
	input.Focus()

	s := &ActivityScreen{
		activity:     activity,
		feedback:     feedback,
		exercises:    content.ExercisesFor(activity.ID, difficulty),
		input:        input,
		onFinish:     onFinish,
		openTutorial: openTutorial,
	}
	if len(s.exercises) == 0 {
		s.phase = phaseDone
	} else {
		s.prepareExercise()
	}
	return s
}

func (s *ActivityScreen) Scope() string { return "screen:activity" }
func (s *ActivityScreen) Title() string { return s.activity.Title }

func (s *ActivityScreen) current() content.Exercise {
	return s.exercises[s.index]
}

// prepareExercise resets the input widgets for the exercise at index. Choice
// exercises get a selector opened at the first option.
func (s *ActivityScreen) prepareExercise() {
	ex := s.current()
	if len(ex.Choices) > 0 {
		items := make([]core.SelectorItem, len(ex.Choices))
		for i, c := range ex.Choices {
			items[i] = core.SelectorItem{Label: c, Value: c}
		}
		s.choice = core.NewSelector(items)
		s.choice.Open()
	} else {
		s.choice = nil
		s.input.SetValue("")
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.phase == phaseAnswering && s.choice == nil {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd, false
		}
		return s, nil, false
	}

	switch s.phase {
	case phaseDone:
		switch key.String() {
		case "enter", "esc", "q":
			return s, nil, true
		}
		return s, nil, false

	case phaseFeedback:
		switch key.String() {
		case "enter", " ":
			if s.index+1 >= len(s.exercises) {
				s.phase = phaseDone
				if s.onFinish != nil {
					stars := scoring.Stars(s.correct, len(s.exercises))
					return s, s.onFinish(s.correct, len(s.exercises), stars), false
				}
				return s, nil, false
			}
			s.index++
			s.phase = phaseAnswering
			s.prepareExercise()
		case "esc":
			return s, nil, true
		}
		return s, nil, false

	default: // answering
		switch key.String() {
		case "esc":
			return s, nil, true
		case "t":
			if s.choice != nil && s.openTutorial != nil {
				return s, s.openTutorial, false
			}
		}

		if s.choice != nil {
			result := s.choice.HandleKey(key.String())
			if result.Action == core.SelectorActionCommitted {
				s.grade(result.Item.Value)
			}
			return s, nil, false
		}

		if key.String() == "enter" {
			answer := strings.TrimSpace(s.input.Value())
			if answer == "" {
				return s, nil, false
			}
			s.grade(answer)
			return s, nil, false
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}
}

func (s *ActivityScreen) grade(answer string) {
	s.lastCorrect = scoring.Check(s.current().Answer, answer)
	if s.lastCorrect {
		s.correct++
	}
	s.phase = phaseFeedback
}

func (s *ActivityScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Bold(true)
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	goodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)

	if s.phase == phaseDone {
		stars := scoring.Stars(s.correct, len(s.exercises))
		lines := []string{
			titleStyle.Render(s.activity.Title + ": round over!"),
			"",
			promptStyle.Render(fmt.Sprintf("You got %d out of %d right.", s.correct, len(s.exercises))),
			"",
			starStyle.Render(strings.Repeat("★ ", stars) + strings.Repeat("☆ ", 3-stars)),
			"",
			hintStyle.Render("enter back to activities"),
		}
		return strings.Join(lines, "\n")
	}

	ex := s.current()
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s  %d/%d", s.activity.Title, s.index+1, len(s.exercises))),
		"",
	}
	if art, found := content.Illustration(ex.Illustration); found {
		lines = append(lines, widgets.Box{Content: art, Tint: lipgloss.Color("#f9e2af")}.Render(0, 0), "")
	}
	lines = append(lines, promptStyle.Render(ex.Prompt), "")

	if s.phase == phaseFeedback {
		if s.lastCorrect {
			msg := "Correct!"
			if s.feedback == "cheerful" {
				msg = "Yes! Great job! ⭐"
			}
			lines = append(lines, goodStyle.Render(msg))
		} else {
			msg := "The answer was: " + ex.Answer
			if s.feedback == "cheerful" {
				msg = "Almost! The answer was: " + ex.Answer
			}
			lines = append(lines, badStyle.Render(msg))
		}
		lines = append(lines, "", hintStyle.Render("enter next"))
		return strings.Join(lines, "\n")
	}

	if s.choice != nil {
		for i, item := range s.choice.Items() {
			prefix := "   "
			style := hintStyle
			if i == s.choice.ProvisionalIndex() {
				prefix = " ▶ "
				style = promptStyle
			}
			lines = append(lines, style.Render(prefix+item.Label))
		}
		lines = append(lines, "", hintStyle.Render("↑/↓ choose  enter answer  t how to play  esc back"))
	} else {
		lines = append(lines, s.input.View(), "", hintStyle.Render("enter answer  esc back"))
	}
	return strings.Join(lines, "\n")
}
