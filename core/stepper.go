package core

// Step is one page of an activity walkthrough: a line of instruction for the
// child and the key of the illustration drawn next to it.
type Step struct {
	Instruction  string
	Illustration string
}

type StepperAction int

const (
	StepperActionNone StepperAction = iota
	StepperActionAdvanced
	StepperActionRetreated
	StepperActionSkipped
)

type StepperResult struct {
	Action StepperAction
	Step   Step
}

// Stepper walks a fixed sequence of steps one position at a time. Moves past
// either end are silent no-ops; the host greys out the arrow instead of
// treating the press as an error.
type Stepper struct {
	steps    []Step
	position int
}

func NewStepper(steps []Step) *Stepper {
	return &Stepper{steps: append([]Step(nil), steps...)}
}

func (s *Stepper) Len() int {
	if s == nil {
		return 0
	}
	return len(s.steps)
}

func (s *Stepper) Position() int {
	if s == nil {
		return 0
	}
	return s.position
}

func (s *Stepper) Current() (Step, bool) {
	if s == nil || len(s.steps) == 0 {
		return Step{}, false
	}
	return s.steps[s.position], true
}

func (s *Stepper) AtStart() bool {
	return s == nil || s.position == 0
}

func (s *Stepper) AtEnd() bool {
	if s == nil || len(s.steps) == 0 {
		return true
	}
	return s.position == len(s.steps)-1
}

// Advance moves forward one step. Returns false at the last step.
func (s *Stepper) Advance() bool {
	if s == nil || s.position >= len(s.steps)-1 {
		return false
	}
	s.position++
	return true
}

// Retreat moves back one step. Returns false at the first step.
func (s *Stepper) Retreat() bool {
	if s == nil || s.position <= 0 {
		return false
	}
	s.position--
	return true
}

// HandleKey maps a key name to a transition. Enter on the last step counts as
// a dismissal, so "walk to the end and press enter" and esc both close the
// walkthrough. Position is never mutated by a skip.
func (s *Stepper) HandleKey(keyName string) StepperResult {
	if s == nil || len(s.steps) == 0 {
		return StepperResult{Action: StepperActionNone}
	}
	switch keyName {
	case "right", "l", " ", "space":
		if s.Advance() {
			return StepperResult{Action: StepperActionAdvanced, Step: s.steps[s.position]}
		}
		return StepperResult{Action: StepperActionNone}
	case "left", "h":
		if s.Retreat() {
			return StepperResult{Action: StepperActionRetreated, Step: s.steps[s.position]}
		}
		return StepperResult{Action: StepperActionNone}
	case "enter":
		if s.AtEnd() {
			return StepperResult{Action: StepperActionSkipped, Step: s.steps[s.position]}
		}
		if s.Advance() {
			return StepperResult{Action: StepperActionAdvanced, Step: s.steps[s.position]}
		}
		return StepperResult{Action: StepperActionNone}
	case "esc", "s":
		return StepperResult{Action: StepperActionSkipped, Step: s.steps[s.position]}
	default:
		return StepperResult{Action: StepperActionNone}
	}
}
