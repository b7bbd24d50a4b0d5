package core

// ScreenStack holds the modal overlays layered over the tabs: the activity
// round, its walkthrough, the command palette. The top screen owns the
// keyboard until it pops.
type ScreenStack struct {
	stack []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.stack = append(s.stack, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.stack) == 0 {
		return nil
	}
	last := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return last
}

// SetTop swaps the active overlay for the value its Update returned. A nil
// screen leaves the stack untouched.
func (s *ScreenStack) SetTop(screen Screen) {
	if screen == nil || len(s.stack) == 0 {
		return
	}
	s.stack[len(s.stack)-1] = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s ScreenStack) Len() int {
	return len(s.stack)
}
