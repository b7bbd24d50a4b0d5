package core

type SelectorItem struct {
	Label string
	Value string
}

type SelectorAction int

const (
	SelectorActionNone SelectorAction = iota
	SelectorActionOpened
	SelectorActionMoved
	SelectorActionCommitted
	SelectorActionDiscarded
)

type SelectorResult struct {
	Action SelectorAction
	Item   SelectorItem
	Index  int
}

// Selector keeps a committed selection separate from the provisional cursor
// used while its dropdown is open. Browsing never touches the committed
// index; only Commit moves it, so a discarded dropdown needs no reverse
// lookup to restore the previous selection.
type Selector struct {
	items       []SelectorItem
	committed   int
	provisional int
	open        bool
}

func NewSelector(items []SelectorItem) *Selector {
	return &Selector{items: append([]SelectorItem(nil), items...), committed: -1}
}

// NewSelectorAt seeds the committed index, clamped to [-1, len(items)-1].
func NewSelectorAt(items []SelectorItem, committed int) *Selector {
	s := NewSelector(items)
	if committed >= 0 && committed < len(s.items) {
		s.committed = committed
	}
	return s
}

func (s *Selector) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Selector) Items() []SelectorItem {
	if s == nil {
		return nil
	}
	return append([]SelectorItem(nil), s.items...)
}

func (s *Selector) IsOpen() bool {
	return s != nil && s.open
}

func (s *Selector) CommittedIndex() int {
	if s == nil {
		return -1
	}
	return s.committed
}

func (s *Selector) CommittedItem() (SelectorItem, bool) {
	if s == nil || s.committed < 0 || s.committed >= len(s.items) {
		return SelectorItem{}, false
	}
	return s.items[s.committed], true
}

// ProvisionalIndex is only meaningful while the dropdown is open.
func (s *Selector) ProvisionalIndex() int {
	if s == nil {
		return -1
	}
	return s.provisional
}

func (s *Selector) ProvisionalItem() (SelectorItem, bool) {
	if s == nil || !s.open || s.provisional < 0 || s.provisional >= len(s.items) {
		return SelectorItem{}, false
	}
	return s.items[s.provisional], true
}

// Open starts a browsing session at the committed item, or at the first item
// when nothing is committed yet. No-op on an empty selector.
func (s *Selector) Open() bool {
	if s == nil || len(s.items) == 0 || s.open {
		return false
	}
	s.open = true
	s.provisional = s.committed
	if s.provisional < 0 {
		s.provisional = 0
	}
	return true
}

// MoveProvisional shifts the cursor by delta, clamped to the item range.
// Returns false when closed or when the clamp left the cursor in place.
func (s *Selector) MoveProvisional(delta int) bool {
	if s == nil || !s.open || len(s.items) == 0 {
		return false
	}
	next := s.provisional + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.items)-1 {
		next = len(s.items) - 1
	}
	if next == s.provisional {
		return false
	}
	s.provisional = next
	return true
}

// Commit promotes the provisional cursor to the committed selection and
// closes the dropdown.
func (s *Selector) Commit() (SelectorItem, bool) {
	if s == nil || !s.open {
		return SelectorItem{}, false
	}
	s.committed = s.provisional
	s.open = false
	return s.items[s.committed], true
}

// Discard closes the dropdown and abandons the provisional cursor.
func (s *Selector) Discard() bool {
	if s == nil || !s.open {
		return false
	}
	s.open = false
	return true
}

func (s *Selector) HandleKey(keyName string) SelectorResult {
	if s == nil || len(s.items) == 0 {
		return SelectorResult{Action: SelectorActionNone, Index: -1}
	}
	if !s.open {
		switch keyName {
		case "enter", " ", "space":
			if s.Open() {
				return SelectorResult{Action: SelectorActionOpened, Item: s.items[s.provisional], Index: s.provisional}
			}
		}
		return SelectorResult{Action: SelectorActionNone, Index: s.committed}
	}
	switch keyName {
	case "j", "down":
		if s.MoveProvisional(1) {
			return SelectorResult{Action: SelectorActionMoved, Item: s.items[s.provisional], Index: s.provisional}
		}
		return SelectorResult{Action: SelectorActionNone, Index: s.provisional}
	case "k", "up":
		if s.MoveProvisional(-1) {
			return SelectorResult{Action: SelectorActionMoved, Item: s.items[s.provisional], Index: s.provisional}
		}
		return SelectorResult{Action: SelectorActionNone, Index: s.provisional}
	case "enter":
		item, ok := s.Commit()
		if !ok {
			return SelectorResult{Action: SelectorActionNone, Index: s.provisional}
		}
		return SelectorResult{Action: SelectorActionCommitted, Item: item, Index: s.committed}
	case "esc":
		if s.Discard() {
			return SelectorResult{Action: SelectorActionDiscarded, Index: s.committed}
		}
		return SelectorResult{Action: SelectorActionNone, Index: s.committed}
	default:
		return SelectorResult{Action: SelectorActionNone, Index: s.provisional}
	}
}
