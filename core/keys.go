package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions within a scope. Bindings are
// indexed by normalized key, so a press only considers the handful of
// bindings that mention it; registration order is kept for the footer help
// line.
type KeyRegistry struct {
	ordered []KeyBinding
	byKey   map[string][]KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byKey: make(map[string][]KeyBinding)}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.ordered = append(r.ordered, binding)
	for _, k := range binding.Keys {
		nk := normalizeKey(k)
		if nk == "" {
			continue
		}
		r.byKey[nk] = append(r.byKey[nk], binding)
	}
}

// ActionFor returns the first action bound to the pressed key in scope.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.byKey[normalizeKey(msg.String())] {
		if scopeMatch(scope, b.Scopes) {
			return b.Action, true
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.byKey[normalizeKey(msg.String())] {
		if b.Action == action && scopeMatch(scope, b.Scopes) {
			return true
		}
	}
	return false
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.ordered))
	for _, b := range r.ordered {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// normalizeKey folds the space key to one spelling, so bindings can say
// "space" while bubbletea reports " ".
func normalizeKey(k string) string {
	if k == " " || strings.EqualFold(k, "space") {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

// scopeMatch reports whether a binding covers scope. Scopes are hierarchical
// ("tab:learn", "screen:activity"); a trailing "*" covers the whole family,
// so "tab:*" reaches every tab without listing them, and a bare "*" (or no
// scopes at all) matches everywhere.
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
		if strings.HasSuffix(s, "*") && strings.HasPrefix(scope, strings.TrimSuffix(s, "*")) {
			return true
		}
	}
	return false
}
