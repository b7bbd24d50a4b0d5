package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	// Keywords are extra search terms for the palette, so "exit" finds Quit
	// and "stars" finds the progress tab.
	Keywords []string
	Scopes   []string
	Execute  func(m *Model) tea.Cmd
	Disabled func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search matches the query against a command's name, id and keywords, and
// ranks enabled commands first, then name-prefix hits, then alphabetically.
// Prefix ranking keeps "Go to Learn" above "Difficulty: Easy" while the child
// is still typing "go".
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))

	type ranked struct {
		CommandResult
		rank int
	}
	results := make([]ranked, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		rank, matched := matchRank(c, q)
		if !matched {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, ranked{
			CommandResult: CommandResult{
				CommandID: c.ID,
				Name:      c.Name,
				Desc:      c.Description,
				Disabled:  disabled,
				Reason:    reason,
			},
			rank: rank,
		})
	}
	slices.SortFunc(results, func(a, b ranked) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.rank != b.rank {
			return cmp.Compare(a.rank, b.rank)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	out := make([]CommandResult, len(results))
	for i, res := range results {
		out[i] = res.CommandResult
	}
	return out
}

// matchRank reports whether a command matches the query and how well: 0 for
// a name prefix, 1 for any other hit. An empty query matches everything.
func matchRank(c Command, q string) (int, bool) {
	if q == "" {
		return 1, true
	}
	name := strings.ToLower(c.Name)
	if strings.HasPrefix(name, q) {
		return 0, true
	}
	if strings.Contains(name, q) || strings.Contains(strings.ToLower(c.ID), q) {
		return 1, true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return 1, true
		}
	}
	return 0, false
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
