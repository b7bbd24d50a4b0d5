package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"tab:*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"tab:*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "learn", Scopes: []string{"tab:*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "progress", Scopes: []string{"tab:*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "settings", Scopes: []string{"tab:*"}},
		{Keys: []string{"j", "down"}, Action: "list-down", Description: "next activity", Scopes: []string{"tab:learn"}},
		{Keys: []string{"k", "up"}, Action: "list-up", Description: "prev activity", Scopes: []string{"tab:learn"}},
		{Keys: []string{"enter"}, Action: "start-activity", Description: "start", Scopes: []string{"tab:learn"}},
		{Keys: []string{"left", "right"}, Action: "pane-nav", Description: "switch pane", Scopes: []string{"tab:progress"}},
		{Keys: []string{"tab", "shift+tab"}, Action: "field-nav", Description: "next setting", Scopes: []string{"tab:settings"}},
		{Keys: []string{"enter"}, Action: "open-selector", Description: "change", Scopes: []string{"tab:settings"}},
		{Keys: []string{"left", "right"}, Action: "step-nav", Description: "prev/next step", Scopes: []string{"screen:tutorial"}},
		{Keys: []string{"esc"}, Action: "skip", Description: "skip", Scopes: []string{"screen:tutorial"}},
		{Keys: []string{"t"}, Action: "show-tutorial", Description: "how to play", Scopes: []string{"screen:activity"}},
		{Keys: []string{"esc"}, Action: "close", Description: "back", Scopes: []string{"screen:activity", "screen:palette"}},
		{Keys: []string{"enter"}, Action: "select", Description: "answer", Scopes: []string{"screen:activity", "screen:palette"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}
