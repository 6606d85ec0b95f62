// Package keybind holds the desktop window's key table. Keys are named the
// way ebiten's Key.String reports them, so the table carries no ebiten
// import and the window resolves the names once at startup.
package keybind

import "github.com/vovakirdan/tui-snake/internal/core"

// Binding maps one or more key names to an action.
type Binding struct {
	Keys   []string
	Action core.Action
}

// Default returns the window key table.
func Default() []Binding {
	return []Binding{
		{Keys: []string{"ArrowUp", "W"}, Action: core.ActionUp},
		{Keys: []string{"ArrowDown", "S"}, Action: core.ActionDown},
		{Keys: []string{"ArrowLeft", "A"}, Action: core.ActionLeft},
		{Keys: []string{"ArrowRight", "D"}, Action: core.ActionRight},
		{Keys: []string{"Space"}, Action: core.ActionPrimary},
		{Keys: []string{"Enter"}, Action: core.ActionStart},
		{Keys: []string{"P"}, Action: core.ActionPause},
		{Keys: []string{"R"}, Action: core.ActionReset},
		{Keys: []string{"Escape", "Q"}, Action: core.ActionQuit},
	}
}

// Lookup returns the action bound to a key name, or ActionNone.
func Lookup(bindings []Binding, name string) core.Action {
	for _, b := range bindings {
		for _, k := range b.Keys {
			if k == name {
				return b.Action
			}
		}
	}
	return core.ActionNone
}
