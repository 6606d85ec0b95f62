package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		consumed bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, true},
		{"w", runeKey('w'), core.ActionUp, true},
		{"s", runeKey('s'), core.ActionDown, true},
		{"a", runeKey('a'), core.ActionLeft, true},
		{"d", runeKey('d'), core.ActionRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"q", runeKey('q'), core.ActionQuit, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, consumed := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if consumed != tc.consumed {
				t.Errorf("MapKey(%q) consumed = %v, expected %v", tc.msg.String(), consumed, tc.consumed)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("FullHelp lists %d bindings, expected 11", total)
	}
}
