package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lavaleap/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{runeKey('w'), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), action, tt.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tt.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, quit=%v; want quit", msg.String(), action, isQuit)
		}
	}
}

func TestIsHeldAction(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if !IsHeldAction(a) {
			t.Errorf("%v should be a held action", a)
		}
	}
	for _, a := range []core.Action{core.ActionConfirm, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if IsHeldAction(a) {
			t.Errorf("%v should not be a held action", a)
		}
	}
}
