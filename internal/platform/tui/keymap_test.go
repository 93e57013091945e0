package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", runeKey(' '), core.ActionFire, false},
		{"g", runeKey('g'), core.ActionGodmode, false},
		{"G", runeKey('G'), core.ActionGodmode, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"R", runeKey('R'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameRoutesDirections(t *testing.T) {
	km := NewKeyMapper()
	holds := NewHoldTracker(3, 3)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, holds)
	km.MapKeyToFrame(runeKey(' '), &frame, holds)

	if frame.Has(core.ActionLeft) {
		t.Error("directions should go to the hold tracker")
	}
	if !holds.Held(core.ActionLeft) {
		t.Error("left should be held")
	}
	if !frame.Has(core.ActionFire) {
		t.Error("fire should be set on the frame")
	}

	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, nil)
	if !frame.Has(core.ActionLeft) {
		t.Error("without a tracker directions are plain actions")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(2, 2)
	h.Press(core.ActionLeft)

	for tick := 0; tick < 3; tick++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		held := frame.IsHeld(core.ActionLeft)
		if want := tick < 2; held != want {
			t.Errorf("tick %d: held = %v, expected %v", tick, held, want)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(2, 2)
	h.Press(core.ActionUp)

	for tick := 0; tick < 10; tick++ {
		frame := core.NewInputFrame()
		h.Press(core.ActionUp) // key repeat
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionUp) {
			t.Fatalf("tick %d: repeated presses should keep the key held", tick)
		}
	}
}

func TestHoldTrackerFirstPressSpansRepeatDelay(t *testing.T) {
	h := NewHoldTracker(15, 5)
	h.Press(core.ActionLeft)

	// Terminals wait a while before the first key repeat
	for tick := 0; tick < 12; tick++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionLeft) {
			t.Fatalf("tick %d: left dropped before the first repeat", tick)
		}
	}

	// Repeats keep a short window so release is felt quickly
	h.Press(core.ActionLeft)
	for tick := 0; tick < 6; tick++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if want := tick < 5; frame.IsHeld(core.ActionLeft) != want {
			t.Errorf("tick %d after repeat: held = %v, expected %v", tick, !want, want)
		}
	}
}

func TestHoldTrackerOpposites(t *testing.T) {
	h := NewHoldTracker(5, 5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	if h.Held(core.ActionLeft) {
		t.Error("right should cancel left")
	}
	if !h.Held(core.ActionRight) || !h.Held(core.ActionUp) {
		t.Error("right and up should both be held")
	}

	h.Reset()
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if len(frame.Held) != 0 {
		t.Errorf("Reset() should release everything, got %v", frame.Held)
	}
}
