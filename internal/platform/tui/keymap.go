package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "g", "G":
		return core.ActionGodmode, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r", "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Directional keys are routed to holds when it is non-nil.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, holds *HoldTracker) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.IsDirectional() && holds != nil:
		holds.Press(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker emulates key-up events for terminals, which only report
// presses. A direction stays held while presses keep arriving (key repeat)
// and is released after it has been silent for the configured number of ticks.
// The first press of a direction lasts longer so it spans the terminal's
// initial repeat delay.
type HoldTracker struct {
	first     int
	repeat    int
	remaining map[core.Action]int
}

// opposite pairs directions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHoldTracker creates a tracker that keeps a fresh press alive for first
// ticks and each repeated press for repeat ticks.
func NewHoldTracker(first, repeat int) *HoldTracker {
	repeat = max(repeat, 1)
	return &HoldTracker{
		first:     max(first, repeat),
		repeat:    repeat,
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press. Pressing a direction drops its opposite.
func (h *HoldTracker) Press(a core.Action) {
	if n, held := h.remaining[a]; held {
		h.remaining[a] = max(n, h.repeat)
	} else {
		h.remaining[a] = h.first
	}
	if o, ok := opposite[a]; ok {
		delete(h.remaining, o)
	}
}

// Apply marks every live direction as held in frame and counts down one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Reset releases every direction.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}
