package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bonus-pong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action and the side it belongs to.
// Shared keys (pause, restart, back) are attributed to Player1.
// Returns whether the key is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	switch key {
	// Left paddle (z for AZERTY layouts)
	case "w", "z":
		return core.Player1, core.ActionUp, false
	case "s":
		return core.Player1, core.ActionDown, false

	// Right paddle
	case "o", "up":
		return core.Player2, core.ActionUp, false
	case "l", "down":
		return core.Player2, core.ActionDown, false

	case "enter":
		return core.Player1, core.ActionConfirm, false
	case "esc":
		return core.Player1, core.ActionBack, false
	case "p", " ":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.PlayerNone, core.ActionNone, false
}

// MapKeyToMultiFrame records the key in a multi-input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(player, action)
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
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "z", "o", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "l", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionHistory
	}

	return MenuActionNone
}

// heldInput keeps paddle keys pressed for a few ticks after each key event.
// Terminals only report presses (repeated while held), never releases, so a
// key counts as down until its countdown runs out or the opposite key is hit.
type heldInput struct {
	ticks     int
	countdown map[core.PlayerID]map[core.Action]int
}

func newHeldInput(ticks int) *heldInput {
	return &heldInput{
		ticks:     max(ticks, 1),
		countdown: make(map[core.PlayerID]map[core.Action]int),
	}
}

// press marks a paddle action as held. Non-movement actions are ignored.
func (h *heldInput) press(id core.PlayerID, a core.Action) {
	var opposite core.Action
	switch a {
	case core.ActionUp:
		opposite = core.ActionDown
	case core.ActionDown:
		opposite = core.ActionUp
	default:
		return
	}

	byAction, ok := h.countdown[id]
	if !ok {
		byAction = make(map[core.Action]int)
		h.countdown[id] = byAction
	}
	delete(byAction, opposite)
	byAction[a] = h.ticks
}

// apply adds every held action to frame and counts one tick down.
func (h *heldInput) apply(frame *core.MultiInputFrame) {
	for id, byAction := range h.countdown {
		for a, left := range byAction {
			frame.Set(id, a)
			if left <= 1 {
				delete(byAction, a)
			} else {
				byAction[a] = left - 1
			}
		}
	}
}

// release drops every held key.
func (h *heldInput) release() {
	clear(h.countdown)
}
