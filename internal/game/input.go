package game

import (
	"github.com/gdamore/tcell/v2"

	"psymaze/internal/system"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPhilosophy
	ActionJournal
	ActionSnapshot
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape:
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveUp
	case 's', 'S':
		return ActionMoveDown
	case 'a', 'A':
		return ActionMoveLeft
	case 'd', 'D':
		return ActionMoveRight
	case 'j', 'J':
		return ActionJump
	case 'h', 'H':
		return ActionPhilosophy
	case 'l', 'L':
		return ActionJournal
	case 'x', 'X':
		return ActionSnapshot
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to a direction.
func actionToDirection(a Action) (system.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return system.DirUp, true
	case ActionMoveDown:
		return system.DirDown, true
	case ActionMoveLeft:
		return system.DirLeft, true
	case ActionMoveRight:
		return system.DirRight, true
	}
	return 0, false
}
