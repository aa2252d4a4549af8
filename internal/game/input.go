package game

import (
	"tsmi/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionTurnLeft
	ActionTurnRight
	ActionToggleFog
	ActionToggleCone
	ActionRegenerate
	ActionSwitchWorld
	ActionTimeForward
	ActionTimeBack
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'y', 'Y':
		return ActionMoveNW
	case 'u', 'U':
		return ActionMoveNE
	case 'b', 'B':
		return ActionMoveSW
	case 'n', 'N':
		return ActionMoveSE
	case '[', 'a':
		return ActionTurnLeft
	case ']', 'd':
		return ActionTurnRight
	case 'f', 'F':
		return ActionToggleFog
	case 'c', 'C':
		return ActionToggleCone
	case 'r', 'R':
		return ActionRegenerate
	case 'w', 'W':
		return ActionSwitchWorld
	case '+', '=':
		return ActionTimeForward
	case '-':
		return ActionTimeBack
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to the direction it steps in.
func actionToDirection(a Action) (entity.Direction, bool) {
	switch a {
	case ActionMoveN:
		return entity.North, true
	case ActionMoveS:
		return entity.South, true
	case ActionMoveE:
		return entity.East, true
	case ActionMoveW:
		return entity.West, true
	case ActionMoveNE:
		return entity.Northeast, true
	case ActionMoveNW:
		return entity.Northwest, true
	case ActionMoveSE:
		return entity.Southeast, true
	case ActionMoveSW:
		return entity.Southwest, true
	}
	return entity.North, false
}
