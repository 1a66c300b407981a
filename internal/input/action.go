package input

import "strings"

// Action is a device-independent input signal. The set is closed: adding a
// value means updating KeyTable and ButtonTable together.
type Action int

const (
	ActionNone Action = iota
	ActionSystem
	ActionInventory
	ActionQuests
	ActionForge
	ActionLog
	ActionConfirm
	ActionBack
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionSystem:    "system",
	ActionInventory: "inventory",
	ActionQuests:    "quests",
	ActionForge:     "forge",
	ActionLog:       "log",
	ActionConfirm:   "confirm",
	ActionBack:      "back",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
}

// Actions lists every real action in declaration order.
func Actions() []Action {
	return []Action{
		ActionSystem, ActionInventory, ActionQuests, ActionForge, ActionLog,
		ActionConfirm, ActionBack, ActionUp, ActionDown, ActionLeft, ActionRight,
	}
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "none"
	}
	return actionNames[a]
}

// ParseAction maps the wire form back to an Action.
func ParseAction(raw string) (Action, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, a := range Actions() {
		if actionNames[a] == raw {
			return a, true
		}
	}
	return ActionNone, false
}

// IsGlobal reports whether the action navigates between screens.
func (a Action) IsGlobal() bool {
	switch a {
	case ActionSystem, ActionInventory, ActionQuests, ActionForge, ActionLog:
		return true
	default:
		return false
	}
}

// IsDirection reports whether the action is one of the four directions.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}
