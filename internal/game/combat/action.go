package combat

import (
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Sentinel move names a turn may carry instead of a real move.
const (
	NoMove       = "(No Move)"
	MostDamaging = "(Most Damaging)"
	OptimalMove  = "(Optimal Move)"
)

// ActionType identifies what a combatant intends to do on its turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown      ActionType = iota // zero value; intentionally invalid
	ActionMove                           // a named move
	ActionNone                           // no action this turn
	ActionMostDamaging                   // the boss move dealing the most damage to the raider
	ActionOptimal                        // resolved by the optimizer
)

// String returns the human-readable name of the ActionType.
// Postcondition: returns "move", "none", "most damaging", "optimal", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionNone:
		return "none"
	case ActionMostDamaging:
		return "most damaging"
	case ActionOptimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// ParseActionType classifies a move name. The empty string is ActionNone.
func ParseActionType(name string) ActionType {
	switch name {
	case "", NoMove:
		return ActionNone
	case MostDamaging:
		return ActionMostDamaging
	case OptimalMove:
		return ActionOptimal
	}
	return ActionMove
}

// Options qualifies one action.
type Options struct {
	// Crit forces a critical hit.
	Crit bool
	// SecondaryEffects applies chance-based effects as if they landed.
	SecondaryEffects bool
	// Hits overrides the strike count of a multi-hit move; 0 uses the default.
	Hits int
	// Roll overrides the roller's default bias when non-nil.
	Roll *dice.Bias
	// Tera terastallizes the user before it moves.
	Tera bool
}

// Action is one combatant's intent for a turn.
type Action struct {
	UserID   int
	TargetID int
	Move     string
	Options  Options
}

// Type classifies the action's move name.
func (a Action) Type() ActionType {
	return ParseActionType(a.Move)
}

// Turn pairs one raider's action with the boss's answer.
type Turn struct {
	ID     int
	Group  int
	Raider Action
	Boss   Action
}

// TurnGroup is a block of turns repeated Repeats times.
type TurnGroup struct {
	ID      int
	Repeats int
	Turns   []Turn
}

// Times returns how often the group runs; a non-positive Repeats runs once.
func (g TurnGroup) Times() int {
	if g.Repeats < 1 {
		return 1
	}
	return g.Repeats
}

// Expand flattens groups into the sequence of turns they run.
func Expand(groups []TurnGroup) []Turn {
	var out []Turn
	for _, g := range groups {
		for range g.Times() {
			out = append(out, g.Turns...)
		}
	}
	return out
}

// BossTurn returns a turn in which raiderID takes no action and the boss
// uses move against raiderID.
func BossTurn(raiderID int, move string) Turn {
	return Turn{
		Raider: Action{UserID: raiderID, TargetID: raid.BossID, Move: NoMove},
		Boss:   Action{UserID: raid.BossID, TargetID: raiderID, Move: move},
	}
}
