// Package condition models volatile statuses: temporary conditions that stack
// orthogonally to a combatant's single non-volatile status and clear on faint.
package condition

import "strings"

// Kind identifies a volatile status.
type Kind uint8

const (
	Confusion Kind = iota
	Taunt
	Encore
	Disable
	Torment
	Ingrain
	Yawn
	Flinch
	ChoiceLock
	SaltCure
	SyrupBomb
	Infatuation
	numKinds
)

// NumKinds is the number of volatile status kinds.
const NumKinds = int(numKinds)

// Duration types.
const (
	DurationTurns     = "turns"
	DurationPermanent = "permanent"
)

// Move restrictions a volatile can impose.
const (
	RestrictStatusMoves  = "status_moves"  // no status moves
	RestrictOtherMoves   = "other_moves"   // only the recorded move
	RestrictRecordedMove = "recorded_move" // never the recorded move
	RestrictRepeat       = "repeat"        // never the user's last move
)

// Def is the static definition of a volatile status kind.
type Def struct {
	Kind         Kind
	Name         string
	DurationType string
	DefaultTurns int
	Restrict     string
	// Mental marks kinds cured by Mental Herb and blocked by Aroma Veil.
	Mental bool
}

var defs = [numKinds]Def{
	Confusion:   {Confusion, "confusion", DurationTurns, 3, "", false},
	Taunt:       {Taunt, "taunt", DurationTurns, 3, RestrictStatusMoves, true},
	Encore:      {Encore, "encore", DurationTurns, 3, RestrictOtherMoves, true},
	Disable:     {Disable, "disable", DurationTurns, 4, RestrictRecordedMove, true},
	Torment:     {Torment, "torment", DurationPermanent, -1, RestrictRepeat, true},
	Ingrain:     {Ingrain, "ingrain", DurationPermanent, -1, "", false},
	Yawn:        {Yawn, "yawn", DurationTurns, 2, "", false},
	Flinch:      {Flinch, "flinch", DurationTurns, 1, "", false},
	ChoiceLock:  {ChoiceLock, "choice lock", DurationPermanent, -1, RestrictOtherMoves, false},
	SaltCure:    {SaltCure, "salt cure", DurationPermanent, -1, "", false},
	SyrupBomb:   {SyrupBomb, "syrup bomb", DurationTurns, 3, "", false},
	Infatuation: {Infatuation, "infatuation", DurationPermanent, -1, "", true},
}

// DefOf returns the definition of k.
//
// Precondition: k < NumKinds.
func DefOf(k Kind) Def {
	return defs[k]
}

func (k Kind) String() string {
	if k >= numKinds {
		return "unknown"
	}
	return defs[k].Name
}

// ParseKind resolves a volatile name such as "taunt" or "salt-cure".
func ParseKind(name string) (Kind, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", " ")
	for _, d := range defs {
		if d.Name == name {
			return d.Kind, true
		}
	}
	return 0, false
}
