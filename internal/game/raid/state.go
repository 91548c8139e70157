// Package raid implements the battle state of a five-combatant raid: one
// boss in slot 0 and four raiders in slots 1-4. Every cross-combatant rule
// (damage side effects, item consumption and relay, stat-change propagation,
// status immunity, standing ability auras, fainting) is a State method.
//
// The engine does not log and never returns errors. Unknown abilities and
// items fall through to no-op variants. Human readable outcomes are appended
// to State.Flags per combatant.
package raid

import (
	"fmt"
)

// NumCombatants is the fixed roster size.
const NumCombatants = 5

// BossID is the boss slot.
const BossID = 0

// State is one snapshot of a raid battle. It is not safe for concurrent use;
// branches isolate themselves with Clone.
type State struct {
	Combatants [NumCombatants]Combatant
	Field      Field
	Sides      [2]Side
	// LastMover is the last combatant to use a move, or -1.
	LastMover int
	// Flags collects per-combatant event lines until drained by TakeFlags.
	Flags [NumCombatants][]string
}

// NewState assembles a state from five combatants.
//
// Precondition: cs[i].ID == i for every slot.
func NewState(cs [NumCombatants]Combatant) *State {
	for i := range cs {
		if cs[i].ID != i {
			panic(fmt.Sprintf("raid: NewState precondition violated: slot %d holds combatant %d", i, cs[i].ID))
		}
	}
	return &State{Combatants: cs, LastMover: -1}
}

// Clone returns a deep copy that shares no mutable substructure with s.
func (s *State) Clone() *State {
	out := *s
	for i := range s.Combatants {
		out.Combatants[i] = s.Combatants[i].clone()
		out.Flags[i] = append([]string(nil), s.Flags[i]...)
	}
	return &out
}

// Get returns the combatant in slot id.
//
// Precondition: id in [0, NumCombatants).
func (s *State) Get(id int) *Combatant {
	return &s.Combatants[id]
}

// SideIndex returns the side of slot id.
func SideIndex(id int) int {
	if id == BossID {
		return BossSide
	}
	return RaiderSide
}

// SideOf returns the side conditions of slot id.
func (s *State) SideOf(id int) *Side {
	return &s.Sides[SideIndex(id)]
}

// OpposingSide returns the side conditions facing slot id.
func (s *State) OpposingSide(id int) *Side {
	return &s.Sides[1-SideIndex(id)]
}

// Speed returns the effective speed of slot id on the current field.
func (s *State) Speed(id int) int {
	return s.Get(id).EffectiveSpeed(&s.Field, s.SideOf(id))
}

// Faster reports whether a moves before b on speed alone. Trick Room
// reverses the comparison; equal speeds are never faster.
func (s *State) Faster(a, b int) bool {
	sa, sb := s.Speed(a), s.Speed(b)
	if s.Field.TrickRoom {
		return sa < sb
	}
	return sa > sb
}

// Opponents returns the slots facing id.
func (s *State) Opponents(id int) []int {
	if id == BossID {
		return []int{1, 2, 3, 4}
	}
	return []int{BossID}
}

// Allies returns the other slots on id's side.
func (s *State) Allies(id int) []int {
	if id == BossID {
		return nil
	}
	out := make([]int, 0, NumCombatants-2)
	for i := 1; i < NumCombatants; i++ {
		if i != id {
			out = append(out, i)
		}
	}
	return out
}

// Others returns every slot except id.
func (s *State) Others(id int) []int {
	out := make([]int, 0, NumCombatants-1)
	for i := 0; i < NumCombatants; i++ {
		if i != id {
			out = append(out, i)
		}
	}
	return out
}

// Heal restores up to amount HP to a non-fainted combatant and returns the
// HP restored.
func (s *State) Heal(id, amount int) int {
	c := s.Get(id)
	if c.Fainted() || amount <= 0 {
		return 0
	}
	return -c.ApplyRawDamage(-amount)
}

// TakeFlags returns and clears the accumulated flag lines.
func (s *State) TakeFlags() [NumCombatants][]string {
	out := s.Flags
	s.Flags = [NumCombatants][]string{}
	return out
}

// Flag appends a formatted event line to slot id.
func (s *State) Flag(id int, format string, args ...any) {
	s.Flags[id] = append(s.Flags[id], fmt.Sprintf(format, args...))
}

func (s *State) name(id int) string {
	return s.Get(id).Role
}

// anyOther reports whether a non-fainted combatant other than id satisfies pred.
func (s *State) anyOther(id int, ids []int, pred func(*Combatant) bool) bool {
	for _, i := range ids {
		if i == id {
			continue
		}
		if c := s.Get(i); !c.Fainted() && pred(c) {
			return true
		}
	}
	return false
}
