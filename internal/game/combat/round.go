package combat

import (
	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// TurnResult is the outcome of one resolved turn.
type TurnResult struct {
	Turn Turn
	// Number is the absolute turn index shown to the user.
	Number int
	// State is the state after the turn, owned by the result.
	State            *raid.State
	RaiderMovesFirst bool
	// Results holds both actions in execution order.
	Results [2]MoveResult
	// EndFlags are the event lines raised by end-of-turn effects.
	EndFlags [raid.NumCombatants][]string
}

// Raider returns the raider's move result.
func (t TurnResult) Raider() MoveResult {
	if t.RaiderMovesFirst {
		return t.Results[0]
	}
	return t.Results[1]
}

// Boss returns the boss's move result.
func (t TurnResult) Boss() MoveResult {
	if t.RaiderMovesFirst {
		return t.Results[1]
	}
	return t.Results[0]
}

// TurnResolver resolves one turn. Implementations must not modify s.
type TurnResolver interface {
	Resolve(s *raid.State, turn Turn, number int) TurnResult
}

// MoveSource resolves a move name to its data. Unknown names yield a
// placeholder.
type MoveSource interface {
	Move(name string) dex.Move
}

// Resolver is the default TurnResolver.
type Resolver struct {
	Moves  MoveSource
	Calc   Calculator
	Roller *dice.Roller
}

// NewResolver creates a Resolver.
//
// Precondition: moves, calc, and roller must be non-nil.
func NewResolver(moves MoveSource, calc Calculator, roller *dice.Roller) *Resolver {
	if moves == nil || calc == nil || roller == nil {
		panic("combat: NewResolver precondition violated: nil collaborator")
	}
	return &Resolver{Moves: moves, Calc: calc, Roller: roller}
}

// Resolve runs one turn on a clone of s:
//
//  1. a fainted raider switches back in
//  2. sentinel and copying moves are replaced by concrete moves
//  3. the two actions are ordered by priority, then speed
//  4. both moves execute; the second is skipped by its own checks
//  5. end-of-turn effects run for both actors
//
// Postcondition: s is unchanged; result.State is a new state.
func (r *Resolver) Resolve(s *raid.State, turn Turn, number int) TurnResult {
	st := s.Clone()
	st.TakeFlags()
	raider, boss := turn.Raider, turn.Boss
	res := TurnResult{Turn: turn, Number: number}

	if st.Get(raider.UserID).Fainted() {
		st.SwitchIn(raider.UserID)
	}
	raider = r.substitute(st, raider)
	boss = r.substitute(st, boss)

	res.RaiderMovesFirst = r.raiderFirst(st, raider, boss)
	first, second := boss, raider
	if res.RaiderMovesFirst {
		first, second = raider, boss
	}
	pre := st.TakeFlags()
	res.Results[0] = r.executeMove(st, first, true)
	for i, lines := range pre {
		res.Results[0].Flags[i] = append(lines, res.Results[0].Flags[i]...)
	}
	res.Results[1] = r.executeMove(st, second, false)

	r.endOfTurn(st, turn.Raider.UserID)
	res.EndFlags = st.TakeFlags()
	res.State = st
	return res
}

// substitute replaces sentinel and copying moves with the concrete move the
// action resolves to.
func (r *Resolver) substitute(s *raid.State, a Action) Action {
	switch a.Type() {
	case ActionMostDamaging, ActionOptimal:
		a.Move = r.MostDamagingMove(s, a.UserID, a.TargetID, a.Options)
		return a
	case ActionNone:
		return a
	}
	c := s.Get(a.UserID)
	if locked := c.Volatiles.Move(condition.ChoiceLock); locked != "" && c.Volatiles.Has(condition.ChoiceLock) {
		a.Move = locked
	}
	if enc := c.Volatiles.Move(condition.Encore); enc != "" && c.Volatiles.Has(condition.Encore) {
		a.Move = enc
	}
	switch dex.ID(a.Move) {
	case "instruct":
		t := s.Get(a.TargetID)
		if t.LastMove == "" || t.Fainted() || a.TargetID == a.UserID {
			return a
		}
		s.Flag(a.UserID, "%s instructed %s", c.Role, t.Role)
		target := t.LastTarget
		if target < 0 {
			target = a.TargetID
		}
		return Action{UserID: a.TargetID, TargetID: target, Move: t.LastMove, Options: a.Options}
	case "copycat":
		if s.LastMover < 0 || s.LastMover == a.UserID {
			return a
		}
		copied := s.Get(s.LastMover).LastMove
		if copied == "" || dex.ID(copied) == "copycat" {
			return a
		}
		s.Flag(a.UserID, "%s copied %s", c.Role, copied)
		a.Move = copied
	}
	return a
}

// MostDamagingMove returns the user's move that deals the most damage to
// target under the action's roll option, or NoMove when it has no move. Ties
// keep the earlier move.
func (r *Resolver) MostDamagingMove(s *raid.State, user, target int, opts Options) string {
	c := s.Get(user)
	best, bestDamage := NoMove, -1
	bias := r.Roller.Default()
	if opts.Roll != nil {
		bias = *opts.Roll
	}
	for _, name := range c.Moves {
		m := r.Moves.Move(name)
		dmg := 0
		if m.Damaging() {
			calc := r.Calc.Calculate(s, user, target, m, opts)
			if calc.Deals() {
				dmg = calc.Rolls.Pick(bias)
			}
		}
		if dmg > bestDamage {
			best, bestDamage = name, dmg
		}
	}
	return best
}

// raiderFirst orders the turn: higher priority first, then the faster
// combatant. Trick Room reverses speed, and equal speed goes to the boss.
func (r *Resolver) raiderFirst(s *raid.State, raider, boss Action) bool {
	if boss.Type() == ActionNone {
		return true
	}
	if raider.Type() == ActionNone {
		return false
	}
	rp := movePriority(s, raider.UserID, r.Moves.Move(raider.Move))
	bp := movePriority(s, boss.UserID, r.Moves.Move(boss.Move))
	if rp != bp {
		return rp > bp
	}
	return s.Faster(raider.UserID, boss.UserID)
}
