package combat

import (
	"fmt"

	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// MoveResult records what happened when one action was resolved.
type MoveResult struct {
	UserID   int
	TargetID int
	// Move is the move actually used after substitutions.
	Move string
	// Skipped is set when the user could not act; Reason says why.
	Skipped bool
	Reason  string
	// Damage is the HP each slot lost to the move, including recoil.
	Damage [raid.NumCombatants]int
	// Desc holds one line per calculated attack.
	Desc []string
	// Flags holds the event lines raised while the move resolved.
	Flags [raid.NumCombatants][]string
}

// TotalDamage returns the HP lost by slot id.
func (r MoveResult) TotalDamage(id int) int {
	return r.Damage[id]
}

// execution carries one move through the move pipeline.
type execution struct {
	r          *Resolver
	s          *raid.State
	user       int
	target     int
	move       dex.Move
	opts       Options
	movedFirst bool
	breaker    bool
	targets    []int
	dealt      int
	res        *MoveResult
}

// moveStep is one stage of the move pipeline. Returning false stops the
// pipeline.
type moveStep struct {
	name string
	run  func(*execution) bool
}

// moveSteps run in order; each sees the state left by the previous one.
//
//  1. terastallize before anything can fail
//  2. stop if the user cannot act (fainted, flinched, asleep, frozen, restricted)
//  3. record the move as the user's last move
//  4. resolve targets and drop protected ones
//  5. damage, then drain, then healing
//  6. stat changes, ailments, and flinch
//  7. field and move-specific effects
//  8. Life Orb recoil and clearing one-shot boosts
var moveSteps = []moveStep{
	{"terastallize", (*execution).terastallize},
	{"can move", (*execution).canMove},
	{"record", (*execution).record},
	{"targets", (*execution).resolveTargets},
	{"damage", (*execution).damage},
	{"drain", (*execution).drain},
	{"healing", (*execution).healing},
	{"stat changes", (*execution).statChanges},
	{"ailments", (*execution).ailments},
	{"flinch", (*execution).flinch},
	{"effects", (*execution).effects},
	{"after move", (*execution).afterMove},
}

// executeMove runs a through the move pipeline on s.
//
// Precondition: a.UserID and a.TargetID are valid slots.
// Postcondition: res.Flags holds every event line raised while resolving.
func (r *Resolver) executeMove(s *raid.State, a Action, movedFirst bool) MoveResult {
	res := MoveResult{UserID: a.UserID, TargetID: a.TargetID, Move: a.Move}
	if a.Type() == ActionNone {
		res.Move = NoMove
		res.Skipped = true
		res.Reason = "no move"
		return res
	}
	m := r.Moves.Move(a.Move)
	res.Move = m.Name
	x := &execution{
		r:          r,
		s:          s,
		user:       a.UserID,
		target:     a.TargetID,
		move:       m,
		opts:       a.Options,
		movedFirst: movedFirst,
		breaker:    s.IgnoresAbilities(a.UserID),
		res:        &res,
	}
	for _, step := range moveSteps {
		if !step.run(x) {
			break
		}
	}
	res.Flags = s.TakeFlags()
	return res
}

func (x *execution) userC() *raid.Combatant { return x.s.Get(x.user) }

func (x *execution) skip(reason string) bool {
	x.res.Skipped = true
	x.res.Reason = reason
	return false
}

// chance reports whether a secondary effect with the given percentage lands.
// Zero and 100 are guaranteed; anything else needs SecondaryEffects.
func (x *execution) chance(pct int) bool {
	return pct <= 0 || pct >= 100 || x.opts.SecondaryEffects
}

func (x *execution) terastallize() bool {
	c := x.userC()
	if x.opts.Tera && !c.IsTera && c.TeraType != dex.TypeNone && !c.Fainted() {
		c.IsTera = true
		x.s.Flag(x.user, "%s terastallized into the %s type", c.Role, c.TeraType)
	}
	return true
}

func (x *execution) canMove() bool {
	c := x.userC()
	if c.Fainted() {
		return x.skip("fainted")
	}
	if c.Volatiles.Has(condition.Flinch) {
		c.Volatiles.Remove(condition.Flinch)
		x.s.Flag(x.user, "%s flinched", c.Role)
		return x.skip("flinched")
	}
	switch c.Status {
	case raid.Sleep:
		if c.SleepTurns > 0 {
			c.SleepTurns--
			x.s.Flag(x.user, "%s is fast asleep", c.Role)
			return x.skip("asleep")
		}
		c.Status = raid.StatusNone
		x.s.Flag(x.user, "%s woke up", c.Role)
	case raid.Freeze:
		if !x.move.HasFlag("defrost") {
			x.s.Flag(x.user, "%s is frozen solid", c.Role)
			return x.skip("frozen")
		}
		c.Status = raid.StatusNone
		x.s.Flag(x.user, "%s thawed out", c.Role)
	}
	if k, blocked := condition.RestrictingKind(&c.Volatiles, x.move.Name, x.move.Category == dex.Status, c.LastMove); blocked {
		x.s.Flag(x.user, "%s can't use %s because of %s", c.Role, x.move.Name, k)
		return x.skip(k.String())
	}
	return true
}

func (x *execution) record() bool {
	c := x.userC()
	c.LastMove = x.move.Name
	c.LastTarget = x.target
	x.s.LastMover = x.user
	if c.Item.IsChoice() && !x.s.Field.MagicRoom {
		c.Volatiles.Apply(condition.ChoiceLock, -1, x.move.Name)
	}
	return true
}

// affected returns the slots the move's target pattern covers.
func (x *execution) affected() []int {
	s := x.s
	switch x.move.Target {
	case dex.TargetUser, dex.TargetUsersField, dex.TargetEntireField, dex.TargetOpponentField:
		return []int{x.user}
	case dex.TargetAllOpponents:
		return s.Opponents(x.user)
	case dex.TargetAllOther:
		return s.Others(x.user)
	case dex.TargetAllAllies:
		return s.Allies(x.user)
	case dex.TargetUserAndAllies:
		return append([]int{x.user}, s.Allies(x.user)...)
	case dex.TargetAllPokemon:
		return append([]int{x.user}, s.Others(x.user)...)
	}
	return []int{x.target}
}

func (x *execution) guarded(id int) bool {
	s := x.s
	side := raid.SideIndex(id)
	for i := range s.Combatants {
		c := s.Get(i)
		if raid.SideIndex(i) != side || c.Fainted() {
			continue
		}
		if c.Scoped.WideGuard && spreadMove(x.userC(), x.move) || c.Scoped.QuickGuard && x.priority() > 0 {
			return true
		}
	}
	return false
}

func (x *execution) priority() int {
	return movePriority(x.s, x.user, x.move)
}

func (x *execution) resolveTargets() bool {
	for _, id := range x.affected() {
		t := x.s.Get(id)
		if t.Fainted() {
			continue
		}
		if id != x.user && raid.SideIndex(id) != raid.SideIndex(x.user) {
			if t.Scoped.Protected || x.guarded(id) {
				x.s.Flag(id, "%s protected itself", t.Role)
				continue
			}
		}
		x.targets = append(x.targets, id)
	}
	if len(x.targets) == 0 {
		x.s.Flag(x.user, "%s's %s had no target", x.userC().Role, x.move.Name)
		return x.skip("no target")
	}
	return true
}

func (x *execution) hit(calc Calculation) raid.Hit {
	return raid.Hit{
		AttackerID:    x.user,
		Move:          x.move,
		Hits:          calc.Hits,
		Crit:          calc.Crit,
		Effectiveness: calc.Effectiveness,
		Rolls:         calc.Rolls,
	}
}

func (x *execution) damage() bool {
	if !x.move.Damaging() {
		return true
	}
	s := x.s
	for _, id := range x.targets {
		calc := x.r.Calc.Calculate(s, x.user, id, x.move, x.opts)
		x.res.Desc = append(x.res.Desc, calc.Desc)
		if calc.Absorbed {
			s.AbsorbAttack(id, x.hit(calc))
			continue
		}
		if !calc.Deals() {
			s.Flag(id, "It doesn't affect %s", s.Get(id).Role)
			continue
		}
		label := fmt.Sprintf("%s %s -> %s", x.userC().Role, x.move.Name, s.Get(id).Role)
		amount := x.r.Roller.Pick(label, calc.Rolls, x.opts.Roll)
		before := s.Get(id).HP
		s.ApplyDamage(id, amount, x.hit(calc))
		lost := max(0, before-s.Get(id).HP)
		x.res.Damage[id] += lost
		x.dealt += lost
	}
	return true
}

func (x *execution) drain() bool {
	s, c := x.s, x.userC()
	switch {
	case x.move.Drain > 0 && x.dealt > 0:
		s.Heal(x.user, max(1, x.dealt*x.move.Drain/100))
	case x.move.Drain < 0 && x.dealt > 0 && !c.HasAbility(raid.MagicGuard):
		before := c.HP
		s.ApplyDamage(x.user, max(1, x.dealt*-x.move.Drain/100), raid.Indirect)
		x.res.Damage[x.user] += before - c.HP
	}
	return true
}

func (x *execution) healing() bool {
	if x.move.Healing <= 0 {
		return true
	}
	for _, id := range x.targets {
		x.s.Heal(id, x.s.Get(id).MaxHP()*x.move.Healing/100)
	}
	return true
}

// shielded reports whether a secondary effect of a damaging move is blocked
// for target id.
func (x *execution) shielded(id int) bool {
	if !x.move.Damaging() || id == x.user {
		return false
	}
	t := x.s.Get(id)
	return t.Item == raid.CovertCloak && !x.s.Field.MagicRoom || t.HasAbility(raid.ShieldDust) && !x.breaker
}

func (x *execution) statChanges() bool {
	if len(x.move.StatChanges) == 0 || !x.chance(x.move.StatChance) {
		return true
	}
	deltas := raid.BoostsFromMap(x.move.StatChanges)
	recipients := x.targets
	if x.move.Effect == "damage+raise" {
		recipients = []int{x.user}
	}
	for _, id := range recipients {
		if x.s.Get(id).Fainted() || x.shielded(id) {
			continue
		}
		x.s.ApplyStatChange(id, deltas, raid.StatChange{Copyable: true, SourceID: x.user, IgnoreAbility: x.breaker})
	}
	return true
}

func (x *execution) ailments() bool {
	name := x.move.Ailment
	if name == "" || name == "none" || !x.chance(x.move.AilmentChance) {
		return true
	}
	st, isStatus := raid.ParseStatus(name)
	k, isVolatile := condition.ParseKind(name)
	if !isStatus && !isVolatile {
		return true
	}
	for _, id := range x.targets {
		if x.shielded(id) {
			continue
		}
		a := raid.Affliction{SourceID: x.user, IgnoreAbility: x.breaker}
		if isStatus {
			x.s.ApplyStatus(id, st, a)
			continue
		}
		a.Move = x.s.Get(id).LastMove
		x.s.ApplyVolatileStatus(id, k, a)
	}
	return true
}

func (x *execution) flinch() bool {
	if x.move.FlinchChance <= 0 || !x.movedFirst || !x.chance(x.move.FlinchChance) {
		return true
	}
	for _, id := range x.targets {
		if id == x.user || x.s.Get(id).Fainted() || x.shielded(id) {
			continue
		}
		x.s.ApplyVolatileStatus(id, condition.Flinch, raid.Affliction{SourceID: x.user, IgnoreAbility: x.breaker})
	}
	return true
}

func (x *execution) effects() bool {
	if eff, ok := moveEffects[dex.ID(x.move.Name)]; ok {
		eff(x)
	}
	return true
}

func (x *execution) afterMove() bool {
	s, c := x.s, x.userC()
	if x.dealt > 0 && c.Item == raid.LifeOrb && !s.Field.MagicRoom && !c.HasAbility(raid.MagicGuard) && !c.Fainted() {
		before := c.HP
		s.ApplyDamage(x.user, max(1, c.MaxHP()/10), raid.Indirect)
		x.res.Damage[x.user] += before - c.HP
	}
	if x.move.Damaging() {
		c.Scoped.HelpingHand = false
		if x.move.Type == dex.TypeElectric {
			c.Scoped.Charged = false
		}
	}
	return true
}

// movePriority returns m's priority for user after Prankster, Gale Wings, and
// Triage.
func movePriority(s *raid.State, user int, m dex.Move) int {
	c := s.Get(user)
	p := m.Priority
	switch {
	case c.HasAbility(raid.Prankster) && m.Category == dex.Status:
		p++
	case c.HasAbility(raid.GaleWings) && m.Type == dex.TypeFlying && c.HP == c.MaxHP():
		p++
	case c.HasAbility(raid.Triage) && (m.Healing > 0 || m.Drain > 0):
		p += 3
	}
	return p
}
