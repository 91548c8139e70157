package raid

import (
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
)

// Hit describes where damage passed to ApplyDamage came from.
type Hit struct {
	// AttackerID is the attacking slot, or -1 for indirect damage.
	AttackerID int
	Move       dex.Move
	// Hits is the number of strikes. Zero marks damage that is not an attack
	// (chip damage, recoil, berry re-checks).
	Hits int
	Crit bool
	// Effectiveness is the type multiplier the calculator applied.
	Effectiveness float64
	// Rolls is every damage value the attack could have dealt.
	Rolls dice.Rolls
}

// Indirect is the Hit for damage that is not an attack.
var Indirect = Hit{AttackerID: -1}

// ApplyDamage applies amount to slot id and runs every damage-driven
// trigger. The steps run in order and each one sees the HP left by the
// previous one:
//
//  1. record the roll history, then stop if the target is already fainted
//  2. a substitute absorbs an attack
//  3. shields against lethal hits adjust the amount, then it is committed
//  4. attack triggers: resist berries, Air Balloon, and survival boosts
//  5. on-hit field setters, whether or not the target fainted
//  6. a fainted target is finalized and nothing else runs
//  7. HP threshold forms, then HP threshold berries
func (s *State) ApplyDamage(id, amount int, hit Hit) {
	c := s.Get(id)
	s.recordRolls(c, amount, hit)
	if c.Fainted() {
		return
	}
	attack := hit.Hits > 0 && amount > 0
	if attack {
		amount = s.absorbBySubstitute(id, amount, hit)
		if amount == 0 {
			return
		}
		amount = s.shieldLethalHit(id, amount, hit)
	}
	prevHP := c.HP
	c.ApplyRawDamage(amount)
	if attack {
		c.HitsTaken++
		s.resistBerryCheck(id, hit)
		s.popAirBalloon(id, hit)
		if !c.Fainted() {
			s.survivalBoosts(id, hit)
		}
		s.onHitFieldSetters(id, hit)
	}
	if c.Fainted() {
		s.Faint(id)
		return
	}
	s.thresholdForms(id, prevHP)
	s.thresholdBerries(id)
}

func (s *State) recordRolls(c *Combatant, amount int, hit Hit) {
	rolls := hit.Rolls
	if len(rolls) == 0 {
		if amount == 0 {
			return
		}
		rolls = dice.Rolls{amount}
	}
	c.Rolls.AddRolls(rolls, 0, c.MaxHP(), 1)
}

// IgnoresAbilities reports whether attacker's ability lets its attack bypass
// the target's ability.
func (s *State) IgnoresAbilities(attacker int) bool {
	if attacker < 0 {
		return false
	}
	a := s.Get(attacker)
	return !a.AbilityNullified && a.Ability.Breaker()
}

func (s *State) absorbBySubstitute(id, amount int, hit Hit) int {
	c := s.Get(id)
	if c.SubstituteHP <= 0 || hit.AttackerID == id || hit.Move.HasFlag("sound") {
		return amount
	}
	if hit.AttackerID >= 0 && s.Get(hit.AttackerID).HasAbility(Infiltrator) {
		return amount
	}
	c.SubstituteHP -= amount
	if c.SubstituteHP <= 0 {
		c.SubstituteHP = 0
		s.Flag(id, "%s's substitute faded", c.Role)
	}
	return 0
}

// shieldLethalHit applies Disguise and Ice Face, which replace the first
// hit, then Sturdy and Focus Sash, which leave a full HP target at 1 HP.
func (s *State) shieldLethalHit(id, amount int, hit Hit) int {
	c := s.Get(id)
	ignore := s.IgnoresAbilities(hit.AttackerID)
	if !ignore && c.HasAbility(Disguise) && !c.AbilityOn {
		c.AbilityOn = true
		s.Flag(id, "%s's disguise was busted", c.Role)
		return c.MaxHP() / 8
	}
	if !ignore && c.HasAbility(IceFace) && !c.AbilityOn && hit.Move.Category == dex.Physical {
		c.AbilityOn = true
		s.Flag(id, "%s's Ice Face was broken", c.Role)
		return 0
	}
	if amount < c.HP || c.HP != c.MaxHP() {
		return amount
	}
	if !ignore && c.HasAbility(Sturdy) {
		s.Flag(id, "%s endured the hit with Sturdy", c.Role)
		return c.HP - 1
	}
	if c.Item == FocusSash && !s.Field.MagicRoom {
		s.Flag(id, "%s hung on using its Focus Sash", c.Role)
		s.LoseItem(id, true, false)
		return c.HP - 1
	}
	return amount
}

// resistBerryCheck consumes a resist berry matching a super effective hit.
// Chilan Berry matches any Normal hit.
func (s *State) resistBerryCheck(id int, hit Hit) {
	c := s.Get(id)
	rt := c.Item.ResistType()
	if rt == dex.TypeNone || rt != hit.Move.Type || !hit.Move.Damaging() {
		return
	}
	if c.Item != ChilanBerry && hit.Effectiveness <= 1 {
		return
	}
	if s.BerriesSuppressed(id) || s.Field.MagicRoom {
		return
	}
	s.ConsumeItem(id, c.Item, true, false)
}

func (s *State) popAirBalloon(id int, hit Hit) {
	if s.Get(id).Item == AirBalloon && hit.Move.Damaging() {
		s.Flag(id, "%s's Air Balloon popped", s.name(id))
		s.LoseItem(id, false, false)
	}
}

// survivalBoosts runs the triggers that need the target to survive the hit.
func (s *State) survivalBoosts(id int, hit Hit) {
	c := s.Get(id)
	self := StatChange{Copyable: true, SourceID: id}
	mt := hit.Move.Type
	switch {
	case c.HasAbility(AngerPoint) && hit.Crit:
		c.Boosts[dex.Atk] = MaxStage
		s.Flag(id, "%s maxed its Attack with Anger Point", c.Role)
	case c.HasAbility(Justified) && mt == dex.TypeDark,
		c.HasAbility(ThermalExchange) && mt == dex.TypeFire:
		s.ApplyStatChange(id, Boosts{dex.Atk: 1}, self)
	case c.HasAbility(WaterCompaction) && mt == dex.TypeWater:
		s.ApplyStatChange(id, Boosts{dex.Def: 2}, self)
	case c.HasAbility(SteamEngine) && (mt == dex.TypeFire || mt == dex.TypeWater):
		s.ApplyStatChange(id, Boosts{dex.Spe: 6}, self)
	case c.HasAbility(Rattled) && (mt == dex.TypeBug || mt == dex.TypeGhost || mt == dex.TypeDark):
		s.ApplyStatChange(id, Boosts{dex.Spe: 1}, self)
	case c.HasAbility(Stamina):
		s.ApplyStatChange(id, Boosts{dex.Def: 1}, self)
	case c.HasAbility(WeakArmor) && hit.Move.Category == dex.Physical:
		s.ApplyStatChange(id, Boosts{dex.Def: -1, dex.Spe: 2}, self)
	case c.HasAbility(Electromorphosis),
		c.HasAbility(WindPower) && hit.Move.HasFlag("wind"):
		c.Scoped.Charged = true
		s.Flag(id, "%s became charged", c.Role)
	case c.HasAbility(CottonDown):
		for _, o := range s.Others(id) {
			s.ApplyStatChange(o, Boosts{dex.Spe: -1}, StatChange{Copyable: true, SourceID: id})
		}
	}
	if s.Field.MagicRoom {
		return
	}
	t := c.Item.trait()
	switch {
	case c.Item == WeaknessPolicy && hit.Effectiveness > 1:
		s.ConsumeItem(id, c.Item, true, false)
	case t.hitType != dex.TypeNone && t.hitType == mt:
		s.ConsumeItem(id, c.Item, true, false)
	case t.berry == berryOnHit && t.hitCategory == hit.Move.Category && !s.BerriesSuppressed(id):
		s.ConsumeItem(id, c.Item, true, false)
	}
}

// onHitFieldSetters runs abilities that change the field when hit at all.
func (s *State) onHitFieldSetters(id int, hit Hit) {
	c := s.Get(id)
	switch {
	case c.HasAbility(SeedSower):
		s.ApplyTerrain(id, GrassyTerrain, OriginEffect)
	case c.HasAbility(SandSpit):
		s.ApplyWeather(id, Sand, OriginEffect)
	}
}

// thresholdForms runs abilities triggered by dropping to half HP.
func (s *State) thresholdForms(id, prevHP int) {
	c := s.Get(id)
	half := c.MaxHP() / 2
	if prevHP <= half || c.HP > half {
		return
	}
	self := StatChange{Copyable: true, SourceID: id}
	switch {
	case c.HasAbility(Berserk):
		s.ApplyStatChange(id, Boosts{dex.SpA: 1}, self)
	case c.HasAbility(AngerShell):
		s.ApplyStatChange(id, Boosts{dex.Atk: 1, dex.SpA: 1, dex.Spe: 1, dex.Def: -1, dex.SpD: -1}, self)
	}
}

// thresholdBerries eats a 50% berry, then a pinch berry whose 25% threshold
// Gluttony raises to 50%.
func (s *State) thresholdBerries(id int) {
	c := s.Get(id)
	if !c.Item.IsBerry() || c.Fainted() || s.BerriesSuppressed(id) || s.Field.MagicRoom {
		return
	}
	kind := c.Item.trait().berry
	if kind == berryHalfHeal && c.HP <= c.MaxHP()/2 {
		s.ConsumeItem(id, c.Item, true, false)
		return
	}
	pinch := c.MaxHP() / 4
	if c.HasAbility(Gluttony) {
		pinch = c.MaxHP() / 2
	}
	if (kind == berryPinchHeal || kind == berryPinchStat) && c.HP <= pinch {
		s.ConsumeItem(id, c.Item, true, false)
	}
}

// BerriesSuppressed reports whether an opposing Unnerve or As One blocks
// berries for id.
func (s *State) BerriesSuppressed(id int) bool {
	for _, o := range s.Opponents(id) {
		c := s.Get(o)
		if !c.Fainted() && (c.HasAbility(Unnerve) || c.HasAbility(AsOne)) {
			return true
		}
	}
	return false
}
