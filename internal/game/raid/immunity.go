package raid

import "github.com/cory-johannsen/raidcalc/internal/game/dex"

// AbsorbAttack runs the type-immunity ability of slot id against hit and
// reports whether the attack was absorbed. An absorbed attack
// deals no damage; the ability's reward (healing, a boost, or Flash Fire's
// activation) is applied instead.
func (s *State) AbsorbAttack(id int, hit Hit) bool {
	c := s.Get(id)
	mt := hit.Move.Type
	if c.Fainted() || hit.AttackerID == id || s.IgnoresAbilities(hit.AttackerID) {
		return false
	}
	if !c.HasAbility(c.Ability) || c.Ability.Absorbs() != mt {
		return false
	}
	self := StatChange{Copyable: true, SourceID: id}
	s.Flag(id, "%s's %s absorbed the attack", c.Role, c.Ability)
	switch c.Ability {
	case VoltAbsorb, WaterAbsorb, EarthEater:
		s.Heal(id, c.MaxHP()/4)
	case FlashFire:
		c.AbilityOn = true
	case SapSipper:
		s.ApplyStatChange(id, Boosts{dex.Atk: 1}, self)
	case LightningRod, StormDrain:
		s.ApplyStatChange(id, Boosts{dex.SpA: 1}, self)
	case MotorDrive:
		s.ApplyStatChange(id, Boosts{dex.Spe: 1}, self)
	case WellBakedBody:
		s.ApplyStatChange(id, Boosts{dex.Def: 2}, self)
	}
	return true
}
