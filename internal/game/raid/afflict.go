package raid

import (
	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
)

// Affliction qualifies a request to ApplyStatus or ApplyVolatileStatus.
type Affliction struct {
	// SourceID is the inflicting slot. A self-inflicted affliction (orbs,
	// Rest, berry confusion) has SourceID equal to the target and bypasses
	// Safeguard.
	SourceID int
	// IgnoreAbility is set when the source bypasses the target's ability.
	IgnoreAbility bool
	// Turns overrides the default duration of a volatile.
	Turns int
	// Move is the move a volatile is tied to (encore, disable).
	Move string
}

// ApplyStatus inflicts st on slot id unless an immunity applies and reports
// whether it landed. The checklist runs in order: fainted, type immunity,
// existing status, ability immunity, field immunity.
func (s *State) ApplyStatus(id int, st Status, a Affliction) bool {
	c := s.Get(id)
	if c.Fainted() || st == StatusNone {
		return false
	}
	if typeBlocksStatus(c, st) || c.Status != StatusNone {
		return false
	}
	if !a.IgnoreAbility && s.abilityBlocksStatus(id, st) {
		s.Flag(id, "%s's ability prevents %s", c.Role, st)
		return false
	}
	if s.fieldBlocksStatus(id, st, a.SourceID == id) {
		return false
	}
	c.Status = st
	switch st {
	case Sleep:
		c.SleepTurns = 3
		c.Volatiles.Remove(condition.Yawn)
	case Toxic:
		c.ToxicCounter = 0
	}
	s.Flag(id, "%s is afflicted with %s", c.Role, st)
	s.checkCureItem(id)
	return true
}

func typeBlocksStatus(c *Combatant, st Status) bool {
	switch st {
	case Burn:
		return c.HasType(dex.TypeFire)
	case Freeze:
		return c.HasType(dex.TypeIce)
	case Paralysis:
		return c.HasType(dex.TypeElectric)
	case Poison, Toxic:
		return c.HasType(dex.TypePoison) || c.HasType(dex.TypeSteel)
	}
	return false
}

func (s *State) abilityBlocksStatus(id int, st Status) bool {
	c := s.Get(id)
	switch {
	case c.HasAbility(Comatose), c.HasAbility(PurifyingSalt):
		return true
	case c.HasAbility(LeafGuard) && s.Field.EffectiveWeather() == Sun:
		return true
	case c.HasType(dex.TypeGrass) && s.sideHasAbility(id, FlowerVeil):
		return true
	}
	switch st {
	case Paralysis:
		return c.HasAbility(Limber)
	case Sleep:
		return c.HasAbility(Insomnia) || c.HasAbility(VitalSpirit) || s.sideHasAbility(id, SweetVeil)
	case Poison, Toxic:
		return c.HasAbility(Immunity) || s.sideHasAbility(id, PastelVeil)
	case Burn:
		return c.HasAbility(WaterVeil) || c.HasAbility(WaterBubble) || c.HasAbility(ThermalExchange)
	case Freeze:
		return c.HasAbility(MagmaArmor)
	}
	return false
}

func (s *State) fieldBlocksStatus(id int, st Status, self bool) bool {
	c := s.Get(id)
	grounded := c.IsGrounded(&s.Field)
	switch {
	case grounded && s.Field.Terrain == MistyTerrain:
		return true
	case grounded && s.Field.Terrain == ElectricTerrain && st == Sleep:
		return true
	case !self && s.SideOf(id).Safeguard:
		return true
	}
	return false
}

// ApplyVolatileStatus inflicts k on slot id unless an immunity applies and
// reports whether it landed.
func (s *State) ApplyVolatileStatus(id int, k condition.Kind, a Affliction) bool {
	c := s.Get(id)
	if c.Fainted() || c.Volatiles.Has(k) {
		return false
	}
	if !a.IgnoreAbility && s.abilityBlocksVolatile(id, k) {
		s.Flag(id, "%s's ability prevents %s", c.Role, k)
		return false
	}
	if s.fieldBlocksVolatile(id, k, a.SourceID == id) {
		return false
	}
	if k == condition.Yawn && c.Status != StatusNone {
		return false
	}
	c.Volatiles.Apply(k, a.Turns, a.Move)
	s.Flag(id, "%s is afflicted with %s", c.Role, k)
	s.checkCureItem(id)
	return true
}

func (s *State) abilityBlocksVolatile(id int, k condition.Kind) bool {
	c := s.Get(id)
	if condition.DefOf(k).Mental && s.sideHasAbility(id, AromaVeil) {
		return true
	}
	switch k {
	case condition.Taunt, condition.Infatuation:
		return c.HasAbility(Oblivious)
	case condition.Confusion:
		return c.HasAbility(OwnTempo)
	case condition.Flinch:
		return c.HasAbility(InnerFocus)
	case condition.Yawn:
		return c.HasAbility(Insomnia) || c.HasAbility(VitalSpirit) || c.HasAbility(Comatose) ||
			s.sideHasAbility(id, SweetVeil)
	}
	return false
}

func (s *State) fieldBlocksVolatile(id int, k condition.Kind, self bool) bool {
	c := s.Get(id)
	grounded := c.IsGrounded(&s.Field)
	switch k {
	case condition.Confusion:
		return !self && (grounded && s.Field.Terrain == MistyTerrain || s.SideOf(id).Safeguard)
	case condition.Yawn:
		return grounded && (s.Field.Terrain == MistyTerrain || s.Field.Terrain == ElectricTerrain) ||
			!self && s.SideOf(id).Safeguard
	}
	return false
}
