package combat

import (
	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// endOfTurn applies the effects that close a turn for the boss and raiderID,
// in order: status orbs, chip damage, healing items and terrain, volatile
// countdowns. Then flinches and one-turn protections are cleared for every
// combatant and the cheers count down.
func (r *Resolver) endOfTurn(s *raid.State, raiderID int) {
	for _, id := range []int{raid.BossID, raiderID} {
		if s.Get(id).Fainted() {
			continue
		}
		orb(s, id)
		chip(s, id)
		regenerate(s, id)
		tickVolatiles(s, id)
	}
	for i := range s.Combatants {
		c := s.Get(i)
		c.Volatiles.Remove(condition.Flinch)
		sc := &c.Scoped
		sc.Endure = false
		sc.Protected = false
		sc.WideGuard = false
		sc.QuickGuard = false
	}
	for i := range s.Sides {
		side := &s.Sides[i]
		side.AtkCheer = max(0, side.AtkCheer-1)
		side.DefCheer = max(0, side.DefCheer-1)
	}
}

// orb inflicts the status of a held orb. The status is self-inflicted, so
// Safeguard does not block it.
func orb(s *raid.State, id int) {
	c := s.Get(id)
	st := c.Item.Orb()
	if st == raid.StatusNone || c.Status != raid.StatusNone || s.Field.MagicRoom {
		return
	}
	if s.ApplyStatus(id, st, raid.Affliction{SourceID: id}) {
		s.Flag(id, "%s was afflicted by its %s", c.Role, c.Item)
	}
}

func chip(s *raid.State, id int) {
	c := s.Get(id)
	if c.HasAbility(raid.MagicGuard) {
		return
	}
	maxHP := c.MaxHP()
	amount := 0
	switch c.Status {
	case raid.Burn:
		amount = maxHP / 16
	case raid.Poison:
		amount = maxHP / 8
	case raid.Toxic:
		c.ToxicCounter++
		amount = maxHP * c.ToxicCounter / 16
	}
	if c.Volatiles.Has(condition.SaltCure) {
		if c.HasType(dex.TypeWater) || c.HasType(dex.TypeSteel) {
			amount += maxHP / 4
		} else {
			amount += maxHP / 8
		}
	}
	if amount > 0 {
		s.ApplyDamage(id, max(1, amount), raid.Indirect)
	}
}

func regenerate(s *raid.State, id int) {
	c := s.Get(id)
	if c.Fainted() {
		return
	}
	heal := 0
	if c.Item == raid.Leftovers && !s.Field.MagicRoom {
		heal += c.MaxHP() / 16
	}
	if s.Field.Terrain == raid.GrassyTerrain && c.IsGrounded(&s.Field) {
		heal += c.MaxHP() / 16
	}
	if c.Volatiles.Has(condition.Ingrain) {
		heal += c.MaxHP() / 16
	}
	s.Heal(id, heal)
}

// tickVolatiles counts down volatiles. Syrup Bomb lowers Speed each turn it
// remains; an expiring Yawn puts the holder to sleep.
func tickVolatiles(s *raid.State, id int) {
	c := s.Get(id)
	if c.Fainted() {
		return
	}
	if c.Volatiles.Has(condition.SyrupBomb) {
		src := s.Opponents(id)[0]
		c.SyrupBombDrops++
		s.ApplyStatChange(id, raid.Boosts{dex.Spe: -1}, raid.StatChange{Copyable: true, SourceID: src})
	}
	for _, k := range c.Volatiles.Tick() {
		if k == condition.Yawn {
			s.ApplyStatus(id, raid.Sleep, raid.Affliction{SourceID: -1})
		}
	}
}
