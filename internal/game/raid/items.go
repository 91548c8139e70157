package raid

import (
	"slices"

	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
)

// ConsumeItem applies the one-shot effect of item to slot id. When markLost
// is set the holder then loses its item through LoseItem, which may relay a
// replacement unless blockRelay is set.
//
// Precondition: item is the held item, or a berry id eats from elsewhere.
func (s *State) ConsumeItem(id int, item Item, markLost, blockRelay bool) {
	c := s.Get(id)
	t := item.trait()
	mult := 1
	if item.IsBerry() && c.HasAbility(Ripen) {
		mult = 2
	}
	self := StatChange{Copyable: true, SourceID: id}
	s.Flag(id, "%s used its %s", c.Role, item)

	switch t.berry {
	case berryHalfHeal:
		amount := c.MaxHP() / t.heal
		if t.flat {
			amount = t.heal
		}
		s.Heal(id, amount*mult)
	case berryPinchHeal:
		s.Heal(id, c.MaxHP()*mult/t.heal)
		if c.Nature.Dislikes(t.dislike) {
			s.ApplyVolatileStatus(id, condition.Confusion, Affliction{SourceID: id})
		}
	case berryPinchStat:
		switch item {
		case LansatBerry:
			c.CritStage += 2
		case MicleBerry:
			c.Micle = true
		default:
			var b Boosts
			b[t.boost] = mult
			s.ApplyStatChange(id, b, self)
		}
	case berryOnHit:
		var b Boosts
		b[t.boost] = mult
		s.ApplyStatChange(id, b, self)
	case berryCure:
		if slices.Contains(t.cures, c.Status) {
			s.Flag(id, "%s was cured of %s", c.Role, c.Status)
			c.Status = StatusNone
			c.SleepTurns = 0
			c.ToxicCounter = 0
		}
		if t.confusion {
			c.Volatiles.Remove(condition.Confusion)
		}
	}

	switch {
	case item == WhiteHerb:
		for _, st := range BoostStats {
			c.Boosts[st] = max(0, c.Boosts[st])
		}
	case item == MentalHerb:
		condition.ClearMental(&c.Volatiles)
	case item == WeaknessPolicy:
		s.ApplyStatChange(id, Boosts{dex.Atk: 2, dex.SpA: 2}, self)
	case t.seed != TerrainNone, t.hitType != dex.TypeNone:
		var b Boosts
		b[t.boost] = 1
		s.ApplyStatChange(id, b, self)
	}

	if item.IsBerry() && c.HasAbility(CheekPouch) {
		s.Heal(id, c.MaxHP()/3)
	}
	if markLost {
		s.LoseItem(id, true, blockRelay)
	}
}

// LoseItem clears the held item of slot id. When the item was consumed (not
// knocked off or popped) and blockRelay is unset, the fastest other raider
// with Symbiosis passes its own item to id. The donor's slot is emptied
// before the transfer so the received item cannot relay back.
func (s *State) LoseItem(id int, consumed, blockRelay bool) {
	c := s.Get(id)
	lost := c.Item
	if lost == ItemNone {
		return
	}
	c.LoseHeldItem()
	if lost.IsChoice() {
		c.Volatiles.Remove(condition.ChoiceLock)
	}
	if !consumed || blockRelay || id == BossID {
		return
	}
	donor := s.relayDonor(id)
	if donor < 0 {
		return
	}
	d := s.Get(donor)
	gift := d.Item
	d.LoseHeldItem()
	s.Flag(donor, "%s shared its %s with %s", d.Role, gift, c.Role)
	s.ReceiveItem(id, gift)
}

// relayDonor picks the Symbiosis raider that relays an item to id: the
// strictly fastest eligible one, with earlier slots winning ties. Trick
// Room reverses the comparison.
func (s *State) relayDonor(id int) int {
	best := -1
	for i := 1; i < NumCombatants; i++ {
		d := s.Get(i)
		if i == id || d.Fainted() || !d.HasAbility(Symbiosis) || d.Item == ItemNone {
			continue
		}
		if best < 0 || s.Faster(i, best) {
			best = i
		}
	}
	return best
}

// ReceiveItem gives item to slot id and runs every check that reacts to
// holding it: Booster Energy, terrain seeds, status cures, White Herb, and
// the HP threshold berries.
func (s *State) ReceiveItem(id int, item Item) {
	c := s.Get(id)
	c.Item = item
	if c.HasAbility(Unburden) {
		c.AbilityOn = false
	}
	c.Rolls = dice.Distribution{c.MaxHP() - c.HP: 1}
	s.Flag(id, "%s received %s", c.Role, item)
	s.updateParadox(id)
	s.checkSeed(id)
	s.checkCureItem(id)
	s.checkWhiteHerb(id)
	s.ApplyDamage(id, 0, Indirect)
}

// checkSeed consumes a terrain seed matching the current terrain.
func (s *State) checkSeed(id int) {
	c := s.Get(id)
	seed := c.Item.trait().seed
	if seed == TerrainNone || seed != s.Field.Terrain || c.Fainted() || s.Field.MagicRoom {
		return
	}
	s.ConsumeItem(id, c.Item, true, false)
}

// checkCureItem consumes a held item that cures the current status or a
// mental volatile.
func (s *State) checkCureItem(id int) {
	c := s.Get(id)
	if c.Fainted() || s.Field.MagicRoom {
		return
	}
	t := c.Item.trait()
	switch {
	case t.berry == berryCure && s.BerriesSuppressed(id):
		return
	case t.berry == berryCure && slices.Contains(t.cures, c.Status) && c.Status != StatusNone,
		t.berry == berryCure && t.confusion && c.Volatiles.Has(condition.Confusion):
		s.ConsumeItem(id, c.Item, true, false)
	case c.Item == MentalHerb && hasMental(&c.Volatiles):
		s.ConsumeItem(id, c.Item, true, false)
	}
}

func hasMental(v *condition.Set) bool {
	for _, k := range v.Kinds() {
		if condition.DefOf(k).Mental {
			return true
		}
	}
	return false
}

// checkWhiteHerb consumes a White Herb while any boost is negative.
func (s *State) checkWhiteHerb(id int) {
	c := s.Get(id)
	if c.Item == WhiteHerb && !c.Fainted() && !s.Field.MagicRoom && c.Boosts.HasNegative() {
		s.ConsumeItem(id, WhiteHerb, true, false)
	}
}
