package raid

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/raidcalc/internal/game/dex"
)

// StatChange qualifies a request to ApplyStatChange.
type StatChange struct {
	// Copyable changes can be mirrored by Opportunist and Mirror Herb.
	Copyable bool
	// SourceID is the slot causing the change. A change is external when
	// SourceID is another slot.
	SourceID int
	// IgnoreAbility is set when the source bypasses the target's ability.
	IgnoreAbility bool

	reflected bool
}

// ApplyStatChange applies deltas to slot id through every modifying rule and
// returns the net change to its boosts. The steps run in order:
//
//	(a) Mirror Armor reflects external drops back at the source, once
//	(b) immunity abilities, Clear Amulet, Mist, and Flower Veil block external drops
//	(c) per-stat floors (Hyper Cutter, Big Pecks, Keen Eye) block external drops
//	(d) the combatant's raw boost application with its coefficient and clamp
//	(e) Defiant and Competitive answer an external drop
//	(f) copyable gains are mirrored by opposing Opportunist or Mirror Herb
//	(g) White Herb clears negative stages
//
// Postcondition: the result equals the target's boosts after minus before.
func (s *State) ApplyStatChange(id int, deltas Boosts, opt StatChange) Boosts {
	c := s.Get(id)
	if c.Fainted() || deltas.IsZero() {
		return Boosts{}
	}
	before := c.Boosts
	external := opt.SourceID >= 0 && opt.SourceID != id
	if external {
		deltas = s.reflectDrops(id, deltas, opt)
		deltas = s.blockDrops(id, deltas, opt)
		deltas = s.floorDrops(id, deltas, opt)
	}
	applied := c.ApplyRawBoostDelta(deltas)
	s.flagBoosts(id, applied)
	if external && applied.HasNegative() {
		s.retaliate(id)
	}
	if opt.Copyable {
		s.mirrorGains(id, applied.Positive())
	}
	s.checkWhiteHerb(id)
	return c.Boosts.Sub(before)
}

func (s *State) reflectDrops(id int, deltas Boosts, opt StatChange) Boosts {
	c := s.Get(id)
	drops := deltas.Negative()
	if opt.reflected || opt.IgnoreAbility || drops.IsZero() || !c.HasAbility(MirrorArmor) {
		return deltas
	}
	s.Flag(id, "%s's Mirror Armor reflected the stat drop", c.Role)
	s.ApplyStatChange(opt.SourceID, drops, StatChange{Copyable: opt.Copyable, SourceID: id, reflected: true})
	return deltas.Positive()
}

func (s *State) blockDrops(id int, deltas Boosts, opt StatChange) Boosts {
	if !deltas.HasNegative() {
		return deltas
	}
	c := s.Get(id)
	var by string
	switch {
	case c.HasAbility(FullMetalBody):
		by = c.Ability.String()
	case !opt.IgnoreAbility && (c.HasAbility(ClearBody) || c.HasAbility(WhiteSmoke)):
		by = c.Ability.String()
	case c.Item == ClearAmulet && !s.Field.MagicRoom:
		by = c.Item.String()
	case s.SideOf(id).Mist:
		by = "Mist"
	case !opt.IgnoreAbility && c.HasType(dex.TypeGrass) && s.sideHasAbility(id, FlowerVeil):
		by = "Flower Veil"
	default:
		return deltas
	}
	s.Flag(id, "%s's stats were protected by %s", c.Role, by)
	return deltas.Positive()
}

func (s *State) floorDrops(id int, deltas Boosts, opt StatChange) Boosts {
	c := s.Get(id)
	if opt.IgnoreAbility {
		return deltas
	}
	switch {
	case c.HasAbility(HyperCutter):
		deltas[dex.Atk] = max(0, deltas[dex.Atk])
	case c.HasAbility(BigPecks):
		deltas[dex.Def] = max(0, deltas[dex.Def])
	case c.HasAbility(KeenEye), c.HasAbility(MindsEye):
		deltas[dex.Acc] = max(0, deltas[dex.Acc])
	}
	return deltas
}

func (s *State) retaliate(id int) {
	c := s.Get(id)
	self := StatChange{Copyable: true, SourceID: id}
	switch {
	case c.HasAbility(Defiant):
		s.ApplyStatChange(id, Boosts{dex.Atk: 2}, self)
	case c.HasAbility(Competitive):
		s.ApplyStatChange(id, Boosts{dex.SpA: 2}, self)
	}
}

// mirrorGains copies gains to every opponent holding Mirror Herb or
// Opportunist, doubled when it has both. The herb is consumed only when the
// copy raised something.
func (s *State) mirrorGains(id int, gains Boosts) {
	if gains.IsZero() {
		return
	}
	for _, o := range s.Opponents(id) {
		oc := s.Get(o)
		if oc.Fainted() {
			continue
		}
		herb := oc.Item == MirrorHerb && !s.Field.MagicRoom
		opp := oc.HasAbility(Opportunist)
		if !herb && !opp {
			continue
		}
		copied := gains
		if herb && opp {
			copied = gains.Scale(2)
		}
		got := s.ApplyStatChange(o, copied, StatChange{SourceID: o})
		if herb && !got.Positive().IsZero() {
			s.ConsumeItem(o, MirrorHerb, true, false)
		}
	}
}

func (s *State) flagBoosts(id int, applied Boosts) {
	var parts []string
	for _, st := range BoostStats {
		if applied[st] != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", st, applied[st]))
		}
	}
	if len(parts) > 0 {
		s.Flag(id, "%s: %s", s.name(id), strings.Join(parts, ", "))
	}
}

// sideHasAbility reports whether a non-fainted combatant on id's side
// (including id) has ability a.
func (s *State) sideHasAbility(id int, a Ability) bool {
	side := SideIndex(id)
	for i := range s.Combatants {
		c := s.Get(i)
		if SideIndex(i) == side && !c.Fainted() && c.HasAbility(a) {
			return true
		}
	}
	return false
}
