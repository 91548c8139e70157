package raid

import (
	"slices"

	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
)

// EnterBattle runs the opening switch-in for slot id: the Neutralizing Gas
// check, the ability's standing field effect, and its opening entry effect.
func (s *State) EnterBattle(id int) {
	s.enter(id, true)
}

// SwitchIn revives slot id at full HP with a fresh roll history and re-runs
// its switch-in ability pass.
//
// Postcondition: HP == MaxHP().
func (s *State) SwitchIn(id int) {
	c := s.Get(id)
	c.HP = c.MaxHP()
	c.Rolls = dice.Distribution{}
	s.Flag(id, "%s rejoined the battle", c.Role)
	s.enter(id, false)
}

func (s *State) enter(id int, opening bool) {
	c := s.Get(id)
	if s.Field.NeutralizingGas && c.Ability != NeutralizingGas && !c.AbilityNullified {
		c.AbilityNullified = true
		c.gasSuppressed = true
	}
	s.AddAbilityFieldEffect(id)
	s.activateEntry(id, opening)
}

// activateEntry runs one-shot switch-in abilities. Intimidate and Supersweet
// Syrup only act on the opening switch-in.
func (s *State) activateEntry(id int, opening bool) {
	c := s.Get(id)
	if c.Fainted() || c.AbilityNullified {
		return
	}
	self := StatChange{Copyable: true, SourceID: id}
	switch c.Ability {
	case Intimidate:
		if opening {
			for _, o := range s.Opponents(id) {
				s.intimidate(id, o)
			}
		}
	case SupersweetSyrup:
		if opening {
			for _, o := range s.Opponents(id) {
				s.ApplyStatChange(o, Boosts{dex.Eva: -1}, StatChange{Copyable: true, SourceID: id})
			}
		}
	case Download:
		def, spd := 0, 0
		for _, o := range s.Opponents(id) {
			if oc := s.Get(o); !oc.Fainted() {
				def += oc.ModifiedStat(dex.Def)
				spd += oc.ModifiedStat(dex.SpD)
			}
		}
		if def < spd {
			s.ApplyStatChange(id, Boosts{dex.Atk: 1}, self)
		} else {
			s.ApplyStatChange(id, Boosts{dex.SpA: 1}, self)
		}
	case IntrepidSword, DauntlessShield:
		if c.AbilityOn {
			return
		}
		c.AbilityOn = true
		if c.Ability == IntrepidSword {
			s.ApplyStatChange(id, Boosts{dex.Atk: 1}, self)
		} else {
			s.ApplyStatChange(id, Boosts{dex.Def: 1}, self)
		}
	case Costar:
		for _, a := range s.Allies(id) {
			if ac := s.Get(a); !ac.Fainted() && !ac.Boosts.IsZero() {
				c.Boosts = ac.Boosts
				s.Flag(id, "%s copied %s's stat changes", c.Role, ac.Role)
				break
			}
		}
	case ScreenCleaner:
		for i := range s.Sides {
			s.Sides[i].Reflect = false
			s.Sides[i].LightScreen = false
			s.Sides[i].AuroraVeil = false
		}
		s.Flag(id, "%s's Screen Cleaner removed all screens", c.Role)
	case CuriousMedicine:
		for _, a := range s.Allies(id) {
			s.Get(a).Boosts = Boosts{}
		}
	case SupremeOverlord:
		c.AbilityOn = c.AlliesFainted > 0
	case SlowStart:
		c.AbilityOn = true
	}
	s.updateParadox(id)
}

// intimidate lowers target's Attack by one stage for src. Inner Focus,
// Oblivious, Own Tempo, and Scrappy are immune; Guard Dog raises Attack
// instead; Rattled also raises Speed.
func (s *State) intimidate(src, target int) {
	t := s.Get(target)
	if t.Fainted() {
		return
	}
	switch {
	case t.HasAbility(InnerFocus), t.HasAbility(Oblivious), t.HasAbility(OwnTempo), t.HasAbility(Scrappy):
		s.Flag(target, "%s is unaffected by Intimidate", t.Role)
		return
	case t.HasAbility(GuardDog):
		s.ApplyStatChange(target, Boosts{dex.Atk: 1}, StatChange{Copyable: true, SourceID: target})
		return
	}
	s.ApplyStatChange(target, Boosts{dex.Atk: -1}, StatChange{Copyable: true, SourceID: src})
	if t.HasAbility(Rattled) {
		s.ApplyStatChange(target, Boosts{dex.Spe: 1}, StatChange{Copyable: true, SourceID: target})
	}
}

// Faint finalizes slot id at 0 HP. Its scoped flags and standing field
// effect are released, Receiver and Power of Alchemy allies take a copyable
// ability, Soul-Heart holders gain Special Attack, allies count the faint,
// and the combatant is reset to its rest state.
//
// Postcondition: HP == 0; Boosts are zero; Status is none; the original
// species, ability, and moves are restored; TimesFainted is incremented once.
func (s *State) Faint(id int) {
	c := s.Get(id)
	c.Scoped = Scoped{}
	s.RemoveAbilityFieldEffect(id)
	s.Flag(id, "%s fainted!", c.Role)

	lost := c.Ability
	if lost.Copyable() && !c.AbilityNullified {
		for _, a := range s.Allies(id) {
			ac := s.Get(a)
			if !ac.Fainted() && (ac.HasAbility(Receiver) || ac.HasAbility(PowerOfAlchemy)) {
				s.ChangeAbility(a, lost)
			}
		}
	}
	for _, o := range s.Others(id) {
		if oc := s.Get(o); !oc.Fainted() && oc.HasAbility(SoulHeart) {
			s.ApplyStatChange(o, Boosts{dex.SpA: 1}, StatChange{Copyable: true, SourceID: o})
		}
	}
	for _, a := range s.Allies(id) {
		ac := s.Get(a)
		ac.AlliesFainted++
		if ac.HasAbility(SupremeOverlord) {
			ac.AbilityOn = true
		}
	}
	s.resetToRest(id)
}

func (s *State) resetToRest(id int) {
	c := s.Get(id)
	c.HP = 0
	c.Species = c.OriginalSpecies
	c.Ability = c.OriginalAbility
	c.AbilityOn = false
	c.AbilityNullified = false
	c.gasSuppressed = false
	c.BoostedStat = dex.NoStat
	c.UsedBoosterEnergy = false
	c.Moves = slices.Clone(c.OriginalMoves)
	c.Boosts = Boosts{}
	c.Status = StatusNone
	c.SleepTurns = 0
	c.ToxicCounter = 0
	c.Volatiles.Clear()
	c.SubstituteHP = 0
	c.CritStage = 0
	c.Micle = false
	c.SyrupBombDrops = 0
	c.Scoped = Scoped{}
	c.TimesFainted++
}
