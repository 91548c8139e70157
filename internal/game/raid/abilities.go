package raid

import "github.com/cory-johannsen/raidcalc/internal/game/dex"

// AddAbilityFieldEffect counts the standing field effect of slot id's
// ability into the field arena: weather, terrain, Cloud Nine, ruin debuffs,
// ally-support counters, and Neutralizing Gas. Adding twice without a
// removal is a no-op.
func (s *State) AddAbilityFieldEffect(id int) {
	c := s.Get(id)
	if c.fieldEffectOn || c.Fainted() || c.AbilityNullified {
		return
	}
	c.fieldEffectOn = true
	t := c.Ability.trait()
	if t.weather != WeatherNone {
		s.ApplyWeather(id, t.weather, OriginAura)
	}
	if t.terrain != TerrainNone {
		s.ApplyTerrain(id, t.terrain, OriginAura)
	}
	side := s.SideOf(id)
	switch t.aura {
	case auraCloudNine:
		if !s.Field.CloudNine {
			s.Field.CloudNine = true
			s.Flag(id, "%s's %s suppressed the weather", c.Role, c.Ability)
			s.weatherChanged()
		}
	case auraSwordOfRuin:
		s.Field.SwordOfRuin = true
	case auraBeadsOfRuin:
		s.Field.BeadsOfRuin = true
	case auraTabletsOfRuin:
		s.Field.TabletsOfRuin = true
	case auraVesselOfRuin:
		s.Field.VesselOfRuin = true
	case auraFriendGuard:
		side.FriendGuards++
	case auraPowerSpot:
		side.PowerSpots++
	case auraSteelySpirit:
		side.SteelySpirits++
	case auraBattery:
		side.Batteries++
	case auraNeutralizingGas:
		if !s.Field.NeutralizingGas {
			s.Field.NeutralizingGas = true
			s.Flag(id, "Neutralizing gas filled the area")
			for _, o := range s.Others(id) {
				if s.Get(o).Ability != NeutralizingGas {
					s.suppressByGas(o)
				}
			}
		}
	}
	s.updateParadox(id)
}

// RemoveAbilityFieldEffect exactly undoes AddAbilityFieldEffect. A shared
// flag or ability-set weather or terrain clears only when no other
// combatant still provides it. Removing an uncounted effect is a no-op.
func (s *State) RemoveAbilityFieldEffect(id int) {
	c := s.Get(id)
	if !c.fieldEffectOn {
		return
	}
	c.fieldEffectOn = false
	t := c.Ability.trait()
	if t.weather != WeatherNone && s.Field.Weather == t.weather && s.Field.WeatherOrigin == OriginAura &&
		!s.otherProvides(id, func(o abilityTrait) bool { return o.weather == t.weather }) {
		s.ApplyWeather(id, WeatherNone, OriginNone)
	}
	if t.terrain != TerrainNone && s.Field.Terrain == t.terrain && s.Field.TerrainOrigin == OriginAura &&
		!s.otherProvides(id, func(o abilityTrait) bool { return o.terrain == t.terrain }) {
		s.ApplyTerrain(id, TerrainNone, OriginNone)
	}
	still := s.otherProvides(id, func(o abilityTrait) bool { return o.aura == t.aura })
	side := s.SideOf(id)
	switch t.aura {
	case auraCloudNine:
		if !still {
			s.Field.CloudNine = false
			s.weatherChanged()
		}
	case auraSwordOfRuin:
		s.Field.SwordOfRuin = still
	case auraBeadsOfRuin:
		s.Field.BeadsOfRuin = still
	case auraTabletsOfRuin:
		s.Field.TabletsOfRuin = still
	case auraVesselOfRuin:
		s.Field.VesselOfRuin = still
	case auraFriendGuard:
		side.FriendGuards--
	case auraPowerSpot:
		side.PowerSpots--
	case auraSteelySpirit:
		side.SteelySpirits--
	case auraBattery:
		side.Batteries--
	case auraNeutralizingGas:
		if !still {
			s.Field.NeutralizingGas = false
			s.Flag(id, "The neutralizing gas dissipated")
			for _, o := range s.Others(id) {
				s.restoreFromGas(o)
			}
		}
	}
	if c.Ability == Protosynthesis || c.Ability == QuarkDrive {
		c.AbilityOn = false
		c.BoostedStat = dex.NoStat
	}
}

// otherProvides reports whether a combatant other than id currently counts
// a field effect matching pred.
func (s *State) otherProvides(id int, pred func(abilityTrait) bool) bool {
	for i := range s.Combatants {
		o := s.Get(i)
		if i != id && o.fieldEffectOn && pred(o.Ability.trait()) {
			return true
		}
	}
	return false
}

func (s *State) suppressByGas(id int) {
	c := s.Get(id)
	if c.AbilityNullified {
		return
	}
	s.RemoveAbilityFieldEffect(id)
	c.AbilityNullified = true
	c.gasSuppressed = true
}

func (s *State) restoreFromGas(id int) {
	c := s.Get(id)
	if !c.gasSuppressed {
		return
	}
	c.gasSuppressed = false
	c.AbilityNullified = false
	s.AddAbilityFieldEffect(id)
}

// ChangeAbility replaces slot id's ability. The old ability's field effect
// is removed first; the new one is added and its entry effect runs as it
// would on switch-in.
func (s *State) ChangeAbility(id int, a Ability) {
	c := s.Get(id)
	s.RemoveAbilityFieldEffect(id)
	c.Ability = a
	c.AbilityOn = false
	c.BoostedStat = dex.NoStat
	c.AbilityNullified = false
	c.gasSuppressed = false
	s.Flag(id, "%s's ability became %s", c.Role, a)
	if s.Field.NeutralizingGas && a != NeutralizingGas {
		c.AbilityNullified = true
		c.gasSuppressed = true
		return
	}
	s.AddAbilityFieldEffect(id)
	s.activateEntry(id, false)
}

// NullifyAbility suppresses slot id's ability until it faints.
//
// Postcondition: AbilityNullified is true and its field effect is removed.
func (s *State) NullifyAbility(id int) {
	c := s.Get(id)
	s.RemoveAbilityFieldEffect(id)
	c.AbilityNullified = true
	c.gasSuppressed = false
	c.AbilityOn = false
	c.BoostedStat = dex.NoStat
	s.Flag(id, "%s's ability was suppressed", c.Role)
}

// ApplyWeather sets the weather and runs weather-dependent triggers. It
// reports whether the weather changed.
func (s *State) ApplyWeather(setter int, w Weather, origin Origin) bool {
	if s.Field.Weather == w {
		if w != WeatherNone && origin == OriginAura {
			s.Field.WeatherOrigin = origin
		}
		return false
	}
	s.Field.Weather = w
	s.Field.WeatherOrigin = origin
	if setter >= 0 {
		if w == WeatherNone {
			s.Flag(setter, "The weather cleared")
		} else {
			s.Flag(setter, "The weather became %s", w)
		}
	}
	s.weatherChanged()
	return true
}

// ApplyTerrain sets the terrain and runs terrain-dependent triggers. It
// reports whether the terrain changed.
func (s *State) ApplyTerrain(setter int, t Terrain, origin Origin) bool {
	if s.Field.Terrain == t {
		if t != TerrainNone && origin == OriginAura {
			s.Field.TerrainOrigin = origin
		}
		return false
	}
	s.Field.Terrain = t
	s.Field.TerrainOrigin = origin
	if setter >= 0 {
		if t == TerrainNone {
			s.Flag(setter, "The terrain cleared")
		} else {
			s.Flag(setter, "The terrain became %s", t)
		}
	}
	for i := range s.Combatants {
		s.updateParadox(i)
		s.checkSeed(i)
	}
	return true
}

func (s *State) weatherChanged() {
	w := s.Field.EffectiveWeather()
	for i := range s.Combatants {
		c := s.Get(i)
		s.updateParadox(i)
		if w == Snow && c.HasAbility(IceFace) && c.AbilityOn && !c.Fainted() {
			c.AbilityOn = false
			s.Flag(i, "%s's Ice Face was restored", c.Role)
		}
	}
}

// updateParadox activates or deactivates Protosynthesis and Quark Drive.
// Sun or Electric Terrain activates them; otherwise a held Booster Energy is
// consumed to keep them active. An energy-fueled activation persists until
// the ability is lost.
func (s *State) updateParadox(id int) {
	c := s.Get(id)
	proto, quark := c.HasAbility(Protosynthesis), c.HasAbility(QuarkDrive)
	if (!proto && !quark) || c.Fainted() {
		return
	}
	if c.AbilityOn && c.UsedBoosterEnergy {
		return
	}
	fieldOn := proto && s.Field.EffectiveWeather() == Sun || quark && s.Field.Terrain == ElectricTerrain
	switch {
	case fieldOn:
		if !c.AbilityOn {
			c.AbilityOn = true
			c.BoostedStat = paradoxStat(c)
			s.Flag(id, "%s's %s boosted its %s", c.Role, c.Ability, c.BoostedStat)
		}
	case c.Item == BoosterEnergy && !s.Field.MagicRoom:
		if !c.AbilityOn || c.BoostedStat == dex.NoStat {
			c.BoostedStat = paradoxStat(c)
		}
		c.AbilityOn = true
		c.UsedBoosterEnergy = true
		s.Flag(id, "%s's %s boosted its %s", c.Role, c.Ability, c.BoostedStat)
		s.ConsumeItem(id, BoosterEnergy, true, false)
	default:
		c.AbilityOn = false
		c.BoostedStat = dex.NoStat
	}
}

// paradoxStat returns the highest boosted stat, preferring earlier stats
// on ties in the order Atk, Def, SpA, SpD, Spe.
func paradoxStat(c *Combatant) dex.Stat {
	best := dex.Atk
	for st := dex.Def; st <= dex.Spe; st++ {
		if c.ModifiedStat(st) > c.ModifiedStat(best) {
			best = st
		}
	}
	return best
}
