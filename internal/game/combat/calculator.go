package combat

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Calculation is the outcome of one attacker using one move on one defender.
type Calculation struct {
	// Rolls is the total damage of every strike for each random factor.
	Rolls dice.Rolls
	Hits  int
	Crit  bool
	// Effectiveness is the type multiplier; 0 means the defender is immune.
	Effectiveness float64
	// Absorbed marks an attack a type-absorbing ability takes instead.
	Absorbed bool
	Desc     string
}

// Deals reports whether the calculation has damage to apply.
func (c Calculation) Deals() bool {
	return !c.Absorbed && c.Effectiveness > 0 && len(c.Rolls) > 0
}

// Calculator computes the damage of a single action. Implementations must be
// pure: they read s and never modify it.
type Calculator interface {
	Calculate(s *raid.State, attacker, defender int, m dex.Move, opts Options) Calculation
}

// DefaultCalculator is the built-in damage formula.
type DefaultCalculator struct{}

// modifiers are fixed-point multipliers over 4096.
const (
	modBase     = 4096
	modHalf     = 2048
	modThreeQtr = 3072
	modOneHalf  = 6144
	modDouble   = 8192
	modParadox  = 5325
	modPowerUp  = 5325 // Power Spot, Battery, terrain
	modLifeOrb  = 5324
	modScreens  = 2732
)

// chain applies a 4096-based modifier with round-half-down.
func chain(v, mod int) int {
	x := v * mod
	r := x / modBase
	if x%modBase > modHalf {
		r++
	}
	return r
}

// defenseFromDef lists special moves that target physical Defense.
var defenseFromDef = map[string]bool{"psyshock": true, "psystrike": true, "secretsword": true}

// Calculate implements Calculator.
//
// Precondition: attacker and defender are valid slots.
// Postcondition: len(result.Rolls) is 0 or dice.NumRolls.
func (DefaultCalculator) Calculate(s *raid.State, attacker, defender int, m dex.Move, opts Options) Calculation {
	atk, def := s.Get(attacker), s.Get(defender)
	out := Calculation{
		Hits: hitCount(m, opts),
		Crit: opts.Crit || atk.CritStage >= 3,
	}
	if !m.Damaging() {
		out.Desc = fmt.Sprintf("%s used %s", atk.Role, m.Name)
		return out
	}
	breaker := s.IgnoresAbilities(attacker)
	out.Effectiveness = effectiveness(s, atk, def, m.Type, breaker)
	if attacker != defender && !breaker && def.Ability.Absorbs() != dex.TypeNone &&
		def.Ability.Absorbs() == m.Type && def.HasAbility(def.Ability) {
		out.Absorbed = true
		out.Desc = fmt.Sprintf("%s's %s absorbs %s", def.Role, def.Ability, m.Name)
		return out
	}
	if out.Effectiveness == 0 {
		out.Desc = fmt.Sprintf("%s %s vs. %s: no effect", atk.Role, m.Name, def.Role)
		return out
	}

	atkStat, defStat := dex.Atk, dex.Def
	if m.Category == dex.Special {
		atkStat, defStat = dex.SpA, dex.SpD
	}
	if defenseFromDef[dex.ID(m.Name)] {
		defStat = dex.Def
	}
	a := attackStat(s, atk, def, atkStat, m, out.Crit, breaker)
	d := defenseStat(s, atk, def, defStat, out.Crit, breaker)
	power := basePower(s, atk, m)

	base := (2*atk.Level/5+2)*power*a/max(1, d)/50 + 2
	if spreadMove(atk, m) {
		base = chain(base, modThreeQtr)
	}
	switch w := s.Field.EffectiveWeather(); {
	case w == raid.Sun && m.Type == dex.TypeFire, w == raid.Rain && m.Type == dex.TypeWater:
		base = chain(base, modOneHalf)
	case w == raid.Sun && m.Type == dex.TypeWater, w == raid.Rain && m.Type == dex.TypeFire:
		base = chain(base, modHalf)
	}
	if out.Crit {
		base = chain(base, modOneHalf)
	}

	finalize := finalModifiers(s, atk, def, m, out, breaker)
	per := dice.Spread(base, finalize)
	out.Rolls = per.Scale(out.Hits)
	out.Desc = describe(atk, def, m, out)
	return out
}

func hitCount(m dex.Move, opts Options) int {
	if m.MaxHits <= 1 {
		return 1
	}
	if opts.Hits > 0 {
		return max(m.MinHits, min(m.MaxHits, opts.Hits))
	}
	return m.Hits()
}

func effectiveness(s *raid.State, atk, def *raid.Combatant, t dex.Type, breaker bool) float64 {
	types := def.Types()
	grounded := def.IsGrounded(&s.Field)
	if t == dex.TypeGround && grounded {
		types = slices.DeleteFunc(slices.Clone(types), func(d dex.Type) bool { return d == dex.TypeFlying })
	}
	if (t == dex.TypeNormal || t == dex.TypeFighting) && (atk.HasAbility(raid.Scrappy) || atk.HasAbility(raid.MindsEye)) {
		types = slices.DeleteFunc(slices.Clone(types), func(d dex.Type) bool { return d == dex.TypeGhost })
	}
	eff := dex.Effectiveness(t, types...)
	if t == dex.TypeGround && !grounded {
		levitating := def.HasAbility(raid.Levitate) && !def.HasType(dex.TypeFlying) && def.Item != raid.AirBalloon
		if !(breaker && levitating) {
			eff = 0
		}
	}
	return eff
}

// attackStat returns the attacker's offensive stat after its stage and every
// attack modifier.
func attackStat(s *raid.State, atk, def *raid.Combatant, st dex.Stat, m dex.Move, crit, breaker bool) int {
	src := atk
	if dex.ID(m.Name) == "foulplay" {
		src = def
	}
	stage := src.Boosts[st]
	if def.HasAbility(raid.Unaware) && !breaker || crit && stage < 0 {
		stage = 0
	}
	v := raid.ModifiedStat(src.Stats[st], stage)
	if st == dex.Atk && (atk.HasAbility(raid.HugePower) || atk.HasAbility(raid.PurePower)) {
		v *= 2
	}
	if atk.AbilityOn && atk.BoostedStat == st && (atk.HasAbility(raid.Protosynthesis) || atk.HasAbility(raid.QuarkDrive)) {
		v = chain(v, modParadox)
	}
	if st == dex.Atk && atk.HasAbility(raid.Guts) && atk.Status != raid.StatusNone {
		v = chain(v, modOneHalf)
	}
	if atk.HasAbility(raid.FlashFire) && atk.AbilityOn && m.Type == dex.TypeFire {
		v = chain(v, modOneHalf)
	}
	if !s.Field.MagicRoom && (st == dex.Atk && atk.Item == raid.ChoiceBand || st == dex.SpA && atk.Item == raid.ChoiceSpecs) {
		v = chain(v, modOneHalf)
	}
	if def.HasAbility(raid.ThickFat) && !breaker && (m.Type == dex.TypeFire || m.Type == dex.TypeIce) {
		v = chain(v, modHalf)
	}
	if s.SideOf(atk.ID).AtkCheer > 0 {
		v = chain(v, modOneHalf)
	}
	if st == dex.Atk && s.Field.TabletsOfRuin && !atk.HasAbility(raid.TabletsOfRuin) ||
		st == dex.SpA && s.Field.VesselOfRuin && !atk.HasAbility(raid.VesselOfRuin) {
		v = chain(v, modThreeQtr)
	}
	return max(1, v)
}

// defenseStat returns the defender's stat after its stage and every defense
// modifier. Wonder Room swaps the raw Defense and Special Defense.
func defenseStat(s *raid.State, atk, def *raid.Combatant, st dex.Stat, crit, breaker bool) int {
	raw := def.Stats[st]
	if s.Field.WonderRoom {
		if st == dex.Def {
			raw = def.Stats[dex.SpD]
		} else {
			raw = def.Stats[dex.Def]
		}
	}
	stage := def.Boosts[st]
	if atk.HasAbility(raid.Unaware) || crit && stage > 0 {
		stage = 0
	}
	v := raid.ModifiedStat(raw, stage)
	if def.AbilityOn && def.BoostedStat == st && (def.HasAbility(raid.Protosynthesis) || def.HasAbility(raid.QuarkDrive)) {
		v = chain(v, modParadox)
	}
	w := s.Field.EffectiveWeather()
	if st == dex.Def && w == raid.Snow && def.HasType(dex.TypeIce) || st == dex.SpD && w == raid.Sand && def.HasType(dex.TypeRock) {
		v = chain(v, modOneHalf)
	}
	if s.SideOf(def.ID).DefCheer > 0 {
		v = chain(v, modOneHalf)
	}
	if st == dex.Def && s.Field.SwordOfRuin && !def.HasAbility(raid.SwordOfRuin) ||
		st == dex.SpD && s.Field.BeadsOfRuin && !def.HasAbility(raid.BeadsOfRuin) {
		v = chain(v, modThreeQtr)
	}
	return max(1, v)
}

func basePower(s *raid.State, atk *raid.Combatant, m dex.Move) int {
	p := m.Power
	if atk.Scoped.HelpingHand {
		p = chain(p, modOneHalf)
	}
	if atk.Scoped.Charged && m.Type == dex.TypeElectric {
		p = chain(p, modDouble)
	}
	side := s.SideOf(atk.ID)
	for range side.PowerSpots - selfCount(atk, raid.PowerSpot) {
		p = chain(p, modPowerUp)
	}
	if m.Category == dex.Special {
		for range side.Batteries - selfCount(atk, raid.Battery) {
			p = chain(p, modPowerUp)
		}
	}
	if m.Type == dex.TypeSteel {
		for range side.SteelySpirits {
			p = chain(p, modOneHalf)
		}
	}
	if atk.IsGrounded(&s.Field) {
		switch {
		case s.Field.Terrain == raid.ElectricTerrain && m.Type == dex.TypeElectric,
			s.Field.Terrain == raid.GrassyTerrain && m.Type == dex.TypeGrass,
			s.Field.Terrain == raid.PsychicTerrain && m.Type == dex.TypePsychic:
			p = chain(p, modPowerUp)
		}
	}
	if s.Field.Terrain == raid.MistyTerrain && m.Type == dex.TypeDragon {
		p = chain(p, modHalf)
	}
	return max(1, p)
}

// selfCount is 1 when c itself is one of its side's holders of a.
func selfCount(c *raid.Combatant, a raid.Ability) int {
	if c.HasAbility(a) {
		return 1
	}
	return 0
}

// spreadMove reports whether m hits more than one target.
func spreadMove(atk *raid.Combatant, m dex.Move) bool {
	switch m.Target {
	case dex.TargetAllOther, dex.TargetAllPokemon:
		return true
	case dex.TargetAllOpponents:
		return atk.IsBoss()
	}
	return false
}

// finalModifiers returns the per-roll modifiers applied after the random
// factor, in order: STAB, type effectiveness, burn, screens, Multiscale,
// Friend Guard, resist berry, Life Orb.
func finalModifiers(s *raid.State, atk, def *raid.Combatant, m dex.Move, c Calculation, breaker bool) func(int) int {
	stab := stabModifier(atk, m.Type)
	burned := m.Category == dex.Physical && atk.Status == raid.Burn && !atk.HasAbility(raid.Guts)
	side := s.SideOf(def.ID)
	screened := !c.Crit && !atk.HasAbility(raid.Infiltrator) &&
		(side.AuroraVeil || m.Category == dex.Physical && side.Reflect || m.Category == dex.Special && side.LightScreen)
	multiscale := def.HasAbility(raid.Multiscale) && !breaker && def.HP == def.MaxHP()
	guards := side.FriendGuards - selfCount(def, raid.FriendGuard)
	berry := !s.Field.MagicRoom && !s.BerriesSuppressed(def.ID) && def.Item.ResistType() == m.Type &&
		(c.Effectiveness > 1 || m.Type == dex.TypeNormal && def.Item == raid.ChilanBerry)
	lifeOrb := atk.Item == raid.LifeOrb && !s.Field.MagicRoom
	return func(v int) int {
		v = chain(v, stab)
		v = int(float64(v) * c.Effectiveness)
		if burned {
			v = chain(v, modHalf)
		}
		if screened {
			v = chain(v, modScreens)
		}
		if multiscale {
			v = chain(v, modHalf)
		}
		for range guards {
			v = chain(v, modThreeQtr)
		}
		if berry {
			v = chain(v, modHalf)
		}
		if lifeOrb {
			v = chain(v, modLifeOrb)
		}
		return max(1, v)
	}
}

// stabModifier returns the same-type bonus over 4096. Terastallizing into
// one of the original types raises it to 2x.
func stabModifier(c *raid.Combatant, t dex.Type) int {
	orig := c.OriginalSpecies.HasType(t) || c.Species.HasType(t)
	tera := c.IsTera && c.TeraType == t
	adapt := c.HasAbility(raid.Adaptability)
	switch {
	case orig && tera && adapt:
		return 9216
	case orig && tera, (orig || tera) && adapt:
		return modDouble
	case orig || tera:
		return modOneHalf
	}
	return modBase
}

func describe(atk, def *raid.Combatant, m dex.Move, c Calculation) string {
	lo, hi := c.Rolls[0], c.Rolls[len(c.Rolls)-1]
	maxHP := float64(max(1, def.MaxHP()))
	crit := ""
	if c.Crit {
		crit = " critical hit"
	}
	return fmt.Sprintf("%s %s%s vs. %s: %d-%d (%.1f - %.1f%%)",
		atk.Role, m.Name, crit, def.Role, lo, hi, float64(lo)*100/maxHP, float64(hi)*100/maxHP)
}
