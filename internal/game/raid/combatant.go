package raid

import (
	"slices"

	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
)

// Build describes one combatant before battle.
type Build struct {
	Role     string
	Species  dex.Species
	Level    int
	Nature   dex.Nature
	IVs      dex.StatTable
	EVs      dex.StatTable
	Ability  Ability
	Item     Item
	Moves    []string
	TeraType dex.Type
	// BossMultiplier scales max HP, in percent. Zero means 100.
	BossMultiplier int
}

// Combatant is one of the five participants.
type Combatant struct {
	ID   int
	Role string

	Species         dex.Species
	OriginalSpecies dex.Species
	Level           int
	Nature          dex.Nature
	Stats           dex.StatTable

	HP           int
	Status       Status
	SleepTurns   int
	ToxicCounter int
	Volatiles    condition.Set
	Boosts       Boosts
	SubstituteHP int

	Item             Item
	Ability          Ability
	OriginalAbility  Ability
	AbilityOn        bool
	AbilityNullified bool
	// BoostedStat is the stat raised by an active Protosynthesis or Quark
	// Drive, or dex.NoStat.
	BoostedStat       dex.Stat
	UsedBoosterEnergy bool

	TeraType dex.Type
	IsTera   bool

	Moves         []string
	OriginalMoves []string

	Scoped Scoped

	// CritStage is raised by Lansat Berry; Micle arms an accuracy boost.
	CritStage      int
	Micle          bool
	SyrupBombDrops int

	HitsTaken     int
	TimesFainted  int
	AlliesFainted int

	LastMove   string
	LastTarget int

	// Rolls is the probability-weighted accumulated damage history.
	Rolls dice.Distribution

	// fieldEffectOn is set while the ability's standing field effect is
	// counted in the field arena.
	fieldEffectOn bool
	// gasSuppressed marks a nullification owed to Neutralizing Gas.
	gasSuppressed bool
}

// NewCombatant builds a combatant at full HP from b.
//
// Precondition: id in [0, NumCombatants); b.Level in [1, 100].
// Postcondition: HP == MaxHP(); Boosts are zero.
func NewCombatant(id int, b Build) Combatant {
	if id < 0 || id >= NumCombatants {
		panic("raid: NewCombatant precondition violated: id out of range")
	}
	if b.Level < 1 || b.Level > 100 {
		panic("raid: NewCombatant precondition violated: level must be in [1, 100]")
	}
	base := b.Species.BaseStats.Table()
	var stats dex.StatTable
	for st := dex.HP; st <= dex.Spe; st++ {
		stats[st] = dex.CalcStat(st, base[st], b.IVs[st], b.EVs[st], b.Level, b.Nature)
	}
	mult := b.BossMultiplier
	if mult <= 0 {
		mult = 100
	}
	stats[dex.HP] = stats[dex.HP] * mult / 100
	c := Combatant{
		ID:              id,
		Role:            b.Role,
		Species:         b.Species,
		OriginalSpecies: b.Species,
		Level:           b.Level,
		Nature:          b.Nature,
		Stats:           stats,
		HP:              stats[dex.HP],
		Item:            b.Item,
		Ability:         b.Ability,
		OriginalAbility: b.Ability,
		BoostedStat:     dex.NoStat,
		TeraType:        b.TeraType,
		Moves:           slices.Clone(b.Moves),
		OriginalMoves:   slices.Clone(b.Moves),
		LastTarget:      -1,
		Rolls:           dice.Distribution{},
	}
	return c
}

// clone returns a deep copy sharing no slices or maps with c.
func (c *Combatant) clone() Combatant {
	out := *c
	out.Species.Types = slices.Clone(c.Species.Types)
	out.Species.Abilities = slices.Clone(c.Species.Abilities)
	out.OriginalSpecies.Types = slices.Clone(c.OriginalSpecies.Types)
	out.OriginalSpecies.Abilities = slices.Clone(c.OriginalSpecies.Abilities)
	out.Moves = slices.Clone(c.Moves)
	out.OriginalMoves = slices.Clone(c.OriginalMoves)
	out.Rolls = c.Rolls.Clone()
	return out
}

// MaxHP returns the combatant's maximum HP.
func (c *Combatant) MaxHP() int {
	return c.Stats[dex.HP]
}

// IsBoss reports whether the combatant occupies the boss slot.
func (c *Combatant) IsBoss() bool {
	return c.ID == BossID
}

// Fainted reports whether HP is zero.
func (c *Combatant) Fainted() bool {
	return c.HP <= 0
}

// HasAbility reports whether a is the combatant's active, non-nullified ability.
func (c *Combatant) HasAbility(a Ability) bool {
	return c.Ability == a && !c.AbilityNullified
}

// HasType reports whether the combatant currently has type t. A
// terastallized combatant has only its tera type.
func (c *Combatant) HasType(t dex.Type) bool {
	if c.IsTera && c.TeraType != dex.TypeNone {
		return c.TeraType == t
	}
	return slices.Contains(c.Species.Types, t)
}

// Types returns the combatant's current defensive types.
func (c *Combatant) Types() []dex.Type {
	if c.IsTera && c.TeraType != dex.TypeNone {
		return []dex.Type{c.TeraType}
	}
	return c.Species.Types
}

// ModifiedStat returns stat s after its boost stage.
//
// Precondition: s in [Atk, Spe].
func (c *Combatant) ModifiedStat(s dex.Stat) int {
	return ModifiedStat(c.Stats[s], c.Boosts[s])
}

// IsGrounded reports whether ground moves and terrain affect the combatant.
func (c *Combatant) IsGrounded(f *Field) bool {
	if f.Gravity || c.Item == IronBall {
		return true
	}
	return !c.HasType(dex.TypeFlying) && !c.HasAbility(Levitate) && c.Item != AirBalloon
}

// EffectiveSpeed returns the speed used for move order. The order is fixed:
// boost stage, paralysis halving, tailwind, ability multiplier, item
// multiplier. Each multiplier floors independently.
func (c *Combatant) EffectiveSpeed(f *Field, side *Side) int {
	speed := c.ModifiedStat(dex.Spe)
	if c.Status == Paralysis && !c.HasAbility(QuickFeet) {
		speed /= 2
	}
	if side.Tailwind {
		speed *= 2
	}
	weather := f.EffectiveWeather()
	switch {
	case c.HasAbility(Unburden) && c.AbilityOn,
		c.HasAbility(Chlorophyll) && weather == Sun,
		c.HasAbility(SwiftSwim) && weather == Rain,
		c.HasAbility(SandRush) && weather == Sand,
		c.HasAbility(SlushRush) && weather == Snow,
		c.HasAbility(SurgeSurfer) && f.Terrain == ElectricTerrain:
		speed *= 2
	case c.HasAbility(QuickFeet) && c.Status != StatusNone:
		speed = speed * 3 / 2
	case c.HasAbility(SlowStart) && c.AbilityOn:
		speed /= 2
	case (c.HasAbility(Protosynthesis) || c.HasAbility(QuarkDrive)) && c.AbilityOn && c.BoostedStat == dex.Spe:
		speed = speed * 3 / 2
	}
	switch {
	case c.Item == ChoiceScarf && !f.MagicRoom:
		speed = speed * 3 / 2
	case c.Item == IronBall && !f.MagicRoom:
		speed /= 2
	}
	return speed
}

// BoostCoefficient returns the multiplier applied to every requested boost:
// 2 for Simple, -1 for Contrary, otherwise 1.
func (c *Combatant) BoostCoefficient() int {
	switch {
	case c.HasAbility(Simple):
		return 2
	case c.HasAbility(Contrary):
		return -1
	}
	return 1
}

// ApplyRawDamage subtracts amount from HP (a negative amount heals) and
// returns the HP actually lost.
//
// Postcondition: 0 <= HP <= MaxHP(); HP >= 1 when Scoped.Endure was set and
// HP was positive.
func (c *Combatant) ApplyRawDamage(amount int) int {
	before := c.HP
	floor := 0
	if c.Scoped.Endure && c.HP > 0 {
		floor = 1
	}
	c.HP = max(floor, min(c.MaxHP(), c.HP-amount))
	return before - c.HP
}

// ApplyRawBoostDelta applies deltas scaled by BoostCoefficient and returns
// the change actually made after clamping.
//
// Postcondition: every stage is within [-6, 6]; Boosts == old + result.
func (c *Combatant) ApplyRawBoostDelta(deltas Boosts) Boosts {
	coef := c.BoostCoefficient()
	var applied Boosts
	for _, st := range BoostStats {
		if deltas[st] == 0 {
			continue
		}
		next := clampStage(c.Boosts[st] + deltas[st]*coef)
		applied[st] = next - c.Boosts[st]
		c.Boosts[st] = next
	}
	return applied
}

// LoseHeldItem clears the item and arms Unburden.
//
// Postcondition: Item == ItemNone.
func (c *Combatant) LoseHeldItem() {
	had := c.Item != ItemNone
	c.Item = ItemNone
	if had && c.HasAbility(Unburden) {
		c.AbilityOn = true
	}
}
