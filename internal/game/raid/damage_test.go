package raid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

func TestApplyDamage_DisguiseSurvivesOnceThenFaints(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Disguise}})
	c := s.Get(1)

	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 310-310/8, c.HP)
	assert.True(t, c.AbilityOn, "disguise must be marked busted")

	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 0, c.HP)
	assert.False(t, c.AbilityOn)
	assert.Equal(t, raid.Disguise, c.Ability)
	assert.Equal(t, 1, c.TimesFainted)
}

func TestApplyDamage_IndirectDoesNotBustDisguise(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Disguise}})
	s.ApplyDamage(1, 50, raid.Indirect)
	assert.Equal(t, 260, s.Get(1).HP)
	assert.False(t, s.Get(1).AbilityOn)
}

func TestApplyDamage_MoldBreakerIgnoresDisguise(t *testing.T) {
	s := newState(map[int]spec{0: {ability: raid.MoldBreaker}, 1: {ability: raid.Disguise}})
	s.ApplyDamage(1, 100, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 210, s.Get(1).HP)
	assert.False(t, s.Get(1).AbilityOn)
}

func TestApplyDamage_SturdyOnlyFromFullHP(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Sturdy}})
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 1, s.Get(1).HP)
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 0, s.Get(1).HP)
	assert.Equal(t, 1, s.Get(1).TimesFainted)
}

func TestApplyDamage_FocusSashConsumed(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.FocusSash}})
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 1, s.Get(1).HP)
	assert.Equal(t, raid.ItemNone, s.Get(1).Item)
}

func TestApplyDamage_EndureSurvivesThisActionOnly(t *testing.T) {
	s := newState(nil)
	s.Get(1).Scoped.Endure = true
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 1, s.Get(1).HP)
	s.Get(1).Scoped.Endure = false
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 0, s.Get(1).HP)
}

func TestApplyDamage_SitrusAtHalf(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.SitrusBerry}})
	s.ApplyDamage(1, 100, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.SitrusBerry, s.Get(1).Item, "above half HP keeps the berry")
	s.ApplyDamage(1, 60, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 150+77, s.Get(1).HP)
	assert.Equal(t, raid.ItemNone, s.Get(1).Item)
}

func TestApplyDamage_RipenDoublesSitrus(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.SitrusBerry, ability: raid.Ripen}})
	s.ApplyDamage(1, 160, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 150+2*77, s.Get(1).HP)
}

func TestApplyDamage_GluttonyRaisesPinchThreshold(t *testing.T) {
	plain := newState(map[int]spec{1: {item: raid.FigyBerry}})
	plain.ApplyDamage(1, 160, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.FigyBerry, plain.Get(1).Item)

	glutton := newState(map[int]spec{1: {item: raid.FigyBerry, ability: raid.Gluttony}})
	glutton.ApplyDamage(1, 160, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.ItemNone, glutton.Get(1).Item)
	assert.Equal(t, 150+103, glutton.Get(1).HP)
}

func TestApplyDamage_UnnerveSuppressesBerries(t *testing.T) {
	s := newState(map[int]spec{0: {ability: raid.Unnerve}, 1: {item: raid.SitrusBerry}})
	s.ApplyDamage(1, 200, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.SitrusBerry, s.Get(1).Item)
	assert.Equal(t, 110, s.Get(1).HP)
}

func TestApplyDamage_ResistBerryOnlySuperEffective(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.OccaBerry}, 2: {item: raid.OccaBerry}, 3: {item: raid.ChilanBerry}})
	neutral := attack(0, dex.TypeFire, dex.Special)
	s.ApplyDamage(1, 10, neutral)
	assert.Equal(t, raid.OccaBerry, s.Get(1).Item)

	super := attack(0, dex.TypeFire, dex.Special)
	super.Effectiveness = 2
	s.ApplyDamage(2, 10, super)
	assert.Equal(t, raid.ItemNone, s.Get(2).Item)

	s.ApplyDamage(3, 10, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.ItemNone, s.Get(3).Item)
}

func TestApplyDamage_WeaknessPolicy(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.WeaknessPolicy}})
	hit := attack(0, dex.TypeFighting, dex.Physical)
	hit.Effectiveness = 2
	s.ApplyDamage(1, 50, hit)
	c := s.Get(1)
	assert.Equal(t, 2, c.Boosts[dex.Atk])
	assert.Equal(t, 2, c.Boosts[dex.SpA])
	assert.Equal(t, raid.ItemNone, c.Item)
}

func TestApplyDamage_SurvivalBoosts(t *testing.T) {
	tests := []struct {
		name    string
		ability raid.Ability
		hit     raid.Hit
		want    raid.Boosts
	}{
		{"justified", raid.Justified, attack(0, dex.TypeDark, dex.Physical), raid.Boosts{dex.Atk: 1}},
		{"weak armor", raid.WeakArmor, attack(0, dex.TypeNormal, dex.Physical), raid.Boosts{dex.Def: -1, dex.Spe: 2}},
		{"weak armor ignores special", raid.WeakArmor, attack(0, dex.TypeNormal, dex.Special), raid.Boosts{}},
		{"stamina", raid.Stamina, attack(0, dex.TypeNormal, dex.Special), raid.Boosts{dex.Def: 1}},
		{"steam engine", raid.SteamEngine, attack(0, dex.TypeWater, dex.Special), raid.Boosts{dex.Spe: 6}},
		{"water compaction", raid.WaterCompaction, attack(0, dex.TypeWater, dex.Special), raid.Boosts{dex.Def: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(map[int]spec{1: {ability: tc.ability}})
			s.ApplyDamage(1, 30, tc.hit)
			assert.Equal(t, tc.want, s.Get(1).Boosts)
		})
	}
}

func TestApplyDamage_AngerPointOnCrit(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.AngerPoint}})
	hit := attack(0, dex.TypeNormal, dex.Physical)
	hit.Crit = true
	s.ApplyDamage(1, 30, hit)
	assert.Equal(t, raid.MaxStage, s.Get(1).Boosts[dex.Atk])
}

func TestApplyDamage_ElectromorphosisCharges(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Electromorphosis}})
	s.ApplyDamage(1, 30, attack(0, dex.TypeNormal, dex.Physical))
	assert.True(t, s.Get(1).Scoped.Charged)
}

func TestApplyDamage_SeedSowerEvenWhenFainting(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.SeedSower}})
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.GrassyTerrain, s.Field.Terrain)
	assert.True(t, s.Get(1).Fainted())
}

func TestApplyDamage_BerserkCrossingHalf(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Berserk}})
	s.ApplyDamage(1, 100, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 0, s.Get(1).Boosts[dex.SpA])
	s.ApplyDamage(1, 100, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 1, s.Get(1).Boosts[dex.SpA])
	s.ApplyDamage(1, 10, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 1, s.Get(1).Boosts[dex.SpA])
}

func TestApplyDamage_AirBalloonPops(t *testing.T) {
	s := newState(map[int]spec{1: {item: raid.AirBalloon}})
	require.False(t, s.Get(1).IsGrounded(&s.Field))
	s.ApplyDamage(1, 10, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, raid.ItemNone, s.Get(1).Item)
}

func TestApplyDamage_SubstituteAbsorbs(t *testing.T) {
	s := newState(nil)
	s.Get(1).SubstituteHP = 77
	s.ApplyDamage(1, 50, attack(0, dex.TypeNormal, dex.Physical))
	assert.Equal(t, 310, s.Get(1).HP)
	assert.Equal(t, 27, s.Get(1).SubstituteHP)

	sound := attack(0, dex.TypeNormal, dex.Special)
	sound.Move.Flags = []string{"sound"}
	s.ApplyDamage(1, 50, sound)
	assert.Equal(t, 260, s.Get(1).HP)
}

func TestApplyDamage_RecordsRollsWhenFainted(t *testing.T) {
	s := newState(nil)
	s.Get(1).HP = 0
	hit := attack(0, dex.TypeNormal, dex.Physical)
	hit.Rolls = dice.Rolls{10, 20}
	s.ApplyDamage(1, 15, hit)
	assert.InDelta(t, 0.5, s.Get(1).Rolls[10], 1e-9)
	assert.Equal(t, 0, s.Get(1).TimesFainted, "an already fainted target is not fainted again")
}

func TestApplyDamage_HitsTaken(t *testing.T) {
	s := newState(nil)
	s.ApplyDamage(1, 10, attack(0, dex.TypeNormal, dex.Physical))
	s.ApplyDamage(1, 10, raid.Indirect)
	assert.Equal(t, 1, s.Get(1).HitsTaken)
}
