package raid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

func TestEnterBattle_Intimidate(t *testing.T) {
	s := newState(map[int]spec{
		0: {ability: raid.Intimidate},
		2: {ability: raid.GuardDog},
		3: {ability: raid.InnerFocus},
		4: {ability: raid.Rattled},
	})
	s.EnterBattle(0)
	assert.Equal(t, -1, s.Get(1).Boosts[dex.Atk])
	assert.Equal(t, 1, s.Get(2).Boosts[dex.Atk])
	assert.Equal(t, 0, s.Get(3).Boosts[dex.Atk])
	assert.Equal(t, -1, s.Get(4).Boosts[dex.Atk])
	assert.Equal(t, 1, s.Get(4).Boosts[dex.Spe])
}

func TestSwitchIn_IntimidateOnlyOnOpening(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Intimidate}})
	s.Get(1).HP = 0
	s.SwitchIn(1)
	assert.Equal(t, 0, s.Get(0).Boosts[dex.Atk])
}

func TestEnterBattle_Download(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Download}})
	s.Get(0).Boosts[dex.SpD] = -1
	s.EnterBattle(1)
	assert.Equal(t, 1, s.Get(1).Boosts[dex.SpA])
	assert.Equal(t, 0, s.Get(1).Boosts[dex.Atk])
}

func TestEnterBattle_IntrepidSwordOnce(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.IntrepidSword}})
	s.EnterBattle(1)
	s.ChangeAbility(1, raid.IntrepidSword)
	assert.Equal(t, 2, s.Get(1).Boosts[dex.Atk], "changing the ability re-arms it")

	s2 := newState(map[int]spec{1: {ability: raid.IntrepidSword}})
	s2.EnterBattle(1)
	s2.AddAbilityFieldEffect(1)
	assert.Equal(t, 1, s2.Get(1).Boosts[dex.Atk])
}

func TestFaint_ResetsToRest(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Drought}})
	enterAll(s)
	c := s.Get(1)
	c.Boosts[dex.Atk] = 3
	c.Status = raid.Burn
	c.Moves[0] = "Splash"
	c.Volatiles.Apply(condition.Taunt, 0, "")
	c.SubstituteHP = 20
	s.ChangeAbility(1, raid.Intimidate)

	s.ApplyDamage(1, 10_000, raid.Indirect)

	assert.Equal(t, 0, c.HP)
	assert.Equal(t, raid.Boosts{}, c.Boosts)
	assert.Equal(t, raid.StatusNone, c.Status)
	assert.Equal(t, raid.Drought, c.Ability)
	assert.Equal(t, []string{"Tackle"}, c.Moves)
	assert.Equal(t, 0, c.Volatiles.Len())
	assert.Equal(t, 0, c.SubstituteHP)
	assert.Equal(t, 1, c.TimesFainted)
	assert.Equal(t, raid.WeatherNone, s.Field.Weather, "the fainted provider's weather clears")
}

func TestSwitchIn_RestoresHPAndAbility(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Drought}})
	enterAll(s)
	s.ApplyDamage(1, 10_000, attack(0, dex.TypeNormal, dex.Physical))
	require.True(t, s.Get(1).Fainted())

	s.SwitchIn(1)
	assert.Equal(t, 310, s.Get(1).HP)
	assert.Empty(t, s.Get(1).Rolls)
	assert.Equal(t, raid.Sun, s.Field.Weather)
}

func TestFaint_ReceiverCopiesCopyableAbility(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Drought}, 2: {ability: raid.Receiver}})
	enterAll(s)
	s.ApplyDamage(1, 10_000, raid.Indirect)
	assert.Equal(t, raid.Drought, s.Get(2).Ability)
	assert.Equal(t, raid.Sun, s.Field.Weather)

	s2 := newState(map[int]spec{1: {ability: raid.Disguise}, 2: {ability: raid.Receiver}})
	enterAll(s2)
	s2.ApplyDamage(1, 10_000, raid.Indirect)
	assert.Equal(t, raid.Receiver, s2.Get(2).Ability)
}

func TestFaint_SoulHeartAndSupremeOverlord(t *testing.T) {
	s := newState(map[int]spec{0: {ability: raid.SoulHeart}, 2: {ability: raid.SupremeOverlord}})
	enterAll(s)
	s.ApplyDamage(1, 10_000, raid.Indirect)
	assert.Equal(t, 1, s.Get(0).Boosts[dex.SpA])
	assert.Equal(t, 1, s.Get(2).AlliesFainted)
	assert.True(t, s.Get(2).AbilityOn)
	assert.Equal(t, 1, s.Get(3).AlliesFainted)
}
