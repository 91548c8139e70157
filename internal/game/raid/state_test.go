package raid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

func TestClone_IsIndependent(t *testing.T) {
	s := newState(nil)
	s.ApplyDamage(1, 20, raid.Hit{AttackerID: 0, Hits: 1, Rolls: dice.Rolls{20}, Move: dex.Move{Power: 40}})
	before := s.Clone()

	c := s.Clone()
	c.Get(1).Moves[0] = "Splash"
	c.Get(1).Rolls[99] = 1
	c.Get(1).Volatiles.Apply(condition.Taunt, 0, "")
	c.Get(1).Boosts[dex.Atk] = 2
	c.Field.TrickRoom = true
	c.Sides[raid.RaiderSide].Reflect = true
	c.Flags[1] = append(c.Flags[1], "extra")

	assert.Equal(t, before, s)
}

func TestClone_SameInputsSameResult(t *testing.T) {
	abilities := []raid.Ability{
		raid.AbilityNone, raid.Drought, raid.Disguise, raid.Sturdy, raid.Symbiosis,
		raid.FriendGuard, raid.NeutralizingGas, raid.Receiver, raid.Defiant,
	}
	items := []raid.Item{raid.ItemNone, raid.SitrusBerry, raid.FocusSash, raid.WhiteHerb, raid.Leftovers}
	rapid.Check(t, func(rt *rapid.T) {
		overrides := map[int]spec{}
		for i := 0; i < raid.NumCombatants; i++ {
			overrides[i] = spec{
				ability: rapid.SampledFrom(abilities).Draw(rt, "ability"),
				item:    rapid.SampledFrom(items).Draw(rt, "item"),
				spe:     rapid.IntRange(50, 150).Draw(rt, "spe"),
			}
		}
		a := newState(overrides)
		enterAll(a)
		b := a.Clone()
		steps := rapid.IntRange(1, 12).Draw(rt, "steps")
		for range steps {
			id := rapid.IntRange(0, raid.NumCombatants-1).Draw(rt, "id")
			amount := rapid.IntRange(0, 400).Draw(rt, "amount")
			src := rapid.IntRange(0, raid.NumCombatants-1).Draw(rt, "src")
			hit := attack(src, dex.TypeNormal, dex.Physical)
			a.ApplyDamage(id, amount, hit)
			b.ApplyDamage(id, amount, hit)
		}
		assert.Equal(rt, a, b)
	})
}

func TestFaster_TrickRoom(t *testing.T) {
	s := newState(map[int]spec{1: {spe: 120}, 2: {spe: 100}, 3: {spe: 100}})
	assert.True(t, s.Faster(1, 2))
	assert.False(t, s.Faster(2, 3))
	assert.False(t, s.Faster(3, 2))
	s.Field.TrickRoom = true
	assert.False(t, s.Faster(1, 2))
	assert.True(t, s.Faster(2, 1))
}

func TestTakeFlags_Drains(t *testing.T) {
	s := newState(map[int]spec{1: {ability: raid.Drought}})
	s.EnterBattle(1)
	flags := s.TakeFlags()
	assert.NotEmpty(t, flags[1])
	assert.Equal(t, [raid.NumCombatants][]string{}, s.Flags)
}

func TestSides(t *testing.T) {
	assert.Equal(t, raid.BossSide, raid.SideIndex(0))
	for id := 1; id < raid.NumCombatants; id++ {
		assert.Equal(t, raid.RaiderSide, raid.SideIndex(id))
	}
	s := newState(nil)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Opponents(0))
	assert.Equal(t, []int{0}, s.Opponents(2))
	assert.Equal(t, []int{1, 3, 4}, s.Allies(2))
	assert.Empty(t, s.Allies(0))
}
