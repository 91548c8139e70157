package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

func TestResolve_RaiderDamagesBoss(t *testing.T) {
	s := newState(nil)
	res := newResolver().Resolve(s, turn(1, "Ember", combat.NoMove), 1)
	require.NotNil(t, res.State)
	assert.True(t, res.RaiderMovesFirst)
	assert.Equal(t, 241, res.State.Get(0).HP)
	assert.Equal(t, 69, res.Raider().TotalDamage(0))
	assert.True(t, res.Boss().Skipped)
	assert.Equal(t, 1, res.Number)
	assert.Equal(t, 1, res.State.LastMover)
}

func TestResolve_DoesNotModifyInput(t *testing.T) {
	s := newState(nil)
	before := s.Clone()
	newResolver().Resolve(s, turn(1, "Tackle", "Tackle"), 1)
	assert.Equal(t, before, s)
}

func TestResolve_Order(t *testing.T) {
	cases := []struct {
		name        string
		raider      fixture
		raiderMove  string
		trickRoom   bool
		raiderFirst bool
	}{
		{name: "faster raider", raider: fixture{spe: 150}, raiderMove: "Tackle", raiderFirst: true},
		{name: "equal speed goes to boss", raider: fixture{}, raiderMove: "Tackle"},
		{name: "trick room", raider: fixture{spe: 150}, raiderMove: "Tackle", trickRoom: true},
		{name: "trick room slower raider", raider: fixture{spe: 50}, raiderMove: "Tackle", trickRoom: true, raiderFirst: true},
		{name: "priority beats speed", raider: fixture{spe: 50}, raiderMove: "Quick Attack", raiderFirst: true},
		{name: "prankster status move", raider: fixture{spe: 50, ability: raid.Prankster}, raiderMove: "Swords Dance", raiderFirst: true},
		{name: "prankster damaging move", raider: fixture{spe: 50, ability: raid.Prankster}, raiderMove: "Tackle"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(map[int]fixture{1: tc.raider})
			s.Field.TrickRoom = tc.trickRoom
			res := newResolver().Resolve(s, turn(1, tc.raiderMove, "Tackle"), 1)
			assert.Equal(t, tc.raiderFirst, res.RaiderMovesFirst)
		})
	}
}

func TestResolve_MostDamaging(t *testing.T) {
	boss := fixture{moves: []string{"Tackle", "Ember", "Swords Dance"}}
	s := newState(map[int]fixture{0: boss})
	res := newResolver().Resolve(s, turn(1, combat.NoMove, combat.MostDamaging), 1)
	assert.Equal(t, "Tackle", res.Boss().Move)
	assert.Equal(t, 310-103, res.State.Get(1).HP)

	s = newState(map[int]fixture{0: boss, 1: {types: []dex.Type{dex.TypeGrass}}})
	res = newResolver().Resolve(s, turn(1, combat.NoMove, combat.MostDamaging), 1)
	assert.Equal(t, "Ember", res.Boss().Move)
}

func TestResolve_MostDamagingWithoutMoves(t *testing.T) {
	s := newState(map[int]fixture{0: {moves: []string{}}})
	r := newResolver()
	assert.Equal(t, combat.NoMove, r.MostDamagingMove(s, 0, 1, combat.Options{}))
}

func TestResolve_FlinchSkipsSecondMover(t *testing.T) {
	s := newState(nil)
	res := newResolver().Resolve(s, turn(1, "Fake Out", "Tackle"), 1)
	require.True(t, res.RaiderMovesFirst)
	assert.True(t, res.Boss().Skipped)
	assert.Equal(t, "flinched", res.Boss().Reason)
	assert.Equal(t, 310, res.State.Get(1).HP)
	assert.False(t, res.State.Get(0).Volatiles.Has(condition.Flinch))
}

func TestResolve_FaintedRaiderSwitchesIn(t *testing.T) {
	s := newState(nil)
	s.Get(1).HP = 0
	res := newResolver().Resolve(s, turn(1, "Ember", combat.NoMove), 1)
	assert.Equal(t, 310, res.State.Get(1).HP)
	assert.Equal(t, 241, res.State.Get(0).HP)
}

func TestResolve_EndOfTurn(t *testing.T) {
	t.Run("burn", func(t *testing.T) {
		s := newState(nil)
		s.Get(1).Status = raid.Burn
		res := newResolver().Resolve(s, turn(1, combat.NoMove, combat.NoMove), 1)
		assert.Equal(t, 291, res.State.Get(1).HP)
	})
	t.Run("toxic escalates", func(t *testing.T) {
		s := newState(nil)
		s.Get(1).Status = raid.Toxic
		r := newResolver()
		res := r.Resolve(s, turn(1, combat.NoMove, combat.NoMove), 1)
		res = r.Resolve(res.State, turn(1, combat.NoMove, combat.NoMove), 1)
		assert.Equal(t, 310-19-38, res.State.Get(1).HP)
		assert.Equal(t, 2, res.State.Get(1).ToxicCounter)
	})
	t.Run("leftovers", func(t *testing.T) {
		s := newState(map[int]fixture{1: {item: raid.Leftovers}})
		s.Get(1).HP = 100
		res := newResolver().Resolve(s, turn(1, combat.NoMove, combat.NoMove), 1)
		assert.Equal(t, 119, res.State.Get(1).HP)
	})
	t.Run("flame orb", func(t *testing.T) {
		s := newState(map[int]fixture{1: {item: raid.FlameOrb}})
		s.Sides[raid.RaiderSide].Safeguard = true
		res := newResolver().Resolve(s, turn(1, combat.NoMove, combat.NoMove), 1)
		assert.Equal(t, raid.Burn, res.State.Get(1).Status)
		assert.Equal(t, raid.FlameOrb, res.State.Get(1).Item)
	})
	t.Run("magic guard", func(t *testing.T) {
		s := newState(map[int]fixture{1: {ability: raid.MagicGuard}})
		s.Get(1).Status = raid.Poison
		res := newResolver().Resolve(s, turn(1, combat.NoMove, combat.NoMove), 1)
		assert.Equal(t, 310, res.State.Get(1).HP)
	})
}

func TestResolve_Protect(t *testing.T) {
	s := newState(nil)
	res := newResolver().Resolve(s, turn(1, "Protect", "Tackle"), 1)
	require.True(t, res.RaiderMovesFirst)
	assert.Equal(t, 310, res.State.Get(1).HP)
	assert.Equal(t, "no target", res.Boss().Reason)
	assert.False(t, res.State.Get(1).Scoped.Protected)
}

func TestResolve_Drain(t *testing.T) {
	s := newState(nil)
	s.Get(1).HP = 100
	res := newResolver().Resolve(s, turn(1, "Drain Punch", combat.NoMove), 1)
	assert.Equal(t, 180, res.State.Get(0).HP)
	assert.Equal(t, 165, res.State.Get(1).HP)
}

func TestResolve_Instruct(t *testing.T) {
	s := newState(nil)
	s.Get(2).LastMove = "Ember"
	s.Get(2).LastTarget = raid.BossID
	tr := combat.Turn{
		Raider: combat.Action{UserID: 1, TargetID: 2, Move: "Instruct"},
		Boss:   combat.Action{UserID: raid.BossID, TargetID: 1, Move: combat.NoMove},
	}
	res := newResolver().Resolve(s, tr, 1)
	assert.Equal(t, 2, res.Raider().UserID)
	assert.Equal(t, "Ember", res.Raider().Move)
	assert.Equal(t, 241, res.State.Get(0).HP)
}

func TestResolve_FieldMoves(t *testing.T) {
	r := newResolver()
	res := r.Resolve(newState(nil), turn(1, "Sunny Day", combat.NoMove), 1)
	assert.Equal(t, raid.Sun, res.State.Field.Weather)
	assert.Equal(t, raid.OriginEffect, res.State.Field.WeatherOrigin)

	res = r.Resolve(newState(nil), turn(1, "Trick Room", combat.NoMove), 1)
	assert.True(t, res.State.Field.TrickRoom)
	res = r.Resolve(res.State, turn(1, "Trick Room", combat.NoMove), 2)
	assert.False(t, res.State.Field.TrickRoom)

	res = r.Resolve(newState(nil), turn(1, "Attack Cheer", combat.NoMove), 1)
	assert.Equal(t, 2, res.State.Sides[raid.RaiderSide].AtkCheer)
}

func TestResolve_ChoiceLock(t *testing.T) {
	s := newState(map[int]fixture{1: {item: raid.ChoiceSpecs}})
	r := newResolver()
	res := r.Resolve(s, turn(1, "Ember", combat.NoMove), 1)
	res = r.Resolve(res.State, turn(1, "Tackle", combat.NoMove), 2)
	assert.Equal(t, "Ember", res.Raider().Move)
}

func TestResolve_StatusAndStatMoves(t *testing.T) {
	r := newResolver()
	res := r.Resolve(newState(nil), turn(1, "Thunder Wave", combat.NoMove), 1)
	assert.Equal(t, raid.Paralysis, res.State.Get(0).Status)

	res = r.Resolve(newState(nil), turn(1, "Swords Dance", combat.NoMove), 1)
	assert.Equal(t, 2, res.State.Get(1).Boosts[dex.Atk])
}

func TestResolve_UniqueMoves(t *testing.T) {
	r := newResolver()
	s := newState(map[int]fixture{0: {item: raid.Leftovers}})
	res := r.Resolve(s, turn(1, "Knock Off", combat.NoMove), 1)
	assert.Equal(t, raid.ItemNone, res.State.Get(0).Item)

	s = newState(map[int]fixture{0: {ability: raid.ThickFat}, 1: {ability: raid.Levitate}})
	res = r.Resolve(s, turn(1, "Skill Swap", combat.NoMove), 1)
	assert.Equal(t, raid.Levitate, res.State.Get(0).Ability)
	assert.Equal(t, raid.ThickFat, res.State.Get(1).Ability)
}

func TestResolve_AbsorbedAttack(t *testing.T) {
	s := newState(map[int]fixture{0: {ability: raid.WaterAbsorb}})
	s.Get(0).HP = 100
	res := newResolver().Resolve(s, turn(1, "Water Gun", combat.NoMove), 1)
	assert.Equal(t, 100+310/4, res.State.Get(0).HP)
}

func TestProperty_ResolveIsDeterministic(t *testing.T) {
	moves := []string{"Tackle", "Ember", "Fake Out", "Drain Punch", "Swords Dance", "Thunder Wave", "Protect", combat.NoMove}
	rapid.Check(t, func(rt *rapid.T) {
		s := newState(map[int]fixture{1: {spe: rapid.IntRange(50, 150).Draw(rt, "spe")}})
		s.Get(1).HP = rapid.IntRange(1, 310).Draw(rt, "hp")
		tr := turn(1, rapid.SampledFrom(moves).Draw(rt, "raider"), rapid.SampledFrom(moves).Draw(rt, "boss"))
		r := newResolver()
		a := r.Resolve(s, tr, 1)
		b := r.Resolve(s.Clone(), tr, 1)
		if !assert.ObjectsAreEqual(a.State, b.State) {
			rt.Fatalf("states diverged")
		}
		for i := range a.State.Combatants {
			c := a.State.Get(i)
			if c.HP < 0 || c.HP > c.MaxHP() {
				rt.Fatalf("slot %d hp %d out of range", i, c.HP)
			}
		}
	})
}

func TestResolve_StatChangeRecipient(t *testing.T) {
	cases := []struct {
		name      string
		move      string
		userDef   int
		targetDef int
		userSpD   int
		targetSpD int
	}{
		{name: "user-side drop", move: "Close Combat", userDef: -1, userSpD: -1},
		{name: "target-side drop", move: "Crunch", targetDef: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := newResolver().Resolve(newState(nil), turn(1, tc.move, combat.NoMove), 1)
			user, target := res.State.Get(1), res.State.Get(raid.BossID)
			assert.Equal(t, tc.userDef, user.Boosts[dex.Def])
			assert.Equal(t, tc.userSpD, user.Boosts[dex.SpD])
			assert.Equal(t, tc.targetDef, target.Boosts[dex.Def])
			assert.Equal(t, tc.targetSpD, target.Boosts[dex.SpD])
		})
	}
}

func TestShippedContent_SelfDropMovesLowerUser(t *testing.T) {
	reg, err := dex.LoadDirectories("../../../content/species", "../../../content/moves")
	require.NoError(t, err)
	resolver := combat.NewResolver(reg, combat.DefaultCalculator{}, maxRoller())

	for _, name := range []string{"Close Combat", "Headlong Rush"} {
		t.Run(name, func(t *testing.T) {
			res := resolver.Resolve(newState(nil), turn(1, name, combat.NoMove), 1)
			assert.Equal(t, -1, res.State.Get(1).Boosts[dex.Def])
			assert.Equal(t, -1, res.State.Get(1).Boosts[dex.SpD])
			assert.Zero(t, res.State.Get(raid.BossID).Boosts[dex.Def])
			assert.Zero(t, res.State.Get(raid.BossID).Boosts[dex.SpD])
		})
	}
}
