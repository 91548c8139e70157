package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/raidcalc/internal/game/ai"
	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

func TestEvaluate_EveryMovePlusBaseline(t *testing.T) {
	s := newState("Ember", "Tackle", "Swords Dance")
	c := ai.Evaluate(newResolver(), s, turn(combat.NoMove, combat.OptimalMove), 1)
	require.Len(t, c.Results, 3)
	assert.Equal(t, []string{"Ember", "Tackle", "Swords Dance"}, moveNames(c.Results))
	assert.Equal(t, 1, c.MostDamaging)
	assert.Equal(t, 310, c.Baseline.State.Get(1).HP)
	assert.Equal(t, 310, s.Get(1).HP, "input state must not change")
}

func TestPickInteresting(t *testing.T) {
	cases := []struct {
		name  string
		moves []string
		want  []string
	}{
		{name: "damage only keeps the most damaging", moves: []string{"Ember", "Tackle"}, want: []string{"Tackle"}},
		{name: "self boost is interesting", moves: []string{"Tackle", "Ember", "Swords Dance"}, want: []string{"Swords Dance", "Tackle"}},
		{name: "status on the target is interesting", moves: []string{"Thunder Wave", "Swords Dance", "Ember", "Tackle"}, want: []string{"Thunder Wave", "Swords Dance", "Tackle"}},
		{name: "duplicates are dropped", moves: []string{"Swords Dance", "Swords Dance", "Tackle"}, want: []string{"Swords Dance", "Tackle"}},
		{name: "no moves falls back to baseline", moves: []string{}, want: []string{combat.NoMove}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(tc.moves...)
			got := ai.PickInteresting(newResolver(), s, turn(combat.NoMove, combat.OptimalMove), 1)
			assert.Equal(t, tc.want, moveNames(got))
		})
	}
}

func TestPickInteresting_KeepsTurnNumber(t *testing.T) {
	s := newState("Tackle")
	got := ai.PickInteresting(newResolver(), s, turn("Ember", combat.OptimalMove), 7)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Number)
	assert.Equal(t, 310-69, got[0].State.Get(raid.BossID).HP)
}

func TestProperty_PickInterestingNeverEmpty(t *testing.T) {
	pool := []string{"Tackle", "Ember", "Swords Dance", "Thunder Wave"}
	rapid.Check(t, func(rt *rapid.T) {
		moves := rapid.SliceOfN(rapid.SampledFrom(pool), 0, 4).Draw(rt, "moves")
		s := newState(moves...)
		s.Get(1).HP = rapid.IntRange(1, 310).Draw(rt, "hp")
		got := ai.PickInteresting(newResolver(), s, turn(rapid.SampledFrom(append(pool, combat.NoMove)).Draw(rt, "raider"), combat.OptimalMove), 1)
		if len(got) == 0 {
			rt.Fatalf("no candidates kept for %v", moves)
		}
		if len(got) > len(moves)+1 {
			rt.Fatalf("kept %d candidates from %d moves", len(got), len(moves))
		}
	})
}
