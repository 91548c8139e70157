package ai_test

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Every combatant is a level 100 Normal type with base 100 stats: 310 HP,
// 205 in every other stat. The boss's Tackle deals 103 at the max roll and
// its Ember 69.
func newState(bossMoves ...string) *raid.State {
	var cs [raid.NumCombatants]raid.Combatant
	for i := range cs {
		moves := []string{"Tackle"}
		if i == raid.BossID {
			moves = bossMoves
		}
		cs[i] = raid.NewCombatant(i, raid.Build{
			Role: []string{"boss", "r1", "r2", "r3", "r4"}[i],
			Species: dex.Species{
				Types:     []dex.Type{dex.TypeNormal},
				BaseStats: dex.StatMap{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
			},
			Level:  100,
			Nature: dex.NeutralNature,
			Moves:  moves,
		})
	}
	return raid.NewState(cs)
}

func testMoves() *dex.Registry {
	r := dex.NewRegistry()
	for _, m := range []dex.Move{
		{Name: "Tackle", Type: dex.TypeNormal, Category: dex.Physical, Power: 80, Accuracy: 100},
		{Name: "Ember", Type: dex.TypeFire, Category: dex.Special, Power: 80, Accuracy: 100},
		{Name: "Swords Dance", Type: dex.TypeNormal, Category: dex.Status, Target: dex.TargetUser,
			StatChanges: map[string]int{"atk": 2}},
		{Name: "Thunder Wave", Type: dex.TypeElectric, Category: dex.Status, Ailment: "paralysis"},
	} {
		r.RegisterMove(m)
	}
	return r
}

func newResolver() *combat.Resolver {
	return combat.NewResolver(testMoves(), combat.DefaultCalculator{}, dice.NewLoggedRoller(dice.Max, zap.NewNop()))
}

func turn(raiderMove, bossMove string) combat.Turn {
	return combat.Turn{
		Raider: combat.Action{UserID: 1, TargetID: raid.BossID, Move: raiderMove},
		Boss:   combat.Action{UserID: raid.BossID, TargetID: 1, Move: bossMove},
	}
}

func moveNames(trs []combat.TurnResult) []string {
	out := make([]string, 0, len(trs))
	for _, tr := range trs {
		out = append(out, tr.Boss().Move)
	}
	return out
}
