package combat_test

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// At level 100 with zero IVs and EVs and base 100 stats, every non-HP stat
// is 205 and HP is 310. An 80 power move between two such combatants has a
// base damage of 69 before the random factor.
type fixture struct {
	role    string
	types   []dex.Type
	spe     int
	ability raid.Ability
	item    raid.Item
	moves   []string
}

func buildOf(sp fixture) raid.Build {
	types := sp.types
	if len(types) == 0 {
		types = []dex.Type{dex.TypeNormal}
	}
	spe := sp.spe
	if spe == 0 {
		spe = 100
	}
	moves := sp.moves
	if moves == nil {
		moves = []string{"Tackle"}
	}
	return raid.Build{
		Role: sp.role,
		Species: dex.Species{
			Name:      sp.role,
			Types:     types,
			BaseStats: dex.StatMap{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: spe},
		},
		Level:   100,
		Nature:  dex.NeutralNature,
		Ability: sp.ability,
		Item:    sp.item,
		Moves:   moves,
	}
}

func newState(overrides map[int]fixture) *raid.State {
	var cs [raid.NumCombatants]raid.Combatant
	for i := range cs {
		sp := fixture{role: []string{"boss", "r1", "r2", "r3", "r4"}[i]}
		if o, ok := overrides[i]; ok {
			if o.role == "" {
				o.role = sp.role
			}
			sp = o
		}
		cs[i] = raid.NewCombatant(i, buildOf(sp))
	}
	return raid.NewState(cs)
}

func testMoves() *dex.Registry {
	r := dex.NewRegistry()
	for _, m := range []dex.Move{
		{Name: "Tackle", Type: dex.TypeNormal, Category: dex.Physical, Power: 80, Accuracy: 100},
		{Name: "Ember", Type: dex.TypeFire, Category: dex.Special, Power: 80, Accuracy: 100},
		{Name: "Water Gun", Type: dex.TypeWater, Category: dex.Special, Power: 80, Accuracy: 100},
		{Name: "Mud Shot", Type: dex.TypeGround, Category: dex.Special, Power: 80, Accuracy: 100},
		{Name: "Double Hit", Type: dex.TypeFire, Category: dex.Special, Power: 80, MinHits: 2, MaxHits: 5},
		{Name: "Drain Punch", Type: dex.TypeFighting, Category: dex.Physical, Power: 75, Drain: 50},
		{Name: "Fake Out", Type: dex.TypeNormal, Category: dex.Physical, Power: 40, Priority: 3, FlinchChance: 100},
		{Name: "Quick Attack", Type: dex.TypeNormal, Category: dex.Physical, Power: 40, Priority: 1},
		{Name: "Heat Wave", Type: dex.TypeFire, Category: dex.Special, Power: 80, Target: dex.TargetAllOpponents},
		{Name: "Swords Dance", Type: dex.TypeNormal, Category: dex.Status, Target: dex.TargetUser,
			StatChanges: map[string]int{"atk": 2}},
		{Name: "Thunder Wave", Type: dex.TypeElectric, Category: dex.Status, Ailment: "paralysis"},
		{Name: "Protect", Type: dex.TypeNormal, Category: dex.Status, Priority: 4, Target: dex.TargetUser},
		{Name: "Sunny Day", Type: dex.TypeFire, Category: dex.Status, Target: dex.TargetEntireField},
		{Name: "Trick Room", Type: dex.TypePsychic, Category: dex.Status, Priority: -7, Target: dex.TargetEntireField},
		{Name: "Instruct", Type: dex.TypePsychic, Category: dex.Status},
		{Name: "Attack Cheer", Type: dex.TypeNormal, Category: dex.Status, Target: dex.TargetUsersField},
		{Name: "Close Combat", Type: dex.TypeFighting, Category: dex.Physical, Power: 120, StatChance: 100,
			StatChanges: map[string]int{"def": -1, "spd": -1}, Effect: "damage+raise"},
		{Name: "Crunch", Type: dex.TypeDark, Category: dex.Physical, Power: 80, StatChance: 100,
			StatChanges: map[string]int{"def": -1}, Effect: "damage+lower"},
		{Name: "Knock Off", Type: dex.TypeDark, Category: dex.Physical, Power: 65},
		{Name: "Skill Swap", Type: dex.TypePsychic, Category: dex.Status},
	} {
		r.RegisterMove(m)
	}
	return r
}

func maxRoller() *dice.Roller {
	return dice.NewLoggedRoller(dice.Max, zap.NewNop())
}

func newResolver() *combat.Resolver {
	return combat.NewResolver(testMoves(), combat.DefaultCalculator{}, maxRoller())
}

func turn(raider int, raiderMove, bossMove string) combat.Turn {
	return combat.Turn{
		Raider: combat.Action{UserID: raider, TargetID: raid.BossID, Move: raiderMove},
		Boss:   combat.Action{UserID: raid.BossID, TargetID: raider, Move: bossMove},
	}
}
