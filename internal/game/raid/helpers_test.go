package raid_test

import (
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// spec builds a level 100 neutral combatant with zero IVs and EVs, so every
// non-HP stat is 2*base+5 and HP is 2*base+110.
type spec struct {
	role    string
	types   []dex.Type
	spe     int
	ability raid.Ability
	item    raid.Item
}

func buildOf(sp spec) raid.Build {
	types := sp.types
	if len(types) == 0 {
		types = []dex.Type{dex.TypeNormal}
	}
	spe := sp.spe
	if spe == 0 {
		spe = 100
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
		Moves:   []string{"Tackle"},
	}
}

// newState returns a boss and four raiders with the given overrides by slot.
func newState(overrides map[int]spec) *raid.State {
	var cs [raid.NumCombatants]raid.Combatant
	for i := range cs {
		sp := spec{role: []string{"boss", "r1", "r2", "r3", "r4"}[i]}
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

func attack(attacker int, t dex.Type, cat dex.Category) raid.Hit {
	return raid.Hit{
		AttackerID:    attacker,
		Move:          dex.Move{Name: "Test Attack", Type: t, Category: cat, Power: 80},
		Hits:          1,
		Effectiveness: 1,
	}
}
