package ai

import (
	"slices"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Candidates is the outcome of every boss choice for one marked turn.
type Candidates struct {
	// Baseline is the turn with the boss taking no action.
	Baseline combat.TurnResult
	// Results holds one turn per legal boss move, in move-list order.
	Results []combat.TurnResult
	// MostDamaging indexes Results, or is -1 when Results is empty.
	MostDamaging int
}

// Evaluate resolves turn once with the boss idle and once per move the boss
// currently knows.
//
// Precondition: s and resolver must be non-nil.
// Postcondition: s is not modified; len(Results) == len(s.Get(raid.BossID).Moves).
func Evaluate(resolver combat.TurnResolver, s *raid.State, turn combat.Turn, number int) Candidates {
	idle := turn
	idle.Boss.Move = combat.NoMove
	c := Candidates{Baseline: resolver.Resolve(s, idle, number), MostDamaging: -1}

	raider := turn.Raider.UserID
	before := s.Get(raider).HP
	most := 0
	for _, m := range s.Get(raid.BossID).Moves {
		t := turn
		t.Boss.Move = m
		tr := resolver.Resolve(s, t, number)
		dealt := before - tr.State.Get(raider).HP
		if c.MostDamaging < 0 || dealt > most {
			c.MostDamaging, most = len(c.Results), dealt
		}
		c.Results = append(c.Results, tr)
	}
	return c
}

// PickInteresting evaluates every boss choice for turn and keeps the ones
// worth branching on:
//   - candidates that differ from the idle baseline and from every already
//     kept candidate in move order, flinching, or a non-HP field of the
//     boss or its target;
//   - the candidate dealing the most damage to the turn's raider, always;
//   - the first candidate when nothing else qualifies.
//
// When the boss knows no moves the baseline is returned alone.
//
// Postcondition: the returned slice is never empty.
func PickInteresting(resolver combat.TurnResolver, s *raid.State, turn combat.Turn, number int) []combat.TurnResult {
	c := Evaluate(resolver, s, turn, number)
	if len(c.Results) == 0 {
		return []combat.TurnResult{c.Baseline}
	}

	var kept []combat.TurnResult
	var keptIdx []int
	for i, tr := range c.Results {
		if !moveIsInteresting(c.Baseline, tr) {
			continue
		}
		distinct := true
		for _, k := range kept {
			if !moveIsInteresting(k, tr) {
				distinct = false
				break
			}
		}
		if distinct {
			kept = append(kept, tr)
			keptIdx = append(keptIdx, i)
		}
	}
	if !slices.Contains(keptIdx, c.MostDamaging) {
		kept = append(kept, c.Results[c.MostDamaging])
	}
	if len(kept) == 0 {
		kept = append(kept, c.Results[0])
	}
	return kept
}

// moveIsInteresting reports whether b differs from a in anything besides HP.
func moveIsInteresting(a, b combat.TurnResult) bool {
	if a.RaiderMovesFirst != b.RaiderMovesFirst || flinched(a) != flinched(b) {
		return true
	}
	target := b.Boss().TargetID
	if target < 0 || target >= raid.NumCombatants {
		target = b.Raider().UserID
	}
	return nonHPChanges(a.State, b.State, target) || nonHPChanges(a.State, b.State, raid.BossID)
}

func flinched(tr combat.TurnResult) bool {
	r := tr.Raider()
	return !tr.RaiderMovesFirst && r.Skipped && r.Reason == "flinched"
}

// nonHPChanges compares slot id, its side, and the shared field across two
// states.
func nonHPChanges(a, b *raid.State, id int) bool {
	ca, cb := a.Get(id), b.Get(id)
	rageFist := slices.Contains(ca.Moves, "Rage Fist")
	switch {
	case ca.Boosts != cb.Boosts,
		ca.Item != cb.Item,
		ca.Status != cb.Status,
		ca.Ability != cb.Ability,
		ca.AbilityOn != cb.AbilityOn,
		ca.AbilityNullified != cb.AbilityNullified,
		ca.IsTera != cb.IsTera,
		ca.BoostedStat != cb.BoostedStat,
		ca.CritStage != cb.CritStage,
		ca.Micle != cb.Micle,
		ca.TimesFainted != cb.TimesFainted,
		ca.SyrupBombDrops != cb.SyrupBombDrops,
		ca.Volatiles != cb.Volatiles,
		ca.Scoped.Endure != cb.Scoped.Endure,
		rageFist && ca.HitsTaken != cb.HitsTaken:
		return true
	}
	return a.Field != b.Field || *a.SideOf(id) != *b.SideOf(id)
}
