package raid

import (
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
)

// MaxStage bounds every boost stage to [-MaxStage, MaxStage].
const MaxStage = 6

// Boosts holds one stage per battle stat, indexed by dex.Stat. The HP slot is
// always zero.
type Boosts [dex.NumStats]int

// BoostStats lists the stats that carry boost stages, in display order.
var BoostStats = [...]dex.Stat{dex.Atk, dex.Def, dex.SpA, dex.SpD, dex.Spe, dex.Acc, dex.Eva}

// BoostsFromMap converts a short-name keyed map such as {"atk": -1}. Unknown
// keys and HP are ignored.
func BoostsFromMap(m map[string]int) Boosts {
	var b Boosts
	for k, v := range m {
		if st, ok := dex.ParseStat(k); ok && st != dex.HP {
			b[st] = v
		}
	}
	return b
}

// IsZero reports whether no stat has a non-zero entry.
func (b Boosts) IsZero() bool {
	return b == Boosts{}
}

// HasNegative reports whether any stat is below zero.
func (b Boosts) HasNegative() bool {
	for _, st := range BoostStats {
		if b[st] < 0 {
			return true
		}
	}
	return false
}

// Positive returns only the entries above zero.
func (b Boosts) Positive() Boosts {
	var out Boosts
	for _, st := range BoostStats {
		if b[st] > 0 {
			out[st] = b[st]
		}
	}
	return out
}

// Negative returns only the entries below zero.
func (b Boosts) Negative() Boosts {
	var out Boosts
	for _, st := range BoostStats {
		if b[st] < 0 {
			out[st] = b[st]
		}
	}
	return out
}

// Sub returns b - o per stat.
func (b Boosts) Sub(o Boosts) Boosts {
	var out Boosts
	for _, st := range BoostStats {
		out[st] = b[st] - o[st]
	}
	return out
}

// Scale returns b with every entry multiplied by n.
func (b Boosts) Scale(n int) Boosts {
	var out Boosts
	for _, st := range BoostStats {
		out[st] = b[st] * n
	}
	return out
}

func clampStage(v int) int {
	return max(-MaxStage, min(MaxStage, v))
}

// ModifiedStat applies a boost stage to a raw stat using the 2/(2-n) and
// (2+n)/2 stage table.
//
// Precondition: stage in [-6, 6].
func ModifiedStat(raw, stage int) int {
	stage = clampStage(stage)
	if stage >= 0 {
		return raw * (2 + stage) / 2
	}
	return raw * 2 / (2 - stage)
}
