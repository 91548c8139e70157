// Package dice provides damage-roll lists, roll-bias selection, and the
// probability-weighted damage history used by the raid engine.
package dice

import (
	"fmt"
	"strings"
)

// NumRolls is the number of damage rolls an attack produces: one per random
// factor from 85% to 100%.
const NumRolls = 16

// Bias selects which of an attack's damage rolls is applied to the state.
type Bias uint8

const (
	Avg Bias = iota
	Min
	Max
)

var biasNames = [...]string{Avg: "avg", Min: "min", Max: "max"}

func (b Bias) String() string {
	if int(b) >= len(biasNames) {
		return "avg"
	}
	return biasNames[b]
}

// ParseBias resolves "min", "avg", or "max". The empty string yields Avg.
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "avg", "average":
		return Avg, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	}
	return Avg, fmt.Errorf("dice: unknown roll bias %q", s)
}

// Rolls is the ascending list of damage values one attack can deal.
//
// Postcondition: values are non-decreasing when produced by Spread.
type Rolls []int

// Spread produces the NumRolls damage values for base damage before the
// random factor, applying finalize to each value (the remaining damage
// modifiers after the random roll).
//
// Precondition: base >= 0.
// Postcondition: len(result) == NumRolls.
func Spread(base int, finalize func(int) int) Rolls {
	out := make(Rolls, NumRolls)
	for i := range out {
		v := base * (85 + i) / 100
		if finalize != nil {
			v = finalize(v)
		}
		out[i] = v
	}
	return out
}

// Pick returns the roll selected by b. Avg is the floor of the arithmetic
// mean. An empty list yields 0.
func (r Rolls) Pick(b Bias) int {
	if len(r) == 0 {
		return 0
	}
	switch b {
	case Min:
		return r[0]
	case Max:
		return r[len(r)-1]
	}
	sum := 0
	for _, v := range r {
		sum += v
	}
	return sum / len(r)
}

// Scale returns a copy of r with every value multiplied by n, e.g. for the
// total of an n-hit move using the same roll each hit.
func (r Rolls) Scale(n int) Rolls {
	out := make(Rolls, len(r))
	for i, v := range r {
		out[i] = v * n
	}
	return out
}

func (r Rolls) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
