package dice

import "sort"

// Distribution maps accumulated damage to its probability. It is the
// cumulative damage history of one combatant over a battle.
type Distribution map[int]float64

// AddRolls convolves d with an attack whose rolls are equally likely, scaled
// by chance (1 when the attack always lands). Accumulated values are clamped
// to [lo, hi]; once a path reaches hi it stays there. Values are summed in
// ascending order so identical histories produce identical floats.
//
// Precondition: lo <= hi; 0 < chance <= 1.
// Postcondition: the total probability mass of d is unchanged when chance == 1.
func (d Distribution) AddRolls(rolls Rolls, lo, hi int, chance float64) {
	if len(rolls) == 0 {
		return
	}
	if chance <= 0 || chance > 1 {
		chance = 1
	}
	prev := d.Clone()
	if len(prev) == 0 {
		prev[0] = 1
	}
	clear(d)
	per := chance / float64(len(rolls))
	keys := prev.Values()
	for _, roll := range rolls {
		for _, acc := range keys {
			p := prev[acc]
			next := hi
			if acc < hi {
				next = max(lo, min(hi, acc+roll))
			}
			d[next] += p * per
		}
	}
	if chance < 1 {
		for _, acc := range keys {
			d[acc] += prev[acc] * (1 - chance)
		}
	}
}

// Clone returns an independent copy of d.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// ChanceAtLeast returns the probability that accumulated damage is at least
// threshold, e.g. the chance that a combatant with threshold HP was knocked out.
func (d Distribution) ChanceAtLeast(threshold int) float64 {
	total := 0.0
	for _, acc := range d.Values() {
		if acc >= threshold {
			total += d[acc]
		}
	}
	return total
}

// Values returns the accumulated damage values in ascending order.
func (d Distribution) Values() []int {
	out := make([]int, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
