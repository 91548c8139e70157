package dex

import "strings"

// Stat identifies a permanent stat (HP through Spe) or a battle-only stage
// (Acc, Eva).
type Stat uint8

const (
	HP Stat = iota
	Atk
	Def
	SpA
	SpD
	Spe
	Acc
	Eva
	NumStats
)

// NoStat marks the absence of a stat, e.g. an inactive paradox boost.
const NoStat Stat = NumStats

var statNames = [NumStats]string{"hp", "atk", "def", "spa", "spd", "spe", "acc", "eva"}

func (s Stat) String() string {
	if s >= NumStats {
		return "none"
	}
	return statNames[s]
}

// ParseStat resolves a short stat name ("atk", "spe", ...). ok is false for
// unknown names.
func ParseStat(name string) (Stat, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return NoStat, false
}

// StatTable holds one value per permanent stat, indexed HP through Spe.
type StatTable [Spe + 1]int

// StatMap is the YAML shape of a stat table.
type StatMap struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	SpA int `yaml:"spa"`
	SpD int `yaml:"spd"`
	Spe int `yaml:"spe"`
}

// Table converts m into a StatTable.
func (m StatMap) Table() StatTable {
	return StatTable{m.HP, m.Atk, m.Def, m.SpA, m.SpD, m.Spe}
}

// CalcStat computes a level-scaled stat from its base value.
//
// Precondition: level in [1,100]; iv in [0,31]; ev in [0,252].
// Postcondition: HP is at least level+11 for base > 0; other stats are at least 5.
func CalcStat(s Stat, base, iv, ev, level int, n Nature) int {
	core := (2*base + iv + ev/4) * level / 100
	if s == HP {
		if base == 1 {
			return 1
		}
		return core + level + 10
	}
	return (core + 5) * n.Modifier(s) / 100
}
