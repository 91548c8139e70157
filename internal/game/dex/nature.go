package dex

import "strings"

// Nature raises one stat by 10% and lowers another by 10%. Neutral natures
// raise and lower the same stat.
type Nature struct {
	Name  string
	Plus  Stat
	Minus Stat
}

var natures = []Nature{
	{"Hardy", Atk, Atk}, {"Lonely", Atk, Def}, {"Brave", Atk, Spe}, {"Adamant", Atk, SpA}, {"Naughty", Atk, SpD},
	{"Bold", Def, Atk}, {"Docile", Def, Def}, {"Relaxed", Def, Spe}, {"Impish", Def, SpA}, {"Lax", Def, SpD},
	{"Timid", Spe, Atk}, {"Hasty", Spe, Def}, {"Serious", Spe, Spe}, {"Jolly", Spe, SpA}, {"Naive", Spe, SpD},
	{"Modest", SpA, Atk}, {"Mild", SpA, Def}, {"Quiet", SpA, Spe}, {"Bashful", SpA, SpA}, {"Rash", SpA, SpD},
	{"Calm", SpD, Atk}, {"Gentle", SpD, Def}, {"Sassy", SpD, Spe}, {"Careful", SpD, SpA}, {"Quirky", SpD, SpD},
}

// NeutralNature is used when a nature name is missing or unknown.
var NeutralNature = natures[0]

// ParseNature resolves a nature name case-insensitively, falling back to Hardy.
func ParseNature(name string) Nature {
	for _, n := range natures {
		if strings.EqualFold(n.Name, strings.TrimSpace(name)) {
			return n
		}
	}
	return NeutralNature
}

// Modifier returns the nature multiplier for s as a percentage.
func (n Nature) Modifier(s Stat) int {
	switch {
	case n.Plus == n.Minus:
		return 100
	case s == n.Plus:
		return 110
	case s == n.Minus:
		return 90
	}
	return 100
}

// Dislikes reports whether the nature lowers s. Confusion berries keyed to s
// confuse a holder whose nature dislikes it.
func (n Nature) Dislikes(s Stat) bool {
	return n.Plus != n.Minus && n.Minus == s
}
