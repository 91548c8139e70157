package dex

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is an elemental type. TypeNone marks an empty second type slot and the
// typeless placeholder species.
type Type uint8

const (
	TypeNone Type = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
	numTypes
)

var typeNames = [numTypes]string{
	TypeNone:     "???",
	TypeNormal:   "Normal",
	TypeFire:     "Fire",
	TypeWater:    "Water",
	TypeElectric: "Electric",
	TypeGrass:    "Grass",
	TypeIce:      "Ice",
	TypeFighting: "Fighting",
	TypePoison:   "Poison",
	TypeGround:   "Ground",
	TypeFlying:   "Flying",
	TypePsychic:  "Psychic",
	TypeBug:      "Bug",
	TypeRock:     "Rock",
	TypeGhost:    "Ghost",
	TypeDragon:   "Dragon",
	TypeDark:     "Dark",
	TypeSteel:    "Steel",
	TypeFairy:    "Fairy",
}

func (t Type) String() string {
	if t >= numTypes {
		return typeNames[TypeNone]
	}
	return typeNames[t]
}

// ParseType resolves a case-insensitive type name. Unknown names yield TypeNone.
func ParseType(name string) Type {
	for t := TypeNormal; t < numTypes; t++ {
		if strings.EqualFold(typeNames[t], strings.TrimSpace(name)) {
			return t
		}
	}
	return TypeNone
}

// UnmarshalYAML decodes a type name.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}

// chart[attacker][defender] in halves: 0 immune, 1 resisted, 2 neutral, 4 super effective.
var chart [numTypes][numTypes]uint8

func init() {
	for a := range chart {
		for d := range chart[a] {
			chart[a][d] = 2
		}
	}
	set := func(atk Type, mult uint8, defs ...Type) {
		for _, d := range defs {
			chart[atk][d] = mult
		}
	}
	set(TypeNormal, 1, TypeRock, TypeSteel)
	set(TypeNormal, 0, TypeGhost)
	set(TypeFire, 4, TypeGrass, TypeIce, TypeBug, TypeSteel)
	set(TypeFire, 1, TypeFire, TypeWater, TypeRock, TypeDragon)
	set(TypeWater, 4, TypeFire, TypeGround, TypeRock)
	set(TypeWater, 1, TypeWater, TypeGrass, TypeDragon)
	set(TypeElectric, 4, TypeWater, TypeFlying)
	set(TypeElectric, 1, TypeElectric, TypeGrass, TypeDragon)
	set(TypeElectric, 0, TypeGround)
	set(TypeGrass, 4, TypeWater, TypeGround, TypeRock)
	set(TypeGrass, 1, TypeFire, TypeGrass, TypePoison, TypeFlying, TypeBug, TypeDragon, TypeSteel)
	set(TypeIce, 4, TypeGrass, TypeGround, TypeFlying, TypeDragon)
	set(TypeIce, 1, TypeFire, TypeWater, TypeIce, TypeSteel)
	set(TypeFighting, 4, TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel)
	set(TypeFighting, 1, TypePoison, TypeFlying, TypePsychic, TypeBug, TypeFairy)
	set(TypeFighting, 0, TypeGhost)
	set(TypePoison, 4, TypeGrass, TypeFairy)
	set(TypePoison, 1, TypePoison, TypeGround, TypeRock, TypeGhost)
	set(TypePoison, 0, TypeSteel)
	set(TypeGround, 4, TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel)
	set(TypeGround, 1, TypeGrass, TypeBug)
	set(TypeGround, 0, TypeFlying)
	set(TypeFlying, 4, TypeGrass, TypeFighting, TypeBug)
	set(TypeFlying, 1, TypeElectric, TypeRock, TypeSteel)
	set(TypePsychic, 4, TypeFighting, TypePoison)
	set(TypePsychic, 1, TypePsychic, TypeSteel)
	set(TypePsychic, 0, TypeDark)
	set(TypeBug, 4, TypeGrass, TypePsychic, TypeDark)
	set(TypeBug, 1, TypeFire, TypeFighting, TypePoison, TypeFlying, TypeGhost, TypeSteel, TypeFairy)
	set(TypeRock, 4, TypeFire, TypeIce, TypeFlying, TypeBug)
	set(TypeRock, 1, TypeFighting, TypeGround, TypeSteel)
	set(TypeGhost, 4, TypePsychic, TypeGhost)
	set(TypeGhost, 1, TypeDark)
	set(TypeGhost, 0, TypeNormal)
	set(TypeDragon, 4, TypeDragon)
	set(TypeDragon, 1, TypeSteel)
	set(TypeDragon, 0, TypeFairy)
	set(TypeDark, 4, TypePsychic, TypeGhost)
	set(TypeDark, 1, TypeFighting, TypeDark, TypeFairy)
	set(TypeSteel, 4, TypeIce, TypeRock, TypeFairy)
	set(TypeSteel, 1, TypeFire, TypeWater, TypeElectric, TypeSteel)
	set(TypeFairy, 4, TypeFighting, TypeDragon, TypeDark)
	set(TypeFairy, 1, TypeFire, TypePoison, TypeSteel)
	for t := range chart {
		chart[TypeNone][t] = 2
		chart[t][TypeNone] = 2
	}
}

// Effectiveness returns the damage multiplier of an attack of type atk against
// a defender with the given types.
//
// Postcondition: result is one of 0, 0.25, 0.5, 1, 2, 4.
func Effectiveness(atk Type, defs ...Type) float64 {
	mult := 1.0
	for _, d := range defs {
		if d == TypeNone || atk >= numTypes || d >= numTypes {
			continue
		}
		mult *= float64(chart[atk][d]) / 2
	}
	return mult
}
