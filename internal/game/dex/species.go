package dex

// Species is the static data of one species.
type Species struct {
	Name      string   `yaml:"name"`
	Types     []Type   `yaml:"types"`
	BaseStats StatMap  `yaml:"base_stats"`
	Abilities []string `yaml:"abilities"`
	WeightKg  float64  `yaml:"weight_kg"`
	// Placeholder is set when the species was not found in the registry.
	Placeholder bool `yaml:"-"`
}

// Validate reports the first structural problem with s.
func (s *Species) Validate() error {
	if s.Name == "" {
		return errorf("species name must not be empty")
	}
	if len(s.Types) == 0 || len(s.Types) > 2 {
		return errorf("species %q: must have one or two types, got %d", s.Name, len(s.Types))
	}
	for i, v := range s.BaseStats.Table() {
		if v <= 0 {
			return errorf("species %q: base stat %s must be > 0", s.Name, Stat(i))
		}
	}
	return nil
}

// HasType reports whether t is one of the species' types.
func (s Species) HasType(t Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}

// PlaceholderSpecies returns the typeless stand-in for an unknown species name.
func PlaceholderSpecies(name string) Species {
	return Species{
		Name:        DisplayName(name),
		Types:       []Type{TypeNone},
		BaseStats:   StatMap{HP: 100, Atk: 100, Def: 100, SpA: 100, SpD: 100, Spe: 100},
		Placeholder: true,
	}
}
