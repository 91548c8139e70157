package dex

import "slices"

// Category is a move's damage class.
type Category string

const (
	Physical Category = "physical"
	Special  Category = "special"
	Status   Category = "status"
)

// Target is a move's target pattern.
type Target string

const (
	TargetSelected      Target = "selected-pokemon"
	TargetUser          Target = "user"
	TargetAllOpponents  Target = "all-opponents"
	TargetAllOther      Target = "all-other-pokemon"
	TargetAllAllies     Target = "all-allies"
	TargetUserAndAllies Target = "user-and-allies"
	TargetAlly          Target = "ally"
	TargetUserOrAlly    Target = "user-or-ally"
	TargetAllPokemon    Target = "all-pokemon"
	TargetEntireField   Target = "entire-field"
	TargetUsersField    Target = "users-field"
	TargetOpponentField Target = "opponents-field"
)

// Move is the static data of one move.
type Move struct {
	Name          string         `yaml:"name"`
	Type          Type           `yaml:"type"`
	Category      Category       `yaml:"category"`
	Target        Target         `yaml:"target"`
	Power         int            `yaml:"power"`
	Accuracy      int            `yaml:"accuracy"`
	Priority      int            `yaml:"priority"`
	MinHits       int            `yaml:"min_hits"`
	MaxHits       int            `yaml:"max_hits"`
	Drain         int            `yaml:"drain"`   // percent of damage dealt; negative is recoil
	Healing       int            `yaml:"healing"` // percent of the user's max HP
	Ailment       string         `yaml:"ailment"`
	AilmentChance int            `yaml:"ailment_chance"`
	FlinchChance  int            `yaml:"flinch_chance"`
	StatChance    int            `yaml:"stat_chance"`
	StatChanges   map[string]int `yaml:"stat_changes"`
	Effect        string         `yaml:"effect"` // damage, ailment, net-good-stats, damage+lower, damage+raise, heal, field-effect, unique, ...
	Flags         []string       `yaml:"flags"`
	Placeholder   bool           `yaml:"-"`
}

// Validate reports the first structural problem with m.
func (m *Move) Validate() error {
	if m.Name == "" {
		return errorf("move name must not be empty")
	}
	switch m.Category {
	case Physical, Special, Status:
	default:
		return errorf("move %q: unknown category %q", m.Name, m.Category)
	}
	if m.Power < 0 {
		return errorf("move %q: power must be >= 0", m.Name)
	}
	if m.MinHits > m.MaxHits {
		return errorf("move %q: min_hits %d exceeds max_hits %d", m.Name, m.MinHits, m.MaxHits)
	}
	return nil
}

// Damaging reports whether m is a physical or special move with power.
func (m Move) Damaging() bool {
	return m.Category != Status && m.Power > 0
}

// HasFlag reports whether m carries flag (e.g. "contact", "wind", "sound").
func (m Move) HasFlag(flag string) bool {
	return slices.Contains(m.Flags, flag)
}

// Hits returns the default hit count: MaxHits for multi-hit moves, else 1.
func (m Move) Hits() int {
	if m.MaxHits > 1 {
		return m.MaxHits
	}
	return 1
}

// PlaceholderMove returns the permissive stand-in for an unknown move name: a
// single-target status move with no effect.
func PlaceholderMove(name string) Move {
	return Move{
		Name:        DisplayName(name),
		Category:    Status,
		Target:      TargetSelected,
		Accuracy:    100,
		Placeholder: true,
	}
}

// Clone returns a copy of m that shares no mutable state with it.
func (m Move) Clone() Move {
	out := m
	if m.StatChanges != nil {
		out.StatChanges = make(map[string]int, len(m.StatChanges))
		for k, v := range m.StatChanges {
			out.StatChanges[k] = v
		}
	}
	out.Flags = slices.Clone(m.Flags)
	return out
}
