// Package strategy decodes raid strategy files: the five combatants of a raid
// and the grouped turns to run against them.
package strategy

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// defaultIV is used for every stat when a combatant omits ivs.
const defaultIV = 31

// yamlStrategy is the top-level YAML structure of a strategy file.
type yamlStrategy struct {
	Name       string          `yaml:"name"`
	Combatants []yamlCombatant `yaml:"combatants"`
	Groups     []yamlGroup     `yaml:"groups"`
}

// yamlCombatant is the YAML representation of one combatant.
type yamlCombatant struct {
	Role           string       `yaml:"role"`
	Species        string       `yaml:"species"`
	Level          int          `yaml:"level"`
	Nature         string       `yaml:"nature"`
	EVs            dex.StatMap  `yaml:"evs"`
	IVs            *dex.StatMap `yaml:"ivs"`
	Ability        string       `yaml:"ability"`
	Item           string       `yaml:"item"`
	Moves          []string     `yaml:"moves"`
	TeraType       string       `yaml:"tera_type"`
	BossMultiplier int          `yaml:"boss_multiplier"`
}

// yamlGroup is the YAML representation of a group of turns.
type yamlGroup struct {
	Repeats int        `yaml:"repeats"`
	Turns   []yamlTurn `yaml:"turns"`
}

// yamlTurn is the YAML representation of one turn.
type yamlTurn struct {
	Raider yamlAction `yaml:"raider"`
	Boss   yamlAction `yaml:"boss"`
}

// yamlAction is the YAML representation of one action. Target is a pointer
// so an omitted target can take the side's default.
type yamlAction struct {
	ID               int    `yaml:"id"`
	Move             string `yaml:"move"`
	Target           *int   `yaml:"target"`
	Crit             bool   `yaml:"crit"`
	SecondaryEffects bool   `yaml:"secondary_effects"`
	Hits             int    `yaml:"hits"`
	Roll             string `yaml:"roll"`
	Tera             bool   `yaml:"tera"`
}

// Plan is a decoded strategy ready to run.
type Plan struct {
	Name   string
	State  *raid.State
	Groups []combat.TurnGroup
	// Warnings lists problems that do not stop the battle, such as a turn
	// using a move its combatant does not know.
	Warnings []string
}

// LoadFromFile reads and decodes a single strategy file.
//
// Precondition: path must point to a strategy YAML file; reg must be non-nil.
// Postcondition: Returns a Plan or a non-nil error.
func LoadFromFile(path string, reg *dex.Registry) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading strategy file %s: %w", path, err)
	}
	p, err := Decode(data, reg)
	if err != nil {
		return nil, fmt.Errorf("loading strategy %s: %w", path, err)
	}
	return p, nil
}

// Decode parses and validates a strategy from YAML bytes. Unknown species,
// move, ability, and item names degrade to placeholders rather than failing.
// Structural problems are all reported together.
//
// Precondition: reg must be non-nil.
// Postcondition: Returns a Plan whose State has five combatants, or a non-nil
// error.
func Decode(data []byte, reg *dex.Registry) (*Plan, error) {
	var file yamlStrategy
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing strategy YAML: %w", err)
	}
	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("validating strategy: %w", err)
	}

	var cs [raid.NumCombatants]raid.Combatant
	for i, yc := range file.Combatants {
		cs[i] = raid.NewCombatant(i, convertCombatant(yc, reg))
	}
	groups, err := convertGroups(file.Groups, reg)
	if err != nil {
		return nil, fmt.Errorf("validating strategy: %w", err)
	}
	state := raid.NewState(cs)
	return &Plan{Name: file.Name, State: state, Groups: groups, Warnings: unknownMoves(state, groups)}, nil
}

func (f *yamlStrategy) validate() error {
	var errs []error
	if len(f.Combatants) != raid.NumCombatants {
		errs = append(errs, fmt.Errorf("need exactly %d combatants, got %d", raid.NumCombatants, len(f.Combatants)))
	}
	for i, c := range f.Combatants {
		if c.Level < 0 || c.Level > 100 {
			errs = append(errs, fmt.Errorf("combatant %d: level %d out of range [1, 100]", i, c.Level))
		}
		if c.BossMultiplier < 0 {
			errs = append(errs, fmt.Errorf("combatant %d: boss_multiplier must be >= 0", i))
		}
	}
	for gi, g := range f.Groups {
		if g.Repeats < 0 {
			errs = append(errs, fmt.Errorf("group %d: repeats must be >= 0", gi))
		}
		for ti, t := range g.Turns {
			if t.Raider.ID < 1 || t.Raider.ID >= raid.NumCombatants {
				errs = append(errs, fmt.Errorf("group %d turn %d: raider id %d out of range [1, %d]", gi, ti, t.Raider.ID, raid.NumCombatants-1))
			}
			for _, a := range []yamlAction{t.Raider, t.Boss} {
				if a.Target != nil && (*a.Target < 0 || *a.Target >= raid.NumCombatants) {
					errs = append(errs, fmt.Errorf("group %d turn %d: target %d out of range", gi, ti, *a.Target))
				}
				if a.Hits < 0 {
					errs = append(errs, fmt.Errorf("group %d turn %d: hits must be >= 0", gi, ti))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// convertCombatant resolves a YAML combatant against reg.
func convertCombatant(yc yamlCombatant, reg *dex.Registry) raid.Build {
	sp := reg.Species(yc.Species)
	ivs := dex.StatTable{defaultIV, defaultIV, defaultIV, defaultIV, defaultIV, defaultIV}
	if yc.IVs != nil {
		ivs = yc.IVs.Table()
	}
	ability := yc.Ability
	if ability == "" && len(sp.Abilities) > 0 {
		ability = sp.Abilities[0]
	}
	level := yc.Level
	if level == 0 {
		level = 100
	}
	role := yc.Role
	if role == "" {
		role = sp.Name
	}
	moves := make([]string, 0, len(yc.Moves))
	for _, name := range yc.Moves {
		moves = append(moves, reg.Move(name).Name)
	}
	return raid.Build{
		Role:           role,
		Species:        sp,
		Level:          level,
		Nature:         dex.ParseNature(yc.Nature),
		IVs:            ivs,
		EVs:            yc.EVs.Table(),
		Ability:        raid.ParseAbility(ability),
		Item:           raid.ParseItem(yc.Item),
		Moves:          moves,
		TeraType:       dex.ParseType(yc.TeraType),
		BossMultiplier: yc.BossMultiplier,
	}
}

func convertGroups(ygs []yamlGroup, reg *dex.Registry) ([]combat.TurnGroup, error) {
	var errs []error
	groups := make([]combat.TurnGroup, 0, len(ygs))
	id := 0
	for gi, yg := range ygs {
		g := combat.TurnGroup{ID: gi, Repeats: yg.Repeats}
		for ti, yt := range yg.Turns {
			raider, err := convertAction(yt.Raider, yt.Raider.ID, raid.BossID, reg)
			if err != nil {
				errs = append(errs, fmt.Errorf("group %d turn %d raider: %w", gi, ti, err))
			}
			boss, err := convertAction(yt.Boss, raid.BossID, yt.Raider.ID, reg)
			if err != nil {
				errs = append(errs, fmt.Errorf("group %d turn %d boss: %w", gi, ti, err))
			}
			g.Turns = append(g.Turns, combat.Turn{ID: id, Group: gi, Raider: raider, Boss: boss})
			id++
		}
		groups = append(groups, g)
	}
	return groups, errors.Join(errs...)
}

// unknownMoves reports every named move used by a combatant that does not
// have it in its move list. Sentinels are never reported.
func unknownMoves(s *raid.State, groups []combat.TurnGroup) []string {
	var out []string
	for _, g := range groups {
		for ti, t := range g.Turns {
			for _, a := range []combat.Action{t.Raider, t.Boss} {
				if a.Type() != combat.ActionMove {
					continue
				}
				c := s.Get(a.UserID)
				if !slices.Contains(c.Moves, a.Move) {
					out = append(out, fmt.Sprintf("group %d turn %d: %s does not know %s", g.ID, ti, c.Role, a.Move))
				}
			}
		}
	}
	return out
}

// convertAction resolves a YAML action for user, defaulting its target to
// defaultTarget. Sentinel move names pass through unchanged.
func convertAction(ya yamlAction, user, defaultTarget int, reg *dex.Registry) (combat.Action, error) {
	a := combat.Action{
		UserID:   user,
		TargetID: defaultTarget,
		Move:     ya.Move,
		Options: combat.Options{
			Crit:             ya.Crit,
			SecondaryEffects: ya.SecondaryEffects,
			Hits:             ya.Hits,
			Tera:             ya.Tera,
		},
	}
	if ya.Target != nil {
		a.TargetID = *ya.Target
	}
	switch combat.ParseActionType(ya.Move) {
	case combat.ActionNone:
		a.Move = combat.NoMove
	case combat.ActionMove:
		a.Move = reg.Move(ya.Move).Name
	}
	if ya.Roll != "" {
		b, err := dice.ParseBias(ya.Roll)
		if err != nil {
			return a, err
		}
		a.Options.Roll = &b
	}
	return a, nil
}
