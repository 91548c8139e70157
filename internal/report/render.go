// Package report renders battle and optimizer results as terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/raidcalc/internal/game/ai"
	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Renderer formats results with an optional palette.
type Renderer struct {
	p Palette
}

// NewRenderer creates a Renderer. color enables ANSI styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{p: Palette{Enabled: color}}
}

// Render formats a battle result: the turn-zero pass, every turn, and the
// final state of all five combatants. A degraded result renders as a
// failure notice followed by the untouched starting state.
func (r *Renderer) Render(res combat.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", res.RunID)
	if res.Failed {
		b.WriteString(r.p.Colorf(BrightRed, "battle failed: %v", res.Err))
		b.WriteString("\n")
		r.writeState(&b, "Starting state", res.EndState)
		return b.String()
	}

	r.writeTurnZero(&b, res.TurnZero)
	for _, tr := range res.Turns {
		r.writeTurn(&b, tr)
	}
	r.writeState(&b, "Final state", res.EndState)
	return b.String()
}

// RenderOutcome formats an optimizer outcome: a summary line and the best
// branch.
func (r *Renderer) RenderOutcome(out ai.Outcome) string {
	var b strings.Builder
	b.WriteString(r.p.Colorf(BrightWhite, "Optimizer: %d branches, best score %.0f", out.Branches, out.Score))
	b.WriteString("\n")
	b.WriteString(r.Render(out.Best))
	return b.String()
}

func (r *Renderer) writeTurnZero(b *strings.Builder, tz combat.TurnZero) {
	b.WriteString(r.p.Colorize(BrightYellow, "== Turn 0 =="))
	b.WriteString("\n")
	if tz.State == nil {
		return
	}
	names := make([]string, 0, len(tz.Order))
	for _, id := range tz.Order {
		names = append(names, tz.State.Get(id).Role)
	}
	fmt.Fprintf(b, "order: %s\n", strings.Join(names, ", "))
	r.writeFlags(b, tz.State, tz.EntryFlags)
	r.writeFlags(b, tz.State, tz.CheckFlags)
}

func (r *Renderer) writeTurn(b *strings.Builder, tr combat.TurnResult) {
	b.WriteString(r.p.Colorf(BrightYellow, "== Turn %d ==", tr.Number))
	b.WriteString("\n")
	for _, mr := range tr.Results {
		r.writeMove(b, tr.State, mr)
	}
	r.writeFlags(b, tr.State, tr.EndFlags)
}

func (r *Renderer) writeMove(b *strings.Builder, s *raid.State, mr combat.MoveResult) {
	user := s.Get(mr.UserID).Role
	if mr.Skipped {
		b.WriteString(r.p.Colorf(Dim, "  %s: %s (%s)", user, mr.Move, mr.Reason))
		b.WriteString("\n")
		return
	}
	fmt.Fprintf(b, "  %s used %s\n", r.p.Colorize(BrightCyan, user), r.p.Colorize(Cyan, mr.Move))
	for _, d := range mr.Desc {
		fmt.Fprintf(b, "    %s\n", d)
	}
	for id, dmg := range mr.Damage {
		if dmg > 0 {
			b.WriteString(r.p.Colorf(Red, "    %s took %d", s.Get(id).Role, dmg))
			b.WriteString("\n")
		}
	}
	r.writeFlagsIndented(b, s, mr.Flags, "    ")
}

func (r *Renderer) writeFlags(b *strings.Builder, s *raid.State, flags [raid.NumCombatants][]string) {
	r.writeFlagsIndented(b, s, flags, "  ")
}

func (r *Renderer) writeFlagsIndented(b *strings.Builder, s *raid.State, flags [raid.NumCombatants][]string, indent string) {
	for id, lines := range flags {
		for _, l := range lines {
			fmt.Fprintf(b, "%s%s %s\n", indent, r.p.Colorf(Magenta, "[%s]", s.Get(id).Role), l)
		}
	}
}

func (r *Renderer) writeState(b *strings.Builder, title string, s *raid.State) {
	b.WriteString(r.p.Colorf(BrightYellow, "== %s ==", title))
	b.WriteString("\n")
	if s == nil {
		return
	}
	for id := range s.Combatants {
		b.WriteString("  ")
		b.WriteString(r.combatantLine(s.Get(id)))
		b.WriteString("\n")
	}
	if f := fieldLine(s); f != "" {
		fmt.Fprintf(b, "  field: %s\n", f)
	}
}

func (r *Renderer) combatantLine(c *raid.Combatant) string {
	pct := 0.0
	if c.MaxHP() > 0 {
		pct = 100 * float64(c.HP) / float64(c.MaxHP())
	}
	color := Green
	switch {
	case c.HP == 0:
		color = BrightRed
	case pct <= 50:
		color = Yellow
	}
	parts := []string{
		fmt.Sprintf("%-8s %-12s", c.Role, c.Species.Name),
		r.p.Colorf(color, "%d/%d (%.1f%%)", c.HP, c.MaxHP(), pct),
	}
	if st := c.Status.String(); st != "" {
		parts = append(parts, st)
	}
	if it := c.Item.String(); it != "" {
		parts = append(parts, "@ "+it)
	}
	if ab := c.Ability.String(); ab != "" {
		parts = append(parts, "["+ab+"]")
	}
	if c.IsTera {
		parts = append(parts, "tera "+c.TeraType.String())
	}
	if bs := boostString(c.Boosts); bs != "" {
		parts = append(parts, bs)
	}
	if c.TimesFainted > 0 {
		parts = append(parts, fmt.Sprintf("fainted x%d", c.TimesFainted))
	}
	if ko := c.Rolls.ChanceAtLeast(c.MaxHP()); ko > 0 && c.HP > 0 {
		parts = append(parts, fmt.Sprintf("KO %.1f%%", 100*ko))
	}
	return strings.Join(parts, " ")
}

func boostString(bs raid.Boosts) string {
	var parts []string
	for _, st := range raid.BoostStats {
		if v := bs[st]; v != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", v, st))
		}
	}
	return strings.Join(parts, ", ")
}

func fieldLine(s *raid.State) string {
	var parts []string
	if w := s.Field.Weather; w != raid.WeatherNone {
		parts = append(parts, w.String())
	}
	if t := s.Field.Terrain; t != raid.TerrainNone {
		parts = append(parts, t.String()+" Terrain")
	}
	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.Field.TrickRoom, "Trick Room"},
		{s.Field.MagicRoom, "Magic Room"},
		{s.Field.WonderRoom, "Wonder Room"},
		{s.Field.Gravity, "Gravity"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, ", ")
}
