package ai

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Score weights of the built-in objective.
const (
	bossAliveWeight   = 1e9
	raiderFaintWeight = 1e6
	koChanceWeight    = 5000
)

// ScoreHook is the Lua global a scripted objective defines.
const ScoreHook = "score"

// Scorer rates a finished branch from the boss's point of view. Higher is
// better for the boss.
type Scorer interface {
	Score(res combat.Result) float64
}

// ScriptCaller is the interface required by LuaScorer to call into Lua.
type ScriptCaller interface {
	// CallHook calls a named Lua function in the given script set.
	// Returns (LNil, nil) if the function is not defined.
	CallHook(set, hook string, args ...lua.LValue) (lua.LValue, error)
}

// Summary is the per-branch digest handed to scorers.
type Summary struct {
	BossAlive    bool
	BossHP       int
	BossMaxHP    int
	RaiderFaints int
	// KOScore sums, over raiders, 0 for no knockout risk and otherwise the
	// knockout chance in percent floored at 1.
	KOScore  float64
	RaiderHP int
	Turns    int
}

// Summarize digests the end state of res.
func Summarize(res combat.Result) Summary {
	end := res.EndState
	boss := end.Get(raid.BossID)
	sum := Summary{
		BossAlive: boss.HP > 0,
		BossHP:    boss.HP,
		BossMaxHP: boss.MaxHP(),
		Turns:     len(res.Turns),
	}
	for id := 1; id < raid.NumCombatants; id++ {
		c := end.Get(id)
		sum.RaiderFaints += c.TimesFainted
		sum.RaiderHP += c.HP
		if ko := c.Rolls.ChanceAtLeast(c.MaxHP()) * 100; ko > 0 {
			sum.KOScore += math.Max(1, ko)
		}
	}
	return sum
}

// DefaultScorer prefers, in strict priority, a surviving boss, more raider
// faints, higher knockout chances, and lower remaining raider HP.
type DefaultScorer struct{}

// Score implements Scorer. Degraded results score negative infinity.
func (DefaultScorer) Score(res combat.Result) float64 {
	if res.Failed || res.EndState == nil {
		return math.Inf(-1)
	}
	return Summarize(res).value()
}

func (s Summary) value() float64 {
	v := float64(s.RaiderFaints)*raiderFaintWeight + s.KOScore*koChanceWeight - float64(s.RaiderHP)
	if s.BossAlive {
		v += bossAliveWeight
	}
	return v
}

// LuaScorer delegates scoring to a Lua score(summary) function. It falls back
// to DefaultScorer when the hook is missing, errors, or returns a non-number.
type LuaScorer struct {
	caller ScriptCaller
	set    string
	logger *zap.Logger
}

// NewLuaScorer creates a LuaScorer calling the hook in script set.
//
// Precondition: caller must be non-nil.
func NewLuaScorer(caller ScriptCaller, set string, logger *zap.Logger) *LuaScorer {
	if caller == nil {
		panic("ai: NewLuaScorer precondition violated: nil caller")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LuaScorer{caller: caller, set: set, logger: logger}
}

// Score implements Scorer.
func (l *LuaScorer) Score(res combat.Result) float64 {
	if res.Failed || res.EndState == nil {
		return math.Inf(-1)
	}
	sum := Summarize(res)
	ret, err := l.caller.CallHook(l.set, ScoreHook, summaryTable(sum))
	if err != nil {
		l.logger.Warn("objective script failed", zap.String("set", l.set), zap.Error(err))
		return sum.value()
	}
	n, ok := ret.(lua.LNumber)
	if !ok {
		l.logger.Debug("objective script returned no number", zap.String("set", l.set))
		return sum.value()
	}
	return float64(n)
}

func summaryTable(s Summary) *lua.LTable {
	t := &lua.LTable{Metatable: lua.LNil}
	t.RawSetString("boss_alive", lua.LBool(s.BossAlive))
	t.RawSetString("boss_hp", lua.LNumber(s.BossHP))
	t.RawSetString("boss_max_hp", lua.LNumber(s.BossMaxHP))
	t.RawSetString("raider_faints", lua.LNumber(s.RaiderFaints))
	t.RawSetString("ko_score", lua.LNumber(s.KOScore))
	t.RawSetString("raider_hp", lua.LNumber(s.RaiderHP))
	t.RawSetString("turns", lua.LNumber(s.Turns))
	t.RawSetString("default", lua.LNumber(s.value()))
	return t
}
