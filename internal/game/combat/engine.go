package combat

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// TurnZero is the pre-battle pass in which abilities that act on entry resolve.
type TurnZero struct {
	// Order is the slots in the order they entered, fastest first.
	Order []int
	// EntryFlags are the lines raised by entry abilities.
	EntryFlags [raid.NumCombatants][]string
	// CheckFlags are the lines raised by the idle pass that follows entry.
	CheckFlags [raid.NumCombatants][]string
	// State is the state after the pass.
	State *raid.State
}

// Result is the outcome of a battle.
type Result struct {
	// RunID correlates the battle's log lines.
	RunID    uuid.UUID
	TurnZero TurnZero
	Turns    []TurnResult
	// EndState is the state after the last turn.
	EndState *raid.State
	// Failed marks a degraded result: the battle panicked and Turns is empty.
	Failed bool
	Err    error
}

// Battle drives a raid from its starting state through its turn groups.
type Battle struct {
	start    *raid.State
	groups   []TurnGroup
	resolver TurnResolver
	logger   *zap.Logger
}

// NewBattle creates a Battle.
//
// Precondition: start and resolver must be non-nil.
// Postcondition: start is never modified by the battle.
func NewBattle(start *raid.State, groups []TurnGroup, resolver TurnResolver, logger *zap.Logger) *Battle {
	if start == nil || resolver == nil {
		panic("combat: NewBattle precondition violated: nil start state or resolver")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Battle{start: start, groups: groups, resolver: resolver, logger: logger}
}

// Result runs turn zero, then every turn of every group in order, threading
// each turn's state into the next.
//
// A panic anywhere in the run is recovered and logged. The result is then
// degraded: Failed is set, Turns is empty, and EndState is a clone of the
// starting state.
func (b *Battle) Result() (res Result) {
	res.RunID = uuid.New()
	log := b.logger.With(zap.String("run_id", res.RunID.String()))
	startedAt := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = b.degraded(res.RunID, p)
			log.Error("battle failed", zap.Any("panic", p))
		}
	}()

	res.TurnZero = b.turnZero()
	res.Turns = b.fold(log, res.TurnZero.State, b.groups, 1)
	res.EndState = res.TurnZero.State
	if n := len(res.Turns); n > 0 {
		res.EndState = res.Turns[n-1].State
	}
	log.Info("battle finished",
		zap.Int("turns", len(res.Turns)),
		zap.Duration("elapsed", time.Since(startedAt)),
	)
	return res
}

// Continue resumes prev with more groups. Turn zero is not re-run and turn
// numbers continue from prev. A degraded prev is returned unchanged so its
// empty turn list keeps signalling the failure.
func (b *Battle) Continue(prev Result, groups []TurnGroup) (res Result) {
	if prev.Failed {
		return prev
	}
	res = prev
	res.Turns = append([]TurnResult(nil), prev.Turns...)
	log := b.logger.With(zap.String("run_id", prev.RunID.String()))
	defer func() {
		if p := recover(); p != nil {
			res = b.degraded(prev.RunID, p)
			log.Error("battle continuation failed", zap.Any("panic", p))
		}
	}()
	start, next := prev.EndState, prev.NextNumber()
	if start == nil {
		start = prev.TurnZero.State
	}
	more := b.fold(log, start, groups, next)
	res.Turns = append(res.Turns, more...)
	if n := len(res.Turns); n > 0 {
		res.EndState = res.Turns[n-1].State
	}
	return res
}

// NextNumber is the turn number the next resolved turn will carry.
func (r Result) NextNumber() int {
	if n := len(r.Turns); n > 0 {
		return nextNumber(r.Turns[n-1])
	}
	return 1
}

func (b *Battle) degraded(id uuid.UUID, p any) Result {
	return Result{
		RunID:    id,
		TurnZero: TurnZero{State: b.start.Clone()},
		EndState: b.start.Clone(),
		Failed:   true,
		Err:      fmt.Errorf("combat: battle failed: %v", p),
	}
}

// turnZero sorts the combatants by speed, fastest first and ties by slot,
// and lets each enter in that order. An idle pass follows in the same order
// so threshold items react to the entry effects.
func (b *Battle) turnZero() TurnZero {
	s := b.start.Clone()
	s.TakeFlags()
	order := make([]int, raid.NumCombatants)
	speeds := make([]int, raid.NumCombatants)
	for i := range order {
		order[i] = i
		speeds[i] = s.Speed(i)
	}
	sort.SliceStable(order, func(i, j int) bool { return speeds[order[i]] > speeds[order[j]] })

	for _, id := range order {
		s.EnterBattle(id)
	}
	tz := TurnZero{Order: order, EntryFlags: s.TakeFlags()}
	for _, id := range order {
		s.ApplyDamage(id, 0, raid.Indirect)
	}
	tz.CheckFlags = s.TakeFlags()
	tz.State = s
	return tz
}

// fold threads state through every turn of groups. Turns in which the raider
// takes no action do not advance the turn number.
func (b *Battle) fold(log *zap.Logger, s *raid.State, groups []TurnGroup, number int) []TurnResult {
	var out []TurnResult
	for _, turn := range Expand(groups) {
		tr := b.resolver.Resolve(s, turn, number)
		log.Debug("turn resolved",
			zap.Int("turn", number),
			zap.String("raider_move", tr.Raider().Move),
			zap.String("boss_move", tr.Boss().Move),
			zap.Bool("raider_first", tr.RaiderMovesFirst),
		)
		out = append(out, tr)
		s = tr.State
		number = nextNumber(tr)
	}
	return out
}

func nextNumber(tr TurnResult) int {
	if tr.Turn.Raider.Type() == ActionNone {
		return tr.Number
	}
	return tr.Number + 1
}
