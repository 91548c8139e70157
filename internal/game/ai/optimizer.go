// Package ai searches over the boss's move choices for the branch of a raid
// that goes best for the boss.
package ai

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// Outcome is the best branch the optimizer found.
type Outcome struct {
	Best  combat.Result
	Score float64
	// Branches is the number of complete branches scored.
	Branches int
}

// Optimizer expands every interesting boss choice at each optimizer-marked
// turn and keeps the highest scoring complete battle.
//
// Invariant: resolver and scorer are non-nil.
type Optimizer struct {
	resolver  combat.TurnResolver
	scorer    Scorer
	maxMarked int
	logger    *zap.Logger
}

// NewOptimizer creates an Optimizer. maxMarked bounds the number of marked
// turns a request may carry; 0 disables the bound.
//
// Precondition: resolver and scorer must be non-nil; maxMarked >= 0.
func NewOptimizer(resolver combat.TurnResolver, scorer Scorer, maxMarked int, logger *zap.Logger) *Optimizer {
	if resolver == nil || scorer == nil {
		panic("ai: NewOptimizer precondition violated: nil resolver or scorer")
	}
	if maxMarked < 0 {
		panic("ai: NewOptimizer precondition violated: maxMarked must be >= 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{resolver: resolver, scorer: scorer, maxMarked: maxMarked, logger: logger}
}

// Marked counts the turns whose boss action asks for the optimal move.
func Marked(turns []combat.Turn) int {
	n := 0
	for _, t := range turns {
		if t.Boss.Type() == combat.ActionOptimal {
			n++
		}
	}
	return n
}

// Split cuts turns into chunks that each end at a marked turn. A trailing
// chunk without a marked turn is kept as is.
//
// Postcondition: concatenating the chunks yields turns.
func Split(turns []combat.Turn) [][]combat.Turn {
	var chunks [][]combat.Turn
	var cur []combat.Turn
	for _, t := range turns {
		cur = append(cur, t)
		if t.Boss.Type() == combat.ActionOptimal {
			chunks = append(chunks, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// Optimize runs the battle described by start and groups, branching at every
// marked turn, and returns the best complete branch by score. Ties go to the
// branch found first.
//
// Precondition: start must be non-nil.
// Postcondition: start is not modified; on success Outcome.Best is one
// complete branch and Branches >= 1.
func (o *Optimizer) Optimize(start *raid.State, groups []combat.TurnGroup) (out Outcome, err error) {
	turns := combat.Expand(groups)
	if n := Marked(turns); o.maxMarked > 0 && n > o.maxMarked {
		return Outcome{}, fmt.Errorf("ai: %d optimizer-marked turns exceeds the limit of %d", n, o.maxMarked)
	}
	startedAt := time.Now()
	defer func() {
		if p := recover(); p != nil {
			o.logger.Error("optimization failed", zap.Any("panic", p))
			err = fmt.Errorf("ai: optimization failed: %v", p)
		}
	}()

	battle := combat.NewBattle(start, nil, o.resolver, o.logger)
	base := battle.Result()
	if base.Failed {
		return Outcome{Best: base, Score: math.Inf(-1), Branches: 1}, base.Err
	}

	branches := []combat.Result{base}
	for i, chunk := range Split(turns) {
		var next []combat.Result
		for _, br := range branches {
			next = append(next, o.expand(battle, br, chunk)...)
		}
		branches = next
		o.logger.Debug("chunk expanded",
			zap.Int("chunk", i),
			zap.Int("turns", len(chunk)),
			zap.Int("branches", len(branches)),
		)
	}

	out = Outcome{Best: branches[0], Score: o.scorer.Score(branches[0]), Branches: len(branches)}
	for _, br := range branches[1:] {
		if sc := o.scorer.Score(br); sc > out.Score {
			out.Best, out.Score = br, sc
		}
	}
	o.logger.Info("optimization finished",
		zap.Int("branches", out.Branches),
		zap.Float64("score", out.Score),
		zap.Duration("elapsed", time.Since(startedAt)),
	)
	return out, nil
}

// expand continues prev through chunk. When chunk ends at a marked turn the
// result forks into one branch per interesting boss choice. A failed branch
// is carried forward as is.
func (o *Optimizer) expand(battle *combat.Battle, prev combat.Result, chunk []combat.Turn) []combat.Result {
	if prev.Failed {
		return []combat.Result{prev}
	}
	last := chunk[len(chunk)-1]
	if last.Boss.Type() != combat.ActionOptimal {
		return []combat.Result{battle.Continue(prev, inOneGroup(chunk))}
	}
	head := prev
	if len(chunk) > 1 {
		head = battle.Continue(prev, inOneGroup(chunk[:len(chunk)-1]))
		if head.Failed {
			return []combat.Result{head}
		}
	}
	picks := PickInteresting(o.resolver, head.EndState, last, head.NextNumber())
	out := make([]combat.Result, 0, len(picks))
	for _, tr := range picks {
		br := head
		br.Turns = append(append([]combat.TurnResult(nil), head.Turns...), tr)
		br.EndState = tr.State
		out = append(out, br)
	}
	return out
}

func inOneGroup(turns []combat.Turn) []combat.TurnGroup {
	return []combat.TurnGroup{{Repeats: 1, Turns: turns}}
}
