// Package main provides the raidcalc binary: it runs a raid strategy file
// through the battle engine, or through the branch optimizer, and prints the
// resulting report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/raidcalc/internal/config"
	"github.com/cory-johannsen/raidcalc/internal/game/ai"
	"github.com/cory-johannsen/raidcalc/internal/game/combat"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/dice"
	"github.com/cory-johannsen/raidcalc/internal/observability"
	"github.com/cory-johannsen/raidcalc/internal/report"
	"github.com/cory-johannsen/raidcalc/internal/scripting"
	"github.com/cory-johannsen/raidcalc/internal/strategy"
)

// objectiveSet is the script set holding the optimizer objective.
const objectiveSet = "objective"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one request and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("raidcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "configs/dev.yaml", "path to configuration file")
	strategyPath := fs.String("strategy", "", "path to strategy YAML file")
	optimize := fs.Bool("optimize", false, "search boss replies at (Optimal Move) turns")
	color := fs.Bool("color", false, "colorize the report with ANSI escapes")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *strategyPath == "" {
		fmt.Fprintln(stderr, "usage: raidcalc -strategy <file> [-config <file>] [-optimize] [-color]")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}
	logger, err := observability.NewLoggerTo(cfg.Logging, zapcore.AddSync(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	start := time.Now()
	reg, err := dex.LoadDirectories(cfg.Content.SpeciesDir, cfg.Content.MovesDir)
	if err != nil {
		logger.Error("loading dex content", zap.Error(err))
		return 1
	}
	logger.Info("dex content loaded",
		zap.Int("moves", len(reg.MoveNames())),
		zap.Duration("elapsed", time.Since(start)),
	)

	plan, err := strategy.LoadFromFile(*strategyPath, reg)
	if err != nil {
		logger.Error("loading strategy", zap.Error(err))
		return 1
	}
	logger.Info("strategy loaded", zap.String("name", plan.Name), zap.Int("groups", len(plan.Groups)))
	for _, w := range plan.Warnings {
		logger.Warn("strategy warning", zap.String("strategy", plan.Name), zap.String("detail", w))
	}

	roller := dice.NewLoggedRoller(cfg.Battle.Bias(), logger.Named("dice"))
	resolver := combat.NewResolver(reg, combat.DefaultCalculator{}, roller)
	r := report.NewRenderer(*color)

	if !*optimize {
		res := combat.NewBattle(plan.State, plan.Groups, resolver, logger.Named("battle")).Result()
		fmt.Fprint(stdout, r.Render(res))
		if res.Failed {
			return 1
		}
		return 0
	}

	scorer, closeScorer, err := newScorer(cfg.Optimizer, logger)
	if err != nil {
		logger.Error("loading objective script", zap.Error(err))
		return 1
	}
	defer closeScorer()

	opt := ai.NewOptimizer(resolver, scorer, cfg.Optimizer.MaxMarkedTurns, logger.Named("optimizer"))
	out, err := opt.Optimize(plan.State, plan.Groups)
	if err != nil {
		logger.Error("optimizing", zap.Error(err))
		return 1
	}
	fmt.Fprint(stdout, r.RenderOutcome(out))
	if out.Best.Failed {
		return 1
	}
	return 0
}

// newScorer returns the built-in objective, or a Lua objective when the
// configuration names a script. The returned func releases the script VM.
func newScorer(cfg config.OptimizerConfig, logger *zap.Logger) (ai.Scorer, func(), error) {
	if cfg.ObjectiveScript == "" {
		return ai.DefaultScorer{}, func() {}, nil
	}
	mgr := scripting.NewManager(logger.Named("scripting"))
	if err := mgr.LoadFile(objectiveSet, cfg.ObjectiveScript, cfg.InstructionLimit); err != nil {
		return nil, nil, err
	}
	return ai.NewLuaScorer(mgr, objectiveSet, logger.Named("objective")), mgr.Close, nil
}
