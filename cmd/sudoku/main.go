package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/solver"
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	removals := flag.Int("removals", generator.DefaultRemovals, "carve draws, taken with replacement")
	solverKind := flag.String("solver", "backtrack", "solver to use: backtrack|sat")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "sat":
		s = solver.NewSAT()
	default:
		s = solver.NewBacktracking()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	g := generator.NewRandom(*removals)
	p, st, err := g.Generate(ctx, *seed)
	if err != nil {
		logger.Error("generate failed", "err", err)
		os.Exit(1)
	}
	logger.Debug("generated", "seed", p.Seed, "givens", p.Givens, "nodes", st.Nodes, "dur", st.Duration)

	fmt.Println("PUZZLE")
	fmt.Print(render.String(&p.Board.Values))
	fmt.Println()

	out, st, err := s.Solve(ctx, &p.Board)
	if err != nil {
		logger.Error("solve failed", "err", err)
		os.Exit(1)
	}
	logger.Debug("solved", "nodes", st.Nodes, "dur", st.Duration)

	fmt.Println("SOLUTION")
	fmt.Print(render.String(&out.Values))
}
