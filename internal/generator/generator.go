package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/engine"
	"svw.info/sudokugen/internal/ports"
)

// DefaultRemovals is the number of carve draws used when no count is
// configured.
const DefaultRemovals = 75

// Random builds puzzles by filling an empty grid with a seeded shuffled
// backtracking search, then carving cells out of the solution.
type Random struct {
	// Removals is the number of carve draws, taken with replacement, so
	// the count of distinct cleared cells is at most this.
	Removals int
}

func NewRandom(removals int) *Random {
	if removals <= 0 {
		removals = DefaultRemovals
	}
	return &Random{Removals: removals}
}

// Generate fills a full solution and carves a puzzle from it. The same
// seed always yields the same puzzle. Filling a blank grid cannot fail,
// so the only error is cancellation.
func (g *Random) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var solution engine.Grid
	nodes, ok := engine.Search(ctx, &solution, engine.Policy{Order: engine.Shuffled, Rand: rng})
	if !ok {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, context.Canceled
	}

	puz := solution
	carve(rng, &puz, g.Removals)

	var fixed [9][9]bool
	givens := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puz[r][c] != 0 {
				fixed[r][c] = true
				givens++
			}
		}
	}

	p := &domain.Puzzle{
		Seed:      seed,
		Board:     domain.Board{Values: puz, Fixed: fixed},
		Solution:  solution,
		Givens:    givens,
		CreatedAt: time.Now().UnixNano(),
	}

	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// carve zeroes cells at positions drawn uniformly with replacement.
// Hitting an already-empty cell is a no-op, so distinct clears may come
// out below the draw count. No solvability or uniqueness check is made:
// the surviving clues are a subset of a valid solution, so at least
// that completion remains reachable, and with this many removals
// multiple completions are the norm.
func carve(rng *rand.Rand, grid *engine.Grid, removals int) {
	for n := 0; n < removals; n++ {
		grid[rng.Intn(9)][rng.Intn(9)] = 0
	}
}
