package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/engine"
	"svw.info/sudokugen/internal/ports"
)

var (
	// ErrUnsolvable reports that no completion is consistent with the
	// given clues.
	ErrUnsolvable = errors.New("solver: no completion consistent with the given clues")
	// ErrOutOfRange reports a cell value outside 0..9.
	ErrOutOfRange = errors.New("solver: cell value out of range 0..9")
)

// Backtracking is the default depth-first solver on the shared engine.
// Candidate order is ascending, so re-solving the same board is
// deterministic.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// checkRange rejects malformed boards before any search runs.
func checkRange(g *[9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return ErrOutOfRange
			}
		}
	}
	return nil
}

// Solve completes b without altering its givens. The input board is not
// mutated.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return s.SolveTrace(ctx, b, nil)
}

// SolveTrace is Solve with an observer for each placement and
// retraction.
func (s *Backtracking) SolveTrace(ctx context.Context, b *domain.Board, fn ports.TraceFunc) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkRange(&b.Values); err != nil {
		return nil, ports.Stats{}, err
	}
	grid := b.Values
	p := engine.Policy{Order: engine.Ascending, SkipFilled: true}
	if fn != nil {
		p.Trace = engine.TraceFunc(fn)
	}
	nodes, ok := engine.Search(ctx, &grid, p)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if ctx != nil && ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, ErrUnsolvable
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// Unique counts completions up to 2 and reports whether exactly one
// exists.
func (s *Backtracking) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := checkRange(&b.Values); err != nil {
		return false, ports.Stats{}, err
	}
	grid := b.Values
	count := 0
	nodes, _ := engine.Search(ctx, &grid, engine.Policy{
		Order:      engine.Ascending,
		SkipFilled: true,
		OnSolution: func(*engine.Grid) bool {
			count++
			return count >= 2 // stop early
		},
	})
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
