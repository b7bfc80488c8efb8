package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board and can count its solutions.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// TraceFunc observes solver progress; v == 0 reports a retraction.
type TraceFunc func(row, col int, v uint8)

// StepSolver streams search progress while solving.
type StepSolver interface {
	SolveTrace(ctx context.Context, b *domain.Board, fn TraceFunc) (*domain.Board, Stats, error)
}

// Generator creates a puzzle plus its originating solution from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}
