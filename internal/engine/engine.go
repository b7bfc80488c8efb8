// Package engine is the shared constraint-satisfaction core: cell
// legality checks, candidate enumeration, and one recursive
// backtracking search that serves both generation and solving.
package engine

import (
	"context"
	"math/rand"
)

// Grid is the 9x9 board state; 0 marks an empty cell.
type Grid = [9][9]uint8

// IsValid reports whether v may be placed at (r, c): v must not already
// appear in row r, column c, or the 3x3 box containing the cell. The
// target cell itself must be empty or hold a different value when
// called, otherwise it trivially conflicts with itself.
func IsValid(g *Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Candidates returns the legal values for (r, c) in ascending order.
func Candidates(g *Grid, r, c int) []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if IsValid(g, r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// Order selects how values are tried at each empty cell.
type Order int

const (
	// Ascending tries 1..9 in order, pruned to the current candidates.
	// Deterministic for a fixed grid: the solving order.
	Ascending Order = iota
	// Shuffled tries all nine digits in a fresh uniform permutation per
	// cell: the generation order.
	Shuffled
)

// TraceFunc observes the search. Each placement is reported with its
// value; each retraction with v == 0.
type TraceFunc func(r, c int, v uint8)

// Policy configures a single Search run.
type Policy struct {
	Order Order
	// SkipFilled treats non-zero cells as immutable givens.
	SkipFilled bool
	// Rand supplies the permutations for Shuffled order. Callers own
	// and seed it; Search never reads a global source.
	Rand *rand.Rand
	// OnSolution, if set, is called whenever all 81 cells are filled.
	// Returning true accepts the completion and stops the search;
	// returning false backtracks and keeps looking. Nil accepts the
	// first completion.
	OnSolution func(g *Grid) bool
	// Trace, if set, observes every placement and retraction.
	Trace TraceFunc
}

// Search runs depth-first over the cells in row-major order, mutating g
// in place. It returns the number of attempted placements and whether
// an accepted completion was reached. On failure the non-given cells
// are left zeroed. Recursion depth is bounded by one frame per cell
// plus the base case. A nil ctx never cancels.
func Search(ctx context.Context, g *Grid, p Policy) (nodes int, ok bool) {
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx != nil && ctx.Err() != nil {
			return false
		}
		if i == 81 {
			if p.OnSolution != nil {
				return p.OnSolution(g)
			}
			return true
		}
		r, c := i/9, i%9
		if g[r][c] != 0 {
			if p.SkipFilled {
				return dfs(i + 1)
			}
			g[r][c] = 0
		}
		var vals []uint8
		if p.Order == Shuffled {
			vals = permutation(p.Rand)
		} else {
			vals = Candidates(g, r, c)
		}
		for _, v := range vals {
			nodes++
			if p.Order == Shuffled && !IsValid(g, r, c, v) {
				continue
			}
			g[r][c] = v
			if p.Trace != nil {
				p.Trace(r, c, v)
			}
			if dfs(i + 1) {
				return true
			}
			g[r][c] = 0
			if p.Trace != nil {
				p.Trace(r, c, 0)
			}
		}
		return false
	}
	ok = dfs(0)

	return nodes, ok
}

// permutation returns 1..9 in uniform random order (Fisher-Yates).
func permutation(rng *rand.Rand) []uint8 {
	vals := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	return vals
}
