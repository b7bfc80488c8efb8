package solver

import (
	"context"
	"sort"
	"time"

	sat "github.com/mitchellh/go-sat"
	"github.com/mitchellh/go-sat/cnf"
	"gonum.org/v1/gonum/stat/combin"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// SAT solves by reduction to boolean satisfiability with one variable
// per (cell, digit) pair: 729 variables, exactly-one clauses per cell
// and per digit for every row, column, and box, plus a unit clause per
// given. Stats.Nodes reports the clause count, the closest analogue to
// search nodes for this backend.
type SAT struct{}

func NewSAT() *SAT { return &SAT{} }

// satVar maps (r, c, v) with v in 1..9 to a CNF variable in 1..729.
func satVar(r, c, v int) int { return r*81 + c*9 + v }

// atMostOne expands a group into pairwise exclusion clauses.
func atMostOne(vars []int) [][]int {
	out := make([][]int, 0, 36)
	for _, p := range combin.Combinations(len(vars), 2) {
		out = append(out, []int{-vars[p[0]], -vars[p[1]]})
	}
	return out
}

func encode(g *[9][9]uint8) [][]int {
	var clauses [][]int
	exactlyOne := func(vars []int) {
		clauses = append(clauses, vars)
		clauses = append(clauses, atMostOne(vars)...)
	}
	// each cell holds exactly one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			vars := make([]int, 9)
			for v := 1; v <= 9; v++ {
				vars[v-1] = satVar(r, c, v)
			}
			exactlyOne(vars)
		}
	}
	// each digit appears exactly once per row, column, and box
	for v := 1; v <= 9; v++ {
		for r := 0; r < 9; r++ {
			vars := make([]int, 9)
			for c := 0; c < 9; c++ {
				vars[c] = satVar(r, c, v)
			}
			exactlyOne(vars)
		}
		for c := 0; c < 9; c++ {
			vars := make([]int, 9)
			for r := 0; r < 9; r++ {
				vars[r] = satVar(r, c, v)
			}
			exactlyOne(vars)
		}
		for b := 0; b < 9; b++ {
			br, bc := (b/3)*3, (b%3)*3
			vars := make([]int, 0, 9)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					vars = append(vars, satVar(br+dr, bc+dc, v))
				}
			}
			exactlyOne(vars)
		}
	}
	// unit clauses pin the givens
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				clauses = append(clauses, []int{satVar(r, c, int(g[r][c]))})
			}
		}
	}

	return clauses
}

func solveClauses(clauses [][]int) (map[int]bool, bool) {
	s := sat.New()
	s.AddFormula(cnf.NewFormulaFromInts(clauses))
	if !s.Solve() {
		return nil, false
	}

	return s.Assignments(), true
}

// decode reads the solved grid out of a satisfying assignment and also
// returns the sorted true variables (used for solution blocking).
func decode(as map[int]bool) ([9][9]uint8, []int) {
	trueVars := make([]int, 0, 81)
	for k, on := range as {
		if on {
			trueVars = append(trueVars, k)
		}
	}
	sort.Ints(trueVars)

	var out [9][9]uint8
	for _, k := range trueVars {
		cell := (k - 1) / 9
		out[cell/9][cell%9] = uint8(k - cell*9)
	}

	return out, trueVars
}

func (s *SAT) Solve(_ context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkRange(&b.Values); err != nil {
		return nil, ports.Stats{}, err
	}
	clauses := encode(&b.Values)
	st := ports.Stats{Nodes: len(clauses)}
	as, ok := solveClauses(clauses)
	st.Duration = time.Since(start)
	if !ok {
		return nil, st, ErrUnsolvable
	}
	grid, _ := decode(as)

	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// Unique re-solves with a clause blocking the first assignment; the
// board is unique exactly when the blocked formula is unsatisfiable.
func (s *SAT) Unique(_ context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := checkRange(&b.Values); err != nil {
		return false, ports.Stats{}, err
	}
	clauses := encode(&b.Values)
	as, ok := solveClauses(clauses)
	if !ok {
		return false, ports.Stats{Nodes: len(clauses), Duration: time.Since(start)}, nil
	}
	_, trueVars := decode(as)
	block := make([]int, len(trueVars))
	for i, v := range trueVars {
		block[i] = -v
	}
	_, again := solveClauses(append(clauses, block))

	return !again, ports.Stats{Nodes: len(clauses) + 1, Duration: time.Since(start)}, nil
}
