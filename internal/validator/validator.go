package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// Fast checks row, column, and box constraints in one pass over the
// board using per-group digit masks. Empty cells are ignored; digits
// above 9 are reported as conflicts so malformed boards never reach a
// solver.
type Fast struct{}

func New() *Fast { return &Fast{} }

func (v *Fast) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var rows, cols, boxes [9]uint16
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			if val > 9 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			bit := uint16(1) << val
			box := (r/3)*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[box]&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}

	return len(conf) == 0, conf, nil
}

// Complete reports whether b is fully populated and conflict-free:
// every row, column, and box a permutation of 1..9.
func (v *Fast) Complete(ctx context.Context, b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	ok, _, _ := v.Validate(ctx, b)

	return ok
}
