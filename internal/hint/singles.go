package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/engine"
)

// Singles implements a minimal Hinter that suggests naked singles:
// empty cells whose candidate set has shrunk to one value.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single found, scanning row-major.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if cand := engine.Candidates(&b.Values, r, c); len(cand) == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", cand[0]),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}

	return domain.Hint{}, false, nil
}
