package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestSinglesFindsNakedSingle(t *testing.T) {
	var b domain.Board
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}

	h, ok, err := NewSingles().Hint(context.Background(), &b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, h.Cells)
	require.Contains(t, h.Message, "9")
	require.Equal(t, domain.StrategySingles, h.Strategy)
}

func TestSinglesNoneOnOpenBoard(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), &domain.Board{}, domain.StrategyAdvanced)
	require.NoError(t, err)
	require.False(t, ok, "an empty board has no forced cell")
}
