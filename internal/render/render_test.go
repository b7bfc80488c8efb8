package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringClassicLayout(t *testing.T) {
	g := [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}

	want := "" +
		"+-------+-------+-------+\n" +
		"| 5 3   |   7   |       |\n" +
		"| 6     | 1 9 5 |       |\n" +
		"|   9 8 |       |   6   |\n" +
		"+-------+-------+-------+\n" +
		"| 8     |   6   |     3 |\n" +
		"| 4     | 8   3 |     1 |\n" +
		"| 7     |   2   |     6 |\n" +
		"+-------+-------+-------+\n" +
		"|   6   |       | 2 8   |\n" +
		"|       | 4 1 9 |     5 |\n" +
		"|       |   8   |   7 9 |\n" +
		"+-------+-------+-------+\n"

	require.Equal(t, want, String(&g))
}

func TestStringEmptyGrid(t *testing.T) {
	var g [9][9]uint8
	out := String(&g)
	require.Contains(t, out, "|       |       |       |")
	require.NotContains(t, out, "0", "empty cells must render blank")
}
