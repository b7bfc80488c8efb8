// Package render formats boards as text. It is a display-only consumer
// of finished grids; nothing in the engine depends on it.
package render

import "strings"

const bar = "+-------+-------+-------+"

// String draws g in the classic ASCII layout with box separators every
// three rows and columns. Zeroes render as blanks.
func String(g *[9][9]uint8) string {
	var sb strings.Builder
	sb.WriteString(bar)
	sb.WriteByte('\n')
	for r := 0; r < 9; r++ {
		sb.WriteString("|")
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v == 0 {
				sb.WriteString("  ")
			} else {
				sb.WriteByte(' ')
				sb.WriteByte('0' + v)
			}
			if c%3 == 2 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if r%3 == 2 {
			sb.WriteString(bar)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
