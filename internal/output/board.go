package output

import (
	"strings"

	"github.com/lgbarn/duel-chess-go/internal/chess"
)

// Diagram draws the position of a snapshot with rank 8 at the top. White
// pieces are upper case, black lower case and empty squares '.'.
func Diagram(state chess.GameState) string {
	var grid [8][8]byte
	for r := range grid {
		for f := range grid[r] {
			grid[r][f] = '.'
		}
	}
	for _, p := range state.Pieces {
		if !p.Position.InBounds() {
			continue
		}
		c := p.Kind.Letter()
		if p.Colour == chess.Black {
			c += 'a' - 'A'
		}
		grid[p.Position.Rank][p.Position.File] = c
	}

	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString("  ")
		b.WriteByte(byte('1' + rank))
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			b.WriteByte(' ')
			b.WriteByte(grid[rank][file])
		}
		b.WriteByte('\n')
	}
	b.WriteString("     a b c d e f g h\n")
	return b.String()
}
