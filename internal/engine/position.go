package engine

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/duel-chess-go/internal/chess"
)

// PositionKey returns the canonical repetition key for a position: side to
// move, every piece as kind/colour/file/rank in sorted order, and an en
// passant marker when the last move was a two-square pawn advance.
func PositionKey(board *chess.Board, toMove chess.Colour, last *chess.LastMove) string {
	pieces := board.Pieces()
	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, fmt.Sprintf("%c%c%d%d", p.Kind.Letter(), colourLetter(p.Colour), p.Square.File, p.Square.Rank))
	}
	slices.Sort(parts)

	var sb strings.Builder
	sb.WriteString(toMove.String())
	for _, part := range parts {
		sb.WriteByte('|')
		sb.WriteString(part)
	}
	sb.WriteByte('|')
	if last.IsDoublePawnPush() {
		fmt.Fprintf(&sb, "ep%d%d", last.To.File, last.To.Rank)
	}
	return sb.String()
}

func colourLetter(c chess.Colour) byte {
	if c == chess.White {
		return 'w'
	}
	return 'b'
}
