package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/duel-chess-go/internal/chess"
)

// ParseDiagram reads an 8-line board diagram, rank 8 first. Each line holds
// eight cells: '.' for empty, FEN letters for pieces (upper case white).
// Whitespace inside a line is ignored. Pawns off their start rank are marked
// as moved.
func ParseDiagram(diagram string) ([]chess.Piece, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	var pieces []chess.Piece
	for i, row := range rows {
		rank := chess.LastIndex - i
		if len(row) != chess.BoardSize {
			return nil, fmt.Errorf("rank %d has %d cells, want %d", rank+1, len(row), chess.BoardSize)
		}
		for file, c := range row {
			if c == '.' {
				continue
			}
			kind, ok := chess.ParseKind(string(c))
			if !ok {
				return nil, fmt.Errorf("rank %d: bad piece %q", rank+1, c)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p := chess.NewPiece(kind, colour, chess.Sq(file, rank))
			p.Moved = kind == chess.Pawn && rank != chess.PawnStartRank(colour)
			pieces = append(pieces, p)
		}
	}
	return pieces, nil
}

// MustParseDiagram parses a diagram and calls t.Fatal on failure.
func MustParseDiagram(t *testing.T, diagram string) []chess.Piece {
	t.Helper()
	pieces, err := ParseDiagram(diagram)
	if err != nil {
		t.Fatalf("ParseDiagram() error: %v", err)
	}
	return pieces
}

// BoardFromDiagram builds a board from a diagram and calls t.Fatal on failure.
func BoardFromDiagram(t *testing.T, diagram string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, p := range MustParseDiagram(t, diagram) {
		board.Place(p)
	}
	return board
}
