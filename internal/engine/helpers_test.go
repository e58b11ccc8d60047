package engine

import (
	"testing"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/testutil"
)

// newClassicGame returns a game in the starting position.
func newClassicGame(t testing.TB) *Game {
	t.Helper()
	g, err := NewGame()
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	g.InitClassicSetup()
	return g
}

// gameFromFEN returns a game set up from fen.
func gameFromFEN(t testing.TB, fen string) *Game {
	t.Helper()
	g, err := NewGame()
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	if err := loadFEN(g, fen); err != nil {
		t.Fatalf("loadFEN(%q) error: %v", fen, err)
	}
	return g
}

// boardFromFEN returns the board and last move described by fen.
func boardFromFEN(t testing.TB, fen string) (*chess.Board, *chess.LastMove) {
	t.Helper()
	pos, err := parseFEN(fen)
	if err != nil {
		t.Fatalf("parseFEN(%q) error: %v", fen, err)
	}
	board := chess.NewBoard()
	for _, p := range pos.Pieces {
		board.Place(p)
	}
	return board, pos.LastMove
}

// parseMove splits "e2e4" or "e7e8q" into squares and a promotion kind.
func parseMove(t testing.TB, move string) (from, to chess.Square, promotion chess.Kind) {
	t.Helper()
	if len(move) != 4 && len(move) != 5 {
		t.Fatalf("bad move %q", move)
	}
	from = testutil.Square(move[:2])
	to = testutil.Square(move[2:4])
	if len(move) == 5 {
		kind, ok := chess.ParseKind(move[4:])
		if !ok {
			t.Fatalf("bad promotion in %q", move)
		}
		promotion = kind
	}
	return from, to, promotion
}

// mustPlay plays moves in order, failing the test on the first rejection.
func mustPlay(t testing.TB, g *Game, moves ...string) *MoveResult {
	t.Helper()
	var result *MoveResult
	for _, move := range moves {
		from, to, promotion := parseMove(t, move)
		var err error
		result, err = g.MakeMove(from, to, promotion)
		if err != nil {
			t.Fatalf("MakeMove(%s) error: %v", move, err)
		}
	}
	return result
}
