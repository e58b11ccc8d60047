package engine

import (
	"testing"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/testutil"
)

func TestGenerate_Pieces(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		square      string
		wantMoves   []string
		wantAttacks []string
	}{
		{
			name:        "rook stops before own piece and on enemy",
			fen:         "8/8/3P4/8/3R1p2/8/8/8 w - - 0 1",
			square:      "d4",
			wantMoves:   []string{"d5", "d3", "d2", "d1", "c4", "b4", "a4", "e4"},
			wantAttacks: []string{"f4"},
		},
		{
			name:        "bishop stops before own piece and on enemy",
			fen:         "8/8/5P2/8/3B4/8/1p6/8 w - - 0 1",
			square:      "d4",
			wantMoves:   []string{"e5", "c5", "b6", "a7", "e3", "f2", "g1", "c3"},
			wantAttacks: []string{"b2"},
		},
		{
			name:      "knight in the corner",
			fen:       "8/8/8/8/8/8/8/N7 w - - 0 1",
			square:    "a1",
			wantMoves: []string{"b3", "c2"},
		},
		{
			name:        "knight jumps over pieces",
			fen:         "8/8/8/8/8/1p6/PPP5/1N6 w - - 0 1",
			square:      "b1",
			wantMoves:   []string{"c3", "d2", "a3"},
			wantAttacks: nil,
		},
		{
			name:      "king on the edge",
			fen:       "8/8/8/8/8/8/8/4K3 w - - 0 1",
			square:    "e1",
			wantMoves: []string{"d1", "f1", "d2", "e2", "f2"},
		},
		{
			name:        "king beside own and enemy pieces",
			fen:         "8/8/8/8/8/8/3Pp3/4K3 w - - 0 1",
			square:      "e1",
			wantMoves:   []string{"d1", "f1", "f2"},
			wantAttacks: []string{"e2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, last := boardFromFEN(t, tt.fen)
			ms := GenerateAt(board, testutil.Square(tt.square), last)
			testutil.AssertSquares(t, ms.Moves, testutil.Squares(tt.wantMoves...), "moves")
			testutil.AssertSquares(t, ms.Attacks, testutil.Squares(tt.wantAttacks...), "attacks")
		})
	}
}

func TestGenerate_QueenOnEmptyBoard(t *testing.T) {
	board := chess.NewBoard()
	queen := chess.NewPiece(chess.Queen, chess.White, testutil.Square("d4"))
	board.Place(queen)

	ms := Generate(queen, board, nil)
	if got := len(ms.Moves); got != 27 {
		t.Errorf("len(Moves) = %d, want 27", got)
	}
	if len(ms.Attacks) != 0 {
		t.Errorf("Attacks = %v, want none", ms.Attacks)
	}
}

func TestGenerate_EmptySquare(t *testing.T) {
	ms := GenerateAt(chess.NewBoard(), testutil.Square("e4"), nil)
	if !ms.IsEmpty() {
		t.Errorf("GenerateAt(empty) = %+v, want empty set", ms)
	}
}

func TestGenerate_IgnoresTurn(t *testing.T) {
	// Black pieces generate the same set whoever is to move.
	board, _ := boardFromFEN(t, "8/8/8/8/3r4/8/8/8 w - - 0 1")
	ms := GenerateAt(board, testutil.Square("d4"), nil)
	if got := len(ms.Moves); got != 14 {
		t.Errorf("len(Moves) = %d, want 14", got)
	}
}

func TestGeneratePawn(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		square       string
		wantMoves    []string
		wantAttacks  []string
		wantPromotes bool
	}{
		{
			name:      "white double step from start",
			fen:       "8/8/8/8/8/8/4P3/8 w - - 0 1",
			square:    "e2",
			wantMoves: []string{"e3", "e4"},
		},
		{
			name:      "black double step from start",
			fen:       "8/3p4/8/8/8/8/8/8 b - - 0 1",
			square:    "d7",
			wantMoves: []string{"d6", "d5"},
		},
		{
			name:   "blocked directly",
			fen:    "8/8/8/8/8/4n3/4P3/8 w - - 0 1",
			square: "e2",
		},
		{
			name:      "blocked on the second square",
			fen:       "8/8/8/8/4n3/8/4P3/8 w - - 0 1",
			square:    "e2",
			wantMoves: []string{"e3"},
		},
		{
			name:      "moved pawn steps once",
			fen:       "8/8/8/8/8/4P3/8/8 w - - 0 1",
			square:    "e3",
			wantMoves: []string{"e4"},
		},
		{
			name:        "forward piece is not an attack",
			fen:         "8/8/3pp3/4P3/8/8/8/8 w - - 0 1",
			square:      "e5",
			wantAttacks: []string{"d6"},
		},
		{
			name:        "own piece on the diagonal",
			fen:         "8/8/8/8/8/3P1p2/4P3/8 w - - 0 1",
			square:      "e2",
			wantMoves:   []string{"e3", "e4"},
			wantAttacks: []string{"f3"},
		},
		{
			name:         "reaches last rank",
			fen:          "3r4/4P3/8/8/8/8/8/8 w - - 0 1",
			square:       "e7",
			wantMoves:    []string{"e8"},
			wantAttacks:  []string{"d8"},
			wantPromotes: true,
		},
		{
			name:         "black reaches first rank",
			fen:          "8/8/8/8/8/8/p7/8 b - - 0 1",
			square:       "a2",
			wantMoves:    []string{"a1"},
			wantPromotes: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, last := boardFromFEN(t, tt.fen)
			ms := GenerateAt(board, testutil.Square(tt.square), last)
			testutil.AssertSquares(t, ms.Moves, testutil.Squares(tt.wantMoves...), "moves")
			testutil.AssertSquares(t, ms.Attacks, testutil.Squares(tt.wantAttacks...), "attacks")
			if ms.Promotes != tt.wantPromotes {
				t.Errorf("Promotes = %v, want %v", ms.Promotes, tt.wantPromotes)
			}
		})
	}
}

func TestGeneratePawn_MovedFlagBlocksDoubleStep(t *testing.T) {
	board := chess.NewBoard()
	pawn := chess.NewPiece(chess.Pawn, chess.White, testutil.Square("e2"))
	pawn.Moved = true
	board.Place(pawn)

	ms := Generate(pawn, board, nil)
	testutil.AssertSquares(t, ms.Moves, testutil.Squares("e3"))
}

func TestGeneratePawn_EnPassant(t *testing.T) {
	d7d5 := &chess.LastMove{Kind: chess.Pawn, Colour: chess.Black, From: testutil.Square("d7"), To: testutil.Square("d5")}
	d6d5 := &chess.LastMove{Kind: chess.Pawn, Colour: chess.Black, From: testutil.Square("d6"), To: testutil.Square("d5")}
	b7b5 := &chess.LastMove{Kind: chess.Pawn, Colour: chess.Black, From: testutil.Square("b7"), To: testutil.Square("b5")}
	rook := &chess.LastMove{Kind: chess.Rook, Colour: chess.Black, From: testutil.Square("d7"), To: testutil.Square("d5")}

	tests := []struct {
		name string
		fen  string
		last *chess.LastMove
		want []chess.EnPassant
	}{
		{
			name: "after adjacent double push",
			fen:  "8/8/8/1p1pP3/8/8/8/8 w - - 0 1",
			last: d7d5,
			want: []chess.EnPassant{{To: testutil.Square("d6"), Capture: testutil.Square("d5")}},
		},
		{name: "after single step", fen: "8/8/8/3pP3/8/8/8/8 w - - 0 1", last: d6d5},
		{name: "double push not adjacent", fen: "8/8/8/1p2P3/8/8/8/8 w - - 0 1", last: b7b5},
		{name: "not a pawn", fen: "8/8/8/3rP3/8/8/8/8 w - - 0 1", last: rook},
		{name: "no last move", fen: "8/8/8/3pP3/8/8/8/8 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := boardFromFEN(t, tt.fen)
			ms := GenerateAt(board, testutil.Square("e5"), tt.last)
			testutil.AssertEqual(t, ms.EnPassant, tt.want)
			if ms.HasAttack(testutil.Square("d6")) {
				t.Error("en passant destination reported as an ordinary attack")
			}
		})
	}
}

func TestGeneratePawn_EnPassantForBlack(t *testing.T) {
	board, last := boardFromFEN(t, "8/8/8/8/3Pp3/8/8/8 b - d3 0 1")
	ms := GenerateAt(board, testutil.Square("e4"), last)
	want := []chess.EnPassant{{To: testutil.Square("d3"), Capture: testutil.Square("d4")}}
	testutil.AssertEqual(t, ms.EnPassant, want)
	testutil.AssertSquares(t, ms.Moves, testutil.Squares("e3"))
}
