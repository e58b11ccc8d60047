package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour, last *chess.LastMove) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite(), last)
}

// IsSquareAttacked returns true if any piece of byColour can capture on sq.
// Attackers are taken from the unfiltered generator, so a pinned piece
// still attacks.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, last *chess.LastMove) bool {
	for _, p := range board.PiecesOf(byColour) {
		ms := Generate(p, board, last)
		if ms.HasAttack(sq) {
			return true
		}
		if _, ok := ms.FindEnPassant(sq); ok {
			return true
		}
	}
	return false
}
