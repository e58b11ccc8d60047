// Package engine provides chess move generation, legality checking and the
// game state machine.
package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// Generate returns the candidate destinations for p on board. The result is
// not filtered for king safety and does not depend on whose turn it is.
// last authorises en passant and may be nil.
func Generate(p chess.Piece, board *chess.Board, last *chess.LastMove) chess.MoveSet {
	var ms chess.MoveSet

	switch p.Kind {
	case chess.Pawn:
		generatePawn(&ms, p, board, last)
	case chess.Knight:
		generateSteps(&ms, p, board, knightOffsets)
	case chess.Bishop:
		generateSlides(&ms, p, board, diagonalDirs)
	case chess.Rook:
		generateSlides(&ms, p, board, straightDirs)
	case chess.Queen:
		generateSlides(&ms, p, board, diagonalDirs)
		generateSlides(&ms, p, board, straightDirs)
	case chess.King:
		generateSteps(&ms, p, board, kingOffsets)
	}

	return ms
}

// GenerateAt generates candidates for the piece on sq.
func GenerateAt(board *chess.Board, sq chess.Square, last *chess.LastMove) chess.MoveSet {
	p, ok := board.Get(sq)
	if !ok {
		return chess.MoveSet{}
	}
	return Generate(p, board, last)
}
