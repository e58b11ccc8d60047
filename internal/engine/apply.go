package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// applyMove plays piece to its destination on board without any legality
// check. epCapture, when set, is the square of a pawn taken en passant.
// A pawn reaching its last rank becomes promotion. It returns the captured
// piece, if any.
func applyMove(board *chess.Board, piece chess.Piece, to chess.Square, epCapture *chess.Square, promotion chess.Kind) (chess.Piece, bool) {
	var captured chess.Piece
	var took bool

	if epCapture != nil {
		captured, took = board.Remove(*epCapture)
	}
	if p, ok := board.Remove(to); ok {
		captured, took = p, true
	}

	board.Remove(piece.Square)
	piece.Moved = true
	if piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(piece.Colour) && promotion.IsPromotion() {
		piece.Kind = promotion
	}
	board.PlaceAt(piece, to)

	return captured, took
}

// lastMoveFor builds the LastMove describing piece moving to to.
func lastMoveFor(piece chess.Piece, to chess.Square) *chess.LastMove {
	return &chess.LastMove{
		Kind:   piece.Kind,
		Colour: piece.Colour,
		From:   piece.Square,
		To:     to,
	}
}
