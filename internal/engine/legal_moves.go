package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// LegalMoves returns the candidates of the piece on from that do not leave
// its own king attacked. An empty square yields an empty set.
func LegalMoves(board *chess.Board, from chess.Square, last *chess.LastMove) chess.MoveSet {
	piece, ok := board.Get(from)
	if !ok {
		return chess.MoveSet{}
	}

	possible := Generate(piece, board, last)
	legal := chess.MoveSet{Promotes: possible.Promotes}

	for _, to := range possible.Moves {
		if tryMove(board, piece, to, nil, last) {
			legal.Moves = append(legal.Moves, to)
		}
	}
	for _, to := range possible.Attacks {
		if tryMove(board, piece, to, nil, last) {
			legal.Attacks = append(legal.Attacks, to)
		}
	}
	for _, ep := range possible.EnPassant {
		capture := ep.Capture
		if tryMove(board, piece, ep.To, &capture, last) {
			legal.EnPassant = append(legal.EnPassant, ep)
		}
	}

	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, last *chess.LastMove) bool {
	for _, p := range board.PiecesOf(colour) {
		if !LegalMoves(board, p.Square, last).IsEmpty() {
			return true
		}
	}
	return false
}

// CountLegalMoves returns the number of legal destinations for colour.
func CountLegalMoves(board *chess.Board, colour chess.Colour, last *chess.LastMove) int {
	n := 0
	for _, p := range board.PiecesOf(colour) {
		n += LegalMoves(board, p.Square, last).Len()
	}
	return n
}

// tryMove makes a move on a copied board and checks if it leaves the king
// in check. epCapture, when set, is the square of a pawn taken en passant.
func tryMove(board *chess.Board, piece chess.Piece, to chess.Square, epCapture *chess.Square, last *chess.LastMove) bool {
	testBoard := board.Copy()
	applyMove(testBoard, piece, to, epCapture, chess.NoKind)
	return !IsInCheck(testBoard, piece.Colour, last)
}
