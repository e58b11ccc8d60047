package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// Perft counts the leaf positions reachable in depth plies from a position.
// Promotions are played to a queen only, so a promotion square counts once.
func Perft(board *chess.Board, toMove chess.Colour, last *chess.LastMove, depth int) int {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return CountLegalMoves(board, toMove, last)
	}

	nodes := 0
	for _, p := range board.PiecesOf(toMove) {
		legal := LegalMoves(board, p.Square, last)
		for _, to := range append(legal.Moves, legal.Attacks...) {
			nodes += perftChild(board, p, to, nil, depth)
		}
		for _, ep := range legal.EnPassant {
			capture := ep.Capture
			nodes += perftChild(board, p, ep.To, &capture, depth)
		}
	}
	return nodes
}

func perftChild(board *chess.Board, p chess.Piece, to chess.Square, epCapture *chess.Square, depth int) int {
	child := board.Copy()
	applyMove(child, p, to, epCapture, chess.Queen)
	return Perft(child, p.Colour.Opposite(), lastMoveFor(p, to), depth-1)
}

// Perft counts leaf positions from the current game position.
func (g *Game) Perft(depth int) int {
	return Perft(g.board, g.turn, g.lastMove, depth)
}
