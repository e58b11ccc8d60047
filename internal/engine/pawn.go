package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// generatePawn adds pawn advances, diagonal captures and en passant.
func generatePawn(ms *chess.MoveSet, p chess.Piece, board *chess.Board, last *chess.LastMove) {
	dir := chess.ColourOffset(p.Colour)
	from := p.Square

	// Forward moves never capture.
	one := from.Offset(0, dir)
	if board.IsEmpty(one) {
		ms.Moves = append(ms.Moves, one)

		two := from.Offset(0, 2*dir)
		if !p.Moved && from.Rank == chess.PawnStartRank(p.Colour) && board.IsEmpty(two) {
			ms.Moves = append(ms.Moves, two)
		}
	}

	// Diagonals are attacks only.
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if target, ok := board.Get(to); ok && target.Colour != p.Colour {
			ms.Attacks = append(ms.Attacks, to)
		}
	}

	if ep, ok := enPassantFor(p, board, last); ok {
		ms.EnPassant = append(ms.EnPassant, ep)
	}

	ms.Promotes = reachesPromotionRank(ms, p.Colour)
}

// enPassantFor returns the en passant capture available to p, if the last
// move was an opposing double push landing beside it.
func enPassantFor(p chess.Piece, board *chess.Board, last *chess.LastMove) (chess.EnPassant, bool) {
	if !last.IsDoublePawnPush() || last.Colour == p.Colour {
		return chess.EnPassant{}, false
	}
	if last.To.Rank != p.Square.Rank || abs(last.To.File-p.Square.File) != 1 {
		return chess.EnPassant{}, false
	}

	victim, ok := board.Get(last.To)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == p.Colour {
		return chess.EnPassant{}, false
	}

	to := chess.Sq(last.To.File, p.Square.Rank+chess.ColourOffset(p.Colour))
	if !board.IsEmpty(to) {
		return chess.EnPassant{}, false
	}
	return chess.EnPassant{To: to, Capture: last.To}, true
}

// reachesPromotionRank reports whether any generated destination is on the
// colour's last rank.
func reachesPromotionRank(ms *chess.MoveSet, colour chess.Colour) bool {
	rank := chess.PromotionRank(colour)
	for _, sq := range ms.Moves {
		if sq.Rank == rank {
			return true
		}
	}
	for _, sq := range ms.Attacks {
		if sq.Rank == rank {
			return true
		}
	}
	for _, ep := range ms.EnPassant {
		if ep.To.Rank == rank {
			return true
		}
	}
	return false
}
