package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// RepetitionLimit is the occurrence count that draws by repetition.
const RepetitionLimit = 3

// HasInsufficientMaterial returns true if the position has insufficient
// mating material. Only two cases are recognised:
// - K vs K
// - K+B vs K or K+N vs K (either colour)
// Other dead positions such as K+N+N vs K are played on.
func HasInsufficientMaterial(board *chess.Board) bool {
	var others []chess.Piece
	for _, p := range board.Pieces() {
		// Kings don't count for material
		if p.Kind == chess.King {
			continue
		}
		others = append(others, p)
		if len(others) > 1 {
			return false
		}
	}

	if len(others) == 0 {
		return true
	}
	return others[0].Kind.IsMinor()
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, last *chess.LastMove) bool {
	return IsInCheck(board, colour, last) && !HasLegalMoves(board, colour, last)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, last *chess.LastMove) bool {
	return !IsInCheck(board, colour, last) && !HasLegalMoves(board, colour, last)
}

// evaluateTerminal applies the end-of-game rules in order, first match wins.
// toMove is the side to move after the switch; a checkmate is credited to its
// opponent. count records the current position and returns its occurrences.
func evaluateTerminal(board *chess.Board, toMove chess.Colour, last *chess.LastMove, halfmoveClock int, count func() int) chess.Outcome {
	if halfmoveClock >= FiftyMoveLimit {
		return chess.DrawOutcome(chess.ReasonFiftyMove)
	}

	if count() >= RepetitionLimit {
		return chess.DrawOutcome(chess.ReasonRepetition)
	}

	if HasInsufficientMaterial(board) {
		return chess.DrawOutcome(chess.ReasonInsufficientMaterial)
	}

	if !HasLegalMoves(board, toMove, last) {
		if IsInCheck(board, toMove, last) {
			return chess.WinOutcome(chess.Checkmate, toMove.Opposite(), chess.ReasonCheckmate)
		}
		return chess.DrawOutcome(chess.ReasonStalemate)
	}

	return chess.Outcome{Status: chess.InProgress}
}
