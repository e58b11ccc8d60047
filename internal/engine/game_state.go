package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// GameState returns a snapshot of the game. The snapshot shares no memory
// with the live game.
func (g *Game) GameState() chess.GameState {
	pieces := g.board.Pieces()
	views := make([]chess.PieceView, len(pieces))
	for i, p := range pieces {
		views[i] = chess.PieceView{
			Kind:     p.Kind,
			Colour:   p.Colour,
			Position: p.Square,
		}
	}

	history := make([]chess.MoveRecord, len(g.history))
	for i, rec := range g.history {
		history[i] = rec.Clone()
	}

	var last *chess.LastMove
	if g.lastMove != nil {
		lm := *g.lastMove
		last = &lm
	}

	outcome := g.outcome
	if outcome.Winner != nil {
		w := *outcome.Winner
		outcome.Winner = &w
	}

	return chess.GameState{
		CurrentTurn: g.turn,
		LastMove:    last,
		Pieces:      views,
		MoveHistory: history,
		Outcome:     outcome,
	}
}

// History returns a copy of the move history.
func (g *Game) History() []chess.MoveRecord {
	return g.GameState().MoveHistory
}

// LastMove returns a copy of the last move, or nil before the first move.
func (g *Game) LastMove() *chess.LastMove {
	if g.lastMove == nil {
		return nil
	}
	lm := *g.lastMove
	return &lm
}
