package processing

import "github.com/lgbarn/duel-chess-go/internal/chess"

// Analysis holds features found by scanning a finished game's history.
type Analysis struct {
	Plies             int  `json:"plies"`
	Captures          int  `json:"captures"`
	EnPassant         int  `json:"enPassant"`
	Promotions        int  `json:"promotions"`
	HasUnderpromotion bool `json:"underpromotion,omitempty"`
	HasFiftyMoveRule  bool `json:"fiftyMoveRule,omitempty"`
	HasRepetition     bool `json:"repetition,omitempty"`
	HasInsufficient   bool `json:"insufficientMaterial,omitempty"`
}

// Analyze scans a snapshot's move history and outcome.
func Analyze(state chess.GameState) Analysis {
	a := Analysis{Plies: state.PlyCount()}
	for i := range state.MoveHistory {
		m := &state.MoveHistory[i]
		if m.IsCapture() {
			a.Captures++
		}
		if m.EnPassantCaptured != nil {
			a.EnPassant++
		}
		if m.IsPromotion() {
			a.Promotions++
			if m.Promotion != chess.Queen {
				a.HasUnderpromotion = true
			}
		}
	}

	switch state.Outcome.Reason {
	case chess.ReasonFiftyMove:
		a.HasFiftyMoveRule = true
	case chess.ReasonRepetition:
		a.HasRepetition = true
	case chess.ReasonInsufficientMaterial:
		a.HasInsufficient = true
	}
	return a
}
