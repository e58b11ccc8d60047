package chess

// Status is the state of a game: in progress or one of the absorbing
// terminal states.
type Status int

const (
	InProgress Status = iota
	Draw
	Checkmate
	Resigned
)

var statusNames = [...]string{"in-progress", "draw", "checkmate", "resigned"}

// String returns the string representation of a status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reasons reported with an Outcome.
const (
	ReasonFiftyMove            = "fifty-move rule"
	ReasonRepetition           = "threefold repetition"
	ReasonInsufficientMaterial = "insufficient material"
	ReasonStalemate            = "stalemate"
	ReasonCheckmate            = "checkmate"
	ReasonResignation          = "resignation"
)

// Outcome is the evaluated state of a game.
type Outcome struct {
	Status Status  `json:"status"`
	Winner *Colour `json:"winner,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

// IsOver reports whether the outcome is terminal.
func (o Outcome) IsOver() bool {
	return o.Status != InProgress
}

// DrawOutcome creates a drawn outcome with the given reason.
func DrawOutcome(reason string) Outcome {
	return Outcome{Status: Draw, Reason: reason}
}

// WinOutcome creates a decisive outcome.
func WinOutcome(status Status, winner Colour, reason string) Outcome {
	return Outcome{Status: status, Winner: &winner, Reason: reason}
}

// PieceView is the serialisable form of a piece in a GameState.
type PieceView struct {
	Kind     Kind   `json:"type"`
	Colour   Colour `json:"color"`
	Position Square `json:"position"`
}

// GameState is a snapshot of a game. It never aliases live engine state.
type GameState struct {
	CurrentTurn Colour       `json:"currentTurn"`
	LastMove    *LastMove    `json:"lastMove"`
	Pieces      []PieceView  `json:"pieces"`
	MoveHistory []MoveRecord `json:"moveHistory"`
	Outcome     Outcome      `json:"outcome"`
}

// PlyCount returns the number of half-moves played.
func (s *GameState) PlyCount() int {
	return len(s.MoveHistory)
}

// PieceAt returns the piece view on sq, if any.
func (s *GameState) PieceAt(sq Square) (PieceView, bool) {
	for _, p := range s.Pieces {
		if p.Position == sq {
			return p, true
		}
	}
	return PieceView{}, false
}
