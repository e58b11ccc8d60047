package output

import (
	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/processing"
)

// JSONReport represents a replayed game in JSON format.
type JSONReport struct {
	Name      string                 `json:"name"`
	File      string                 `json:"file,omitempty"`
	White     string                 `json:"white"`
	Black     string                 `json:"black"`
	Outcome   chess.Outcome          `json:"outcome"`
	Turn      chess.Colour           `json:"currentTurn"`
	LastMove  *chess.LastMove        `json:"lastMove"`
	Pieces    []chess.PieceView      `json:"pieces"`
	History   []chess.MoveRecord     `json:"moveHistory,omitempty"`
	Analysis  processing.Analysis    `json:"analysis"`
	Duplicate bool                   `json:"duplicate,omitempty"`
	Errors    []processing.StepError `json:"errors,omitempty"`
}

// JSONFailure is a script that could not be replayed.
type JSONFailure struct {
	Script string `json:"script"`
	Error  string `json:"error"`
}

// JSONOutput is the complete document written by JSONWriter.
type JSONOutput struct {
	Games    []*JSONReport      `json:"games"`
	Failures []JSONFailure      `json:"failures,omitempty"`
	Summary  processing.Summary `json:"summary"`
}

// ReportToJSON converts a report to its JSON representation.
func ReportToJSON(r *processing.Report, cfg *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Name:      r.Name,
		File:      r.File,
		White:     r.White,
		Black:     r.Black,
		Outcome:   r.State.Outcome,
		Turn:      r.State.CurrentTurn,
		LastMove:  r.State.LastMove,
		Pieces:    r.State.Pieces,
		Analysis:  r.Analysis,
		Duplicate: r.Duplicate,
		Errors:    r.Errors,
	}
	if cfg.KeepHistory {
		jr.History = r.State.MoveHistory
	}
	return jr
}
