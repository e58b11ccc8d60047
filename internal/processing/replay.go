// Package processing replays move scripts through the room registry and
// analyses the games they produce.
package processing

import (
	"context"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/engine"
	"github.com/lgbarn/duel-chess-go/internal/errors"
	"github.com/lgbarn/duel-chess-go/internal/hashing"
	"github.com/lgbarn/duel-chess-go/internal/parser"
	"github.com/lgbarn/duel-chess-go/internal/room"
	"github.com/lgbarn/duel-chess-go/internal/worker"
)

// StepError records a scripted step the room rejected.
type StepError struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Step   string `json:"step"`
	Err    error  `json:"-"`
	Msg    string `json:"error"`
}

// Report is the result of replaying one script.
type Report struct {
	Name      string          `json:"name"`
	File      string          `json:"file,omitempty"`
	White     string          `json:"white"`
	Black     string          `json:"black"`
	RoomID    string          `json:"room"`
	State     chess.GameState `json:"gameState"`
	Analysis  Analysis        `json:"analysis"`
	FinalKey  string          `json:"-"`
	Duplicate bool            `json:"duplicate,omitempty"`
	Errors    []StepError     `json:"errors,omitempty"`
}

// Outcome returns the outcome of the replayed game.
func (r *Report) Outcome() chess.Outcome {
	return r.State.Outcome
}

// Replayer plays scripts through a shared registry. It is safe for use by
// several goroutines; each script gets its own room.
type Replayer struct {
	registry *room.Registry
	finals   *hashing.ThreadSafeRepetitionTable
}

// NewReplayer creates a replayer. When trackDuplicates is set, reports whose
// final position was already reached by another replayed game are flagged.
func NewReplayer(registry *room.Registry, trackDuplicates bool) *Replayer {
	r := &Replayer{registry: registry}
	if trackDuplicates {
		r.finals = hashing.NewThreadSafeRepetitionTable()
	}
	return r
}

// Replay seats the script's players in a new room and plays every step.
// Rejected steps are collected in the report and replay continues with the
// next step; a failed move never changes the game. The error return is
// reserved for failures to set the room up and for cancellation.
func (r *Replayer) Replay(ctx context.Context, script *parser.Script) (*Report, error) {
	if script.White == script.Black {
		return nil, errors.Wrapf(errors.ErrInvalidNickname, "%s: both players are %q", script.Name, script.White)
	}

	id, err := r.registry.CreateRoom()
	if err != nil {
		return nil, err
	}
	defer r.registry.CloseRoom(id) //nolint:errcheck // room was created above

	for _, nick := range []string{script.White, script.Black} {
		if _, err := r.registry.Join(id, nick); err != nil {
			return nil, errors.Wrapf(err, "%s", script.Name)
		}
	}

	report := &Report{
		Name:   script.Name,
		File:   script.File,
		White:  script.White,
		Black:  script.Black,
		RoomID: id,
	}

	turn := chess.White
	for _, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch step.Kind {
		case parser.ResignStep:
			colour := turn
			if step.Colour != nil {
				colour = *step.Colour
			}
			if _, err := r.registry.Leave(id, r.nickname(script, colour)); err != nil {
				report.addError(step, err)
			}
		default:
			result, err := r.registry.Move(id, r.nickname(script, turn), step.From, step.To, step.Promotion)
			if err != nil {
				report.addError(step, err)
				continue
			}
			turn = result.State.CurrentTurn
		}
	}

	info, err := r.registry.Snapshot(id)
	if err != nil {
		return nil, err
	}
	if info.State != nil {
		report.State = *info.State
	}
	report.Analysis = Analyze(report.State)
	report.FinalKey = FinalPositionKey(report.State)
	if r.finals != nil {
		report.Duplicate = r.finals.Record(report.FinalKey) > 1
	}
	return report, nil
}

// Process adapts Replay to the worker pool.
func (r *Replayer) Process(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	report, err := r.Replay(ctx, item.Script)
	result := worker.ProcessResult{Script: item.Script, Index: item.Index, Error: err}
	if report != nil {
		result.Report = report
	}
	return result
}

// Positions returns how many distinct final positions have been seen.
func (r *Replayer) Positions() int {
	if r.finals == nil {
		return 0
	}
	return r.finals.Positions()
}

func (r *Replayer) nickname(script *parser.Script, colour chess.Colour) string {
	if colour == chess.White {
		return script.White
	}
	return script.Black
}

func (r *Report) addError(step parser.Step, err error) {
	r.Errors = append(r.Errors, StepError{
		Line:   step.Line,
		Column: step.Column,
		Step:   step.String(),
		Err:    err,
		Msg:    err.Error(),
	})
}

// FinalPositionKey returns the repetition key of a snapshot's position.
func FinalPositionKey(state chess.GameState) string {
	return engine.PositionKey(BoardFromState(state), state.CurrentTurn, state.LastMove)
}

// BoardFromState rebuilds a board from a snapshot's piece list.
func BoardFromState(state chess.GameState) *chess.Board {
	board := chess.NewBoard()
	for _, p := range state.Pieces {
		board.Place(chess.NewPiece(p.Kind, p.Colour, p.Position))
	}
	return board
}
