// Package errors provides sentinel errors and error types for the chess engine
// and its collaborators. It defines common failure conditions and structured
// error types that preserve context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtSquare indicates a move requested from an empty square.
	ErrNoPieceAtSquare = errors.New("no piece at square")

	// ErrWrongTurn indicates the piece or player is not the side to move.
	ErrWrongTurn = errors.New("not your turn")

	// ErrIllegalDestination indicates a destination outside the legal move set.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrGameOver indicates a move after the game reached a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrMissingConstructor indicates the piece registry lacks a kind.
	ErrMissingConstructor = errors.New("missing piece constructor")

	// ErrInvalidPosition indicates a setup that breaks board invariants.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates a malformed move script.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnknownRoom indicates a room id that is not registered.
	ErrUnknownRoom = errors.New("unknown room")

	// ErrRoomFull indicates a room that already seats two players.
	ErrRoomFull = errors.New("room is full")

	// ErrNotSeated indicates a nickname that holds no seat in the room.
	ErrNotSeated = errors.New("player is not seated")

	// ErrGameNotStarted indicates a room still waiting for its second player.
	ErrGameNotStarted = errors.New("game has not started")

	// ErrInvalidNickname indicates an empty or over-long nickname.
	ErrInvalidNickname = errors.New("invalid nickname")
)

// MoveError wraps a move rejection with ply and square context. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move would have been (0 if not applicable)
	From string // Source square name
	To   string // Destination square name
	Room string // Room id (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Room != "" {
		parts = append(parts, fmt.Sprintf("room %s", e.Room))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move rejected"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move script error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
