package engine

import (
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/errors"
	"github.com/lgbarn/duel-chess-go/internal/hashing"
)

// Game is the state machine for one game. It owns the board, side to move,
// last move, history, half-move clock and repetition counts.
//
// A Game is not safe for concurrent use; callers must serialise moves.
type Game struct {
	board         *chess.Board
	turn          chess.Colour
	lastMove      *chess.LastMove
	history       []chess.MoveRecord
	halfmoveClock int
	positions     *hashing.RepetitionTable
	outcome       chess.Outcome

	registry         Registry
	defaultPromotion chess.Kind
}

// MoveResult is returned for an accepted move.
type MoveResult struct {
	Record  chess.MoveRecord `json:"move"`
	State   chess.GameState  `json:"gameState"`
	Outcome chess.Outcome    `json:"outcome"`
}

// GameOver reports whether the move ended the game.
func (r *MoveResult) GameOver() bool {
	return r.Outcome.IsOver()
}

// Option configures a Game.
type Option func(*Game)

// WithRegistry sets the piece constructors used for setup and promotion.
func WithRegistry(r Registry) Option {
	return func(g *Game) {
		g.registry = r
	}
}

// WithDefaultPromotion sets the kind used when a promotion choice is missing
// or not one of queen, rook, bishop and knight.
func WithDefaultPromotion(kind chess.Kind) Option {
	return func(g *Game) {
		g.defaultPromotion = kind
	}
}

// NewGame creates a game with an empty board, White to move.
// Call InitClassicSetup or SetupPosition before making moves.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		board:            chess.NewBoard(),
		turn:             chess.White,
		positions:        hashing.NewRepetitionTable(),
		registry:         DefaultRegistry(),
		defaultPromotion: chess.Queen,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.registry.Validate(); err != nil {
		return nil, err
	}
	if !g.defaultPromotion.IsPromotion() {
		return nil, fmt.Errorf("default promotion %q: %w", g.defaultPromotion, errors.ErrInvalidConfig)
	}

	// Own a private copy so later changes to the caller's map cannot remove
	// a constructor we validated.
	registry := make(Registry, len(g.registry))
	for k, ctor := range g.registry {
		registry[k] = ctor
	}
	g.registry = registry

	return g, nil
}

// reset clears the board and all per-game state.
func (g *Game) reset() {
	g.board.Clear()
	g.turn = chess.White
	g.lastMove = nil
	g.history = nil
	g.halfmoveClock = 0
	g.positions.Reset()
	g.outcome = chess.Outcome{Status: chess.InProgress}
}

// InitClassicSetup places the standard 32-piece starting position with
// White to move and returns the resulting state.
func (g *Game) InitClassicSetup() chess.GameState {
	g.reset()

	for file := 0; file < chess.BoardSize; file++ {
		g.board.Place(g.newPiece(chess.BackRank[file], chess.White, chess.Sq(file, 0)))
		g.board.Place(g.newPiece(chess.Pawn, chess.White, chess.Sq(file, 1)))
		g.board.Place(g.newPiece(chess.Pawn, chess.Black, chess.Sq(file, chess.LastIndex-1)))
		g.board.Place(g.newPiece(chess.BackRank[file], chess.Black, chess.Sq(file, chess.LastIndex)))
	}

	g.recordPosition()
	return g.GameState()
}

// SetupPosition replaces the board with pieces and sets the side to move.
// last, if non-nil, is treated as the move that led to the position, so it
// can open an en passant window. The position is evaluated immediately, so a
// setup that is already stalemate or a dead draw reports it in Outcome.
func (g *Game) SetupPosition(pieces []chess.Piece, toMove chess.Colour, last *chess.LastMove) error {
	return g.setup(pieces, toMove, last, 0)
}

func (g *Game) setup(pieces []chess.Piece, toMove chess.Colour, last *chess.LastMove, halfmoveClock int) error {
	board := chess.NewBoard()
	kings := map[chess.Colour]int{}

	for _, p := range pieces {
		if !p.Square.InBounds() {
			return fmt.Errorf("piece off board at %s: %w", p.Square, errors.ErrInvalidPosition)
		}
		if p.Kind <= chess.NoKind || p.Kind >= chess.NumKinds {
			return fmt.Errorf("unknown piece kind at %s: %w", p.Square, errors.ErrInvalidPosition)
		}
		if !board.IsEmpty(p.Square) {
			return fmt.Errorf("two pieces on %s: %w", p.Square, errors.ErrInvalidPosition)
		}
		placed := g.newPiece(p.Kind, p.Colour, p.Square)
		placed.Moved = p.Moved
		board.Place(placed)
		if p.Kind == chess.King {
			kings[p.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, kings[colour], errors.ErrInvalidPosition)
		}
	}
	if IsInCheck(board, toMove.Opposite(), last) {
		return fmt.Errorf("%s is in check but not to move: %w", toMove.Opposite(), errors.ErrInvalidPosition)
	}

	g.reset()
	*g.board = *board
	g.turn = toMove
	g.halfmoveClock = halfmoveClock
	if last != nil {
		lm := *last
		g.lastMove = &lm
	}
	g.refreshPawnFlags()
	g.outcome = evaluateTerminal(g.board, g.turn, g.lastMove, g.halfmoveClock, g.recordPosition)
	return nil
}

// PieceAt returns a copy of the piece on sq.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return g.board.Get(sq)
}

// LegalMovesFor returns the legal destinations of the piece on sq.
func (g *Game) LegalMovesFor(sq chess.Square) chess.MoveSet {
	return LegalMoves(g.board, sq, g.lastMove)
}

// MakeMove validates and plays a move. On failure the returned error wraps
// one of ErrGameOver, ErrNoPieceAtSquare, ErrWrongTurn or
// ErrIllegalDestination in a *errors.MoveError and no state has changed.
// An invalid promotion kind is replaced by the default promotion.
func (g *Game) MakeMove(from, to chess.Square, promotion chess.Kind) (*MoveResult, error) {
	ply := len(g.history) + 1

	if g.outcome.IsOver() {
		return nil, moveError(errors.ErrGameOver, ply, from, to)
	}

	piece, ok := g.board.Get(from)
	if !ok {
		return nil, moveError(errors.ErrNoPieceAtSquare, ply, from, to)
	}
	if piece.Colour != g.turn {
		return nil, moveError(errors.ErrWrongTurn, ply, from, to)
	}

	legal := g.LegalMovesFor(from)
	isAttack := legal.HasAttack(to)
	ep, isEnPassant := legal.FindEnPassant(to)
	if !legal.HasMove(to) && !isAttack && !isEnPassant {
		return nil, moveError(errors.ErrIllegalDestination, ply, from, to)
	}

	// Build the promoted piece before the first write.
	var promoted *chess.Piece
	if piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(piece.Colour) {
		p := g.newPiece(g.promotionChoice(promotion), piece.Colour, to)
		p.Moved = true
		promoted = &p
	}

	record := chess.MoveRecord{
		Kind:   piece.Kind,
		Colour: piece.Colour,
		From:   from,
		To:     to,
	}

	if isAttack {
		if captured, ok := g.board.Remove(to); ok {
			record.Captured = &chess.PieceInfo{Kind: captured.Kind, Colour: captured.Colour}
		}
	}
	if isEnPassant {
		if captured, ok := g.board.Remove(ep.Capture); ok {
			record.EnPassantCaptured = &chess.PieceInfo{Kind: captured.Kind, Colour: captured.Colour}
		}
	}

	g.board.Remove(from)
	piece.Moved = true
	g.board.PlaceAt(piece, to)

	if piece.Kind == chess.Pawn || record.IsCapture() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}

	if promoted != nil {
		g.board.Place(*promoted)
		record.Promotion = promoted.Kind
	}

	g.lastMove = lastMoveFor(piece, to)
	g.history = append(g.history, record)
	g.turn = g.turn.Opposite()
	g.refreshPawnFlags()

	g.outcome = evaluateTerminal(g.board, g.turn, g.lastMove, g.halfmoveClock, g.recordPosition)

	return &MoveResult{
		Record:  record.Clone(),
		State:   g.GameState(),
		Outcome: g.outcome,
	}, nil
}

// Resign ends an in-progress game in favour of colour's opponent. It is also
// used when a player disconnects. A finished game keeps its outcome.
func (g *Game) Resign(colour chess.Colour) chess.Outcome {
	if !g.outcome.IsOver() {
		g.outcome = chess.WinOutcome(chess.Resigned, colour.Opposite(), chess.ReasonResignation)
	}
	return g.outcome
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Outcome returns the current game outcome.
func (g *Game) Outcome() chess.Outcome {
	return g.outcome
}

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.board, g.turn, g.lastMove)
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.positions.Count(PositionKey(g.board, g.turn, g.lastMove))
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// recordPosition counts the current position and returns its occurrences.
func (g *Game) recordPosition() int {
	return g.positions.Record(PositionKey(g.board, g.turn, g.lastMove))
}

// refreshPawnFlags recomputes every pawn's promotion eligibility.
func (g *Game) refreshPawnFlags() {
	for _, p := range g.board.Pieces() {
		if p.Kind != chess.Pawn {
			continue
		}
		p.PromotionEligible = Generate(p, g.board, g.lastMove).Promotes
		g.board.Place(p)
	}
}

// promotionChoice coerces a requested promotion kind to a legal one.
func (g *Game) promotionChoice(kind chess.Kind) chess.Kind {
	if kind.IsPromotion() {
		return kind
	}
	return g.defaultPromotion
}

// newPiece builds a piece through the registry. NewGame validated that every
// kind has a constructor, so the lookup cannot fail.
func (g *Game) newPiece(kind chess.Kind, colour chess.Colour, sq chess.Square) chess.Piece {
	p, err := g.registry.New(kind, colour, sq)
	if err != nil {
		return chess.NewPiece(kind, colour, sq)
	}
	return p
}

func moveError(err error, ply int, from, to chess.Square) error {
	return &errors.MoveError{
		Err:  err,
		Ply:  ply,
		From: from.String(),
		To:   to.String(),
	}
}
