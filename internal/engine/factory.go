package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// Constructor builds a new piece of one kind.
type Constructor func(colour chess.Colour, sq chess.Square) chess.Piece

// Registry maps each piece kind to its constructor. A game is given a
// registry at construction; setup and promotion create pieces only through it.
type Registry map[chess.Kind]Constructor

// DefaultRegistry returns a registry building plain unmoved pieces for all
// six kinds.
func DefaultRegistry() Registry {
	r := make(Registry, chess.NumKinds-1)
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		k := kind
		r[k] = func(colour chess.Colour, sq chess.Square) chess.Piece {
			return chess.NewPiece(k, colour, sq)
		}
	}
	return r
}

// Validate reports every kind without a constructor.
func (r Registry) Validate() error {
	var result error
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if r[kind] == nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", kind, errors.ErrMissingConstructor))
		}
	}
	return result
}

// New builds a piece of the given kind, forcing kind, colour and square so a
// constructor cannot break board invariants.
func (r Registry) New(kind chess.Kind, colour chess.Colour, sq chess.Square) (chess.Piece, error) {
	ctor := r[kind]
	if ctor == nil {
		return chess.Piece{}, fmt.Errorf("%s: %w", kind, errors.ErrMissingConstructor)
	}
	p := ctor(colour, sq)
	p.Kind = kind
	p.Colour = colour
	p.Square = sq
	return p, nil
}
