package engine

import (
	stderrors "errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/errors"
	"github.com/lgbarn/duel-chess-go/internal/testutil"
)

func TestDefaultRegistry_Validate(t *testing.T) {
	r := DefaultRegistry()
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if len(r) != 6 {
		t.Errorf("len(DefaultRegistry()) = %d, want 6", len(r))
	}
}

func TestRegistry_ValidateReportsEveryMissingKind(t *testing.T) {
	r := DefaultRegistry()
	delete(r, chess.Bishop)
	delete(r, chess.King)

	err := r.Validate()
	testutil.AssertErrorIs(t, err, errors.ErrMissingConstructor)

	var merr *multierror.Error
	if !stderrors.As(err, &merr) {
		t.Fatalf("Validate() error %T is not a *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("Validate() reported %d errors, want 2", len(merr.Errors))
	}
	testutil.AssertContains(t, err.Error(), "bishop")
	testutil.AssertContains(t, err.Error(), "king")
}

func TestRegistry_NewForcesIdentity(t *testing.T) {
	r := Registry{
		chess.Rook: func(colour chess.Colour, sq chess.Square) chess.Piece {
			// A careless constructor returning the wrong identity.
			return chess.Piece{Kind: chess.Queen, Colour: colour.Opposite(), Square: chess.Sq(0, 0), Moved: true}
		},
	}

	sq := testutil.Square("h8")
	p, err := r.New(chess.Rook, chess.Black, sq)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if p.Kind != chess.Rook || p.Colour != chess.Black || p.Square != sq {
		t.Errorf("New() = %+v, want black rook on h8", p)
	}
	if !p.Moved {
		t.Error("New() dropped constructor-set flags")
	}

	_, err = r.New(chess.Pawn, chess.White, sq)
	testutil.AssertErrorIs(t, err, errors.ErrMissingConstructor)
}
