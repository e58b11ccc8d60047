package engine

import (
	"math/rand"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/testutil"
)

type squarePair struct {
	from, to chess.Square
}

// TestRandomPlayouts_MatchReference plays seeded random games and checks at
// every ply that the legal (from, to) pairs agree with an independent rules
// implementation. Castling is filtered from the reference; promotions are
// collapsed to a single queen move.
func TestRandomPlayouts_MatchReference(t *testing.T) {
	games := 12
	if testing.Short() {
		games = 3
	}
	rng := rand.New(rand.NewSource(1848))

	for i := 0; i < games; i++ {
		g := newClassicGame(t)
		ref := nchess.NewGame()

		for ply := 1; ply <= 160; ply++ {
			if g.Outcome().IsOver() || ref.Outcome() != nchess.NoOutcome {
				break
			}

			refMoves := referenceMoves(ref)
			ours := legalPairs(g)

			if len(ours) != len(refMoves) {
				t.Fatalf("game %d ply %d: %d legal moves, reference %d\nFEN %s",
					i, ply, len(ours), len(refMoves), ref.Position().String())
			}
			for _, pair := range ours {
				if _, ok := refMoves[pair]; !ok {
					t.Fatalf("game %d ply %d: %s-%s not legal in reference\nFEN %s",
						i, ply, pair.from, pair.to, ref.Position().String())
				}
			}

			pick := ours[rng.Intn(len(ours))]
			if _, err := g.MakeMove(pick.from, pick.to, chess.Queen); err != nil {
				t.Fatalf("game %d ply %d: MakeMove(%s-%s) error: %v", i, ply, pick.from, pick.to, err)
			}
			if err := ref.Move(refMoves[pick]); err != nil {
				t.Fatalf("game %d ply %d: reference Move error: %v", i, ply, err)
			}
		}
	}
}

// TestMate_MatchesReference checks both engines agree on a checkmate.
func TestMate_MatchesReference(t *testing.T) {
	g := newClassicGame(t)
	ref := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))

	for _, move := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		mustPlay(t, g, move)
		if err := ref.MoveStr(move); err != nil {
			t.Fatalf("reference MoveStr(%s) error: %v", move, err)
		}
	}

	if ref.Method() != nchess.Checkmate || ref.Outcome() != nchess.BlackWon {
		t.Fatalf("reference outcome %s by %s, want black mate", ref.Outcome(), ref.Method())
	}
	out := g.Outcome()
	if out.Status != chess.Checkmate || out.Winner == nil || *out.Winner != chess.Black {
		t.Errorf("Outcome = %+v, want black checkmate", out)
	}
}

func legalPairs(g *Game) []squarePair {
	var pairs []squarePair
	for _, p := range g.Board().PiecesOf(g.Turn()) {
		for _, to := range g.LegalMovesFor(p.Square).Destinations() {
			pairs = append(pairs, squarePair{from: p.Square, to: to})
		}
	}
	return pairs
}

func referenceMoves(g *nchess.Game) map[squarePair]*nchess.Move {
	moves := make(map[squarePair]*nchess.Move)
	for _, m := range g.ValidMoves() {
		if m.HasTag(nchess.KingSideCastle) || m.HasTag(nchess.QueenSideCastle) {
			continue
		}
		if m.Promo() != nchess.NoPieceType && m.Promo() != nchess.Queen {
			continue
		}
		pair := squarePair{from: referenceSquare(m.S1()), to: referenceSquare(m.S2())}
		moves[pair] = m
	}
	return moves
}

func referenceSquare(sq nchess.Square) chess.Square {
	return chess.Sq(int(sq.File()), int(sq.Rank()))
}

func TestReferenceSquare(t *testing.T) {
	testutil.AssertEqual(t, referenceSquare(nchess.E4), testutil.Square("e4"))
	testutil.AssertEqual(t, referenceSquare(nchess.A1), testutil.Square("a1"))
	testutil.AssertEqual(t, referenceSquare(nchess.H8), testutil.Square("h8"))
}
