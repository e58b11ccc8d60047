package engine

import "github.com/lgbarn/duel-chess-go/internal/chess"

// Direction and offset tables, as (file, rank) deltas.
var (
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// generateSlides walks each ray outward from p until the edge or the first
// occupied square. An opposing occupant is recorded as an attack.
func generateSlides(ms *chess.MoveSet, p chess.Piece, board *chess.Board, dirs [][2]int) {
	for _, dir := range dirs {
		to := p.Square.Offset(dir[0], dir[1])
		for to.InBounds() {
			target, occupied := board.Get(to)
			if occupied {
				if target.Colour != p.Colour {
					ms.Attacks = append(ms.Attacks, to)
				}
				break // Blocked
			}
			ms.Moves = append(ms.Moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
}

// generateSteps handles the non-sliding knight and king patterns.
func generateSteps(ms *chess.MoveSet, p chess.Piece, board *chess.Board, offsets [][2]int) {
	for _, offset := range offsets {
		to := p.Square.Offset(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		target, occupied := board.Get(to)
		switch {
		case !occupied:
			ms.Moves = append(ms.Moves, to)
		case target.Colour != p.Colour:
			ms.Attacks = append(ms.Attacks, to)
		}
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
