package chess

import "fmt"

// Square is a (file, rank) board coordinate, each in [0, BoardSize).
// File 0 is the a-file and rank 0 is White's back rank.
type Square struct {
	File int `json:"x"`
	Rank int `json:"y"`
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String renders the square as a1..h8, or "(x,y)" when off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts a square name such as "e4" to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file := name[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, true
}
