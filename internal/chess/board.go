package chess

// Piece is a piece on the board. Square is the authoritative location; the
// board stamps it whenever the piece is placed.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square

	// Moved is set once the piece has made a move. For pawns it gates the
	// two-square advance.
	Moved bool

	// PromotionEligible is set by pawn move generation whenever a generated
	// destination lands on the colour's last rank.
	PromotionEligible bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Kind: kind, Colour: colour, Square: sq}
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Board is the 8x8 grid of optional occupants, indexed [file][rank].
// The zero value is an empty board. Copying a Board value copies every square.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at sq. The boolean is false for empty or
// off-board squares.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.InBounds() {
		return Piece{}, false
	}
	p := b.Squares[sq.File][sq.Rank]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether an on-board square has no occupant.
// Off-board squares are not empty.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.Squares[sq.File][sq.Rank].IsEmpty()
}

// Place puts p on p.Square, replacing any occupant.
func (b *Board) Place(p Piece) {
	if !p.Square.InBounds() || p.IsEmpty() {
		return
	}
	b.Squares[p.Square.File][p.Square.Rank] = p
}

// PlaceAt moves p to sq, stamping its square.
func (b *Board) PlaceAt(p Piece, sq Square) Piece {
	p.Square = sq
	b.Place(p)
	return p
}

// Remove clears sq and returns the previous occupant.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.Get(sq)
	if ok {
		b.Squares[sq.File][sq.Rank] = Piece{}
	}
	return p, ok
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns every occupant, rank 0 first and files ascending.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, 32)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[file][rank]; !p.IsEmpty() {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOf returns the occupants of the given colour in Pieces order.
func (b *Board) PiecesOf(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if p.Kind == King && p.Colour == colour {
				return p.Square, true
			}
		}
	}
	return Square{}, false
}

// BackRank is the classic back rank order from the a-file.
var BackRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
