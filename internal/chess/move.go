package chess

// LastMove is the most recently completed move. It is kept only to decide
// en passant eligibility on the following ply.
type LastMove struct {
	Kind   Kind   `json:"pieceType"`
	Colour Colour `json:"color"`
	From   Square `json:"from"`
	To     Square `json:"to"`
}

// IsDoublePawnPush reports whether the move was a two-square pawn advance.
func (m *LastMove) IsDoublePawnPush() bool {
	if m == nil || m.Kind != Pawn {
		return false
	}
	return m.From.File == m.To.File && abs(m.To.Rank-m.From.Rank) == 2
}

// EnPassant describes an en passant capture: the pawn lands on To and the
// captured pawn is removed from Capture.
type EnPassant struct {
	To      Square `json:"to"`
	Capture Square `json:"capture"`
}

// MoveSet is the set of destinations for one piece.
type MoveSet struct {
	// Moves are destinations onto empty squares.
	Moves []Square `json:"moves"`

	// Attacks are destinations capturing an opposing piece.
	Attacks []Square `json:"attacks"`

	// EnPassant holds special pawn captures.
	EnPassant []EnPassant `json:"enPassant"`

	// Promotes is set when any destination lands on the mover's last rank.
	Promotes bool `json:"promotesToRank"`
}

// IsEmpty reports whether the set has no destinations at all.
func (ms MoveSet) IsEmpty() bool {
	return len(ms.Moves) == 0 && len(ms.Attacks) == 0 && len(ms.EnPassant) == 0
}

// Len returns the total number of destinations.
func (ms MoveSet) Len() int {
	return len(ms.Moves) + len(ms.Attacks) + len(ms.EnPassant)
}

// HasMove reports whether to is a quiet destination.
func (ms MoveSet) HasMove(to Square) bool {
	return containsSquare(ms.Moves, to)
}

// HasAttack reports whether to is a capture destination.
func (ms MoveSet) HasAttack(to Square) bool {
	return containsSquare(ms.Attacks, to)
}

// FindEnPassant returns the en passant descriptor landing on to.
func (ms MoveSet) FindEnPassant(to Square) (EnPassant, bool) {
	for _, ep := range ms.EnPassant {
		if ep.To == to {
			return ep, true
		}
	}
	return EnPassant{}, false
}

// Contains reports whether to is any kind of destination in the set.
func (ms MoveSet) Contains(to Square) bool {
	if ms.HasMove(to) || ms.HasAttack(to) {
		return true
	}
	_, ok := ms.FindEnPassant(to)
	return ok
}

// Destinations returns every destination square: moves, attacks, then en passant.
func (ms MoveSet) Destinations() []Square {
	out := make([]Square, 0, ms.Len())
	out = append(out, ms.Moves...)
	out = append(out, ms.Attacks...)
	for _, ep := range ms.EnPassant {
		out = append(out, ep.To)
	}
	return out
}

// PieceInfo identifies a captured piece in a move record.
type PieceInfo struct {
	Kind   Kind   `json:"type"`
	Colour Colour `json:"color"`
}

// MoveRecord is an entry in the move history. It is never mutated after it
// has been appended.
type MoveRecord struct {
	Kind              Kind       `json:"pieceType"`
	Colour            Colour     `json:"color"`
	From              Square     `json:"from"`
	To                Square     `json:"to"`
	Captured          *PieceInfo `json:"captured"`
	EnPassantCaptured *PieceInfo `json:"enPassantCaptured"`
	Promotion         Kind       `json:"promotion,omitempty"`
}

// IsCapture returns true if this move is a capture.
func (m *MoveRecord) IsCapture() bool {
	return m.Captured != nil || m.EnPassantCaptured != nil
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *MoveRecord) IsPromotion() bool {
	return m.Promotion != NoKind
}

// Clone returns a copy that shares no pointers with m.
func (m MoveRecord) Clone() MoveRecord {
	if m.Captured != nil {
		c := *m.Captured
		m.Captured = &c
	}
	if m.EnPassantCaptured != nil {
		c := *m.EnPassantCaptured
		m.EnPassantCaptured = &c
	}
	return m
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
