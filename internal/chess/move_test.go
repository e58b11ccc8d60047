package chess

import "testing"

func TestLastMove_IsDoublePawnPush(t *testing.T) {
	tests := []struct {
		name string
		move *LastMove
		want bool
	}{
		{"nil", nil, false},
		{"white double", &LastMove{Kind: Pawn, Colour: White, From: Sq(4, 1), To: Sq(4, 3)}, true},
		{"black double", &LastMove{Kind: Pawn, Colour: Black, From: Sq(3, 6), To: Sq(3, 4)}, true},
		{"single step", &LastMove{Kind: Pawn, Colour: White, From: Sq(4, 2), To: Sq(4, 3)}, false},
		{"capture", &LastMove{Kind: Pawn, Colour: White, From: Sq(4, 3), To: Sq(3, 4)}, false},
		{"rook two squares", &LastMove{Kind: Rook, Colour: White, From: Sq(0, 0), To: Sq(0, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.IsDoublePawnPush(); got != tt.want {
				t.Errorf("IsDoublePawnPush() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestMoveSet(t *testing.T) {
	ms := MoveSet{
		Moves:     []Square{Sq(4, 2), Sq(4, 3)},
		Attacks:   []Square{Sq(3, 2)},
		EnPassant: []EnPassant{{To: Sq(5, 5), Capture: Sq(5, 4)}},
	}

	if ms.IsEmpty() || ms.Len() != 4 {
		t.Errorf("IsEmpty() = %v, Len() = %d; want false, 4", ms.IsEmpty(), ms.Len())
	}
	if !ms.HasMove(Sq(4, 3)) || ms.HasMove(Sq(3, 2)) {
		t.Error("HasMove() confuses moves and attacks")
	}
	if !ms.HasAttack(Sq(3, 2)) || ms.HasAttack(Sq(5, 5)) {
		t.Error("HasAttack() confuses attacks and en passant")
	}
	if ep, ok := ms.FindEnPassant(Sq(5, 5)); !ok || ep.Capture != Sq(5, 4) {
		t.Errorf("FindEnPassant() = %+v, %v", ep, ok)
	}
	for _, sq := range []Square{Sq(4, 2), Sq(3, 2), Sq(5, 5)} {
		if !ms.Contains(sq) {
			t.Errorf("Contains(%s) = false", sq)
		}
	}
	if ms.Contains(Sq(0, 0)) {
		t.Error("Contains(a1) = true")
	}

	dests := ms.Destinations()
	want := []Square{Sq(4, 2), Sq(4, 3), Sq(3, 2), Sq(5, 5)}
	if len(dests) != len(want) {
		t.Fatalf("Destinations() = %v; want %v", dests, want)
	}
	for i := range want {
		if dests[i] != want[i] {
			t.Errorf("Destinations()[%d] = %s; want %s", i, dests[i], want[i])
		}
	}

	if !(MoveSet{}).IsEmpty() {
		t.Error("zero MoveSet is not empty")
	}
}

func TestMoveRecord_Clone(t *testing.T) {
	rec := MoveRecord{
		Kind:     Pawn,
		Colour:   White,
		Captured: &PieceInfo{Kind: Knight, Colour: Black},
	}
	clone := rec.Clone()
	clone.Captured.Kind = Queen

	if rec.Captured.Kind != Knight {
		t.Error("Clone() shares the captured piece")
	}
	if !rec.IsCapture() || rec.IsPromotion() {
		t.Errorf("IsCapture() = %v, IsPromotion() = %v", rec.IsCapture(), rec.IsPromotion())
	}
}

func TestOutcome(t *testing.T) {
	if (Outcome{}).IsOver() {
		t.Error("zero Outcome is over")
	}
	draw := DrawOutcome(ReasonStalemate)
	if !draw.IsOver() || draw.Winner != nil || draw.Status != Draw {
		t.Errorf("DrawOutcome() = %+v", draw)
	}
	win := WinOutcome(Checkmate, Black, ReasonCheckmate)
	if !win.IsOver() || win.Winner == nil || *win.Winner != Black {
		t.Errorf("WinOutcome() = %+v", win)
	}
	if Resigned.String() != "resigned" || Status(42).String() != "unknown" {
		t.Error("Status.String() wrong")
	}
}

func TestGameState_PieceAt(t *testing.T) {
	s := GameState{
		Pieces: []PieceView{{Kind: King, Colour: White, Position: Sq(4, 0)}},
		MoveHistory: []MoveRecord{
			{Kind: Pawn, Colour: White, From: Sq(4, 1), To: Sq(4, 3)},
		},
	}
	if p, ok := s.PieceAt(Sq(4, 0)); !ok || p.Kind != King {
		t.Errorf("PieceAt(e1) = %+v, %v", p, ok)
	}
	if _, ok := s.PieceAt(Sq(4, 1)); ok {
		t.Error("PieceAt(e2) found a piece")
	}
	if s.PlyCount() != 1 {
		t.Errorf("PlyCount() = %d; want 1", s.PlyCount())
	}
}
