package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/processing"
	"github.com/lgbarn/duel-chess-go/internal/testutil"
)

func foolsMateReport() *processing.Report {
	black := chess.Black
	history := []chess.MoveRecord{
		{Kind: chess.Pawn, Colour: chess.White, From: chess.Sq(5, 1), To: chess.Sq(5, 2)},
		{Kind: chess.Pawn, Colour: chess.Black, From: chess.Sq(4, 6), To: chess.Sq(4, 4)},
		{Kind: chess.Pawn, Colour: chess.White, From: chess.Sq(6, 1), To: chess.Sq(6, 3)},
		{Kind: chess.Queen, Colour: chess.Black, From: chess.Sq(3, 7), To: chess.Sq(7, 3)},
	}
	state := chess.GameState{
		CurrentTurn: chess.White,
		Pieces: []chess.PieceView{
			{Kind: chess.King, Colour: chess.White, Position: chess.Sq(4, 0)},
			{Kind: chess.Queen, Colour: chess.Black, Position: chess.Sq(7, 3)},
			{Kind: chess.King, Colour: chess.Black, Position: chess.Sq(4, 7)},
		},
		MoveHistory: history,
		Outcome:     chess.Outcome{Status: chess.Checkmate, Winner: &black, Reason: chess.ReasonCheckmate},
	}
	return &processing.Report{
		Name:     "Fool's mate",
		White:    "Alice",
		Black:    "Bob",
		State:    state,
		Analysis: processing.Analyze(state),
		Errors: []processing.StepError{
			{Line: 5, Column: 1, Step: "e2 e5", Msg: "ply 1, move e2-e5: illegal destination"},
		},
	}
}

// TestSummaryWriter_WriteReport verifies the summary line format
func TestSummaryWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowBoard = true

	w := NewSummaryWriter(&buf, cfg)
	testutil.AssertNoError(t, w.WriteReport(foolsMateReport()))
	testutil.AssertNoError(t, w.WriteFailure("x.txt#2", fmt.Errorf("boom")))
	testutil.AssertNoError(t, w.Close(processing.Summary{Games: 2, Checkmates: 1, Failed: 1, BlackWins: 1}))

	out := buf.String()
	for _, want := range []string{
		"Fool's mate: Alice (white) vs Bob (black): checkmate, black wins after 4 plies\n",
		`  line 5:1 "e2 e5" rejected: ply 1, move e2-e5: illegal destination`,
		"  moves: f2f3 e7e5 g2g4 d8h4\n",
		"  4  . . . . . . . q\n",
		"x.txt#2: not replayed: boom\n",
		"2 games: 1 checkmates, 0 draws, 0 resigned, 0 unfinished, 1 failed; white 0, black 1\n",
	} {
		testutil.AssertContains(t, out, want)
	}
}

func TestSummaryWriter_CloseFiltered(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewSummaryWriter(&buf, config.NewOutputConfig()).Close(processing.Summary{Games: 3, InProgress: 3, Filtered: 2}))
	testutil.AssertEqual(t, buf.String(),
		"3 games: 0 checkmates, 0 draws, 0 resigned, 3 unfinished, 0 failed; white 0, black 0; 2 not matched\n")
}

func TestSummaryWriter_NoHistory(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.KeepHistory = false

	testutil.AssertNoError(t, NewSummaryWriter(&buf, cfg).WriteReport(foolsMateReport()))
	if strings.Contains(buf.String(), "moves:") {
		t.Errorf("output contains move list:\n%s", buf.String())
	}
}

// TestJSONWriter_Close verifies the JSON document structure
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	w := NewJSONWriter(&buf, cfg)
	testutil.AssertNoError(t, w.WriteReport(foolsMateReport()))
	testutil.AssertNoError(t, w.WriteFailure("bad", fmt.Errorf("parse")))
	testutil.AssertNoError(t, w.Close(processing.Summary{Games: 2, Failed: 1}))

	var doc struct {
		Games []struct {
			Name    string `json:"name"`
			Outcome struct {
				Status string `json:"status"`
				Winner string `json:"winner"`
			} `json:"outcome"`
			History []json.RawMessage `json:"moveHistory"`
			Errors  []struct {
				Line  int    `json:"line"`
				Error string `json:"error"`
			} `json:"errors"`
		} `json:"games"`
		Failures []JSONFailure  `json:"failures"`
		Summary  map[string]int `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}

	if len(doc.Games) != 1 {
		t.Fatalf("len(games) = %d, want 1", len(doc.Games))
	}
	g := doc.Games[0]
	testutil.AssertEqual(t, g.Name, "Fool's mate")
	testutil.AssertEqual(t, g.Outcome.Status, "checkmate")
	testutil.AssertEqual(t, g.Outcome.Winner, "black")
	testutil.AssertEqual(t, len(g.History), 4)
	testutil.AssertEqual(t, g.Errors[0].Line, 5)
	testutil.AssertEqual(t, doc.Failures, []JSONFailure{{Script: "bad", Error: "parse"}})
	testutil.AssertEqual(t, doc.Summary["games"], 2)
	testutil.AssertContains(t, buf.String(), "\n  \"games\"")
}

func TestJSONWriter_Compact(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.OutputConfig{Indent: 0}

	w := NewJSONWriter(&buf, cfg)
	testutil.AssertNoError(t, w.WriteReport(foolsMateReport()))
	testutil.AssertNoError(t, w.Close(processing.Summary{}))

	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("compact output has %d newlines, want 1", n)
	}
	if strings.Contains(buf.String(), "moveHistory") {
		t.Error("history written with KeepHistory off")
	}
}

func TestNewWriter(t *testing.T) {
	cfg := config.NewConfig()
	if _, ok := NewWriter(&bytes.Buffer{}, cfg).(*SummaryWriter); !ok {
		t.Error("NewWriter() default is not a SummaryWriter")
	}
	cfg.Output.JSONFormat = true
	if _, ok := NewWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("NewWriter() with JSON is not a JSONWriter")
	}
}

func TestDescribeOutcome(t *testing.T) {
	white := chess.White
	tests := []struct {
		outcome chess.Outcome
		want    string
	}{
		{chess.Outcome{}, "in progress"},
		{chess.DrawOutcome(chess.ReasonStalemate), "draw by stalemate"},
		{chess.Outcome{Status: chess.Resigned, Winner: &white}, "resigned, white wins"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, DescribeOutcome(tt.outcome), tt.want)
		})
	}
}

func TestMoveList_Promotion(t *testing.T) {
	history := []chess.MoveRecord{
		{From: chess.Sq(0, 6), To: chess.Sq(0, 7), Promotion: chess.Knight},
	}
	testutil.AssertEqual(t, MoveList(history), "a7a8n")
}

func TestDiagram(t *testing.T) {
	got := Diagram(foolsMateReport().State)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Diagram() has %d lines, want 9:\n%s", len(lines), got)
	}
	testutil.AssertEqual(t, lines[0], "  8  . . . . k . . .")
	testutil.AssertEqual(t, lines[7], "  1  . . . . K . . .")
	testutil.AssertEqual(t, lines[8], "     a b c d e f g h")
}
