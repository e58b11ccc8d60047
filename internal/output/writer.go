// Package output writes replay reports as summary text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/processing"
)

// ReportWriter is the interface for writing replay reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(report *processing.Report) error

	// WriteFailure records a script that could not be replayed.
	WriteFailure(script string, err error) error

	// Close writes any pending output. For batch writers (like JSON) this
	// is where everything is written.
	Close(summary processing.Summary) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg.Output)
	}
	return NewSummaryWriter(w, cfg.Output)
}

// SummaryWriter writes one line per game, followed by rejected steps and
// an optional board diagram.
type SummaryWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewSummaryWriter creates a new summary writer.
func NewSummaryWriter(w io.Writer, cfg *config.OutputConfig) *SummaryWriter {
	return &SummaryWriter{w: w, cfg: cfg}
}

// WriteReport writes a game's summary line.
func (sw *SummaryWriter) WriteReport(r *processing.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (white) vs %s (black): %s after %d plies",
		r.Name, r.White, r.Black, DescribeOutcome(r.Outcome()), r.Analysis.Plies)
	if r.Duplicate {
		b.WriteString(" [duplicate final position]")
	}
	b.WriteByte('\n')

	for _, e := range r.Errors {
		fmt.Fprintf(&b, "  line %d:%d %q rejected: %s\n", e.Line, e.Column, e.Step, e.Msg)
	}
	if sw.cfg.KeepHistory && len(r.State.MoveHistory) > 0 {
		fmt.Fprintf(&b, "  moves: %s\n", MoveList(r.State.MoveHistory))
	}
	if sw.cfg.ShowBoard {
		b.WriteString(Diagram(r.State))
	}

	_, err := io.WriteString(sw.w, b.String())
	return err
}

// WriteFailure writes a line for a script that could not be replayed.
func (sw *SummaryWriter) WriteFailure(script string, err error) error {
	_, werr := fmt.Fprintf(sw.w, "%s: not replayed: %v\n", script, err)
	return werr
}

// Close writes the totals line.
func (sw *SummaryWriter) Close(s processing.Summary) error {
	line := fmt.Sprintf("%d games: %d checkmates, %d draws, %d resigned, %d unfinished, %d failed; white %d, black %d",
		s.Games, s.Checkmates, s.Draws, s.Resigned, s.InProgress, s.Failed, s.WhiteWins, s.BlackWins)
	if s.Filtered > 0 {
		line += fmt.Sprintf("; %d not matched", s.Filtered)
	}
	_, err := fmt.Fprintln(sw.w, line)
	return err
}

// JSONWriter buffers reports and writes them as one JSON document on Close.
type JSONWriter struct {
	w        io.Writer
	cfg      *config.OutputConfig
	games    []*JSONReport
	failures []JSONFailure
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONReport, 0),
	}
}

// WriteReport buffers a report for JSON output.
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	jw.games = append(jw.games, ReportToJSON(r, jw.cfg))
	return nil
}

// WriteFailure buffers a failed script.
func (jw *JSONWriter) WriteFailure(script string, err error) error {
	jw.failures = append(jw.failures, JSONFailure{Script: script, Error: err.Error()})
	return nil
}

// Close writes all buffered reports and the summary.
func (jw *JSONWriter) Close(s processing.Summary) error {
	doc := &JSONOutput{
		Games:    jw.games,
		Failures: jw.failures,
		Summary:  s,
	}
	enc := json.NewEncoder(jw.w)
	if jw.cfg.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", jw.cfg.Indent))
	}
	err := enc.Encode(doc)

	jw.games = jw.games[:0]
	jw.failures = nil
	return err
}

// DescribeOutcome renders an outcome as "checkmate, black wins" or
// "draw by stalemate".
func DescribeOutcome(o chess.Outcome) string {
	switch o.Status {
	case chess.InProgress:
		return "in progress"
	case chess.Draw:
		return "draw by " + o.Reason
	}
	if o.Winner == nil {
		return o.Status.String()
	}
	return fmt.Sprintf("%s, %s wins", o.Status, o.Winner)
}

// MoveList renders history as space separated from-to pairs, with the
// promotion letter appended where a pawn promoted.
func MoveList(history []chess.MoveRecord) string {
	parts := make([]string, len(history))
	for i, m := range history {
		s := m.From.String() + m.To.String()
		if m.Promotion != chess.NoKind {
			s += strings.ToLower(string(m.Promotion.Letter()))
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}
