package processing

import "github.com/lgbarn/duel-chess-go/internal/chess"

// Summary aggregates replay reports.
type Summary struct {
	Games      int `json:"games"`
	Failed     int `json:"failed"`
	Checkmates int `json:"checkmates"`
	Draws      int `json:"draws"`
	Resigned   int `json:"resigned"`
	InProgress int `json:"inProgress"`
	WhiteWins  int `json:"whiteWins"`
	BlackWins  int `json:"blackWins"`
	Rejected   int `json:"rejectedSteps"`
	Duplicates int `json:"duplicates"`
	Filtered   int `json:"filtered,omitempty"`
}

// Add counts one report.
func (s *Summary) Add(r *Report) {
	s.Games++
	s.Rejected += len(r.Errors)
	if r.Duplicate {
		s.Duplicates++
	}

	outcome := r.Outcome()
	switch outcome.Status {
	case chess.Checkmate:
		s.Checkmates++
	case chess.Draw:
		s.Draws++
	case chess.Resigned:
		s.Resigned++
	default:
		s.InProgress++
	}
	if outcome.Winner != nil {
		if *outcome.Winner == chess.White {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	}
}

// AddFailure counts a script that could not be replayed.
func (s *Summary) AddFailure() {
	s.Games++
	s.Failed++
}

// AddFiltered counts a replayed game that the output filter dropped.
func (s *Summary) AddFiltered() {
	s.Filtered++
}
