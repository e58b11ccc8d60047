// Package matching selects replayed games by player, ending and length.
package matching

import (
	"strings"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/processing"
)

// ReportFilter decides whether a replay report is written. All enabled
// criteria must hold; ending criteria match if any one of them does.
type ReportFilter struct {
	cfg     config.FilterConfig
	endings []func(*processing.Report) bool
}

// NewReportFilter builds a filter from cfg. A nil cfg matches everything.
func NewReportFilter(cfg *config.FilterConfig) *ReportFilter {
	f := &ReportFilter{}
	if cfg == nil {
		return f
	}
	f.cfg = *cfg

	if cfg.MatchCheckmate {
		f.endings = append(f.endings, reasonIs(chess.ReasonCheckmate))
	}
	if cfg.MatchStalemate {
		f.endings = append(f.endings, reasonIs(chess.ReasonStalemate))
	}
	if cfg.MatchRepetition {
		f.endings = append(f.endings, func(r *processing.Report) bool { return r.Analysis.HasRepetition })
	}
	if cfg.MatchFiftyMove {
		f.endings = append(f.endings, func(r *processing.Report) bool { return r.Analysis.HasFiftyMoveRule })
	}
	if cfg.MatchUnderpromotion {
		f.endings = append(f.endings, func(r *processing.Report) bool { return r.Analysis.HasUnderpromotion })
	}
	return f
}

func reasonIs(reason string) func(*processing.Report) bool {
	return func(r *processing.Report) bool {
		return r.Outcome().Reason == reason
	}
}

// HasCriteria reports whether any criterion is enabled.
func (f *ReportFilter) HasCriteria() bool {
	return f.cfg.Player != "" || f.cfg.White != "" || f.cfg.Black != "" ||
		f.cfg.MinPlies > 0 || f.cfg.MaxPlies > 0 || len(f.endings) > 0
}

// Match reports whether r satisfies the filter.
func (f *ReportFilter) Match(r *processing.Report) bool {
	if r == nil {
		return false
	}
	if f.cfg.Player != "" && !f.nameMatches(f.cfg.Player, r.White) && !f.nameMatches(f.cfg.Player, r.Black) {
		return false
	}
	if f.cfg.White != "" && !f.nameMatches(f.cfg.White, r.White) {
		return false
	}
	if f.cfg.Black != "" && !f.nameMatches(f.cfg.Black, r.Black) {
		return false
	}

	plies := r.Analysis.Plies
	if f.cfg.MinPlies > 0 && plies < f.cfg.MinPlies {
		return false
	}
	if f.cfg.MaxPlies > 0 && plies > f.cfg.MaxPlies {
		return false
	}

	if len(f.endings) == 0 {
		return true
	}
	for _, ending := range f.endings {
		if ending(r) {
			return true
		}
	}
	return false
}

// Filter returns the reports that match, preserving order.
func (f *ReportFilter) Filter(reports []*processing.Report) []*processing.Report {
	var out []*processing.Report
	for _, r := range reports {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *ReportFilter) nameMatches(pattern, name string) bool {
	if f.cfg.UseSoundex {
		return SoundexMatch(pattern, name)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}
