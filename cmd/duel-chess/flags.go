// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/errors"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	jsonIndent = flag.Int("indent", 2, "JSON indentation width (0 = compact)")
	showBoard  = flag.Bool("board", false, "Print a diagram of each final position")
	noHistory  = flag.Bool("nohistory", false, "Don't output move history")
	duplicates = flag.Bool("D", false, "Flag games ending in an already seen position")

	// Filter options
	player         = flag.String("p", "", "Keep games where either nickname contains this text")
	whitePlayer    = flag.String("Tw", "", "Keep games where white's nickname contains this text")
	blackPlayer    = flag.String("Tb", "", "Keep games where black's nickname contains this text")
	useSoundex     = flag.Bool("S", false, "Match nicknames by Soundex code")
	checkmate      = flag.Bool("checkmate", false, "Keep games ending in checkmate")
	stalemate      = flag.Bool("stalemate", false, "Keep games ending in stalemate")
	repetition     = flag.Bool("repetition", false, "Keep games drawn by threefold repetition")
	fiftyMove      = flag.Bool("fifty", false, "Keep games drawn by the fifty-move rule")
	underpromotion = flag.Bool("underpromotion", false, "Keep games with an underpromotion")
	minPlies       = flag.Int("minply", 0, "Keep games with at least this many plies")
	maxPlies       = flag.Int("maxply", 0, "Keep games with at most this many plies")

	// Engine options
	promotion = flag.String("promote", "queen", "Promotion used when a script gives none: queen, rook, bishop, knight")
	perftOnly = flag.Int("perft", 0, "Print perft counts from the initial position up to depth N and exit")

	// Processing options
	workers  = flag.Int("workers", 0, "Number of replay workers (0 = one per CPU)")
	failFast = flag.Bool("failfast", false, "Stop after the first script that cannot be replayed")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: no summary or room events")
	verbose = flag.Bool("verbose", false, "Log every room event and move")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds a validated Config from the parsed flags.
func buildConfig(args []string) (*config.Config, error) {
	kind, err := parsePromotion(*promotion)
	if err != nil {
		return nil, err
	}

	return config.NewConfigBuilder().
		WithDefaultPromotion(kind).
		WithJSONOutput(*jsonOutput).
		WithIndent(*jsonIndent).
		WithBoard(*showBoard).
		KeepHistory(!*noHistory).
		WithDuplicateReport(*duplicates).
		WithFilter(config.FilterConfig{
			Player:              *player,
			White:               *whitePlayer,
			Black:               *blackPlayer,
			UseSoundex:          *useSoundex,
			MatchCheckmate:      *checkmate,
			MatchStalemate:      *stalemate,
			MatchRepetition:     *repetition,
			MatchFiftyMove:      *fiftyMove,
			MatchUnderpromotion: *underpromotion,
			MinPlies:            *minPlies,
			MaxPlies:            *maxPlies,
		}).
		WithWorkers(*workers, 0).
		WithStopOnError(*failFast).
		WithVerbosity(verbosity(*quiet, *verbose)).
		WithInputs(args...).
		Build()
}

// parsePromotion accepts a piece name or letter.
func parsePromotion(name string) (chess.Kind, error) {
	kind, ok := chess.ParseKind(name)
	if !ok || !kind.IsPromotion() {
		return chess.NoKind, fmt.Errorf("-promote %q: %w", name, errors.ErrInvalidConfig)
	}
	return kind, nil
}

func verbosity(quiet, verbose bool) int {
	switch {
	case quiet:
		return 0
	case verbose:
		return 2
	default:
		return 1
	}
}
