// duel-chess replays two-player chess games from move scripts through the
// room registry and reports how each game ended.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/duel-chess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("duel-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *perftOnly > 0 {
		if err := runPerft(cfg.OutputFile, *perftOnly); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := run(ctx, cfg, newLogger(cfg.LogFile, cfg.Verbosity))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games replayed, %d rejected steps, %d duplicates\n",
			summary.Games, summary.Rejected, summary.Duplicates)
	}
	if summary.Failed > 0 {
		os.Exit(2)
	}
}

// newLogger returns the room event logger for a verbosity level. Level 2
// includes every move.
func newLogger(w io.Writer, verbosity int) log.Interface {
	level := log.WarnLevel
	if verbosity >= 2 {
		level = log.DebugLevel
	}
	return &log.Logger{Handler: text.New(w), Level: level}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: duel-chess [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games from move scripts (stdin when no files are given).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  # comment\n")
	fmt.Fprintf(os.Stderr, "  game <name>         start a new game\n")
	fmt.Fprintf(os.Stderr, "  white <nickname>    name the White player\n")
	fmt.Fprintf(os.Stderr, "  black <nickname>    name the Black player\n")
	fmt.Fprintf(os.Stderr, "  e2 e4               move by squares (also e2e4)\n")
	fmt.Fprintf(os.Stderr, "  e7 e8 knight        promote (also e7e8n)\n")
	fmt.Fprintf(os.Stderr, "  resign [colour]     side to move, or colour, leaves\n")
}
