package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/engine"
	"github.com/lgbarn/duel-chess-go/internal/matching"
	"github.com/lgbarn/duel-chess-go/internal/output"
	"github.com/lgbarn/duel-chess-go/internal/parser"
	"github.com/lgbarn/duel-chess-go/internal/processing"
	"github.com/lgbarn/duel-chess-go/internal/room"
	"github.com/lgbarn/duel-chess-go/internal/worker"
)

// run replays every script named by cfg and writes the reports.
func run(ctx context.Context, cfg *config.Config, logger log.Interface) (processing.Summary, error) {
	var summary processing.Summary

	scripts, err := loadScripts(cfg)
	if err != nil {
		return summary, err
	}

	registry := room.NewRegistry(
		room.WithLogger(logger),
		room.WithConfig(cfg.Room),
		room.WithEngineOptions(engine.WithDefaultPromotion(cfg.Engine.DefaultPromotion)),
	)
	replayer := processing.NewReplayer(registry, cfg.Output.ReportDuplicates)

	opts := []worker.PoolOption{worker.WithWorkers(cfg.Worker.EffectiveWorkers())}
	if cfg.Worker.BufferSize > 0 {
		opts = append(opts, worker.WithBufferSize(cfg.Worker.BufferSize))
	}
	if cfg.Worker.StopOnError {
		opts = append(opts, worker.WithStopOnError())
	}
	results := worker.Run(ctx, scripts, replayer.Process, opts...)
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	filter := matching.NewReportFilter(cfg.Filter)
	writer := output.NewWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		if res.Error != nil {
			summary.AddFailure()
			if err := writer.WriteFailure(res.Script.Name, res.Error); err != nil {
				return summary, err
			}
			continue
		}
		report := res.Report.(*processing.Report)
		summary.Add(report)
		if !filter.Match(report) {
			summary.AddFiltered()
			continue
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%s: %s\n", report.Name, output.DescribeOutcome(report.Outcome()))
		}
		if err := writer.WriteReport(report); err != nil {
			return summary, err
		}
	}
	return summary, writer.Close(summary)
}

// loadScripts parses every input file, or stdin when there are none.
func loadScripts(cfg *config.Config) ([]*parser.Script, error) {
	if len(cfg.InputFiles) == 0 {
		return parseScripts(os.Stdin, "stdin")
	}

	var all []*parser.Script
	for _, name := range cfg.InputFiles {
		if name == "-" {
			scripts, err := parseScripts(os.Stdin, "stdin")
			if err != nil {
				return nil, err
			}
			all = append(all, scripts...)
			continue
		}
		file, err := os.Open(name) //nolint:gosec // G304: user-specified input file
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		scripts, err := parseScripts(file, name)
		file.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, scripts...)
	}
	return all, nil
}

func parseScripts(r io.Reader, name string) ([]*parser.Script, error) {
	return parser.NewParser(r, name).ParseAll()
}

// runPerft prints node counts from the initial position.
func runPerft(w io.Writer, maxDepth int) error {
	g, err := engine.NewGame()
	if err != nil {
		return err
	}
	g.InitClassicSetup()
	for depth := 1; depth <= maxDepth; depth++ {
		if _, err := fmt.Fprintf(w, "perft(%d) = %d\n", depth, g.Perft(depth)); err != nil {
			return err
		}
	}
	return nil
}
