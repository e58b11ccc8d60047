package config

import (
	"io"

	"github.com/lgbarn/duel-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDefaultPromotion sets the promotion used for missing or invalid choices.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Engine.DefaultPromotion = kind
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithIndent sets the JSON indentation width.
func (b *ConfigBuilder) WithIndent(n int) *ConfigBuilder {
	b.cfg.Output.Indent = n
	return b
}

// WithBoard enables the final board diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithDuplicateReport enables duplicate final position reporting.
func (b *ConfigBuilder) WithDuplicateReport(enabled bool) *ConfigBuilder {
	b.cfg.Output.ReportDuplicates = enabled
	return b
}

// WithFilter sets the criteria selecting which games are written.
func (b *ConfigBuilder) WithFilter(filter FilterConfig) *ConfigBuilder {
	*b.cfg.Filter = filter
	return b
}

// KeepHistory controls whether move history is written.
func (b *ConfigBuilder) KeepHistory(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepHistory = keep
	return b
}

// WithWorkers sets the worker count and channel buffer size.
func (b *ConfigBuilder) WithWorkers(workers, buffer int) *ConfigBuilder {
	b.cfg.Worker.Workers = workers
	b.cfg.Worker.BufferSize = buffer
	return b
}

// WithStopOnError stops replaying after the first failed script.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Worker.StopOnError = enabled
	return b
}

// WithInputs sets the script files to replay.
func (b *ConfigBuilder) WithInputs(files ...string) *ConfigBuilder {
	b.cfg.InputFiles = append([]string(nil), files...)
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
