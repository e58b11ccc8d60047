// Package config provides configuration for the duel-chess replay tool and
// the room registry it drives.
package config

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=running commentary

	Engine *EngineConfig
	Output *OutputConfig
	Filter *FilterConfig
	Worker *WorkerConfig
	Room   *RoomConfig

	// Input files, "-" meaning stdin
	InputFiles []string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Engine:     NewEngineConfig(),
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		Worker:     NewWorkerConfig(),
		Room:       NewRoomConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration and reports all problems at once.
// Each collected error wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error
	validators := []interface{ Validate() error }{c.Engine, c.Output, c.Filter, c.Worker, c.Room}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
