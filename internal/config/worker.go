package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// WorkerConfig holds settings for the replay worker pool.
type WorkerConfig struct {
	// Workers is the number of goroutines (0 = one per CPU)
	Workers int

	// BufferSize is the capacity of the job and result channels (0 = 2x workers)
	BufferSize int

	// StopOnError stops replaying after the first script that fails
	StopOnError bool
}

// NewWorkerConfig creates a WorkerConfig with default values.
func NewWorkerConfig() *WorkerConfig {
	return &WorkerConfig{}
}

// EffectiveWorkers resolves the zero value to the CPU count.
func (w *WorkerConfig) EffectiveWorkers() int {
	if w.Workers <= 0 {
		return runtime.NumCPU()
	}
	return w.Workers
}

// Validate checks that the worker configuration is valid.
func (w *WorkerConfig) Validate() error {
	if w.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", w.Workers, errors.ErrInvalidConfig)
	}
	if w.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", w.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
