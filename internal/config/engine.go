package config

import (
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// EngineConfig holds settings passed to every engine.Game.
type EngineConfig struct {
	// DefaultPromotion replaces missing or invalid promotion choices
	DefaultPromotion chess.Kind
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if !e.DefaultPromotion.IsPromotion() {
		return fmt.Errorf("default promotion %q is not a promotion piece: %w",
			e.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
