package config

import (
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// FilterConfig holds criteria deciding which replayed games are output.
// The zero value matches every game.
type FilterConfig struct {
	// Player matches either nickname (case-insensitive substring)
	Player string
	White  string
	Black  string

	// UseSoundex compares nicknames by Soundex code instead of substring
	UseSoundex bool

	// Ending filters
	MatchCheckmate      bool
	MatchStalemate      bool
	MatchRepetition     bool
	MatchFiftyMove      bool
	MatchUnderpromotion bool

	// Ply bounds (0 = unbounded)
	MinPlies int
	MaxPlies int
}

// NewFilterConfig creates a FilterConfig with default values.
// All filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MinPlies < 0 || f.MaxPlies < 0 {
		return fmt.Errorf("ply bounds %d..%d are negative: %w", f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	if f.MaxPlies > 0 && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("min plies (%d) > max plies (%d): %w", f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
