package config

import (
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of summary lines
	JSONFormat bool

	// Indent is the JSON indentation width (0 = compact)
	Indent int

	// KeepHistory controls whether the move history is included
	KeepHistory bool

	// ShowBoard prints a board diagram of the final position
	ShowBoard bool

	// ReportDuplicates flags games ending in a position already reached by
	// an earlier game
	ReportDuplicates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Indent:      2,
		KeepHistory: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Indent < 0 || o.Indent > 8 {
		return fmt.Errorf("indent %d outside 0..8: %w", o.Indent, errors.ErrInvalidConfig)
	}
	return nil
}
