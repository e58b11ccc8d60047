package config

import (
	"fmt"

	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// Seats is the number of players a room holds.
const Seats = 2

// RoomConfig holds settings for the room registry.
type RoomConfig struct {
	// MaxPlayers is fixed at two; any other value is rejected
	MaxPlayers int

	// MaxNickname bounds nickname length in bytes
	MaxNickname int
}

// NewRoomConfig creates a RoomConfig with default values.
func NewRoomConfig() *RoomConfig {
	return &RoomConfig{
		MaxPlayers:  Seats,
		MaxNickname: 32,
	}
}

// Validate checks that the room configuration is valid.
func (r *RoomConfig) Validate() error {
	if r.MaxPlayers != Seats {
		return fmt.Errorf("max players %d, rooms seat exactly %d: %w",
			r.MaxPlayers, Seats, errors.ErrInvalidConfig)
	}
	if r.MaxNickname <= 0 {
		return fmt.Errorf("max nickname length %d must be positive: %w",
			r.MaxNickname, errors.ErrInvalidConfig)
	}
	return nil
}
