// Package room seats two players around one engine.Game and serialises their
// requests. It is the boundary between a transport and the rule engine.
package room

import (
	"sync"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/engine"
)

// Seat binds a nickname to a colour.
type Seat struct {
	Nickname string       `json:"nickname"`
	Colour   chess.Colour `json:"color"`
}

// Info is a snapshot of a room.
type Info struct {
	ID      string           `json:"id"`
	Seats   []Seat           `json:"seats"`
	Started bool             `json:"started"`
	State   *chess.GameState `json:"gameState,omitempty"`
}

// Room holds the seats and game of one match. All fields are guarded by mu.
type Room struct {
	id      string
	mu      sync.Mutex
	seats   []Seat
	game    *engine.Game
	started bool
}

func newRoom(id string, game *engine.Game) *Room {
	return &Room{id: id, game: game}
}

// seatOf returns the seat held by nickname.
func (r *Room) seatOf(nickname string) (Seat, bool) {
	for _, s := range r.seats {
		if s.Nickname == nickname {
			return s, true
		}
	}
	return Seat{}, false
}

// freeColour returns the colour of the next open seat. White is taken first.
func (r *Room) freeColour() (chess.Colour, bool) {
	switch len(r.seats) {
	case 0:
		return chess.White, true
	case 1:
		return r.seats[0].Colour.Opposite(), true
	default:
		return chess.White, false
	}
}

func (r *Room) removeSeat(nickname string) {
	for i, s := range r.seats {
		if s.Nickname == nickname {
			r.seats = append(r.seats[:i], r.seats[i+1:]...)
			return
		}
	}
}

func (r *Room) info() Info {
	info := Info{
		ID:      r.id,
		Seats:   append([]Seat(nil), r.seats...),
		Started: r.started,
	}
	if r.started {
		state := r.game.GameState()
		info.State = &state
	}
	return info
}
