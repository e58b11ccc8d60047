package room

import (
	stderrors "errors"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/config"
	"github.com/lgbarn/duel-chess-go/internal/engine"
	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// Registry owns every room. The room map is guarded by an RWMutex; each
// room serialises its own game with a separate mutex.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	cfg    *config.RoomConfig
	log    log.Interface
	engine []engine.Option
	newID  func() string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives room events.
func WithLogger(l log.Interface) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// WithConfig sets the room limits.
func WithConfig(cfg *config.RoomConfig) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithEngineOptions sets the options passed to every new engine.Game.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(r *Registry) {
		r.engine = append(r.engine, opts...)
	}
}

// WithIDGenerator replaces the uuid room id generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// NewRegistry creates an empty registry. Events are discarded unless a
// logger is supplied.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		rooms: make(map[string]*Room),
		cfg:   config.NewRoomConfig(),
		log:   &log.Logger{Handler: discard.Default, Level: log.InfoLevel},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateRoom registers an empty room with a fresh game and returns its id.
func (r *Registry) CreateRoom() (string, error) {
	if err := r.cfg.Validate(); err != nil {
		return "", err
	}
	game, err := engine.NewGame(r.engine...)
	if err != nil {
		return "", errors.Wrap(err, "creating room")
	}

	r.mu.Lock()
	id := r.newID()
	for _, taken := r.rooms[id]; taken; _, taken = r.rooms[id] {
		id = r.newID()
	}
	r.rooms[id] = newRoom(id, game)
	r.mu.Unlock()

	r.log.WithField("room", id).Info("room created")
	return id, nil
}

// Join seats nickname in the room. The first player gets White and the
// second Black; a player already seated gets the same seat back. The game
// starts from the classic setup when the second player sits down.
func (r *Registry) Join(roomID, nickname string) (Seat, error) {
	if nickname == "" || len(nickname) > r.cfg.MaxNickname {
		return Seat{}, errors.Wrapf(errors.ErrInvalidNickname, "nickname %q", nickname)
	}
	room, err := r.room(roomID)
	if err != nil {
		return Seat{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if seat, ok := room.seatOf(nickname); ok {
		return seat, nil
	}
	colour, ok := room.freeColour()
	if !ok || len(room.seats) >= r.cfg.MaxPlayers {
		return Seat{}, errors.Wrapf(errors.ErrRoomFull, "room %s", roomID)
	}

	seat := Seat{Nickname: nickname, Colour: colour}
	room.seats = append(room.seats, seat)
	entry := r.log.WithFields(log.Fields{"room": roomID, "player": nickname, "colour": colour.String()})
	entry.Info("player joined")

	if len(room.seats) == r.cfg.MaxPlayers && !room.started {
		room.game.InitClassicSetup()
		room.started = true
		entry.Info("game started")
	}
	return seat, nil
}

// LegalMoves returns the legal destinations of the piece on from. Only the
// player to move may ask, and only about their own pieces; any other
// square yields an empty set.
func (r *Registry) LegalMoves(roomID, nickname string, from chess.Square) (chess.MoveSet, error) {
	room, err := r.room(roomID)
	if err != nil {
		return chess.MoveSet{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	seat, err := room.activeSeat(nickname)
	if err != nil {
		return chess.MoveSet{}, err
	}
	if piece, ok := room.game.PieceAt(from); !ok || piece.Colour != seat.Colour {
		return chess.MoveSet{}, nil
	}
	return room.game.LegalMovesFor(from), nil
}

// Move plays a move for nickname.
func (r *Registry) Move(roomID, nickname string, from, to chess.Square, promotion chess.Kind) (*engine.MoveResult, error) {
	room, err := r.room(roomID)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	seat, err := room.activeSeat(nickname)
	if err != nil {
		return nil, &errors.MoveError{Err: err, Ply: room.game.Ply() + 1, From: from.String(), To: to.String(), Room: roomID}
	}

	result, err := room.game.MakeMove(from, to, promotion)
	if err != nil {
		var me *errors.MoveError
		if stderrors.As(err, &me) {
			me.Room = roomID
		}
		return nil, err
	}

	entry := r.log.WithFields(log.Fields{"room": roomID, "player": nickname, "colour": seat.Colour.String()})
	entry.WithFields(log.Fields{"from": from.String(), "to": to.String()}).Debug("move")
	if result.GameOver() {
		logOutcome(entry, result.Outcome)
	}
	return result, nil
}

// Leave removes nickname from the room. Leaving a game in progress resigns
// it and the remaining player wins. The returned outcome is the game's
// state after the player left.
func (r *Registry) Leave(roomID, nickname string) (chess.Outcome, error) {
	room, err := r.room(roomID)
	if err != nil {
		return chess.Outcome{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	seat, ok := room.seatOf(nickname)
	if !ok {
		return chess.Outcome{}, errors.Wrapf(errors.ErrNotSeated, "%q in room %s", nickname, roomID)
	}
	room.removeSeat(nickname)

	entry := r.log.WithFields(log.Fields{"room": roomID, "player": nickname, "colour": seat.Colour.String()})
	entry.Info("player left")

	if !room.started {
		return room.game.Outcome(), nil
	}
	before := room.game.Outcome()
	outcome := room.game.Resign(seat.Colour)
	if !before.IsOver() {
		logOutcome(entry, outcome)
	}
	return outcome, nil
}

// Rooms returns the ids of every room in sorted order.
func (r *Registry) Rooms() []string {
	r.mu.RLock()
	ids := maps.Keys(r.rooms)
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Snapshot returns the seats and game state of a room.
func (r *Registry) Snapshot(roomID string) (Info, error) {
	room, err := r.room(roomID)
	if err != nil {
		return Info{}, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	return room.info(), nil
}

// CloseRoom removes a room from the registry.
func (r *Registry) CloseRoom(roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[roomID]; !ok {
		return errors.Wrapf(errors.ErrUnknownRoom, "room %s", roomID)
	}
	delete(r.rooms, roomID)
	r.log.WithField("room", roomID).Info("room closed")
	return nil
}

func (r *Registry) room(roomID string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownRoom, "room %s", roomID)
	}
	return room, nil
}

// activeSeat returns nickname's seat once the game has started and it is
// that seat's turn. The caller holds the room lock.
func (r *Room) activeSeat(nickname string) (Seat, error) {
	seat, ok := r.seatOf(nickname)
	if !ok {
		return Seat{}, errors.ErrNotSeated
	}
	if !r.started {
		return Seat{}, errors.ErrGameNotStarted
	}
	if r.game.Outcome().IsOver() {
		return Seat{}, errors.ErrGameOver
	}
	if r.game.Turn() != seat.Colour {
		return Seat{}, errors.ErrWrongTurn
	}
	return seat, nil
}

func logOutcome(entry *log.Entry, outcome chess.Outcome) {
	fields := log.Fields{"status": outcome.Status.String(), "reason": outcome.Reason}
	if outcome.Winner != nil {
		fields["winner"] = outcome.Winner.String()
	}
	entry.WithFields(fields).Info("game over")
}
