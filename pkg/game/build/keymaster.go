// Package build manages the creation of doors and key rooms during level generation.
package build

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/world"
)

// ErrUnmatchedCreation is returned by Close when doors or key rooms are left unpaired
var ErrUnmatchedCreation = errors.New("unmatched key/door creation")

// Keymaster creates doors and key rooms, making sure every door gets exactly one
// key room and every key room exactly one key. Pairing is first come first served
// on each side: the nth door created puts its key in the nth key room created,
// however the two kinds of calls are interleaved.
//
// A Keymaster is not safe for concurrent use; confine it to one generation pass.
type Keymaster struct {
	unplacedKeys  *queue.Queue[*world.Inventory]
	emptyKeyRooms *queue.Queue[*world.Room]

	// queue lengths, the queues do not track them
	keys  int
	rooms int

	placed int
	logger *slog.Logger
}

// Option configures a Keymaster
type Option func(*Keymaster)

// WithLogger sets the logger that records each key placement
func WithLogger(logger *slog.Logger) Option {
	return func(km *Keymaster) {
		km.logger = logger
	}
}

// New creates a Keymaster with nothing pending
func New(opts ...Option) *Keymaster {
	km := &Keymaster{
		unplacedKeys:  queue.New[*world.Inventory](),
		emptyKeyRooms: queue.New[*world.Room](),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(km)
	}
	if km.logger == nil {
		km.logger = slog.Default()
	}
	return km
}

// Use runs fn with a new Keymaster and closes it exactly once on every way out
// of fn: normal return, error, or panic. The errors of fn and Close are joined
// when fn returns; a panic propagates unchanged.
func Use(fn func(km *Keymaster) error, opts ...Option) (err error) {
	km := New(opts...)
	defer func() {
		// On a panic the assignment is lost: Close only logs the unpaired creations.
		err = errors.Join(err, km.Close())
	}()
	return fn(km)
}

// NewDoor creates a locked door and places its key in the oldest empty key room, if any.
func (km *Keymaster) NewDoor() *world.Door {
	door := world.NewDoor()
	keys := world.NewInventory()
	if err := door.LockAndTakeKey(keys); err != nil {
		panic(fmt.Sprintf("build: new door gave no key: %v", err))
	}

	km.unplacedKeys.Enqueue(keys)
	km.keys++
	km.placeKeys()
	return door
}

// NewKeyRoom creates an empty key room and places the oldest unplaced key in it, if any.
func (km *Keymaster) NewKeyRoom() *world.Room {
	room := world.NewRoom()

	km.emptyKeyRooms.Enqueue(room)
	km.rooms++
	km.placeKeys()
	return room
}

// Pending returns how many keys and key rooms are waiting for a partner
func (km *Keymaster) Pending() (keys, rooms int) {
	return km.keys, km.rooms
}

// Close checks that every door has a key room and every key room a key.
// It returns ErrUnmatchedCreation otherwise and may be called more than once.
func (km *Keymaster) Close() error {
	if km.keys > 0 || km.rooms > 0 {
		km.logger.Warn("closing keymaster with unpaired creations",
			"unplaced_keys", km.keys,
			"empty_rooms", km.rooms,
		)
		return ErrUnmatchedCreation
	}
	return nil
}

func (km *Keymaster) placeKeys() {
	for !km.unplacedKeys.Empty() && !km.emptyKeyRooms.Empty() {
		keys := km.unplacedKeys.Dequeue()
		room := km.emptyKeyRooms.Dequeue()
		km.keys--
		km.rooms--

		// Every queued inventory holds the single key of its door.
		if err := room.Pass().MoveFirstFrom(keys); err != nil {
			panic(fmt.Sprintf("build: placing key: %v", err))
		}

		km.placed++
		km.logger.Debug("key placed",
			"pair", km.placed,
			"unplaced_keys", km.keys,
			"empty_rooms", km.rooms,
		)
	}
}
