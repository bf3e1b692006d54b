package world

import (
	"github.com/google/uuid"
)

type doorState int

const (
	doorClosed doorState = iota
	doorLocked
	doorOpened
)

// Door represents a door that connects a room to a corridor.
// A new door is closed and holds its own key. Locking it hands the key to
// someone else; it opens again for whoever presents a key.
type Door struct {
	ID       uuid.UUID
	RoomName string // Name of the room this door belongs to

	state doorState
	key   *Inventory
}

// NewDoor creates a closed, unlocked door holding a freshly minted key
func NewDoor() *Door {
	id := uuid.New()
	return &Door{
		ID:  id,
		key: NewInventoryWith(NewKey(id)),
	}
}

// LockAndTakeKey locks the door and moves its key into receiver.
// Returns ErrEmptySource if the key was already handed out.
func (d *Door) LockAndTakeKey(receiver *Inventory) error {
	if err := receiver.MoveFirstFrom(d.key); err != nil {
		return err
	}
	d.state = doorLocked
	return nil
}

// Open opens the door. A locked door consumes one key from presented and
// returns false, leaving presented untouched, when none is there.
func (d *Door) Open(presented *Inventory) bool {
	switch d.state {
	case doorOpened:
		return true
	case doorLocked:
		if presented == nil {
			return false
		}
		key, ok := presented.Take(KindKey)
		if !ok {
			return false
		}
		d.key.put(key)
	}
	d.state = doorOpened
	return true
}

// IsLocked returns true until a key has been presented
func (d *Door) IsLocked() bool {
	return d.state == doorLocked
}

// IsOpened returns true once the door has been opened
func (d *Door) IsOpened() bool {
	return d.state == doorOpened
}

// IsTraversable returns true if the player can walk through the door
func (d *Door) IsTraversable() bool {
	return d.IsOpened()
}

// KeycardName returns the keycard name required to unlock this door
func (d *Door) KeycardName() string {
	return d.RoomName + " Keycard"
}

// DoorName returns the display name for this door
func (d *Door) DoorName() string {
	return d.RoomName + " Door"
}
