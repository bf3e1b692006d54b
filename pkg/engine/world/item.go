package world

import (
	"github.com/google/uuid"
)

// Kind identifies a variety of collectible item
type Kind uint8

// Item kinds
const (
	KindUnknown Kind = iota
	KindKey
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Collectible is anything an Inventory can hold.
// Inventories only ever look at the kind, never at the concrete type.
type Collectible interface {
	Kind() Kind
}

// Key opens a locked door.
// Any key opens any locked door; DoorID records which door minted it.
type Key struct {
	ID     uuid.UUID
	DoorID uuid.UUID
}

// NewKey creates a key minted by the given door
func NewKey(doorID uuid.UUID) *Key {
	return &Key{
		ID:     uuid.New(),
		DoorID: doorID,
	}
}

// Kind satisfies Collectible
func (k *Key) Kind() Kind {
	return KindKey
}
