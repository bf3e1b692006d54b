package world

import (
	"fmt"
	"iter"
	"slices"
)

// Inventory is an ordered collection of collectibles for rooms, doors and players.
// Items are kept oldest first. An inventory belongs to exactly one holder and
// items only ever leave it by moving into another inventory.
type Inventory struct {
	items []Collectible
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{}
}

// NewInventoryWith creates an inventory holding a single seed item.
// A nil item gives an empty inventory.
func NewInventoryWith(item Collectible) *Inventory {
	inv := NewInventory()
	if item != nil {
		inv.items = append(inv.items, item)
	}
	return inv
}

// HasItems returns true if the inventory holds at least one item
func (inv *Inventory) HasItems() bool {
	return len(inv.items) > 0
}

// Len returns the number of items in the inventory
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// ItemKinds returns the kinds of the items, oldest first.
// The sequence reads the inventory each time it is ranged over.
func (inv *Inventory) ItemKinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for _, item := range inv.items {
			if !yield(item.Kind()) {
				return
			}
		}
	}
}

// Items returns the items, oldest first
func (inv *Inventory) Items() iter.Seq[Collectible] {
	return slices.Values(inv.items)
}

// MoveItemFrom takes the nth item (0-based) out of from and appends it to inv.
// Neither inventory changes when an error is returned.
func (inv *Inventory) MoveItemFrom(from *Inventory, nth int) error {
	if !from.HasItems() {
		return ErrEmptySource
	}
	if nth < 0 || nth >= len(from.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, nth, len(from.items))
	}

	item := from.items[nth]
	from.items = slices.Delete(from.items, nth, nth+1)
	inv.items = append(inv.items, item)
	return nil
}

// MoveFirstFrom moves the oldest item of from into inv
func (inv *Inventory) MoveFirstFrom(from *Inventory) error {
	return inv.MoveItemFrom(from, 0)
}

// SwapItems exchanges the whole contents of inv and other
func (inv *Inventory) SwapItems(other *Inventory) {
	inv.items, other.items = other.items, inv.items
}

// Take removes and returns the oldest item of the given kind
func (inv *Inventory) Take(kind Kind) (Collectible, bool) {
	i := slices.IndexFunc(inv.items, func(c Collectible) bool {
		return c.Kind() == kind
	})
	if i < 0 {
		return nil, false
	}
	item := inv.items[i]
	inv.items = slices.Delete(inv.items, i, i+1)
	return item, true
}

// put appends an item the caller already owns
func (inv *Inventory) put(item Collectible) {
	inv.items = append(inv.items, item)
}
