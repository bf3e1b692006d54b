package world

// Room holds the items lying in one place of the level
type Room struct {
	Name string

	items *Inventory
}

// NewRoom creates a room with nothing in it
func NewRoom() *Room {
	return &Room{items: NewInventory()}
}

// Pass returns the room's inventory
func (r *Room) Pass() *Inventory {
	return r.items
}
