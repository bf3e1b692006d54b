package world

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
)

// lockedDoor returns a locked door and the inventory holding its key
func lockedDoor(t *testing.T) (*Door, *Inventory) {
	t.Helper()
	d := NewDoor()
	holder := NewInventory()
	if err := d.LockAndTakeKey(holder); err != nil {
		t.Fatalf("LockAndTakeKey: unexpected error: %v", err)
	}
	return d, holder
}

func TestNewDoor_ClosedHoldingKey(t *testing.T) {
	d := NewDoor()
	testutil.AssertEqual(t, "locked", d.IsLocked(), false)
	testutil.AssertEqual(t, "opened", d.IsOpened(), false)
	testutil.AssertEqual(t, "traversable", d.IsTraversable(), false)
	testutil.AssertEqual(t, "key count", d.key.Len(), 1)
}

func TestDoor_LockAndTakeKey(t *testing.T) {
	d, holder := lockedDoor(t)

	testutil.AssertEqual(t, "locked", d.IsLocked(), true)
	testutil.AssertEqual(t, "door keys", d.key.Len(), 0)

	items := slices.Collect(holder.Items())
	if len(items) != 1 {
		t.Fatalf("holder has %d items, want 1", len(items))
	}
	key, ok := items[0].(*Key)
	if !ok {
		t.Fatalf("holder item = %T, want *Key", items[0])
	}
	testutil.AssertEqual(t, "key door id", key.DoorID, d.ID)
}

func TestDoor_LockAndTakeKey_Twice(t *testing.T) {
	d, _ := lockedDoor(t)
	err := d.LockAndTakeKey(NewInventory())
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("second LockAndTakeKey error = %v, want ErrEmptySource", err)
	}
}

func TestDoor_Open_WithKey(t *testing.T) {
	d, holder := lockedDoor(t)

	if !d.Open(holder) {
		t.Fatal("Open(holder with key) = false, want true")
	}
	testutil.AssertEqual(t, "opened", d.IsOpened(), true)
	testutil.AssertEqual(t, "traversable", d.IsTraversable(), true)
	testutil.AssertEqual(t, "locked", d.IsLocked(), false)
	testutil.AssertEqual(t, "holder keys", holder.Len(), 0)
}

func TestDoor_Open_AnyKeyFits(t *testing.T) {
	d, _ := lockedDoor(t)
	other := NewInventoryWith(NewKey(uuid.New()))

	if !d.Open(other) {
		t.Error("Open(inventory with another door's key) = false, want true")
	}
}

func TestDoor_Open_WithoutKey(t *testing.T) {
	tests := map[string]*Inventory{
		"nil inventory":   nil,
		"empty inventory": NewInventory(),
		"no key in there": NewInventoryWith(trinket{}),
	}

	for name, presented := range tests {
		t.Run(name, func(t *testing.T) {
			d, _ := lockedDoor(t)
			before := 0
			if presented != nil {
				before = presented.Len()
			}

			if d.Open(presented) {
				t.Error("Open = true, want false")
			}
			testutil.AssertEqual(t, "locked", d.IsLocked(), true)
			if presented != nil {
				testutil.AssertEqual(t, "presented len", presented.Len(), before)
			}
		})
	}
}

func TestDoor_Open_Unlocked(t *testing.T) {
	d := NewDoor()
	if !d.Open(nil) {
		t.Error("Open(nil) on unlocked door = false, want true")
	}
	testutil.AssertEqual(t, "opened", d.IsOpened(), true)
}

func TestDoor_Open_AlreadyOpened(t *testing.T) {
	d, holder := lockedDoor(t)
	d.Open(holder)

	spare := NewInventoryWith(NewKey(uuid.New()))
	if !d.Open(spare) {
		t.Error("Open on opened door = false, want true")
	}
	testutil.AssertEqual(t, "spare keys", spare.Len(), 1)
}

func TestDoor_Names(t *testing.T) {
	d := NewDoor()
	d.RoomName = "Vault"
	testutil.AssertEqual(t, "keycard", d.KeycardName(), "Vault Keycard")
	testutil.AssertEqual(t, "door", d.DoorName(), "Vault Door")
}

func TestNewRoom_Empty(t *testing.T) {
	r := NewRoom()
	if r.Pass() == nil {
		t.Fatal("Pass() = nil, want inventory")
	}
	testutil.AssertEqual(t, "has items", r.Pass().HasItems(), false)
}
