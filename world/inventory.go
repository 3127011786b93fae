package world

import (
	"sync"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// Inventory slot layout for the player's own (window id 0) inventory, fixed
// by vanilla regardless of server: crafting output, crafting grid, armor,
// main inventory, hotbar, offhand.
const (
	InventorySize    = 46
	CraftingOutput   = 0
	CraftingGridFrom = 1
	CraftingGridTo   = 4
	ArmorFrom        = 5
	ArmorTo          = 8
	MainFrom         = 9
	MainTo           = 35
	HotbarFrom       = 36
	HotbarTo         = 44
	OffhandSlot      = 45
)

// Inventory is the client's view of its own player inventory, built from Set
// Container Content (a full replace) and Set Container Slot (a single-slot
// patch), both scoped to window id 0 — this client never opens a server
// container (chest, furnace, ...), so only its own 46 slots are tracked.
type Inventory struct {
	mu      sync.RWMutex
	slots   [InventorySize]ns.Slot
	held    int32 // hotbar index, 0-8; the selected slot is HotbarFrom+held
	stateID ns.VarInt
}

// NewInventory returns an Inventory with every slot empty.
func NewInventory() *Inventory {
	inv := &Inventory{}
	for i := range inv.slots {
		inv.slots[i] = ns.EmptySlot()
	}
	return inv
}

// ReplaceAll installs a full slot set from a Set Container Content packet,
// along with the state id subsequent single-slot patches must echo back on
// any click (container interaction is out of scope, but the id is still
// tracked so a future click path has it ready).
func (inv *Inventory) ReplaceAll(slots []ns.Slot, stateID ns.VarInt) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i := range inv.slots {
		if i < len(slots) {
			inv.slots[i] = slots[i]
		} else {
			inv.slots[i] = ns.EmptySlot()
		}
	}
	inv.stateID = stateID
}

// Set applies a single-slot patch from a Set Container Slot packet. An index
// outside the 46-slot range is silently ignored (it belongs to whatever
// server container, if any, window id wasn't 0 for, which this client never
// tracks).
func (inv *Inventory) Set(index int32, item ns.Slot, stateID ns.VarInt) {
	if index < 0 || int(index) >= InventorySize {
		return
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots[index] = item
	inv.stateID = stateID
}

// Get returns a copy of the slot at index.
func (inv *Inventory) Get(index int32) (ns.Slot, bool) {
	if index < 0 || int(index) >= InventorySize {
		return ns.Slot{}, false
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[index], true
}

// SetHeld records which hotbar index (0-8) is currently selected, as carried
// by Set Held Item.
func (inv *Inventory) SetHeld(held int32) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.held = held
}

// Held returns the currently selected hotbar slot's inventory index and its
// contents.
func (inv *Inventory) Held() (int32, ns.Slot) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	idx := int32(HotbarFrom) + inv.held
	return idx, inv.slots[idx]
}

// All returns a snapshot of every slot, indexed the same way the wire format
// numbers them.
func (inv *Inventory) All() [InventorySize]ns.Slot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots
}
