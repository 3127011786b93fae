package world

import (
	"sync"

	"github.com/go-mcbot/client/nbt"
	"github.com/go-mcbot/client/protocol/packets"
)

// RegistryHolder collects the server-sent Registry Data packets from the
// Configuration phase: one ordered entry list per registry name (e.g.
// "minecraft:worldgen/biome", "minecraft:dimension_type"), indexed both by
// name and by the protocol id a packet later refers to the entry by.
type RegistryHolder struct {
	mu         sync.RWMutex
	registries map[string][]packets.RegistryDataEntry
}

// NewRegistryHolder builds a RegistryHolder from the accumulated
// per-registry entry lists a StateMachine gathers during Configuration.
func NewRegistryHolder(data map[string][]packets.RegistryDataEntry) *RegistryHolder {
	registries := make(map[string][]packets.RegistryDataEntry, len(data))
	for name, entries := range data {
		registries[name] = append([]packets.RegistryDataEntry(nil), entries...)
	}
	return &RegistryHolder{registries: registries}
}

// Lookup returns the NBT payload registered under name in the given
// registry, if any.
func (h *RegistryHolder) Lookup(registry, name string) (nbt.Tag, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, e := range h.registries[registry] {
		if string(e.ID) == name {
			return e.Data, true
		}
	}
	return nil, false
}

// LookupByIndex returns the entry at protocol index idx within registry,
// the form dimension type, biome and other registry references in Play
// packets actually carry.
func (h *RegistryHolder) LookupByIndex(registry string, idx int) (packets.RegistryDataEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entries := h.registries[registry]
	if idx < 0 || idx >= len(entries) {
		return packets.RegistryDataEntry{}, false
	}
	return entries[idx], true
}

// Names returns every entry name registered under registry, in protocol
// index order.
func (h *RegistryHolder) Names(registry string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entries := h.registries[registry]
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = string(e.ID)
	}
	return names
}
