package world

import (
	"fmt"
	"sync"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// Player Info Update action bits, in the fixed field order the protocol
// walks them: add-player fields first, then chat session, then game mode,
// listed flag, latency, and display name, whichever subset Actions selects.
const (
	actionAddPlayer = 1 << iota
	actionInitializeChat
	actionUpdateGameMode
	actionUpdateListed
	actionUpdateLatency
	actionUpdateDisplayName
)

// TabListEntry is one row of the player list, built from Player Info Update
// and removed by Player Info Remove.
type TabListEntry struct {
	UUID        ns.UUID
	Name        string
	GameMode    int32
	Listed      bool
	Latency     int32
	DisplayName *ns.TextComponent
}

// TabList is the client's view of the player list (tab menu).
type TabList struct {
	mu      sync.RWMutex
	entries map[ns.UUID]*TabListEntry
}

// NewTabList returns an empty TabList.
func NewTabList() *TabList {
	return &TabList{entries: make(map[ns.UUID]*TabListEntry)}
}

// Get returns the entry for uuid, if present.
func (t *TabList) Get(uuid ns.UUID) (*TabListEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[uuid]
	return e, ok
}

// All returns a snapshot of every entry currently in the list.
func (t *TabList) All() []*TabListEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*TabListEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	return out
}

// Remove discards the entries named by a Player Info Remove packet.
func (t *TabList) Remove(uuids []ns.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, u := range uuids {
		delete(t.entries, u)
	}
}

// ApplyUpdate decodes the raw Entries payload of a Player Info Update packet
// against the Actions bit mask and merges the result into the list, adding
// entries that don't exist yet. It returns the UUIDs newly added (for
// AddPlayer event dispatch) and the UUIDs that already existed and were
// just updated (for UpdatePlayer event dispatch).
func (t *TabList) ApplyUpdate(actions uint8, raw []byte) (added, updated []ns.UUID, err error) {
	buf := ns.NewReader(raw)

	count, err := buf.ReadVarInt()
	if err != nil {
		return nil, nil, fmt.Errorf("read entry count: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 0; i < int(count); i++ {
		uuid, err := buf.ReadUUID()
		if err != nil {
			return added, updated, fmt.Errorf("read entry %d uuid: %w", i, err)
		}

		entry, existed := t.entries[uuid]
		if !existed {
			entry = &TabListEntry{UUID: uuid}
		}

		if actions&actionAddPlayer != 0 {
			name, err := buf.ReadString(16)
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d name: %w", i, err)
			}
			entry.Name = string(name)

			propCount, err := buf.ReadVarInt()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d property count: %w", i, err)
			}
			for p := 0; p < int(propCount); p++ {
				if _, err := buf.ReadString(64); err != nil { // property name
					return added, updated, fmt.Errorf("read entry %d property %d name: %w", i, p, err)
				}
				if _, err := buf.ReadString(32767); err != nil { // property value
					return added, updated, fmt.Errorf("read entry %d property %d value: %w", i, p, err)
				}
				hasSig, err := buf.ReadBool()
				if err != nil {
					return added, updated, fmt.Errorf("read entry %d property %d signature flag: %w", i, p, err)
				}
				if hasSig {
					if _, err := buf.ReadString(32767); err != nil {
						return added, updated, fmt.Errorf("read entry %d property %d signature: %w", i, p, err)
					}
				}
			}
		}

		if actions&actionInitializeChat != 0 {
			hasSession, err := buf.ReadBool()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d chat session flag: %w", i, err)
			}
			if hasSession {
				if _, err := buf.ReadUUID(); err != nil { // session id
					return added, updated, fmt.Errorf("read entry %d session id: %w", i, err)
				}
				if _, err := buf.ReadInt64(); err != nil { // public key expiry
					return added, updated, fmt.Errorf("read entry %d key expiry: %w", i, err)
				}
				keyLen, err := buf.ReadVarInt()
				if err != nil {
					return added, updated, fmt.Errorf("read entry %d key length: %w", i, err)
				}
				if _, err := buf.ReadFixedByteArray(int(keyLen)); err != nil {
					return added, updated, fmt.Errorf("read entry %d public key: %w", i, err)
				}
				sigLen, err := buf.ReadVarInt()
				if err != nil {
					return added, updated, fmt.Errorf("read entry %d signature length: %w", i, err)
				}
				if _, err := buf.ReadFixedByteArray(int(sigLen)); err != nil {
					return added, updated, fmt.Errorf("read entry %d signature: %w", i, err)
				}
			}
		}

		if actions&actionUpdateGameMode != 0 {
			gm, err := buf.ReadVarInt()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d game mode: %w", i, err)
			}
			entry.GameMode = int32(gm)
		}

		if actions&actionUpdateListed != 0 {
			listed, err := buf.ReadBool()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d listed flag: %w", i, err)
			}
			entry.Listed = bool(listed)
		}

		if actions&actionUpdateLatency != 0 {
			ping, err := buf.ReadVarInt()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d latency: %w", i, err)
			}
			entry.Latency = int32(ping)
		}

		if actions&actionUpdateDisplayName != 0 {
			present, err := buf.ReadBool()
			if err != nil {
				return added, updated, fmt.Errorf("read entry %d display name flag: %w", i, err)
			}
			if present {
				tc, err := buf.ReadTextComponent()
				if err != nil {
					return added, updated, fmt.Errorf("read entry %d display name: %w", i, err)
				}
				entry.DisplayName = &tc
			} else {
				entry.DisplayName = nil
			}
		}

		if !existed {
			added = append(added, uuid)
		} else {
			updated = append(updated, uuid)
		}
		t.entries[uuid] = entry
	}

	return added, updated, nil
}
