package bot

import (
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// Init is published once, right after the connection reaches Game phase,
// carrying the profile the server confirmed during Login.
type Init struct {
	UUID     ns.UUID
	Username string
}

// Chat is published for every chat line the server sends, whether a system
// message or another player's message, already reduced to its plain-text
// fallback.
type Chat struct {
	Message string
}

// Tick is published once per scheduler run, after ingress dispatch and
// physics/pathfinder integration, so handlers can react to the bot's own
// freshly-updated state.
type Tick struct{}

// Death is published when a health update reports zero or less. Reason is
// always empty: the health update it is derived from carries no death
// message.
type Death struct {
	Reason string
}

// Packet is published for every decoded play-phase packet, after the
// scheduler's own housekeeping (chunk/entity/tablist updates) has run,
// letting user code observe raw protocol traffic without re-implementing
// dispatch.
type Packet struct {
	Raw jp.Packet
}

// Disconnect is published exactly once, when the connection tears down for
// any reason (server-initiated or local).
type Disconnect struct {
	Reason string
}

// AddPlayer is published for every UUID newly added to the tab list.
type AddPlayer struct {
	UUID ns.UUID
	Name string
}

// RemovePlayer is published for every UUID removed from the tab list.
type RemovePlayer struct {
	UUID ns.UUID
}

// UpdatePlayer is published when an existing tab-list entry's game mode,
// listed flag, latency, or display name changes.
type UpdatePlayer struct {
	UUID ns.UUID
}

// InventoryChanged is published whenever the bot's own inventory (window id
// 0) changes: a full replace, a single-slot patch, or a new held hotbar
// slot. It carries no payload, and ClientHandle has no accessor for the
// inventory contents.
type InventoryChanged struct{}
