package protocol

import (
	"fmt"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// registryKey identifies a packet type by the (protocol phase, direction, id)
// triple the wire protocol actually keys packets on — each state keeps its
// own packet ID counter, so the same id means something different in
// StateLogin than it does in StatePlay.
type registryKey struct {
	state State
	bound Bound
	id    ns.VarInt
}

// Factory produces a fresh, zero-valued Packet ready to have Read called on
// it. Every entry in a Registry is one of these rather than a shared
// instance, since packets carry per-message state.
type Factory func() Packet

// Registry maps (state, bound, id) to the Packet implementation responsible
// for decoding and encoding it. A connection keeps one Registry per
// direction it needs to decode; packets.RegisterDefaults fills one with every
// packet this module implements.
type Registry struct {
	factories map[registryKey]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[registryKey]Factory)}
}

// Register associates a packet id/state/bound with a factory. Registering
// the same key twice is a programmer error and panics, since it means two
// packet types silently disagree about their identity.
func (r *Registry) Register(state State, bound Bound, id ns.VarInt, factory Factory) {
	key := registryKey{state: state, bound: bound, id: id}
	if _, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("protocol: duplicate packet registration for state=%d bound=%d id=0x%02X", state, bound, id))
	}
	r.factories[key] = factory
}

// New creates a zero-valued Packet for the given key, or reports false if no
// packet is registered for it. An unregistered id is routine — the registry
// only carries the subset of packets this module interprets — callers treat
// it as "ignore, but keep reading the stream" rather than an error.
func (r *Registry) New(state State, bound Bound, id ns.VarInt) (Packet, bool) {
	factory, ok := r.factories[registryKey{state: state, bound: bound, id: id}]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Decode looks up the packet type for wire.PacketID under the given state
// and bound, and if known, reads wire.Data into it. Unknown packet ids are
// returned as (nil, false, nil) rather than an error.
func (r *Registry) Decode(wire *WirePacket, state State, bound Bound) (Packet, bool, error) {
	p, ok := r.New(state, bound, wire.PacketID)
	if !ok {
		return nil, false, nil
	}
	buf := ns.NewReader(wire.Data)
	if err := p.Read(buf); err != nil {
		return nil, true, fmt.Errorf("decode packet state=%d bound=%d id=0x%02X: %w", state, bound, wire.PacketID, err)
	}
	return p, true, nil
}
