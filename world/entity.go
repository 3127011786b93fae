package world

import (
	"sync"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// Vec3 is a double-precision position or velocity vector.
type Vec3 struct {
	X, Y, Z float64
}

// Entity is this client's view of one tracked entity: position, rotation,
// and the opaque metadata blob Set Entity Metadata last sent for it.
type Entity struct {
	ID       int32
	UUID     ns.UUID
	Type     int32
	Pos      Vec3
	Velocity Vec3
	Yaw      float32
	Pitch    float32
	HeadYaw  float32
	OnGround bool
	Metadata []byte
}

// EntityStorage is the set of entities currently tracked for one dimension,
// indexed by both protocol entity id and UUID.
type EntityStorage struct {
	mu     sync.RWMutex
	byID   map[int32]*Entity
	byUUID map[ns.UUID]int32
}

// NewEntityStorage returns an empty EntityStorage.
func NewEntityStorage() *EntityStorage {
	return &EntityStorage{
		byID:   make(map[int32]*Entity),
		byUUID: make(map[ns.UUID]int32),
	}
}

// Add registers a newly spawned entity, replacing any previous entity with
// the same id.
func (es *EntityStorage) Add(e *Entity) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.byID[e.ID] = e
	es.byUUID[e.UUID] = e.ID
}

// Remove discards the entity with the given id.
func (es *EntityStorage) Remove(id int32) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if e, ok := es.byID[id]; ok {
		delete(es.byUUID, e.UUID)
		delete(es.byID, id)
	}
}

// Get returns the entity with the given protocol id.
func (es *EntityStorage) Get(id int32) (*Entity, bool) {
	es.mu.RLock()
	defer es.mu.RUnlock()
	e, ok := es.byID[id]
	return e, ok
}

// GetByUUID returns the entity with the given UUID.
func (es *EntityStorage) GetByUUID(uuid ns.UUID) (*Entity, bool) {
	es.mu.RLock()
	defer es.mu.RUnlock()
	id, ok := es.byUUID[uuid]
	if !ok {
		return nil, false
	}
	return es.byID[id], true
}

// MoveDelta applies a relative position update, as carried by Update Entity
// Position packets (the 1/4096 fixed-point delta encoding is already
// resolved by the packet's own Decode into plain deltas here).
func (es *EntityStorage) MoveDelta(id int32, dx, dy, dz float64, onGround bool) {
	es.mu.Lock()
	defer es.mu.Unlock()
	e, ok := es.byID[id]
	if !ok {
		return
	}
	e.Pos.X += dx
	e.Pos.Y += dy
	e.Pos.Z += dz
	e.OnGround = onGround
}

// Teleport applies an absolute position update.
func (es *EntityStorage) Teleport(id int32, pos Vec3, yaw, pitch float32, onGround bool) {
	es.mu.Lock()
	defer es.mu.Unlock()
	e, ok := es.byID[id]
	if !ok {
		return
	}
	e.Pos = pos
	e.Yaw = yaw
	e.Pitch = pitch
	e.OnGround = onGround
}

// SetHeadYaw updates just the head-yaw component of an entity's rotation,
// as carried by Set Head Rotation (distinct from the body yaw the move/
// teleport packets update).
func (es *EntityStorage) SetHeadYaw(id int32, headYaw float32) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if e, ok := es.byID[id]; ok {
		e.HeadYaw = headYaw
	}
}

// SetMetadata replaces the raw metadata blob for an entity.
func (es *EntityStorage) SetMetadata(id int32, data []byte) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if e, ok := es.byID[id]; ok {
		e.Metadata = data
	}
}

// Find returns the first entity matching pred, in unspecified order.
func (es *EntityStorage) Find(pred func(*Entity) bool) (*Entity, bool) {
	es.mu.RLock()
	defer es.mu.RUnlock()
	for _, e := range es.byID {
		if pred(e) {
			return e, true
		}
	}
	return nil, false
}

// All returns a snapshot slice of every tracked entity.
func (es *EntityStorage) All() []*Entity {
	es.mu.RLock()
	defer es.mu.RUnlock()
	out := make([]*Entity, 0, len(es.byID))
	for _, e := range es.byID {
		out = append(out, e)
	}
	return out
}
