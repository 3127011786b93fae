package world

import (
	"sync"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// ChunkStorage is the chunk grid for one dimension: every loaded Chunk,
// keyed by ChunkPos, plus the view center/radius the server last told the
// client about. Chunks further than ViewDistance+1 (Chebyshev distance) from
// the view center are evicted whenever the center or radius changes,
// matching the one-chunk margin vanilla clients/servers keep around the
// nominal view distance.
type ChunkStorage struct {
	mu           sync.RWMutex
	minY, height int32
	numSections  int

	chunks       map[ChunkPos]*Chunk
	viewCenter   ChunkPos
	viewDistance int32
}

// NewChunkStorage returns an empty ChunkStorage for a dimension with the
// given vertical bounds and initial view distance.
func NewChunkStorage(minY, height int32, viewDistance int32) *ChunkStorage {
	return &ChunkStorage{
		minY:         minY,
		height:       height,
		numSections:  int(height / sectionWidth),
		chunks:       make(map[ChunkPos]*Chunk),
		viewDistance: viewDistance,
	}
}

// ReplaceWithPacketData decodes raw chunk section data and stores it at pos,
// replacing whatever chunk (if any) was previously there.
func (cs *ChunkStorage) ReplaceWithPacketData(pos ChunkPos, raw ns.ChunkData) error {
	chunk, err := DecodeChunk(pos, raw, cs.numSections)
	if err != nil {
		return err
	}
	cs.mu.Lock()
	cs.chunks[pos] = chunk
	cs.mu.Unlock()
	return nil
}

// Remove discards the chunk at pos, e.g. on an Unload Chunk packet.
func (cs *ChunkStorage) Remove(pos ChunkPos) {
	cs.mu.Lock()
	delete(cs.chunks, pos)
	cs.mu.Unlock()
}

// Get returns the chunk at pos, if loaded.
func (cs *ChunkStorage) Get(pos ChunkPos) (*Chunk, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	c, ok := cs.chunks[pos]
	return c, ok
}

// SetViewCenter updates the chunk the view-distance radius is centered on
// and evicts anything that falls outside it.
func (cs *ChunkStorage) SetViewCenter(pos ChunkPos) {
	cs.mu.Lock()
	cs.viewCenter = pos
	cs.evictLocked()
	cs.mu.Unlock()
}

// SetViewDistance updates the radius and evicts anything that falls outside
// the new one.
func (cs *ChunkStorage) SetViewDistance(distance int32) {
	cs.mu.Lock()
	cs.viewDistance = distance
	cs.evictLocked()
	cs.mu.Unlock()
}

func (cs *ChunkStorage) evictLocked() {
	limit := cs.viewDistance + 1
	for pos := range cs.chunks {
		if chebyshev(pos, cs.viewCenter) > limit {
			delete(cs.chunks, pos)
		}
	}
}

func chebyshev(a, b ChunkPos) int32 {
	dx := abs32(a.X - b.X)
	dz := abs32(a.Z - b.Z)
	if dx > dz {
		return dx
	}
	return dz
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// GetBlockState looks up the block at pos across chunks.
func (cs *ChunkStorage) GetBlockState(pos BlockPos) (BlockState, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	chunk, ok := cs.chunks[pos.ChunkPos()]
	if !ok {
		return 0, false
	}
	return chunk.BlockState(pos, cs.minY)
}

// SetBlockState replaces the block at pos and returns the previous value,
// used for Block Update / Multi Block Update packets.
func (cs *ChunkStorage) SetBlockState(pos BlockPos, state BlockState) (BlockState, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	chunk, ok := cs.chunks[pos.ChunkPos()]
	if !ok {
		return 0, false
	}
	return chunk.SetBlockState(pos, cs.minY, state)
}

// MinY and Height report the dimension's vertical bounds.
func (cs *ChunkStorage) MinY() int32   { return cs.minY }
func (cs *ChunkStorage) Height() int32 { return cs.height }

// Len returns the number of currently loaded chunks.
func (cs *ChunkStorage) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}
