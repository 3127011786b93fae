package world

import (
	"fmt"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// ChunkPos identifies a chunk by its section-grid coordinates (block
// coordinates divided by 16, rounded toward negative infinity).
type ChunkPos struct {
	X, Z int32
}

// BlockPos identifies a single block by absolute world coordinates.
type BlockPos struct {
	X, Y, Z int32
}

// ChunkPos returns the chunk containing this block.
func (p BlockPos) ChunkPos() ChunkPos {
	return ChunkPos{X: floorDiv(p.X, sectionWidth), Z: floorDiv(p.Z, sectionWidth)}
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// BlockState is a block's global protocol state id. This client treats it
// as an opaque numeric handle; callers that need block names/properties
// resolve them against a block-state registry of their own.
type BlockState int32

// Chunk is one column of chunk sections plus the block entities and
// heightmaps the server sent alongside it.
type Chunk struct {
	Pos           ChunkPos
	Sections      []*ChunkSection
	BlockEntities []ns.BlockEntity
	Heightmaps    map[int32][]int64
}

// DecodeChunk parses the raw Data payload of a Chunk Data and Update Light
// packet into numSections vertical sections.
func DecodeChunk(pos ChunkPos, raw ns.ChunkData, numSections int) (*Chunk, error) {
	buf := ns.NewReader(raw.Data)
	sections := make([]*ChunkSection, numSections)
	for i := range sections {
		section, err := DecodeChunkSection(buf)
		if err != nil {
			return nil, fmt.Errorf("decode section %d: %w", i, err)
		}
		sections[i] = section
	}

	return &Chunk{
		Pos:           pos,
		Sections:      sections,
		BlockEntities: raw.BlockEntities,
		Heightmaps:    raw.Heightmaps,
	}, nil
}

// sectionIndex converts a world Y coordinate into a (section index, local Y)
// pair relative to minY, or ok=false if it falls outside the loaded sections.
func sectionIndexFor(y, minY int32, numSections int) (index int, localY int32, ok bool) {
	if y < minY {
		return 0, 0, false
	}
	rel := y - minY
	index = int(rel / sectionWidth)
	if index >= numSections {
		return 0, 0, false
	}
	return index, rel % sectionWidth, true
}

// BlockState returns the block at pos within this chunk, given the world's
// minY and section count (needed because a Chunk has no dimension context
// of its own).
func (c *Chunk) BlockState(pos BlockPos, minY int32) (BlockState, bool) {
	idx, localY, ok := sectionIndexFor(pos.Y, minY, len(c.Sections))
	if !ok {
		return 0, false
	}
	section := c.Sections[idx]
	localX := floorMod(pos.X, sectionWidth)
	localZ := floorMod(pos.Z, sectionWidth)
	return BlockState(section.Blocks.Get(blockIndex(int(localX), int(localY), int(localZ)))), true
}

// SetBlockState replaces the block at pos and returns the previous value.
func (c *Chunk) SetBlockState(pos BlockPos, minY int32, state BlockState) (BlockState, bool) {
	idx, localY, ok := sectionIndexFor(pos.Y, minY, len(c.Sections))
	if !ok {
		return 0, false
	}
	section := c.Sections[idx]
	localX := floorMod(pos.X, sectionWidth)
	localZ := floorMod(pos.Z, sectionWidth)
	old := section.Blocks.Set(blockIndex(int(localX), int(localY), int(localZ)), int32(state))
	return BlockState(old), true
}
