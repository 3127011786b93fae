package world

import (
	"fmt"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

const (
	sectionWidth     = 16
	blocksPerSection = sectionWidth * sectionWidth * sectionWidth
	biomesPerSection = 4 * 4 * 4
	blockMinIndirect = 4
	blockMaxIndirect = 8
	blockDirectBits  = 15
	biomeMinIndirect = 1
	biomeMaxIndirect = 3
	biomeDirectBits  = 6
)

// ChunkSection is one 16x16x16 vertical slice of a chunk: a block-state
// palette and a (4x4x4) biome palette, plus the non-air block count the
// server precomputed for lighting purposes.
type ChunkSection struct {
	BlockCount int16
	Blocks     *PalettedContainer
	Biomes     *PalettedContainer
}

// DecodeChunkSection reads one chunk section from buf, in the order the
// server writes them: block count, block-state container, biome container.
func DecodeChunkSection(buf *ns.PacketBuffer) (*ChunkSection, error) {
	count, err := buf.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("read block count: %w", err)
	}

	blocks, err := DecodePalettedContainer(buf, blocksPerSection, blockMinIndirect, blockMaxIndirect)
	if err != nil {
		return nil, fmt.Errorf("decode block states: %w", err)
	}
	biomes, err := DecodePalettedContainer(buf, biomesPerSection, biomeMinIndirect, biomeMaxIndirect)
	if err != nil {
		return nil, fmt.Errorf("decode biomes: %w", err)
	}

	return &ChunkSection{BlockCount: int16(count), Blocks: blocks, Biomes: biomes}, nil
}

func blockIndex(x, y, z int) int {
	return (y*sectionWidth+z)*sectionWidth + x
}
