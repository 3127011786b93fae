package world

import (
	"fmt"

	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// PalettedContainer decodes one "paletted container" as sent in a chunk
// section: a bits-per-entry byte, an optional indirect palette, and a
// bit-packed array of entriesPerLong-per-long values. Block states and
// biomes both use this shape, with different entry counts and different
// indirect/direct thresholds.
//
// Mutation (Set) expands the packed storage into a plain []int32 the first
// time it's called rather than recomputing a bit width and repacking, the
// simplification real clients make too: chunk data is read far more often
// than it's mutated, and a client never needs to re-serialize a chunk
// section back onto the wire.
type PalettedContainer struct {
	bitsPerEntry   int
	indirect       bool
	palette        []int32
	entriesPerLong int
	data           []uint64
	length         int
	expanded       []int32
}

// DecodePalettedContainer reads a paletted container holding length entries,
// using an indirect palette while bitsPerEntry is within
// [minIndirectBits, maxIndirectBits] and falling back to the direct global
// palette above that.
func DecodePalettedContainer(buf *ns.PacketBuffer, length, minIndirectBits, maxIndirectBits int) (*PalettedContainer, error) {
	bits, err := buf.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("read bits per entry: %w", err)
	}

	pc := &PalettedContainer{bitsPerEntry: int(bits), length: length}

	switch {
	case pc.bitsPerEntry == 0:
		single, err := buf.ReadVarInt()
		if err != nil {
			return nil, fmt.Errorf("read single-valued palette entry: %w", err)
		}
		pc.palette = []int32{int32(single)}
	case pc.bitsPerEntry <= maxIndirectBits:
		if pc.bitsPerEntry < minIndirectBits {
			pc.bitsPerEntry = minIndirectBits
		}
		pc.indirect = true
		count, err := buf.ReadVarInt()
		if err != nil {
			return nil, fmt.Errorf("read palette length: %w", err)
		}
		pc.palette = make([]int32, count)
		for i := range pc.palette {
			v, err := buf.ReadVarInt()
			if err != nil {
				return nil, fmt.Errorf("read palette entry %d: %w", i, err)
			}
			pc.palette[i] = int32(v)
		}
	default:
		// Direct: entries are global palette ids with no indirection table.
	}

	if pc.bitsPerEntry > 0 {
		pc.entriesPerLong = 64 / pc.bitsPerEntry
	}

	dataLen, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("read data array length: %w", err)
	}
	pc.data = make([]uint64, dataLen)
	for i := range pc.data {
		v, err := buf.ReadInt64()
		if err != nil {
			return nil, fmt.Errorf("read data array long %d: %w", i, err)
		}
		pc.data[i] = uint64(v)
	}

	return pc, nil
}

// Get returns the global id stored at index.
func (pc *PalettedContainer) Get(index int) int32 {
	if pc.expanded != nil {
		return pc.expanded[index]
	}
	return pc.getPacked(index)
}

func (pc *PalettedContainer) getPacked(index int) int32 {
	if pc.bitsPerEntry == 0 {
		return pc.palette[0]
	}
	longIndex := index / pc.entriesPerLong
	bitOffset := uint(index%pc.entriesPerLong) * uint(pc.bitsPerEntry)
	mask := uint64(1)<<uint(pc.bitsPerEntry) - 1
	raw := (pc.data[longIndex] >> bitOffset) & mask
	if pc.indirect {
		if int(raw) >= len(pc.palette) {
			return 0
		}
		return pc.palette[raw]
	}
	return int32(raw)
}

// Set replaces the value at index and returns the previous one.
func (pc *PalettedContainer) Set(index int, value int32) int32 {
	if pc.expanded == nil {
		pc.expanded = make([]int32, pc.length)
		for i := range pc.expanded {
			pc.expanded[i] = pc.getPacked(i)
		}
	}
	old := pc.expanded[index]
	pc.expanded[index] = value
	return old
}

// Len reports how many entries this container holds (4096 for block states,
// 64 for biomes).
func (pc *PalettedContainer) Len() int {
	return pc.length
}

// BitsPerEntry returns the palette bit width needed to address n distinct
// ids, given an indirect range of [minBits, maxIndirectBits] and the direct
// width used once n no longer fits in an indirect palette. This mirrors the
// width a server's paletted container would pick when building one from
// scratch; this client never re-serializes chunk sections, so the function
// exists for parity with the invariant rather than for any encode path.
func BitsPerEntry(n, minBits, maxIndirectBits, directBits int) int {
	if n <= 1 {
		return 0
	}
	bits := bitsNeeded(n)
	if bits < minBits {
		bits = minBits
	}
	if bits > maxIndirectBits {
		return directBits
	}
	return bits
}

func bitsNeeded(n int) int {
	bits := 0
	for (1 << uint(bits)) < n {
		bits++
	}
	return bits
}
