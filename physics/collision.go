package physics

import (
	"github.com/go-mcbot/client/world"
)

// SolidPredicate reports whether a block state should be treated as a full,
// solid collision cube. This package only resolves movement against
// full-cube blocks: azalea-physics's BitSetDiscreteVoxelShape/IndexMerger
// machinery (discrete_voxel_shape.rs) supports partial block shapes
// (slabs, stairs, fences) by merging per-block voxel shapes along each
// axis, but the merger tables (mergers.rs) weren't available to ground
// that against, and this client has no block-shape registry of its own to
// drive it with. Treating every solid block as a unit cube is the
// simplification a basic pathfinding/movement bot can live with; it is
// wrong at partial-height blocks.
type SolidPredicate func(world.BlockState) bool

// collidingBlocks returns the solid unit-cube AABBs inside box, querying
// storage for each candidate block coordinate.
func collidingBlocks(box AABB, storage *world.ChunkStorage, solid SolidPredicate) []AABB {
	minX, maxX := int32(floor(box.MinX))-1, int32(ceil(box.MaxX))+1
	minY, maxY := int32(floor(box.MinY))-1, int32(ceil(box.MaxY))+1
	minZ, maxZ := int32(floor(box.MinZ))-1, int32(ceil(box.MaxZ))+1

	var blocks []AABB
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				state, ok := storage.GetBlockState(world.BlockPos{X: x, Y: y, Z: z})
				if !ok || !solid(state) {
					continue
				}
				cube := unitCube(x, y, z)
				if cube.Intersects(box) {
					blocks = append(blocks, cube)
				}
			}
		}
	}
	return blocks
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

func ceil(v float64) float64 {
	return -floor(-v)
}

// ClipMovement resolves a movement attempt of (dx, dy, dz) from box against
// the solid blocks it would sweep through, returning the movement actually
// allowed. Axes are resolved in Y, X, Z order, matching vanilla's
// ground-before-horizontal collision order: resolving Y first lets the X/Z
// passes see the post-vertical-collision box when deciding how far the
// player can slide.
func ClipMovement(box AABB, dx, dy, dz float64, storage *world.ChunkStorage, solid SolidPredicate) (cdx, cdy, cdz float64) {
	sweep := box.Expand(dx, dy, dz).Inflate(0.5, 0.5, 0.5)
	blocks := collidingBlocks(sweep, storage, solid)

	cdy = clipAxisY(box, blocks, dy)
	box = box.Move(0, cdy, 0)

	cdx = clipAxisX(box, blocks, dx)
	box = box.Move(cdx, 0, 0)

	cdz = clipAxisZ(box, blocks, dz)

	return cdx, cdy, cdz
}

func clipAxisX(box AABB, blocks []AABB, dx float64) float64 {
	for _, b := range blocks {
		if box.MaxY <= b.MinY || box.MinY >= b.MaxY || box.MaxZ <= b.MinZ || box.MinZ >= b.MaxZ {
			continue
		}
		if dx > 0 && b.MinX >= box.MaxX {
			if d := b.MinX - box.MaxX; d < dx {
				dx = d
			}
		} else if dx < 0 && b.MaxX <= box.MinX {
			if d := b.MaxX - box.MinX; d > dx {
				dx = d
			}
		}
	}
	return dx
}

func clipAxisY(box AABB, blocks []AABB, dy float64) float64 {
	for _, b := range blocks {
		if box.MaxX <= b.MinX || box.MinX >= b.MaxX || box.MaxZ <= b.MinZ || box.MinZ >= b.MaxZ {
			continue
		}
		if dy > 0 && b.MinY >= box.MaxY {
			if d := b.MinY - box.MaxY; d < dy {
				dy = d
			}
		} else if dy < 0 && b.MaxY <= box.MinY {
			if d := b.MaxY - box.MinY; d > dy {
				dy = d
			}
		}
	}
	return dy
}

func clipAxisZ(box AABB, blocks []AABB, dz float64) float64 {
	for _, b := range blocks {
		if box.MaxX <= b.MinX || box.MinX >= b.MaxX || box.MaxY <= b.MinY || box.MinY >= b.MaxY {
			continue
		}
		if dz > 0 && b.MinZ >= box.MaxZ {
			if d := b.MinZ - box.MaxZ; d < dz {
				dz = d
			}
		} else if dz < 0 && b.MaxZ <= box.MinZ {
			if d := b.MaxZ - box.MinZ; d > dz {
				dz = d
			}
		}
	}
	return dz
}

// OnGround reports whether box is resting on a solid block directly below
// it, by probing a hair's width beneath its minimum Y.
func OnGround(box AABB, storage *world.ChunkStorage, solid SolidPredicate) bool {
	probe := box.Move(0, -0.01, 0)
	return len(collidingBlocks(probe.Inflate(-0.001, 0, -0.001), storage, solid)) > 0
}
