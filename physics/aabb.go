package physics

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// NewAABB builds an AABB with its minimum corner at (x, y, z) and the given
// width/height/depth.
func NewAABB(x, y, z, width, height, depth float64) AABB {
	return AABB{
		MinX: x, MinY: y, MinZ: z,
		MaxX: x + width, MaxY: y + height, MaxZ: z + depth,
	}
}

// PlayerBox returns the standing player hitbox with its feet at pos.
func PlayerBox(x, y, z float64) AABB {
	half := PlayerWidth / 2
	return AABB{
		MinX: x - half, MinY: y, MinZ: z - half,
		MaxX: x + half, MaxY: y + PlayerHeight, MaxZ: z + half,
	}
}

// Move translates the box by (dx, dy, dz).
func (a AABB) Move(dx, dy, dz float64) AABB {
	return AABB{
		MinX: a.MinX + dx, MinY: a.MinY + dy, MinZ: a.MinZ + dz,
		MaxX: a.MaxX + dx, MaxY: a.MaxY + dy, MaxZ: a.MaxZ + dz,
	}
}

// Expand grows the box to also cover its translation by (dx, dy, dz),
// without moving its original corner — used to build the sweep volume a
// movement step needs to check for block intersections.
func (a AABB) Expand(dx, dy, dz float64) AABB {
	b := a
	if dx < 0 {
		b.MinX += dx
	} else {
		b.MaxX += dx
	}
	if dy < 0 {
		b.MinY += dy
	} else {
		b.MaxY += dy
	}
	if dz < 0 {
		b.MinZ += dz
	} else {
		b.MaxZ += dz
	}
	return b
}

// Inflate grows (or shrinks, for negative values) the box by the given
// amount in every direction along each axis.
func (a AABB) Inflate(x, y, z float64) AABB {
	return AABB{
		MinX: a.MinX - x, MinY: a.MinY - y, MinZ: a.MinZ - z,
		MaxX: a.MaxX + x, MaxY: a.MaxY + y, MaxZ: a.MaxZ + z,
	}
}

// Intersects reports whether the two boxes overlap on every axis.
func (a AABB) Intersects(o AABB) bool {
	return a.MinX < o.MaxX && a.MaxX > o.MinX &&
		a.MinY < o.MaxY && a.MaxY > o.MinY &&
		a.MinZ < o.MaxZ && a.MaxZ > o.MinZ
}

// unitCube returns the solid-block AABB occupying the given block
// coordinates, the full-cube approximation this package uses for
// collision (see collision.go's doc comment for why).
func unitCube(x, y, z int32) AABB {
	fx, fy, fz := float64(x), float64(y), float64(z)
	return AABB{MinX: fx, MinY: fy, MinZ: fz, MaxX: fx + 1, MaxY: fy + 1, MaxZ: fz + 1}
}
