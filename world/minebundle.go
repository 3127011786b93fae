package world

// MineBundle tracks progress digging a single block: the accumulated
// damage fraction and the speed multiplier the currently held tool gives
// against the block being mined, mirroring the auto-tool break-speed
// bookkeeping a vanilla client keeps client-side to predict when a dig
// completes.
type MineBundle struct {
	Target   BlockPos
	Hardness float64
	Progress float64
}

// StartMining begins a new dig at pos against a block of the given
// hardness, resetting any in-progress dig.
func (m *MineBundle) StartMining(pos BlockPos, hardness float64) {
	m.Target = pos
	m.Hardness = hardness
	m.Progress = 0
}

// BreakSpeed computes the per-tick damage a tool of the given speed
// (1.0 for bare hands) applies, accounting for the penalties vanilla
// applies when not on the ground or when submerged without Aqua Affinity.
func BreakSpeed(toolSpeed float64, onGround, inWater, hasAquaAffinity, canHarvest bool) float64 {
	speed := toolSpeed
	if inWater && !hasAquaAffinity {
		speed /= 5
	}
	if !onGround {
		speed /= 5
	}
	if !canHarvest {
		return speed / 100 / 30
	}
	return speed
}

// Tick advances the dig by one game tick at the given break speed, against
// the hardness recorded by StartMining, and reports whether the block has
// broken.
func (m *MineBundle) Tick(speed float64) bool {
	if m.Hardness <= 0 {
		m.Progress = 1
		return true
	}
	m.Progress += speed / (m.Hardness * 30)
	return m.Progress >= 1
}
