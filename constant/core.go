package constant

// Simulation rate. The core advances in discrete ticks; no tick is ever
// skipped or merged, determinism depends on it.
const (
	// TickRate is simulation steps per simulated second
	TickRate = 720

	// ReferenceFrameRate is the legacy 60 fps frame the tuning values are
	// expressed in. Velocities are px per reference frame; integration
	// scales by TimeScale every tick.
	ReferenceFrameRate = 60

	// TimeScale is the fraction of a reference frame covered by one tick
	TimeScale = float64(ReferenceFrameRate) / float64(TickRate)
)

// Tile geometry
const (
	// TilePx is the tile edge in pixels. Power of two: tile coordinates
	// derive from fixed-point positions with arithmetic shifts only.
	TilePx    = 16
	TileShift = 4 // log2(TilePx)
)
