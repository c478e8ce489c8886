package input

// Snapshot is the per-tick intent sample consumed by the simulation.
// No repeat or throttle logic lives here; the collector decides what a
// held key means, the core only sees booleans.
type Snapshot struct {
	Left  bool
	Right bool
	Jump  bool
}
