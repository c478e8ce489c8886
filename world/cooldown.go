package world

// CooldownTable tracks per-tile cooldowns (accelerators, pads) keyed by
// tile coordinate. It is owned by the session and passed into the tick,
// never a package-level singleton, so parallel simulations stay isolated.
type CooldownTable struct {
	until map[[2]int]uint64
}

func NewCooldownTable() *CooldownTable {
	return &CooldownTable{until: make(map[[2]int]uint64)}
}

// Ready reports whether the tile at (x, y) is off cooldown at the given tick
func (c *CooldownTable) Ready(x, y int, tick uint64) bool {
	return tick >= c.until[[2]int{x, y}]
}

// Arm puts the tile on cooldown for the given number of ticks
func (c *CooldownTable) Arm(x, y int, tick uint64, duration uint64) {
	c.until[[2]int{x, y}] = tick + duration
}

// Reset clears every cooldown (session restart)
func (c *CooldownTable) Reset() {
	clear(c.until)
}
