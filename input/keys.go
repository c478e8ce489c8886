package input

import "github.com/gdamore/tcell/v2"

// holdTicks is how long a key reads as held after a press. Terminals
// deliver repeats but no release events, so a press opens a short hold
// window that auto-repeat keeps refreshing.
const holdTicks = 90 // 1/8 s at 720 Hz

// Collector turns tcell key events into per-tick snapshots
type Collector struct {
	leftUntil  uint64
	rightUntil uint64
	jumpUntil  uint64
	quit       bool
}

func NewCollector() *Collector {
	return &Collector{}
}

// HandleKey records a key event against the given simulation tick
func (c *Collector) HandleKey(ev *tcell.EventKey, tick uint64) {
	switch ev.Key() {
	case tcell.KeyLeft:
		c.leftUntil = tick + holdTicks
	case tcell.KeyRight:
		c.rightUntil = tick + holdTicks
	case tcell.KeyUp:
		c.jumpUntil = tick + holdTicks
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			c.leftUntil = tick + holdTicks
		case 'd':
			c.rightUntil = tick + holdTicks
		case ' ', 'w':
			c.jumpUntil = tick + holdTicks
		case 'q':
			c.quit = true
		}
	}
}

// Snapshot samples the held state for one tick
func (c *Collector) Snapshot(tick uint64) Snapshot {
	return Snapshot{
		Left:  tick < c.leftUntil,
		Right: tick < c.rightUntil,
		Jump:  tick < c.jumpUntil,
	}
}

// QuitRequested reports whether the session should end
func (c *Collector) QuitRequested() bool {
	return c.quit
}
