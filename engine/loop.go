package engine

import (
	"time"

	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/events"
	"github.com/oxidian/sandpit/input"
)

// TickDuration is the wall-clock length of one simulation step
const TickDuration = time.Second / constant.TickRate

// maxBacklog caps how much wall-clock debt one Advance call will work
// off. A stalled frame (debugger, terminal suspend) slows the simulation
// down instead of firing thousands of catch-up ticks; within the
// simulated timeline ticks are still never skipped or merged.
const maxBacklog = 250 * time.Millisecond

// Runner drives the fixed-step simulation from a variable-rate frame
// loop. The renderer calls Advance once per frame with the elapsed wall
// time; the runner converts that into zero or more whole ticks.
type Runner struct {
	player *Player
	acc    time.Duration
	events []events.Event
}

func NewRunner(p *Player) *Runner {
	return &Runner{
		player: p,
		events: make([]events.Event, 0, 16),
	}
}

// Advance steps the simulation for the elapsed wall time and returns the
// events of every tick that ran, in order. The slice is reused across
// calls.
func (r *Runner) Advance(elapsed time.Duration, in input.Snapshot) []events.Event {
	r.events = r.events[:0]

	r.acc += elapsed
	if r.acc > maxBacklog {
		r.acc = maxBacklog
	}

	for r.acc >= TickDuration {
		r.acc -= TickDuration
		r.events = append(r.events, r.player.Tick(in)...)
	}
	return r.events
}

// Player exposes the simulated actor for rendering
func (r *Runner) Player() *Player {
	return r.player
}
