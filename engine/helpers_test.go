package engine

import (
	"testing"

	"github.com/oxidian/sandpit/events"
	"github.com/oxidian/sandpit/input"
	"github.com/oxidian/sandpit/world"
)

const (
	testGroundRow = 20
	testMapW      = 64
	testMapH      = 32
)

// groundWorld builds a flat map: air above row 20, stone below
func groundWorld() *world.TileMap {
	m := world.NewTileMap(testMapW, testMapH)
	for x := 0; x < testMapW; x++ {
		for y := testGroundRow; y < testMapH; y++ {
			m.SetBlock(x, y, world.Stone)
		}
	}
	return m
}

// standingPlayer spawns an actor with feet on the ground row at tileX
func standingPlayer(m *world.TileMap, tileX int) *Player {
	return NewPlayer(m, world.NewCooldownTable(), tileX, testGroundRow-1, m.SpanX(), m.SpanY())
}

// settle runs idle ticks until the grounded flag latches
func settle(t *testing.T, p *Player) {
	t.Helper()
	for i := 0; i < 20; i++ {
		p.Tick(input.Snapshot{})
		if p.Grounded() {
			return
		}
	}
	t.Fatal("player never grounded during settle")
}

// overlapsSolid reports whether the bounding box ends the tick inside a
// solid tile (the no-penetration invariant)
func overlapsSolid(p *Player) bool {
	x0, y0, x1, y1 := p.GridRect()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if p.grid.Block(x, y).Solid() {
				return true
			}
		}
	}
	return false
}

// hasEvent reports whether a drained tick produced an event of the type
func hasEvent(evs []events.Event, t events.Type) bool {
	for _, ev := range evs {
		if ev.Type == t {
			return true
		}
	}
	return false
}
