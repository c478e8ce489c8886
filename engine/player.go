package engine

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/events"
	"github.com/oxidian/sandpit/input"
	"github.com/oxidian/sandpit/physics"
	"github.com/oxidian/sandpit/vmath"
	"github.com/oxidian/sandpit/world"
)

// Player owns the per-tick simulation state of the single controllable
// actor and sequences the physics, movement and collision passes into one
// deterministic step. All internal state is Q20.12; floats exist only at
// the public accessors.
type Player struct {
	grid      world.Grid
	cooldowns *world.CooldownTable

	// Top-left corner of the bounding box, fixed-point pixels
	x, y int64
	// Input velocity and board (accelerator momentum) velocity are
	// independent accumulators; only their sum integrates horizontally
	vx, vy  int64
	boardVx int64

	mods        physics.Modifiers
	grounded    bool
	facingRight bool

	// Presentation counters, not part of the physical invariants
	animTimer   uint32
	bubbleTimer uint32

	// Toroidal wrap spans, fixed-point pixels
	spanX, spanY int64

	tick    uint64
	events  []events.Event
	pending []events.Event
}

// NewPlayer creates an actor at the given tile, standing on the tile below
// it. The cooldown table is session-owned and shared with other tile
// interaction code.
func NewPlayer(grid world.Grid, cooldowns *world.CooldownTable, tileX, tileY int, spanX, spanY int64) *Player {
	p := &Player{
		grid:        grid,
		cooldowns:   cooldowns,
		facingRight: true,
		spanX:       spanX,
		spanY:       spanY,
		events:      make([]events.Event, 0, 8),
		pending:     make([]events.Event, 0, 4),
	}
	// Centered horizontally in the tile, feet on the tile floor
	p.x = vmath.FromInt(tileX*constant.TilePx) + (constant.TileSize-constant.PlayerWidth)/2
	p.y = vmath.FromInt((tileY+1)*constant.TilePx) - constant.PlayerHeight - constant.CollisionEpsilon
	return p
}

// Tick advances the simulation by exactly one step and returns the side
// effects it produced. The returned slice is reused; callers drain it
// before the next call.
func (p *Player) Tick(in input.Snapshot) []events.Event {
	p.tick++
	p.events = p.events[:0]
	if len(p.pending) > 0 {
		p.events = append(p.events, p.pending...)
		p.pending = p.pending[:0]
	}

	submerged := p.submerged()

	p.applyInput(in)
	p.tryMizukiri()
	if !p.tryJumpPad(in) {
		p.tryJump(in, submerged)
	}
	p.sampleAccelerator()

	p.boardVx, p.mods.LowFriction = physics.BoardDecay(p.boardVx, p.mods.LowFriction)
	p.vy, p.mods = physics.Gravity(p.vy, p.boardVx, submerged, p.mods)

	total := p.vx + p.boardVx
	p.x += vmath.Mul(total, constant.TimeScaleFixed)
	p.resolveHorizontal(total)

	p.y += vmath.Mul(p.vy, constant.TimeScaleFixed)
	p.resolveVertical()

	p.wrap()
	p.advanceTimers(total)

	return p.events
}

// submerged samples the body center tile once per tick
func (p *Player) submerged() bool {
	cx := world.TileAt(p.x + constant.PlayerWidth/2)
	cy := world.TileAt(p.y + constant.PlayerHeight/2)
	return p.grid.Block(cx, cy) == world.Water
}

// wrap relocates the actor across the toroidal seam once a coordinate
// leaves the span. The out-of-range bedrock sentinel walls off normal
// walking before the seam, so in play this only triggers through SetPos
// or impulse velocities large enough to tunnel the boundary tiles.
func (p *Player) wrap() {
	if p.x > p.spanX {
		p.x -= p.spanX
	} else if p.x < -constant.PlayerWidth {
		p.x += p.spanX
	}
	if p.y > p.spanY {
		p.y -= p.spanY
	} else if p.y < -constant.PlayerHeight {
		p.y += p.spanY
	}
}

func (p *Player) advanceTimers(total int64) {
	if vmath.Abs(total) > constant.AnimMoveThreshold || !p.grounded {
		p.animTimer++
	}
	hx := world.TileAt(p.x + constant.PlayerWidth/2)
	hy := world.TileAt(p.y + constant.PlayerHeight/4)
	if p.grid.Block(hx, hy) == world.Water {
		p.bubbleTimer++
	} else {
		p.bubbleTimer = 0
	}
}

func (p *Player) emit(t events.Type, payload any) {
	p.events = append(p.events, events.Event{Type: t, Tick: p.tick, Payload: payload})
}

// queue records an event raised between ticks (public impulse API); it
// surfaces in the next Tick's return value
func (p *Player) queue(t events.Type, payload any) {
	p.pending = append(p.pending, events.Event{Type: t, Tick: p.tick, Payload: payload})
}

// --- Public float-facing interface ---

func (p *Player) X() float64        { return vmath.ToFloat(p.x) }
func (p *Player) Y() float64        { return vmath.ToFloat(p.y) }
func (p *Player) VelX() float64     { return vmath.ToFloat(p.vx) }
func (p *Player) VelY() float64     { return vmath.ToFloat(p.vy) }
func (p *Player) BoardVel() float64 { return vmath.ToFloat(p.boardVx) }

func (p *Player) SetPos(x, y float64) {
	p.x = vmath.FromFloat(x)
	p.y = vmath.FromFloat(y)
}

func (p *Player) SetVel(vx, vy float64) {
	p.vx = vmath.FromFloat(vx)
	p.vy = vmath.FromFloat(vy)
}

func (p *Player) Grounded() bool               { return p.grounded }
func (p *Player) FacingRight() bool            { return p.facingRight }
func (p *Player) Modifiers() physics.Modifiers { return p.mods }
func (p *Player) AnimTimer() uint32            { return p.animTimer }
func (p *Player) BubbleTimer() uint32          { return p.bubbleTimer }
func (p *Player) TickCount() uint64            { return p.tick }

// Rect returns the bounding box in fixed-point pixels
func (p *Player) Rect() (l, t, r, b int64) {
	return p.x, p.y, p.x + constant.PlayerWidth, p.y + constant.PlayerHeight
}

// GridRect returns the tile range the bounding box overlaps, inclusive
func (p *Player) GridRect() (x0, y0, x1, y1 int) {
	l, t, r, b := p.Rect()
	return world.TileAt(l), world.TileAt(t), world.TileAt(r - 1), world.TileAt(b - 1)
}

// ApplyAcceleratorForce imparts board momentum in the given horizontal
// direction (+1 right, -1 left). Repeated boosts compose by energy, not
// addition: newMag = sqrt(prevMag² + addMag²).
func (p *Player) ApplyAcceleratorForce(dir int) {
	p.applyBoard(dir)
	p.queue(events.TypeAccelerated, nil)
}

func (p *Player) applyBoard(dir int) {
	force := constant.AcceleratorForce

	// Component of board velocity along the boost direction; an opposing
	// boost starts from zero rather than subtracting
	rel := p.boardVx
	if dir < 0 {
		rel = -rel
	}
	if rel < 0 {
		rel = 0
	}

	mag := vmath.Sqrt(vmath.Mul(rel, rel) + vmath.Mul(force, force))
	if dir < 0 {
		mag = -mag
	}
	p.boardVx = mag
	p.mods.LowFriction = true
	p.mods.Fastball = true
}

// ApplyExplosionImpulse knocks the actor away from a blast at (ox, oy).
// All arguments are Q20.12; radiusTiles is in tiles, strength scales with
// the clustered charge count.
func (p *Player) ApplyExplosionImpulse(ox, oy, radiusTiles, strength int64) {
	cx := p.x + constant.PlayerWidth/2
	cy := p.y + constant.PlayerHeight/2

	dvx, dvy, hit := physics.ExplosionImpulse(cx, cy, ox, oy, radiusTiles, strength, p.vx, p.vy)
	if !hit {
		return
	}
	p.vx += dvx
	p.vy += dvy
	p.grounded = false
	p.queue(events.TypeKnockedBack, nil)
}
