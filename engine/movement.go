package engine

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/events"
	"github.com/oxidian/sandpit/input"
	"github.com/oxidian/sandpit/physics"
	"github.com/oxidian/sandpit/vmath"
	"github.com/oxidian/sandpit/world"
)

// applyInput sets walk velocity and facing from the directional keys;
// with no input (or both keys) friction takes over.
func (p *Player) applyInput(in input.Snapshot) {
	switch {
	case in.Left == in.Right:
		p.vx = physics.Friction(p.vx)
	case in.Left:
		p.vx = -constant.WalkSpeed
		p.facingRight = false
	default:
		p.vx = constant.WalkSpeed
		p.facingRight = true
	}
}

// tryMizukiri reflects a shallow fall off a water surface into a small
// upward bounce. Conditions: falling, feet in surface water (cell above
// the foot tile is not water), combined speed above the skip threshold,
// and fall angle under 15°: |vy| < |vx| * tan(15°).
func (p *Player) tryMizukiri() {
	if p.vy <= 0 {
		return
	}

	fx := world.TileAt(p.x + constant.PlayerWidth/2)
	fy := world.TileAt(p.y + constant.PlayerHeight)
	if p.grid.Block(fx, fy) != world.Water || p.grid.Block(fx, fy-1) == world.Water {
		return
	}

	total := p.vx + p.boardVx
	if vmath.Abs(total) < constant.MizukiriMinSpeed {
		return
	}
	if vmath.Abs(p.vy) >= vmath.Mul(vmath.Abs(total), constant.MizukiriTan) {
		return
	}

	p.vy = -constant.MizukiriBounce
	p.emit(events.TypeMizukiriSkip, nil)
}

// footProbe is the sampling depth below the bounding box for "tile
// directly beneath the feet". Twice the collision epsilon: reaches into
// the ground tile when resting, reads air when truly airborne.
const footProbeScale = 2

func (p *Player) footTile() (int, int) {
	fx := world.TileAt(p.x + constant.PlayerWidth/2)
	fy := world.TileAt(p.y + constant.PlayerHeight + footProbeScale*constant.CollisionEpsilon)
	return fx, fy
}

// tryJumpPad launches off a pad stack beneath the feet. Returns true when
// a launch happened, which suppresses the normal jump for this tick.
//
// Contiguous pads give sqrt(n) scaling via the launch table. TNT stacked
// beneath the pads promotes the launch: count becomes tnt*20 (clamped),
// the charges are consumed, and one event per charge is emitted so the
// session can spawn the explosions. A moon-rock support under the stack
// arms low gravity for the flight.
func (p *Player) tryJumpPad(in input.Snapshot) bool {
	if !in.Jump {
		return false
	}

	bx, by := p.footTile()
	if p.grid.Block(bx, by) != world.JumpPad {
		return false
	}

	pads := 0
	y := by
	for p.grid.Block(bx, y) == world.JumpPad {
		pads++
		y++
	}

	tnt := 0
	for p.grid.Block(bx, y+tnt) == world.TNT {
		tnt++
	}

	count := pads
	super := false
	if tnt > 0 {
		count = tnt * constant.TNTStackMultiplier
		super = true
		for i := 0; i < tnt; i++ {
			p.grid.SetBlock(bx, y+i, world.Air)
			p.emit(events.TypeTNTTriggered, &events.TNTPayload{X: bx, Y: y + i})
		}
	}
	if count > constant.JumpPadMaxStack {
		count = constant.JumpPadMaxStack
	}

	// Support tile beneath the whole stack
	if p.grid.Block(bx, y+tnt) == world.MoonRock {
		p.mods.LowGravity = true
	}

	p.vy = -constant.JumpPadLaunch[count]
	p.grounded = false
	p.emit(events.TypeJumpPadLaunched, &events.JumpPadPayload{Count: count, Super: super})
	return true
}

// tryJump handles the normal ground jump, or the weaker swim jump when
// airborne but submerged with head room.
func (p *Player) tryJump(in input.Snapshot, submerged bool) {
	if !in.Jump {
		return
	}

	if p.grounded {
		p.vy = -constant.JumpForce
		p.grounded = false
		p.emit(events.TypeJumped, nil)
		return
	}

	if submerged && p.vy > constant.WaterJumpWindow && p.headClear() {
		p.vy = -constant.SwimJumpForce
		p.emit(events.TypeJumped, nil)
	}
}

// headClear probes half a tile above both top corners
func (p *Player) headClear() bool {
	py := world.TileAt(p.y - constant.TileSize/2)
	lx := world.TileAt(p.x)
	rx := world.TileAt(p.x + constant.PlayerWidth - 1)
	return !p.grid.Block(lx, py).Solid() && !p.grid.Block(rx, py).Solid()
}

// sampleAccelerator boosts board velocity when standing on an accelerator
// tile that is off cooldown. The cooldown table lives on the session so
// parallel simulations never share state.
func (p *Player) sampleAccelerator() {
	if !p.grounded {
		return
	}
	bx, by := p.footTile()
	if p.grid.Block(bx, by) != world.Accelerator {
		return
	}
	if !p.cooldowns.Ready(bx, by, p.tick) {
		return
	}

	dir := 1
	if !p.facingRight {
		dir = -1
	}
	p.applyBoard(dir)
	p.cooldowns.Arm(bx, by, p.tick, constant.AcceleratorCooldownTicks)
	p.emit(events.TypeAccelerated, nil)
}
