package engine

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/events"
	"github.com/oxidian/sandpit/vmath"
	"github.com/oxidian/sandpit/world"
)

// firstSolid scans every tile the bounding box overlaps, row-major, and
// returns the first solid one. One collision is resolved per axis per
// tick; tunneling at extreme velocity is accepted. extendY reaches below
// the box for the downward pass so a resting actor keeps contact with the
// tile it is snapped epsilon above.
func (p *Player) firstSolid(extendY int64) (tx, ty int, id world.BlockID, ok bool) {
	l, t, r, b := p.Rect()
	b += extendY
	x0, x1 := world.TileAt(l), world.TileAt(r-1)
	y0, y1 := world.TileAt(t), world.TileAt(b-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if id := p.grid.Block(x, y); id.Solid() {
				return x, y, id, true
			}
		}
	}
	return 0, 0, world.Air, false
}

// resolveHorizontal snaps the box out of the first solid tile on the side
// it approached from and kills all horizontal momentum, input and board
// alike.
func (p *Player) resolveHorizontal(total int64) {
	if total == 0 {
		return
	}

	tx, _, _, ok := p.firstSolid(0)
	if !ok {
		return
	}

	if total > 0 {
		p.x = vmath.FromInt(tx*constant.TilePx) - constant.PlayerWidth - constant.CollisionEpsilon
	} else {
		p.x = vmath.FromInt((tx+1)*constant.TilePx) + constant.CollisionEpsilon
	}
	p.vx = 0
	p.boardVx = 0
}

// resolveVertical handles landing, ceiling bumps, break-from-below and
// ceiling pad bounces. Grounded is derived from the absence of any solid
// tile in the scan, which is how walking off an edge is detected.
func (p *Player) resolveVertical() {
	var ext int64
	if p.vy >= 0 {
		ext = footProbeScale * constant.CollisionEpsilon
	}

	tx, ty, id, ok := p.firstSolid(ext)
	if !ok {
		p.grounded = false
		return
	}

	if p.vy >= 0 {
		// Landing: rest on top of the tile
		wasAirborne := !p.grounded
		p.y = vmath.FromInt(ty*constant.TilePx) - constant.PlayerHeight - constant.CollisionEpsilon
		p.vy = 0
		p.grounded = true
		p.mods.LowGravity = false
		if wasAirborne {
			p.emit(events.TypeLanded, nil)
		}
		return
	}

	// Ceiling: snap below the tile
	p.y = vmath.FromInt((ty+1)*constant.TilePx) + constant.CollisionEpsilon

	props := world.Props(id)
	if props.Breakable && props.Natural && p.vy < constant.HeadBreakSpeed {
		// Struck hard enough from below: shatter and rebound downward
		p.grid.SetBlock(tx, ty, world.Air)
		p.emit(events.TypeBlockBroken, &events.BlockBrokenPayload{X: tx, Y: ty, ID: id})
		p.vy = constant.HeadBreakRebound
		return
	}

	if id == world.JumpPad {
		n := p.countPadsUp(tx, ty)
		p.vy = constant.JumpPadLaunch[n]
		p.emit(events.TypeBounced, nil)
		return
	}

	p.vy = 0
}

// countPadsUp counts contiguous jump-pad tiles from (tx, ty) upward,
// clamped to the launch table
func (p *Player) countPadsUp(tx, ty int) int {
	n := 0
	for p.grid.Block(tx, ty) == world.JumpPad {
		n++
		ty--
		if n == constant.JumpPadMaxStack {
			break
		}
	}
	return n
}
