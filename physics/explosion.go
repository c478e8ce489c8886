package physics

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/vmath"
)

// ExplosionImpulse converts a blast into a velocity delta for an actor
// centered at (px, py) moving at (vx, vy). radiusTiles and strength are
// Q20.12; strength scales quadratically (clustered charges).
//
// The impulse solves deltaV = -v·n + sqrt((v·n)² + 2*energy): an
// elastic-collision form that guarantees a minimum outward velocity no
// matter how fast the actor is already moving toward the blast.
//
// A blast at squared distance >= (radius*tileSize)² is a no-op. So is a
// blast centered exactly on the actor: the zero-distance guard keeps the
// direction vector defined.
func ExplosionImpulse(px, py, ox, oy, radiusTiles, strength, vx, vy int64) (dvx, dvy int64, hit bool) {
	dx := px - ox
	dy := py - oy
	distSq := vmath.Mul(dx, dx) + vmath.Mul(dy, dy)

	r := vmath.Mul(radiusTiles, constant.TileSize)
	if distSq >= vmath.Mul(r, r) || distSq <= 0 {
		return 0, 0, false
	}

	dist := vmath.Sqrt(distSq)
	if dist < constant.TileSize {
		// Point-blank clamp: at least one tile of separation in the
		// energy falloff, never a near-zero denominator
		dist = constant.TileSize
	}

	nx := vmath.Div(dx, dist)
	ny := vmath.Div(dy, dist)

	energy := vmath.Div(
		vmath.Mul(vmath.Mul(strength, strength), constant.KnockbackRange),
		dist+constant.BlastDistanceOffset,
	)

	vDotN := vmath.Mul(vx, nx) + vmath.Mul(vy, ny)

	disc := vmath.Mul(vDotN, vDotN) + 2*energy
	if disc < 0 {
		disc = 0
	}
	deltaV := -vDotN + vmath.Sqrt(disc)

	return vmath.Mul(deltaV, nx), vmath.Mul(deltaV, ny), true
}
