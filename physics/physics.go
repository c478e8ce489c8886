package physics

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/vmath"
)

// Modifiers are the independent movement modifier flags. They are not
// mutually exclusive and each decays on its own condition, so this stays
// a struct of named booleans rather than a mode enum.
type Modifiers struct {
	LowGravity  bool // armed by moon-rock pad supports, cleared on landing
	Fastball    bool // armed by accelerators, cleared when board speed fades
	LowFriction bool // armed by accelerators, cleared below the exit threshold
}

// Friction decays input velocity while no directional key is held.
// Truncating renormalization: the velocity reaches exactly zero instead
// of oscillating around -1 raw.
func Friction(vx int64) int64 {
	return vmath.MulTrunc(vx, constant.FrictionFactor)
}

// BoardDecay moves board velocity toward zero by a fixed per-tick amount,
// halved while low friction is active. Low friction switches off once the
// magnitude drops below the exit threshold.
func BoardDecay(boardVx int64, lowFriction bool) (int64, bool) {
	decay := constant.BoardDecayPerTick
	if lowFriction {
		decay >>= 1
	}

	switch {
	case boardVx > decay:
		boardVx -= decay
	case boardVx < -decay:
		boardVx += decay
	default:
		boardVx = 0
	}

	if lowFriction && vmath.Abs(boardVx) < constant.LowFrictionExit {
		lowFriction = false
	}
	return boardVx, lowFriction
}

// Gravity accumulates per-tick acceleration into vy, unless vy already
// meets terminal velocity. Modifier priority: submersion overrides low
// gravity; fastball lift applies independently and deactivates itself
// once board speed drops below a quarter of the accelerator force.
func Gravity(vy, boardVx int64, submerged bool, m Modifiers) (int64, Modifiers) {
	if vy >= constant.TerminalVelocity {
		return vy, m
	}

	g := constant.GravityTick
	if submerged {
		g = vmath.Mul(g, constant.WaterGravityFactor)
	} else if m.LowGravity {
		g = vmath.Mul(g, constant.MoonGravityFactor)
	}

	if m.Fastball {
		if vmath.Abs(boardVx) < constant.FastballExit {
			m.Fastball = false
		} else {
			// Lift proportional to board speed over the reference max;
			// can exceed gravity at full board, which is the point
			g -= vmath.MulDiv(constant.FastballLiftTick, vmath.Abs(boardVx), constant.ReferenceMaxSpeed)
		}
	}

	vy += g
	if vy > constant.TerminalVelocity {
		vy = constant.TerminalVelocity
	}
	return vy, m
}
