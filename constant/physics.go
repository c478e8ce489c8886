package constant

import (
	"math"

	"github.com/oxidian/sandpit/vmath"
)

// Tuning values in float, px per reference frame (or per frame² for
// accelerations). Converted once below; nothing in the tick path touches
// these directly.
const (
	PlayerWidthFloat  = 12.0
	PlayerHeightFloat = 14.0

	WalkSpeedFloat        = 2.6
	JumpForceFloat        = 11.0
	GravityFloat          = 0.9
	TerminalVelocityFloat = 9.0
	FrictionBaseFloat     = 0.8 // per reference frame, baked to per-tick below

	WaterGravityFactorFloat = 0.4
	MoonGravityFactorFloat  = 0.25

	// Fastball: lift subtracted from gravity proportional to board speed
	FastballLiftFloat        = 0.35
	ReferenceMaxSpeedFloat   = 16.0
	AcceleratorForceFloat    = 7.0
	BoardDecayPerTickFloat   = 0.015
	LowFrictionExitFloat     = 0.2
	AnimMoveThresholdFloat   = 0.5
	MizukiriMinSpeedFloat    = 8.0
	MizukiriAngleDegrees     = 15.0
	MizukiriBounceFactor     = 0.5
	SwimJumpFactorFloat      = 0.55
	WaterJumpWindowFloat     = -3.0 // swim jump allowed while vy above this
	HeadBreakSpeedFloat      = -6.0 // upward speed required to break a ceiling block
	HeadBreakReboundFloat    = 1.5  // downward velocity after a head break
	CollisionEpsilonFloat    = 0.01 // px, snap offset at tile boundaries
	KnockbackRangeFloat      = 2600.0
	BlastDistanceOffsetFloat = 8.0
)

const (
	// JumpPadMaxStack clamps the launch table index
	JumpPadMaxStack = 128
	// TNTStackMultiplier converts stacked TNT count to a super-launch index
	TNTStackMultiplier = 20
	// AcceleratorCooldownTicks gates repeated board boosts from one tile
	AcceleratorCooldownTicks = 360
)

// Pre-computed Q20.12 physics constants.
// Initialized once, consumed by physics and engine to keep FromFloat out
// of the hot path.
var (
	TileSize     = vmath.FromInt(TilePx)
	PlayerWidth  = vmath.FromFloat(PlayerWidthFloat)
	PlayerHeight = vmath.FromFloat(PlayerHeightFloat)

	TimeScaleFixed = vmath.FromFloat(TimeScale)

	WalkSpeed        = vmath.FromFloat(WalkSpeedFloat)
	JumpForce        = vmath.FromFloat(JumpForceFloat)
	TerminalVelocity = vmath.FromFloat(TerminalVelocityFloat)

	// GravityTick is the per-tick velocity increment (frame gravity scaled
	// to one tick)
	GravityTick = vmath.Mul(vmath.FromFloat(GravityFloat), TimeScaleFixed)

	// FrictionFactor = 0.8^TimeScale, per tick
	FrictionFactor = vmath.FromFloat(math.Pow(FrictionBaseFloat, TimeScale))

	WaterGravityFactor = vmath.FromFloat(WaterGravityFactorFloat)
	MoonGravityFactor  = vmath.FromFloat(MoonGravityFactorFloat)

	FastballLiftTick  = vmath.Mul(vmath.FromFloat(FastballLiftFloat), TimeScaleFixed)
	ReferenceMaxSpeed = vmath.FromFloat(ReferenceMaxSpeedFloat)
	AcceleratorForce  = vmath.FromFloat(AcceleratorForceFloat)
	// FastballExit deactivates fastball lift once board speed drops below
	// a quarter of the reference acceleration amount
	FastballExit = vmath.FromFloat(AcceleratorForceFloat / 4)

	BoardDecayPerTick = vmath.FromFloat(BoardDecayPerTickFloat)
	LowFrictionExit   = vmath.FromFloat(LowFrictionExitFloat)

	AnimMoveThreshold = vmath.FromFloat(AnimMoveThresholdFloat)

	MizukiriMinSpeed = vmath.FromFloat(MizukiriMinSpeedFloat)
	// MizukiriTan is tan(15°); the shallow-angle test |vy| < |vx|*tan15
	// runs entirely in fixed point
	MizukiriTan     = vmath.FromFloat(math.Tan(MizukiriAngleDegrees * math.Pi / 180))
	MizukiriBounce  = vmath.FromFloat(JumpForceFloat * MizukiriBounceFactor)
	SwimJumpForce   = vmath.FromFloat(JumpForceFloat * SwimJumpFactorFloat)
	WaterJumpWindow = vmath.FromFloat(WaterJumpWindowFloat)

	HeadBreakSpeed   = vmath.FromFloat(HeadBreakSpeedFloat)
	HeadBreakRebound = vmath.FromFloat(HeadBreakReboundFloat)

	CollisionEpsilon = vmath.FromFloat(CollisionEpsilonFloat)

	KnockbackRange      = vmath.FromFloat(KnockbackRangeFloat)
	BlastDistanceOffset = vmath.FromFloat(BlastDistanceOffsetFloat)
)

// JumpPadLaunch holds jumpForce * sqrt(n) for stack counts 0..128,
// pre-computed so pad launches never hit a runtime square root.
var JumpPadLaunch [JumpPadMaxStack + 1]int64

func init() {
	for n := range JumpPadLaunch {
		JumpPadLaunch[n] = vmath.FromFloat(JumpForceFloat * math.Sqrt(float64(n)))
	}
}
