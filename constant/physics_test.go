package constant

import (
	"math"
	"testing"

	"github.com/oxidian/sandpit/vmath"
)

func TestJumpPadLaunchTable(t *testing.T) {
	if JumpPadLaunch[0] != 0 {
		t.Errorf("JumpPadLaunch[0] = %d, want 0", JumpPadLaunch[0])
	}
	if JumpPadLaunch[1] != JumpForce {
		t.Errorf("JumpPadLaunch[1] = %d, want JumpForce %d", JumpPadLaunch[1], JumpForce)
	}
	// Perfect squares are exact multiples of the jump force
	if want := vmath.FromFloat(JumpForceFloat * 2); JumpPadLaunch[4] != want {
		t.Errorf("JumpPadLaunch[4] = %d, want %d", JumpPadLaunch[4], want)
	}
	// Table is monotonic up to the clamp
	for n := 1; n <= JumpPadMaxStack; n++ {
		if JumpPadLaunch[n] <= JumpPadLaunch[n-1] {
			t.Fatalf("launch table not monotonic at n=%d", n)
		}
	}
	// Spot-check against float reference for a mid value
	got := vmath.ToFloat(JumpPadLaunch[20])
	want := JumpForceFloat * math.Sqrt(20)
	if math.Abs(got-want) > 0.001 {
		t.Errorf("JumpPadLaunch[20] = %v, want ~%v", got, want)
	}
}

func TestFrictionFactorRange(t *testing.T) {
	// Per-tick factor must decay but stay close to 1 at 720 Hz
	if FrictionFactor <= 0 || FrictionFactor >= vmath.Scale {
		t.Fatalf("FrictionFactor out of (0,1): %d", FrictionFactor)
	}
	if vmath.ToFloat(FrictionFactor) < 0.95 {
		t.Errorf("FrictionFactor %v unexpectedly harsh for a 1/12 frame tick", vmath.ToFloat(FrictionFactor))
	}
}

func TestGravityTickScaling(t *testing.T) {
	// Per-tick gravity is the frame value scaled by TimeScale
	want := vmath.Mul(vmath.FromFloat(GravityFloat), TimeScaleFixed)
	if GravityTick != want {
		t.Errorf("GravityTick = %d, want %d", GravityTick, want)
	}
	if GravityTick <= 0 || GravityTick >= vmath.FromFloat(GravityFloat) {
		t.Errorf("GravityTick %d not a proper fraction of frame gravity", GravityTick)
	}
}

func TestFastballExitIsQuarterForce(t *testing.T) {
	if want := vmath.FromFloat(AcceleratorForceFloat / 4); FastballExit != want {
		t.Errorf("FastballExit = %d, want %d", FastballExit, want)
	}
}
