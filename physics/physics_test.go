package physics

import (
	"testing"

	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/vmath"
)

func TestFrictionDecaysToZero(t *testing.T) {
	vx := constant.WalkSpeed
	for i := 0; i < 20000; i++ {
		vx = Friction(vx)
	}
	if vx != 0 {
		t.Errorf("velocity after 20000 friction ticks = %d, want 0", vx)
	}

	// Negative velocity dies at zero too, never sticks at -1 raw
	vx = -constant.WalkSpeed
	for i := 0; i < 20000; i++ {
		vx = Friction(vx)
	}
	if vx != 0 {
		t.Errorf("negative velocity after friction = %d, want 0", vx)
	}
}

func TestTerminalVelocityCeiling(t *testing.T) {
	var vy int64
	var m Modifiers
	for i := 0; i < 100000; i++ {
		vy, m = Gravity(vy, 0, false, m)
		if vy > constant.TerminalVelocity {
			t.Fatalf("vy %d exceeded terminal %d at tick %d", vy, constant.TerminalVelocity, i)
		}
	}
	if vy != constant.TerminalVelocity {
		t.Errorf("vy settled at %d, want terminal %d", vy, constant.TerminalVelocity)
	}

	// Already past terminal (knockback): gravity must not touch it
	fast := constant.TerminalVelocity * 2
	got, _ := Gravity(fast, 0, false, Modifiers{})
	if got != fast {
		t.Errorf("gravity altered super-terminal vy: %d -> %d", fast, got)
	}
}

func TestGravityWaterOverridesMoon(t *testing.T) {
	m := Modifiers{LowGravity: true}

	dry, _ := Gravity(0, 0, false, m)
	wet, _ := Gravity(0, 0, true, m)

	wantDry := vmath.Mul(constant.GravityTick, constant.MoonGravityFactor)
	wantWet := vmath.Mul(constant.GravityTick, constant.WaterGravityFactor)
	if dry != wantDry {
		t.Errorf("moon gravity tick = %d, want %d", dry, wantDry)
	}
	if wet != wantWet {
		t.Errorf("submerged gravity tick = %d, want %d (water factor wins over moon)", wet, wantWet)
	}
}

func TestFastballLiftAndAutoOff(t *testing.T) {
	m := Modifiers{Fastball: true}

	board := constant.ReferenceMaxSpeed
	withLift, m2 := Gravity(0, board, false, m)
	if !m2.Fastball {
		t.Fatal("fastball deactivated at full board speed")
	}
	plain, _ := Gravity(0, board, false, Modifiers{})
	if withLift >= plain {
		t.Errorf("fastball lift did not reduce gravity: %d vs %d", withLift, plain)
	}

	// Below a quarter of the accelerator force the flag drops and the
	// tick falls back to plain gravity
	slow := constant.FastballExit - 1
	got, m3 := Gravity(0, slow, false, m)
	if m3.Fastball {
		t.Error("fastball still active below exit threshold")
	}
	if got != constant.GravityTick {
		t.Errorf("post-exit gravity tick = %d, want plain %d", got, constant.GravityTick)
	}
}

func TestBoardDecay(t *testing.T) {
	board := constant.AcceleratorForce
	ticks := 0
	for board != 0 {
		board, _ = BoardDecay(board, false)
		ticks++
		if ticks > 1_000_000 {
			t.Fatal("board velocity never reached zero")
		}
	}

	// Decay is symmetric
	board = -constant.AcceleratorForce
	neg := 0
	for board != 0 {
		board, _ = BoardDecay(board, false)
		neg++
	}
	if neg != ticks {
		t.Errorf("negative decay took %d ticks, positive took %d", neg, ticks)
	}
}

func TestBoardDecayHalvedUnderLowFriction(t *testing.T) {
	board := constant.AcceleratorForce
	a, _ := BoardDecay(board, false)
	b, _ := BoardDecay(board, true)
	if board-b >= board-a {
		t.Errorf("low-friction decay %d not smaller than normal %d", board-b, board-a)
	}
}

func TestLowFrictionExit(t *testing.T) {
	// Above threshold: flag stays
	_, lf := BoardDecay(constant.LowFrictionExit*4, true)
	if !lf {
		t.Error("low friction dropped while board speed still high")
	}
	// Crossing the threshold clears it
	_, lf = BoardDecay(constant.LowFrictionExit, true)
	if lf {
		t.Error("low friction survived below exit threshold")
	}
}
