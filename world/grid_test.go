package world

import (
	"testing"

	"github.com/oxidian/sandpit/vmath"
)

func TestOutOfRangeReadsBedrock(t *testing.T) {
	m := NewTileMap(8, 8)
	cases := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-100, -100}, {1000, 1000}}
	for _, c := range cases {
		if got := m.Block(c[0], c[1]); got != Bedrock {
			t.Errorf("Block(%d,%d) = %v, want bedrock sentinel", c[0], c[1], got)
		}
	}
	// Out-of-range writes are dropped, not panics
	m.SetBlock(-1, -1, Stone)
	m.SetBlock(100, 100, Stone)
}

func TestSetAndGetBlock(t *testing.T) {
	m := NewTileMap(4, 4)
	m.SetBlock(2, 3, JumpPad)
	if got := m.Block(2, 3); got != JumpPad {
		t.Errorf("Block(2,3) = %v, want jump_pad", got)
	}
	if got := m.Block(0, 0); got != Air {
		t.Errorf("fresh map cell = %v, want air", got)
	}
}

func TestTileAt(t *testing.T) {
	if got := TileAt(vmath.FromInt(0)); got != 0 {
		t.Errorf("TileAt(0) = %d", got)
	}
	if got := TileAt(vmath.FromInt(16)); got != 1 {
		t.Errorf("TileAt(16px) = %d, want 1", got)
	}
	if got := TileAt(vmath.FromFloat(15.99)); got != 0 {
		t.Errorf("TileAt(15.99px) = %d, want 0", got)
	}
	// Floor semantics for negative coordinates
	if got := TileAt(vmath.FromFloat(-0.5)); got != -1 {
		t.Errorf("TileAt(-0.5px) = %d, want -1", got)
	}
}

func TestProperties(t *testing.T) {
	if Water.Solid() {
		t.Error("water must not be solid")
	}
	if !Bedrock.Solid() || Bedrock.Breakable() {
		t.Error("bedrock must be solid and unbreakable")
	}
	if Plank.Natural() || Brick.Natural() {
		t.Error("crafted blocks must not be natural")
	}
	if !Dirt.Natural() || !Dirt.Breakable() {
		t.Error("dirt must be natural and breakable")
	}
	// Unknown ids degrade to the bedrock sentinel
	if p := Props(BlockID(200)); !p.Solid || p.Breakable {
		t.Error("unknown block id must read as bedrock")
	}
}

func TestCooldownTable(t *testing.T) {
	c := NewCooldownTable()
	if !c.Ready(3, 4, 0) {
		t.Fatal("fresh table must be ready")
	}
	c.Arm(3, 4, 100, 50)
	if c.Ready(3, 4, 149) {
		t.Error("tile ready before cooldown expiry")
	}
	if !c.Ready(3, 4, 150) {
		t.Error("tile not ready at expiry tick")
	}
	// Independent keys
	if !c.Ready(4, 3, 120) {
		t.Error("unrelated tile affected by cooldown")
	}
	c.Reset()
	if !c.Ready(3, 4, 100) {
		t.Error("reset did not clear cooldowns")
	}
}
