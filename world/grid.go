package world

import (
	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/vmath"
)

// Grid is the block lookup/mutation surface the physics core consumes.
// Implementations must return a safe non-air sentinel for out-of-range
// coordinates so collision scans never branch on bounds.
type Grid interface {
	Block(x, y int) BlockID
	SetBlock(x, y int, id BlockID)
}

// TileAt converts a fixed-point pixel coordinate to a tile index.
// Arithmetic shifts keep floor semantics for negative coordinates.
func TileAt(f int64) int {
	return int(f >> vmath.Shift >> constant.TileShift)
}

// TileMap is a fixed-size in-memory grid, row-major.
type TileMap struct {
	width, height int
	cells         []BlockID
}

func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		width:  width,
		height: height,
		cells:  make([]BlockID, width*height),
	}
}

func (m *TileMap) Width() int  { return m.width }
func (m *TileMap) Height() int { return m.height }

// Block returns the block at tile (x, y), or Bedrock outside the map
func (m *TileMap) Block(x, y int) BlockID {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Bedrock
	}
	return m.cells[y*m.width+x]
}

// SetBlock writes a block; out-of-range writes are dropped
func (m *TileMap) SetBlock(x, y int, id BlockID) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = id
}

// SpanX returns the world width in fixed-point pixels (toroidal wrap span)
func (m *TileMap) SpanX() int64 {
	return vmath.FromInt(m.width * constant.TilePx)
}

// SpanY returns the world height in fixed-point pixels
func (m *TileMap) SpanY() int64 {
	return vmath.FromInt(m.height * constant.TilePx)
}
