package world

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Generator builds demo terrain for the sandbox session. The physics core
// only ever sees the resulting TileMap through the Grid interface; nothing
// here runs during a tick.
type Generator struct {
	Seed       int64
	NoiseScale float64 // horizontal stretch of the heightmap
	Amplitude  float64 // surface relief in tiles
	SeaLevel   int     // water fills valleys below this row

	noise *perlin.Perlin
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:       seed,
		NoiseScale: 0.03,
		Amplitude:  10,
		SeaLevel:   0, // derived from map height when zero
		noise:      perlin.NewPerlin(2.0, 2.0, 3, seed),
	}
}

// Generate fills a width x height map: perlin surface, dirt cap over
// stone, water pools in valleys, bedrock floor, and interactive features
// (jump pads, TNT charges, accelerators, moon rock supports).
// The same seed always produces the same map; feature placement uses a
// rand.Source derived from the seed, not the global generator.
func (g *Generator) Generate(width, height int) *TileMap {
	m := NewTileMap(width, height)
	base := height * 2 / 3
	sea := g.SeaLevel
	if sea == 0 {
		sea = base + int(g.Amplitude/3)
	}

	surface := make([]int, width)
	for x := 0; x < width; x++ {
		n := g.noise.Noise1D(float64(x) * g.NoiseScale) // [-1, 1]
		surface[x] = base + int(n*g.Amplitude)
		if surface[x] < 2 {
			surface[x] = 2
		}
		if surface[x] > height-3 {
			surface[x] = height - 3
		}
	}

	for x := 0; x < width; x++ {
		top := surface[x]
		for y := 0; y < height; y++ {
			switch {
			case y == height-1:
				m.SetBlock(x, y, Bedrock)
			case y > top+4:
				m.SetBlock(x, y, Stone)
			case y > top:
				m.SetBlock(x, y, Dirt)
			case y == top:
				if top >= sea {
					m.SetBlock(x, y, Sand)
				} else {
					m.SetBlock(x, y, Grass)
				}
			case y > sea && y < height-1:
				// valley below sea level with air above surface: flood
				m.SetBlock(x, y, Water)
			default:
				m.SetBlock(x, y, Air)
			}
		}
	}

	g.placeFeatures(m, surface)
	return m
}

func (g *Generator) placeFeatures(m *TileMap, surface []int) {
	rng := rand.New(rand.NewSource(g.Seed*31 + 17))

	for x := 4; x < m.Width()-4; x++ {
		top := surface[x]
		if m.Block(x, top) != Grass {
			continue
		}
		switch roll := rng.Intn(100); {
		case roll < 3:
			// Pad stack, occasionally sitting on moon rock or TNT
			stack := 1 + rng.Intn(3)
			for i := 0; i < stack; i++ {
				m.SetBlock(x, top-i, JumpPad)
			}
			switch rng.Intn(4) {
			case 0:
				m.SetBlock(x, top+1, MoonRock)
			case 1:
				m.SetBlock(x, top+1, TNT)
				m.SetBlock(x, top+2, TNT)
			}
		case roll < 7:
			m.SetBlock(x, top, Accelerator)
		case roll < 10:
			// A tree: trunk with a leaf cap
			trunk := 2 + rng.Intn(3)
			for i := 1; i <= trunk; i++ {
				m.SetBlock(x, top-i, Wood)
			}
			m.SetBlock(x, top-trunk-1, Leaves)
		}
	}
}

// SpawnColumn picks a spawn tile: first grass column from the given x with
// two clear tiles above it. Falls back to the map center.
func SpawnColumn(m *TileMap, fromX int) (int, int) {
	for x := fromX; x < m.Width(); x++ {
		for y := 1; y < m.Height()-1; y++ {
			if m.Block(x, y).Solid() {
				if m.Block(x, y) == Grass && !m.Block(x, y-1).Solid() && !m.Block(x, y-2).Solid() {
					return x, y - 1
				}
				break
			}
		}
	}
	return m.Width() / 2, m.Height() / 2
}
