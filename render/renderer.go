package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/oxidian/sandpit/constant"
	"github.com/oxidian/sandpit/engine"
	"github.com/oxidian/sandpit/world"
)

// tileGlyphs maps block ids to a rune and style. One terminal cell per
// tile keeps the camera math trivial; the simulation's sub-tile positions
// only show through the HUD readout.
var tileGlyphs = map[world.BlockID]struct {
	r     rune
	style tcell.Style
}{
	world.Air:         {' ', tcell.StyleDefault},
	world.Bedrock:     {'▓', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	world.Dirt:        {'▒', tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)},
	world.Grass:       {'▀', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	world.Stone:       {'█', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)},
	world.Sand:        {'░', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	world.Water:       {'~', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	world.Wood:        {'║', tcell.StyleDefault.Foreground(tcell.ColorBrown)},
	world.Leaves:      {'♣', tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)},
	world.JumpPad:     {'▲', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	world.TNT:         {'✸', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	world.Accelerator: {'»', tcell.StyleDefault.Foreground(tcell.ColorAqua)},
	world.MoonRock:    {'◍', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	world.Plank:       {'=', tcell.StyleDefault.Foreground(tcell.ColorTan)},
	world.Brick:       {'#', tcell.StyleDefault.Foreground(tcell.ColorMaroon)},
}

var playerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

// Renderer draws the tile map and actor onto a tcell screen with a camera
// centered on the actor.
type Renderer struct {
	screen tcell.Screen
	hud    bool
}

func NewRenderer(screen tcell.Screen, hud bool) *Renderer {
	return &Renderer{screen: screen, hud: hud}
}

// Draw renders one frame
func (r *Renderer) Draw(m *world.TileMap, p *engine.Player) {
	r.screen.Clear()
	w, h := r.screen.Size()

	px := tileOf(p.X())
	py := tileOf(p.Y())
	camX := clamp(px-w/2, 0, max(0, m.Width()-w))
	camY := clamp(py-h/2, 0, max(0, m.Height()-h))

	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			g, ok := tileGlyphs[m.Block(camX+sx, camY+sy)]
			if !ok {
				continue
			}
			r.screen.SetContent(sx, sy, g.r, nil, g.style)
		}
	}

	glyph := '<'
	if p.FacingRight() {
		glyph = '>'
	}
	if p.BubbleTimer() > 0 {
		glyph = 'o'
	}
	r.screen.SetContent(px-camX, py-camY, glyph, nil, playerStyle)

	if r.hud {
		r.drawHUD(p, w)
	}
	r.screen.Show()
}

func (r *Renderer) drawHUD(p *engine.Player, w int) {
	line := fmt.Sprintf(" x=%7.2f y=%7.2f vx=%6.2f vy=%6.2f board=%6.2f tick=%d",
		p.X(), p.Y(), p.VelX(), p.VelY(), p.BoardVel(), p.TickCount())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, c := range line {
		if i >= w {
			break
		}
		r.screen.SetContent(i, 0, c, nil, style)
	}
}

// tileOf floors a pixel coordinate to its tile index. Plain integer
// conversion truncates toward zero, which would misplace the actor by one
// tile during the pre-wrap frame where a coordinate goes negative.
func tileOf(v float64) int {
	return int(math.Floor(v)) >> constant.TileShift
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
