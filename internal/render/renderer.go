package render

import (
	"tsmi/internal/entity"
	"tsmi/internal/fov"
	"tsmi/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is where the renderer puts glyphs. tcell.Screen satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Renderer draws a camera's view of a Level onto a Surface.
type Renderer struct {
	surface Surface
	cfg     Config
}

// NewRenderer creates a Renderer for the given surface and screen geometry.
func NewRenderer(s Surface, cfg Config) *Renderer {
	return &Renderer{surface: s, cfg: cfg}
}

// Config returns the screen geometry the renderer was built with.
func (r *Renderer) Config() Config { return r.cfg }

// Render draws the viewport whose top-left world cell is cam and returns the
// number of tiles drawn.
//
// Every viewport cell inside pc's field of view is marked Visible and Seen;
// every other viewport cell loses Visible but keeps Seen. With fogOfWar only
// Seen cells are drawn, otherwise every in-level cell is. directional picks
// pc's facing-dependent field over a plain disc of pc.Radius. time runs from
// 0 (night) to 1 (midday). Viewport cells outside the level are skipped.
func (r *Renderer) Render(l *gamemap.Level, cam Camera, pc *entity.Creature, time float64, fogOfWar, directional bool) int {
	// A field computed on another level says nothing about this one.
	var field *fov.Field
	if pc.Level == l {
		if directional {
			field = pc.FOV
		} else {
			field = pc.DiscFOV()
		}
	}

	drawn := 0
	for ty := 0; ty < r.cfg.ScreenHeight; ty++ {
		for tx := 0; tx < r.cfg.ScreenWidth; tx++ {
			wx, wy := cam.X+tx, cam.Y+ty
			if !l.InBounds(wx, wy) {
				continue
			}
			tile := l.At(wx, wy)
			tile.Visible = field.Visible(wx, wy)
			if tile.Visible {
				tile.Seen = true
			}
			if fogOfWar && !tile.Seen {
				continue
			}

			seed, ok := l.Catalog.Seed(tile.Seed)
			if !ok {
				continue
			}
			fg := ToTcell(TileColor(seed, wx, wy, tile.Visible, time))
			style := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
			r.putGlyph(tx*r.cfg.cellWidth(), ty, seed.Glyph, style)
			drawn++
		}
	}

	if sx, sy, onScreen := cam.WorldToScreen(pc.X, pc.Y, r.cfg); onScreen && pc.Level == l {
		style := tcell.StyleDefault.Foreground(ToTcell(pc.FG)).Background(ToTcell(pc.BG))
		r.putGlyph(sx, sy, pc.Glyph, style)
	}
	return drawn
}

// putGlyph draws a glyph at screen position (x, y), padding the cell with
// spaces so every tile spans CellWidth columns.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.surface.SetContent(x, y, glyph, nil, style)
	for col := runewidth.RuneWidth(glyph); col < r.cfg.cellWidth(); col++ {
		r.surface.SetContent(x+col, y, ' ', nil, style)
	}
}
