// Package fov computes which cells are visible from a point using recursive
// shadowcasting, optionally narrowed to a cone around a facing direction.
package fov

import "math"

// Grid is the map information shadowcasting needs.
type Grid interface {
	Dims() (width, height int)
	InBounds(x, y int) bool
	IsOpaque(x, y int) bool
}

// Field is a boolean visibility map the size of the grid it was computed on.
type Field struct {
	Width, Height int
	OriginX       int
	OriginY       int
	Radius        int
	cells         []bool
}

// NewField returns an all-dark field.
func NewField(width, height int) *Field {
	return &Field{Width: width, Height: height, cells: make([]bool, width*height)}
}

// Visible reports whether (x, y) is lit. Cells outside the field are dark.
func (f *Field) Visible(x, y int) bool {
	if f == nil || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	return f.cells[y*f.Width+x]
}

// Count returns the number of lit cells.
func (f *Field) Count() int {
	n := 0
	for _, v := range f.cells {
		if v {
			n++
		}
	}
	return n
}

func (f *Field) light(x, y int) {
	if x >= 0 && y >= 0 && x < f.Width && y < f.Height {
		f.cells[y*f.Width+x] = true
	}
}

// octants maps sweep coordinates (col, row) to a world offset for each of
// the eight octants: dx = col*m[0] + row*m[1], dy = col*m[2] + row*m[3].
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute returns the disc of cells within radius of (ox, oy) that are not
// hidden behind opaque cells. The origin is always visible.
func Compute(g Grid, ox, oy, radius int) *Field {
	return caster{grid: g, ox: ox, oy: oy, radius: radius}.run()
}

// ConeHalfAngle is how far either side of the facing direction a
// directional field reaches.
const ConeHalfAngle = math.Pi / 3

// ComputeDirectional is Compute restricted to a cone of ConeHalfAngle around
// the facing vector (fx, fy). The origin and its eight neighbours stay visible
// regardless of facing. A zero facing gives the full disc.
func ComputeDirectional(g Grid, ox, oy, radius, fx, fy int) *Field {
	c := caster{grid: g, ox: ox, oy: oy, radius: radius, fx: fx, fy: fy}
	if fx != 0 || fy != 0 {
		c.minCos = math.Cos(ConeHalfAngle) * math.Hypot(float64(fx), float64(fy))
		c.cone = true
	}
	return c.run()
}

// caster runs recursive shadowcasting from one origin. When cone is set,
// cells outside the facing cone are not lit but still cast shadows.
type caster struct {
	grid   Grid
	field  *Field
	ox, oy int
	radius int

	cone   bool
	fx, fy int
	minCos float64 // cos(half-angle) scaled by the facing length
}

func (c caster) run() *Field {
	c.field = NewField(c.grid.Dims())
	c.field.OriginX, c.field.OriginY, c.field.Radius = c.ox, c.oy, c.radius
	if !c.grid.InBounds(c.ox, c.oy) {
		return c.field
	}
	c.field.light(c.ox, c.oy)
	for _, m := range octants {
		c.scan(1, 1.0, 0.0, m)
	}
	return c.field
}

// inCone reports whether offset (dx, dy) from the origin may be lit.
func (c *caster) inCone(dx, dy int) bool {
	if !c.cone || max(abs(dx), abs(dy)) <= 1 {
		return true
	}
	return float64(dx*c.fx+dy*c.fy) >= c.minCos*math.Hypot(float64(dx), float64(dy))
}

// scan sweeps one octant outward from row depth, between slopes hi and lo.
// In octant coordinates a row is at distance depth and its cells run from
// col -depth to 0; cell edges have slopes (col∓0.5)/(-depth±0.5).
func (c *caster) scan(depth int, hi, lo float64, m [4]int) {
	if hi < lo {
		return
	}
	r2 := c.radius * c.radius
	nextHi := hi

	for ; depth <= c.radius; depth++ {
		row := -depth
		inShadow := false

		for col := -depth; col <= 0; col++ {
			near := (float64(col) - 0.5) / (float64(row) + 0.5)
			far := (float64(col) + 0.5) / (float64(row) - 0.5)
			if far > hi {
				continue
			}
			if near < lo {
				break
			}

			dx := col*m[0] + row*m[1]
			dy := col*m[2] + row*m[3]
			x, y := c.ox+dx, c.oy+dy
			inside := c.grid.InBounds(x, y)
			if inside && col*col+row*row < r2 && c.inCone(dx, dy) {
				c.field.light(x, y)
			}

			wall := !inside || c.grid.IsOpaque(x, y)
			switch {
			case inShadow && wall:
				nextHi = far
			case inShadow:
				inShadow = false
				hi = nextHi
			case wall && depth < c.radius:
				inShadow = true
				c.scan(depth+1, hi, near, m)
				nextHi = far
			}
		}
		if inShadow {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
