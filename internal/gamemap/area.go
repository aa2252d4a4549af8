package gamemap

import "fmt"

// Rect is an axis-aligned rectangle. X0,Y0 are inclusive and X1,Y1 exclusive,
// so a Rect of width w spans X0..X0+w-1.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// RectWH builds a Rect from its top-left corner and size.
func RectWH(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Dx returns the width.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the height.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Size returns the number of cells covered.
func (r Rect) Size() int {
	if r.Empty() {
		return 0
	}
	return r.Dx() * r.Dy()
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.Y0 >= r.Y0 && o.X1 <= r.X1 && o.Y1 <= r.Y1
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X0 + r.Dx()/2, r.Y0 + r.Dy()/2
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Intersect returns the largest rectangle inside both r and o.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Inset shrinks r by m on every side. The result may be empty.
func (r Rect) Inset(m int) Rect {
	return Rect{X0: r.X0 + m, Y0: r.Y0 + m, X1: r.X1 - m, Y1: r.Y1 - m}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)-[%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// Area is a non-owning view of a rectangle on a Level. Fill algorithms write
// through it; it never copies tiles.
type Area struct {
	Level *Level
	Rect
}

// Sub returns the part of r that lies inside the area, as an Area.
// ok is false when they do not overlap.
func (a Area) Sub(r Rect) (Area, bool) {
	r = a.Rect.Intersect(r)
	if r.Empty() {
		return Area{}, false
	}
	return Area{Level: a.Level, Rect: r}, true
}

// Each calls fn for every cell of the area, row by row.
func (a Area) Each(fn func(x, y int, t *Tile)) {
	for y := a.Y0; y < a.Y1; y++ {
		for x := a.X0; x < a.X1; x++ {
			fn(x, y, a.Level.At(x, y))
		}
	}
}
