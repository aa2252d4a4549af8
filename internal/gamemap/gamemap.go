package gamemap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates or rectangles outside a Level.
	ErrOutOfBounds = errors.New("gamemap: out of bounds")
	// ErrInvalidSize is returned when a Level is created with a non-positive dimension.
	ErrInvalidSize = errors.New("gamemap: invalid level size")
)

// Level is a rectangular grid of tiles stored row-major in a flat slice.
// len(Tiles) == Width*Height always holds.
type Level struct {
	Width, Height int
	Tiles         []Tile
	Catalog       *Catalog
}

// New creates a Level whose tiles all reference NullSeedID.
func New(catalog *Catalog, width, height int) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Level{
		Width:   width,
		Height:  height,
		Tiles:   make([]Tile, width*height),
		Catalog: catalog,
	}, nil
}

// Bounds returns the rectangle covering the whole level.
func (l *Level) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: l.Width, Y1: l.Height}
}

// Dims returns the width and height of the level.
func (l *Level) Dims() (int, int) { return l.Width, l.Height }

// InBounds reports whether (x, y) is within the level.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

func (l *Level) index(x, y int) int { return y*l.Width + x }

func (l *Level) check(x, y int) error {
	if !l.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, l.Width, l.Height)
	}
	return nil
}

// Tile returns a copy of the tile at (x, y).
func (l *Level) Tile(x, y int) (Tile, error) {
	if err := l.check(x, y); err != nil {
		return Tile{}, err
	}
	return l.Tiles[l.index(x, y)], nil
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (l *Level) At(x, y int) *Tile {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: At(%d,%d) outside %dx%d", x, y, l.Width, l.Height))
	}
	return &l.Tiles[l.index(x, y)]
}

// Set stamps seed id onto (x, y), leaving the visibility flags alone.
// Panics if out of bounds.
func (l *Level) Set(x, y int, id SeedID) {
	l.At(x, y).Seed = id
}

// SeedAt resolves the tile type at (x, y).
func (l *Level) SeedAt(x, y int) (Seed, error) {
	t, err := l.Tile(x, y)
	if err != nil {
		return Seed{}, err
	}
	s, ok := l.Catalog.Seed(t.Seed)
	if !ok {
		return Seed{}, fmt.Errorf("gamemap: tile (%d,%d) references unknown seed %d", x, y, t.Seed)
	}
	return s, nil
}

// Walkable reports whether the tile at (x, y) does not block movement.
func (l *Level) Walkable(x, y int) (bool, error) {
	s, err := l.SeedAt(x, y)
	if err != nil {
		return false, err
	}
	return !s.Solid, nil
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (l *Level) IsWalkable(x, y int) bool {
	ok, err := l.Walkable(x, y)
	return err == nil && ok
}

// IsOpaque returns true when (x, y) blocks sight. Out-of-bounds cells are opaque.
func (l *Level) IsOpaque(x, y int) bool {
	s, err := l.SeedAt(x, y)
	if err != nil {
		return true
	}
	return s.Opaque
}

// Area returns a view over r, which must lie entirely inside the level.
func (l *Level) Area(r Rect) (Area, error) {
	if r.Empty() || r.X0 < 0 || r.Y0 < 0 || r.X1 > l.Width || r.Y1 > l.Height {
		return Area{}, fmt.Errorf("%w: area %v in %dx%d", ErrOutOfBounds, r, l.Width, l.Height)
	}
	return Area{Level: l, Rect: r}, nil
}

// Whole returns an Area covering the entire level.
func (l *Level) Whole() Area {
	return Area{Level: l, Rect: l.Bounds()}
}

// Count returns how many tiles of type id lie inside r, clipped to the level.
func (l *Level) Count(r Rect, id SeedID) int {
	r = r.Intersect(l.Bounds())
	n := 0
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			if l.Tiles[l.index(x, y)].Seed == id {
				n++
			}
		}
	}
	return n
}
