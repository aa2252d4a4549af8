package entity

import (
	"fmt"

	"tsmi/internal/fov"
	"tsmi/internal/gamemap"

	"github.com/lucasb-eyer/go-colorful"
)

// Direction is one of the eight compass directions, clockwise from North.
type Direction uint8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

var deltas = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the unit step for d.
func (d Direction) Delta() (int, int) {
	v := deltas[d%8]
	return v[0], v[1]
}

// Left returns the direction 45 degrees counter-clockwise of d.
func (d Direction) Left() Direction { return (d + 7) % 8 }

// Right returns the direction 45 degrees clockwise of d.
func (d Direction) Right() Direction { return (d + 1) % 8 }

func (d Direction) String() string { return directionNames[d%8] }

// Creature is a positioned actor on a Level with its own field of view.
// It does not own the Level.
type Creature struct {
	Glyph  rune
	FG, BG colorful.Color
	Facing Direction
	Radius int
	X, Y   int

	// FOV is the directional field for the current position and facing.
	// Move and Turn keep it current.
	FOV   *fov.Field
	Level *gamemap.Level
}

// New places a creature on l at (x, y) and computes its field of view.
func New(l *gamemap.Level, glyph rune, x, y int, facing Direction, fg, bg colorful.Color, radius int) (*Creature, error) {
	if !l.InBounds(x, y) {
		return nil, fmt.Errorf("entity: place at (%d,%d): %w", x, y, gamemap.ErrOutOfBounds)
	}
	c := &Creature{
		Glyph:  glyph,
		FG:     fg,
		BG:     bg,
		Facing: facing,
		Radius: radius,
		X:      x,
		Y:      y,
		Level:  l,
	}
	c.RefreshFOV()
	return c, nil
}

// Position returns the creature's cell on its level.
func (c *Creature) Position() (int, int) { return c.X, c.Y }

// Move steps the creature by (dx, dy). It reports false, leaving the
// creature where it was, when the target is off the level or solid.
func (c *Creature) Move(dx, dy int) bool {
	nx, ny := c.X+dx, c.Y+dy
	if !c.Level.IsWalkable(nx, ny) {
		return false
	}
	c.X, c.Y = nx, ny
	c.RefreshFOV()
	return true
}

// Turn rotates the creature 45 degrees.
func (c *Creature) Turn(left bool) {
	if left {
		c.Facing = c.Facing.Left()
	} else {
		c.Facing = c.Facing.Right()
	}
	c.RefreshFOV()
}

// Step turns the creature to face d and then moves one cell that way. The
// turn sticks even when the move is blocked.
func (c *Creature) Step(d Direction) bool {
	c.Facing = d
	dx, dy := d.Delta()
	if !c.Move(dx, dy) {
		c.RefreshFOV()
		return false
	}
	return true
}

// Place moves the creature to (x, y) on l, which may be a different level.
func (c *Creature) Place(l *gamemap.Level, x, y int) error {
	if !l.InBounds(x, y) {
		return fmt.Errorf("entity: place at (%d,%d): %w", x, y, gamemap.ErrOutOfBounds)
	}
	c.Level, c.X, c.Y = l, x, y
	c.RefreshFOV()
	return nil
}

// RefreshFOV recomputes the directional field of view. Call it after the
// level's opacity changes under the creature.
func (c *Creature) RefreshFOV() {
	fx, fy := c.Facing.Delta()
	c.FOV = fov.ComputeDirectional(c.Level, c.X, c.Y, c.Radius, fx, fy)
}

// DiscFOV computes the non-directional field of view for the current position.
func (c *Creature) DiscFOV() *fov.Field {
	return fov.Compute(c.Level, c.X, c.Y, c.Radius)
}
