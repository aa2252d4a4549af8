package generate

import (
	"math/rand"

	"tsmi/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// ConnectRooms walks t bottom-up and digs a corridor between a room of each
// node's left subtree and a room of its right subtree, so every carved room
// ends up reachable from every other.
func ConnectRooms(rng *rand.Rand, t *Tree, root NodeID, rooms map[NodeID]gamemap.Rect, floor gamemap.SeedID, style CorridorStyle) {
	var walk func(id NodeID) (gamemap.Rect, bool)
	walk = func(id NodeID) (gamemap.Rect, bool) {
		n := t.Node(id)
		if n.IsLeaf() {
			r, ok := rooms[id]
			return r, ok
		}
		var lRoom, rRoom gamemap.Rect
		var lOK, rOK bool
		if n.Left != NoNode {
			lRoom, lOK = walk(n.Left)
		}
		if n.Right != NoNode {
			rRoom, rOK = walk(n.Right)
		}
		switch {
		case lOK && rOK:
			x1, y1 := lRoom.Center()
			x2, y2 := rRoom.Center()
			carveCorridor(rng, t.Level, x1, y1, x2, y2, floor, style)
			return lRoom, true
		case lOK:
			return lRoom, true
		}
		return rRoom, rOK
	}
	walk(root)
}

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(rng *rand.Rand, l *gamemap.Level, x1, y1, x2, y2 int, floor gamemap.SeedID, style CorridorStyle) {
	switch style {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		carveV(l, y1, midY, x1, floor)
		carveH(l, x1, x2, midY, floor)
		carveV(l, midY, y2, x2, floor)
	case CorridorStraight:
		carveH(l, x1, x2, y1, floor)
		carveV(l, y1, y2, x2, floor)
	default: // LShaped
		if rng.Intn(2) == 0 {
			carveH(l, x1, x2, y1, floor)
			carveV(l, y1, y2, x2, floor)
		} else {
			carveV(l, y1, y2, x1, floor)
			carveH(l, x1, x2, y2, floor)
		}
	}
}

func carveH(l *gamemap.Level, x1, x2, y int, floor gamemap.SeedID) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if l.InBounds(x, y) {
			l.Set(x, y, floor)
		}
	}
}

func carveV(l *gamemap.Level, y1, y2, x int, floor gamemap.SeedID) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if l.InBounds(x, y) {
			l.Set(x, y, floor)
		}
	}
}
