package generate

import (
	"math/rand"

	"tsmi/internal/gamemap"
)

// RoomCarver holds what CarveRectangularRoom needs besides the leaf itself.
// Carved rooms are appended to Rooms.
type RoomCarver struct {
	Rand    *rand.Rand
	Floor   gamemap.SeedID
	Margin  int // cells kept between the room and the leaf edge
	MinSize int // smallest room side; leaves too small for it get no room
	Rooms   []gamemap.Rect
}

// CarveRectangularRoom stamps a randomly sized room inside leaf, inset by
// the carver's margin. It reports false when the leaf cannot hold a room of
// MinSize.
func CarveRectangularRoom(l *gamemap.Level, leaf gamemap.Rect, rc *RoomCarver) (gamemap.Rect, bool) {
	avail := leaf.Inset(rc.Margin).Intersect(l.Bounds())
	minSize := max(rc.MinSize, 1)
	if avail.Dx() < minSize || avail.Dy() < minSize {
		return gamemap.Rect{}, false
	}

	rw := minSize + rc.Rand.Intn(avail.Dx()-minSize+1)
	rh := minSize + rc.Rand.Intn(avail.Dy()-minSize+1)
	rx := avail.X0 + rc.Rand.Intn(avail.Dx()-rw+1)
	ry := avail.Y0 + rc.Rand.Intn(avail.Dy()-rh+1)
	room := gamemap.RectWH(rx, ry, rw, rh)

	OneTileFill(gamemap.Area{Level: l, Rect: room}, rc.Floor)
	rc.Rooms = append(rc.Rooms, room)
	return room, true
}

// CarveRooms applies CarveRectangularRoom to every leaf of t and returns the
// room carved in each leaf, keyed by leaf ID.
func CarveRooms(t *Tree, rc *RoomCarver) map[NodeID]gamemap.Rect {
	rooms := make(map[NodeID]gamemap.Rect)
	t.VisitLeaves(func(id NodeID, n Node) {
		if room, ok := CarveRectangularRoom(t.Level, n.Rect, rc); ok {
			rooms[id] = room
		}
	})
	return rooms
}
