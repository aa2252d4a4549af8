package game

import (
	"fmt"
	"math/rand"

	"tsmi/internal/gamemap"
	"tsmi/internal/generate"
)

// WorldKind selects the generator used for a level.
type WorldKind uint8

const (
	WorldDungeon WorldKind = iota
	WorldWilderness
)

func (k WorldKind) String() string {
	switch k {
	case WorldDungeon:
		return "dungeon"
	case WorldWilderness:
		return "wilderness"
	}
	return fmt.Sprintf("world(%d)", uint8(k))
}

// levelConfig builds a generate.Config for one level of the given kind.
// Wilderness regions are larger than dungeon leaves so each biome has room
// to form clumps.
func levelConfig(cfg Config, kind WorldKind, cat *gamemap.Catalog, terrain generate.Terrain, rng *rand.Rand) *generate.Config {
	gc := &generate.Config{
		Width:         cfg.MapWidth,
		Height:        cfg.MapHeight,
		MinLeafWidth:  10,
		MinLeafHeight: 8,
		RoomMargin:    1,
		MinRoomSize:   3,
		CorridorStyle: generate.CorridorStyle(rng.Intn(3)),
		MaxPasses:     6,
		NoiseSeed:     rng.Int63(),
		Terrain:       terrain,
		Catalog:       cat,
		Rand:          rng,
	}
	if kind == WorldWilderness {
		gc.MinLeafWidth = 16
		gc.MinLeafHeight = 12
	}
	return gc
}

// generateLevel runs the generator for kind and returns the new level with
// a short description for the status line.
func generateLevel(gc *generate.Config, kind WorldKind) (*gamemap.Level, string, error) {
	switch kind {
	case WorldWilderness:
		l, regions, err := generate.Wilderness(gc)
		if err != nil {
			return nil, "", err
		}
		return l, fmt.Sprintf("wilderness with %d regions", len(regions)), nil
	default:
		l, rooms, err := generate.Dungeon(gc)
		if err != nil {
			return nil, "", err
		}
		return l, fmt.Sprintf("dungeon with %d rooms", len(rooms)), nil
	}
}

// ParseWorldKind parses the name produced by WorldKind.String.
func ParseWorldKind(s string) (WorldKind, error) {
	switch s {
	case "dungeon":
		return WorldDungeon, nil
	case "wilderness":
		return WorldWilderness, nil
	}
	return 0, fmt.Errorf("unknown world %q (want dungeon or wilderness)", s)
}
