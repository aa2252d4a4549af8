package generate

import (
	"fmt"
	"math/rand"

	"tsmi/internal/gamemap"

	"github.com/aquilax/go-perlin"
)

// Terrain names the tile types the generators stamp. They must all come
// from the Catalog in Config.
type Terrain struct {
	Wall, Floor        gamemap.SeedID
	Grass, TallGrass   gamemap.SeedID
	Tree, Bush, Flower gamemap.SeedID
	Water, Rock        gamemap.SeedID
}

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	MinLeafWidth  int
	MinLeafHeight int
	RoomMargin    int
	MinRoomSize   int
	CorridorStyle CorridorStyle
	MaxPasses     int // cap on cellular automata passes per region
	NoiseSeed     int64
	Terrain       Terrain
	Catalog       *gamemap.Catalog
	Rand          *rand.Rand
}

// Biome is the fill recipe applied to one wilderness region.
type Biome uint8

const (
	BiomeMeadow Biome = iota
	BiomeForest
	BiomeLake
	BiomeRocks
	biomeCount
)

func (b Biome) String() string {
	switch b {
	case BiomeMeadow:
		return "meadow"
	case BiomeForest:
		return "forest"
	case BiomeLake:
		return "lake"
	case BiomeRocks:
		return "rocks"
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// Region is one BSP leaf of a wilderness level and the biome used to fill it.
type Region struct {
	Rect  gamemap.Rect
	Biome Biome
}

// Dungeon fills a level with wall, partitions it, carves a room per leaf and
// joins the rooms with corridors.
func Dungeon(cfg *Config) (*gamemap.Level, []gamemap.Rect, error) {
	l, err := gamemap.New(cfg.Catalog, cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("dungeon: %w", err)
	}
	OneTileFill(l.Whole(), cfg.Terrain.Wall)

	// Keep a one-tile wall border around the whole map.
	inner, err := l.Area(l.Bounds().Inset(1))
	if err != nil {
		// Too small for anything but the border.
		return l, nil, nil
	}
	tree, _ := Partition(cfg.Rand, inner, cfg.MinLeafWidth, cfg.MinLeafHeight)
	rc := &RoomCarver{
		Rand:    cfg.Rand,
		Floor:   cfg.Terrain.Floor,
		Margin:  cfg.RoomMargin,
		MinSize: cfg.MinRoomSize,
	}
	rooms := CarveRooms(tree, rc)
	ConnectRooms(cfg.Rand, tree, tree.Root(), rooms, cfg.Terrain.Floor, cfg.CorridorStyle)
	return l, rc.Rooms, nil
}

// Wilderness partitions an open level into regions and gives each a biome.
func Wilderness(cfg *Config) (*gamemap.Level, []Region, error) {
	l, err := gamemap.New(cfg.Catalog, cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("wilderness: %w", err)
	}
	OneTileFill(l.Whole(), cfg.Terrain.Grass)

	tree, leaves := Partition(cfg.Rand, l.Whole(), cfg.MinLeafWidth, cfg.MinLeafHeight)
	noise := NewNoise(cfg.NoiseSeed)
	regions := make([]Region, 0, len(leaves))
	for _, id := range leaves {
		b := Biome(cfg.Rand.Intn(int(biomeCount)))
		fillBiome(cfg, tree.Area(id), b, noise)
		regions = append(regions, Region{Rect: tree.Node(id).Rect, Biome: b})
	}
	return l, regions, nil
}

func fillBiome(cfg *Config, a gamemap.Area, b Biome, noise *perlin.Perlin) {
	t := cfg.Terrain
	rng := cfg.Rand
	switch b {
	case BiomeMeadow:
		TwoTileFill(rng, a, t.Grass, t.TallGrass, 70)
		VegPatternFill(rng, a, t.Flower, t.TallGrass, a.Size()/40+1, 40)
	case BiomeForest:
		TwoTileFill(rng, a, t.Grass, t.TallGrass, 80)
		TreePatternFill(rng, a, t.Tree, t.Grass, a.Size()/8+1, 55)
	case BiomeLake:
		NoiseFill(a, noise, t.Grass, t.Water, 0, 0.15)
		Automaton{A: t.Water, B: t.Grass, SumA: 5, SumB: 5}.Run(a, cfg.MaxPasses)
		VegPatternFill(rng, a, t.Bush, t.TallGrass, a.Size()/20+1, 50, t.Water)
	case BiomeRocks:
		TwoTileFill(rng, a, t.Rock, t.Grass, 45)
		Automaton{A: t.Rock, B: t.Grass, SumA: 5, SumB: 5, Border: t.Rock}.Run(a, cfg.MaxPasses)
	}
}

// FindWalkable returns a random walkable cell of l, falling back to a scan
// when random probing fails.
func FindWalkable(rng *rand.Rand, l *gamemap.Level) (int, int, bool) {
	for i := 0; i < 200; i++ {
		x, y := rng.Intn(l.Width), rng.Intn(l.Height)
		if l.IsWalkable(x, y) {
			return x, y, true
		}
	}
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.IsWalkable(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
