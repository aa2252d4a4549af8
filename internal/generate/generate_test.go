package generate

import (
	"errors"
	"testing"

	"tsmi/internal/gamemap"
)

func testConfig(seed int64) *Config {
	cat, ter := testTerrain()
	return &Config{
		Width:         60,
		Height:        30,
		MinLeafWidth:  8,
		MinLeafHeight: 8,
		RoomMargin:    1,
		MinRoomSize:   3,
		CorridorStyle: CorridorLShaped,
		MaxPasses:     8,
		NoiseSeed:     seed,
		Terrain:       ter,
		Catalog:       cat,
		Rand:          newRand(seed),
	}
}

// reachable flood-fills walkable tiles from (sx, sy) using 4-connectivity.
func reachable(l *gamemap.Level, sx, sy int) map[[2]int]bool {
	visited := map[[2]int]bool{{sx, sy}: true}
	queue := [][2]int{{sx, sy}}
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if visited[n] || !l.IsWalkable(n[0], n[1]) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return visited
}

// TestDungeonAllRoomsConnected verifies that every floor tile is reachable
// from the first room via BFS (flood-fill).
func TestDungeonAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := testConfig(seed)
		l, rooms, err := Dungeon(cfg)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		if len(rooms) < 2 {
			t.Fatalf("seed=%d: only %d rooms", seed, len(rooms))
		}
		sx, sy := rooms[0].Center()
		seen := reachable(l, sx, sy)
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				if l.IsWalkable(x, y) && !seen[[2]int{x, y}] {
					t.Errorf("seed=%d: unreachable floor tile at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

// TestDungeonRoomsDoNotOverlap verifies that no two rooms share tiles and
// that the outer border stays wall.
func TestDungeonRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := testConfig(seed)
		l, rooms, err := Dungeon(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Overlaps(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
		for x := 0; x < l.Width; x++ {
			if l.IsWalkable(x, 0) || l.IsWalkable(x, l.Height-1) {
				t.Errorf("seed=%d: border breached at column %d", seed, x)
			}
		}
	}
}

func TestDungeonTooSmall(t *testing.T) {
	cfg := testConfig(1)
	cfg.Width, cfg.Height = 2, 2
	l, rooms, err := Dungeon(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 0 || l.Count(l.Bounds(), cfg.Terrain.Wall) != 4 {
		t.Error("a 2x2 dungeon is all border wall")
	}
}

func TestDungeonInvalidSize(t *testing.T) {
	cfg := testConfig(1)
	cfg.Width = 0
	if _, _, err := Dungeon(cfg); !errors.Is(err, gamemap.ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestWildernessRegionsCoverLevel(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		cfg := testConfig(seed)
		cfg.Width, cfg.Height = 80, 50
		l, regions, err := Wilderness(cfg)
		if err != nil {
			t.Fatal(err)
		}
		total := 0
		for _, r := range regions {
			total += r.Rect.Size()
			if r.Biome >= biomeCount {
				t.Errorf("seed=%d: unknown biome %v", seed, r.Biome)
			}
		}
		if total != len(l.Tiles) {
			t.Errorf("seed=%d: regions cover %d of %d tiles", seed, total, len(l.Tiles))
		}
		if n := l.Count(l.Bounds(), gamemap.NullSeedID); n != 0 {
			t.Errorf("seed=%d: %d tiles left unfilled", seed, n)
		}
		if _, _, ok := FindWalkable(cfg.Rand, l); !ok {
			t.Errorf("seed=%d: no walkable tile", seed)
		}
	}
}

func TestWildernessDeterministic(t *testing.T) {
	a, _, err := Wilderness(testConfig(21))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Wilderness(testConfig(21))
	if err != nil {
		t.Fatal(err)
	}
	sa, sb := snapshot(a), snapshot(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("tile %d differs between runs with the same seed", i)
		}
	}
}

func TestFillBiomeLakeKeepsWaterClear(t *testing.T) {
	cfg := testConfig(4)
	l := newLevel(t, cfg.Catalog, 40, 40)
	fillBiome(cfg, l.Whole(), BiomeLake, NewNoise(4))
	ter := cfg.Terrain
	water := l.Count(l.Bounds(), ter.Water)
	other := l.Count(l.Bounds(), ter.Grass) + l.Count(l.Bounds(), ter.Bush) + l.Count(l.Bounds(), ter.TallGrass)
	if water+other != len(l.Tiles) {
		t.Errorf("lake biome produced unexpected tiles: water=%d other=%d of %d", water, other, len(l.Tiles))
	}
}

func TestFindWalkableNone(t *testing.T) {
	cfg := testConfig(1)
	l := newLevel(t, cfg.Catalog, 5, 5)
	OneTileFill(l.Whole(), cfg.Terrain.Wall)
	if _, _, ok := FindWalkable(cfg.Rand, l); ok {
		t.Error("FindWalkable on an all-wall level should fail")
	}
}

func TestBiomeString(t *testing.T) {
	if BiomeForest.String() != "forest" || Biome(9).String() != "biome(9)" {
		t.Errorf("unexpected names %q %q", BiomeForest.String(), Biome(9).String())
	}
}
