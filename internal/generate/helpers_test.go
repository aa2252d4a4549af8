package generate

import (
	"math/rand"
	"testing"

	"tsmi/internal/gamemap"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testTerrain registers one seed per Terrain field in a fresh catalog.
func testTerrain() (*gamemap.Catalog, Terrain) {
	cat := gamemap.NewCatalog()
	walk := func(g rune) gamemap.SeedID { return cat.Create(gamemap.SeedDef{Glyph: g}).ID }
	block := func(g rune) gamemap.SeedID {
		return cat.Create(gamemap.SeedDef{Glyph: g, Solid: true, Opaque: true}).ID
	}
	return cat, Terrain{
		Wall:      block('#'),
		Floor:     walk('.'),
		Grass:     walk(','),
		TallGrass: walk('"'),
		Tree:      block('T'),
		Bush:      walk('%'),
		Flower:    walk('*'),
		Water:     cat.Create(gamemap.SeedDef{Glyph: '~', Solid: true}).ID,
		Rock:      block('^'),
	}
}

func newLevel(t *testing.T, cat *gamemap.Catalog, w, h int) *gamemap.Level {
	t.Helper()
	l, err := gamemap.New(cat, w, h)
	if err != nil {
		t.Fatalf("gamemap.New(%d,%d): %v", w, h, err)
	}
	return l
}

func mustArea(t *testing.T, l *gamemap.Level, r gamemap.Rect) gamemap.Area {
	t.Helper()
	a, err := l.Area(r)
	if err != nil {
		t.Fatalf("Area(%v): %v", r, err)
	}
	return a
}

// snapshot copies the seed of every tile of l.
func snapshot(l *gamemap.Level) []gamemap.SeedID {
	out := make([]gamemap.SeedID, len(l.Tiles))
	for i, t := range l.Tiles {
		out[i] = t.Seed
	}
	return out
}
