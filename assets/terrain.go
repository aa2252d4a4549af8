// Package assets holds the stock tile palette used by the demo binaries.
package assets

import (
	"tsmi/internal/gamemap"
	"tsmi/internal/generate"

	"github.com/lucasb-eyer/go-colorful"
)

// Glyphs for the player and the stock terrain.
const (
	GlyphPlayer    = '@'
	GlyphWall      = '#'
	GlyphFloor     = '.'
	GlyphGrass     = ','
	GlyphTallGrass = '"'
	GlyphTree      = '♣'
	GlyphBush      = '♠'
	GlyphFlower    = '*'
	GlyphWater     = '~'
	GlyphRock      = '▲'
)

// PlayerFG and PlayerBG colour the player glyph.
var (
	PlayerFG = hex("#ffffff")
	PlayerBG = hex("#000000")
)

// hex parses a colour literal. Only used for the constants below, so a bad
// literal is a programming error.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// palette builds the unlit and lit palettes for a tile. The lit palette is
// the unlit one pushed halfway toward warm torchlight; both share a night
// colour of the unlit base darkened to a fifth.
func palette(a, b string) (unlit, lit gamemap.Palette) {
	ca, cb := hex(a), hex(b)
	torch := hex("#ffe8a0")
	night := ca.BlendRgb(hex("#000010"), 0.8)
	unlit = gamemap.Palette{SourceA: ca, SourceB: cb, Night: night}
	lit = gamemap.Palette{
		SourceA: ca.BlendRgb(torch, 0.35),
		SourceB: cb.BlendRgb(torch, 0.35),
		Night:   ca.BlendRgb(torch, 0.2),
	}
	return unlit, lit
}

type tileDef struct {
	glyph         rune
	solid, opaque bool
	a, b          string
	min, max      float64
}

func (d tileDef) seedDef() gamemap.SeedDef {
	unlit, lit := palette(d.a, d.b)
	return gamemap.SeedDef{
		Glyph:     d.glyph,
		Solid:     d.solid,
		Opaque:    d.opaque,
		Colors:    unlit,
		VisColors: lit,
		Min:       d.min,
		Max:       d.max,
	}
}

var (
	wall      = tileDef{GlyphWall, true, true, "#6b6b6b", "#8a8070", 0, 0.6}
	floor     = tileDef{GlyphFloor, false, false, "#4a4038", "#5c5046", 0, 1}
	grass     = tileDef{GlyphGrass, false, false, "#2f7d32", "#7cb342", 0.1, 0.9}
	tallGrass = tileDef{GlyphTallGrass, false, false, "#33691e", "#9ccc65", 0.2, 0.8}
	tree      = tileDef{GlyphTree, true, true, "#1b5e20", "#2e7d32", 0, 1}
	bush      = tileDef{GlyphBush, false, true, "#386641", "#6a994e", 0, 1}
	flower    = tileDef{GlyphFlower, false, false, "#f06292", "#ffd54f", 0, 1}
	water     = tileDef{GlyphWater, true, false, "#1565c0", "#4fc3f7", 0.2, 0.7}
	rock      = tileDef{GlyphRock, true, true, "#5d5d5d", "#9e9e9e", 0.3, 0.7}
)

// Terrain registers the stock tiles in cat and returns their IDs. Each call
// creates a fresh set of seeds.
func Terrain(cat *gamemap.Catalog) generate.Terrain {
	id := func(d tileDef) gamemap.SeedID { return cat.Create(d.seedDef()).ID }
	return generate.Terrain{
		Wall:      id(wall),
		Floor:     id(floor),
		Grass:     id(grass),
		TallGrass: id(tallGrass),
		Tree:      id(tree),
		Bush:      id(bush),
		Flower:    id(flower),
		Water:     id(water),
		Rock:      id(rock),
	}
}
