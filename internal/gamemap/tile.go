package gamemap

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// SeedID identifies a tile type. It is an index into the Catalog arena.
type SeedID uint32

// NullSeedID is the reserved "no tile" type every new Level starts with.
const NullSeedID SeedID = 0

// Palette is the colour triple a tile type blends between.
// SourceA and SourceB are mixed per tile instance to give the day colour,
// which is then mixed with Night by the time of day.
type Palette struct {
	SourceA colorful.Color
	SourceB colorful.Color
	Night   colorful.Color
}

// SeedDef is everything a caller supplies to define a tile type.
type SeedDef struct {
	Glyph  rune
	Solid  bool // blocks movement
	Opaque bool // blocks sight

	Colors    Palette // used for remembered (seen, not visible) tiles
	VisColors Palette // used while the tile is inside the field of view

	// Min and Max bound the random SourceA/SourceB blend fraction.
	// Values outside 0..1 are allowed and extrapolate the colours.
	Min, Max float64
}

// Seed is the state shared by every tile of one type.
type Seed struct {
	ID SeedID
	SeedDef
}

// NullSeed describes the sentinel type at NullSeedID.
var NullSeed = Seed{ID: NullSeedID, SeedDef: SeedDef{Glyph: ' ', Solid: true, Opaque: true}}

// Tile is one cell of a Level. Everything except the visibility flags is
// resolved through the Catalog.
type Tile struct {
	Seed    SeedID
	Visible bool // inside the current field of view
	Seen    bool // observed at least once; never cleared
}

// Catalog is an append-only arena of tile types. Seeds live as long as the
// catalog, so a SeedID held by a Tile can never dangle.
type Catalog struct {
	mu    sync.RWMutex
	seeds []Seed
}

// NewCatalog returns a catalog holding only NullSeed.
func NewCatalog() *Catalog {
	return &Catalog{seeds: []Seed{NullSeed}}
}

// Create registers a new tile type and returns it with a fresh ID.
// Two calls with the same definition produce two distinct types.
func (c *Catalog) Create(def SeedDef) Seed {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Seed{ID: SeedID(len(c.seeds)), SeedDef: def}
	c.seeds = append(c.seeds, s)
	return s
}

// Seed looks up a tile type by ID.
func (c *Catalog) Seed(id SeedID) (Seed, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if int(id) >= len(c.seeds) {
		return Seed{}, false
	}
	return c.seeds[id], true
}

// MustSeed is Seed for IDs known to come from this catalog. Panics otherwise.
func (c *Catalog) MustSeed(id SeedID) Seed {
	s, ok := c.Seed(id)
	if !ok {
		panic("gamemap: unknown seed id")
	}
	return s
}

// Len returns the number of registered types, including NullSeed.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seeds)
}
