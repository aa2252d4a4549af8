package generate

import (
	"math/rand"

	"tsmi/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// ClusterRadius is the radius of the disc stamped around each cluster
// centre by TreePatternFill and VegPatternFill.
const ClusterRadius = 2

// OneTileFill stamps s onto every cell of a.
func OneTileFill(a gamemap.Area, s gamemap.SeedID) {
	a.Each(func(_, _ int, t *gamemap.Tile) {
		t.Seed = s
	})
}

// TwoTileFill gives each cell s1 with probability ratio/100 and s2 otherwise.
// Ratios are not validated: >= 100 always picks s1, <= 0 always s2.
func TwoTileFill(rng *rand.Rand, a gamemap.Area, s1, s2 gamemap.SeedID, ratio int) {
	a.Each(func(_, _ int, t *gamemap.Tile) {
		t.Seed = pick(rng, s1, s2, ratio)
	})
}

// TreePatternFill scatters count clumps of s1/s2 over a. Each clump is a
// disc of ClusterRadius around a uniformly chosen centre, filled with the
// TwoTileFill rule. Later clumps overwrite earlier ones.
func TreePatternFill(rng *rand.Rand, a gamemap.Area, s1, s2 gamemap.SeedID, count, ratio int) {
	clusterFill(rng, a, s1, s2, count, ratio, nil)
}

// VegPatternFill works like TreePatternFill but leaves alone any cell whose
// current type is one of avoid.
func VegPatternFill(rng *rand.Rand, a gamemap.Area, v1, v2 gamemap.SeedID, count, ratio int, avoid ...gamemap.SeedID) {
	skip := mapset.New[gamemap.SeedID]()
	for _, id := range avoid {
		skip.Put(id)
	}
	clusterFill(rng, a, v1, v2, count, ratio, func(id gamemap.SeedID) bool {
		return skip.Has(id)
	})
}

func clusterFill(rng *rand.Rand, a gamemap.Area, s1, s2 gamemap.SeedID, count, ratio int, skip func(gamemap.SeedID) bool) {
	if a.Empty() {
		return
	}
	const r2 = ClusterRadius * ClusterRadius
	for i := 0; i < count; i++ {
		cx := a.X0 + rng.Intn(a.Dx())
		cy := a.Y0 + rng.Intn(a.Dy())
		clump, ok := a.Sub(gamemap.Rect{
			X0: cx - ClusterRadius, Y0: cy - ClusterRadius,
			X1: cx + ClusterRadius + 1, Y1: cy + ClusterRadius + 1,
		})
		if !ok {
			continue
		}
		clump.Each(func(x, y int, t *gamemap.Tile) {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				return
			}
			if skip != nil && skip(t.Seed) {
				return
			}
			t.Seed = pick(rng, s1, s2, ratio)
		})
	}
}

// pick is the Bernoulli ratio test shared by the fills.
func pick(rng *rand.Rand, s1, s2 gamemap.SeedID, ratio int) gamemap.SeedID {
	switch {
	case ratio >= 100:
		return s1
	case ratio <= 0:
		return s2
	case rng.Intn(100) < ratio:
		return s1
	}
	return s2
}
