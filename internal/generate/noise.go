package generate

import (
	"tsmi/internal/gamemap"

	"github.com/aquilax/go-perlin"
)

// NewNoise returns the Perlin source used by NoiseFill. The parameters match
// the usual terrain settings: alpha 2, beta 2, three octaves.
func NewNoise(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(2, 2, 3, seed)
}

// NoiseFill samples 2D Perlin noise at (x*scale, y*scale) for every cell of a
// and stamps high where the sample is above threshold, low elsewhere.
// Samples fall roughly in [-1, 1], so threshold 0 splits the area about evenly.
func NoiseFill(a gamemap.Area, noise *perlin.Perlin, low, high gamemap.SeedID, threshold, scale float64) {
	a.Each(func(x, y int, t *gamemap.Tile) {
		if noise.Noise2D(float64(x)*scale, float64(y)*scale) > threshold {
			t.Seed = high
		} else {
			t.Seed = low
		}
	})
}
