package render

import (
	"tsmi/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TileColor returns the colour of a tile of type s at (x, y).
//
// The day colour is SourceA blended toward SourceB by a fraction in
// [Min, Max] that is fixed for each cell, so a field of grass keeps its
// speckle from frame to frame. The result is then blended from Night (time
// 0) to the day colour (time 1, midday). visible selects the VisColors
// palette over Colors.
func TileColor(s gamemap.Seed, x, y int, visible bool, time float64) colorful.Color {
	p := s.Colors
	if visible {
		p = s.VisColors
	}
	f := s.Min + cellFraction(s.ID, x, y)*(s.Max-s.Min)
	day := p.SourceA.BlendRgb(p.SourceB, f)
	return p.Night.BlendRgb(day, clamp01(time))
}

// cellFraction maps a cell and tile type to a stable value in [0, 1).
func cellFraction(id gamemap.SeedID, x, y int) float64 {
	h := uint32(id)
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return float64(h) / (1 << 32)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// ToTcell converts a colour to a 24-bit terminal colour, clamping
// out-of-gamut values.
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
