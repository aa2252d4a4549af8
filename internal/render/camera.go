package render

// Config holds the screen geometry the renderer draws into. It is built
// once at start-up and handed to NewRenderer.
type Config struct {
	ScreenWidth  int // viewport width in world tiles
	ScreenHeight int // viewport height in world tiles
	CellWidth    int // terminal columns per tile; 2 for emoji glyphs
}

func (c Config) cellWidth() int {
	if c.CellWidth < 1 {
		return 1
	}
	return c.CellWidth
}

// Camera is the world coordinate drawn at the viewport's top-left corner.
type Camera struct {
	X, Y int
}

// CenterOn returns the camera that puts world position (cx, cy) in the
// middle of a viewport of cfg's size.
func CenterOn(cx, cy int, cfg Config) Camera {
	return Camera{X: cx - cfg.ScreenWidth/2, Y: cy - cfg.ScreenHeight/2}
}

// WorldToScreen converts world (wx, wy) to terminal (sx, sy).
// visible is false when the result falls outside the viewport.
func (c Camera) WorldToScreen(wx, wy int, cfg Config) (sx, sy int, visible bool) {
	tx, ty := wx-c.X, wy-c.Y
	visible = tx >= 0 && tx < cfg.ScreenWidth && ty >= 0 && ty < cfg.ScreenHeight
	return tx * cfg.cellWidth(), ty, visible
}

// ScreenToWorld converts terminal (sx, sy) to world coordinates.
func (c Camera) ScreenToWorld(sx, sy int, cfg Config) (int, int) {
	return sx/cfg.cellWidth() + c.X, sy + c.Y
}
