package render

import (
	"testing"

	"tsmi/internal/entity"
	"tsmi/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeSurface records every SetContent call by screen position.
type fakeSurface struct {
	cells map[[2]int]cell
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: map[[2]int]cell{}}
}

func (s *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func (s *fakeSurface) has(x, y int) bool {
	_, ok := s.cells[[2]int{x, y}]
	return ok
}

var (
	green = colorful.Color{G: 1}
	gray  = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
)

// setupWorld returns a 30x10 open floor level and a creature at (3,5)
// facing east with a sight radius of 3.
func setupWorld(t *testing.T) (*gamemap.Level, *entity.Creature) {
	t.Helper()
	cat := gamemap.NewCatalog()
	floor := cat.Create(gamemap.SeedDef{
		Glyph:     '.',
		Colors:    gamemap.Palette{SourceA: gray, SourceB: gray},
		VisColors: gamemap.Palette{SourceA: green, SourceB: green},
	})
	l, err := gamemap.New(cat, 30, 10)
	if err != nil {
		t.Fatal(err)
	}
	l.Whole().Each(func(_, _ int, tile *gamemap.Tile) { tile.Seed = floor.ID })
	pc, err := entity.New(l, '@', 3, 5, entity.East, colorful.Color{R: 1, G: 1, B: 1}, colorful.Color{}, 3)
	if err != nil {
		t.Fatal(err)
	}
	return l, pc
}

func TestRenderFogNeverDrawsUnseen(t *testing.T) {
	l, pc := setupWorld(t)
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})

	drawn := r.Render(l, Camera{}, pc, 1, true, false)
	if drawn == 0 {
		t.Fatal("expected the area around the creature to be drawn")
	}
	for pos := range s.cells {
		if !l.At(pos[0], pos[1]).Seen {
			t.Errorf("drew unseen cell %v", pos)
		}
	}
	if s.has(20, 5) {
		t.Error("cell far outside the sight radius should not be drawn")
	}
}

func TestRenderNoFogDrawsEveryLevelCell(t *testing.T) {
	l, pc := setupWorld(t)
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 40, ScreenHeight: 15, CellWidth: 1})

	drawn := r.Render(l, Camera{X: -2, Y: -2}, pc, 1, false, false)
	if drawn != 30*10 {
		t.Errorf("drawn = %d, want %d", drawn, 30*10)
	}
	if s.has(0, 0) || s.has(1, 1) {
		t.Error("viewport cells outside the level must be skipped")
	}
	if !s.has(2, 2) || !s.has(31, 11) {
		t.Error("level corners should be drawn")
	}
	if s.has(32, 2) || s.has(2, 12) {
		t.Error("nothing should be drawn past the level edge")
	}
}

func TestRenderClipsToViewport(t *testing.T) {
	l, pc := setupWorld(t)
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 5, ScreenHeight: 4, CellWidth: 1})

	if drawn := r.Render(l, Camera{X: 10, Y: 2}, pc, 1, false, false); drawn != 20 {
		t.Errorf("drawn = %d, want 20", drawn)
	}
	for pos := range s.cells {
		if pos[0] < 0 || pos[0] >= 5 || pos[1] < 0 || pos[1] >= 4 {
			t.Errorf("drew outside viewport at %v", pos)
		}
	}
}

func TestRenderSeenPersists(t *testing.T) {
	l, pc := setupWorld(t)
	r := NewRenderer(newFakeSurface(), Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})
	r.Render(l, Camera{}, pc, 1, true, false)
	if !l.At(4, 5).Visible {
		t.Fatal("cell next to the creature should be visible")
	}

	if err := pc.Place(l, 25, 5); err != nil {
		t.Fatal(err)
	}
	s := newFakeSurface()
	r = NewRenderer(s, Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})
	r.Render(l, Camera{}, pc, 1, true, false)

	tile := l.At(4, 5)
	if tile.Visible {
		t.Error("cell should no longer be visible after moving away")
	}
	if !tile.Seen {
		t.Error("seen flag must persist")
	}
	if !s.has(4, 5) {
		t.Error("seen cell should still be drawn under fog of war")
	}
}

func TestRenderDirectionalHidesBehind(t *testing.T) {
	l, pc := setupWorld(t)
	r := NewRenderer(newFakeSurface(), Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})

	r.Render(l, Camera{}, pc, 1, true, true)
	if l.At(1, 5).Visible {
		t.Error("cell two steps behind should be hidden with a directional view")
	}
	if !l.At(5, 5).Visible {
		t.Error("cell ahead should be visible")
	}

	r.Render(l, Camera{}, pc, 1, true, false)
	if !l.At(1, 5).Visible {
		t.Error("cell behind should be visible with a disc view")
	}
}

func TestRenderCreatureOnOtherLevel(t *testing.T) {
	l, pc := setupWorld(t)
	other, _ := setupWorld(t)
	r := NewRenderer(newFakeSurface(), Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})

	for _, directional := range []bool{true, false} {
		r.Render(other, Camera{}, pc, 1, true, directional)
		if other.At(4, 5).Visible || other.At(4, 5).Seen {
			t.Errorf("directional=%v: a creature on another level must not light this one", directional)
		}
	}
	r.Render(l, Camera{}, pc, 1, true, true)
	if !l.At(4, 5).Visible {
		t.Error("the creature's own level should still be lit")
	}
}

func TestRenderVisiblePalette(t *testing.T) {
	l, pc := setupWorld(t)
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 1})
	r.Render(l, Camera{}, pc, 1, false, false)

	fg, _, _ := s.cells[[2]int{4, 5}].style.Decompose()
	if fg != ToTcell(green) {
		t.Errorf("visible cell fg = %v, want visible palette", fg)
	}
	fg, _, _ = s.cells[[2]int{20, 5}].style.Decompose()
	if fg != ToTcell(gray) {
		t.Errorf("unlit cell fg = %v, want normal palette", fg)
	}
}

func TestRenderDrawsCreature(t *testing.T) {
	l, pc := setupWorld(t)
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 30, ScreenHeight: 10, CellWidth: 2})
	r.Render(l, Camera{}, pc, 1, true, true)

	if got := s.cells[[2]int{6, 5}].r; got != '@' {
		t.Errorf("creature cell = %q, want '@'", got)
	}
	if got := s.cells[[2]int{7, 5}].r; got != ' ' {
		t.Errorf("narrow glyph should be padded to the cell width, got %q", got)
	}
}

func TestDrawStatus(t *testing.T) {
	s := newFakeSurface()
	r := NewRenderer(s, Config{ScreenWidth: 10, ScreenHeight: 4, CellWidth: 2})
	r.DrawStatus(Status{Phase: 0.5, X: 3, Y: 4, Facing: "NE", FogOfWar: true, Message: "hi"})

	if got := s.cells[[2]int{19, 4}].r; got != '─' {
		t.Errorf("rule should span the screen, got %q", got)
	}
	if got := s.cells[[2]int{0, 5}].r; got != '1' {
		t.Errorf("status should start with the clock, got %q", got)
	}
	if got := s.cells[[2]int{1, 6}].r; got != 'i' {
		t.Errorf("message line = %q", got)
	}
}
