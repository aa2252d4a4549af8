// Package game runs an interactive session: a generated level, a player
// creature and a day/night clock, drawn to a tcell screen in real time.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"tsmi/assets"
	"tsmi/internal/entity"
	"tsmi/internal/gamemap"
	"tsmi/internal/generate"
	"tsmi/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ErrNoSpawn is returned when a generated level has no walkable cell to
// place the player on.
var ErrNoSpawn = errors.New("no walkable spawn point")

// statusLines is the number of screen rows reserved under the viewport.
const statusLines = 3

// Config holds the settings for one session.
type Config struct {
	MapWidth, MapHeight int
	CellWidth           int // terminal columns per tile
	Seed                int64
	World               WorldKind
	SightRadius         int
	FogOfWar            bool
	Directional         bool
	TickInterval        time.Duration // redraw and clock period
	DayLength           time.Duration // wall-clock length of a full day
	StartPhase          float64       // fraction of the day elapsed at start; 0 is midnight
}

// DefaultConfig returns the settings used by the binaries when no flags
// override them.
func DefaultConfig() Config {
	return Config{
		MapWidth:     120,
		MapHeight:    60,
		CellWidth:    1,
		Seed:         time.Now().UnixNano(),
		World:        WorldDungeon,
		SightRadius:  8,
		FogOfWar:     true,
		Directional:  false,
		TickInterval: 250 * time.Millisecond,
		DayLength:    4 * time.Minute,
		StartPhase:   0.35,
	}
}

// Game is the top-level orchestrator for one screen.
type Game struct {
	screen  tcell.Screen
	cfg     Config
	logger  *slog.Logger
	rng     *rand.Rand
	catalog *gamemap.Catalog
	terrain generate.Terrain

	level       *gamemap.Level
	pc          *entity.Creature
	world       WorldKind
	phase       float64
	fog         bool
	directional bool
	message     string
}

// New creates a Game drawing to screen, which must already be initialised,
// and generates the first level.
func New(screen tcell.Screen, cfg Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cat := gamemap.NewCatalog()
	g := &Game{
		screen:      screen,
		cfg:         cfg,
		logger:      logger,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		catalog:     cat,
		terrain:     assets.Terrain(cat),
		world:       cfg.World,
		phase:       math.Mod(cfg.StartPhase, 1),
		fog:         cfg.FogOfWar,
		directional: cfg.Directional,
	}
	if err := g.Regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate builds a fresh level of the current world kind and drops the
// player on a random walkable cell of it.
func (g *Game) Regenerate() error {
	gc := levelConfig(g.cfg, g.world, g.catalog, g.terrain, g.rng)
	l, desc, err := generateLevel(gc, g.world)
	if err != nil {
		return fmt.Errorf("generate %s: %w", g.world, err)
	}
	x, y, ok := generate.FindWalkable(g.rng, l)
	if !ok {
		return fmt.Errorf("generate %s: %w", g.world, ErrNoSpawn)
	}

	if g.pc == nil {
		g.pc, err = entity.New(l, assets.GlyphPlayer, x, y, entity.South,
			assets.PlayerFG, assets.PlayerBG, g.cfg.SightRadius)
	} else {
		err = g.pc.Place(l, x, y)
	}
	if err != nil {
		return fmt.Errorf("place player: %w", err)
	}
	g.level = l
	g.message = "You arrive in a " + desc + "."
	g.logger.Info("level generated", "world", g.world.String(), "width", l.Width, "height", l.Height, "detail", desc)
	return nil
}

// Light returns the daylight level for the current clock: 0 at midnight
// rising to 1 at noon and back.
func (g *Game) Light() float64 {
	return 1 - math.Abs(2*g.phase-1)
}

// advance moves the clock forward by d of wall-clock time.
func (g *Game) advance(d time.Duration) {
	if g.cfg.DayLength <= 0 {
		return
	}
	g.shiftPhase(float64(d) / float64(g.cfg.DayLength))
}

func (g *Game) shiftPhase(delta float64) {
	g.phase = math.Mod(g.phase+delta, 1)
	if g.phase < 0 {
		g.phase++
	}
}

// Run is the main loop. It returns when the player quits, the screen is
// finalised, or ctx is cancelled. The caller owns the screen and must Fini it.
func (g *Game) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// Async input reader.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := g.cfg.TickInterval
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			g.advance(tick)
			g.draw()
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				quit, err := g.apply(keyToAction(ev))
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			}
			g.draw()
		}
	}
}

// apply performs one action. It reports whether the session should end.
func (g *Game) apply(a Action) (bool, error) {
	if d, ok := actionToDirection(a); ok {
		if !g.pc.Step(d) {
			g.message = "Something blocks the way."
		} else {
			g.message = ""
		}
		return false, nil
	}

	switch a {
	case ActionQuit:
		return true, nil
	case ActionTurnLeft:
		g.pc.Turn(true)
	case ActionTurnRight:
		g.pc.Turn(false)
	case ActionToggleFog:
		g.fog = !g.fog
	case ActionToggleCone:
		g.directional = !g.directional
	case ActionTimeForward:
		g.shiftPhase(1.0 / 24)
	case ActionTimeBack:
		g.shiftPhase(-1.0 / 24)
	case ActionSwitchWorld:
		if g.world == WorldDungeon {
			g.world = WorldWilderness
		} else {
			g.world = WorldDungeon
		}
		return false, g.Regenerate()
	case ActionRegenerate:
		return false, g.Regenerate()
	}
	return false, nil
}

// viewConfig sizes the viewport to the screen, leaving room for the status
// lines.
func (g *Game) viewConfig() render.Config {
	w, h := g.screen.Size()
	cw := g.cfg.CellWidth
	if cw < 1 {
		cw = 1
	}
	return render.Config{
		ScreenWidth:  w / cw,
		ScreenHeight: max(h-statusLines, 0),
		CellWidth:    cw,
	}
}

func (g *Game) draw() {
	view := g.viewConfig()
	r := render.NewRenderer(g.screen, view)
	g.screen.Clear()
	cam := render.CenterOn(g.pc.X, g.pc.Y, view)
	r.Render(g.level, cam, g.pc, g.Light(), g.fog, g.directional)
	r.DrawStatus(render.Status{
		Phase:       g.phase,
		X:           g.pc.X,
		Y:           g.pc.Y,
		Facing:      g.pc.Facing.String(),
		FogOfWar:    g.fog,
		Directional: g.directional,
		Message:     g.message,
	})
	g.screen.Show()
}
