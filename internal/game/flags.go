package game

import "flag"

// worldFlag lets a WorldKind be set by name on the command line.
type worldFlag struct{ kind *WorldKind }

func (f worldFlag) String() string {
	if f.kind == nil {
		return ""
	}
	return f.kind.String()
}

func (f worldFlag) Set(s string) error {
	k, err := ParseWorldKind(s)
	if err != nil {
		return err
	}
	*f.kind = k
	return nil
}

// RegisterFlags binds the session settings in cfg to fs. Values already in
// cfg become the flag defaults.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.MapWidth, "width", cfg.MapWidth, "level width in tiles")
	fs.IntVar(&cfg.MapHeight, "height", cfg.MapHeight, "level height in tiles")
	fs.IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "terminal columns per tile")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for level generation")
	fs.Var(worldFlag{&cfg.World}, "world", "starting world: dungeon or wilderness")
	fs.IntVar(&cfg.SightRadius, "radius", cfg.SightRadius, "player sight radius")
	fs.BoolVar(&cfg.FogOfWar, "fog", cfg.FogOfWar, "hide cells the player has never seen")
	fs.BoolVar(&cfg.Directional, "cone", cfg.Directional, "restrict sight to a cone in the facing direction")
	fs.DurationVar(&cfg.DayLength, "day", cfg.DayLength, "wall-clock length of a full day")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "redraw interval")
}
