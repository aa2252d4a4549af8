package generate

import "tsmi/internal/gamemap"

// Neighborhood selects which cells count as neighbours in an Automaton pass.
type Neighborhood uint8

const (
	Moore      Neighborhood = iota // 8 surrounding cells
	VonNeumann                     // 4 orthogonal cells
)

var (
	mooreOffsets      = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	vonNeumannOffsets = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

func (n Neighborhood) offsets() [][2]int {
	if n == VonNeumann {
		return vonNeumannOffsets
	}
	return mooreOffsets
}

// Automaton is a two-state cellular automaton rule. Each pass a cell becomes
// A when at least SumA neighbours are A, otherwise B when at least SumB
// neighbours are B, otherwise it keeps its type.
type Automaton struct {
	A, B         gamemap.SeedID
	SumA, SumB   int
	Neighborhood Neighborhood
	// Border is counted for neighbours that fall outside the area.
	// NullSeedID means they are not counted at all.
	Border gamemap.SeedID
}

// Step runs one pass over a, reading from a snapshot of the previous state,
// and returns how many cells changed.
func (au Automaton) Step(a gamemap.Area) int {
	if a.Empty() {
		return 0
	}
	w := a.Dx()
	prev := make([]gamemap.SeedID, 0, a.Size())
	a.Each(func(_, _ int, t *gamemap.Tile) {
		prev = append(prev, t.Seed)
	})
	at := func(x, y int) (gamemap.SeedID, bool) {
		if !a.Contains(x, y) {
			return au.Border, au.Border != gamemap.NullSeedID
		}
		return prev[(y-a.Y0)*w+(x-a.X0)], true
	}

	offsets := au.Neighborhood.offsets()
	changed := 0
	a.Each(func(x, y int, t *gamemap.Tile) {
		countA, countB := 0, 0
		for _, o := range offsets {
			id, ok := at(x+o[0], y+o[1])
			if !ok {
				continue
			}
			switch id {
			case au.A:
				countA++
			case au.B:
				countB++
			}
		}
		next := t.Seed
		if countA >= au.SumA {
			next = au.A
		} else if countB >= au.SumB {
			next = au.B
		}
		if next != t.Seed {
			t.Seed = next
			changed++
		}
	})
	return changed
}

// Run repeats Step until a pass changes nothing or maxPasses is reached.
// It returns the number of passes made.
func (au Automaton) Run(a gamemap.Area, maxPasses int) int {
	for pass := 1; pass <= maxPasses; pass++ {
		if au.Step(a) == 0 {
			return pass
		}
	}
	return maxPasses
}

// CellularAutomata runs a single Moore-neighbourhood pass of the tileA/tileB
// rule over a and returns the number of changed cells. Callers decide how
// many passes to run.
func CellularAutomata(a gamemap.Area, tileA, tileB gamemap.SeedID, sumA, sumB int) int {
	return Automaton{A: tileA, B: tileB, SumA: sumA, SumB: sumB}.Step(a)
}
