package life

import (
	"testing"

	"lifepaint/internal/core"
)

func gridWith(rows, cols int, live ...core.Cell) *core.Grid {
	g := core.NewGrid(rows, cols)
	for _, c := range live {
		g.SetAlive(c.Row, c.Col)
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, want map[core.Cell]bool, label string) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			alive := g.Alive(r, c)
			if want[core.Cell{Row: r, Col: c}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, r, c, alive, !alive)
			}
		}
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Next(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("Next(alive, %d) = %v, want %v", n, got, want)
		}
		if got, want := Next(false, n), n == 3; got != want {
			t.Fatalf("Next(dead, %d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := gridWith(3, 3, core.Cell{Row: 1, Col: 1})
	next := Step(g)
	if next.Population() != 0 {
		t.Fatalf("isolated cell produced population %d", next.Population())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridWith(6, 6,
		core.Cell{Row: 2, Col: 2}, core.Cell{Row: 2, Col: 3},
		core.Cell{Row: 3, Col: 2}, core.Cell{Row: 3, Col: 3},
	)
	once := Step(g)
	twice := Step(once)
	if !once.Equal(g) || !twice.Equal(once) {
		t.Fatal("2x2 block is not a still life")
	}
}

func TestBlockAcrossCornerIsStillLife(t *testing.T) {
	g := gridWith(4, 4,
		core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 3},
		core.Cell{Row: 3, Col: 0}, core.Cell{Row: 3, Col: 3},
	)
	if next := Step(g); !next.Equal(g) {
		t.Fatal("block wrapped across the corner changed")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(5, 5,
		core.Cell{Row: 2, Col: 1}, core.Cell{Row: 2, Col: 2}, core.Cell{Row: 2, Col: 3},
	)

	once := Step(g)
	expectCells(t, once, map[core.Cell]bool{
		{Row: 1, Col: 2}: true,
		{Row: 2, Col: 2}: true,
		{Row: 3, Col: 2}: true,
	}, "after first step")
	if once.Equal(g) {
		t.Fatal("blinker did not change after one step")
	}

	twice := Step(once)
	if !twice.Equal(g) {
		t.Fatal("blinker did not return after two steps")
	}
}

func TestBlinkerAcrossEdge(t *testing.T) {
	g := gridWith(5, 5,
		core.Cell{Row: 0, Col: 4}, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 1},
	)
	once := Step(g)
	expectCells(t, once, map[core.Cell]bool{
		{Row: 4, Col: 0}: true,
		{Row: 0, Col: 0}: true,
		{Row: 1, Col: 0}: true,
	}, "wrapped blinker")
	if !Step(once).Equal(g) {
		t.Fatal("wrapped blinker did not return after two steps")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridWith(5, 5,
		core.Cell{Row: 1, Col: 2}, core.Cell{Row: 2, Col: 2}, core.Cell{Row: 3, Col: 2},
	)
	before := g.Clone()
	_ = Step(g)
	if !g.Equal(before) {
		t.Fatal("Step mutated its input")
	}
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	g := gridWith(8, 8,
		core.Cell{Row: 0, Col: 1},
		core.Cell{Row: 1, Col: 2},
		core.Cell{Row: 2, Col: 0}, core.Cell{Row: 2, Col: 1}, core.Cell{Row: 2, Col: 2},
	)
	cur := g
	// A glider moves one cell down and right every four generations; on an
	// 8x8 torus it is back home after 32.
	for i := 0; i < 32; i++ {
		cur = Step(cur)
		if cur.Population() != 5 {
			t.Fatalf("generation %d population %d, want 5", i+1, cur.Population())
		}
	}
	if !cur.Equal(g) {
		t.Fatal("glider did not return to its start after a full lap")
	}
}

func TestStepIntoRejectsAliasing(t *testing.T) {
	g := core.NewGrid(3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("StepInto with aliased grids did not panic")
		}
	}()
	StepInto(g, g)
}
