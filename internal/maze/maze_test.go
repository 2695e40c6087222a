package maze_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/witherdream/internal/maze"
)

// pathNeighbors returns the 4-connected path neighbours of c.
func pathNeighbors(g *maze.Grid, c maze.Coord) []maze.Coord {
	var out []maze.Coord
	for _, d := range []maze.Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := c.Add(d.X, d.Y)
		if g.At(n) == maze.Path {
			out = append(out, n)
		}
	}
	return out
}

func floodFill(g *maze.Grid, from maze.Coord) map[maze.Coord]bool {
	seen := map[maze.Coord]bool{from: true}
	queue := []maze.Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range pathNeighbors(g, c) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// edgeCount counts adjacent path pairs, each once.
func edgeCount(g *maze.Grid) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := maze.C(x, y)
			if g.At(c) != maze.Path {
				continue
			}
			if g.At(c.Add(1, 0)) == maze.Path {
				n++
			}
			if g.At(c.Add(0, 1)) == maze.Path {
				n++
			}
		}
	}
	return n
}

var sizes = []struct{ w, h int }{
	{3, 3}, {5, 5}, {19, 15}, {21, 21}, {41, 11}, {7, 31},
}

func TestGenerateConnected(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g := maze.Generate(sz.w, sz.h, 40, rand.New(rand.NewSource(seed)))

			if g.At(g.Start()) != maze.Path {
				t.Fatalf("%dx%d seed %d: start cell is not a path", sz.w, sz.h, seed)
			}
			reached := floodFill(g, g.Start())
			if len(reached) != g.PathCount() {
				t.Errorf("%dx%d seed %d: flood fill reached %d of %d path cells",
					sz.w, sz.h, seed, len(reached), g.PathCount())
			}
		}
	}
}

func TestGenerateIsSpanningTree(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g := maze.Generate(sz.w, sz.h, 40, rand.New(rand.NewSource(seed)))
			if got, want := edgeCount(g), g.PathCount()-1; got != want {
				t.Errorf("%dx%d seed %d: %d connections, expected %d", sz.w, sz.h, seed, got, want)
			}
		}
	}
}

func TestGenerateVisitsEveryOddCell(t *testing.T) {
	g := maze.Generate(19, 15, 40, rand.New(rand.NewSource(42)))
	for y := 1; y < g.Height(); y += 2 {
		for x := 1; x < g.Width(); x += 2 {
			if g.At(maze.C(x, y)) != maze.Path {
				t.Errorf("odd cell %v is not carved", maze.C(x, y))
			}
		}
	}
	// Outer ring of an odd-sized grid stays solid.
	for x := 0; x < g.Width(); x++ {
		if g.At(maze.C(x, 0)) != maze.Wall || g.At(maze.C(x, g.Height()-1)) != maze.Wall {
			t.Fatalf("border column %d is open", x)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := maze.Generate(19, 15, 40, rand.New(rand.NewSource(7)))
	b := maze.Generate(19, 15, 40, rand.New(rand.NewSource(7)))
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
}

func TestGenerateTinyGrids(t *testing.T) {
	tests := []struct {
		w, h      int
		wantPaths int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{-3, 5, 0},
		{2, 2, 1},
		{3, 3, 1},
	}
	for _, tt := range tests {
		g := maze.Generate(tt.w, tt.h, 10, rand.New(rand.NewSource(1)))
		if got := g.PathCount(); got != tt.wantPaths {
			t.Errorf("Generate(%d, %d).PathCount() = %d, expected %d", tt.w, tt.h, got, tt.wantPaths)
		}
	}
}

func TestIsWallBoundary(t *testing.T) {
	g := maze.Generate(19, 15, 40, rand.New(rand.NewSource(3)))
	w, h := 19*40.0, 15*40.0

	outside := []struct{ x, y float64 }{
		{-0.001, 60}, {60, -0.001}, {w, 60}, {60, h}, {w + 500, h + 500},
		{-1e9, -1e9}, {math.NaN(), 60}, {60, math.Inf(1)}, {math.Inf(-1), 60},
	}
	for _, p := range outside {
		if !g.IsWall(p.x, p.y) {
			t.Errorf("IsWall(%g, %g) = false, expected true outside the grid", p.x, p.y)
		}
	}

	if g.IsWall(60, 60) {
		t.Error("IsWall at the start cell centre = true, expected false")
	}
	if !g.IsWall(10, 10) {
		t.Error("IsWall at the corner cell = false, expected true")
	}
}

func TestIsWallMatchesCells(t *testing.T) {
	g := maze.Generate(11, 9, 25, rand.New(rand.NewSource(11)))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := maze.C(x, y)
			p := g.CellCenter(c)
			if got, want := g.IsWall(p.X, p.Y), g.At(c) == maze.Wall; got != want {
				t.Errorf("IsWall(centre of %v) = %v, expected %v", c, got, want)
			}
			o := g.CellOrigin(c)
			if got, want := g.IsWall(o.X, o.Y), g.At(c) == maze.Wall; got != want {
				t.Errorf("IsWall(origin of %v) = %v, expected %v", c, got, want)
			}
		}
	}
}

func TestString(t *testing.T) {
	g := maze.Generate(5, 5, 40, rand.New(rand.NewSource(1)))
	rows := strings.Split(g.String(), "\n")
	if len(rows) != 5 {
		t.Fatalf("String() has %d rows, expected 5", len(rows))
	}
	if rows[0] != "#####" || rows[4] != "#####" {
		t.Errorf("border rows = %q / %q, expected solid", rows[0], rows[4])
	}
	if rows[1][1] != ' ' {
		t.Errorf("start cell rendered as %q, expected space", rows[1][1])
	}
}
