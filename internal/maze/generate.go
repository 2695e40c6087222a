package maze

import "github.com/vovakirdan/witherdream/internal/core"

// steps are the carving moves: two cells in each axis direction.
var steps = [4]Coord{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// Generate builds a perfect maze with a randomized depth-first backtracker.
//
// Path cells live on odd coordinates; the even cell between two of them is
// carved when the walk moves across it. Every odd cell reachable from the
// start is visited exactly once, so the result is a spanning tree: one simple
// path between any two path cells. Grids too small to hold the start cell are
// returned as solid wall.
func Generate(width, height int, cellSize float64, rng core.Rand) *Grid {
	g := NewGrid(width, height, cellSize)
	start := g.Start()
	if !g.InBounds(start) {
		return g
	}

	visited := make([]bool, len(g.cells))
	visit := func(c Coord) {
		visited[c.Y*g.w+c.X] = true
		g.set(c, Path)
	}

	visit(start)
	stack := []Coord{start}
	var options [4]Coord

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		n := 0
		for _, s := range steps {
			next := cur.Add(s.X, s.Y)
			if g.InBounds(next) && !visited[next.Y*g.w+next.X] {
				options[n] = next
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[rng.Intn(n)]
		g.set(C((cur.X+next.X)/2, (cur.Y+next.Y)/2), Path)
		visit(next)
		stack = append(stack, next)
	}

	return g
}
