// Package maze generates perfect mazes for dream worlds and answers
// point-in-wall queries in world coordinates.
package maze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/witherdream/internal/core"
)

// Cell is the content of one grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// String returns the cell name.
func (c Cell) String() string {
	if c == Path {
		return "path"
	}
	return "wall"
}

// Coord is a cell position. X grows right, Y grows down.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a rectangular maze. Cells are stored in row-major order.
type Grid struct {
	w, h     int
	cellSize float64
	cells    []Cell
}

// NewGrid creates a grid filled with walls. Negative dimensions are treated as 0.
func NewGrid(width, height int, cellSize float64) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		w:        width,
		h:        height,
		cellSize: cellSize,
		cells:    make([]Cell, width*height),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

// CellSize returns the world size of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// At returns the cell at c. Out-of-bounds cells are walls.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y*g.w+c.X]
}

func (g *Grid) set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[c.Y*g.w+c.X] = cell
	}
}

// Start returns the cell carving begins from.
func (g *Grid) Start() Coord {
	return C(1, 1)
}

// CellOf maps a world position to the cell containing it.
// ok is false when the position is outside the grid or not a number.
func (g *Grid) CellOf(x, y float64) (Coord, bool) {
	if g.cellSize <= 0 {
		return Coord{}, false
	}
	// Negated comparisons also reject NaN.
	if !(x >= 0) || !(y >= 0) || !(x < float64(g.w)*g.cellSize) || !(y < float64(g.h)*g.cellSize) {
		return Coord{}, false
	}
	return C(int(x/g.cellSize), int(y/g.cellSize)), true
}

// IsWall reports whether the world position (x, y) is inside a wall.
// Anything outside the grid counts as wall.
func (g *Grid) IsWall(x, y float64) bool {
	c, ok := g.CellOf(x, y)
	if !ok {
		return true
	}
	return g.At(c) == Wall
}

// CellOrigin returns the world position of a cell's top-left corner.
func (g *Grid) CellOrigin(c Coord) core.Vec {
	return core.V(float64(c.X)*g.cellSize, float64(c.Y)*g.cellSize)
}

// CellCenter returns the world position of a cell's centre.
func (g *Grid) CellCenter(c Coord) core.Vec {
	half := g.cellSize / 2
	return g.CellOrigin(c).Add(core.V(half, half))
}

// PathCount returns the number of path cells.
func (g *Grid) PathCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Path {
			n++
		}
	}
	return n
}

// String renders the grid as ASCII, '#' for walls and ' ' for paths.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if g.At(C(x, y)) == Path {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
