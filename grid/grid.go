package grid

import (
	"fmt"

	"github.com/katalvlaran/surfenum/point"
)

// New returns a grid covering [-radius, radius]² with every cell Unassigned.
// Complexity: O(radius²) time and memory.
func New(radius int) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	side := 2*radius + 1
	cells := make([]int, side*side)
	for i := range cells {
		cells[i] = Unassigned
	}
	return &Grid{Radius: radius, side: side, cells: cells}, nil
}

// Side returns the number of cells along each axis.
func (g *Grid) Side() int { return g.side }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p point.Point) bool {
	r := g.Radius
	return p.X >= -r && p.X <= r && p.Y >= -r && p.Y <= r
}

// At returns the index stored at p, or Unassigned.
func (g *Grid) At(p point.Point) (int, error) {
	if !g.InBounds(p) {
		return Unassigned, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[g.index(p)], nil
}

// Place stores n at p. It fails if p is outside the grid or the cell already
// holds an index; the cell keeps its first occupant.
func (g *Grid) Place(p point.Point, n int) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	i := g.index(p)
	if prev := g.cells[i]; prev != Unassigned {
		return fmt.Errorf("%w: %v holds %d, cannot place %d", ErrCollision, p, prev, n)
	}
	g.cells[i] = n
	return nil
}

// Assigned returns the number of cells holding an index.
func (g *Grid) Assigned() int {
	count := 0
	for _, v := range g.cells {
		if v != Unassigned {
			count++
		}
	}
	return count
}

// Rows returns the cell values top to bottom (y = Radius first), each row
// left to right. The result is a copy.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, 0, g.side)
	for y := g.Radius; y >= -g.Radius; y-- {
		row := make([]int, g.side)
		start := g.index(point.Pt(-g.Radius, y))
		copy(row, g.cells[start:start+g.side])
		rows = append(rows, row)
	}
	return rows
}

// index maps p to its row-major slot.
func (g *Grid) index(p point.Point) int {
	return (p.Y+g.Radius)*g.side + p.X + g.Radius
}

// Coordinate converts a row-major slot back to its point.
func (g *Grid) Coordinate(idx int) point.Point {
	return point.Pt(idx%g.side-g.Radius, idx/g.side-g.Radius)
}
