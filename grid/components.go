package grid

import "github.com/katalvlaran/surfenum/point"

// ConnectedComponents finds all contiguous regions of assigned cells
// according to conn. Each component lists its points in BFS order; components
// are ordered by their lowest row-major slot.
//
// Time:   O(R²·d), where d = 4 or 8.
// Memory: O(R²) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]point.Point {
	seen := make([]bool, len(g.cells))
	offsets := conn.offsets()
	var comps [][]point.Point

	for i0, v := range g.cells {
		if v == Unassigned || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []point.Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range offsets {
				nb := point.Pt(u.X+d[0], u.Y+d[1])
				if !g.InBounds(nb) {
					continue
				}
				vi := g.index(nb)
				if g.cells[vi] == Unassigned || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
