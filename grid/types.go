package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNegativeRadius indicates New received a negative radius.
	ErrNegativeRadius = errors.New("grid: radius must be non-negative")
	// ErrOutOfBounds indicates a point outside [-Radius, Radius]².
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrCollision indicates a cell was assigned twice.
	ErrCollision = errors.New("grid: cell already assigned")
)

// Unassigned marks a cell no index has been placed in.
const Unassigned = -1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor deltas for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Grid is a (2·Radius+1)² array of indices keyed by origin-centred
// coordinates. Cells are stored row-major from y = -Radius upward.
type Grid struct {
	Radius int
	side   int
	cells  []int
}
