// Package surfenum enumerates the lattice points of bounded 2-D regions:
// every shape is a bijection between the integers [0, N) and its points.
//
// Four shapes are provided:
//
//	zigzag   — boustrophedon raster of the w×w quadrant
//	spiral   — counter-clockwise square rings around the origin
//	triangle — alternating anti-diagonals of the first quadrant
//	diamond  — clockwise Manhattan rings around the origin
//
// Under the hood, everything is organized under four subpackages:
//
//	point/      — the immutable integer Point value
//	enumerator/ — the Enumerator contract, the four shapes and lazy sequences
//	grid/       — origin-centred placement grid with collision and contiguity checks
//	harness/    — verification of any Enumerator plus text rendering
//
// The cmd/surfenum command runs the harness over widths 0..8.
//
// Quick ASCII example (spiral, width 2):
//
//	4<--3<--2
//	|       ^
//	v       |
//	5   0-->1
//	|
//	v
//	6-->7-->8
package surfenum
