// Package grid is a transient placement grid centred on the origin, used to
// visualise an enumeration and to detect collisions and gaps in it.
//
// What:
//
//   - Grid covers every point with |x|,|y| ≤ Radius, each cell holding either
//     Unassigned or the index placed there.
//   - Place rejects points outside the grid and cells already occupied.
//   - ConnectedComponents groups assigned cells under Conn4 or Conn8
//     connectivity, so a caller can check the visited region is contiguous.
//
// Complexity:
//
//   - New:                 O(R²) time and memory, R = 2·Radius+1.
//   - Place, At, InBounds: O(1).
//   - ConnectedComponents: O(R²·d), d = 4 or 8.
//
// Errors:
//
//   - ErrNegativeRadius: New received a negative radius.
//   - ErrOutOfBounds:    point lies outside the grid.
//   - ErrCollision:      cell already holds an index.
package grid
