// Package harness verifies an Enumerator against its own contract and renders
// the result as text.
//
// Run performs every check and never stops at the first failure: each
// problem becomes an Issue in the Report, so a single broken formula does not
// hide the others.
//
// Checks, in order:
//
//  1. PointToIndex table over x,y ∈ [-w, w] (diagnostic).
//  2. Direct decoding L = IndexToPoint(0..MaxCount-1).
//  3. Lazy sequence (enumerator.Points) compared with L.
//  4. Cyclic histogram of consecutive squared distances.
//  5. Round trip PointToIndex(IndexToPoint(n)) == n for every n.
//  6. Grid placement: collisions, out-of-grid points and contiguity.
//  7. Distance law of the variant (steps and wrap-around).
//
// Report.WriteTo prints the table, histogram, warnings and grid in the same
// layout the command-line tool uses.
package harness
