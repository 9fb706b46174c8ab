// Package enumerator implements bijective enumerations between the integers
// [0, N) and the lattice points of a bounded 2-D region.
//
// What:
//
//   - Zigzag   — boustrophedon raster of the w×w quadrant 0 ≤ x,y < w.
//   - Spiral   — counter-clockwise square rings around the origin.
//   - Triangle — alternating anti-diagonals of the triangle x,y ≥ 0, x+y < w.
//   - Diamond  — clockwise Manhattan rings around the origin.
//
// Every variant satisfies the Enumerator contract: MaxCount, IndexToPoint and
// PointToIndex are pure functions of the width and their argument, and
// IndexToPoint/PointToIndex are mutual inverses on [0, MaxCount).
//
// Sequences:
//
//	e, _ := enumerator.NewSpiral(3)
//	for p := range enumerator.Points(e) {
//		fmt.Println(p)
//	}
//
// Points and All are lazy, finite and restartable; they are built from the
// contract's primitives only, so they work for any Enumerator.
//
// Width 0:
//
//   - Zigzag and Triangle are empty (MaxCount = 0).
//   - Spiral and Diamond hold the origin only (MaxCount = 1).
//
// Width limit:
//
// Every index and intermediate value is an int. Constructors reject widths
// above MaxWidth(kind), the largest width for which MaxCount, the square-root
// radicands of IndexToPoint and the squared step distances all fit; on
// 64-bit platforms that is 2147483647 for Zigzag, 1518500249 for Triangle and
// 1518500250 for Spiral and Diamond.
//
// Errors:
//
//   - ErrNegativeWidth:   constructor received w < 0.
//   - ErrWidthTooLarge:   constructor received w > MaxWidth(kind).
//   - ErrUnknownKind:     unknown variant name or Kind value.
//   - ErrIndexOutOfRange: IndexToPoint(n) with n outside [0, MaxCount).
//   - ErrOutOfShape:      PointToIndex(p) with p outside the region.
//   - ErrInvalidQuadrant: ring-edge classification failed (unreachable for
//     valid input).
package enumerator
