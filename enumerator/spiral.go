package enumerator

import "github.com/katalvlaran/surfenum/point"

// SpiralEnum enumerates the square of Chebyshev radius w-1 around the origin,
// counter-clockwise, one ring at a time. Ring s ≥ 1 holds 8s points and
// starts just above the south-east corner. Consecutive points are 1 apart;
// the last point lies √2·(w-1) from the origin.
//
//	4<--3<--2   .
//	|       ^   .
//	v       |   .
//	5   0-->1  10
//	|           ^
//	v           |
//	6-->7-->8-->9
type SpiralEnum struct{ width }

// NewSpiral returns a square spiral of w rings, counting the origin as ring 0.
func NewSpiral(w int) (*SpiralEnum, error) {
	b, err := newWidth(Spiral, w)
	if err != nil {
		return nil, err
	}
	return &SpiralEnum{b}, nil
}

// Kind returns Spiral.
func (s *SpiralEnum) Kind() Kind { return Spiral }

// MaxCount returns (2(w-1)+1)², which is 1 for w = 0.
func (s *SpiralEnum) MaxCount() int {
	side := 2*(s.w-1) + 1
	return side * side
}

// radius is the outermost ring.
func (s *SpiralEnum) radius() int { return max(s.w-1, 0) }

// IndexToPoint returns the n-th point of the spiral.
func (s *SpiralEnum) IndexToPoint(n int) (point.Point, error) {
	if err := checkIndex(n, s.MaxCount()); err != nil {
		return point.Origin, err
	}
	if n == 0 {
		return point.Origin, nil
	}
	// rings 0..r-1 fill a (2r-1)² square
	r := (isqrt(n)-1)/2 + 1
	inner := 2*(r-1) + 1
	off := n - inner*inner

	q, m := off/(2*r), off%(2*r)
	switch q {
	case 0: // east edge, going up
		return point.Pt(r, m-r+1), nil
	case 1: // north edge, going left
		return point.Pt(r-1-m, r), nil
	case 2: // west edge, going down
		return point.Pt(-r, r-1-m), nil
	case 3: // south edge, going right
		return point.Pt(m-r+1, -r), nil
	}
	return point.Origin, ErrInvalidQuadrant
}

// PointToIndex returns the index of p, whose Chebyshev radius must not
// exceed w-1.
func (s *SpiralEnum) PointToIndex(p point.Point) (int, error) {
	if !within(p, s.radius()) {
		return 0, outOfShape(Spiral, s.w, p)
	}
	r := p.Chebyshev()
	if r == 0 {
		return 0, nil
	}
	var q, m int
	switch {
	case p.X == r && p.Y > -r:
		q, m = 0, p.Y+r-1
	case p.Y == r:
		q, m = 1, r-1-p.X
	case p.X == -r:
		q, m = 2, r-1-p.Y
	case p.Y == -r:
		q, m = 3, p.X+r-1
	default:
		return 0, ErrInvalidQuadrant
	}
	inner := 2*(r-1) + 1
	return 2*r*q + m + inner*inner, nil
}
