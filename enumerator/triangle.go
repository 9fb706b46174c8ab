package enumerator

import "github.com/katalvlaran/surfenum/point"

// TriangleEnum enumerates the triangle x,y ≥ 0, x+y < w by anti-diagonal
// i = x+y. Even diagonals run with increasing x, odd ones with decreasing x.
// Consecutive points are 1 or √2 apart; the last point lies w-1 from the
// first.
//
//	3
//	^\
//	| \
//	2  \4  .
//	 \   \  .
//	  \   \  \
//	0-->1   5->6
type TriangleEnum struct{ width }

// NewTriangle returns a triangle enumerator over w anti-diagonals.
func NewTriangle(w int) (*TriangleEnum, error) {
	b, err := newWidth(Triangle, w)
	if err != nil {
		return nil, err
	}
	return &TriangleEnum{b}, nil
}

// Kind returns Triangle.
func (t *TriangleEnum) Kind() Kind { return Triangle }

// MaxCount returns the triangular number w(w+1)/2.
func (t *TriangleEnum) MaxCount() int { return t.w * (t.w + 1) / 2 }

// IndexToPoint returns the n-th point of the triangle.
func (t *TriangleEnum) IndexToPoint(n int) (point.Point, error) {
	if err := checkIndex(n, t.MaxCount()); err != nil {
		return point.Origin, err
	}
	// largest i with i(i+1)/2 ≤ n
	i := (isqrt(1+8*n) - 1) / 2
	j := n - i*(i+1)/2
	if i%2 == 1 {
		j = i - j
	}
	return point.Pt(j, i-j), nil
}

// PointToIndex returns the index of p inside the triangle.
func (t *TriangleEnum) PointToIndex(p point.Point) (int, error) {
	if p.X < 0 || p.Y < 0 || p.X >= t.w || p.Y >= t.w || p.X+p.Y >= t.w {
		return 0, outOfShape(Triangle, t.w, p)
	}
	i := p.X + p.Y
	j := p.X
	if i%2 == 1 {
		j = i - j
	}
	return i*(i+1)/2 + j, nil
}
