package enumerator

import "github.com/katalvlaran/surfenum/point"

// ZigzagEnum enumerates the quadrant 0 ≤ x,y < w row by row, reversing
// direction on every odd row. Consecutive points are 1 apart; the last point
// lies w-1 (even w) or √2·(w-1) (odd w) from the first.
//
//	8 .......
//	^
//	|
//	7<--6<--5<--4
//	            ^
//	            |
//	0-->1-->2-->3
type ZigzagEnum struct{ width }

// NewZigzag returns a zig-zag enumerator over the w×w quadrant.
func NewZigzag(w int) (*ZigzagEnum, error) {
	b, err := newWidth(Zigzag, w)
	if err != nil {
		return nil, err
	}
	return &ZigzagEnum{b}, nil
}

// Kind returns Zigzag.
func (z *ZigzagEnum) Kind() Kind { return Zigzag }

// MaxCount returns w².
func (z *ZigzagEnum) MaxCount() int { return z.w * z.w }

// IndexToPoint returns the n-th point of the snake.
func (z *ZigzagEnum) IndexToPoint(n int) (point.Point, error) {
	if err := checkIndex(n, z.MaxCount()); err != nil {
		return point.Origin, err
	}
	y, x := n/z.w, n%z.w
	if y%2 == 1 {
		x = z.w - 1 - x
	}
	return point.Pt(x, y), nil
}

// PointToIndex returns the index of p inside the quadrant.
func (z *ZigzagEnum) PointToIndex(p point.Point) (int, error) {
	if p.X < 0 || p.Y < 0 || p.X >= z.w || p.Y >= z.w {
		return 0, outOfShape(Zigzag, z.w, p)
	}
	x := p.X
	if p.Y%2 == 1 {
		x = z.w - 1 - x
	}
	return p.Y*z.w + x, nil
}
