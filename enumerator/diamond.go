package enumerator

import "github.com/katalvlaran/surfenum/point"

// DiamondEnum enumerates the Manhattan ball of radius w-1 around the origin,
// clockwise, one ring at a time. Ring i ≥ 1 holds 4i points and starts at
// (1, i-1). Consecutive points are 1 or √2 apart; the last point lies w-1
// from the origin.
//
//	            40*41
//	         39 24*25 42
//	      38 23 12*13 26 43
//	   37 22 11  4 *5 14 27 44
//	36 21 10  3  0 *1  6 15 28 45
//	   35 20  9  2  7 16 29
//	      34 19  8 17 30
//	         33 18 31
//	            32
//
// The starred column holds the ring starts 2i²-2i+1.
type DiamondEnum struct{ width }

// NewDiamond returns a diamond of w rings, counting the origin as ring 0.
func NewDiamond(w int) (*DiamondEnum, error) {
	b, err := newWidth(Diamond, w)
	if err != nil {
		return nil, err
	}
	return &DiamondEnum{b}, nil
}

// Kind returns Diamond.
func (d *DiamondEnum) Kind() Kind { return Diamond }

// MaxCount returns 2w(w-1)+1, which is 1 for w = 0.
func (d *DiamondEnum) MaxCount() int { return 2*d.w*(d.w-1) + 1 }

func (d *DiamondEnum) radius() int { return max(d.w-1, 0) }

// ringStart is the index of the first point on ring i ≥ 1.
func ringStart(i int) int { return 2*i*i - 2*i + 1 }

// IndexToPoint returns the n-th point of the diamond.
func (d *DiamondEnum) IndexToPoint(n int) (point.Point, error) {
	if err := checkIndex(n, d.MaxCount()); err != nil {
		return point.Origin, err
	}
	if n == 0 {
		return point.Origin, nil
	}
	i := (1 + isqrt(2*n-1)) / 2
	j := n - ringStart(i)

	q, m := j/i, j%i
	switch q {
	case 0: // x+y = i
		return point.Pt(m+1, i-1-m), nil
	case 1: // x-y = i
		return point.Pt(i-1-m, -m-1), nil
	case 2: // -x-y = i
		return point.Pt(-m-1, m-i+1), nil
	case 3: // -x+y = i
		return point.Pt(m-i+1, m+1), nil
	}
	return point.Origin, ErrInvalidQuadrant
}

// PointToIndex returns the index of p, whose Manhattan radius must not
// exceed w-1.
func (d *DiamondEnum) PointToIndex(p point.Point) (int, error) {
	if r := d.radius(); !within(p, r) || p.Manhattan() > r {
		return 0, outOfShape(Diamond, d.w, p)
	}
	if p == point.Origin {
		return 0, nil
	}
	var q, m, i int
	switch {
	case p.X > 0 && p.Y >= 0:
		q, m, i = 0, p.X-1, p.X+p.Y
	case p.X > 0 && p.Y < 0:
		q, m, i = 1, -p.Y-1, p.X-p.Y
	case p.X <= 0 && p.Y < 0:
		q, m, i = 2, -p.X-1, -p.X-p.Y
	case p.X <= 0 && p.Y >= 0:
		q, m, i = 3, p.Y-1, -p.X+p.Y
	default:
		return 0, ErrInvalidQuadrant
	}
	return q*i + m + ringStart(i), nil
}
