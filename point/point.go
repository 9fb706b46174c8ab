// Package point provides the immutable integer 2-D coordinate shared by every
// enumerator, the placement grid and the verification harness.
package point

import (
	"math"
	"strconv"
)

// Point is a lattice point <X,Y>. It is a plain value: copy it freely.
type Point struct{ X, Y int }

// Origin is the zero value of Point.
var Origin = Point{}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	p.X += q.X
	p.Y += q.Y
	return p
}

// Sub returns the component-wise difference p-q.
func (p Point) Sub(q Point) Point {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

// Mul scales both components by k.
func (p Point) Mul(k int) Point {
	p.X *= k
	p.Y *= k
	return p
}

// Div divides both components by k, truncating toward zero.
// Like the / operator it panics when k is zero.
func (p Point) Div(k int) Point {
	p.X /= k
	p.Y /= k
	return p
}

// Equal reports whether both components match.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Norm2 returns the squared Euclidean length x²+y². It is exact, which makes
// it the preferred key when bucketing distances.
func (p Point) Norm2() int {
	return p.X*p.X + p.Y*p.Y
}

// Norm returns the Euclidean length sqrt(x²+y²).
func (p Point) Norm() float64 {
	return math.Sqrt(float64(p.Norm2()))
}

// Dist returns the Euclidean distance |p-q|.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// Chebyshev returns max(|x|,|y|), the ring index of the square spiral.
func (p Point) Chebyshev() int {
	return max(abs(p.X), abs(p.Y))
}

// Manhattan returns |x|+|y|, the ring index of the diamond.
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	b := make([]byte, 0, 16)
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(p.X), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(p.Y), 10)
	b = append(b, ')')
	return string(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
