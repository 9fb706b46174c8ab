package enumerator

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/surfenum/point"
)

// Enumerator is the contract shared by all variants.
//
// IndexToPoint must accept every n in [0, MaxCount()) and PointToIndex every
// point it produces; the two are mutual inverses on that set.
type Enumerator interface {
	// Kind identifies the variant.
	Kind() Kind
	// Width returns the constructing parameter.
	Width() int
	// MaxCount returns the number of points in the region.
	MaxCount() int
	// IndexToPoint maps n to its point, or fails with ErrIndexOutOfRange.
	IndexToPoint(n int) (point.Point, error)
	// PointToIndex maps p to its index, or fails with ErrOutOfShape.
	PointToIndex(p point.Point) (int, error)
}

// Kind selects one of the enumeration shapes.
type Kind int

const (
	// Zigzag snakes row by row through the w×w quadrant.
	Zigzag Kind = iota
	// Spiral winds counter-clockwise through square rings.
	Spiral
	// Triangle alternates direction along anti-diagonals.
	Triangle
	// Diamond walks clockwise through Manhattan rings.
	Diamond
)

var kindNames = [...]string{
	Zigzag:   "zigzag",
	Spiral:   "spiral",
	Triangle: "triangle",
	Diamond:  "diamond",
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{Zigzag, Spiral, Triangle, Diamond}
}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a variant name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New constructs the variant selected by kind with width w.
func New(kind Kind, w int) (Enumerator, error) {
	switch kind {
	case Zigzag:
		return NewZigzag(w)
	case Spiral:
		return NewSpiral(w)
	case Triangle:
		return NewTriangle(w)
	case Diamond:
		return NewDiamond(w)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// Law describes the distances a variant's sequence is allowed to exhibit.
// All values are squared Euclidean distances so they compare exactly.
type Law struct {
	// Steps holds the allowed squared distances between consecutive points.
	Steps []int
	// Wrap is the squared distance from the last point back to the first.
	Wrap int
}

// Allows reports whether d2 is one of the allowed step distances.
func (l Law) Allows(d2 int) bool {
	for _, s := range l.Steps {
		if s == d2 {
			return true
		}
	}
	return false
}

// Law returns the distance law of kind at width w.
//
//	zigzag    steps {1}      wrap w-1 (even w), √2·(w-1) (odd w)
//	spiral    steps {1}      wrap √2·(w-1)
//	triangle  steps {1, √2}  wrap w-1
//	diamond   steps {1, √2}  wrap w-1
func (k Kind) Law(w int) Law {
	r := max(w-1, 0)
	switch k {
	case Zigzag:
		if w%2 == 0 {
			return Law{Steps: []int{1}, Wrap: r * r}
		}
		return Law{Steps: []int{1}, Wrap: 2 * r * r}
	case Spiral:
		return Law{Steps: []int{1}, Wrap: 2 * r * r}
	case Triangle, Diamond:
		return Law{Steps: []int{1, 2}, Wrap: r * r}
	}
	return Law{}
}

// width is embedded by every variant.
type width struct{ w int }

// Width returns the constructing parameter.
func (b width) Width() int { return b.w }

// MaxWidth returns the largest width New accepts for kind. Up to that width
// MaxCount, the square-root radicands of IndexToPoint and the squared
// distances reported by Law all fit in an int. It returns -1 for an unknown
// kind.
func MaxWidth(kind Kind) int {
	if kind < 0 || int(kind) >= len(maxWidths) {
		return -1
	}
	return maxWidths[kind]
}

// maxWidths is indexed by Kind; s = floor(sqrt(MaxInt)).
//
//	zigzag    2w² ≤ MaxInt       (odd-width wrap 2(w-1)², MaxCount w²)
//	spiral    2w-1 ≤ s           (MaxCount (2w-1)²)
//	triangle  2w+1 ≤ s           (radicand 1+8n < (2w+1)²)
//	diamond   2w-1 ≤ s           (radicand 2n-1 < (2w-1)²)
var maxWidths = func() [4]int {
	s := isqrt(math.MaxInt)
	return [4]int{
		Zigzag:   isqrt(math.MaxInt / 2),
		Spiral:   (s + 1) / 2,
		Triangle: (s - 1) / 2,
		Diamond:  (s + 1) / 2,
	}
}()

func newWidth(k Kind, w int) (width, error) {
	if w < 0 {
		return width{}, fmt.Errorf("%w: %d", ErrNegativeWidth, w)
	}
	if limit := MaxWidth(k); w > limit {
		return width{}, fmt.Errorf("%w: %d exceeds %d for %v", ErrWidthTooLarge, w, limit, k)
	}
	return width{w: w}, nil
}

// within reports whether |x|,|y| ≤ r without computing abs, which overflows
// for math.MinInt.
func within(p point.Point, r int) bool {
	return p.X >= -r && p.X <= r && p.Y >= -r && p.Y <= r
}

func checkIndex(n, maxCount int) error {
	if n < 0 || n >= maxCount {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, n, maxCount)
	}
	return nil
}

func outOfShape(k Kind, w int, p point.Point) error {
	return fmt.Errorf("%w: %v for %v width %d", ErrOutOfShape, p, k, w)
}

// isqrt returns floor(sqrt(n)) for n ≥ 0, exact for every int. The
// corrections divide instead of squaring so they cannot overflow near
// math.MaxInt.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	r := int(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
