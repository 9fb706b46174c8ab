package enumerator_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfenum/enumerator"
	"github.com/katalvlaran/surfenum/point"
)

// widths is the representative width range every property is checked over.
var widths = []int{0, 1, 2, 3, 8}

func mustNew(t *testing.T, k enumerator.Kind, w int) enumerator.Enumerator {
	t.Helper()
	e, err := enumerator.New(k, w)
	require.NoError(t, err, "New(%v, %d)", k, w)
	return e
}

// forEach runs fn as a subtest for every kind and width in widths.
func forEach(t *testing.T, fn func(t *testing.T, e enumerator.Enumerator)) {
	for _, k := range enumerator.Kinds() {
		for _, w := range widths {
			e := mustNew(t, k, w)
			t.Run(fmt.Sprintf("%v/w=%d", k, w), func(t *testing.T) { fn(t, e) })
		}
	}
}

//----------------------------------------------------------------------------//
// MaxCount and width-0 convention
//----------------------------------------------------------------------------//

func TestMaxCount(t *testing.T) {
	want := map[enumerator.Kind][]int{
		enumerator.Zigzag:   {0, 1, 4, 9, 64},
		enumerator.Spiral:   {1, 1, 9, 25, 225},
		enumerator.Triangle: {0, 1, 3, 6, 36},
		enumerator.Diamond:  {1, 1, 5, 13, 113},
	}
	for k, counts := range want {
		for i, w := range widths {
			e := mustNew(t, k, w)
			assert.Equal(t, counts[i], e.MaxCount(), "%v w=%d", k, w)
			assert.Equal(t, w, e.Width())
			assert.Equal(t, k, e.Kind())
		}
	}
}

// TestWidthZero pins the width-0 convention: zig-zag and triangle are empty,
// spiral and diamond hold only the origin.
func TestWidthZero(t *testing.T) {
	for _, k := range []enumerator.Kind{enumerator.Zigzag, enumerator.Triangle} {
		e := mustNew(t, k, 0)
		_, err := e.IndexToPoint(0)
		assert.ErrorIs(t, err, enumerator.ErrIndexOutOfRange, "%v", k)
		_, err = e.PointToIndex(point.Origin)
		assert.ErrorIs(t, err, enumerator.ErrOutOfShape, "%v", k)
		assert.Empty(t, collect(e), "%v", k)
	}
	for _, k := range []enumerator.Kind{enumerator.Spiral, enumerator.Diamond} {
		e := mustNew(t, k, 0)
		assert.Equal(t, []point.Point{point.Origin}, collect(e), "%v", k)
		n, err := e.PointToIndex(point.Origin)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		_, err = e.PointToIndex(point.Pt(1, 0))
		assert.ErrorIs(t, err, enumerator.ErrOutOfShape, "%v", k)
	}
}

//----------------------------------------------------------------------------//
// Concrete sequences
//----------------------------------------------------------------------------//

func TestSequences(t *testing.T) {
	cases := []struct {
		kind enumerator.Kind
		w    int
		want []point.Point
	}{
		{enumerator.Zigzag, 2, []point.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		{enumerator.Zigzag, 3, []point.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
		}},
		{enumerator.Triangle, 3, []point.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0}, {X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0},
		}},
		{enumerator.Spiral, 2, []point.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		}},
		{enumerator.Diamond, 3, []point.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1},
			{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -2}, {X: -1, Y: -1}, {X: -2, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 2},
		}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v/w=%d", tc.kind, tc.w), func(t *testing.T) {
			e := mustNew(t, tc.kind, tc.w)
			assert.Equal(t, tc.want, collect(e))
		})
	}
}

func TestZigzag_PointToIndex(t *testing.T) {
	z, err := enumerator.NewZigzag(2)
	require.NoError(t, err)
	n, err := z.PointToIndex(point.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSpiral_RingStarts(t *testing.T) {
	s, err := enumerator.NewSpiral(5)
	require.NoError(t, err)
	// ring r starts at (r, -r+1), index (2r-1)²
	for r := 1; r < 5; r++ {
		n, err := s.PointToIndex(point.Pt(r, -r+1))
		require.NoError(t, err)
		assert.Equal(t, (2*r-1)*(2*r-1), n, "ring %d", r)
	}
}

func TestDiamond_RingStarts(t *testing.T) {
	d, err := enumerator.NewDiamond(7)
	require.NoError(t, err)
	// the starred column of the diagram: 1 5 13 25 41
	want := []int{1, 5, 13, 25, 41}
	for i, n := range want {
		p, err := d.IndexToPoint(n)
		require.NoError(t, err)
		assert.Equal(t, point.Pt(1, i), p)
	}
}

//----------------------------------------------------------------------------//
// Bijection, coverage and distance laws
//----------------------------------------------------------------------------//

// TestBijection checks pointToIndex(indexToPoint(n)) == n and that the
// decoded points are pairwise distinct.
func TestBijection(t *testing.T) {
	forEach(t, func(t *testing.T, e enumerator.Enumerator) {
		seen := make(map[point.Point]int, e.MaxCount())
		for n := 0; n < e.MaxCount(); n++ {
			p, err := e.IndexToPoint(n)
			require.NoError(t, err)
			got, err := e.PointToIndex(p)
			require.NoError(t, err)
			assert.Equal(t, n, got, "round trip via %v", p)
			if prev, dup := seen[p]; dup {
				t.Errorf("%v produced by both %d and %d", p, prev, n)
			}
			seen[p] = n
		}
		assert.Len(t, seen, e.MaxCount())
	})
}

// TestRegion scans [-w-1, w+1]² and checks that exactly MaxCount points are in
// shape, each mapping back to itself, and that the rest report ErrOutOfShape.
func TestRegion(t *testing.T) {
	forEach(t, func(t *testing.T, e enumerator.Enumerator) {
		w := e.Width()
		inside := 0
		for y := -w - 1; y <= w+1; y++ {
			for x := -w - 1; x <= w+1; x++ {
				p := point.Pt(x, y)
				n, err := e.PointToIndex(p)
				if err != nil {
					assert.ErrorIs(t, err, enumerator.ErrOutOfShape, "%v", p)
					continue
				}
				inside++
				back, err := e.IndexToPoint(n)
				require.NoError(t, err, "%v -> %d", p, n)
				assert.Equal(t, p, back)
			}
		}
		assert.Equal(t, e.MaxCount(), inside)
	})
}

// TestSequenceMatchesIndexing checks that Points yields exactly
// IndexToPoint(0..MaxCount-1), and yields it again on a second range.
func TestSequenceMatchesIndexing(t *testing.T) {
	forEach(t, func(t *testing.T, e enumerator.Enumerator) {
		direct := make([]point.Point, 0, e.MaxCount())
		for n := 0; n < e.MaxCount(); n++ {
			p, err := enumerator.At(e, n)
			require.NoError(t, err)
			direct = append(direct, p)
		}
		assert.Equal(t, direct, collect(e))
		assert.Equal(t, direct, collect(e), "sequence must restart")

		eager, err := enumerator.Collect(e)
		require.NoError(t, err)
		assert.Equal(t, direct, eager)
	})
}

func TestDistanceLaw(t *testing.T) {
	forEach(t, func(t *testing.T, e enumerator.Enumerator) {
		pts := collect(e)
		if len(pts) == 0 {
			return
		}
		law := e.Kind().Law(e.Width())
		for i := 1; i < len(pts); i++ {
			d2 := pts[i].Sub(pts[i-1]).Norm2()
			assert.True(t, law.Allows(d2), "step %v -> %v has squared length %d", pts[i-1], pts[i], d2)
		}
		assert.Equal(t, law.Wrap, pts[len(pts)-1].Sub(pts[0]).Norm2(), "wrap distance")
	})
}

// TestLargeIndices exercises indices around perfect squares where a
// floating-point square root would misround.
func TestLargeIndices(t *testing.T) {
	const w = 1 << 20
	for _, k := range enumerator.Kinds() {
		e := mustNew(t, k, w)
		total := e.MaxCount()
		for _, base := range []int{total / 3, total / 2, total - 3} {
			r := isqrtRef(base)
			for _, n := range []int{r*r - 1, r * r, r*r + 1, base} {
				if n < 0 || n >= total {
					continue
				}
				p, err := e.IndexToPoint(n)
				require.NoError(t, err)
				got, err := e.PointToIndex(p)
				require.NoError(t, err)
				assert.Equal(t, n, got, "%v n=%d", k, n)
			}
		}
	}
}

// TestWidthLimits checks the largest accepted width of every kind still
// round-trips its first, last and near-square indices, and that one more is
// rejected.
func TestWidthLimits(t *testing.T) {
	for _, k := range enumerator.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			w := enumerator.MaxWidth(k)
			require.Positive(t, w)

			e, err := enumerator.New(k, w)
			require.NoError(t, err)
			total := e.MaxCount()
			require.Positive(t, total, "MaxCount must not wrap")

			law := k.Law(w)
			assert.GreaterOrEqual(t, law.Wrap, 0, "wrap distance must not wrap")

			indices := []int{0, 1, total - 1, total - 2}
			for _, base := range []int{total / 3, total / 2, total - 1} {
				r := isqrtRef(base)
				indices = append(indices, r*r-1, r*r, r*r+1)
			}
			for _, n := range indices {
				if n < 0 || n >= total {
					continue
				}
				p, err := e.IndexToPoint(n)
				require.NoError(t, err, "n=%d", n)
				got, err := e.PointToIndex(p)
				require.NoError(t, err, "n=%d -> %v", n, p)
				assert.Equal(t, n, got, "n=%d -> %v", n, p)
			}

			last, err := e.IndexToPoint(total - 1)
			require.NoError(t, err)
			first, err := e.IndexToPoint(0)
			require.NoError(t, err)
			assert.Equal(t, law.Wrap, last.Sub(first).Norm2(), "wrap at the width limit")

			_, err = enumerator.New(k, w+1)
			assert.ErrorIs(t, err, enumerator.ErrWidthTooLarge)
		})
	}
	assert.Equal(t, -1, enumerator.MaxWidth(enumerator.Kind(42)))

	if strconv.IntSize == 64 {
		assert.Equal(t, 2147483647, enumerator.MaxWidth(enumerator.Zigzag))
		assert.Equal(t, 1518500250, enumerator.MaxWidth(enumerator.Spiral))
		assert.Equal(t, 1518500249, enumerator.MaxWidth(enumerator.Triangle))
		assert.Equal(t, 1518500250, enumerator.MaxWidth(enumerator.Diamond))
	}
}

// TestExtremePoints feeds coordinates whose absolute value or sum overflows.
func TestExtremePoints(t *testing.T) {
	pts := []point.Point{
		{X: math.MinInt, Y: 0}, {X: 0, Y: math.MinInt}, {X: math.MinInt, Y: math.MinInt},
		{X: math.MaxInt, Y: math.MaxInt}, {X: math.MaxInt, Y: math.MinInt}, {X: 1, Y: math.MaxInt},
	}
	for _, k := range enumerator.Kinds() {
		e := mustNew(t, k, 8)
		for _, p := range pts {
			_, err := e.PointToIndex(p)
			assert.ErrorIs(t, err, enumerator.ErrOutOfShape, "%v %v", k, p)
		}
	}
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

func TestErrors(t *testing.T) {
	for _, k := range enumerator.Kinds() {
		_, err := enumerator.New(k, -1)
		assert.ErrorIs(t, err, enumerator.ErrNegativeWidth, "%v", k)

		e := mustNew(t, k, 3)
		for _, n := range []int{-1, e.MaxCount(), e.MaxCount() + 10} {
			_, err := e.IndexToPoint(n)
			assert.ErrorIs(t, err, enumerator.ErrIndexOutOfRange, "%v n=%d", k, n)
		}
	}
	_, err := enumerator.New(enumerator.Kind(42), 1)
	assert.ErrorIs(t, err, enumerator.ErrUnknownKind)

	outside := map[enumerator.Kind][]point.Point{
		enumerator.Zigzag:   {{X: 3, Y: 0}, {X: 0, Y: 3}, {X: -1, Y: 0}, {X: 0, Y: -1}},
		enumerator.Spiral:   {{X: 3, Y: 0}, {X: -3, Y: 3}, {X: 0, Y: -3}},
		enumerator.Triangle: {{X: 2, Y: 1}, {X: 3, Y: 0}, {X: -1, Y: 1}, {X: 1, Y: -1}},
		enumerator.Diamond:  {{X: 2, Y: 1}, {X: -3, Y: 0}, {X: 1, Y: -2}},
	}
	for k, pts := range outside {
		e := mustNew(t, k, 3)
		for _, p := range pts {
			_, err := e.PointToIndex(p)
			assert.ErrorIs(t, err, enumerator.ErrOutOfShape, "%v %v", k, p)
		}
	}
}

// TestInvalidQuadrantUnreachable walks every index and every in-range point
// for widths 0..16 and checks the quadrant classification never fails.
func TestInvalidQuadrantUnreachable(t *testing.T) {
	for _, k := range enumerator.Kinds() {
		for w := 0; w <= 16; w++ {
			e := mustNew(t, k, w)
			for n := 0; n < e.MaxCount(); n++ {
				_, err := e.IndexToPoint(n)
				require.NoError(t, err, "%v w=%d n=%d", k, w, n)
			}
			for y := -w; y <= w; y++ {
				for x := -w; x <= w; x++ {
					_, err := e.PointToIndex(point.Pt(x, y))
					assert.NotErrorIs(t, err, enumerator.ErrInvalidQuadrant, "%v w=%d (%d,%d)", k, w, x, y)
				}
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range enumerator.Kinds() {
		got, err := enumerator.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := enumerator.ParseKind(" Diamond ")
	require.NoError(t, err)
	assert.Equal(t, enumerator.Diamond, got)

	_, err = enumerator.ParseKind("hilbert")
	assert.ErrorIs(t, err, enumerator.ErrUnknownKind)
	assert.Equal(t, "Kind(9)", enumerator.Kind(9).String())
}

func collect(e enumerator.Enumerator) []point.Point {
	pts := []point.Point{}
	for p := range enumerator.Points(e) {
		pts = append(pts, p)
	}
	return pts
}

// isqrtRef is a bit-by-bit integer square root that never squares past n.
func isqrtRef(n int) int {
	r := 0
	for bit := 1 << 31; bit > 0; bit >>= 1 {
		if c := r + bit; c <= n/c {
			r = c
		}
	}
	return r
}
