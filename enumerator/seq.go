package enumerator

import (
	"iter"

	"github.com/katalvlaran/surfenum/point"
)

// At returns the n-th point of e. It is IndexToPoint spelled as a free
// function so callers can treat every Enumerator uniformly.
func At(e Enumerator, n int) (point.Point, error) {
	return e.IndexToPoint(n)
}

// All yields (index, point) for every index in [0, e.MaxCount()).
// Iteration stops early if IndexToPoint fails, which only happens when e
// violates its own contract; the shortened sequence is what a verifier sees.
func All(e Enumerator) iter.Seq2[int, point.Point] {
	return func(yield func(int, point.Point) bool) {
		total := e.MaxCount()
		for n := 0; n < total; n++ {
			p, err := e.IndexToPoint(n)
			if err != nil || !yield(n, p) {
				return
			}
		}
	}
}

// Points yields the points of e in index order.
func Points(e Enumerator) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for _, p := range All(e) {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect decodes every index of e eagerly, failing on the first error.
func Collect(e Enumerator) ([]point.Point, error) {
	total := e.MaxCount()
	pts := make([]point.Point, 0, total)
	for n := 0; n < total; n++ {
		p, err := e.IndexToPoint(n)
		if err != nil {
			return pts, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}
