package harness

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/surfenum/enumerator"
	"github.com/katalvlaran/surfenum/grid"
	"github.com/katalvlaran/surfenum/point"
)

// decoded pairs an index with the point IndexToPoint returned for it.
type decoded struct {
	n int
	p point.Point
}

// run carries the state of one Run call.
type run struct {
	e    enumerator.Enumerator
	opts Options
	log  *slog.Logger
	rep  *Report
}

// Run checks e and returns the report. It never stops early: every failing
// index is reported individually.
func Run(e enumerator.Enumerator, opts ...Option) *Report {
	o := gatherOptions(opts...)
	r := &run{
		e:    e,
		opts: o,
		log:  o.logger.With("kind", e.Kind().String(), "width", e.Width()),
		rep: &Report{
			Kind:     e.Kind(),
			Width:    e.Width(),
			MaxCount: e.MaxCount(),
		},
	}
	r.log.Debug("harness run", "maxCount", r.rep.MaxCount)

	if o.table {
		r.table()
	}
	dec := r.decode()
	r.sequence()
	r.histogram()
	r.roundTrip(dec)
	r.place(dec)
	r.distanceLaw(dec)

	r.log.Debug("harness done", "issues", len(r.rep.Issues))
	return r.rep
}

func (r *run) report(kind IssueKind, n int, p point.Point, err error) {
	is := Issue{Kind: kind, Index: n, Point: p, Err: err}
	r.rep.Issues = append(r.rep.Issues, is)
	r.log.Warn(is.Error(), "check", kind.String(), "index", n)
}

// table decodes every point of [-w, w]², y descending.
func (r *run) table() {
	w := r.e.Width()
	rows := make([][]int, 0, 2*w+1)
	for y := w; y >= -w; y-- {
		row := make([]int, 0, 2*w+1)
		for x := -w; x <= w; x++ {
			p := point.Pt(x, y)
			n, err := r.e.PointToIndex(p)
			if err != nil {
				if !errors.Is(err, enumerator.ErrOutOfShape) {
					r.report(IssueTable, -1, p, err)
				}
				n = OutOfShape
			}
			row = append(row, n)
		}
		rows = append(rows, row)
	}
	r.rep.Table = rows
}

func (r *run) decode() []decoded {
	total := r.e.MaxCount()
	dec := make([]decoded, 0, total)
	pts := make([]point.Point, 0, total)
	for n := 0; n < total; n++ {
		p, err := r.e.IndexToPoint(n)
		if err != nil {
			r.report(IssueDecode, n, point.Origin, fmt.Errorf("harness: decode %d: %w", n, err))
			continue
		}
		dec = append(dec, decoded{n, p})
		pts = append(pts, p)
	}
	r.rep.Points = pts
	return dec
}

func (r *run) sequence() {
	seq := slices.Collect(enumerator.Points(r.e))
	diff := gocmp.Diff(r.rep.Points, seq, cmpopts.EquateEmpty())
	if diff == "" {
		return
	}
	r.rep.SequenceDiff = diff
	r.report(IssueSequence, -1, point.Origin,
		fmt.Errorf("%w: %d direct, %d iterated", ErrSequenceMismatch, len(r.rep.Points), len(seq)))
}

// histogram treats the point list as a ring: the first entry pairs the
// last point with the first.
func (r *run) histogram() {
	pts := r.rep.Points
	if len(pts) == 0 {
		return
	}
	counts := make(map[int]int)
	q := pts[len(pts)-1]
	for _, p := range pts {
		counts[p.Sub(q).Norm2()]++
		q = p
	}
	bins := make([]Bin, 0, len(counts))
	for _, d2 := range slices.Sorted(maps.Keys(counts)) {
		bins = append(bins, Bin{Dist2: d2, Count: counts[d2]})
	}
	r.rep.Histogram = bins
}

func (r *run) roundTrip(dec []decoded) {
	for _, d := range dec {
		got, err := r.e.PointToIndex(d.p)
		if err != nil {
			r.report(IssueRoundTrip, d.n, d.p, fmt.Errorf("%w: %d -> %v: %w", ErrRoundTrip, d.n, d.p, err))
			continue
		}
		if got != d.n {
			r.report(IssueRoundTrip, d.n, d.p, fmt.Errorf("%w: %d -> %v -> %d", ErrRoundTrip, d.n, d.p, got))
		}
	}
}

func (r *run) place(dec []decoded) {
	g, err := grid.New(r.e.Width())
	if err != nil {
		r.report(IssuePlacement, -1, point.Origin, err)
		return
	}
	for _, d := range dec {
		if err := g.Place(d.p, d.n); err != nil {
			r.report(IssuePlacement, d.n, d.p, err)
		}
	}
	r.rep.Grid = g

	comps := g.ConnectedComponents(r.opts.conn)
	r.rep.Components = len(comps)
	if len(comps) > 1 {
		sizes := make([]int, len(comps))
		for i, c := range comps {
			sizes[i] = len(c)
		}
		slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
		r.report(IssueContiguity, -1, point.Origin, fmt.Errorf("%w: %d regions of sizes %v", ErrDisconnected, len(comps), sizes))
	}
}

func (r *run) distanceLaw(dec []decoded) {
	if len(dec) == 0 {
		return
	}
	law := r.e.Kind().Law(r.e.Width())
	for i := 1; i < len(dec); i++ {
		prev, cur := dec[i-1], dec[i]
		if d2 := cur.p.Sub(prev.p).Norm2(); !law.Allows(d2) {
			r.report(IssueStep, cur.n, cur.p, fmt.Errorf("%w: step %v -> %v has squared length %d, want one of %v",
				ErrDistanceLaw, prev.p, cur.p, d2, law.Steps))
		}
	}
	first, last := dec[0], dec[len(dec)-1]
	if d2 := last.p.Sub(first.p).Norm2(); d2 != law.Wrap {
		r.report(IssueWrap, last.n, last.p, fmt.Errorf("%w: wrap %v -> %v has squared length %d, want %d",
			ErrDistanceLaw, last.p, first.p, d2, law.Wrap))
	}
}
