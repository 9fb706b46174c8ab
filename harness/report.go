package harness

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/surfenum/enumerator"
	"github.com/katalvlaran/surfenum/grid"
	"github.com/katalvlaran/surfenum/point"
)

// Sentinel errors carried by issues.
var (
	// ErrSequenceMismatch indicates the lazy sequence differs from direct decoding.
	ErrSequenceMismatch = errors.New("harness: iterated and generated lists don't match")
	// ErrRoundTrip indicates PointToIndex(IndexToPoint(n)) != n.
	ErrRoundTrip = errors.New("harness: round trip mismatch")
	// ErrDisconnected indicates the visited cells are not one region.
	ErrDisconnected = errors.New("harness: visited region is not contiguous")
	// ErrDistanceLaw indicates a step or the wrap-around breaks the variant's law.
	ErrDistanceLaw = errors.New("harness: distance law violated")
)

// OutOfShape marks a Table cell whose point lies outside the region.
const OutOfShape = -1

// IssueKind classifies an Issue by the check that raised it.
type IssueKind int

const (
	// IssueTable: PointToIndex failed with something other than ErrOutOfShape.
	IssueTable IssueKind = iota
	// IssueDecode: IndexToPoint failed for an index in [0, MaxCount).
	IssueDecode
	// IssueSequence: the lazy sequence differs from direct decoding.
	IssueSequence
	// IssueRoundTrip: PointToIndex(IndexToPoint(n)) != n or failed.
	IssueRoundTrip
	// IssuePlacement: a point collided on the grid or fell outside it.
	IssuePlacement
	// IssueContiguity: placed cells form more than one region.
	IssueContiguity
	// IssueStep: a consecutive step length is not allowed by the law.
	IssueStep
	// IssueWrap: the last-to-first distance differs from the law.
	IssueWrap
)

var issueNames = [...]string{
	IssueTable:      "table",
	IssueDecode:     "decode",
	IssueSequence:   "sequence",
	IssueRoundTrip:  "round-trip",
	IssuePlacement:  "placement",
	IssueContiguity: "contiguity",
	IssueStep:       "step",
	IssueWrap:       "wrap",
}

// String returns the check name, e.g. "round-trip".
func (k IssueKind) String() string {
	if k < 0 || int(k) >= len(issueNames) {
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
	return issueNames[k]
}

// Issue is one problem found by Run. Index is -1 when the issue is not tied
// to a single index.
type Issue struct {
	Kind  IssueKind
	Index int
	Point point.Point
	Err   error
}

// Error returns the message of the underlying error.
func (i Issue) Error() string { return i.Err.Error() }

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (i Issue) Unwrap() error { return i.Err }

// Bin is one histogram entry: Count consecutive pairs lie sqrt(Dist2) apart.
type Bin struct {
	Dist2 int
	Count int
}

// Dist returns the Euclidean distance of the bin.
func (b Bin) Dist() float64 { return math.Sqrt(float64(b.Dist2)) }

// Report is the outcome of Run.
type Report struct {
	Kind     enumerator.Kind
	Width    int
	MaxCount int

	// Table holds PointToIndex over [-w, w]², rows from y = w down, or nil
	// when the pass was disabled.
	Table [][]int
	// Points is the direct decoding of every index that decoded cleanly.
	Points []point.Point
	// SequenceDiff is the go-cmp diff (-direct +sequence), empty on match.
	SequenceDiff string
	// Histogram of cyclic consecutive distances, ascending by distance.
	Histogram []Bin
	// Grid holds every placed index.
	Grid *grid.Grid
	// Components is the number of contiguous regions of placed cells.
	Components int

	Issues []Issue
}

// OK reports whether Run found no issues.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Err joins every issue, or returns nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Issues))
	for i, is := range r.Issues {
		errs[i] = is
	}
	return errors.Join(errs...)
}

// Count returns the number of issues of kind k.
func (r *Report) Count(k IssueKind) int {
	n := 0
	for _, is := range r.Issues {
		if is.Kind == k {
			n++
		}
	}
	return n
}

// Summary is a one-line verdict such as "spiral:3 ok (25 points)".
func (r *Report) Summary() string {
	if r.OK() {
		return fmt.Sprintf("%v:%d ok (%d points)", r.Kind, r.Width, r.MaxCount)
	}
	return fmt.Sprintf("%v:%d FAILED (%d issues)", r.Kind, r.Width, len(r.Issues))
}
