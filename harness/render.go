package harness

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column widths of the rendered sections.
const (
	tableCell = 4
	gridCell  = 3
	countCell = 4
)

// WriteTo renders the report: the PointToIndex table, the distance
// histogram, one WARNING line per issue and the placement grid.
// Out-of-shape table cells print as "."; unassigned grid cells as -1.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	if r.Table != nil {
		b.WriteString("points to ints\n")
		for _, row := range r.Table {
			for _, n := range row {
				s := "."
				if n != OutOfShape {
					s = strconv.Itoa(n)
				}
				b.WriteString(runewidth.FillLeft(s, tableCell))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString("consecutive point differences\n")
	for _, bin := range r.Histogram {
		b.WriteString(runewidth.FillLeft(strconv.Itoa(bin.Count), countCell))
		b.WriteString(" : ")
		b.WriteString(strconv.FormatFloat(bin.Dist(), 'g', 6, 64))
		b.WriteByte('\n')
	}

	for _, is := range r.Issues {
		b.WriteString("WARNING: ")
		b.WriteString(is.Error())
		b.WriteByte('\n')
	}
	if r.SequenceDiff != "" {
		b.WriteString(r.SequenceDiff)
		if !strings.HasSuffix(r.SequenceDiff, "\n") {
			b.WriteByte('\n')
		}
	}

	if r.Grid != nil {
		b.WriteString("generated grid\n")
		for _, row := range r.Grid.Rows() {
			for _, n := range row {
				b.WriteString(runewidth.FillLeft(strconv.Itoa(n), gridCell))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
