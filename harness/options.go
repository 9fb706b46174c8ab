package harness

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/surfenum/grid"
)

// Defaults for Options.
const (
	// DefaultTable enables the PointToIndex table pass.
	DefaultTable = true
	// DefaultConnectivity is the neighborhood used for the contiguity check.
	// Every documented step is at most √2 long, so Conn8 always applies.
	DefaultConnectivity = grid.Conn8
)

// Options configures Run. Build it through Option values.
type Options struct {
	logger *slog.Logger
	table  bool
	conn   grid.Connectivity
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes progress (debug) and every issue (warn) to l.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discard()
		}
		o.logger = l
	}
}

// WithTable toggles the O(w²) PointToIndex table pass.
func WithTable(on bool) Option {
	return func(o *Options) { o.table = on }
}

// WithConnectivity selects the contiguity neighborhood.
// It panics on values other than grid.Conn4 and grid.Conn8.
func WithConnectivity(c grid.Connectivity) Option {
	if c != grid.Conn4 && c != grid.Conn8 {
		panic("harness: WithConnectivity: unknown connectivity")
	}
	return func(o *Options) { o.conn = c }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: discard(),
		table:  DefaultTable,
		conn:   DefaultConnectivity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
