package dijkstra

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
)

// NoPredecessor marks prev entries of the source and of unreached nodes.
const NoPredecessor = -1

// Options configures Dijkstra and AllPairs.
//
// ReturnPath       – if true, Dijkstra returns the predecessor slice.
// MaxDistance      – nodes whose distance would exceed this stay unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – arcs with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no walls).
//
// BothDirections   – undirected AllPairs emits both (s,t) and (t,s).
// Workers          – AllPairs worker count; 0 means GOMAXPROCS.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64 `validate:"gte=0"`
	InfEdgeThreshold float64 `validate:"gt=0"`
	BothDirections   bool
	Workers          int         `validate:"gte=0"`
	Logger           *zap.Logger `validate:"-"`
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables the predecessor slice in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration; a negative value fails validation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes arcs with weight ≥ threshold impassable.
// A threshold ≤ 0 fails validation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithBothDirections makes AllPairs on an undirected graph emit every pair
// in both orientations instead of once with Source < Target.
func WithBothDirections() Option {
	return func(o *Options) {
		o.BothDirections = true
	}
}

// WithWorkers bounds the AllPairs worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no arcs treated as impassable).
//   - BothDirections:   false.
//   - Workers:          0 (GOMAXPROCS).
//   - Logger:           zap.NewNop().
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           zap.NewNop(),
	}
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := core.ValidateOptions(&cfg); err != nil {
		return cfg, errors.Wrap(err, "dijkstra")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg, nil
}

// Pair is one reachable (source, target) row of an all-pairs table.
type Pair struct {
	Source   int
	Target   int
	Distance float64
}

// Table is the sparse all-pairs result: only reachable pairs are listed,
// source-major, targets ascending within a source.
type Table struct {
	Pairs []Pair
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Pairs) }
