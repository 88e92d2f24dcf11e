package pagerank

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
)

// Dangling selects where the mass of nodes without out-weight goes.
type Dangling int

const (
	// DanglingUniform spreads dangling mass evenly over all nodes.
	DanglingUniform Dangling = iota
	// DanglingSelfLoop keeps dangling mass on the node itself.
	DanglingSelfLoop
)

// String implements fmt.Stringer.
func (d Dangling) String() string {
	switch d {
	case DanglingUniform:
		return "uniform"
	case DanglingSelfLoop:
		return "self-loop"
	default:
		return "unknown"
	}
}

// Options configures Rank.
//
// Damping       – probability of following an arc; must be in (0, 1).
// MaxIterations – iteration cap; must be > 0.
// Tolerance     – stop once the L1 change is below it; must be ≥ 0.
// Dangling      – dangling-mass policy.
// EdgeWeights   – split by arc weight instead of arc multiplicity.
// Workers       – per-iteration fan-out for large graphs; 0 means GOMAXPROCS.
type Options struct {
	Damping       float64  `validate:"gt=0,lt=1"`
	MaxIterations int      `validate:"gt=0"`
	Tolerance     float64  `validate:"gte=0"`
	Dangling      Dangling `validate:"oneof=0 1"`
	EdgeWeights   bool
	Workers       int         `validate:"gte=0"`
	Logger        *zap.Logger `validate:"-"`
}

// Option is a functional option for Rank.
type Option func(*Options)

// Documented defaults.
const (
	DefaultDamping       = 0.85
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-10
)

// DefaultOptions returns the documented defaults with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Dangling:      DanglingUniform,
		Logger:        zap.NewNop(),
	}
}

// WithDamping sets the damping factor.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the L1 convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithDangling sets the dangling-mass policy.
func WithDangling(policy Dangling) Option {
	return func(o *Options) { o.Dangling = policy }
}

// WithEdgeWeights splits a node's mass by arc weight.
func WithEdgeWeights() Option {
	return func(o *Options) { o.EdgeWeights = true }
}

// WithWorkers bounds the per-iteration fan-out.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolveOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := core.ValidateOptions(&cfg); err != nil {
		return cfg, errors.Wrap(err, "pagerank")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg, nil
}
