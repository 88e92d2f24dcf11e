package betweenness

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
)

// Options configures Compute.
type Options struct {
	// Normalized scales scores by the number of pairs not involving the node.
	Normalized bool
	// Workers bounds the source fan-out; 0 means GOMAXPROCS.
	Workers int         `validate:"gte=0"`
	Logger  *zap.Logger `validate:"-"`
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns Normalized=true, Workers=0, a no-op logger.
func DefaultOptions() Options {
	return Options{
		Normalized: true,
		Logger:     zap.NewNop(),
	}
}

// WithNormalized toggles normalization.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithWorkers bounds the worker pool.
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
		return cfg, errors.Wrap(err, "betweenness")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg, nil
}
