package rules

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
)

// Options configures Mine.
type Options struct {
	// MinSupport drops itemsets whose support is below it.
	MinSupport float64 `validate:"gte=0,lte=1"`
	// MinConfidence drops rules whose confidence is below it.
	MinConfidence float64 `validate:"gte=0,lte=1"`
	// Weighted uses record weights instead of transaction counts.
	Weighted bool
	// MaxItemsetSize is the largest itemset mined; it also excludes larger
	// transactions from co-occurrence counting.
	MaxItemsetSize int `validate:"gte=1"`
	// MaxConsequents keeps the best rules per item; 0 keeps all.
	MaxConsequents int `validate:"gte=0"`
	// MaxCandidates caps the candidate itemsets of one level.
	MaxCandidates int         `validate:"gt=0"`
	Logger        *zap.Logger `validate:"-"`
}

// Option is a functional option for Mine.
type Option func(*Options)

// Documented defaults.
const (
	DefaultMinSupport     = 0.01
	DefaultMinConfidence  = 0.1
	DefaultMaxItemsetSize = 3
	DefaultMaxCandidates  = 1_000_000
)

// DefaultOptions returns the documented defaults with a no-op logger.
func DefaultOptions() Options {
	return Options{
		MinSupport:     DefaultMinSupport,
		MinConfidence:  DefaultMinConfidence,
		MaxItemsetSize: DefaultMaxItemsetSize,
		MaxCandidates:  DefaultMaxCandidates,
		Logger:         zap.NewNop(),
	}
}

// WithMinSupport sets the support threshold.
func WithMinSupport(s float64) Option {
	return func(o *Options) { o.MinSupport = s }
}

// WithMinConfidence sets the confidence threshold.
func WithMinConfidence(c float64) Option {
	return func(o *Options) { o.MinConfidence = c }
}

// WithWeighted switches support to record weights.
func WithWeighted(weighted bool) Option {
	return func(o *Options) { o.Weighted = weighted }
}

// WithMaxItemsetSize bounds itemset size.
func WithMaxItemsetSize(k int) Option {
	return func(o *Options) { o.MaxItemsetSize = k }
}

// WithMaxConsequents keeps at most k rules per item.
func WithMaxConsequents(k int) Option {
	return func(o *Options) { o.MaxConsequents = k }
}

// WithMaxCandidates caps candidates per level.
func WithMaxCandidates(k int) Option {
	return func(o *Options) { o.MaxCandidates = k }
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
		return cfg, errors.Wrap(err, "rules")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg, nil
}
