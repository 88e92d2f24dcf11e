package columnar

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/pagerank"
)

// Runtime carries the in-process settings that never travel in a payload.
type Runtime struct {
	Logger *zap.Logger `yaml:"-" validate:"-"`
}

func (r Runtime) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

// ShortestPathKwargs configures CalculateShortestPath.
type ShortestPathKwargs struct {
	Directed bool `yaml:"directed"`
	// BothDirections emits (t, s) rows next to (s, t) on undirected graphs.
	BothDirections bool `yaml:"both_directions"`
	// MaxDistance drops pairs farther apart; 0 means unbounded.
	MaxDistance float64 `yaml:"max_distance" validate:"gte=0"`
	Workers     int     `yaml:"workers" validate:"gte=0"`
	Runtime     `yaml:",inline"`
}

// DefaultShortestPathKwargs returns undirected, unbounded search.
func DefaultShortestPathKwargs() ShortestPathKwargs {
	return ShortestPathKwargs{}
}

// CentralityKwargs configures BetweennessCentrality.
type CentralityKwargs struct {
	Normalized bool `yaml:"normalized"`
	Directed   bool `yaml:"directed"`
	Workers    int  `yaml:"workers" validate:"gte=0"`
	Runtime    `yaml:",inline"`
}

// DefaultCentralityKwargs returns normalized, undirected centrality.
func DefaultCentralityKwargs() CentralityKwargs {
	return CentralityKwargs{Normalized: true}
}

// PageRankKwargs configures PageRank.
type PageRankKwargs struct {
	Directed      bool    `yaml:"directed"`
	Damping       float64 `yaml:"damping" validate:"gt=0,lt=1"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
	Tolerance     float64 `yaml:"tolerance" validate:"gte=0"`
	// Dangling is "uniform" or "self-loop".
	Dangling string `yaml:"dangling" validate:"oneof=uniform self-loop"`
	Workers  int    `yaml:"workers" validate:"gte=0"`
	Runtime  `yaml:",inline"`
}

// DefaultPageRankKwargs mirrors pagerank.DefaultOptions on a directed graph.
func DefaultPageRankKwargs() PageRankKwargs {
	return PageRankKwargs{
		Directed:      true,
		Damping:       pagerank.DefaultDamping,
		MaxIterations: pagerank.DefaultMaxIterations,
		Tolerance:     pagerank.DefaultTolerance,
		Dangling:      pagerank.DanglingUniform.String(),
	}
}

// RuleKwargs configures GraphAssociationRules. Weighted mining reads the
// frequency column.
type RuleKwargs struct {
	MinSupport     float64 `yaml:"min_support" validate:"gte=0,lte=1"`
	MinConfidence  float64 `yaml:"min_confidence" validate:"gte=0,lte=1"`
	MaxItemsetSize int     `yaml:"max_itemset_size" validate:"gte=1"`
	Weighted       bool    `yaml:"weighted"`
	MaxConsequents int     `yaml:"max_consequents" validate:"gte=0"`
	MaxCandidates  int     `yaml:"max_candidates" validate:"gt=0"`
	Runtime        `yaml:",inline"`
}

// DefaultRuleKwargs mirrors rules.DefaultOptions with the five best
// consequents per item.
func DefaultRuleKwargs() RuleKwargs {
	return RuleKwargs{
		MinSupport:     0.01,
		MinConfidence:  0.1,
		MaxItemsetSize: 3,
		MaxConsequents: 5,
		MaxCandidates:  1_000_000,
	}
}

// DecodeKwargs decodes a YAML or JSON payload onto dst, which should hold
// the defaults already, then validates it. Unknown keys are rejected; an
// empty payload keeps the defaults.
//
// Errors: core.ErrInvalidOption.
func DecodeKwargs(data []byte, dst any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(core.ErrInvalidOption, "columnar: decode kwargs: %v", err)
	}

	return validate(dst)
}

func validate(kw any) error {
	if err := core.ValidateOptions(kw); err != nil {
		return errors.Wrap(err, "columnar")
	}

	return nil
}
