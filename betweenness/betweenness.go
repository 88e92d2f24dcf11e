package betweenness

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/bfs"
	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/dijkstra"
	"github.com/katalvlaran/colgraph/internal/workers"
)

// Compute returns the betweenness centrality of every node of g, indexed by
// NodeId. An empty graph yields an empty slice.
//
// Errors: core.ErrNilGraph, core.ErrInvalidOption.
func Compute(g *core.Graph, opts ...Option) ([]float64, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, core.ErrNilGraph
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	n := g.N()
	if n == 0 {
		return []float64{}, nil
	}

	// 2) Per-chunk accumulation.
	chunks := workers.Chunks(n, 0)
	partial := make([][]float64, len(chunks))
	err = workers.Run(chunks, cfg.Workers, func(ctx context.Context, c int, r workers.Range) error {
		acc := newAccumulator(g)
		for s := r.Lo; s < r.Hi; s++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := acc.add(s); err != nil {
				return err
			}
		}
		partial[c] = acc.score

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3) Reduce in chunk order.
	scores := make([]float64, n)
	for _, p := range partial {
		for v, x := range p {
			scores[v] += x
		}
	}

	// 4) Scale.
	scale := 1.0
	if !g.Directed() {
		scale = 0.5
	}
	if cfg.Normalized && n >= 3 {
		scale /= float64(n-1) * float64(n-2)
		if !g.Directed() {
			scale *= 2
		}
	}
	if scale != 1 {
		for v := range scores {
			scores[v] *= scale
		}
	}

	cfg.Logger.Debug("betweenness: done",
		zap.Int("nodes", n),
		zap.Int("arcs", g.ArcCount()),
		zap.Bool("weighted", g.Weighted()),
		zap.Int("chunks", len(chunks)),
	)

	return scores, nil
}

// accumulator owns the per-chunk buffers: one PathDAG reused for every
// source, the dependency vector and the partial scores.
type accumulator struct {
	g     *core.Graph
	dag   *core.PathDAG
	delta []float64
	score []float64
}

func newAccumulator(g *core.Graph) *accumulator {
	return &accumulator{
		g:     g,
		dag:   core.NewPathDAG(g.N()),
		delta: make([]float64, g.N()),
		score: make([]float64, g.N()),
	}
}

// add runs one source: forward pass, then backward dependency sums.
func (a *accumulator) add(s int) error {
	// 1) Forward: shortest-path DAG of s.
	var err error
	if a.g.Weighted() {
		err = dijkstra.CountPaths(a.g, s, a.dag)
	} else {
		err = bfs.Layers(a.g, s, a.dag)
	}
	if err != nil {
		return err
	}

	// 2) Backward: reverse settle order visits successors first.
	order := a.dag.Order
	for _, v := range order {
		a.delta[v] = 0
	}
	var (
		i, w, v int
		coeff   float64
	)
	for i = len(order) - 1; i >= 0; i-- {
		w = order[i]
		coeff = (1 + a.delta[w]) / a.dag.Sigma[w]
		for _, v = range a.dag.Preds[w] {
			a.delta[v] += a.dag.Sigma[v] * coeff
		}
		if w != s {
			a.score[w] += a.delta[w]
		}
	}

	return nil
}
