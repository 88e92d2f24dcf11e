package pagerank

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/internal/workers"
)

// parallelMinNodes is the node count from which iterations fan out.
const parallelMinNodes = 1 << 14

// Result is the outcome of Rank.
type Result struct {
	// Scores holds one rank per NodeId; they sum to 1.
	Scores []float64
	// Iterations is the number of iterations performed.
	Iterations int
	// Converged reports whether the L1 change fell below Tolerance.
	Converged bool
	// Delta is the L1 change of the last iteration.
	Delta float64
}

// Rank runs power iteration on g. An empty graph yields an empty, converged
// result. Hitting MaxIterations is not an error: the result reports
// Converged=false and a warning is logged.
//
// Errors: core.ErrNilGraph, core.ErrInvalidOption.
func Rank(g *core.Graph, opts ...Option) (*Result, error) {
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
		return &Result{Scores: []float64{}, Converged: true}, nil
	}

	// 2) Transpose once; iterations only read it.
	t := transpose(g, cfg.EdgeWeights)

	// 3) Iterate.
	it := &iteration{
		t:      t,
		cfg:    cfg,
		rank:   make([]float64, n),
		next:   make([]float64, n),
		chunks: workers.Chunks(n, 0),
		limit:  1,
	}
	if n >= parallelMinNodes {
		it.limit = cfg.Workers
	}
	it.deltas = make([]float64, len(it.chunks))
	for v := range it.rank {
		it.rank[v] = 1 / float64(n)
	}

	res := &Result{}
	for res.Iterations < cfg.MaxIterations {
		if err = it.step(); err != nil {
			return nil, err
		}
		res.Iterations++
		res.Delta = it.delta()
		it.rank, it.next = it.next, it.rank
		if res.Delta < cfg.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Scores = it.rank

	// 4) Report.
	if !res.Converged {
		cfg.Logger.Warn("pagerank: not converged",
			zap.Int("iterations", res.Iterations),
			zap.Float64("delta", res.Delta),
			zap.Float64("tolerance", cfg.Tolerance),
		)
	} else {
		cfg.Logger.Debug("pagerank: converged",
			zap.Int("nodes", n),
			zap.Int("iterations", res.Iterations),
			zap.Float64("delta", res.Delta),
			zap.Stringer("dangling", cfg.Dangling),
		)
	}

	return res, nil
}

// inArc is one transposed arc: the tail node and its share w/W(tail).
type inArc struct {
	from  int
	coeff float64
}

// transposed is the in-arc CSR plus the dangling flags.
type transposed struct {
	n        int
	offsets  []int
	arcs     []inArc
	dangling []bool
}

// transpose builds the in-arc CSR. In-arcs of a node keep the tail order
// of the forward CSR, so sums are accumulated in a fixed order.
func transpose(g *core.Graph, byWeight bool) *transposed {
	n := g.N()
	t := &transposed{
		n:        n,
		offsets:  make([]int, n+1),
		arcs:     make([]inArc, g.ArcCount()),
		dangling: make([]bool, n),
	}

	// 1) Out-weight per node and in-degree counts.
	out := make([]float64, n)
	var (
		u int
		a core.Arc
	)
	for u = 0; u < n; u++ {
		for _, a = range g.Neighbors(u) {
			if byWeight {
				out[u] += a.Weight
			} else {
				out[u]++
			}
			t.offsets[a.To+1]++
		}
		t.dangling[u] = out[u] == 0
	}
	for u = 1; u <= n; u++ {
		t.offsets[u] += t.offsets[u-1]
	}

	// 2) Fill in-arcs with precomputed coefficients.
	cursor := make([]int, n)
	copy(cursor, t.offsets[:n])
	var share float64
	for u = 0; u < n; u++ {
		if t.dangling[u] {
			continue
		}
		for _, a = range g.Neighbors(u) {
			share = 1 / out[u]
			if byWeight {
				share = a.Weight / out[u]
			}
			t.arcs[cursor[a.To]] = inArc{from: u, coeff: share}
			cursor[a.To]++
		}
	}
	// Dangling tails with zero-weight arcs leave unused slots; trim per node.
	for u = 0; u < n; u++ {
		if cursor[u] != t.offsets[u+1] {
			return t.compact(cursor)
		}
	}

	return t
}

// compact drops unfilled in-arc slots (zero-weight arcs out of dangling
// nodes under edge weighting).
func (t *transposed) compact(cursor []int) *transposed {
	arcs := make([]inArc, 0, len(t.arcs))
	offsets := make([]int, t.n+1)
	for v := 0; v < t.n; v++ {
		arcs = append(arcs, t.arcs[t.offsets[v]:cursor[v]]...)
		offsets[v+1] = len(arcs)
	}
	t.arcs, t.offsets = arcs, offsets

	return t
}

// iteration holds the double buffer and per-chunk L1 deltas.
type iteration struct {
	t      *transposed
	cfg    Options
	rank   []float64
	next   []float64
	chunks []workers.Range
	deltas []float64
	limit  int
}

// step computes next from rank.
func (it *iteration) step() error {
	n := float64(it.t.n)
	d := it.cfg.Damping

	// Dangling mass is summed sequentially in node order.
	var lost float64
	for v, dang := range it.t.dangling {
		if dang {
			lost += it.rank[v]
		}
	}
	base := (1 - d) / n
	if it.cfg.Dangling == DanglingUniform {
		base += d * lost / n
	}

	return workers.Run(it.chunks, it.limit, func(_ context.Context, c int, r workers.Range) error {
		var (
			v   int
			sum float64
			in  inArc
			l1  float64
		)
		for v = r.Lo; v < r.Hi; v++ {
			sum = 0
			for _, in = range it.t.arcs[it.t.offsets[v]:it.t.offsets[v+1]] {
				sum += it.rank[in.from] * in.coeff
			}
			it.next[v] = base + d*sum
			if it.cfg.Dangling == DanglingSelfLoop && it.t.dangling[v] {
				it.next[v] += d * it.rank[v]
			}
			l1 += math.Abs(it.next[v] - it.rank[v])
		}
		it.deltas[c] = l1

		return nil
	})
}

// delta reduces the per-chunk L1 changes in chunk order.
func (it *iteration) delta() float64 {
	var sum float64
	for _, x := range it.deltas {
		sum += x
	}

	return sum
}
