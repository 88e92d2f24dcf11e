package dijkstra

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/internal/workers"
)

// AllPairs runs Dijkstra from every node with at least one outgoing arc and
// collects the reachable pairs.
//
// Row set:
//   - Directed graph:   every reachable ordered pair (s, t) with s ≠ t.
//   - Undirected graph: every reachable unordered pair once, as s < t;
//     WithBothDirections also emits (t, s).
//
// Row order is source-major with targets ascending, independent of Workers.
// MaxDistance and InfEdgeThreshold apply to every pass. ReturnPath is
// ignored.
//
// Complexity: O(V·(V + E) log V) time; O(W·(V + E)) scratch memory for W
// workers plus the output.
func AllPairs(g *core.Graph, opts ...Option) (*Table, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, core.ErrNilGraph
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.ReturnPath = false

	// 2) Fan out over fixed source chunks; every chunk owns its rows.
	chunks := workers.Chunks(g.N(), 0)
	parts := make([][]Pair, len(chunks))
	err = workers.Run(chunks, cfg.Workers, func(_ context.Context, c int, rng workers.Range) error {
		r := newRunner(g, cfg)
		var out []Pair
		for s := rng.Lo; s < rng.Hi; s++ {
			if g.OutDegree(s) == 0 {
				continue
			}
			r.run(s)
			out = r.appendPairs(out, s)
		}
		parts[c] = out

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3) Concatenate in chunk order.
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	t := &Table{Pairs: make([]Pair, 0, total)}
	for _, p := range parts {
		t.Pairs = append(t.Pairs, p...)
	}

	cfg.Logger.Debug("dijkstra: all-pairs done",
		zap.Int("nodes", g.N()),
		zap.Int("chunks", len(chunks)),
		zap.Int("pairs", total),
	)

	return t, nil
}

// appendPairs appends the reachable targets of the last pass from s.
func (r *runner) appendPairs(out []Pair, s int) []Pair {
	lo := 0
	if !r.g.Directed() && !r.cfg.BothDirections {
		lo = s + 1
	}
	for t := lo; t < len(r.dist); t++ {
		if t == s || math.IsInf(r.dist[t], 1) {
			continue
		}
		out = append(out, Pair{Source: s, Target: t, Distance: r.dist[t]})
	}

	return out
}
