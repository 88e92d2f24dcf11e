package columnar

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/betweenness"
	"github.com/katalvlaran/colgraph/components"
	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/dijkstra"
	"github.com/katalvlaran/colgraph/indexer"
	"github.com/katalvlaran/colgraph/pagerank"
)

// MergedFrame is SuperMerger's output: the input columns plus group.
type MergedFrame[K comparable] struct {
	From  Column[K]
	To    Column[K]
	Group Column[int64]
}

// Len returns the number of rows.
func (f *MergedFrame[K]) Len() int { return f.Group.Len() }

// PathFrame is CalculateShortestPath's output, one row per reachable pair.
type PathFrame[K comparable] struct {
	From     Column[K]
	To       Column[K]
	Distance Column[float64]
}

// Len returns the number of rows.
func (f *PathFrame[K]) Len() int { return f.Distance.Len() }

// CentralityFrame is BetweennessCentrality's output, one row per node.
type CentralityFrame[K comparable] struct {
	Node       Column[K]
	Centrality Column[float64]
}

// Len returns the number of rows.
func (f *CentralityFrame[K]) Len() int { return f.Centrality.Len() }

// edgeRows is the indexed, null-free part of a from/to(/weight) input.
type edgeRows[K comparable] struct {
	ix    *indexer.Indexer[K]
	edges []core.Edge
	rows  []int // input row of each edge
}

// indexEdges drops rows with a null endpoint or weight and indexes the rest.
// weight may be nil for unweighted inputs.
func indexEdges[K comparable](from, to Column[K], weight *Column[float64]) (*edgeRows[K], error) {
	lengths := []int{from.Len(), to.Len()}
	if weight != nil {
		lengths = append(lengths, weight.Len())
	}
	if err := core.CheckLengths(lengths...); err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	n := from.Len()
	er := &edgeRows[K]{ix: indexer.New[K](n)}
	var w float64
	for i := 0; i < n; i++ {
		if from.IsNull(i) || to.IsNull(i) || (weight != nil && weight.IsNull(i)) {
			continue
		}
		if weight != nil {
			w = weight.Values[i]
		}
		er.edges = append(er.edges, core.Edge{
			From:   er.ix.ID(from.Values[i]),
			To:     er.ix.ID(to.Values[i]),
			Weight: w,
		})
		er.rows = append(er.rows, i)
	}

	return er, nil
}

func (er *edgeRows[K]) graph(directed, weighted bool) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(directed)}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g, err := core.NewGraph(er.ix.Len(), er.edges, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	return g, nil
}

// GraphSolver labels every row with the connected component of its from
// node, numbered from 1 in row order. A row with one null endpoint is
// labeled by the other; a row with both null gets a null.
//
// Errors: core.ErrLengthMismatch.
func GraphSolver[K comparable](from, to Column[K]) (Column[int64], error) {
	if err := core.CheckLengths(from.Len(), to.Len()); err != nil {
		return Column[int64]{}, errors.Wrap(err, "columnar")
	}

	n := from.Len()
	ix := indexer.New[K](n)
	edges := make([]core.Edge, 0, n)
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		f, fok := from.Get(i)
		t, tok := to.Get(i)
		switch {
		case fok && tok:
			e := core.Edge{From: ix.ID(f), To: ix.ID(t)}
			edges = append(edges, e)
			keys[i] = e.From
		case fok:
			keys[i] = ix.ID(f)
		case tok:
			keys[i] = ix.ID(t)
		default:
			keys[i] = components.NoKey
		}
	}

	labels, _, err := components.LabelRows(ix.Len(), edges, keys)
	if err != nil {
		return Column[int64]{}, errors.Wrap(err, "columnar")
	}
	out := NewColumn("group", labels)
	for i, k := range keys {
		if k == components.NoKey {
			out.setNull(i)
		}
	}

	return out, nil
}

// SuperMerger returns the input columns with GraphSolver's group column.
//
// Errors: core.ErrLengthMismatch.
func SuperMerger[K comparable](from, to Column[K]) (*MergedFrame[K], error) {
	group, err := GraphSolver(from, to)
	if err != nil {
		return nil, err
	}

	return &MergedFrame[K]{From: from, To: to, Group: group}, nil
}

// CalculateShortestPath returns the distance of every reachable pair of
// distinct nodes. Undirected inputs list each pair once, source first in
// node order, unless BothDirections is set.
//
// Errors: core.ErrLengthMismatch, core.ErrNegativeWeight, core.ErrInvalidOption.
func CalculateShortestPath[K comparable](from, to Column[K], weight Column[float64], kw ShortestPathKwargs) (*PathFrame[K], error) {
	if err := validate(&kw); err != nil {
		return nil, err
	}
	er, err := indexEdges(from, to, &weight)
	if err != nil {
		return nil, err
	}
	g, err := er.graph(kw.Directed, true)
	if err != nil {
		return nil, err
	}

	opts := []dijkstra.Option{dijkstra.WithWorkers(kw.Workers), dijkstra.WithLogger(kw.logger())}
	if kw.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(kw.MaxDistance))
	}
	if kw.BothDirections {
		opts = append(opts, dijkstra.WithBothDirections())
	}
	table, err := dijkstra.AllPairs(g, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	m := table.Len()
	out := &PathFrame[K]{
		From:     NewColumn(from.Name, make([]K, m)),
		To:       NewColumn(to.Name, make([]K, m)),
		Distance: NewColumn("distance", make([]float64, m)),
	}
	for i, p := range table.Pairs {
		out.From.Values[i] = er.ix.Value(p.Source)
		out.To.Values[i] = er.ix.Value(p.Target)
		out.Distance.Values[i] = p.Distance
	}
	kw.logger().Debug("columnar: shortest paths",
		zap.Int("rows", from.Len()),
		zap.Int("edges", len(er.edges)),
		zap.Int("pairs", m),
	)

	return out, nil
}

// BetweennessCentrality returns one row per node in first-seen order.
//
// Errors: core.ErrLengthMismatch, core.ErrInvalidOption.
func BetweennessCentrality[K comparable](from, to Column[K], kw CentralityKwargs) (*CentralityFrame[K], error) {
	if err := validate(&kw); err != nil {
		return nil, err
	}
	er, err := indexEdges(from, to, nil)
	if err != nil {
		return nil, err
	}
	g, err := er.graph(kw.Directed, false)
	if err != nil {
		return nil, err
	}

	scores, err := betweenness.Compute(g,
		betweenness.WithNormalized(kw.Normalized),
		betweenness.WithWorkers(kw.Workers),
		betweenness.WithLogger(kw.logger()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	return &CentralityFrame[K]{
		Node:       NewColumn("node", er.ix.Values()),
		Centrality: NewColumn("centrality", scores),
	}, nil
}

// PageRank returns the rank of each row's from node. Rows with a null
// endpoint contribute no edge and get a null.
//
// Errors: core.ErrLengthMismatch, core.ErrInvalidOption.
func PageRank[K comparable](from, to Column[K], kw PageRankKwargs) (Column[float64], error) {
	if err := validate(&kw); err != nil {
		return Column[float64]{}, err
	}
	er, err := indexEdges(from, to, nil)
	if err != nil {
		return Column[float64]{}, err
	}
	g, err := er.graph(kw.Directed, false)
	if err != nil {
		return Column[float64]{}, err
	}

	dangling := pagerank.DanglingUniform
	if kw.Dangling == pagerank.DanglingSelfLoop.String() {
		dangling = pagerank.DanglingSelfLoop
	}
	res, err := pagerank.Rank(g,
		pagerank.WithDamping(kw.Damping),
		pagerank.WithMaxIterations(kw.MaxIterations),
		pagerank.WithTolerance(kw.Tolerance),
		pagerank.WithDangling(dangling),
		pagerank.WithWorkers(kw.Workers),
		pagerank.WithLogger(kw.logger()),
	)
	if err != nil {
		return Column[float64]{}, errors.Wrap(err, "columnar")
	}

	n := from.Len()
	out := Column[float64]{Name: "rank", Values: make([]float64, n), Valid: make([]bool, n)}
	for j, i := range er.rows {
		out.Values[i] = res.Scores[er.edges[j].From]
		out.Valid[i] = true
	}

	return out, nil
}
