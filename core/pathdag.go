package core

// PathDAG is the shortest-path DAG of a single-source pass, as consumed by
// Brandes' dependency accumulation. Producers (bfs.Layers and
// dijkstra.CountPaths) fill it; the buffers are reused between sources.
//
//   - Order lists settled nodes in non-decreasing distance from the source.
//   - Sigma[v] is the number of shortest source→v paths.
//   - Preds[v] lists v's predecessors on those paths (one entry per arc).
//   - Dist[v] is the distance, +Inf (or -1 for hop counts) when unreached.
//   - Done[v] marks v as settled by a weighted producer.
//   - Pending is per-node scratch for producers that order the DAG
//     themselves; its contents are undefined after a pass.
type PathDAG struct {
	Order   []int
	Sigma   []float64
	Preds   [][]int
	Dist    []float64
	Done    []bool
	Pending []int
}

// NewPathDAG allocates buffers for a graph of n nodes.
func NewPathDAG(n int) *PathDAG {
	return &PathDAG{
		Order:   make([]int, 0, n),
		Sigma:   make([]float64, n),
		Preds:   make([][]int, n),
		Dist:    make([]float64, n),
		Done:    make([]bool, n),
		Pending: make([]int, n),
	}
}

// Reset clears the buffers and seeds source with distance 0 and one path.
// unreached is stored into Dist for every other node.
func (p *PathDAG) Reset(source int, unreached float64) {
	p.Order = p.Order[:0]
	for i := range p.Sigma {
		p.Sigma[i] = 0
		p.Preds[i] = p.Preds[i][:0]
		p.Dist[i] = unreached
		p.Done[i] = false
	}
	p.Sigma[source] = 1
	p.Dist[source] = 0
}
