package components

// DisjointSet is an array-backed union-find over NodeIds [0, n).
// The zero value is an empty set; use NewDisjointSet.
type DisjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the representative of x's set: a node that is its own parent.
func (d *DisjointSet) Find(x int) int {
	// 1) Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2) Repoint every node on the walked path directly at the root.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of a and b and reports whether they were disjoint.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	// Attach the lower-rank root under the higher-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b share a set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Groups returns the members of every set. Groups are ordered by their
// smallest member and members ascend within a group.
func (d *DisjointSet) Groups() [][]int {
	slot := make(map[int]int, d.sets)
	groups := make([][]int, 0, d.sets)
	for x := range d.parent {
		r := d.Find(x)
		i, ok := slot[r]
		if !ok {
			i = len(groups)
			slot[r] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}

	return groups
}
