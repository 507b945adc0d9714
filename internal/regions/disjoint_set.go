package regions

// DisjointSet is a union-find structure over the integers [0, n).
// Parent links live in a flat slice; a root is its own parent.
type DisjointSet struct {
	parent []int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{parent: parent}
}

// Find returns the root of p's set, compressing the path it walks.
func (ds *DisjointSet) Find(p int) int {
	root := p
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	// Point every node on the path straight at the root.
	for ds.parent[p] != root {
		next := ds.parent[p]
		ds.parent[p] = root
		p = next
	}
	return root
}

// Union merges the sets of a and b by attaching b's root under a's root.
// It reports whether the sets were distinct.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	ds.parent[rb] = ra
	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}
