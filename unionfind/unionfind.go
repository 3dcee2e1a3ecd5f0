package unionfind

// UnionFind is a disjoint-set forest over the indices 0..n-1.
// parent[i] == i marks a root; size is only meaningful at roots.
// It is not safe for concurrent use.
type UnionFind struct {
	parent []int
	size   []int
	count  int
	skip   SkipFunc
}

// New builds a UnionFind of n singleton sets.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*UnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
		skip:   o.Skip,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the root of the set containing i.
// Iterative path halving: every visited node is re-pointed at its grandparent.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

// Connected reports whether p and q belong to the same set.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// SizeOf returns the number of elements in the set containing i.
func (uf *UnionFind) SizeOf(i int) int {
	return uf.size[uf.Find(i)]
}

// Union merges the sets containing p and q, attaching the smaller tree under
// the larger root. It returns false when the skip predicate rejects the pair
// or when p and q were already connected.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) bool {
	if uf.skip != nil && uf.skip(p, q) {
		return false
	}
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return false
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true
}
