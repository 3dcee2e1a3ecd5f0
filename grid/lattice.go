package grid

// New returns the geometry of an n×n lattice.
// Returns ErrInvalidSide if n ≤ 0.
func New(n int) (Lattice, error) {
	if n <= 0 {
		return Lattice{}, ErrInvalidSide
	}

	return Lattice{n: n}, nil
}

// Side returns n.
func (l Lattice) Side() int { return l.n }

// Sites returns the number of real sites, n².
func (l Lattice) Sites() int { return l.n * l.n }

// Size returns the length of a per-site array that also holds both virtual
// sites: n²+2.
func (l Lattice) Size() int { return l.n*l.n + 2 }

// Top returns the index of the virtual site above row 1.
func (l Lattice) Top() int { return l.n * l.n }

// Bottom returns the index of the virtual site below row n.
func (l Lattice) Bottom() int { return l.n*l.n + 1 }

// InBounds reports whether (row, col) lies within [1,n]².
// Complexity: O(1).
func (l Lattice) InBounds(row, col int) bool {
	return row >= 1 && row <= l.n && col >= 1 && col <= l.n
}

// Index maps a 1-based (row, col) to its row-major index (row-1)*n + (col-1).
// The caller is responsible for checking InBounds first.
// Complexity: O(1).
func (l Lattice) Index(row, col int) int {
	return (row-1)*l.n + (col - 1)
}

// Coordinate converts a real-site index back to its 1-based (row, col).
// Complexity: O(1).
func (l Lattice) Coordinate(idx int) (row, col int) {
	return idx/l.n + 1, idx%l.n + 1
}

// IsVirtual reports whether idx is Top or Bottom.
func (l Lattice) IsVirtual(idx int) bool {
	return idx == l.Top() || idx == l.Bottom()
}

// Neighbors returns the up, right, down and left neighbors of the real site
// idx, indexed by Direction. Row 1 borrows Top as its upper neighbor and
// row n borrows Bottom as its lower one; on a 1×1 lattice the single site
// gets both. Edges without a neighbor report None.
// Complexity: O(1).
func (l Lattice) Neighbors(idx int) [4]int {
	n := l.n
	var nb [4]int

	if idx < n {
		nb[Up] = l.Top()
	} else {
		nb[Up] = idx - n
	}
	if idx%n == n-1 {
		nb[Right] = None
	} else {
		nb[Right] = idx + 1
	}
	if idx >= n*n-n {
		nb[Down] = l.Bottom()
	} else {
		nb[Down] = idx + n
	}
	if idx%n == 0 {
		nb[Left] = None
	} else {
		nb[Left] = idx - 1
	}

	return nb
}
