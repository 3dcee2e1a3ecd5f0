package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

// newSystem builds an n×n system and fails the test on error.
func newSystem(t *testing.T, n int) *percolation.Percolation {
	t.Helper()
	p, err := percolation.New(n)
	require.NoError(t, err)

	return p
}

// openAll opens every site of p.
func openAll(t *testing.T, p *percolation.Percolation) {
	t.Helper()
	n := p.Side()
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			require.NoError(t, p.Open(row, col))
		}
	}
}

func TestNew_InvalidSide(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		p, err := percolation.New(n)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "n=%d", n)
	}
}

func TestNew_FreshSystem(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		p := newSystem(t, n)
		assert.Equal(t, n, p.Side())
		assert.Zero(t, p.NumberOfOpenSites(), "n=%d", n)
		assert.False(t, p.Percolates(), "n=%d", n)
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				open, err := p.IsOpen(row, col)
				require.NoError(t, err)
				assert.False(t, open)
				full, err := p.IsFull(row, col)
				require.NoError(t, err)
				assert.False(t, full)
			}
		}
	}
}

func TestOutOfRange(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		p := newSystem(t, n)
		bad := [][2]int{{0, 1}, {n + 1, 1}, {1, 0}, {1, n + 1}, {-1, -1}, {0, 0}}
		for _, rc := range bad {
			assert.ErrorIs(t, p.Open(rc[0], rc[1]), percolation.ErrInvalidArgument, "Open%v n=%d", rc, n)
			_, err := p.IsOpen(rc[0], rc[1])
			assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "IsOpen%v n=%d", rc, n)
			_, err = p.IsFull(rc[0], rc[1])
			assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "IsFull%v n=%d", rc, n)
		}
		// Rejected calls leave no trace.
		assert.Zero(t, p.NumberOfOpenSites())
	}
}

func TestOpen_Idempotent(t *testing.T) {
	p := newSystem(t, 3)
	require.NoError(t, p.Open(2, 2))
	before := p.String()
	require.NoError(t, p.Open(2, 2))

	assert.Equal(t, 1, p.NumberOfOpenSites())
	assert.Equal(t, before, p.String())
}

func TestOpen_Monotonic(t *testing.T) {
	const n = 6
	p := newSystem(t, n)
	r := rand.New(rand.NewSource(3))
	opened := make(map[[2]int]bool)

	for step := 0; step < 3*n*n; step++ {
		row, col := r.Intn(n)+1, r.Intn(n)+1
		require.NoError(t, p.Open(row, col))
		opened[[2]int{row, col}] = true
		for rc := range opened {
			open, err := p.IsOpen(rc[0], rc[1])
			require.NoError(t, err)
			require.True(t, open, "site %v closed again", rc)
		}
		require.Equal(t, len(opened), p.NumberOfOpenSites())
	}
}

func TestSingleSite(t *testing.T) {
	p := newSystem(t, 1)
	assert.False(t, p.Percolates())

	require.NoError(t, p.Open(1, 1))
	full, err := p.IsFull(1, 1)
	require.NoError(t, err)

	assert.True(t, p.Percolates())
	assert.True(t, full)
	assert.Equal(t, 1, p.NumberOfOpenSites())
}

func TestTwoByTwo_Diagonal(t *testing.T) {
	p := newSystem(t, 2)
	require.NoError(t, p.Open(1, 1))
	require.NoError(t, p.Open(2, 2))

	assert.False(t, p.Percolates())
	full, _ := p.IsFull(1, 1)
	assert.True(t, full, "(1,1) touches the top row")
	full, _ = p.IsFull(2, 2)
	assert.False(t, full, "(2,2) has no path to the top row")
}

func TestTwoByTwo_AllOpen(t *testing.T) {
	p := newSystem(t, 2)
	openAll(t, p)

	assert.True(t, p.Percolates())
	assert.Equal(t, 4, p.NumberOfOpenSites())
}

func TestFullGrid(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10} {
		p := newSystem(t, n)
		openAll(t, p)

		assert.True(t, p.Percolates(), "n=%d", n)
		assert.Equal(t, n*n, p.NumberOfOpenSites())
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				full, err := p.IsFull(row, col)
				require.NoError(t, err)
				assert.True(t, full, "n=%d site (%d,%d)", n, row, col)
			}
		}
	}
}

func TestNoBackwash_BottomRowOnly(t *testing.T) {
	for _, n := range []int{2, 3, 8} {
		p := newSystem(t, n)
		for col := 1; col <= n; col++ {
			require.NoError(t, p.Open(n, col))
		}

		assert.False(t, p.Percolates(), "n=%d", n)
		for col := 1; col <= n; col++ {
			full, err := p.IsFull(n, col)
			require.NoError(t, err)
			assert.False(t, full, "n=%d bottom site %d", n, col)
		}
	}
}

// TestNoBackwash_AfterPercolation opens a straight column in col 1 and a
// detached pocket touching the bottom row in col 3. Once the system
// percolates the pocket is joined to the bottom virtual site, yet it must not
// be reported full.
//
//	□ ■ ■
//	□ ■ ■
//	□ ■ □
func TestNoBackwash_AfterPercolation(t *testing.T) {
	p := newSystem(t, 3)
	for row := 1; row <= 3; row++ {
		require.NoError(t, p.Open(row, 1))
	}
	require.NoError(t, p.Open(3, 3))

	assert.True(t, p.Percolates())
	full, _ := p.IsFull(3, 1)
	assert.True(t, full)
	full, _ = p.IsFull(3, 3)
	assert.False(t, full, "backwash through the bottom virtual site")
}

// TestPercolates_AgainstBFS compares the engine with a breadth-first search
// over the open sites after every single Open on random grids.
func TestPercolates_AgainstBFS(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(8) + 1
		p := newSystem(t, n)
		open := make([][]bool, n)
		for i := range open {
			open[i] = make([]bool, n)
		}

		for step := 0; step < n*n; step++ {
			row, col := r.Intn(n)+1, r.Intn(n)+1
			require.NoError(t, p.Open(row, col))
			open[row-1][col-1] = true

			reached := reachFromTop(open)
			wantPerc := false
			for c := 0; c < n; c++ {
				if reached[n-1][c] {
					wantPerc = true
				}
			}
			require.Equal(t, wantPerc, p.Percolates(), "trial %d step %d", trial, step)
			for rr := 0; rr < n; rr++ {
				for cc := 0; cc < n; cc++ {
					full, err := p.IsFull(rr+1, cc+1)
					require.NoError(t, err)
					require.Equal(t, reached[rr][cc], full, "trial %d site (%d,%d)", trial, rr+1, cc+1)
				}
			}
		}
	}
}

// reachFromTop marks every open cell reachable from an open top-row cell
// using 4-directional BFS.
func reachFromTop(open [][]bool) [][]bool {
	n := len(open)
	seen := make([][]bool, n)
	for i := range seen {
		seen[i] = make([]bool, n)
	}
	var queue [][2]int
	for c := 0; c < n; c++ {
		if open[0][c] {
			seen[0][c] = true
			queue = append(queue, [2]int{0, c})
		}
	}
	offsets := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			r, c := u[0]+d[0], u[1]+d[1]
			if r < 0 || r >= n || c < 0 || c >= n || !open[r][c] || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue = append(queue, [2]int{r, c})
		}
	}

	return seen
}

func TestString(t *testing.T) {
	p := newSystem(t, 2)
	require.NoError(t, p.Open(1, 2))
	require.NoError(t, p.Open(2, 1))

	assert.Equal(t, "\n ■  □ \n □  ■ ", p.String())
}
