// Package percolation models site percolation on an n×n grid.
//
// Sites start blocked and are opened one at a time with Open. The system
// percolates once a chain of open sites, joined through their up, right,
// down and left neighbors, connects the top row to the bottom row.
//
// What:
//
//   - Percolation keeps one open flag per site plus two virtual sites:
//     Top (joined to every open site in row 1) and Bottom (joined to every
//     open site in row n). Both are open from construction.
//   - Two union-find structures track connectivity:
//     – the full structure sees every union and answers Percolates;
//     – the no-backwash structure never joins Bottom and answers IsFull.
//
// Why two structures:
//
//	With a single structure, once the system percolates every open site
//	connected to the bottom row would look "full" through Bottom, even when
//	no path leads back up to row 1 (backwash). Dropping Bottom from the
//	second structure removes that false positive at the cost of one extra
//	array of n²+2 ints.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized.
//   - IsOpen:            O(1).
//   - IsFull:            O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//   - Percolates:        O(α(n²)) amortized.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive side length, or a (row, col) outside
//     [1, n]². The returned error wraps ErrInvalidArgument and names the
//     offending values.
//
// A Percolation is not safe for concurrent use; give each goroutine its own.
package percolation
